package generator

import (
	"errors"
	"strings"
)

var (
	ErrInvalidRequest        = errors.New("invalid generation request")
	ErrGenerationUnavailable = errors.New("generation service unavailable")
	ErrGenerationIncomplete  = errors.New("generation response incomplete")
)

// Request describes what the article should be about.
type Request struct {
	MainKeyword         string
	SecondaryKeywords   string
	CategoryID          *int
	TitleInstructions   string
	ContentInstructions string
}

func (r Request) Validate() error {
	if strings.TrimSpace(r.MainKeyword) == "" {
		return errors.Join(ErrInvalidRequest, errors.New("main keyword is required"))
	}
	return nil
}

// Keywords returns the main keyword followed by the comma separated secondary ones.
func (r Request) Keywords() []string {
	result := []string{strings.TrimSpace(r.MainKeyword)}
	for _, kw := range strings.Split(r.SecondaryKeywords, ",") {
		kw = strings.TrimSpace(kw)
		if kw != "" && !strings.EqualFold(kw, result[0]) {
			result = append(result, kw)
		}
	}
	return result
}

// Draft is an article produced by the model and not yet persisted.
// Content may still contain [IMAGE_n] placeholder tokens.
type Draft struct {
	Title           string
	Slug            string
	Excerpt         string
	Content         string
	FeaturedImage   string
	MetaTitle       string
	MetaDescription string
	MetaKeywords    []string
	CategoryID      *int
}
