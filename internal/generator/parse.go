package generator

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/daniilsolovey/blog-portal/internal/render"
)

const excerptLength = 160

var (
	fenceRe = regexp.MustCompile("^```[a-zA-Z]*\\s*|\\s*```$")
	tagRe   = regexp.MustCompile(`<[a-zA-Z][^>]*>`)
)

type completionDocument struct {
	Title           string      `json:"title"`
	Slug            string      `json:"slug"`
	Excerpt         string      `json:"excerpt"`
	Content         string      `json:"content"`
	MetaTitle       string      `json:"metaTitle"`
	MetaDescription string      `json:"metaDescription"`
	MetaKeywords    keywordList `json:"metaKeywords"`
}

// keywordList accepts either a JSON array of strings or a comma separated string.
type keywordList []string

func (k *keywordList) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	var result []string
	switch t := v.(type) {
	case string:
		result = strings.Split(t, ",")
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok {
				result = append(result, s)
			}
		}
	}

	*k = cleanKeywords(result)
	return nil
}

func cleanKeywords(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		key := strings.ToLower(s)
		if s == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}

	return out
}

// ParseCompletion turns a raw model answer into a draft. Code fences around
// the JSON object are stripped and unknown fields are ignored. Missing title
// or content yields ErrGenerationIncomplete.
func ParseCompletion(raw string) (Draft, error) {
	payload := stripFences(raw)
	if start, end := strings.Index(payload, "{"), strings.LastIndex(payload, "}"); start >= 0 && end > start {
		payload = payload[start : end+1]
	}

	var doc completionDocument
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		return Draft{}, fmt.Errorf("%w: decode response: %w", ErrGenerationIncomplete, err)
	}

	title := strings.TrimSpace(doc.Title)
	content := stripFences(doc.Content)
	switch {
	case title == "" && content == "":
		return Draft{}, fmt.Errorf("%w: title and content missing", ErrGenerationIncomplete)
	case title == "":
		return Draft{}, fmt.Errorf("%w: title missing", ErrGenerationIncomplete)
	case content == "":
		return Draft{}, fmt.Errorf("%w: content missing", ErrGenerationIncomplete)
	}

	if !tagRe.MatchString(content) {
		html, err := markdownToHTML(content)
		if err != nil {
			return Draft{}, errors.Join(ErrGenerationIncomplete, err)
		}
		content = html
	}

	d := Draft{
		Title:           title,
		Slug:            Slugify(doc.Slug),
		Excerpt:         strings.TrimSpace(doc.Excerpt),
		Content:         content,
		MetaTitle:       strings.TrimSpace(doc.MetaTitle),
		MetaDescription: strings.TrimSpace(doc.MetaDescription),
		MetaKeywords:    doc.MetaKeywords,
	}
	if d.Slug == "" {
		d.Slug = Slugify(title)
	}
	if d.Excerpt == "" {
		d.Excerpt = render.Excerpt(content, excerptLength)
	}
	if d.MetaTitle == "" {
		d.MetaTitle = title
	}
	if d.MetaDescription == "" {
		d.MetaDescription = d.Excerpt
	}

	return d, nil
}

func stripFences(s string) string {
	return strings.TrimSpace(fenceRe.ReplaceAllString(strings.TrimSpace(s), ""))
}

func markdownToHTML(md string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}

	return strings.TrimSpace(buf.String()), nil
}
