package rpc

import (
	"time"

	"github.com/daniilsolovey/blog-portal/internal/blog"
	"github.com/daniilsolovey/blog-portal/internal/generator"
)

type Category struct {
	CategoryID int    `json:"categoryId"`
	Title      string `json:"title"`
}

type Article struct {
	ArticleID            int        `json:"articleId"`
	CategoryID           *int       `json:"categoryId"`
	Title                string     `json:"title"`
	Slug                 string     `json:"slug"`
	Excerpt              string     `json:"excerpt"`
	Content              string     `json:"content"`
	FeaturedImage        string     `json:"featuredImage"`
	MetaTitle            string     `json:"metaTitle"`
	MetaDescription      string     `json:"metaDescription"`
	MetaKeywords         []string   `json:"metaKeywords"`
	Status               string     `json:"status"`
	ScheduledAt          *time.Time `json:"scheduledAt,omitempty"`
	CurrentVersionNumber int        `json:"currentVersionNumber"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
	Category             *Category  `json:"category,omitempty"`
}

type RenderedArticle struct {
	Article
	HTML string `json:"html"`
}

type ArticleSummary struct {
	ArticleID     int       `json:"articleId"`
	CategoryID    *int      `json:"categoryId"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Excerpt       string    `json:"excerpt"`
	FeaturedImage string    `json:"featuredImage"`
	CreatedAt     time.Time `json:"createdAt"`
}

type ArticleVersion struct {
	VersionID     int       `json:"versionId"`
	ArticleID     int       `json:"articleId"`
	VersionNumber int       `json:"versionNumber"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     *string   `json:"createdBy,omitempty"`
}

type ArticleUpdate struct {
	Article Article        `json:"article"`
	Version ArticleVersion `json:"version"`
}

type ArticleInput struct {
	Title           string     `json:"title"`
	Slug            string     `json:"slug,omitempty"`
	Excerpt         string     `json:"excerpt,omitempty"`
	Content         string     `json:"content"`
	FeaturedImage   string     `json:"featuredImage,omitempty"`
	MetaTitle       string     `json:"metaTitle,omitempty"`
	MetaDescription string     `json:"metaDescription,omitempty"`
	MetaKeywords    []string   `json:"metaKeywords,omitempty"`
	CategoryID      *int       `json:"categoryId,omitempty"`
	ScheduledAt     *time.Time `json:"scheduledAt,omitempty"`

	//status=draft one of draft, published, archived
	Status string `json:"status,omitempty"`
}

func (in ArticleInput) ToModel() blog.ArticleInput {
	return blog.ArticleInput{
		Title:           in.Title,
		Slug:            in.Slug,
		Excerpt:         in.Excerpt,
		Content:         in.Content,
		FeaturedImage:   in.FeaturedImage,
		MetaTitle:       in.MetaTitle,
		MetaDescription: in.MetaDescription,
		MetaKeywords:    in.MetaKeywords,
		CategoryID:      in.CategoryID,
		Status:          blog.Status(in.Status),
		ScheduledAt:     in.ScheduledAt,
	}
}

// ArticlePatch lists the fields to change. A categoryId of 0 removes the
// category.
type ArticlePatch struct {
	Title           *string    `json:"title,omitempty"`
	Slug            *string    `json:"slug,omitempty"`
	Excerpt         *string    `json:"excerpt,omitempty"`
	Content         *string    `json:"content,omitempty"`
	FeaturedImage   *string    `json:"featuredImage,omitempty"`
	MetaTitle       *string    `json:"metaTitle,omitempty"`
	MetaDescription *string    `json:"metaDescription,omitempty"`
	MetaKeywords    *[]string  `json:"metaKeywords,omitempty"`
	CategoryID      *int       `json:"categoryId,omitempty"`
	ScheduledAt     *time.Time `json:"scheduledAt,omitempty"`

	//status one of draft, published, archived
	Status *string `json:"status,omitempty"`
	//notes version note
	Notes string `json:"notes,omitempty"`
	//author version author
	Author *string `json:"author,omitempty"`
}

func (in ArticlePatch) ToModel() blog.ArticlePatch {
	p := blog.ArticlePatch{
		Title:           in.Title,
		Slug:            in.Slug,
		Excerpt:         in.Excerpt,
		Content:         in.Content,
		FeaturedImage:   in.FeaturedImage,
		MetaTitle:       in.MetaTitle,
		MetaDescription: in.MetaDescription,
		MetaKeywords:    in.MetaKeywords,
		CategoryID:      in.CategoryID,
		ScheduledAt:     in.ScheduledAt,
		Notes:           in.Notes,
		Author:          in.Author,
	}
	if in.Status != nil {
		status := blog.Status(*in.Status)
		p.Status = &status
	}

	return p
}

type GenerateRequest struct {
	MainKeyword         string `json:"mainKeyword"`
	SecondaryKeywords   string `json:"secondaryKeywords,omitempty"`
	CategoryID          *int   `json:"categoryId,omitempty"`
	TitleInstructions   string `json:"titleInstructions,omitempty"`
	ContentInstructions string `json:"contentInstructions,omitempty"`
}

func (r GenerateRequest) ToModel() generator.Request {
	return generator.Request{
		MainKeyword:         r.MainKeyword,
		SecondaryKeywords:   r.SecondaryKeywords,
		CategoryID:          r.CategoryID,
		TitleInstructions:   r.TitleInstructions,
		ContentInstructions: r.ContentInstructions,
	}
}

type Draft struct {
	Title           string   `json:"title"`
	Slug            string   `json:"slug"`
	Excerpt         string   `json:"excerpt"`
	Content         string   `json:"content"`
	FeaturedImage   string   `json:"featuredImage"`
	MetaTitle       string   `json:"metaTitle"`
	MetaDescription string   `json:"metaDescription"`
	MetaKeywords    []string `json:"metaKeywords"`
	CategoryID      *int     `json:"categoryId,omitempty"`
}

type AssetSlot struct {
	SlotIndex   int    `json:"slotIndex"`
	Query       string `json:"query"`
	ResolvedURL string `json:"resolvedUrl"`
	Fallback    bool   `json:"fallback"`
}

type GeneratedDraft struct {
	RequestID string     `json:"requestId"`
	Draft     Draft      `json:"draft"`
	Slots     AssetSlots `json:"slots"`
	Warnings  []string   `json:"warnings"`
}

type PreviewRequest struct {
	Title         string `json:"title"`
	Content       string `json:"content"`
	FeaturedImage string `json:"featuredImage,omitempty"`
}
