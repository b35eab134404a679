package blog

import (
	"time"

	"github.com/daniilsolovey/blog-portal/internal/db"
	"github.com/daniilsolovey/blog-portal/internal/generator"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

type Category struct {
	db.Category
}

type Article struct {
	db.Article
	Status Status
}

type ArticleVersion struct {
	db.ArticleVersion
}

// RenderedArticle is an article with its display HTML.
type RenderedArticle struct {
	Article
	HTML string
}

// ArticleInput holds the editable fields of a new article. An empty Status
// means draft and an empty Slug is derived from Title.
type ArticleInput struct {
	Title           string
	Slug            string
	Excerpt         string
	Content         string
	FeaturedImage   string
	MetaTitle       string
	MetaDescription string
	MetaKeywords    []string
	CategoryID      *int
	Status          Status
	ScheduledAt     *time.Time
}

// ArticlePatch is a partial update. Nil fields keep the current value, so a
// title-only patch leaves the slug, content and category as they are.
// A CategoryID of 0 removes the category and a zero ScheduledAt clears the
// schedule.
type ArticlePatch struct {
	Title           *string
	Slug            *string
	Excerpt         *string
	Content         *string
	FeaturedImage   *string
	MetaTitle       *string
	MetaDescription *string
	MetaKeywords    *[]string
	CategoryID      *int
	Status          *Status
	ScheduledAt     *time.Time

	// Notes and Author describe the change in the recorded version.
	Notes  string
	Author *string
}

// GeneratedDraft is a resolved draft ready for editing.
type GeneratedDraft struct {
	RequestID string
	Draft     generator.Draft
	Slots     []generator.AssetSlot
	Warnings  []string
}
