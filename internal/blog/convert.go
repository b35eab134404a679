package blog

import (
	"github.com/daniilsolovey/blog-portal/internal/db"
)

func NewCategory(c *db.Category) Category {
	return Category{Category: *c}
}

func NewCategories(list []db.Category) []Category {
	result := make([]Category, len(list))
	for i := range list {
		result[i] = NewCategory(&list[i])
	}

	return result
}

func NewArticle(a *db.Article) Article {
	return Article{
		Article: *a,
		Status:  StatusFromID(a.StatusID),
	}
}

func NewArticles(list []db.Article) []Article {
	result := make([]Article, len(list))
	for i := range list {
		result[i] = NewArticle(&list[i])
	}

	return result
}

func NewArticleVersion(v *db.ArticleVersion) ArticleVersion {
	return ArticleVersion{ArticleVersion: *v}
}

func NewArticleVersions(list []db.ArticleVersion) []ArticleVersion {
	result := make([]ArticleVersion, len(list))
	for i := range list {
		result[i] = NewArticleVersion(&list[i])
	}

	return result
}

func StatusFromID(id int) Status {
	switch id {
	case db.StatusPublished:
		return StatusPublished
	case db.StatusArchived:
		return StatusArchived
	default:
		return StatusDraft
	}
}

// StatusID maps a status to its database id; ok is false for unknown values.
func (s Status) StatusID() (int, bool) {
	switch s {
	case StatusDraft:
		return db.StatusDraft, true
	case StatusPublished:
		return db.StatusPublished, true
	case StatusArchived:
		return db.StatusArchived, true
	default:
		return 0, false
	}
}
