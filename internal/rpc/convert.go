package rpc

import (
	"github.com/daniilsolovey/blog-portal/internal/blog"
	"github.com/daniilsolovey/blog-portal/internal/generator"
)

func NewCategory(c blog.Category) Category {
	return Category{
		CategoryID: c.ID,
		Title:      c.Title,
	}
}

func NewArticle(a blog.Article) Article {
	article := Article{
		ArticleID:            a.ID,
		CategoryID:           a.CategoryID,
		Title:                a.Title,
		Slug:                 a.Slug,
		Excerpt:              a.Excerpt,
		Content:              a.Content,
		FeaturedImage:        a.FeaturedImage,
		MetaTitle:            a.MetaTitle,
		MetaDescription:      a.MetaDescription,
		MetaKeywords:         a.MetaKeywords,
		Status:               string(a.Status),
		ScheduledAt:          a.ScheduledAt,
		CurrentVersionNumber: a.CurrentVersionNumber,
		CreatedAt:            a.CreatedAt,
		UpdatedAt:            a.UpdatedAt,
	}

	if a.Category != nil {
		category := NewCategory(blog.NewCategory(a.Category))
		article.Category = &category
	}

	return article
}

func NewRenderedArticle(r blog.RenderedArticle) RenderedArticle {
	return RenderedArticle{
		Article: NewArticle(r.Article),
		HTML:    r.HTML,
	}
}

func NewArticleSummary(a blog.Article) ArticleSummary {
	return ArticleSummary{
		ArticleID:     a.ID,
		CategoryID:    a.CategoryID,
		Title:         a.Title,
		Slug:          a.Slug,
		Excerpt:       a.Excerpt,
		FeaturedImage: a.FeaturedImage,
		CreatedAt:     a.CreatedAt,
	}
}

func NewArticleVersion(v blog.ArticleVersion) ArticleVersion {
	return ArticleVersion{
		VersionID:     v.ID,
		ArticleID:     v.ArticleID,
		VersionNumber: v.VersionNumber,
		Title:         v.Title,
		Content:       v.Content,
		Notes:         v.Notes,
		CreatedAt:     v.CreatedAt,
		CreatedBy:     v.CreatedBy,
	}
}

func NewArticleUpdate(a *blog.Article, v *blog.ArticleVersion) *ArticleUpdate {
	return &ArticleUpdate{
		Article: NewArticle(*a),
		Version: NewArticleVersion(*v),
	}
}

func NewDraft(d generator.Draft) Draft {
	return Draft{
		Title:           d.Title,
		Slug:            d.Slug,
		Excerpt:         d.Excerpt,
		Content:         d.Content,
		FeaturedImage:   d.FeaturedImage,
		MetaTitle:       d.MetaTitle,
		MetaDescription: d.MetaDescription,
		MetaKeywords:    d.MetaKeywords,
		CategoryID:      d.CategoryID,
	}
}

func NewAssetSlot(s generator.AssetSlot) AssetSlot {
	return AssetSlot{
		SlotIndex:   s.SlotIndex,
		Query:       s.Query,
		ResolvedURL: s.ResolvedURL,
		Fallback:    s.Fallback,
	}
}

func NewGeneratedDraft(d blog.GeneratedDraft) GeneratedDraft {
	return GeneratedDraft{
		RequestID: d.RequestID,
		Draft:     NewDraft(d.Draft),
		Slots:     NewAssetSlots(d.Slots),
		Warnings:  d.Warnings,
	}
}
