package rest

import (
	"github.com/daniilsolovey/blog-portal/internal/blog"
	"github.com/daniilsolovey/blog-portal/internal/generator"
)

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

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
		article.Category = &Category{CategoryID: a.Category.ID, Title: a.Category.Title}
	}

	return article
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

func NewDraft(d generator.Draft) *Draft {
	return &Draft{
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

func (in ArticleInput) ToBlog() blog.ArticleInput {
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

func (in ArticlePatch) ToBlog() blog.ArticlePatch {
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

func (r GenerateRequest) ToGenerator() generator.Request {
	return generator.Request{
		MainKeyword:         r.MainKeyword,
		SecondaryKeywords:   r.SecondaryKeywords,
		CategoryID:          r.CategoryID,
		TitleInstructions:   r.TitleInstructions,
		ContentInstructions: r.ContentInstructions,
	}
}
