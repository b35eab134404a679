package rpc

import (
	"github.com/daniilsolovey/blog-portal/internal/blog"
	"github.com/daniilsolovey/blog-portal/internal/generator"
)

type Categories []Category

func NewCategories(in []blog.Category) Categories {
	r := make(Categories, len(in))
	for i := range in {
		r[i] = NewCategory(in[i])
	}
	return r
}

type ArticleSummaries []ArticleSummary

func NewArticleSummaries(in []blog.Article) ArticleSummaries {
	r := make(ArticleSummaries, len(in))
	for i := range in {
		r[i] = NewArticleSummary(in[i])
	}
	return r
}

type ArticleVersions []ArticleVersion

func NewArticleVersions(in []blog.ArticleVersion) ArticleVersions {
	r := make(ArticleVersions, len(in))
	for i := range in {
		r[i] = NewArticleVersion(in[i])
	}
	return r
}

type AssetSlots []AssetSlot

func NewAssetSlots(in []generator.AssetSlot) AssetSlots {
	r := make(AssetSlots, len(in))
	for i := range in {
		r[i] = NewAssetSlot(in[i])
	}
	return r
}
