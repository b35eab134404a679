package blog

import (
	"context"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/daniilsolovey/blog-portal/internal/metrics"
	"github.com/daniilsolovey/blog-portal/internal/render"
)

// RenderArticle returns the article with its normalized display HTML.
// Rendered bodies are cached by the hash of everything Normalize reads.
func (m *Manager) RenderArticle(ctx context.Context, articleID int) (*RenderedArticle, error) {
	article, err := m.ArticleByID(ctx, articleID)
	if err != nil {
		return nil, err
	}

	c := render.Context{
		FeaturedImage:  article.FeaturedImage,
		Title:          article.Title,
		FallbackImages: m.fallbacks,
	}

	return &RenderedArticle{
		Article: *article,
		HTML:    m.normalize(article.Content, c),
	}, nil
}

// Preview normalizes unsaved markup the same way a saved article is rendered.
func (m *Manager) Preview(html, title, featuredImage string) string {
	clean := m.sanitizer.Sanitize(html)
	return m.normalize(clean, render.Context{
		FeaturedImage:  featuredImage,
		Title:          title,
		FallbackImages: m.fallbacks,
	})
}

func (m *Manager) normalize(html string, c render.Context) string {
	key := renderKey(html, c)
	if out, ok := m.cache.Get(key); ok {
		metrics.RecordRenderCache(true)
		return out
	}

	metrics.RecordRenderCache(false)
	out := render.Normalize(html, c)
	m.cache.Add(key, out)

	return out
}

func renderKey(html string, c render.Context) string {
	d := xxhash.New()
	_, _ = d.WriteString(c.Title)
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(c.FeaturedImage)
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(html)

	return strconv.FormatUint(d.Sum64(), 16)
}
