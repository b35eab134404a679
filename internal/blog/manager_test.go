package blog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/daniilsolovey/blog-portal/internal/assets"
	"github.com/daniilsolovey/blog-portal/internal/catalog"
	"github.com/daniilsolovey/blog-portal/internal/generator"
	"github.com/daniilsolovey/blog-portal/internal/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noOpLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockGenerator struct {
	GenerateFunc func(ctx context.Context, req generator.Request, categoryName string) (generator.Draft, error)
}

func (m *mockGenerator) Generate(ctx context.Context, req generator.Request, categoryName string) (generator.Draft, error) {
	return m.GenerateFunc(ctx, req, categoryName)
}

func newTestManager(t *testing.T, gen Generator) *Manager {
	t.Helper()

	if gen == nil {
		gen = generator.NewOrchestrator(generator.MockClient{}, time.Second, noOpLogger())
	}
	assigner := assets.NewAssigner(catalog.Default(), time.Now, assets.GlobalRandom{})
	searcher := assets.NewTemplateSearcher("https://images.example.com/photo?q={query}&sig={seed}")
	resolver := generator.NewResolver(assigner, searcher, nil, time.Second, noOpLogger())

	m, err := NewManager(memstore.New(memstore.DefaultCategories()), gen, resolver, Settings{
		FallbackImages: []string{"https://images.example.com/fallback.jpg"},
	}, noOpLogger())
	require.NoError(t, err)

	return m
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func TestManager_GenerateDraft(t *testing.T) {
	ctx := context.Background()

	t.Run("ResolvesEveryPlaceholder", func(t *testing.T) {
		m := newTestManager(t, nil)

		got, err := m.GenerateDraft(ctx, generator.Request{MainKeyword: "quantum computing", CategoryID: intPtr(1)})
		require.NoError(t, err)

		assert.NotEmpty(t, got.RequestID)
		assert.NotContains(t, got.Draft.Content, "[IMAGE_")
		assert.True(t, strings.HasPrefix(got.Draft.FeaturedImage, "https://images.example.com/photo?q="))
		assert.Len(t, got.Slots, 5)
		assert.Empty(t, got.Warnings)
	})

	t.Run("CategoryNamePassedToGenerator", func(t *testing.T) {
		var category string
		m := newTestManager(t, &mockGenerator{GenerateFunc: func(_ context.Context, _ generator.Request, name string) (generator.Draft, error) {
			category = name
			return generator.Draft{Title: "T", Content: "<p>x</p>"}, nil
		}})

		_, err := m.GenerateDraft(ctx, generator.Request{MainKeyword: "bread", CategoryID: intPtr(8)})
		require.NoError(t, err)
		assert.Equal(t, "Food", category)
	})

	t.Run("UnknownCategory", func(t *testing.T) {
		m := newTestManager(t, nil)
		_, err := m.GenerateDraft(ctx, generator.Request{MainKeyword: "bread", CategoryID: intPtr(404)})
		assert.ErrorIs(t, err, generator.ErrInvalidRequest)
	})

	t.Run("GenerationFailurePropagates", func(t *testing.T) {
		m := newTestManager(t, &mockGenerator{GenerateFunc: func(context.Context, generator.Request, string) (generator.Draft, error) {
			return generator.Draft{}, fmt.Errorf("%w: title missing", generator.ErrGenerationIncomplete)
		}})

		_, err := m.GenerateDraft(ctx, generator.Request{MainKeyword: "bread"})
		assert.ErrorIs(t, err, generator.ErrGenerationIncomplete)
	})
}

func TestManager_CreateArticle(t *testing.T) {
	ctx := context.Background()

	t.Run("Defaults", func(t *testing.T) {
		m := newTestManager(t, nil)

		a, err := m.CreateArticle(ctx, ArticleInput{
			Title:   "Hello, World!",
			Content: `<p>First paragraph here.</p><script>alert(1)</script><div class="callout callout-info" data-callout="info"><p>Tip: x</p></div>`,
		})
		require.NoError(t, err)

		assert.Equal(t, "hello-world", a.Slug)
		assert.Equal(t, StatusDraft, a.Status)
		assert.Equal(t, "First paragraph here.", a.Excerpt)
		assert.NotContains(t, a.Content, "<script>")
		assert.Contains(t, a.Content, `data-callout="info"`)
		assert.Zero(t, a.CurrentVersionNumber)

		versions, err := m.Versions(ctx, a.ID)
		require.NoError(t, err)
		assert.Empty(t, versions)
	})

	t.Run("Validation", func(t *testing.T) {
		m := newTestManager(t, nil)

		_, err := m.CreateArticle(ctx, ArticleInput{Title: "  "})
		assert.ErrorIs(t, err, ErrInvalidArticle)

		_, err = m.CreateArticle(ctx, ArticleInput{Title: "!!!"})
		assert.ErrorIs(t, err, ErrInvalidArticle)

		_, err = m.CreateArticle(ctx, ArticleInput{Title: "ok", Status: "deleted"})
		assert.ErrorIs(t, err, ErrInvalidArticle)
	})

	t.Run("SlugConflict", func(t *testing.T) {
		m := newTestManager(t, nil)

		_, err := m.CreateArticle(ctx, ArticleInput{Title: "Same"})
		require.NoError(t, err)

		_, err = m.CreateArticle(ctx, ArticleInput{Title: "Other", Slug: "same"})
		assert.ErrorIs(t, err, ErrSlugConflict)
	})
}

func TestManager_VersionHistory(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, nil)
	author := "editor"

	a, err := m.CreateArticle(ctx, ArticleInput{Title: "History", Content: "<p>original</p>"})
	require.NoError(t, err)

	_, v1, err := m.UpdateArticle(ctx, a.ID, ArticlePatch{Content: strPtr("<p>first edit</p>"), Author: &author})
	require.NoError(t, err)
	assert.Equal(t, 1, v1.VersionNumber)
	assert.Equal(t, "Updated", v1.Notes)
	assert.Equal(t, "<p>first edit</p>", v1.Content)

	updated, v2, err := m.UpdateArticle(ctx, a.ID, ArticlePatch{Title: strPtr("History v2"), Content: strPtr("<p>second edit</p>"), Notes: "rewrite"})
	require.NoError(t, err)
	assert.Equal(t, 2, v2.VersionNumber)
	assert.Equal(t, 2, updated.CurrentVersionNumber)
	assert.Equal(t, "history", updated.Slug, "slug is kept unless a new one is given")

	restored, v3, err := m.RestoreVersion(ctx, a.ID, v1.ID, &author)
	require.NoError(t, err)
	assert.Equal(t, 3, v3.VersionNumber)
	assert.Equal(t, "Restored from version 1", v3.Notes)
	assert.Equal(t, "<p>first edit</p>", restored.Content)
	assert.Equal(t, "History", restored.Title)
	assert.Equal(t, 3, restored.CurrentVersionNumber)

	old, err := m.Version(ctx, a.ID, v1.ID)
	require.NoError(t, err)
	assert.Equal(t, v1.ArticleVersion, old.ArticleVersion, "restored version is untouched")

	versions, err := m.Versions(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, versions, 3)
	for i, v := range versions {
		assert.Equal(t, 3-i, v.VersionNumber)
	}
}

func TestManager_VersionErrors(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, nil)

	a, err := m.CreateArticle(ctx, ArticleInput{Title: "A"})
	require.NoError(t, err)
	b, err := m.CreateArticle(ctx, ArticleInput{Title: "B"})
	require.NoError(t, err)

	_, vb, err := m.UpdateArticle(ctx, b.ID, ArticlePatch{Title: strPtr("B")})
	require.NoError(t, err)

	_, err = m.Version(ctx, a.ID, vb.ID)
	assert.ErrorIs(t, err, ErrVersionNotFound)

	_, _, err = m.RestoreVersion(ctx, a.ID, vb.ID, nil)
	assert.ErrorIs(t, err, ErrVersionNotFound)

	_, err = m.Versions(ctx, 999)
	assert.ErrorIs(t, err, ErrArticleNotFound)

	_, _, err = m.UpdateArticle(ctx, 999, ArticlePatch{Title: strPtr("x")})
	assert.ErrorIs(t, err, ErrArticleNotFound)

	_, _, err = m.UpdateArticle(ctx, a.ID, ArticlePatch{Title: strPtr("  ")})
	assert.ErrorIs(t, err, ErrInvalidArticle)

	_, _, err = m.UpdateArticle(ctx, a.ID, ArticlePatch{Title: strPtr(strings.Repeat("x", MaxTitleLength+1))})
	assert.ErrorIs(t, err, ErrInvalidArticle)

	_, _, err = m.UpdateArticle(ctx, a.ID, ArticlePatch{Status: statusPtr("deleted")})
	assert.ErrorIs(t, err, ErrInvalidArticle)

	versions, err := m.Versions(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, versions, "rejected updates record nothing")
}

func statusPtr(s Status) *Status { return &s }

func TestManager_UpdateArticleMergesPatch(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, nil)

	a, err := m.CreateArticle(ctx, ArticleInput{
		Title:         "Cold Brew",
		Content:       "<p>Steep overnight.</p>",
		FeaturedImage: "https://img.example.com/brew.jpg",
		MetaKeywords:  []string{"coffee"},
		CategoryID:    intPtr(8),
		Status:        StatusPublished,
	})
	require.NoError(t, err)

	t.Run("TitleOnlyKeepsOtherFields", func(t *testing.T) {
		updated, version, err := m.UpdateArticle(ctx, a.ID, ArticlePatch{Title: strPtr("Cold Brew at Home")})
		require.NoError(t, err)

		assert.Equal(t, "Cold Brew at Home", updated.Title)
		assert.Equal(t, "cold-brew", updated.Slug)
		assert.Equal(t, "<p>Steep overnight.</p>", updated.Content)
		assert.Equal(t, "https://img.example.com/brew.jpg", updated.FeaturedImage)
		assert.Equal(t, []string{"coffee"}, updated.MetaKeywords)
		assert.Equal(t, StatusPublished, updated.Status)
		require.NotNil(t, updated.CategoryID)
		assert.Equal(t, 8, *updated.CategoryID)
		require.NotNil(t, updated.Category)
		assert.Equal(t, "Food", updated.Category.Title)

		assert.Equal(t, "Cold Brew at Home", version.Title)
		assert.Equal(t, "<p>Steep overnight.</p>", version.Content)
	})

	t.Run("DerivedExcerptFollowsContent", func(t *testing.T) {
		updated, _, err := m.UpdateArticle(ctx, a.ID, ArticlePatch{Content: strPtr("<p>Use coarse grounds.</p>")})
		require.NoError(t, err)
		assert.Equal(t, "Use coarse grounds.", updated.Excerpt)

		updated, _, err = m.UpdateArticle(ctx, a.ID, ArticlePatch{Excerpt: strPtr("Hand written")})
		require.NoError(t, err)
		updated, _, err = m.UpdateArticle(ctx, a.ID, ArticlePatch{Content: strPtr("<p>Steep overnight.</p>")})
		require.NoError(t, err)
		assert.Equal(t, "Hand written", updated.Excerpt)
	})

	t.Run("ExplicitSlug", func(t *testing.T) {
		updated, _, err := m.UpdateArticle(ctx, a.ID, ArticlePatch{Slug: strPtr("Brewing Guide")})
		require.NoError(t, err)
		assert.Equal(t, "brewing-guide", updated.Slug)
		assert.Equal(t, "Cold Brew at Home", updated.Title)
	})

	t.Run("EmptySlugDerivesFromTitle", func(t *testing.T) {
		updated, _, err := m.UpdateArticle(ctx, a.ID, ArticlePatch{Slug: strPtr("")})
		require.NoError(t, err)
		assert.Equal(t, "cold-brew-at-home", updated.Slug)
	})

	t.Run("ClearsCategoryAndSchedule", func(t *testing.T) {
		at := time.Date(2026, 11, 1, 9, 0, 0, 0, time.UTC)
		scheduled, _, err := m.UpdateArticle(ctx, a.ID, ArticlePatch{ScheduledAt: &at})
		require.NoError(t, err)
		require.NotNil(t, scheduled.ScheduledAt)

		updated, _, err := m.UpdateArticle(ctx, a.ID, ArticlePatch{CategoryID: intPtr(0), ScheduledAt: &time.Time{}})
		require.NoError(t, err)
		assert.Nil(t, updated.CategoryID)
		assert.Nil(t, updated.Category)
		assert.Nil(t, updated.ScheduledAt)
		assert.Equal(t, "<p>Steep overnight.</p>", updated.Content)
	})
}

func TestManager_ConcurrentUpdates(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, nil)

	a, err := m.CreateArticle(ctx, ArticleInput{Title: "Busy"})
	require.NoError(t, err)

	const writers = 20
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := m.UpdateArticle(ctx, a.ID, ArticlePatch{Content: strPtr(fmt.Sprintf("<p>%d</p>", i))})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	versions, err := m.Versions(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, versions, writers)

	seen := make(map[int]bool)
	for _, v := range versions {
		seen[v.VersionNumber] = true
	}
	for n := 1; n <= writers; n++ {
		assert.True(t, seen[n], "missing version %d", n)
	}
}

func TestManager_RelatedArticles(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, nil)

	self, err := m.CreateArticle(ctx, ArticleInput{Title: "Self", CategoryID: intPtr(1), Status: StatusPublished})
	require.NoError(t, err)
	for i := 0; i < 14; i++ {
		_, err := m.CreateArticle(ctx, ArticleInput{Title: fmt.Sprintf("Peer %d", i), CategoryID: intPtr(1), Status: StatusPublished})
		require.NoError(t, err)
	}
	loner, err := m.CreateArticle(ctx, ArticleInput{Title: "No category", Status: StatusPublished})
	require.NoError(t, err)

	related, err := m.RelatedArticles(ctx, self.ID, nil)
	require.NoError(t, err)
	assert.Len(t, related, DefaultRelatedLimit)

	related, err = m.RelatedArticles(ctx, self.ID, intPtr(100))
	require.NoError(t, err)
	assert.Len(t, related, MaxRelatedLimit)
	for _, a := range related {
		assert.NotEqual(t, self.ID, a.ID)
		assert.Equal(t, StatusPublished, a.Status)
	}

	related, err = m.RelatedArticles(ctx, loner.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, related)

	_, err = m.RelatedArticles(ctx, 999, nil)
	assert.ErrorIs(t, err, ErrArticleNotFound)
}

func TestManager_RenderArticle(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, nil)

	a, err := m.CreateArticle(ctx, ArticleInput{
		Title:         "Rendered",
		Content:       `<p>Tip: remember to hydrate.</p><img src="/local.png" alt="pic">`,
		FeaturedImage: "https://images.example.com/featured.jpg",
	})
	require.NoError(t, err)

	first, err := m.RenderArticle(ctx, a.ID)
	require.NoError(t, err)
	assert.Contains(t, first.HTML, `data-callout="info"`)
	assert.Contains(t, first.HTML, `src="https://images.example.com/featured.jpg"`)

	second, err := m.RenderArticle(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, first.HTML, second.HTML)
	assert.Equal(t, 1, m.cache.Len())

	_, err = m.RenderArticle(ctx, 999)
	assert.ErrorIs(t, err, ErrArticleNotFound)
}

func TestManager_Preview(t *testing.T) {
	m := newTestManager(t, nil)

	out := m.Preview(`<p>Warning: hot surface.</p><script>x()</script>`, "Preview", "")
	assert.Contains(t, out, `callout-warning`)
	assert.NotContains(t, out, "script")
	assert.Contains(t, out, `class="drop-cap"`)
}

func TestManager_DeleteArticle(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, nil)

	a, err := m.CreateArticle(ctx, ArticleInput{Title: "Doomed"})
	require.NoError(t, err)

	require.NoError(t, m.DeleteArticle(ctx, a.ID))
	_, err = m.ArticleByID(ctx, a.ID)
	assert.ErrorIs(t, err, ErrArticleNotFound)
	assert.True(t, errors.Is(m.DeleteArticle(ctx, a.ID), ErrArticleNotFound))
}

func TestManager_Categories(t *testing.T) {
	m := newTestManager(t, nil)

	categories, err := m.Categories(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, categories)
	assert.Equal(t, "Technology", categories[0].Title)
}
