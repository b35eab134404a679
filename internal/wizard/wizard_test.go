package wizard

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/daniilsolovey/blog-portal/internal/blog"
	"github.com/daniilsolovey/blog-portal/internal/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockGenerator struct {
	GenerateDraftFunc func(ctx context.Context, req generator.Request) (*blog.GeneratedDraft, error)
}

func (m *mockGenerator) GenerateDraft(ctx context.Context, req generator.Request) (*blog.GeneratedDraft, error) {
	return m.GenerateDraftFunc(ctx, req)
}

type mockCreator struct {
	CreateArticleFunc func(ctx context.Context, in blog.ArticleInput) (*blog.Article, error)
}

func (m *mockCreator) CreateArticle(ctx context.Context, in blog.ArticleInput) (*blog.Article, error) {
	return m.CreateArticleFunc(ctx, in)
}

func okGenerator() *mockGenerator {
	return &mockGenerator{GenerateDraftFunc: func(_ context.Context, req generator.Request) (*blog.GeneratedDraft, error) {
		return &blog.GeneratedDraft{Draft: generator.Draft{
			Title:         "About " + req.MainKeyword,
			Content:       "<p>body</p>",
			FeaturedImage: "https://img.example.com/f.jpg",
		}}, nil
	}}
}

func TestWizard_HappyPath(t *testing.T) {
	ctx := context.Background()
	var saved blog.ArticleInput
	creator := &mockCreator{CreateArticleFunc: func(_ context.Context, in blog.ArticleInput) (*blog.Article, error) {
		saved = in
		return &blog.Article{Status: in.Status}, nil
	}}

	w := New(okGenerator(), creator)
	assert.Equal(t, Setup, w.State())

	require.NoError(t, w.Generate(ctx, generator.Request{MainKeyword: "tea"}))
	assert.Equal(t, Review, w.State())

	require.NoError(t, w.Edit(func(d *generator.Draft) { d.Title = "Edited" }))
	require.NoError(t, w.Next())
	assert.Equal(t, ImageStep, w.State())

	require.NoError(t, w.SetFeaturedImage(" https://img.example.com/other.jpg "))
	require.NoError(t, w.Next())
	assert.Equal(t, Publish, w.State())

	article, err := w.Publish(ctx, blog.StatusPublished)
	require.NoError(t, err)
	assert.Equal(t, blog.StatusPublished, article.Status)
	assert.Equal(t, Published, w.State())
	assert.Equal(t, "Edited", saved.Title)
	assert.Equal(t, "https://img.example.com/other.jpg", saved.FeaturedImage)
}

func TestWizard_GenerationFailureReturnsToSetup(t *testing.T) {
	gen := &mockGenerator{GenerateDraftFunc: func(context.Context, generator.Request) (*blog.GeneratedDraft, error) {
		return nil, fmt.Errorf("%w: upstream down", generator.ErrGenerationUnavailable)
	}}
	w := New(gen, nil)
	req := generator.Request{MainKeyword: "tea", SecondaryKeywords: "green", TitleInstructions: "short"}

	err := w.Generate(context.Background(), req)
	assert.ErrorIs(t, err, generator.ErrGenerationUnavailable)
	assert.Equal(t, Setup, w.State())
	assert.Equal(t, req, w.Request())
	assert.Contains(t, w.LastError(), "upstream down")
	assert.Nil(t, w.Draft())

	gen.GenerateDraftFunc = okGenerator().GenerateDraftFunc
	require.NoError(t, w.Generate(context.Background(), w.Request()))
	assert.Equal(t, Review, w.State())
	assert.Empty(t, w.LastError())
}

func TestWizard_SetupRequiresKeyword(t *testing.T) {
	called := false
	gen := &mockGenerator{GenerateDraftFunc: func(context.Context, generator.Request) (*blog.GeneratedDraft, error) {
		called = true
		return nil, nil
	}}
	w := New(gen, nil)

	err := w.Generate(context.Background(), generator.Request{MainKeyword: "   "})
	assert.ErrorIs(t, err, generator.ErrInvalidRequest)
	assert.Equal(t, Setup, w.State())
	assert.NotEmpty(t, w.LastError())
	assert.False(t, called)
}

func TestWizard_InvalidTransitions(t *testing.T) {
	ctx := context.Background()
	w := New(okGenerator(), nil)

	assert.ErrorIs(t, w.Next(), ErrInvalidTransition)
	assert.ErrorIs(t, w.SetFeaturedImage("x"), ErrInvalidTransition)
	assert.ErrorIs(t, w.Edit(func(*generator.Draft) {}), ErrInvalidTransition)
	_, err := w.Publish(ctx, blog.StatusDraft)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	require.NoError(t, w.Generate(ctx, generator.Request{MainKeyword: "tea"}))
	assert.ErrorIs(t, w.Generate(ctx, generator.Request{MainKeyword: "again"}), ErrInvalidTransition)
}

func TestWizard_PublishFailureKeepsState(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("slug taken")
	w := New(okGenerator(), &mockCreator{CreateArticleFunc: func(context.Context, blog.ArticleInput) (*blog.Article, error) {
		return nil, boom
	}})

	require.NoError(t, w.Generate(ctx, generator.Request{MainKeyword: "tea"}))
	require.NoError(t, w.Next())
	require.NoError(t, w.Next())

	_, err := w.Publish(ctx, blog.StatusDraft)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, Publish, w.State())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "setup", Setup.String())
	assert.Equal(t, "images", ImageStep.String())
	assert.Equal(t, "state(42)", State(42).String())
}
