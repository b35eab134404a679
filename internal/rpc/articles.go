package rpc

import (
	"context"
	"errors"
	"net/http"

	"github.com/daniilsolovey/blog-portal/internal/blog"
	"github.com/daniilsolovey/blog-portal/internal/generator"
	"github.com/vmkteam/zenrpc/v2"
)

//go:generate zenrpc

// ArticleService provides RPC methods for articles, their versions and generation.
type ArticleService struct {
	zenrpc.Service
	manager *blog.Manager
}

func NewArticleService(manager *blog.Manager) *ArticleService {
	return &ArticleService{manager: manager}
}

// newError maps business errors to RPC errors with HTTP-like codes.
func newError(err error) error {
	switch {
	case errors.Is(err, blog.ErrInvalidArticle), errors.Is(err, generator.ErrInvalidRequest):
		return zenrpc.NewStringError(http.StatusBadRequest, err.Error())
	case errors.Is(err, blog.ErrArticleNotFound):
		return zenrpc.NewStringError(http.StatusNotFound, "article not found")
	case errors.Is(err, blog.ErrVersionNotFound):
		return zenrpc.NewStringError(http.StatusNotFound, "version not found")
	case errors.Is(err, blog.ErrSlugConflict):
		return zenrpc.NewStringError(http.StatusConflict, "slug already in use")
	case errors.Is(err, generator.ErrGenerationIncomplete):
		return zenrpc.NewStringError(http.StatusBadGateway, "generated article is incomplete, please try again")
	case errors.Is(err, generator.ErrGenerationUnavailable):
		return zenrpc.NewStringError(http.StatusServiceUnavailable, "generation service unavailable, please try again later")
	}

	return err
}

func checkID(id int) error {
	if id <= 0 {
		return zenrpc.NewStringError(http.StatusBadRequest, "id must be positive")
	}
	return nil
}

// Create persists a new article. No version is recorded on create.
//
//zenrpc:article article fields
//zenrpc:return created article
//zenrpc:400 invalid article
//zenrpc:409 slug already in use
//zenrpc:500 internal server error
func (s *ArticleService) Create(ctx context.Context, article ArticleInput) (*Article, error) {
	created, err := s.manager.CreateArticle(ctx, article.ToModel())
	if err != nil {
		return nil, newError(err)
	}

	a := NewArticle(*created)
	return &a, nil
}

// Update merges the given fields onto the article and records the version it produced.
//
//zenrpc:id article numeric ID
//zenrpc:article changed fields, omitted ones are kept
//zenrpc:return updated article and its new version
//zenrpc:400 invalid article
//zenrpc:404 article not found
//zenrpc:409 slug already in use
//zenrpc:500 internal server error
func (s *ArticleService) Update(ctx context.Context, id int, article ArticlePatch) (*ArticleUpdate, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	updated, version, err := s.manager.UpdateArticle(ctx, id, article.ToModel())
	if err != nil {
		return nil, newError(err)
	}

	return NewArticleUpdate(updated, version), nil
}

// Get retrieves an article with its normalized display HTML.
//
//zenrpc:id article numeric ID
//zenrpc:return article with html
//zenrpc:400 id must be positive
//zenrpc:404 article not found
//zenrpc:500 internal server error
func (s *ArticleService) Get(ctx context.Context, id int) (*RenderedArticle, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	rendered, err := s.manager.RenderArticle(ctx, id)
	if err != nil {
		return nil, newError(err)
	}

	r := NewRenderedArticle(*rendered)
	return &r, nil
}

// Delete removes an article together with its versions.
//
//zenrpc:id article numeric ID
//zenrpc:return true on success
//zenrpc:400 id must be positive
//zenrpc:404 article not found
//zenrpc:500 internal server error
func (s *ArticleService) Delete(ctx context.Context, id int) (bool, error) {
	if err := checkID(id); err != nil {
		return false, err
	}

	if err := s.manager.DeleteArticle(ctx, id); err != nil {
		return false, newError(err)
	}

	return true, nil
}

// Versions lists article versions, newest first.
//
//zenrpc:id article numeric ID
//zenrpc:return list of versions
//zenrpc:404 article not found
//zenrpc:500 internal server error
func (s *ArticleService) Versions(ctx context.Context, id int) (ArticleVersions, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	versions, err := s.manager.Versions(ctx, id)
	if err != nil {
		return nil, newError(err)
	}

	return NewArticleVersions(versions), nil
}

// Version retrieves a single version of the article.
//
//zenrpc:id article numeric ID
//zenrpc:versionId version numeric ID
//zenrpc:return version
//zenrpc:404 version not found
//zenrpc:500 internal server error
func (s *ArticleService) Version(ctx context.Context, id, versionId int) (*ArticleVersion, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	if err := checkID(versionId); err != nil {
		return nil, err
	}

	version, err := s.manager.Version(ctx, id, versionId)
	if err != nil {
		return nil, newError(err)
	}

	v := NewArticleVersion(*version)
	return &v, nil
}

// Restore copies title and content of a version back into the article and records a new version.
//
//zenrpc:id article numeric ID
//zenrpc:versionId version numeric ID
//zenrpc:author optional author of the restore
//zenrpc:return restored article and its new version
//zenrpc:404 article or version not found
//zenrpc:500 internal server error
func (s *ArticleService) Restore(ctx context.Context, id, versionId int, author *string) (*ArticleUpdate, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	if err := checkID(versionId); err != nil {
		return nil, err
	}

	restored, version, err := s.manager.RestoreVersion(ctx, id, versionId, author)
	if err != nil {
		return nil, newError(err)
	}

	return NewArticleUpdate(restored, version), nil
}

// Related lists published articles of the same category, newest first.
//
//zenrpc:id article numeric ID
//zenrpc:limit=3 max items, capped at 12
//zenrpc:return list of article summaries
//zenrpc:404 article not found
//zenrpc:500 internal server error
func (s *ArticleService) Related(ctx context.Context, id int, limit *int) (ArticleSummaries, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	related, err := s.manager.RelatedArticles(ctx, id, limit)
	if err != nil {
		return nil, newError(err)
	}

	return NewArticleSummaries(related), nil
}

// Generate produces an article draft with resolved images.
//
//zenrpc:req generation request
//zenrpc:return generated draft
//zenrpc:400 invalid request
//zenrpc:502 generated article is incomplete
//zenrpc:503 generation service unavailable
//zenrpc:500 internal server error
func (s *ArticleService) Generate(ctx context.Context, req GenerateRequest) (*GeneratedDraft, error) {
	draft, err := s.manager.GenerateDraft(ctx, req.ToModel())
	if err != nil {
		return nil, newError(err)
	}

	d := NewGeneratedDraft(*draft)
	return &d, nil
}

// Preview normalizes unsaved markup the way a saved article is rendered.
//
//zenrpc:req markup to render
//zenrpc:return display html
func (s *ArticleService) Preview(req PreviewRequest) string {
	return s.manager.Preview(req.Content, req.Title, req.FeaturedImage)
}

// Categories retrieves all categories ordered by orderNumber.
//
//zenrpc:return list of categories
//zenrpc:500 internal server error
func (s *ArticleService) Categories(ctx context.Context) (Categories, error) {
	categories, err := s.manager.Categories(ctx)
	if err != nil {
		return nil, err
	}

	return NewCategories(categories), nil
}
