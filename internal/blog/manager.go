package blog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/microcosm-cc/bluemonday"

	"github.com/daniilsolovey/blog-portal/internal/db"
	"github.com/daniilsolovey/blog-portal/internal/generator"
	"github.com/daniilsolovey/blog-portal/internal/metrics"
	"github.com/daniilsolovey/blog-portal/internal/render"
)

const (
	DefaultRelatedLimit = 3
	MaxRelatedLimit     = 12

	// MaxTitleLength matches the width of the title columns.
	MaxTitleLength = 512

	excerptLength        = 160
	defaultRenderEntries = 512
)

// Generator produces a draft from a generation request.
type Generator interface {
	Generate(ctx context.Context, req generator.Request, categoryName string) (generator.Draft, error)
}

// ImageResolver replaces image placeholders of a draft.
type ImageResolver interface {
	Resolve(ctx context.Context, draft generator.Draft, topic generator.Topic) (generator.Resolution, error)
}

type Settings struct {
	FallbackImages  []string
	RenderCacheSize int
}

type Manager struct {
	store     Store
	generator Generator
	resolver  ImageResolver
	sanitizer *bluemonday.Policy
	cache     *lru.Cache[string, string]
	fallbacks []string
	logger    *slog.Logger
}

func NewManager(store Store, gen Generator, resolver ImageResolver, settings Settings, logger *slog.Logger) (*Manager, error) {
	size := settings.RenderCacheSize
	if size <= 0 {
		size = defaultRenderEntries
	}

	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, fmt.Errorf("create render cache: %w", err)
	}

	return &Manager{
		store:     store,
		generator: gen,
		resolver:  resolver,
		sanitizer: newSanitizer(),
		cache:     cache,
		fallbacks: settings.FallbackImages,
		logger:    logger,
	}, nil
}

func (m *Manager) Ping(ctx context.Context) error {
	return m.store.Ping(ctx)
}

// GenerateDraft runs generation and placeholder resolution. Nothing is persisted.
func (m *Manager) GenerateDraft(ctx context.Context, req generator.Request) (*GeneratedDraft, error) {
	requestID := uuid.NewString()
	logger := m.logger.With("requestID", requestID, "keyword", req.MainKeyword)
	start := time.Now()

	categoryName, err := m.categoryName(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	draft, err := m.generator.Generate(ctx, req, categoryName)
	if err != nil {
		metrics.RecordGeneration(generationStatus(err), time.Since(start).Seconds())
		return nil, err
	}

	resolution, err := m.resolver.Resolve(ctx, draft, generator.Topic{Keyword: req.MainKeyword, CategoryName: categoryName})
	if err != nil {
		metrics.RecordGeneration("cancelled", time.Since(start).Seconds())
		return nil, fmt.Errorf("resolve images: %w", err)
	}

	for _, slot := range resolution.Slots {
		metrics.RecordAssetSlot(slot.Fallback)
	}
	for _, w := range resolution.Warnings {
		logger.Warn("draft placeholder warning", "warning", w)
	}

	metrics.RecordGeneration("success", time.Since(start).Seconds())
	logger.Info("draft ready", "title", resolution.Draft.Title, "slots", len(resolution.Slots), "duration", time.Since(start))

	return &GeneratedDraft{
		RequestID: requestID,
		Draft:     resolution.Draft,
		Slots:     resolution.Slots,
		Warnings:  resolution.Warnings,
	}, nil
}

// CreateArticle persists a new article. No version is recorded on create.
func (m *Manager) CreateArticle(ctx context.Context, in ArticleInput) (*Article, error) {
	article := &db.Article{StatusID: db.StatusDraft}
	if err := m.apply(article, in); err != nil {
		return nil, err
	}

	created, err := m.store.CreateArticle(ctx, article)
	if err != nil {
		return nil, fmt.Errorf("db create article: %w", err)
	}

	m.logger.Info("article created", "articleID", created.ID, "slug", created.Slug)
	result := NewArticle(created)

	return &result, nil
}

// UpdateArticle merges patch onto the locked article and records the new state
// as the next version.
func (m *Manager) UpdateArticle(ctx context.Context, articleID int, patch ArticlePatch) (*Article, *ArticleVersion, error) {
	notes := strings.TrimSpace(patch.Notes)
	if notes == "" {
		notes = "Updated"
	}

	updated, version, err := m.store.UpdateArticle(ctx, articleID, func(a *db.Article) error {
		return m.merge(a, patch)
	}, db.VersionMeta{Notes: notes, CreatedBy: patch.Author})
	if err != nil {
		return nil, nil, fmt.Errorf("db update article: %w", err)
	}

	metrics.RecordVersion("update")
	m.logger.Info("article updated", "articleID", articleID, "version", version.VersionNumber)

	article, v := NewArticle(updated), NewArticleVersion(version)
	return &article, &v, nil
}

func (m *Manager) ArticleByID(ctx context.Context, articleID int) (*Article, error) {
	a, err := m.store.ArticleByID(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("db get article by id: %w", err)
	} else if a == nil {
		return nil, ErrArticleNotFound
	}

	result := NewArticle(a)
	return &result, nil
}

func (m *Manager) DeleteArticle(ctx context.Context, articleID int) error {
	if err := m.store.DeleteArticle(ctx, articleID); err != nil {
		return fmt.Errorf("db delete article: %w", err)
	}

	m.logger.Info("article deleted", "articleID", articleID)
	return nil
}

// Versions returns the history of an article, most recent first.
func (m *Manager) Versions(ctx context.Context, articleID int) ([]ArticleVersion, error) {
	if _, err := m.ArticleByID(ctx, articleID); err != nil {
		return nil, err
	}

	list, err := m.store.ArticleVersions(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("db get article versions: %w", err)
	}

	return NewArticleVersions(list), nil
}

func (m *Manager) Version(ctx context.Context, articleID, versionID int) (*ArticleVersion, error) {
	v, err := m.store.ArticleVersion(ctx, articleID, versionID)
	if err != nil {
		return nil, fmt.Errorf("db get article version: %w", err)
	}

	result := NewArticleVersion(v)
	return &result, nil
}

// RestoreVersion writes the title and content of an old version back to the
// article and records them as a new version. The old version is untouched.
func (m *Manager) RestoreVersion(ctx context.Context, articleID, versionID int, author *string) (*Article, *ArticleVersion, error) {
	source, err := m.store.ArticleVersion(ctx, articleID, versionID)
	if err != nil {
		return nil, nil, fmt.Errorf("db get article version: %w", err)
	}

	meta := db.VersionMeta{
		Notes:     fmt.Sprintf("Restored from version %d", source.VersionNumber),
		CreatedBy: author,
	}
	updated, version, err := m.store.UpdateArticle(ctx, articleID, func(a *db.Article) error {
		a.Title = source.Title
		a.Content = source.Content
		return nil
	}, meta)
	if err != nil {
		return nil, nil, fmt.Errorf("db restore article version: %w", err)
	}

	metrics.RecordVersion("restore")
	m.logger.Info("article version restored",
		"articleID", articleID,
		"from", source.VersionNumber,
		"version", version.VersionNumber)

	article, v := NewArticle(updated), NewArticleVersion(version)
	return &article, &v, nil
}

// RelatedArticles returns published articles of the same category. A nil or
// non-positive limit means DefaultRelatedLimit; limits above MaxRelatedLimit
// are capped.
func (m *Manager) RelatedArticles(ctx context.Context, articleID int, limit *int) ([]Article, error) {
	article, err := m.ArticleByID(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if article.CategoryID == nil {
		return []Article{}, nil
	}

	n := DefaultRelatedLimit
	if limit != nil && *limit > 0 {
		n = min(*limit, MaxRelatedLimit)
	}

	list, err := m.store.RelatedArticles(ctx, articleID, *article.CategoryID, n)
	if err != nil {
		return nil, fmt.Errorf("db get related articles: %w", err)
	}

	return NewArticles(list), nil
}

func (m *Manager) Categories(ctx context.Context) ([]Category, error) {
	list, err := m.store.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get categories: %w", err)
	}

	return NewCategories(list), nil
}

// apply validates in and copies it onto a.
func (m *Manager) apply(a *db.Article, in ArticleInput) error {
	title, err := validTitle(in.Title)
	if err != nil {
		return err
	}

	slug, err := validSlug(in.Slug, title)
	if err != nil {
		return err
	}

	if in.Status != "" {
		id, ok := in.Status.StatusID()
		if !ok {
			return fmt.Errorf("%w: unknown status %q", ErrInvalidArticle, in.Status)
		}
		a.StatusID = id
	}

	content := strings.TrimSpace(m.sanitizer.Sanitize(in.Content))
	excerpt := strings.TrimSpace(in.Excerpt)
	if excerpt == "" {
		excerpt = render.Excerpt(content, excerptLength)
	}

	a.Title = title
	a.Slug = slug
	a.Content = content
	a.Excerpt = excerpt
	a.FeaturedImage = strings.TrimSpace(in.FeaturedImage)
	a.MetaTitle = strings.TrimSpace(in.MetaTitle)
	a.MetaDescription = strings.TrimSpace(in.MetaDescription)
	a.MetaKeywords = cleanKeywords(in.MetaKeywords)
	a.CategoryID = in.CategoryID
	a.ScheduledAt = in.ScheduledAt

	return nil
}

// merge validates the fields set in p and copies them onto a.
func (m *Manager) merge(a *db.Article, p ArticlePatch) error {
	if p.Title != nil {
		title, err := validTitle(*p.Title)
		if err != nil {
			return err
		}
		a.Title = title
	}

	if p.Slug != nil {
		slug, err := validSlug(*p.Slug, a.Title)
		if err != nil {
			return err
		}
		a.Slug = slug
	}

	if p.Status != nil && *p.Status != "" {
		id, ok := p.Status.StatusID()
		if !ok {
			return fmt.Errorf("%w: unknown status %q", ErrInvalidArticle, *p.Status)
		}
		a.StatusID = id
	}

	if p.Content != nil {
		// a derived excerpt follows the content, a hand-written one is kept
		if p.Excerpt == nil && a.Excerpt == render.Excerpt(a.Content, excerptLength) {
			a.Excerpt = ""
		}
		a.Content = strings.TrimSpace(m.sanitizer.Sanitize(*p.Content))
	}
	if p.Excerpt != nil {
		a.Excerpt = strings.TrimSpace(*p.Excerpt)
	}
	if a.Excerpt == "" {
		a.Excerpt = render.Excerpt(a.Content, excerptLength)
	}

	if p.FeaturedImage != nil {
		a.FeaturedImage = strings.TrimSpace(*p.FeaturedImage)
	}
	if p.MetaTitle != nil {
		a.MetaTitle = strings.TrimSpace(*p.MetaTitle)
	}
	if p.MetaDescription != nil {
		a.MetaDescription = strings.TrimSpace(*p.MetaDescription)
	}
	if p.MetaKeywords != nil {
		a.MetaKeywords = cleanKeywords(*p.MetaKeywords)
	}

	if p.CategoryID != nil {
		a.CategoryID = p.CategoryID
		if *p.CategoryID == 0 {
			a.CategoryID = nil
		}
		// the stale relation must not leak into the response
		a.Category = nil
	}
	if p.ScheduledAt != nil {
		a.ScheduledAt = p.ScheduledAt
		if p.ScheduledAt.IsZero() {
			a.ScheduledAt = nil
		}
	}

	return nil
}

func validTitle(s string) (string, error) {
	title := strings.TrimSpace(s)
	switch {
	case title == "":
		return "", fmt.Errorf("%w: title is required", ErrInvalidArticle)
	case utf8.RuneCountInString(title) > MaxTitleLength:
		return "", fmt.Errorf("%w: title is longer than %d characters", ErrInvalidArticle, MaxTitleLength)
	}

	return title, nil
}

// validSlug normalizes slug, deriving it from title when empty.
func validSlug(slug, title string) (string, error) {
	result := generator.Slugify(slug)
	if result == "" {
		result = generator.Slugify(title)
	}
	if result == "" {
		return "", fmt.Errorf("%w: cannot derive slug from title %q", ErrInvalidArticle, title)
	}

	return result, nil
}

func (m *Manager) categoryName(ctx context.Context, categoryID *int) (string, error) {
	if categoryID == nil {
		return "", nil
	}

	c, err := m.store.CategoryByID(ctx, *categoryID)
	if err != nil {
		return "", fmt.Errorf("db get category: %w", err)
	} else if c == nil {
		return "", fmt.Errorf("%w: unknown category %d", generator.ErrInvalidRequest, *categoryID)
	}

	return c.Title, nil
}

func cleanKeywords(list []string) []string {
	result := make([]string, 0, len(list))
	for _, kw := range list {
		if kw = strings.TrimSpace(kw); kw != "" {
			result = append(result, kw)
		}
	}

	return result
}

func generationStatus(err error) string {
	switch {
	case errors.Is(err, generator.ErrInvalidRequest):
		return "invalid"
	case errors.Is(err, generator.ErrGenerationIncomplete):
		return "incomplete"
	case errors.Is(err, generator.ErrGenerationUnavailable):
		return "unavailable"
	default:
		return "error"
	}
}
