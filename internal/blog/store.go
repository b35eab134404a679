package blog

import (
	"context"
	"errors"

	"github.com/daniilsolovey/blog-portal/internal/db"
)

var (
	ErrArticleNotFound = db.ErrArticleNotFound
	ErrVersionNotFound = db.ErrVersionNotFound
	ErrSlugConflict    = db.ErrSlugConflict
	ErrInvalidArticle  = errors.New("invalid article")
)

// Store persists articles and their append-only version history.
// Implemented by db.Repository and memstore.Store.
type Store interface {
	Ping(ctx context.Context) error

	CreateArticle(ctx context.Context, article *db.Article) (*db.Article, error)
	ArticleByID(ctx context.Context, articleID int) (*db.Article, error)
	UpdateArticle(ctx context.Context, articleID int, mutate db.ArticleMutator, meta db.VersionMeta) (*db.Article, *db.ArticleVersion, error)
	DeleteArticle(ctx context.Context, articleID int) error

	ArticleVersions(ctx context.Context, articleID int) ([]db.ArticleVersion, error)
	ArticleVersion(ctx context.Context, articleID, versionID int) (*db.ArticleVersion, error)

	RelatedArticles(ctx context.Context, articleID, categoryID, limit int) ([]db.Article, error)

	Categories(ctx context.Context) ([]db.Category, error)
	CategoryByID(ctx context.Context, categoryID int) (*db.Category, error)
}
