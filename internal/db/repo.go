package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
)

const (
	StatusPublished = 1
	StatusDraft     = 2
	StatusArchived  = 3
)

const uniqueViolation = "23505"

var (
	ErrArticleNotFound = errors.New("article not found")
	ErrVersionNotFound = errors.New("article version not found")
	ErrSlugConflict    = errors.New("slug already in use")
)

// VersionMeta describes who changed an article and why.
type VersionMeta struct {
	Notes     string
	CreatedBy *string
}

// ArticleMutator patches a locked article before it is saved.
type ArticleMutator func(article *Article) error

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// CreateArticle inserts a new article. No version is recorded on create.
func (r *Repository) CreateArticle(ctx context.Context, article *Article) (*Article, error) {
	now := time.Now().UTC()
	article.ID = 0
	article.CurrentVersionNumber = 0
	article.CreatedAt = now
	article.UpdatedAt = now
	if article.MetaKeywords == nil {
		article.MetaKeywords = []string{}
	}

	_, err := r.db.ModelContext(ctx, article).Returning("*").Insert()
	if isUniqueViolation(err) {
		return nil, fmt.Errorf("%w: %q", ErrSlugConflict, article.Slug)
	} else if err != nil {
		return nil, fmt.Errorf("failed to insert article: %w", err)
	}

	return article, nil
}

// ArticleByID returns nil without error when the article does not exist.
func (r *Repository) ArticleByID(ctx context.Context, articleID int) (*Article, error) {
	article := &Article{}
	err := r.db.ModelContext(ctx, article).
		Relation("Category").
		Where(`"t"."articleId" = ?`, articleID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get article by id: %w", err)
	}

	return article, nil
}

// UpdateArticle locks the article row, applies mutate and records the
// resulting title and content as the next version, all in one transaction.
// Concurrent updates of the same article serialize on the row lock, so
// version numbers never collide.
func (r *Repository) UpdateArticle(ctx context.Context, articleID int, mutate ArticleMutator, meta VersionMeta) (*Article, *ArticleVersion, error) {
	var (
		article Article
		version ArticleVersion
	)

	err := r.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		err := tx.ModelContext(ctx, &article).
			Where(`"t"."articleId" = ?`, articleID).
			For("UPDATE").
			Select()
		if errors.Is(err, pg.ErrNoRows) {
			return ErrArticleNotFound
		} else if err != nil {
			return fmt.Errorf("failed to lock article: %w", err)
		}

		if err := mutate(&article); err != nil {
			return err
		}

		var latest int
		_, err = tx.QueryOneContext(ctx, pg.Scan(&latest),
			`SELECT COALESCE(MAX("versionNumber"), 0) FROM "articleVersions" WHERE "articleId" = ?`, articleID)
		if err != nil {
			return fmt.Errorf("failed to get latest version number: %w", err)
		}

		now := time.Now().UTC()
		version = ArticleVersion{
			ArticleID:     articleID,
			VersionNumber: latest + 1,
			Title:         article.Title,
			Content:       article.Content,
			Notes:         meta.Notes,
			CreatedAt:     now,
			CreatedBy:     meta.CreatedBy,
		}
		if _, err := tx.ModelContext(ctx, &version).Returning("*").Insert(); err != nil {
			return fmt.Errorf("failed to insert article version: %w", err)
		}

		article.ID = articleID
		article.CurrentVersionNumber = version.VersionNumber
		article.UpdatedAt = now
		if article.MetaKeywords == nil {
			article.MetaKeywords = []string{}
		}

		_, err = tx.ModelContext(ctx, &article).
			ExcludeColumn(Columns.Article.CreatedAt).
			WherePK().
			Update()
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %q", ErrSlugConflict, article.Slug)
		} else if err != nil {
			return fmt.Errorf("failed to update article: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	// the locked select cannot join the category, so load it after commit
	if article.CategoryID != nil {
		category := &Category{}
		err := r.db.ModelContext(ctx, category).
			Where(`"t"."categoryId" = ?`, *article.CategoryID).
			Select()
		if err != nil && !errors.Is(err, pg.ErrNoRows) {
			return nil, nil, fmt.Errorf("failed to get article category: %w", err)
		} else if err == nil {
			article.Category = category
		}
	}

	return &article, &version, nil
}

func (r *Repository) DeleteArticle(ctx context.Context, articleID int) error {
	res, err := r.db.ModelContext(ctx, (*Article)(nil)).
		Where(`"articleId" = ?`, articleID).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}
	if res.RowsAffected() == 0 {
		return ErrArticleNotFound
	}

	return nil
}

// ArticleVersions returns the history of an article, most recent first.
func (r *Repository) ArticleVersions(ctx context.Context, articleID int) ([]ArticleVersion, error) {
	versions := []ArticleVersion{}
	err := r.db.ModelContext(ctx, &versions).
		Where(`"t"."articleId" = ?`, articleID).
		OrderExpr(`"t"."versionNumber" DESC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query article versions: %w", err)
	}

	return versions, nil
}

// ArticleVersion returns ErrVersionNotFound when the version does not exist
// or belongs to another article.
func (r *Repository) ArticleVersion(ctx context.Context, articleID, versionID int) (*ArticleVersion, error) {
	version := &ArticleVersion{}
	err := r.db.ModelContext(ctx, version).
		Where(`"t"."articleVersionId" = ?`, versionID).
		Where(`"t"."articleId" = ?`, articleID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, ErrVersionNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to get article version: %w", err)
	}

	return version, nil
}

// RelatedArticles returns published articles of the category, newest first,
// without content.
func (r *Repository) RelatedArticles(ctx context.Context, articleID, categoryID, limit int) ([]Article, error) {
	articles := []Article{}
	err := r.db.ModelContext(ctx, &articles).
		ExcludeColumn(Columns.Article.Content).
		Where(`"t"."categoryId" = ?`, categoryID).
		Where(`"t"."articleId" <> ?`, articleID).
		Where(`"t"."statusId" = ?`, StatusPublished).
		OrderExpr(`"t"."createdAt" DESC, "t"."articleId" DESC`).
		Limit(limit).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query related articles: %w", err)
	}

	return articles, nil
}

func (r *Repository) Categories(ctx context.Context) ([]Category, error) {
	var category []Category
	err := r.db.ModelContext(ctx, &category).
		Where(`"statusId" = ?`, StatusPublished).
		OrderExpr(`"orderNumber" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	return category, nil
}

// CategoryByID returns nil without error when the category does not exist.
func (r *Repository) CategoryByID(ctx context.Context, categoryID int) (*Category, error) {
	category := &Category{}
	err := r.db.ModelContext(ctx, category).
		Where(`"categoryId" = ?`, categoryID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get category by id: %w", err)
	}

	return category, nil
}

func isUniqueViolation(err error) bool {
	var pgErr pg.Error
	if !errors.As(err, &pgErr) {
		return false
	}

	return pgErr.Field('C') == uniqueViolation
}
