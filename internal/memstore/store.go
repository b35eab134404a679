// Package memstore keeps articles, versions and categories in process
// memory. It mirrors the PostgreSQL repository and is meant for local runs
// and tests.
package memstore

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/daniilsolovey/blog-portal/internal/db"
)

type Store struct {
	mu         sync.RWMutex
	articles   map[int]db.Article
	versions   map[int][]db.ArticleVersion
	categories []db.Category

	nextArticleID int
	nextVersionID int

	locks *articleLocks
	now   func() time.Time
}

func New(categories []db.Category) *Store {
	return &Store{
		articles:   make(map[int]db.Article),
		versions:   make(map[int][]db.ArticleVersion),
		categories: slices.Clone(categories),
		locks:      newArticleLocks(),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// DefaultCategories matches the categories seeded by the database migrations.
func DefaultCategories() []db.Category {
	titles := []string{"Technology", "Business", "Health", "Travel", "Lifestyle", "Science", "Education", "Food", "Finance", "Sports"}
	result := make([]db.Category, len(titles))
	for i, title := range titles {
		result[i] = db.Category{ID: i + 1, Title: title, OrderNumber: i + 1, StatusID: db.StatusPublished}
	}

	return result
}

func (s *Store) Ping(context.Context) error { return nil }

func (s *Store) CreateArticle(_ context.Context, article *db.Article) (*db.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.slugTaken(article.Slug, 0) {
		return nil, fmt.Errorf("%w: %q", db.ErrSlugConflict, article.Slug)
	}

	s.nextArticleID++
	now := s.now()

	created := cloneArticle(*article)
	created.ID = s.nextArticleID
	created.CurrentVersionNumber = 0
	created.CreatedAt = now
	created.UpdatedAt = now
	created.Category = nil
	if created.MetaKeywords == nil {
		created.MetaKeywords = []string{}
	}
	s.articles[created.ID] = created

	*article = cloneArticle(created)
	article.Category = s.category(created.CategoryID)

	return article, nil
}

func (s *Store) ArticleByID(_ context.Context, articleID int) (*db.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	article, ok := s.articles[articleID]
	if !ok {
		return nil, nil
	}

	result := cloneArticle(article)
	result.Category = s.category(article.CategoryID)

	return &result, nil
}

// UpdateArticle serializes updates per article, so version numbers are
// assigned in lock order and never repeat.
func (s *Store) UpdateArticle(_ context.Context, articleID int, mutate db.ArticleMutator, meta db.VersionMeta) (*db.Article, *db.ArticleVersion, error) {
	var (
		article db.Article
		version db.ArticleVersion
	)

	err := s.locks.withLock(articleID, func() error {
		s.mu.RLock()
		current, ok := s.articles[articleID]
		s.mu.RUnlock()
		if !ok {
			return db.ErrArticleNotFound
		}

		article = cloneArticle(current)
		if err := mutate(&article); err != nil {
			return err
		}

		s.mu.Lock()
		defer s.mu.Unlock()

		if _, ok := s.articles[articleID]; !ok {
			return db.ErrArticleNotFound
		}
		if s.slugTaken(article.Slug, articleID) {
			return fmt.Errorf("%w: %q", db.ErrSlugConflict, article.Slug)
		}

		now := s.now()
		history := s.versions[articleID]
		latest := 0
		if len(history) > 0 {
			latest = history[len(history)-1].VersionNumber
		}

		s.nextVersionID++
		version = db.ArticleVersion{
			ID:            s.nextVersionID,
			ArticleID:     articleID,
			VersionNumber: latest + 1,
			Title:         article.Title,
			Content:       article.Content,
			Notes:         meta.Notes,
			CreatedAt:     now,
			CreatedBy:     meta.CreatedBy,
		}
		s.versions[articleID] = append(history, version)

		article.ID = articleID
		article.CreatedAt = current.CreatedAt
		article.CurrentVersionNumber = version.VersionNumber
		article.UpdatedAt = now
		article.Category = nil
		s.articles[articleID] = cloneArticle(article)
		article.Category = s.category(article.CategoryID)

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return &article, &version, nil
}

func (s *Store) DeleteArticle(_ context.Context, articleID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.articles[articleID]; !ok {
		return db.ErrArticleNotFound
	}

	delete(s.articles, articleID)
	delete(s.versions, articleID)
	s.locks.forget(articleID)

	return nil
}

func (s *Store) ArticleVersions(_ context.Context, articleID int) ([]db.ArticleVersion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := s.versions[articleID]
	result := make([]db.ArticleVersion, 0, len(history))
	for i := len(history) - 1; i >= 0; i-- {
		result = append(result, history[i])
	}

	return result, nil
}

func (s *Store) ArticleVersion(_ context.Context, articleID, versionID int) (*db.ArticleVersion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, v := range s.versions[articleID] {
		if v.ID == versionID {
			return &v, nil
		}
	}

	return nil, db.ErrVersionNotFound
}

func (s *Store) RelatedArticles(_ context.Context, articleID, categoryID, limit int) ([]db.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []db.Article{}
	for _, a := range s.articles {
		if a.ID == articleID || a.StatusID != db.StatusPublished || a.CategoryID == nil || *a.CategoryID != categoryID {
			continue
		}
		summary := cloneArticle(a)
		summary.Content = ""
		result = append(result, summary)
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})

	if len(result) > limit {
		result = result[:limit]
	}

	return result, nil
}

func (s *Store) Categories(context.Context) ([]db.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]db.Category, 0, len(s.categories))
	for _, c := range s.categories {
		if c.StatusID == db.StatusPublished {
			result = append(result, c)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].OrderNumber < result[j].OrderNumber })

	return result, nil
}

func (s *Store) CategoryByID(_ context.Context, categoryID int) (*db.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.category(&categoryID), nil
}

func (s *Store) category(categoryID *int) *db.Category {
	if categoryID == nil {
		return nil
	}
	for _, c := range s.categories {
		if c.ID == *categoryID {
			return &c
		}
	}

	return nil
}

func (s *Store) slugTaken(slug string, exceptID int) bool {
	for id, a := range s.articles {
		if id != exceptID && a.Slug == slug {
			return true
		}
	}

	return false
}

func cloneArticle(a db.Article) db.Article {
	a.MetaKeywords = slices.Clone(a.MetaKeywords)
	if a.CategoryID != nil {
		id := *a.CategoryID
		a.CategoryID = &id
	}
	if a.ScheduledAt != nil {
		at := *a.ScheduledAt
		a.ScheduledAt = &at
	}

	return a
}
