//go:build integration

package db

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/go-pg/pg/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testDB   *pg.DB
	testRepo *Repository
)

func TestMain(m *testing.M) {
	var err error
	testDB, err = SetupTestDB()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to prepare test database. Make sure PostgreSQL is running:")
		fmt.Fprintln(os.Stderr, "  docker-compose -f docker-compose.test.yml up -d")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	testRepo = New(testDB)

	code := m.Run()

	if err := testDB.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close database connection: %v\n", err)
	}

	os.Exit(code)
}

func TestRepository_CreateArticle_Integration(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		_, ctx, repo := withTx(t)

		article, err := repo.CreateArticle(ctx, &Article{Title: "New", Slug: "new-article", StatusID: StatusDraft})
		require.NoError(t, err)

		assert.NotZero(t, article.ID)
		assert.Zero(t, article.CurrentVersionNumber)
		assert.False(t, article.CreatedAt.IsZero())

		versions, err := repo.ArticleVersions(ctx, article.ID)
		require.NoError(t, err)
		assert.Empty(t, versions, "create does not record a version")
	})

	t.Run("SlugConflict", func(t *testing.T) {
		_, ctx, repo := withTx(t)

		_, err := repo.CreateArticle(ctx, &Article{Title: "Dup", Slug: "quantum-computing-explained", StatusID: StatusDraft})
		assert.ErrorIs(t, err, ErrSlugConflict)
	})
}

func TestRepository_ArticleByID_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	article, err := repo.ArticleByID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, article)
	assert.Equal(t, "Quantum Computing Explained", article.Title)
	require.NotNil(t, article.Category)
	assert.Equal(t, "Technology", article.Category.Title)

	missing, err := repo.ArticleByID(ctx, 999999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestRepository_UpdateArticle_Integration(t *testing.T) {
	ctx := context.Background()

	t.Run("RecordsSequentialVersions", func(t *testing.T) {
		article := newArticle(t, "update-sequential")

		for i := 1; i <= 3; i++ {
			updated, version, err := testRepo.UpdateArticle(ctx, article.ID, func(a *Article) error {
				a.Content = fmt.Sprintf("<p>Revision %d</p>", i)
				return nil
			}, VersionMeta{Notes: "edit"})
			require.NoError(t, err)

			assert.Equal(t, i, version.VersionNumber)
			assert.Equal(t, i, updated.CurrentVersionNumber)
			assert.Equal(t, updated.Content, version.Content)
		}

		versions, err := testRepo.ArticleVersions(ctx, article.ID)
		require.NoError(t, err)
		require.Len(t, versions, 3)
		assert.Equal(t, []int{3, 2, 1}, []int{versions[0].VersionNumber, versions[1].VersionNumber, versions[2].VersionNumber})
	})

	t.Run("ConcurrentUpdatesGetDistinctNumbers", func(t *testing.T) {
		article := newArticle(t, "update-concurrent")

		const workers = 8
		var wg sync.WaitGroup
		errs := make(chan error, workers)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _, err := testRepo.UpdateArticle(ctx, article.ID, func(a *Article) error {
					a.Title = fmt.Sprintf("Title %d", i)
					return nil
				}, VersionMeta{})
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			require.NoError(t, err)
		}

		versions, err := testRepo.ArticleVersions(ctx, article.ID)
		require.NoError(t, err)
		require.Len(t, versions, workers)
		for i, v := range versions {
			assert.Equal(t, workers-i, v.VersionNumber)
		}

		reloaded, err := testRepo.ArticleByID(ctx, article.ID)
		require.NoError(t, err)
		assert.Equal(t, workers, reloaded.CurrentVersionNumber)
	})

	t.Run("MutatorErrorRollsBack", func(t *testing.T) {
		article := newArticle(t, "update-rollback")
		boom := errors.New("boom")

		_, _, err := testRepo.UpdateArticle(ctx, article.ID, func(a *Article) error {
			a.Title = "changed"
			return boom
		}, VersionMeta{})
		assert.ErrorIs(t, err, boom)

		versions, err := testRepo.ArticleVersions(ctx, article.ID)
		require.NoError(t, err)
		assert.Empty(t, versions)
	})

	t.Run("SlugConflict", func(t *testing.T) {
		article := newArticle(t, "update-slug")

		_, _, err := testRepo.UpdateArticle(ctx, article.ID, func(a *Article) error {
			a.Slug = "sourdough-basics"
			return nil
		}, VersionMeta{})
		assert.ErrorIs(t, err, ErrSlugConflict)

		versions, err := testRepo.ArticleVersions(ctx, article.ID)
		require.NoError(t, err)
		assert.Empty(t, versions, "failed update leaves no version behind")
	})

	t.Run("ReturnsCategory", func(t *testing.T) {
		article := newArticle(t, "update-category")

		food := 8
		updated, _, err := testRepo.UpdateArticle(ctx, article.ID, func(a *Article) error {
			a.CategoryID = &food
			return nil
		}, VersionMeta{})
		require.NoError(t, err)
		require.NotNil(t, updated.Category)
		assert.Equal(t, "Food", updated.Category.Title)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, _, err := testRepo.UpdateArticle(ctx, 999999, func(*Article) error { return nil }, VersionMeta{})
		assert.ErrorIs(t, err, ErrArticleNotFound)
	})
}

func TestRepository_ArticleVersion_Integration(t *testing.T) {
	ctx := context.Background()
	first := newArticle(t, "version-owner")
	other := newArticle(t, "version-other")

	_, version, err := testRepo.UpdateArticle(ctx, first.ID, func(a *Article) error {
		a.Content = "<p>v1</p>"
		return nil
	}, VersionMeta{Notes: "first"})
	require.NoError(t, err)

	got, err := testRepo.ArticleVersion(ctx, first.ID, version.ID)
	require.NoError(t, err)
	assert.Equal(t, "first", got.Notes)

	_, err = testRepo.ArticleVersion(ctx, other.ID, version.ID)
	assert.ErrorIs(t, err, ErrVersionNotFound)
}

func TestRepository_DeleteArticle_Integration(t *testing.T) {
	ctx := context.Background()
	article := newArticle(t, "delete-cascade")

	_, _, err := testRepo.UpdateArticle(ctx, article.ID, func(a *Article) error { return nil }, VersionMeta{})
	require.NoError(t, err)

	require.NoError(t, testRepo.DeleteArticle(ctx, article.ID))

	versions, err := testRepo.ArticleVersions(ctx, article.ID)
	require.NoError(t, err)
	assert.Empty(t, versions)

	assert.ErrorIs(t, testRepo.DeleteArticle(ctx, article.ID), ErrArticleNotFound)
}

func TestRepository_RelatedArticles_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	related, err := repo.RelatedArticles(ctx, 1, 1, 3)
	require.NoError(t, err)

	require.Len(t, related, 2)
	assert.Equal(t, "Edge AI in Practice", related[0].Title)
	assert.Equal(t, "Rust for Go Developers", related[1].Title)
	for _, a := range related {
		assert.Empty(t, a.Content)
	}

	limited, err := repo.RelatedArticles(ctx, 1, 1, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestRepository_Categories_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	categories, err := repo.Categories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 10)
	assert.Equal(t, "Technology", categories[0].Title)

	food, err := repo.CategoryByID(ctx, 8)
	require.NoError(t, err)
	require.NotNil(t, food)
	assert.Equal(t, "Food", food.Title)
}
