//go:build integration

package db

import (
	"context"
	"testing"

	"github.com/go-pg/pg/v10"
)

func withTx(t *testing.T) (*pg.Tx, context.Context, *Repository) {
	t.Helper()
	ctx := context.Background()

	tx, err := testDB.Begin()
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}

	t.Cleanup(func() {
		if err := tx.Rollback(); err != nil {
			t.Errorf("failed to rollback transaction: %v", err)
		}
	})

	repo := New(tx)
	return tx, ctx, repo
}

// newArticle inserts a throwaway article outside any test transaction and
// removes it (with its versions) when the test ends.
func newArticle(t *testing.T, slug string) *Article {
	t.Helper()
	ctx := context.Background()

	technology := 1
	article, err := testRepo.CreateArticle(ctx, &Article{
		CategoryID: &technology,
		Title:      "Title " + slug,
		Slug:       slug,
		Content:    "<p>Original</p>",
		StatusID:   StatusDraft,
	})
	if err != nil {
		t.Fatalf("failed to create article: %v", err)
	}

	t.Cleanup(func() {
		_ = testRepo.DeleteArticle(ctx, article.ID)
	})

	return article
}
