// Package wizard implements the article editor flow as an explicit state
// machine: Setup, Generating, Review, ImageStep, Publish.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/daniilsolovey/blog-portal/internal/blog"
	"github.com/daniilsolovey/blog-portal/internal/generator"
)

type State int

const (
	Setup State = iota
	Generating
	Review
	ImageStep
	Publish
	Published
)

func (s State) String() string {
	switch s {
	case Setup:
		return "setup"
	case Generating:
		return "generating"
	case Review:
		return "review"
	case ImageStep:
		return "images"
	case Publish:
		return "publish"
	case Published:
		return "published"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

var ErrInvalidTransition = errors.New("invalid wizard transition")

// DraftGenerator produces a resolved draft. Implemented by blog.Manager.
type DraftGenerator interface {
	GenerateDraft(ctx context.Context, req generator.Request) (*blog.GeneratedDraft, error)
}

// ArticleCreator persists the final article. Implemented by blog.Manager.
type ArticleCreator interface {
	CreateArticle(ctx context.Context, in blog.ArticleInput) (*blog.Article, error)
}

// Wizard is not safe for concurrent use; one instance serves one editor.
type Wizard struct {
	state     State
	request   generator.Request
	draft     *blog.GeneratedDraft
	lastError string

	generator DraftGenerator
	creator   ArticleCreator
}

func New(gen DraftGenerator, creator ArticleCreator) *Wizard {
	return &Wizard{state: Setup, generator: gen, creator: creator}
}

func (w *Wizard) State() State { return w.state }

func (w *Wizard) Request() generator.Request { return w.request }

// LastError is the message of the last failed generation, empty after success.
func (w *Wizard) LastError() string { return w.lastError }

// Draft returns the current draft, nil before a successful generation.
func (w *Wizard) Draft() *blog.GeneratedDraft { return w.draft }

// Generate moves Setup to Generating and then to Review on success. On
// failure the wizard returns to Setup with the request kept and the error
// message recorded.
func (w *Wizard) Generate(ctx context.Context, req generator.Request) error {
	if err := w.expect(Setup); err != nil {
		return err
	}

	w.request = req
	if err := req.Validate(); err != nil {
		w.lastError = err.Error()
		return err
	}

	w.state = Generating

	draft, err := w.generator.GenerateDraft(ctx, req)
	if err != nil {
		w.state = Setup
		w.lastError = err.Error()
		return err
	}

	w.draft = draft
	w.lastError = ""
	w.state = Review

	return nil
}

// Edit changes the draft during Review or ImageStep.
func (w *Wizard) Edit(fn func(d *generator.Draft)) error {
	if w.state != Review && w.state != ImageStep {
		return w.transitionError("edit")
	}

	fn(&w.draft.Draft)
	return nil
}

// Next advances Review to ImageStep and ImageStep to Publish.
func (w *Wizard) Next() error {
	switch w.state {
	case Review:
		w.state = ImageStep
	case ImageStep:
		w.state = Publish
	default:
		return w.transitionError("next")
	}

	return nil
}

// SetFeaturedImage replaces the featured image during ImageStep.
func (w *Wizard) SetFeaturedImage(url string) error {
	if err := w.expect(ImageStep); err != nil {
		return err
	}

	w.draft.Draft.FeaturedImage = strings.TrimSpace(url)
	return nil
}

// Publish saves the draft with the given status and finishes the wizard.
func (w *Wizard) Publish(ctx context.Context, status blog.Status) (*blog.Article, error) {
	if err := w.expect(Publish); err != nil {
		return nil, err
	}

	d := w.draft.Draft
	article, err := w.creator.CreateArticle(ctx, blog.ArticleInput{
		Title:           d.Title,
		Slug:            d.Slug,
		Excerpt:         d.Excerpt,
		Content:         d.Content,
		FeaturedImage:   d.FeaturedImage,
		MetaTitle:       d.MetaTitle,
		MetaDescription: d.MetaDescription,
		MetaKeywords:    d.MetaKeywords,
		CategoryID:      d.CategoryID,
		Status:          status,
	})
	if err != nil {
		return nil, err
	}

	w.state = Published
	return article, nil
}

func (w *Wizard) expect(s State) error {
	if w.state != s {
		return fmt.Errorf("%w: expected %s, current %s", ErrInvalidTransition, s, w.state)
	}
	return nil
}

func (w *Wizard) transitionError(action string) error {
	return fmt.Errorf("%w: cannot %s in %s", ErrInvalidTransition, action, w.state)
}
