package generator

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/daniilsolovey/blog-portal/internal/assets"
)

var placeholderRe = regexp.MustCompile(`\[IMAGE_(\d+)\]`)

// AssetAssigner builds the search reference for one slot.
type AssetAssigner interface {
	Assign(topic, categoryName string, slot int) assets.Reference
}

// Topic is what images should depict.
type Topic struct {
	Keyword      string
	CategoryName string
}

// AssetSlot is one image position of an article. Slot 0 is the featured image.
type AssetSlot struct {
	SlotIndex   int
	Query       string
	ResolvedURL string
	Fallback    bool
}

// Resolution is a draft with every in-range placeholder replaced.
type Resolution struct {
	Draft    Draft
	Slots    []AssetSlot
	Warnings []string
}

// Resolver replaces [IMAGE_n] placeholders and picks a featured image.
type Resolver struct {
	assigner  AssetAssigner
	searcher  assets.Searcher
	fallbacks []string
	timeout   time.Duration
	logger    *slog.Logger
}

func NewResolver(assigner AssetAssigner, searcher assets.Searcher, fallbacks []string, timeout time.Duration, logger *slog.Logger) *Resolver {
	return &Resolver{
		assigner:  assigner,
		searcher:  searcher,
		fallbacks: fallbacks,
		timeout:   timeout,
		logger:    logger,
	}
}

// Placeholders returns the distinct valid slot indices referenced by content,
// in order of first appearance, and the tokens that are out of range.
func Placeholders(content string) (slots []int, invalid []string) {
	seen := make(map[string]struct{})
	for _, m := range placeholderRe.FindAllStringSubmatch(content, -1) {
		if _, ok := seen[m[0]]; ok {
			continue
		}
		seen[m[0]] = struct{}{}

		n, err := strconv.Atoi(m[1])
		if err != nil || n < 1 || n > assets.MaxBodySlot || m[1] != strconv.Itoa(n) {
			invalid = append(invalid, m[0])
			continue
		}
		slots = append(slots, n)
	}

	return slots, invalid
}

// Resolve resolves the featured slot and every referenced body slot
// concurrently. Asset search failures fall back to the configured list, so
// only cancellation of ctx makes it fail. Out-of-range placeholders are left
// in the content for the render-time image fallback and reported as warnings.
func (r *Resolver) Resolve(ctx context.Context, draft Draft, topic Topic) (Resolution, error) {
	if strings.TrimSpace(topic.Keyword) == "" {
		topic.Keyword = draft.Title
	}

	bodySlots, invalid := Placeholders(draft.Content)
	indices := append([]int{assets.FeaturedSlot}, bodySlots...)
	slots := make([]AssetSlot, len(indices))

	g, gctx := errgroup.WithContext(ctx)
	for i, idx := range indices {
		g.Go(func() error {
			slots[i] = r.resolveSlot(gctx, topic, idx)
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return Resolution{}, err
	}
	if err := ctx.Err(); err != nil {
		return Resolution{}, err
	}

	featured := slots[0].ResolvedURL
	content := draft.Content
	for i := range slots {
		if slots[i].ResolvedURL == "" {
			slots[i].ResolvedURL = featured
			slots[i].Fallback = true
		}
		if slots[i].SlotIndex == assets.FeaturedSlot {
			continue
		}
		token := fmt.Sprintf("[IMAGE_%d]", slots[i].SlotIndex)
		content = strings.ReplaceAll(content, token, html.EscapeString(slots[i].ResolvedURL))
	}

	var warnings []string
	for _, token := range invalid {
		warnings = append(warnings, fmt.Sprintf("placeholder %s is out of range and was left unresolved", token))
	}

	draft.Content = content
	draft.FeaturedImage = featured

	return Resolution{Draft: draft, Slots: slots, Warnings: warnings}, nil
}

func (r *Resolver) resolveSlot(ctx context.Context, topic Topic, slot int) AssetSlot {
	ref := r.assigner.Assign(topic.Keyword, topic.CategoryName, slot)
	result := AssetSlot{SlotIndex: slot, Query: ref.Query}

	sctx := ctx
	if r.timeout > 0 {
		var cancel context.CancelFunc
		sctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	url, err := r.searcher.Search(sctx, ref)
	if err == nil {
		result.ResolvedURL = url
		return result
	}

	if !errors.Is(err, assets.ErrAssetUnavailable) && !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
		r.logger.Warn("unexpected asset search error", "slot", slot, "error", err)
	} else {
		r.logger.Debug("asset search failed, using fallback", "slot", slot, "query", ref.Query, "error", err)
	}

	result.Fallback = true
	if len(r.fallbacks) > 0 {
		result.ResolvedURL = r.fallbacks[slot%len(r.fallbacks)]
	}

	return result
}
