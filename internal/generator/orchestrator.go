package generator

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Orchestrator turns a generation request into a draft by prompting a
// completion client and validating its answer.
type Orchestrator struct {
	client  CompletionClient
	timeout time.Duration
	logger  *slog.Logger
}

func NewOrchestrator(client CompletionClient, timeout time.Duration, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{client: client, timeout: timeout, logger: logger}
}

// Generate validates req, calls the completion client once and parses the
// answer. Transport failures wrap ErrGenerationUnavailable, malformed
// answers wrap ErrGenerationIncomplete.
func (o *Orchestrator) Generate(ctx context.Context, req Request, categoryName string) (Draft, error) {
	if err := req.Validate(); err != nil {
		return Draft{}, err
	}

	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	start := time.Now()
	raw, err := o.client.Complete(ctx, BuildPrompt(req, categoryName))
	if err != nil {
		o.logger.Error("completion request failed",
			"keyword", req.MainKeyword,
			"duration", time.Since(start),
			"error", err)
		return Draft{}, fmt.Errorf("%w: %w", ErrGenerationUnavailable, err)
	}

	draft, err := ParseCompletion(raw)
	if err != nil {
		o.logger.Warn("completion response rejected",
			"keyword", req.MainKeyword,
			"size", len(raw),
			"error", err)
		return Draft{}, err
	}

	draft.CategoryID = req.CategoryID
	if len(draft.MetaKeywords) == 0 {
		draft.MetaKeywords = req.Keywords()
	}

	o.logger.Info("draft generated",
		"keyword", req.MainKeyword,
		"title", draft.Title,
		"duration", time.Since(start))

	return draft, nil
}
