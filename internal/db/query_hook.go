package db

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-pg/pg/v10"
)

// QueryHook logs every executed statement with its duration.
type QueryHook struct {
	logger *slog.Logger
	slow   time.Duration
}

// NewQueryHook logs queries at debug level and queries slower than slow at
// warn level. A zero slow threshold disables the warning.
func NewQueryHook(logger *slog.Logger, slow time.Duration) *QueryHook {
	return &QueryHook{
		logger: logger,
		slow:   slow,
	}
}

func (h *QueryHook) BeforeQuery(ctx context.Context, _ *pg.QueryEvent) (context.Context, error) {
	return ctx, nil
}

func (h *QueryHook) AfterQuery(ctx context.Context, event *pg.QueryEvent) error {
	query, err := event.FormattedQuery()
	if err != nil {
		h.logger.Error("failed to format query", "error", err)
		return nil
	}

	duration := time.Since(event.StartTime)
	level := slog.LevelDebug
	if h.slow > 0 && duration >= h.slow {
		level = slog.LevelWarn
	}
	if event.Err != nil {
		level = slog.LevelError
	}

	h.logger.Log(ctx, level, "SQL query executed",
		"query", string(query),
		"duration", duration,
		"error", event.Err,
	)

	return nil
}
