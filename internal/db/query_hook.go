package db

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-pg/pg/v10"
)

const DefaultSlowQuery = 200 * time.Millisecond

// QueryHook logs every statement at debug level. Failed statements are logged
// as errors and statements slower than SlowQuery as warnings.
type QueryHook struct {
	logger    *slog.Logger
	SlowQuery time.Duration
}

func NewQueryHook(logger *slog.Logger) *QueryHook {
	return &QueryHook{
		logger:    logger.With("component", "db"),
		SlowQuery: DefaultSlowQuery,
	}
}

func (h *QueryHook) BeforeQuery(ctx context.Context, _ *pg.QueryEvent) (context.Context, error) {
	return ctx, nil
}

func (h *QueryHook) AfterQuery(ctx context.Context, event *pg.QueryEvent) error {
	query, err := event.FormattedQuery()
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to format query", "error", err)
		return nil
	}

	elapsed := time.Since(event.StartTime)
	attrs := []any{"query", string(query), "duration", elapsed}

	switch {
	case event.Err != nil && event.Err != pg.ErrNoRows:
		h.logger.ErrorContext(ctx, "SQL query failed", append(attrs, "error", event.Err)...)
	case h.SlowQuery > 0 && elapsed >= h.SlowQuery:
		h.logger.WarnContext(ctx, "slow SQL query", attrs...)
	default:
		h.logger.DebugContext(ctx, "SQL query executed", attrs...)
	}

	return nil
}
