package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/obaro89/afridev-backend/internal/domain"
	"github.com/obaro89/afridev-backend/internal/observability"
)

const maxRetries = 5

var ErrRetryExhausted = errors.New("aggregate write retry exhausted")

// withRetry re-runs a read-modify-write cycle while the store reports a
// version conflict. fn must re-read the aggregate on every call.
func withRetry(ctx context.Context, aggregate string, fn func() error) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if !errors.Is(err, domain.ErrVersionConflict) {
			return err
		}
		observability.AggregateWriteConflicts.WithLabelValues(aggregate).Inc()
		observability.GetLogger(ctx).Debug("version conflict, retrying",
			zap.String("aggregate", aggregate),
			zap.Int("attempt", i+1),
		)
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return ErrRetryExhausted
}
