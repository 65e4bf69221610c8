package appctx

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/glavpro/crm-stages/internal/platform/logging"
)

// Commit executes all queued steps in insertion order. If a step fails,
// previously completed steps are rolled back in reverse order. Rollback
// errors are logged but do not affect the returned error, which wraps the
// failing step's error.
//
// After Commit returns the RequestContext is marked as committed.
// Returns ErrAlreadyCommitted if called more than once.
func (rc *RequestContext) Commit(ctx context.Context) error {
	rc.mu.Lock()
	if rc.committed {
		rc.mu.Unlock()
		return ErrAlreadyCommitted
	}
	rc.committed = true
	steps := rc.steps
	rc.mu.Unlock()

	logger := logging.FromContext(ctx)

	for i, s := range steps {
		logger.DebugContext(ctx, "executing step",
			slog.String("operation", "RequestContext.Commit"),
			slog.Int("step", i+1),
			slog.Int("total", len(steps)),
			slog.String("description", s.description()),
		)

		if err := s.execute(ctx); err != nil {
			logger.WarnContext(ctx, "step failed, rolling back",
				slog.String("operation", "RequestContext.Commit"),
				slog.Int("failed_step", i+1),
				slog.String("description", s.description()),
				slog.Any("error", err),
			)
			rollbackSteps(ctx, steps, i-1, logger)
			return fmt.Errorf("executing %s: %w", s.description(), err)
		}
	}

	return nil
}

// rollbackSteps rolls back steps 0..upTo (inclusive) in reverse order.
func rollbackSteps(ctx context.Context, steps []stepItem, upTo int, logger *slog.Logger) {
	for i := upTo; i >= 0; i-- {
		s := steps[i]

		logger.InfoContext(ctx, "rolling back step",
			slog.String("operation", "RequestContext.Commit"),
			slog.Int("step", i+1),
			slog.String("description", s.description()),
		)

		if err := s.rollback(ctx); err != nil {
			logger.ErrorContext(ctx, "rollback failed",
				slog.String("operation", "RequestContext.Commit"),
				slog.Int("step", i+1),
				slog.String("description", s.description()),
				slog.Any("error", err),
			)
		}
	}
}
