package appctx

import (
	"context"

	"github.com/glavpro/crm-stages/internal/domain"
)

// stepItem tracks a queued step and whether it completed.
type stepItem struct {
	step domain.Step
}

func (s stepItem) execute(ctx context.Context) error  { return s.step.Execute(ctx) }
func (s stepItem) rollback(ctx context.Context) error { return s.step.Rollback(ctx) }
func (s stepItem) description() string                { return s.step.Description() }

// AddStep queues a step for execution by Commit.
// Returns ErrNilStep if step is nil, or ErrAlreadyCommitted if the
// RequestContext has already been committed.
func (rc *RequestContext) AddStep(step domain.Step) error {
	if step == nil {
		return ErrNilStep
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()

	if rc.committed {
		return ErrAlreadyCommitted
	}
	rc.steps = append(rc.steps, stepItem{step: step})
	return nil
}

// Pending returns the number of queued steps.
func (rc *RequestContext) Pending() int {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return len(rc.steps)
}
