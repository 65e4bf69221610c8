package domain

import "context"

// Step represents a single executable write with rollback capability.
// Implementations should be idempotent where possible to support safe retries.
//
// Step is defined in the domain layer so that domain code can reference it
// without depending on the application layer.
type Step interface {
	// Execute performs the write. The context carries cancellation and
	// deadline signals that the implementation should respect.
	Execute(ctx context.Context) error

	// Rollback reverses the effect of a previously successful Execute call.
	// Rollback is only called if Execute returned nil.
	Rollback(ctx context.Context) error

	// Description returns a human-readable description of the step for
	// logging purposes (e.g., "move company 7 from Ice to Touched").
	Description() string
}
