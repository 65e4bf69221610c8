package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// MsgRequired is the validation message for mandatory fields.
const MsgRequired = "is required"

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound          = errors.New("not found")
	ErrValidation        = errors.New("validation error")
	ErrConflict          = errors.New("conflict")
	ErrConditionsNotMet  = errors.New("transition conditions not met")
	ErrActionRestricted  = errors.New("action restricted")
	ErrUnknownStage      = errors.New("unknown stage")
	ErrUnknownAction     = errors.New("unknown action")
	ErrForbidden         = errors.New("forbidden")
	ErrUnavailable       = errors.New("unavailable")
	ErrReservedEventType = errors.New("reserved event type")
	ErrAlreadyTerminal   = errors.New("stage is terminal")
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		keys = append(keys, field)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, field := range keys {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// TransitionRejectedError carries every reason a stage transition was refused.
// Reasons preserve the order in which the rules produced them.
type TransitionRejectedError struct {
	Reasons []string
}

func (e *TransitionRejectedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrConditionsNotMet.Error(), strings.Join(e.Reasons, "; "))
}

func (e *TransitionRejectedError) Unwrap() error {
	return ErrConditionsNotMet
}

// RejectRefusedError is returned when a company cannot be moved to Null
// because it already sits in a terminal stage.
type RejectRefusedError struct {
	Stage   string
	Reasons []string
}

func (e *RejectRefusedError) Error() string {
	return fmt.Sprintf("cannot reject from stage %q: %s", e.Stage, strings.Join(e.Reasons, "; "))
}

func (e *RejectRefusedError) Unwrap() error {
	return ErrAlreadyTerminal
}

// ActionRestrictedError reports an action that the company's current stage
// does not permit, together with the actions that are permitted.
type ActionRestrictedError struct {
	Action  string
	Stage   string
	Allowed []string
}

func (e *ActionRestrictedError) Error() string {
	allowed := "none"
	if len(e.Allowed) > 0 {
		allowed = strings.Join(e.Allowed, ", ")
	}
	return fmt.Sprintf("action %q is not available at stage %q (allowed: %s)", e.Action, e.Stage, allowed)
}

func (e *ActionRestrictedError) Unwrap() error {
	return ErrActionRestricted
}

// StageConflictError is returned when a compare-and-swap stage update finds a
// stored stage different from the one the caller read.
type StageConflictError struct {
	Expected string
	Actual   string
}

func (e *StageConflictError) Error() string {
	return fmt.Sprintf("stage conflict: expected %q, found %q", e.Expected, e.Actual)
}

func (e *StageConflictError) Unwrap() error {
	return ErrConflict
}
