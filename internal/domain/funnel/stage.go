// Package funnel holds the sales funnel rules: the ordered stage topology,
// the per-stage action restrictions, the exit-condition validator, and the
// engine that decides which stage transitions are legal.
//
// Everything in this package is pure. Functions take the event history and
// the current time as arguments and never touch storage or the clock.
package funnel

import (
	"fmt"

	"github.com/glavpro/crm-stages/internal/domain"
)

// Stage is a funnel stage code.
type Stage string

const (
	StageIce         Stage = "Ice"
	StageTouched     Stage = "Touched"
	StageAware       Stage = "Aware"
	StageInterested  Stage = "Interested"
	StageDemoPlanned Stage = "DemoPlanned"
	StageDemoDone    Stage = "DemoDone"
	StageCommitted   Stage = "Committed"
	StageCustomer    Stage = "Customer"
	StageActivated   Stage = "Activated"
	StageNull        Stage = "Null"
)

// IsValid returns true if the stage is one of the ten defined codes.
func (s Stage) IsValid() bool {
	_, ok := stageTable[s]
	return ok
}

// String implements fmt.Stringer.
func (s Stage) String() string {
	return string(s)
}

// ParseStage converts a raw code into a Stage.
// Returns an error wrapping domain.ErrUnknownStage for undefined codes.
func ParseStage(raw string) (Stage, error) {
	s := Stage(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownStage, raw)
	}
	return s, nil
}

// StageInfo is the static metadata attached to a stage.
type StageInfo struct {
	Code          Stage
	MLSCode       string
	Name          string
	Instruction   string
	ExitCondition *string
	Restricted    []Action
}

func exit(s string) *string { return &s }
