package funnel

import (
	"fmt"
	"time"

	"github.com/glavpro/crm-stages/internal/domain/event"
)

// Advance moves current one step forward when its exit conditions hold.
// Validator reasons are returned verbatim on failure.
func Advance(current Stage, events []event.Event, now time.Time) TransitionResult {
	if IsTerminal(current) {
		return fail(terminalReason(current))
	}

	next, ok := Next(current)
	if !ok {
		return fail(fmt.Sprintf("no next stage after %s", current))
	}

	if v := Validate(current, events, now); !v.Valid {
		return fail(v.Reasons...)
	}
	return succeed(next)
}

// TransitionTo moves current to target. Only the immediate successor or Null
// are accepted as targets.
func TransitionTo(current, target Stage, events []event.Event, now time.Time) TransitionResult {
	if target == StageNull {
		return Reject(current)
	}

	if IsTerminal(current) {
		return fail(terminalReason(current))
	}

	next, ok := Next(current)
	if !ok {
		return fail(fmt.Sprintf("no next stage after %s", current))
	}
	if next != target {
		return fail(fmt.Sprintf(
			"transition from %s to %s is not possible, only sequential transition to %s is permitted",
			current, target, next,
		))
	}

	return Advance(current, events, now)
}

// Reject moves any non-terminal stage to Null. There is no event precondition.
func Reject(current Stage) TransitionResult {
	switch current {
	case StageNull:
		return fail("the company is already rejected (stage Null), no further transitions")
	case StageActivated:
		return fail(terminalReason(StageActivated) + ", cannot reject")
	}
	if !current.IsValid() {
		return fail(fmt.Sprintf("unknown stage: %s", current))
	}
	return succeed(StageNull)
}

// AvailableActions returns the actions allowed at s.
func AvailableActions(s Stage) []Action {
	return AllowedActions(s)
}
