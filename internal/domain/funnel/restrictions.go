package funnel

import "slices"

var earlyRestrictions = []Action{ActionCreateInvoice, ActionSendProposal, ActionPlanDemo, ActionConductDemo}

var demoRestrictions = []Action{ActionCreateInvoice, ActionSendProposal}

// restrictions lists the denied actions per stage. Stages without an entry
// other than Null allow the whole universe.
var restrictions = map[Stage][]Action{
	StageIce:         earlyRestrictions,
	StageTouched:     earlyRestrictions,
	StageAware:       earlyRestrictions,
	StageInterested:  demoRestrictions,
	StageDemoPlanned: demoRestrictions,
	StageNull:        actions,
}

// RestrictedActions returns the actions denied at s, in universe order.
// Every action is restricted for undefined stages.
func RestrictedActions(s Stage) []Action {
	if !s.IsValid() {
		return AllActions()
	}
	denied := restrictions[s]
	out := make([]Action, 0, len(denied))
	for _, a := range actions {
		if slices.Contains(denied, a) {
			out = append(out, a)
		}
	}
	return out
}

// AllowedActions returns the complement of RestrictedActions(s), in universe order.
func AllowedActions(s Stage) []Action {
	denied := RestrictedActions(s)
	out := make([]Action, 0, len(actions)-len(denied))
	for _, a := range actions {
		if !slices.Contains(denied, a) {
			out = append(out, a)
		}
	}
	return out
}

// IsActionAllowed reports whether a is in AllowedActions(s).
func IsActionAllowed(s Stage, a Action) bool {
	return slices.Contains(AllowedActions(s), a)
}
