package funnel

import (
	"fmt"
	"slices"

	"github.com/glavpro/crm-stages/internal/domain"
)

// order is the forward sequence of the funnel. Null sits outside of it.
var order = []Stage{
	StageIce,
	StageTouched,
	StageAware,
	StageInterested,
	StageDemoPlanned,
	StageDemoDone,
	StageCommitted,
	StageCustomer,
	StageActivated,
}

var stageTable = map[Stage]StageInfo{
	StageIce: {
		Code:          StageIce,
		MLSCode:       "C0",
		Name:          "Ice",
		Instruction:   "Call the company. When you reach the decision maker, record the conversation and leave a comment.",
		ExitCondition: exit("conversation with the decision maker recorded"),
	},
	StageTouched: {
		Code:          StageTouched,
		MLSCode:       "C1",
		Name:          "Touched",
		Instruction:   "Fill in the discovery form based on the conversation with the decision maker.",
		ExitCondition: exit("discovery form filled"),
	},
	StageAware: {
		Code:          StageAware,
		MLSCode:       "C2",
		Name:          "Aware",
		Instruction:   "Plan a product demo and set its date and time.",
		ExitCondition: exit("demo planned"),
	},
	StageInterested: {
		Code:          StageInterested,
		MLSCode:       "W1",
		Name:          "Interested",
		Instruction:   "Confirm the demo date and prepare for the presentation.",
		ExitCondition: exit("demo planned with a scheduled time"),
	},
	StageDemoPlanned: {
		Code:          StageDemoPlanned,
		MLSCode:       "W2",
		Name:          "Demo Planned",
		Instruction:   "Run the demo using the meeting link, then mark it as conducted.",
		ExitCondition: exit("demo conducted"),
	},
	StageDemoDone: {
		Code:          StageDemoDone,
		MLSCode:       "W3",
		Name:          "Demo Done",
		Instruction:   "Create an invoice or send a commercial proposal. A demo stays valid for 60 days.",
		ExitCondition: exit("invoice created or proposal sent, demo not older than 60 days"),
	},
	StageCommitted: {
		Code:          StageCommitted,
		MLSCode:       "H1",
		Name:          "Committed",
		Instruction:   "Wait for the customer's payment and track the invoice status.",
		ExitCondition: exit("payment received"),
	},
	StageCustomer: {
		Code:          StageCustomer,
		MLSCode:       "H2",
		Name:          "Customer",
		Instruction:   "Prepare and issue the customer certificate.",
		ExitCondition: exit("certificate issued"),
	},
	StageActivated: {
		Code:        StageActivated,
		MLSCode:     "A1",
		Name:        "Activated",
		Instruction: "The customer is activated. The deal is complete.",
	},
	StageNull: {
		Code:        StageNull,
		MLSCode:     "N0",
		Name:        "Null (Rejected)",
		Instruction: "The deal was rejected or lost.",
	},
}

// Next returns the immediate successor of s in the funnel order.
// The boolean is false when s is terminal, last in order, or undefined.
func Next(s Stage) (Stage, bool) {
	if IsTerminal(s) {
		return "", false
	}
	i, ok := Index(s)
	if !ok || i >= len(order)-1 {
		return "", false
	}
	return order[i+1], true
}

// IsTerminal reports whether no outgoing transition exists from s.
func IsTerminal(s Stage) bool {
	return s == StageActivated || s == StageNull
}

// Index returns the position of s in the funnel order. Null and undefined
// codes are not part of the order.
func Index(s Stage) (int, bool) {
	i := slices.Index(order, s)
	return i, i >= 0
}

// Info returns the metadata for s, or an error wrapping domain.ErrUnknownStage.
func Info(s Stage) (StageInfo, error) {
	info, ok := stageTable[s]
	if !ok {
		return StageInfo{}, fmt.Errorf("%w: %q", domain.ErrUnknownStage, s)
	}
	info.Restricted = RestrictedActions(s)
	return info, nil
}

// Name returns the display name of s, falling back to the raw code.
func Name(s Stage) string {
	if info, ok := stageTable[s]; ok {
		return info.Name
	}
	return string(s)
}

// OrderedStages returns the nine forward stages in funnel order.
func OrderedStages() []Stage {
	return slices.Clone(order)
}

// AllStages returns every stage code: the forward order followed by Null.
func AllStages() []Stage {
	return append(OrderedStages(), StageNull)
}
