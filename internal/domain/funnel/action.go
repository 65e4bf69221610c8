package funnel

import (
	"fmt"
	"slices"

	"github.com/glavpro/crm-stages/internal/domain"
	"github.com/glavpro/crm-stages/internal/domain/event"
)

// Action is a manager-initiated operation. An allowed action produces
// exactly one event of the type returned by EventType.
type Action string

const (
	ActionCall             Action = "call"
	ActionFillDiscovery    Action = "fill_discovery"
	ActionPlanDemo         Action = "plan_demo"
	ActionConductDemo      Action = "conduct_demo"
	ActionCreateInvoice    Action = "create_invoice"
	ActionSendProposal     Action = "send_proposal"
	ActionRecordPayment    Action = "record_payment"
	ActionIssueCertificate Action = "issue_certificate"
)

// actions is the full universe in display order.
var actions = []Action{
	ActionCall,
	ActionFillDiscovery,
	ActionPlanDemo,
	ActionConductDemo,
	ActionCreateInvoice,
	ActionSendProposal,
	ActionRecordPayment,
	ActionIssueCertificate,
}

var actionEvents = map[Action]event.Type{
	ActionCall:             event.TypeContactAttempt,
	ActionFillDiscovery:    event.TypeDiscoveryFilled,
	ActionPlanDemo:         event.TypeDemoPlanned,
	ActionConductDemo:      event.TypeDemoConducted,
	ActionCreateInvoice:    event.TypeInvoiceCreated,
	ActionSendProposal:     event.TypeProposalSent,
	ActionRecordPayment:    event.TypePaymentReceived,
	ActionIssueCertificate: event.TypeCertificateIssued,
}

// AllActions returns the action universe.
func AllActions() []Action {
	return slices.Clone(actions)
}

// IsValid returns true if the action is part of the universe.
func (a Action) IsValid() bool {
	_, ok := actionEvents[a]
	return ok
}

// String implements fmt.Stringer.
func (a Action) String() string {
	return string(a)
}

// EventType returns the event type the action produces. The second value is
// false for actions outside the universe.
func (a Action) EventType() (event.Type, bool) {
	t, ok := actionEvents[a]
	return t, ok
}

// ParseAction converts a raw code into an Action.
// Returns an error wrapping domain.ErrUnknownAction for undefined codes.
func ParseAction(raw string) (Action, error) {
	a := Action(raw)
	if !a.IsValid() {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownAction, raw)
	}
	return a, nil
}
