package funnel

import (
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/glavpro/crm-stages/internal/domain/event"
)

// DemoFreshnessDays is how long a conducted demo keeps satisfying the
// DemoDone exit condition.
const DemoFreshnessDays = 60

// rule checks one stage's exit conditions against the full event history.
type rule func(events []event.Event, now time.Time) ValidationResult

var rules = map[Stage]rule{
	StageIce:         requireType(event.TypeLPRConversation, "a conversation with the decision maker is required (lpr_conversation)"),
	StageTouched:     requireType(event.TypeDiscoveryFilled, "a filled discovery form is required (discovery_filled)"),
	StageAware:       requireType(event.TypeDemoPlanned, "a planned demo is required (demo_planned)"),
	StageInterested:  scheduledDemo,
	StageDemoPlanned: requireType(event.TypeDemoConducted, "a conducted demo is required (demo_conducted)"),
	StageDemoDone:    freshDemoWithOffer,
	StageCommitted:   requireType(event.TypePaymentReceived, "a received payment is required (payment_received)"),
	StageCustomer:    requireType(event.TypeCertificateIssued, "an issued certificate is required (certificate_issued)"),
	StageActivated:   terminal(StageActivated),
	StageNull:        terminal(StageNull),
}

// Validate decides whether the exit conditions of stage are met by events.
// Events may be in any order. now is the reference time for the demo
// freshness window.
func Validate(stage Stage, events []event.Event, now time.Time) ValidationResult {
	r, ok := rules[stage]
	if !ok {
		return invalid(fmt.Sprintf("unknown stage: %s", stage))
	}
	return r(events, now)
}

func requireType(t event.Type, reason string) rule {
	return func(events []event.Event, _ time.Time) ValidationResult {
		if !hasType(events, t) {
			return invalid(reason)
		}
		return valid()
	}
}

func terminal(s Stage) rule {
	reason := terminalReason(s)
	return func([]event.Event, time.Time) ValidationResult {
		return invalid(reason)
	}
}

func terminalReason(s Stage) string {
	return fmt.Sprintf("stage %s is terminal, no further transitions", s)
}

// demoSchedule is the part of a demo_planned payload the Interested rule reads.
type demoSchedule struct {
	ScheduledAt string `mapstructure:"scheduled_at"`
}

func scheduledDemo(events []event.Event, _ time.Time) ValidationResult {
	planned := ofType(events, event.TypeDemoPlanned)
	if len(planned) == 0 {
		return invalid("a planned demo with a date is required (demo_planned)")
	}
	for _, e := range planned {
		if scheduledAt(e.Payload) != "" {
			return valid()
		}
	}
	return invalid("the demo_planned event must contain a date (scheduled_at)")
}

// scheduledAt extracts the scheduled time as text. Values of the wrong shape
// count as missing.
func scheduledAt(payload map[string]any) string {
	var out demoSchedule
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &out,
	})
	if err != nil {
		return ""
	}
	if err := dec.Decode(payload); err != nil {
		return ""
	}
	return strings.TrimSpace(out.ScheduledAt)
}

func freshDemoWithOffer(events []event.Event, now time.Time) ValidationResult {
	var reasons []string

	if demo, ok := latest(events, event.TypeDemoConducted); ok {
		if days := ElapsedDays(demo.CreatedAt, now); days > DemoFreshnessDays {
			reasons = append(reasons, fmt.Sprintf(
				"the demo was conducted %d days ago (limit: %d days), a new demo is required",
				days, DemoFreshnessDays,
			))
		}
	}

	if !hasType(events, event.TypeInvoiceCreated) && !hasType(events, event.TypeProposalSent) {
		reasons = append(reasons, "an invoice (invoice_created) or a commercial proposal (proposal_sent) is required")
	}

	if len(reasons) > 0 {
		return invalid(reasons...)
	}
	return valid()
}

// ElapsedDays returns the number of whole calendar days between from and to,
// evaluated in to's location. A day counts only once the time of day of from
// has been reached again, so 60 days and 23 hours is 60.
func ElapsedDays(from, to time.Time) int {
	if to.Before(from) {
		from, to = to, from
	}
	from = from.In(to.Location())

	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	days := int(time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC).
		Sub(time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)).Hours() / 24)

	if days > 0 && clock(to) < clock(from) {
		days--
	}
	return days
}

func clock(t time.Time) time.Duration {
	h, m, s := t.Clock()
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second + time.Duration(t.Nanosecond())
}

func hasType(events []event.Event, t event.Type) bool {
	for _, e := range events {
		if e.Type == t {
			return true
		}
	}
	return false
}

func ofType(events []event.Event, t event.Type) []event.Event {
	var out []event.Event
	for _, e := range events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// latest returns the most recent event of type t, preferring the higher id
// on equal timestamps.
func latest(events []event.Event, t event.Type) (event.Event, bool) {
	var best event.Event
	found := false
	for _, e := range events {
		if e.Type != t {
			continue
		}
		if !found || e.CreatedAt.After(best.CreatedAt) ||
			(e.CreatedAt.Equal(best.CreatedAt) && e.ID > best.ID) {
			best = e
			found = true
		}
	}
	return best, found
}
