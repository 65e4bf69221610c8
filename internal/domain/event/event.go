// Package event defines the immutable event records that prove progress
// through the funnel.
package event

import (
	"bytes"
	"cmp"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/glavpro/crm-stages/internal/domain"
)

// Type is the tag of an event.
type Type string

const (
	TypeLPRConversation   Type = "lpr_conversation"
	TypeContactAttempt    Type = "contact_attempt"
	TypeDiscoveryFilled   Type = "discovery_filled"
	TypeDemoPlanned       Type = "demo_planned"
	TypeDemoConducted     Type = "demo_conducted"
	TypeInvoiceCreated    Type = "invoice_created"
	TypeProposalSent      Type = "proposal_sent"
	TypePaymentReceived   Type = "payment_received"
	TypeCertificateIssued Type = "certificate_issued"
	TypeStageTransition   Type = "stage_transition"
)

var types = []Type{
	TypeLPRConversation,
	TypeContactAttempt,
	TypeDiscoveryFilled,
	TypeDemoPlanned,
	TypeDemoConducted,
	TypeInvoiceCreated,
	TypeProposalSent,
	TypePaymentReceived,
	TypeCertificateIssued,
	TypeStageTransition,
}

// Types returns every defined event type.
func Types() []Type {
	return slices.Clone(types)
}

// IsValid returns true if the type is one of the defined tags.
func (t Type) IsValid() bool {
	return slices.Contains(types, t)
}

// IsReserved reports whether the type may only be written by the stage
// transition flow.
func (t Type) IsReserved() bool {
	return t == TypeStageTransition
}

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}

// ParseType converts a raw tag into a Type.
// Returns a *domain.ValidationError for undefined tags.
func ParseType(raw string) (Type, error) {
	t := Type(raw)
	if !t.IsValid() {
		return "", &domain.ValidationError{Fields: map[string]string{
			"type": fmt.Sprintf("invalid: %q", raw),
		}}
	}
	return t, nil
}

// Well-known payload keys.
const (
	PayloadFrom        = "from"
	PayloadTo          = "to"
	PayloadScheduledAt = "scheduled_at"
)

// Event is an immutable record of something that happened to a company.
type Event struct {
	ID        int64          `json:"id"`
	CompanyID int64          `json:"company_id"`
	ManagerID int64          `json:"manager_id"`
	Type      Type           `json:"type"`
	Payload   map[string]any `json:"payload"`
	CreatedAt time.Time      `json:"created_at"`
}

// legacyTimeLayout is accepted on input for records written without a zone.
const legacyTimeLayout = "2006-01-02 15:04:05"

// UnmarshalJSON accepts the payload either as an object or as a string
// holding an encoded object. Numbers are kept as json.Number so that a
// decode and re-encode reproduces them exactly.
func (e *Event) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID        int64           `json:"id"`
		CompanyID int64           `json:"company_id"`
		ManagerID int64           `json:"manager_id"`
		Type      Type            `json:"type"`
		Payload   json.RawMessage `json:"payload"`
		CreatedAt string          `json:"created_at"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding event: %w", err)
	}

	payload, err := DecodePayload(raw.Payload)
	if err != nil {
		return err
	}

	var createdAt time.Time
	if raw.CreatedAt != "" {
		createdAt, err = parseTime(raw.CreatedAt)
		if err != nil {
			return fmt.Errorf("decoding event created_at: %w", err)
		}
	}

	*e = Event{
		ID:        raw.ID,
		CompanyID: raw.CompanyID,
		ManagerID: raw.ManagerID,
		Type:      raw.Type,
		Payload:   payload,
		CreatedAt: createdAt,
	}
	return nil
}

// DecodePayload decodes a payload from its text form. An empty input, JSON
// null, or an empty string yields an empty map.
func DecodePayload(data []byte) (map[string]any, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return map[string]any{}, nil
	}

	if data[0] == '"' {
		var inner string
		if err := json.Unmarshal(data, &inner); err != nil {
			return nil, fmt.Errorf("decoding payload string: %w", err)
		}
		return DecodePayload([]byte(inner))
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	payload := map[string]any{}
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding payload: %w", err)
	}
	return payload, nil
}

// EncodePayload returns the text form of a payload. Nil encodes as {}.
func EncodePayload(payload map[string]any) ([]byte, error) {
	if payload == nil {
		return []byte("{}"), nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding payload: %w", err)
	}
	return data, nil
}

// ClonePayload returns a deep copy of nested maps and slices in p.
func ClonePayload(p map[string]any) map[string]any {
	out := make(map[string]any, len(p))
	for k, v := range p {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch tv := v.(type) {
	case map[string]any:
		return ClonePayload(tv)
	case []any:
		out := make([]any, len(tv))
		for i, item := range tv {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}

// Clone returns a copy of e that shares no mutable state with it.
func (e Event) Clone() Event {
	e.Payload = ClonePayload(e.Payload)
	return e
}

// Equal reports whether two events carry the same fields.
func (e Event) Equal(other Event) bool {
	if e.ID != other.ID || e.CompanyID != other.CompanyID || e.ManagerID != other.ManagerID ||
		e.Type != other.Type || !e.CreatedAt.Equal(other.CreatedAt) {
		return false
	}
	a, errA := EncodePayload(e.Payload)
	b, errB := EncodePayload(other.Payload)
	return errA == nil && errB == nil && bytes.Equal(a, b)
}

// SortNewestFirst orders events by descending creation time, breaking ties
// by descending ID.
func SortNewestFirst(events []Event) {
	slices.SortStableFunc(events, func(a, b Event) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
}

func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation(legacyTimeLayout, s, time.UTC)
}
