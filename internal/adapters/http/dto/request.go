package dto

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/glavpro/crm-stages/internal/domain"
	"github.com/glavpro/crm-stages/internal/domain/event"
	"github.com/glavpro/crm-stages/internal/domain/funnel"
)

// CreateCompanyRequest represents the JSON body for registering a company.
type CreateCompanyRequest struct {
	Name      string `json:"name"`
	CreatedBy int64  `json:"created_by"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateCompanyRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if r.CreatedBy <= 0 {
		fields["created_by"] = fmt.Sprintf("must be positive, got %d", r.CreatedBy)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// TransitionRequest is the optional body of a transition call. An empty
// TargetStage advances to the next stage.
type TransitionRequest struct {
	TargetStage string `json:"target_stage,omitempty"`
}

// Validate checks that a provided target is a known stage.
func (r *TransitionRequest) Validate() error {
	if r.TargetStage == "" {
		return nil
	}
	_, err := funnel.ParseStage(r.TargetStage)
	return err
}

// Target returns the parsed target stage, or "" for a plain advance.
func (r *TransitionRequest) Target() funnel.Stage {
	return funnel.Stage(r.TargetStage)
}

// ActionRequest is the body of an action call. Payload may be a JSON object
// or a string holding an encoded object.
type ActionRequest struct {
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Validate checks that the payload decodes to an object.
func (r *ActionRequest) Validate() error {
	_, err := decodePayloadField(r.Payload)
	return err
}

// PayloadMap returns the decoded payload.
func (r *ActionRequest) PayloadMap() map[string]any {
	p, _ := decodePayloadField(r.Payload)
	return p
}

// RecordEventRequest is the body for recording an event of an explicit type.
type RecordEventRequest struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Validate checks the event type and the payload shape.
func (r *RecordEventRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Type) == "" {
		fields["type"] = domain.MsgRequired
	} else if !event.Type(r.Type).IsValid() {
		fields["type"] = fmt.Sprintf("invalid: %q", r.Type)
	}
	if _, err := decodePayloadField(r.Payload); err != nil {
		fields["payload"] = "must be a JSON object or a string holding one"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// PayloadMap returns the decoded payload.
func (r *RecordEventRequest) PayloadMap() map[string]any {
	p, _ := decodePayloadField(r.Payload)
	return p
}

func decodePayloadField(raw json.RawMessage) (map[string]any, error) {
	p, err := event.DecodePayload(raw)
	if err != nil {
		return nil, &domain.ValidationError{Fields: map[string]string{
			"payload": "must be a JSON object or a string holding one",
		}}
	}
	return p, nil
}
