// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/glavpro/crm-stages/internal/domain/company"
	"github.com/glavpro/crm-stages/internal/domain/event"
	"github.com/glavpro/crm-stages/internal/domain/funnel"
	"github.com/glavpro/crm-stages/internal/ports"
)

// CompanyResponse represents a single company in HTTP responses.
type CompanyResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	StageCode string `json:"stage_code"`
	StageName string `json:"stage_name"`
	CreatedBy int64  `json:"created_by"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// CompanyListResponse represents a list of companies in HTTP responses.
type CompanyListResponse struct {
	Companies []CompanyResponse `json:"companies"`
	Count     int               `json:"count"`
}

// ToCompanyResponse converts a domain Company to an HTTP response DTO.
func ToCompanyResponse(c *company.Company) CompanyResponse {
	return CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		StageCode: c.StageCode.String(),
		StageName: c.StageName,
		CreatedBy: c.CreatedBy,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
}

// ToCompanyListResponse converts a slice of companies to a list response.
func ToCompanyListResponse(companies []company.Company) CompanyListResponse {
	items := make([]CompanyResponse, len(companies))
	for i := range companies {
		items[i] = ToCompanyResponse(&companies[i])
	}
	return CompanyListResponse{
		Companies: items,
		Count:     len(items),
	}
}

// StageResponse describes a funnel stage.
type StageResponse struct {
	Code              string   `json:"code"`
	MLSCode           string   `json:"mls_code"`
	Name              string   `json:"name"`
	Instruction       string   `json:"instruction"`
	ExitCondition     *string  `json:"exit_condition"`
	RestrictedActions []string `json:"restricted_actions"`
}

// ToStageResponse converts stage metadata to a response DTO.
func ToStageResponse(info funnel.StageInfo) StageResponse {
	return StageResponse{
		Code:              info.Code.String(),
		MLSCode:           info.MLSCode,
		Name:              info.Name,
		Instruction:       info.Instruction,
		ExitCondition:     info.ExitCondition,
		RestrictedActions: actionNames(info.Restricted),
	}
}

// EventResponse is the persisted event shape.
type EventResponse struct {
	ID        int64          `json:"id"`
	CompanyID int64          `json:"company_id"`
	ManagerID int64          `json:"manager_id"`
	Type      string         `json:"type"`
	Payload   map[string]any `json:"payload"`
	CreatedAt string         `json:"created_at"`
}

// EventListResponse is a list of events, newest first.
type EventListResponse struct {
	Events []EventResponse `json:"events"`
	Count  int             `json:"count"`
}

// ToEventResponse converts a domain Event to a response DTO.
func ToEventResponse(e *event.Event) EventResponse {
	payload := e.Payload
	if payload == nil {
		payload = map[string]any{}
	}
	return EventResponse{
		ID:        e.ID,
		CompanyID: e.CompanyID,
		ManagerID: e.ManagerID,
		Type:      e.Type.String(),
		Payload:   payload,
		CreatedAt: e.CreatedAt.Format(time.RFC3339Nano),
	}
}

// ToEventListResponse converts events to a list response, keeping order.
func ToEventListResponse(events []event.Event) EventListResponse {
	items := make([]EventResponse, len(events))
	for i := range events {
		items[i] = ToEventResponse(&events[i])
	}
	return EventListResponse{Events: items, Count: len(items)}
}

// CardResponse is the company card.
type CardResponse struct {
	Company          CompanyResponse `json:"company"`
	Stage            StageResponse   `json:"stage"`
	AvailableActions []string        `json:"available_actions"`
	Instruction      string          `json:"instruction"`
	Events           []EventResponse `json:"events"`
}

// ToCardResponse converts a CompanyCard to a response DTO.
func ToCardResponse(card *ports.CompanyCard) CardResponse {
	return CardResponse{
		Company:          ToCompanyResponse(&card.Company),
		Stage:            ToStageResponse(card.Stage),
		AvailableActions: actionNames(card.AvailableActions),
		Instruction:      card.Instruction,
		Events:           ToEventListResponse(card.Events).Events,
	}
}

// TransitionResponse reports a completed transition.
type TransitionResponse struct {
	Success      bool   `json:"success"`
	NewStage     string `json:"new_stage"`
	NewStageName string `json:"new_stage_name"`
}

// ToTransitionResponse converts a successful TransitionResult.
func ToTransitionResponse(r *funnel.TransitionResult) TransitionResponse {
	return TransitionResponse{
		Success:      r.Success,
		NewStage:     r.NewStage.String(),
		NewStageName: funnel.Name(r.NewStage),
	}
}

func actionNames(actions []funnel.Action) []string {
	out := make([]string, len(actions))
	for i, a := range actions {
		out[i] = a.String()
	}
	return out
}

// Health states reported by /health/live and /health/ready.
const (
	HealthOK       = "ok"
	HealthReady    = "ready"
	HealthNotReady = "not_ready"
	HealthDown     = "unavailable"
)

// HealthResponse is the body of /health/live and /health/ready. Checks
// names each storage backend or upstream with its state.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
