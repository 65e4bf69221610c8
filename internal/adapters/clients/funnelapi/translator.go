package funnelapi

import (
	"time"

	"github.com/glavpro/crm-stages/internal/domain/company"
	"github.com/glavpro/crm-stages/internal/domain/event"
	"github.com/glavpro/crm-stages/internal/domain/funnel"
	"github.com/glavpro/crm-stages/internal/ports"
)

// Wire shapes of the funnel API. Events decode straight into event.Event,
// which already accepts the server's encoding.

type companyDTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	StageCode string    `json:"stage_code"`
	StageName string    `json:"stage_name"`
	CreatedBy int64     `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type stageDTO struct {
	Code              string   `json:"code"`
	MLSCode           string   `json:"mls_code"`
	Name              string   `json:"name"`
	Instruction       string   `json:"instruction"`
	ExitCondition     *string  `json:"exit_condition"`
	RestrictedActions []string `json:"restricted_actions"`
}

type cardDTO struct {
	Company          companyDTO    `json:"company"`
	Stage            stageDTO      `json:"stage"`
	AvailableActions []string      `json:"available_actions"`
	Instruction      string        `json:"instruction"`
	Events           []event.Event `json:"events"`
}

type eventListDTO struct {
	Events []event.Event `json:"events"`
	Count  int           `json:"count"`
}

type transitionDTO struct {
	Success      bool   `json:"success"`
	NewStage     string `json:"new_stage"`
	NewStageName string `json:"new_stage_name"`
}

type createCompanyRequest struct {
	Name      string `json:"name"`
	CreatedBy int64  `json:"created_by"`
}

type transitionRequest struct {
	TargetStage string `json:"target_stage,omitempty"`
}

type recordEventRequest struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
}

type actionRequest struct {
	Payload map[string]any `json:"payload"`
}

func toDomainCompany(d *companyDTO) company.Company {
	return company.Company{
		ID:        d.ID,
		Name:      d.Name,
		StageCode: funnel.Stage(d.StageCode),
		StageName: d.StageName,
		CreatedBy: d.CreatedBy,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func toDomainCard(d *cardDTO) *ports.CompanyCard {
	events := d.Events
	if events == nil {
		events = []event.Event{}
	}
	return &ports.CompanyCard{
		Company: toDomainCompany(&d.Company),
		Stage: funnel.StageInfo{
			Code:          funnel.Stage(d.Stage.Code),
			MLSCode:       d.Stage.MLSCode,
			Name:          d.Stage.Name,
			Instruction:   d.Stage.Instruction,
			ExitCondition: d.Stage.ExitCondition,
			Restricted:    toActions(d.Stage.RestrictedActions),
		},
		AvailableActions: toActions(d.AvailableActions),
		Instruction:      d.Instruction,
		Events:           events,
	}
}

func toDomainTransition(d *transitionDTO) *funnel.TransitionResult {
	return &funnel.TransitionResult{
		Success:  d.Success,
		NewStage: funnel.Stage(d.NewStage),
	}
}

func toActions(raw []string) []funnel.Action {
	out := make([]funnel.Action, len(raw))
	for i, a := range raw {
		out[i] = funnel.Action(a)
	}
	return out
}
