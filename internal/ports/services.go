package ports

import (
	"context"

	"github.com/glavpro/crm-stages/internal/domain/company"
	"github.com/glavpro/crm-stages/internal/domain/event"
	"github.com/glavpro/crm-stages/internal/domain/funnel"
)

// CompanyService defines the service port for funnel operations on companies.
// Implemented by the application layer; called by inbound adapters (handlers).
//
// Transition methods return a *domain.TransitionRejectedError when the funnel
// rules refuse the move, a *domain.RejectRefusedError when a move to Null is
// refused because the company is already terminal, and a
// *domain.StageConflictError when another writer changed the stage between
// the read and the write.
type CompanyService interface {
	// CreateCompany registers a company at the first funnel stage.
	// Returns domain.ErrValidation if the input fails validation.
	CreateCompany(ctx context.Context, name string, createdBy int64) (*company.Company, error)

	// ListCompanies returns all companies.
	ListCompanies(ctx context.Context) ([]company.Company, error)

	// GetCard returns the composite view of a company: its stage metadata,
	// the actions available now, and its full event history.
	// Returns domain.ErrNotFound if the company does not exist.
	GetCard(ctx context.Context, id int64) (*CompanyCard, error)

	// Advance moves the company one stage forward.
	Advance(ctx context.Context, id, managerID int64) (*funnel.TransitionResult, error)

	// TransitionTo moves the company to target, which must be the immediate
	// successor of its current stage or Null.
	TransitionTo(ctx context.Context, id, managerID int64, target funnel.Stage) (*funnel.TransitionResult, error)

	// Reject moves the company to Null.
	Reject(ctx context.Context, id, managerID int64) (*funnel.TransitionResult, error)

	// ExecuteAction records the event produced by action.
	// Returns a *domain.ActionRestrictedError if the current stage denies it.
	ExecuteAction(ctx context.Context, id, managerID int64, action funnel.Action, payload map[string]any) (*event.Event, error)

	// RecordEvent appends an event of an explicit type. The reserved
	// stage_transition type is refused with domain.ErrReservedEventType.
	RecordEvent(ctx context.Context, id, managerID int64, typ event.Type, payload map[string]any) (*event.Event, error)

	// ListEvents returns the company's events, most recent first, optionally
	// filtered by type. An empty typ returns every event.
	ListEvents(ctx context.Context, id int64, typ event.Type) ([]event.Event, error)
}

// CompanyCard is the read model behind the company screen.
type CompanyCard struct {
	Company          company.Company
	Stage            funnel.StageInfo
	AvailableActions []funnel.Action
	Instruction      string
	Events           []event.Event
}
