package ports

import (
	"context"

	"github.com/glavpro/crm-stages/internal/domain/company"
	"github.com/glavpro/crm-stages/internal/domain/event"
	"github.com/glavpro/crm-stages/internal/domain/funnel"
)

// FunnelClient defines the client port for the funnel HTTP API.
// Implemented by the ACL adapter; called by the funnelctl command.
// Errors returned by the API are translated back into domain errors, so
// callers can use errors.Is(err, domain.ErrConflict) to decide on a retry.
type FunnelClient interface {
	// CreateCompany creates a company at the first stage.
	CreateCompany(ctx context.Context, name string, createdBy int64) (*company.Company, error)

	// GetCard returns the company card.
	// Returns domain.ErrNotFound if the company does not exist.
	GetCard(ctx context.Context, id int64) (*CompanyCard, error)

	// Transition advances the company, or moves it to target when target is
	// not empty.
	Transition(ctx context.Context, id, managerID int64, target funnel.Stage) (*funnel.TransitionResult, error)

	// Reject moves the company to Null.
	Reject(ctx context.Context, id, managerID int64) (*funnel.TransitionResult, error)

	// ExecuteAction runs an action and returns the recorded event.
	ExecuteAction(ctx context.Context, id, managerID int64, action funnel.Action, payload map[string]any) (*event.Event, error)

	// RecordEvent appends an event of an explicit type.
	RecordEvent(ctx context.Context, id, managerID int64, typ event.Type, payload map[string]any) (*event.Event, error)

	// ListEvents returns the company's events, optionally filtered by type.
	ListEvents(ctx context.Context, id int64, typ event.Type) ([]event.Event, error)
}
