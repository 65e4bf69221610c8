package ports

import (
	"context"

	"github.com/glavpro/crm-stages/internal/domain/company"
	"github.com/glavpro/crm-stages/internal/domain/event"
	"github.com/glavpro/crm-stages/internal/domain/funnel"
)

// CompanyStore persists companies and their current stage.
// Implemented by the storage adapters; called by the application layer.
type CompanyStore interface {
	// Create stores a new company and returns it with server-assigned
	// fields (ID, timestamps).
	Create(ctx context.Context, c *company.Company) (*company.Company, error)

	// Get returns a single company by ID.
	// Returns domain.ErrNotFound if the company does not exist.
	Get(ctx context.Context, id int64) (*company.Company, error)

	// List returns all companies ordered by ID.
	List(ctx context.Context) ([]company.Company, error)

	// UpdateStage atomically moves the company from expected to next.
	// Returns domain.ErrNotFound if the company does not exist, or a
	// *domain.StageConflictError (wrapping domain.ErrConflict) if the stored
	// stage is not expected at the moment of the update.
	UpdateStage(ctx context.Context, id int64, expected, next funnel.Stage, nextName string) (*company.Company, error)
}

// EventStore is the append-only event log.
// Implemented by the storage adapters; called by the application layer.
type EventStore interface {
	// Append assigns an ID and a creation time to a new event and stores it.
	Append(ctx context.Context, companyID, managerID int64, typ event.Type, payload map[string]any) (*event.Event, error)

	// ListByCompany returns a company's events, most recent first. Events
	// with equal timestamps are ordered by descending ID.
	ListByCompany(ctx context.Context, companyID int64) ([]event.Event, error)

	// ListByCompanyAndType returns the subset of ListByCompany whose type
	// equals typ, in the same order.
	ListByCompanyAndType(ctx context.Context, companyID int64, typ event.Type) ([]event.Event, error)
}
