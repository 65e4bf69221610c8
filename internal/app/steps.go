package app

import (
	"context"
	"fmt"

	"github.com/glavpro/crm-stages/internal/domain"
	"github.com/glavpro/crm-stages/internal/domain/company"
	"github.com/glavpro/crm-stages/internal/domain/event"
	"github.com/glavpro/crm-stages/internal/domain/funnel"
	"github.com/glavpro/crm-stages/internal/ports"
)

var (
	_ domain.Step = (*updateStageStep)(nil)
	_ domain.Step = (*appendEventStep)(nil)
)

// updateStageStep moves a company from one stage to the next with a
// compare-and-swap. Rollback swaps it back, guarded the same way, so a
// rollback never overwrites a stage written by someone else.
type updateStageStep struct {
	store     ports.CompanyStore
	companyID int64
	from, to  funnel.Stage

	updated *company.Company
}

func (s *updateStageStep) Execute(ctx context.Context) error {
	c, err := s.store.UpdateStage(ctx, s.companyID, s.from, s.to, funnel.Name(s.to))
	if err != nil {
		return err
	}
	s.updated = c
	return nil
}

func (s *updateStageStep) Rollback(ctx context.Context) error {
	if _, err := s.store.UpdateStage(ctx, s.companyID, s.to, s.from, funnel.Name(s.from)); err != nil {
		return fmt.Errorf("restoring stage %s: %w", s.from, err)
	}
	return nil
}

func (s *updateStageStep) Description() string {
	return fmt.Sprintf("update stage of company %d from %s to %s", s.companyID, s.from, s.to)
}

// appendEventStep writes one event. Events are append-only, so there is
// nothing to undo.
type appendEventStep struct {
	store     ports.EventStore
	companyID int64
	managerID int64
	typ       event.Type
	payload   map[string]any

	appended *event.Event
}

func (s *appendEventStep) Execute(ctx context.Context) error {
	e, err := s.store.Append(ctx, s.companyID, s.managerID, s.typ, s.payload)
	if err != nil {
		return err
	}
	s.appended = e
	return nil
}

func (s *appendEventStep) Rollback(context.Context) error { return nil }

func (s *appendEventStep) Description() string {
	return fmt.Sprintf("append %s event for company %d", s.typ, s.companyID)
}
