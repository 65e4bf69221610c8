// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	appctx "github.com/glavpro/crm-stages/internal/app/context"
	"github.com/glavpro/crm-stages/internal/domain"
	"github.com/glavpro/crm-stages/internal/domain/company"
	"github.com/glavpro/crm-stages/internal/domain/event"
	"github.com/glavpro/crm-stages/internal/domain/funnel"
	"github.com/glavpro/crm-stages/internal/platform/metrics"
	"github.com/glavpro/crm-stages/internal/ports"
)

// Compile-time check that CompanyService implements ports.CompanyService.
var _ ports.CompanyService = (*CompanyService)(nil)

// CompanyService implements ports.CompanyService. Funnel decisions are made
// by the funnel package; this type reads the inputs, applies the decision
// through the stores, and records what happened.
type CompanyService struct {
	companies ports.CompanyStore
	events    ports.EventStore
	metrics   *metrics.Recorder
	logger    *slog.Logger
	now       func() time.Time
}

// Option configures a CompanyService.
type Option func(*CompanyService)

// WithClock sets the time source handed to the funnel rules.
func WithClock(now func() time.Time) Option {
	return func(s *CompanyService) {
		if now != nil {
			s.now = now
		}
	}
}

// WithMetrics sets the recorder for transition and action counters.
func WithMetrics(r *metrics.Recorder) Option {
	return func(s *CompanyService) {
		s.metrics = r
	}
}

// NewCompanyService creates a CompanyService. A nil logger discards output.
func NewCompanyService(companies ports.CompanyStore, events ports.EventStore, logger *slog.Logger, opts ...Option) *CompanyService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &CompanyService{
		companies: companies,
		events:    events,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func companyKey(id int64) string { return "company:" + strconv.FormatInt(id, 10) }

func eventsKey(id int64) string { return "events:" + strconv.FormatInt(id, 10) }

func (s *CompanyService) fetchCompany(rc *appctx.RequestContext, id int64) (*company.Company, error) {
	return appctx.GetOrFetch(rc, companyKey(id), func(ctx context.Context) (*company.Company, error) {
		return s.companies.Get(ctx, id)
	})
}

func (s *CompanyService) fetchEvents(rc *appctx.RequestContext, id int64) ([]event.Event, error) {
	return appctx.GetOrFetch(rc, eventsKey(id), func(ctx context.Context) ([]event.Event, error) {
		return s.events.ListByCompany(ctx, id)
	})
}

// CreateCompany registers a company at the first funnel stage.
func (s *CompanyService) CreateCompany(ctx context.Context, name string, createdBy int64) (*company.Company, error) {
	s.logger.InfoContext(ctx, "creating company", slog.Int64("created_by", createdBy))

	c := company.New(name, createdBy)
	if err := c.Validate(); err != nil {
		return nil, err
	}

	created, err := s.companies.Create(ctx, c)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create company",
			slog.String("operation", "CreateCompany"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return created, nil
}

// ListCompanies returns all companies.
func (s *CompanyService) ListCompanies(ctx context.Context) ([]company.Company, error) {
	s.logger.InfoContext(ctx, "listing companies")

	list, err := s.companies.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list companies",
			slog.String("operation", "ListCompanies"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return list, nil
}

// GetCard assembles the company card.
func (s *CompanyService) GetCard(ctx context.Context, id int64) (*ports.CompanyCard, error) {
	s.logger.InfoContext(ctx, "fetching company card", slog.Int64("company_id", id))
	rc := appctx.New(ctx)

	c, err := s.fetchCompany(rc, id)
	if err != nil {
		s.logFailure(ctx, "GetCard", id, err)
		return nil, err
	}

	info, err := funnel.Info(c.StageCode)
	if err != nil {
		s.logFailure(ctx, "GetCard", id, err)
		return nil, fmt.Errorf("company %d: %w", id, err)
	}

	events, err := s.fetchEvents(rc, id)
	if err != nil {
		s.logFailure(ctx, "GetCard", id, err)
		return nil, err
	}

	return &ports.CompanyCard{
		Company:          *c,
		Stage:            info,
		AvailableActions: funnel.AvailableActions(c.StageCode),
		Instruction:      info.Instruction,
		Events:           events,
	}, nil
}

// Advance moves the company one stage forward.
func (s *CompanyService) Advance(ctx context.Context, id, managerID int64) (*funnel.TransitionResult, error) {
	return s.transition(ctx, "Advance", id, managerID, false, func(current funnel.Stage, events []event.Event) funnel.TransitionResult {
		return funnel.Advance(current, events, s.now())
	})
}

// TransitionTo moves the company to target.
func (s *CompanyService) TransitionTo(ctx context.Context, id, managerID int64, target funnel.Stage) (*funnel.TransitionResult, error) {
	if !target.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownStage, target)
	}
	return s.transition(ctx, "TransitionTo", id, managerID, target == funnel.StageNull, func(current funnel.Stage, events []event.Event) funnel.TransitionResult {
		return funnel.TransitionTo(current, target, events, s.now())
	})
}

// Reject moves the company to Null.
func (s *CompanyService) Reject(ctx context.Context, id, managerID int64) (*funnel.TransitionResult, error) {
	return s.transition(ctx, "Reject", id, managerID, true, func(current funnel.Stage, _ []event.Event) funnel.TransitionResult {
		return funnel.Reject(current)
	})
}

type decideFunc func(current funnel.Stage, events []event.Event) funnel.TransitionResult

// transition reads the company and its history, asks decide for a verdict,
// and on success commits the stage update followed by the stage_transition
// event. The stage read here is the expectation for the compare-and-swap.
// A refused move to Null is reported as *domain.RejectRefusedError.
func (s *CompanyService) transition(ctx context.Context, op string, id, managerID int64, rejecting bool, decide decideFunc) (*funnel.TransitionResult, error) {
	s.logger.InfoContext(ctx, "transitioning company",
		slog.String("operation", op),
		slog.Int64("company_id", id),
		slog.Int64("manager_id", managerID),
	)
	rc := appctx.New(ctx)

	c, err := s.fetchCompany(rc, id)
	if err != nil {
		s.logFailure(ctx, op, id, err)
		return nil, err
	}
	events, err := s.fetchEvents(rc, id)
	if err != nil {
		s.logFailure(ctx, op, id, err)
		return nil, err
	}

	from := c.StageCode
	result := decide(from, events)
	if !result.Success {
		s.metrics.Transition(string(from), "", metrics.OutcomeRejected)
		s.logger.InfoContext(ctx, "transition rejected",
			slog.String("operation", op),
			slog.Int64("company_id", id),
			slog.String("stage", string(from)),
			slog.Any("reasons", result.Reasons),
		)
		if rejecting {
			return nil, &domain.RejectRefusedError{Stage: string(from), Reasons: result.Reasons}
		}
		return nil, &domain.TransitionRejectedError{Reasons: result.Reasons}
	}

	to := result.NewStage
	update := &updateStageStep{store: s.companies, companyID: id, from: from, to: to}
	record := &appendEventStep{
		store:     s.events,
		companyID: id,
		managerID: managerID,
		typ:       event.TypeStageTransition,
		payload: map[string]any{
			event.PayloadFrom: string(from),
			event.PayloadTo:   string(to),
		},
	}
	for _, step := range []domain.Step{update, record} {
		if err := rc.AddStep(step); err != nil {
			return nil, err
		}
	}

	if err := rc.Commit(ctx); err != nil {
		outcome := metrics.OutcomeError
		if errors.Is(err, domain.ErrConflict) {
			outcome = metrics.OutcomeConflict
		}
		s.metrics.Transition(string(from), string(to), outcome)
		s.logFailure(ctx, op, id, err)
		return nil, err
	}
	rc.Put(companyKey(id), update.updated)

	s.metrics.Transition(string(from), string(to), metrics.OutcomeSuccess)
	s.logger.InfoContext(ctx, "company transitioned",
		slog.String("operation", op),
		slog.Int64("company_id", id),
		slog.String("from", string(from)),
		slog.String("to", string(to)),
		slog.Int64("event_id", record.appended.ID),
	)
	return &result, nil
}

// ExecuteAction records the event produced by action when the company's
// stage allows it.
func (s *CompanyService) ExecuteAction(ctx context.Context, id, managerID int64, action funnel.Action, payload map[string]any) (*event.Event, error) {
	s.logger.InfoContext(ctx, "executing action",
		slog.Int64("company_id", id),
		slog.String("action", string(action)),
	)

	typ, ok := action.EventType()
	if !ok {
		s.metrics.Action(string(action), metrics.OutcomeRejected)
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownAction, action)
	}

	c, err := s.companies.Get(ctx, id)
	if err != nil {
		s.metrics.Action(string(action), metrics.OutcomeError)
		s.logFailure(ctx, "ExecuteAction", id, err)
		return nil, err
	}

	if !funnel.IsActionAllowed(c.StageCode, action) {
		s.metrics.Action(string(action), metrics.OutcomeRejected)
		allowed := funnel.AllowedActions(c.StageCode)
		names := make([]string, len(allowed))
		for i, a := range allowed {
			names[i] = string(a)
		}
		return nil, &domain.ActionRestrictedError{
			Action:  string(action),
			Stage:   string(c.StageCode),
			Allowed: names,
		}
	}

	e, err := s.events.Append(ctx, id, managerID, typ, payload)
	if err != nil {
		s.metrics.Action(string(action), metrics.OutcomeError)
		s.logFailure(ctx, "ExecuteAction", id, err)
		return nil, err
	}
	s.metrics.Action(string(action), metrics.OutcomeSuccess)
	return e, nil
}

// RecordEvent appends an event of an explicit, non-reserved type.
func (s *CompanyService) RecordEvent(ctx context.Context, id, managerID int64, typ event.Type, payload map[string]any) (*event.Event, error) {
	s.logger.InfoContext(ctx, "recording event",
		slog.Int64("company_id", id),
		slog.String("type", string(typ)),
	)

	if !typ.IsValid() {
		return nil, &domain.ValidationError{Fields: map[string]string{
			"type": fmt.Sprintf("unknown event type %q", typ),
		}}
	}
	if typ.IsReserved() {
		return nil, fmt.Errorf("%w: %w", domain.ErrReservedEventType, &domain.ValidationError{Fields: map[string]string{
			"type": fmt.Sprintf("%s is written by stage transitions only", typ),
		}})
	}

	if _, err := s.companies.Get(ctx, id); err != nil {
		s.logFailure(ctx, "RecordEvent", id, err)
		return nil, err
	}

	e, err := s.events.Append(ctx, id, managerID, typ, payload)
	if err != nil {
		s.logFailure(ctx, "RecordEvent", id, err)
		return nil, err
	}
	return e, nil
}

// ListEvents returns the company's events, optionally of a single type.
func (s *CompanyService) ListEvents(ctx context.Context, id int64, typ event.Type) ([]event.Event, error) {
	if typ != "" && !typ.IsValid() {
		return nil, &domain.ValidationError{Fields: map[string]string{
			"type": fmt.Sprintf("unknown event type %q", typ),
		}}
	}

	if _, err := s.companies.Get(ctx, id); err != nil {
		s.logFailure(ctx, "ListEvents", id, err)
		return nil, err
	}

	var (
		events []event.Event
		err    error
	)
	if typ == "" {
		events, err = s.events.ListByCompany(ctx, id)
	} else {
		events, err = s.events.ListByCompanyAndType(ctx, id, typ)
	}
	if err != nil {
		s.logFailure(ctx, "ListEvents", id, err)
		return nil, err
	}
	return events, nil
}

// logFailure logs expected outcomes (missing company, lost race) at warn and
// everything else at error.
func (s *CompanyService) logFailure(ctx context.Context, op string, id int64, err error) {
	level := slog.LevelError
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrConflict) {
		level = slog.LevelWarn
	}
	s.logger.Log(ctx, level, "company operation failed",
		slog.String("operation", op),
		slog.Int64("company_id", id),
		slog.Any("error", err),
	)
}
