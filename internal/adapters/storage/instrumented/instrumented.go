// Package instrumented decorates the store ports with OpenTelemetry spans and
// a per-operation duration histogram, so every backend is observed the same
// way without touching its code.
package instrumented

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/glavpro/crm-stages/internal/domain"
	"github.com/glavpro/crm-stages/internal/domain/company"
	"github.com/glavpro/crm-stages/internal/domain/event"
	"github.com/glavpro/crm-stages/internal/domain/funnel"
	"github.com/glavpro/crm-stages/internal/platform/telemetry"
	"github.com/glavpro/crm-stages/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.CompanyStore = (*CompanyStore)(nil)
	_ ports.EventStore   = (*EventStore)(nil)
)

// observer records one store call. A nil metrics value skips recording.
type observer struct {
	driver  string
	metrics *telemetry.Metrics
}

func (o observer) start(ctx context.Context, op string) (context.Context, trace.Span, time.Time) {
	tracer := otel.GetTracerProvider().Tracer("store")
	ctx, span := tracer.Start(ctx, "store."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("store.driver", o.driver),
			attribute.String("store.operation", op),
		),
	)
	return ctx, span, time.Now()
}

func (o observer) finish(ctx context.Context, span trace.Span, op string, start time.Time, err error) {
	result := outcome(err)
	span.SetAttributes(attribute.String("result", result))
	if result == "error" {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()

	if o.metrics == nil {
		return
	}
	o.metrics.StoreOperationDuration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(
		telemetry.AttrStoreDriver.String(o.driver),
		telemetry.AttrStoreOperation.String(op),
		telemetry.AttrResult.String(result),
	))
}

// outcome classifies a store error. Missing records and lost compare-and-swap
// races are expected outcomes, not failures.
func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrConflict):
		return "conflict"
	default:
		return "error"
	}
}

// CompanyStore wraps a ports.CompanyStore.
type CompanyStore struct {
	next ports.CompanyStore
	obs  observer
}

// NewCompanyStore decorates next. driver names the backend in telemetry.
func NewCompanyStore(next ports.CompanyStore, driver string, metrics *telemetry.Metrics) *CompanyStore {
	return &CompanyStore{next: next, obs: observer{driver: driver, metrics: metrics}}
}

func (s *CompanyStore) Create(ctx context.Context, c *company.Company) (*company.Company, error) {
	ctx, span, start := s.obs.start(ctx, "Create")
	out, err := s.next.Create(ctx, c)
	s.obs.finish(ctx, span, "Create", start, err)
	return out, err
}

func (s *CompanyStore) Get(ctx context.Context, id int64) (*company.Company, error) {
	ctx, span, start := s.obs.start(ctx, "Get")
	span.SetAttributes(attribute.Int64("company.id", id))
	out, err := s.next.Get(ctx, id)
	s.obs.finish(ctx, span, "Get", start, err)
	return out, err
}

func (s *CompanyStore) List(ctx context.Context) ([]company.Company, error) {
	ctx, span, start := s.obs.start(ctx, "List")
	out, err := s.next.List(ctx)
	s.obs.finish(ctx, span, "List", start, err)
	return out, err
}

func (s *CompanyStore) UpdateStage(
	ctx context.Context, id int64, expected, next funnel.Stage, nextName string,
) (*company.Company, error) {
	ctx, span, start := s.obs.start(ctx, "UpdateStage")
	span.SetAttributes(
		attribute.Int64("company.id", id),
		attribute.String("stage.expected", expected.String()),
		attribute.String("stage.next", next.String()),
	)
	out, err := s.next.UpdateStage(ctx, id, expected, next, nextName)
	s.obs.finish(ctx, span, "UpdateStage", start, err)
	return out, err
}

// EventStore wraps a ports.EventStore.
type EventStore struct {
	next ports.EventStore
	obs  observer
}

// NewEventStore decorates next. driver names the backend in telemetry.
func NewEventStore(next ports.EventStore, driver string, metrics *telemetry.Metrics) *EventStore {
	return &EventStore{next: next, obs: observer{driver: driver, metrics: metrics}}
}

func (s *EventStore) Append(
	ctx context.Context, companyID, managerID int64, typ event.Type, payload map[string]any,
) (*event.Event, error) {
	ctx, span, start := s.obs.start(ctx, "Append")
	span.SetAttributes(
		attribute.Int64("company.id", companyID),
		attribute.String("event.type", typ.String()),
	)
	out, err := s.next.Append(ctx, companyID, managerID, typ, payload)
	s.obs.finish(ctx, span, "Append", start, err)
	return out, err
}

func (s *EventStore) ListByCompany(ctx context.Context, companyID int64) ([]event.Event, error) {
	ctx, span, start := s.obs.start(ctx, "ListByCompany")
	span.SetAttributes(attribute.Int64("company.id", companyID))
	out, err := s.next.ListByCompany(ctx, companyID)
	s.obs.finish(ctx, span, "ListByCompany", start, err)
	return out, err
}

func (s *EventStore) ListByCompanyAndType(ctx context.Context, companyID int64, typ event.Type) ([]event.Event, error) {
	ctx, span, start := s.obs.start(ctx, "ListByCompanyAndType")
	span.SetAttributes(
		attribute.Int64("company.id", companyID),
		attribute.String("event.type", typ.String()),
	)
	out, err := s.next.ListByCompanyAndType(ctx, companyID, typ)
	s.obs.finish(ctx, span, "ListByCompanyAndType", start, err)
	return out, err
}
