// Package memory provides in-process implementations of the company and
// event stores. Each company record sits behind its own lock, which makes
// the stage compare-and-swap atomic without a global write lock.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/glavpro/crm-stages/internal/domain"
	"github.com/glavpro/crm-stages/internal/domain/company"
	"github.com/glavpro/crm-stages/internal/domain/event"
	"github.com/glavpro/crm-stages/internal/domain/funnel"
	"github.com/glavpro/crm-stages/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.CompanyStore = (*CompanyStore)(nil)
	_ ports.EventStore   = (*EventStore)(nil)
)

// Option configures a memory store.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{now: func() time.Time { return time.Now().UTC() }}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// CompanyStore keeps companies in memory.
type CompanyStore struct {
	mu        sync.RWMutex
	nextID    int64
	companies map[int64]*safeRef[company.Company]
	now       func() time.Time
}

// NewCompanyStore returns an empty CompanyStore.
func NewCompanyStore(opts ...Option) *CompanyStore {
	o := buildOptions(opts)
	return &CompanyStore{
		companies: make(map[int64]*safeRef[company.Company]),
		now:       o.now,
	}
}

// Create stores c with a new ID and fresh timestamps.
func (s *CompanyStore) Create(_ context.Context, c *company.Company) (*company.Company, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	stored := *c
	stored.ID = s.nextID
	stored.CreatedAt = now
	stored.UpdatedAt = now
	s.companies[stored.ID] = newRef(stored)

	return &stored, nil
}

// Get returns a copy of the stored company.
func (s *CompanyStore) Get(_ context.Context, id int64) (*company.Company, error) {
	ref, err := s.ref(id)
	if err != nil {
		return nil, err
	}
	c := ref.Get()
	return &c, nil
}

// List returns all companies ordered by ID.
func (s *CompanyStore) List(_ context.Context) ([]company.Company, error) {
	s.mu.RLock()
	refs := make([]*safeRef[company.Company], 0, len(s.companies))
	for _, ref := range s.companies {
		refs = append(refs, ref)
	}
	s.mu.RUnlock()

	out := make([]company.Company, 0, len(refs))
	for _, ref := range refs {
		out = append(out, ref.Get())
	}
	slices.SortFunc(out, func(a, b company.Company) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

// UpdateStage moves the company from expected to next under its record lock.
func (s *CompanyStore) UpdateStage(_ context.Context, id int64, expected, next funnel.Stage, nextName string) (*company.Company, error) {
	ref, err := s.ref(id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	var updated company.Company
	err = ref.Update(func(c *company.Company) error {
		if c.StageCode != expected {
			return &domain.StageConflictError{Expected: string(expected), Actual: string(c.StageCode)}
		}
		c.StageCode = next
		c.StageName = nextName
		c.UpdatedAt = now
		updated = *c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *CompanyStore) ref(id int64) (*safeRef[company.Company], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ref, ok := s.companies[id]
	if !ok {
		return nil, fmt.Errorf("company %d: %w", id, domain.ErrNotFound)
	}
	return ref, nil
}

// EventStore keeps the event log in memory.
type EventStore struct {
	mu        sync.RWMutex
	nextID    int64
	byCompany map[int64][]event.Event
	now       func() time.Time
}

// NewEventStore returns an empty EventStore.
func NewEventStore(opts ...Option) *EventStore {
	o := buildOptions(opts)
	return &EventStore{
		byCompany: make(map[int64][]event.Event),
		now:       o.now,
	}
}

// Append stores a new event. IDs grow monotonically across all companies.
func (s *EventStore) Append(_ context.Context, companyID, managerID int64, typ event.Type, payload map[string]any) (*event.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	e := event.Event{
		ID:        s.nextID,
		CompanyID: companyID,
		ManagerID: managerID,
		Type:      typ,
		Payload:   event.ClonePayload(payload),
		CreatedAt: s.now(),
	}
	s.byCompany[companyID] = append(s.byCompany[companyID], e)

	out := e.Clone()
	return &out, nil
}

// ListByCompany returns the company's events, most recent first.
func (s *EventStore) ListByCompany(_ context.Context, companyID int64) ([]event.Event, error) {
	return s.list(companyID, func(event.Event) bool { return true }), nil
}

// ListByCompanyAndType returns the company's events of type typ, most recent first.
func (s *EventStore) ListByCompanyAndType(_ context.Context, companyID int64, typ event.Type) ([]event.Event, error) {
	return s.list(companyID, func(e event.Event) bool { return e.Type == typ }), nil
}

func (s *EventStore) list(companyID int64, keep func(event.Event) bool) []event.Event {
	s.mu.RLock()
	stored := s.byCompany[companyID]
	out := make([]event.Event, 0, len(stored))
	for _, e := range stored {
		if keep(e) {
			out = append(out, e.Clone())
		}
	}
	s.mu.RUnlock()

	event.SortNewestFirst(out)
	return out
}
