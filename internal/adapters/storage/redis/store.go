// Package redis provides Redis-backed company and event stores.
//
// Keys (with the default prefix):
//
//	crm:seq:company          INCR counter for company IDs
//	crm:seq:event            INCR counter for event IDs
//	crm:company:<id>         company record as JSON
//	crm:companies            ZSET of company IDs scored by ID
//	crm:events:<companyID>   LIST of event records as JSON, in insert order
//
// Stage updates use WATCH on the company key so the compare-and-swap fails
// when another client writes the record between the read and EXEC.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/glavpro/crm-stages/internal/domain"
	"github.com/glavpro/crm-stages/internal/domain/company"
	"github.com/glavpro/crm-stages/internal/domain/event"
	"github.com/glavpro/crm-stages/internal/domain/funnel"
	"github.com/glavpro/crm-stages/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.CompanyStore  = (*Store)(nil)
	_ ports.EventStore    = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// DefaultPrefix is prepended to every key unless WithPrefix overrides it.
const DefaultPrefix = "crm:"

// maxWatchRetries bounds the optimistic retries of a stage update.
const maxWatchRetries = 16

// Store persists companies and events in Redis.
type Store struct {
	client *backend.Client
	prefix string
	now    func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates a Store with its own client.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a Store on an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	s := &Store{
		client: client,
		prefix: DefaultPrefix,
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "redis" }

// HealthCheck implements ports.HealthChecker.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

func (s *Store) companyKey(id int64) string {
	return s.prefix + "company:" + strconv.FormatInt(id, 10)
}

func (s *Store) indexKey() string { return s.prefix + "companies" }

func (s *Store) eventsKey(companyID int64) string {
	return s.prefix + "events:" + strconv.FormatInt(companyID, 10)
}

func (s *Store) seqKey(name string) string { return s.prefix + "seq:" + name }

// Create stores c under a new ID.
func (s *Store) Create(ctx context.Context, c *company.Company) (*company.Company, error) {
	id, err := s.client.Incr(ctx, s.seqKey("company")).Result()
	if err != nil {
		return nil, fmt.Errorf("allocating company id: %w", err)
	}

	now := s.now()
	stored := *c
	stored.ID = id
	stored.CreatedAt = now
	stored.UpdatedAt = now

	data, err := json.Marshal(stored)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal company: %w", err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe backend.Pipeliner) error {
		pipe.Set(ctx, s.companyKey(id), data, 0)
		pipe.ZAdd(ctx, s.indexKey(), backend.Z{Score: float64(id), Member: id})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save company: %w", err)
	}
	return &stored, nil
}

// Get returns the company with the given id.
func (s *Store) Get(ctx context.Context, id int64) (*company.Company, error) {
	return s.load(ctx, s.client, id)
}

type getter interface {
	Get(ctx context.Context, key string) *backend.StringCmd
}

func (s *Store) load(ctx context.Context, g getter, id int64) (*company.Company, error) {
	val, err := g.Get(ctx, s.companyKey(id)).Bytes()
	if errors.Is(err, backend.Nil) {
		return nil, fmt.Errorf("company %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get company %d: %w", id, err)
	}

	var c company.Company
	if err := json.Unmarshal(val, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal company %d: %w", id, err)
	}
	return &c, nil
}

// List returns all companies ordered by ID.
func (s *Store) List(ctx context.Context) ([]company.Company, error) {
	ids, err := s.client.ZRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	out := make([]company.Company, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.prefix + "company:" + id
	}
	vals, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load companies: %w", err)
	}
	for i, v := range vals {
		str, ok := v.(string)
		if !ok {
			continue
		}
		var c company.Company
		if err := json.Unmarshal([]byte(str), &c); err != nil {
			return nil, fmt.Errorf("failed to unmarshal company %s: %w", ids[i], err)
		}
		out = append(out, c)
	}
	return out, nil
}

// UpdateStage moves the company from expected to next. The record is
// watched while it is read and compared; a concurrent write aborts EXEC and
// the comparison is repeated against the fresh record.
func (s *Store) UpdateStage(ctx context.Context, id int64, expected, next funnel.Stage, nextName string) (*company.Company, error) {
	key := s.companyKey(id)

	var updated *company.Company
	txf := func(tx *backend.Tx) error {
		current, err := s.load(ctx, tx, id)
		if err != nil {
			return err
		}
		if current.StageCode != expected {
			return &domain.StageConflictError{Expected: string(expected), Actual: string(current.StageCode)}
		}

		current.StageCode = next
		current.StageName = nextName
		current.UpdatedAt = s.now()
		data, err := json.Marshal(current)
		if err != nil {
			return fmt.Errorf("failed to marshal company: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe backend.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			return nil
		})
		if err != nil {
			return err
		}
		updated = current
		return nil
	}

	for range maxWatchRetries {
		err := s.client.Watch(ctx, txf, key)
		if errors.Is(err, backend.TxFailedErr) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return updated, nil
	}
	return nil, fmt.Errorf("updating stage of company %d: %w", id, domain.ErrConflict)
}

// Append stores a new event.
func (s *Store) Append(ctx context.Context, companyID, managerID int64, typ event.Type, payload map[string]any) (*event.Event, error) {
	data, err := event.EncodePayload(payload)
	if err != nil {
		return nil, err
	}
	stored, err := event.DecodePayload(data)
	if err != nil {
		return nil, err
	}

	id, err := s.client.Incr(ctx, s.seqKey("event")).Result()
	if err != nil {
		return nil, fmt.Errorf("allocating event id: %w", err)
	}

	e := event.Event{
		ID:        id,
		CompanyID: companyID,
		ManagerID: managerID,
		Type:      typ,
		Payload:   stored,
		CreatedAt: s.now().UTC(),
	}
	record, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}
	if err := s.client.RPush(ctx, s.eventsKey(companyID), record).Err(); err != nil {
		return nil, fmt.Errorf("appending %s event for company %d: %w", typ, companyID, err)
	}

	out := e.Clone()
	return &out, nil
}

// ListByCompany returns the company's events, most recent first.
func (s *Store) ListByCompany(ctx context.Context, companyID int64) ([]event.Event, error) {
	return s.list(ctx, companyID, func(event.Event) bool { return true })
}

// ListByCompanyAndType returns the company's events of type typ, most recent first.
func (s *Store) ListByCompanyAndType(ctx context.Context, companyID int64, typ event.Type) ([]event.Event, error) {
	return s.list(ctx, companyID, func(e event.Event) bool { return e.Type == typ })
}

func (s *Store) list(ctx context.Context, companyID int64, keep func(event.Event) bool) ([]event.Event, error) {
	records, err := s.client.LRange(ctx, s.eventsKey(companyID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	out := make([]event.Event, 0, len(records))
	for _, rec := range records {
		var e event.Event
		if err := json.Unmarshal([]byte(rec), &e); err != nil {
			return nil, fmt.Errorf("failed to unmarshal event: %w", err)
		}
		if keep(e) {
			out = append(out, e)
		}
	}
	event.SortNewestFirst(out)
	return out, nil
}
