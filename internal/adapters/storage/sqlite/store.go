// Package sqlite provides SQLite-backed company and event stores.
//
// The stage compare-and-swap is a single conditional UPDATE, so SQLite's
// write lock is the only coordination needed between concurrent writers.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/glavpro/crm-stages/internal/adapters/storage/sqlite/migrations"
	"github.com/glavpro/crm-stages/internal/domain"
	"github.com/glavpro/crm-stages/internal/domain/company"
	"github.com/glavpro/crm-stages/internal/domain/event"
	"github.com/glavpro/crm-stages/internal/domain/funnel"
	"github.com/glavpro/crm-stages/internal/platform/storage/sqlitemigrate"
	"github.com/glavpro/crm-stages/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.CompanyStore  = (*Store)(nil)
	_ ports.EventStore    = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// Store persists companies and events in SQLite.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// Open opens the database at path and applies the embedded migrations.
func Open(ctx context.Context, path string, opts ...Option) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("storage path is required")
	}

	dsn := "file:" + filepath.Clean(path) +
		"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}
	// A single connection serializes writers, which keeps the conditional
	// UPDATE free of SQLITE_BUSY under concurrent transitions.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("pinging sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(ctx, sqlDB, migrations.FS, "."); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	s := &Store{
		sqlDB: sqlDB,
		now:   func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "sqlite" }

// HealthCheck implements ports.HealthChecker.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("sqlite ping: %w", err)
	}
	return nil
}

func toNanos(t time.Time) int64 { return t.UTC().UnixNano() }

func fromNanos(n int64) time.Time { return time.Unix(0, n).UTC() }

const companyColumns = `id, name, stage_code, stage_name, created_by, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCompany(row rowScanner) (*company.Company, error) {
	var (
		c                    company.Company
		stage                string
		createdAt, updatedAt int64
	)
	if err := row.Scan(&c.ID, &c.Name, &stage, &c.StageName, &c.CreatedBy, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	c.StageCode = funnel.Stage(stage)
	c.CreatedAt = fromNanos(createdAt)
	c.UpdatedAt = fromNanos(updatedAt)
	return &c, nil
}

// Create inserts c and returns it with its new ID and timestamps.
func (s *Store) Create(ctx context.Context, c *company.Company) (*company.Company, error) {
	now := toNanos(s.now())
	row := s.sqlDB.QueryRowContext(ctx,
		`INSERT INTO companies (name, stage_code, stage_name, created_by, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 RETURNING `+companyColumns,
		c.Name, string(c.StageCode), c.StageName, c.CreatedBy, now, now,
	)
	created, err := scanCompany(row)
	if err != nil {
		return nil, fmt.Errorf("creating company: %w", err)
	}
	return created, nil
}

// Get returns the company with the given id.
func (s *Store) Get(ctx context.Context, id int64) (*company.Company, error) {
	row := s.sqlDB.QueryRowContext(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = ?`, id)
	c, err := scanCompany(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("company %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting company %d: %w", id, err)
	}
	return c, nil
}

// List returns all companies ordered by ID.
func (s *Store) List(ctx context.Context) ([]company.Company, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT `+companyColumns+` FROM companies ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing companies: %w", err)
	}
	defer rows.Close()

	out := []company.Company{}
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning company: %w", err)
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing companies: %w", err)
	}
	return out, nil
}

// UpdateStage moves the company from expected to next with a conditional
// UPDATE. When no row matches, a follow-up read tells a missing company
// apart from a stage conflict.
func (s *Store) UpdateStage(ctx context.Context, id int64, expected, next funnel.Stage, nextName string) (*company.Company, error) {
	row := s.sqlDB.QueryRowContext(ctx,
		`UPDATE companies
		 SET stage_code = ?, stage_name = ?, updated_at = ?
		 WHERE id = ? AND stage_code = ?
		 RETURNING `+companyColumns,
		string(next), nextName, toNanos(s.now()), id, string(expected),
	)
	updated, err := scanCompany(row)
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("updating stage of company %d: %w", id, err)
	}

	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return nil, &domain.StageConflictError{Expected: string(expected), Actual: string(current.StageCode)}
}

// Append inserts a new event.
func (s *Store) Append(ctx context.Context, companyID, managerID int64, typ event.Type, payload map[string]any) (*event.Event, error) {
	data, err := event.EncodePayload(payload)
	if err != nil {
		return nil, err
	}

	createdAt := s.now()
	var id int64
	err = s.sqlDB.QueryRowContext(ctx,
		`INSERT INTO events (company_id, manager_id, type, payload, created_at)
		 VALUES (?, ?, ?, ?, ?)
		 RETURNING id`,
		companyID, managerID, string(typ), string(data), toNanos(createdAt),
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("appending %s event for company %d: %w", typ, companyID, err)
	}

	stored, err := event.DecodePayload(data)
	if err != nil {
		return nil, err
	}
	return &event.Event{
		ID:        id,
		CompanyID: companyID,
		ManagerID: managerID,
		Type:      typ,
		Payload:   stored,
		CreatedAt: fromNanos(toNanos(createdAt)),
	}, nil
}

// ListByCompany returns the company's events, most recent first.
func (s *Store) ListByCompany(ctx context.Context, companyID int64) ([]event.Event, error) {
	return s.queryEvents(ctx,
		`SELECT id, company_id, manager_id, type, payload, created_at
		 FROM events WHERE company_id = ?
		 ORDER BY created_at DESC, id DESC`,
		companyID,
	)
}

// ListByCompanyAndType returns the company's events of type typ, most recent first.
func (s *Store) ListByCompanyAndType(ctx context.Context, companyID int64, typ event.Type) ([]event.Event, error) {
	return s.queryEvents(ctx,
		`SELECT id, company_id, manager_id, type, payload, created_at
		 FROM events WHERE company_id = ? AND type = ?
		 ORDER BY created_at DESC, id DESC`,
		companyID, string(typ),
	)
}

func (s *Store) queryEvents(ctx context.Context, query string, args ...any) ([]event.Event, error) {
	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	defer rows.Close()

	out := []event.Event{}
	for rows.Next() {
		var (
			e         event.Event
			typ       string
			payload   string
			createdAt int64
		)
		if err := rows.Scan(&e.ID, &e.CompanyID, &e.ManagerID, &typ, &payload, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		e.Type = event.Type(typ)
		e.CreatedAt = fromNanos(createdAt)
		if e.Payload, err = event.DecodePayload([]byte(payload)); err != nil {
			return nil, fmt.Errorf("event %d: %w", e.ID, err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	return out, nil
}
