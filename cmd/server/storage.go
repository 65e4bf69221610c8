package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glavpro/crm-stages/internal/adapters/storage/instrumented"
	"github.com/glavpro/crm-stages/internal/adapters/storage/memory"
	"github.com/glavpro/crm-stages/internal/adapters/storage/redis"
	"github.com/glavpro/crm-stages/internal/adapters/storage/sqlite"
	"github.com/glavpro/crm-stages/internal/platform/config"
	"github.com/glavpro/crm-stages/internal/platform/telemetry"
	"github.com/glavpro/crm-stages/internal/ports"
)

// stores is the opened storage backend. checker is nil for drivers without
// a connection to probe.
type stores struct {
	companies ports.CompanyStore
	events    ports.EventStore
	checker   ports.HealthChecker
	close     func() error
}

// Shutdown releases the backend. samber/do calls it on container shutdown.
func (s *stores) Shutdown() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// openStores opens the configured driver and wraps both stores with
// tracing and the store duration histogram.
func openStores(ctx context.Context, cfg config.StorageConfig, metrics *telemetry.Metrics) (*stores, error) {
	var (
		companies ports.CompanyStore
		events    ports.EventStore
		s         = &stores{}
	)

	switch cfg.Driver {
	case config.DriverMemory:
		companies = memory.NewCompanyStore()
		events = memory.NewEventStore()

	case config.DriverSQLite:
		if dir := filepath.Dir(cfg.SQLite.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return nil, fmt.Errorf("creating sqlite directory: %w", err)
			}
		}
		db, err := sqlite.Open(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		companies, events = db, db
		s.checker, s.close = db, db.Close

	case config.DriverRedis:
		rdb := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, redis.WithPrefix(cfg.Redis.Prefix))
		if err := rdb.HealthCheck(ctx); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("connecting to redis: %w", err)
		}
		companies, events = rdb, rdb
		s.checker, s.close = rdb, rdb.Close

	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}

	s.companies = instrumented.NewCompanyStore(companies, cfg.Driver, metrics)
	s.events = instrumented.NewEventStore(events, cfg.Driver, metrics)
	return s, nil
}
