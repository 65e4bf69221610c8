package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/samber/do/v2"
	"go.uber.org/goleak"

	"github.com/glavpro/crm-stages/internal/platform/config"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testConfig(storage config.StorageConfig) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:         "127.0.0.1",
			Port:         0,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
			IdleTimeout:  30 * time.Second,
		},
		Log:     config.LogConfig{Level: "error", Format: "text"},
		Storage: storage,
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics", Namespace: "crm"},
	}
}

func serve(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader = http.NoBody
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("X-Manager-ID", "7")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRegisterDependencies_WiresGraph(t *testing.T) {
	tests := []struct {
		name    string
		storage func(t *testing.T) config.StorageConfig
	}{
		{
			name: "memory",
			storage: func(*testing.T) config.StorageConfig {
				return config.StorageConfig{Driver: config.DriverMemory}
			},
		},
		{
			name: "sqlite",
			storage: func(t *testing.T) config.StorageConfig {
				return config.StorageConfig{
					Driver: config.DriverSQLite,
					SQLite: config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "db", "crm.db")},
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(tt.storage(t))
			injector := do.New()
			registerDependencies(injector, cfg, slog.New(slog.DiscardHandler), nil)
			t.Cleanup(func() { injector.Shutdown() })

			h, err := do.Invoke[http.Handler](injector)
			if err != nil {
				t.Fatalf("Invoke(handler) error = %v", err)
			}

			rec := serve(t, h, http.MethodPost, "/api/v1/companies", `{"name":"Acme","created_by":7}`)
			if rec.Code != http.StatusCreated {
				t.Fatalf("create status = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
			}

			rec = serve(t, h, http.MethodPost, "/api/v1/companies/1/transition", "")
			if rec.Code != http.StatusUnprocessableEntity {
				t.Errorf("transition status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
			}

			rec = serve(t, h, http.MethodGet, "/health/ready", "")
			if rec.Code != http.StatusOK {
				t.Errorf("ready status = %d, want %d", rec.Code, http.StatusOK)
			}

			rec = serve(t, h, http.MethodGet, "/metrics", "")
			if rec.Code != http.StatusOK {
				t.Fatalf("metrics status = %d, want %d", rec.Code, http.StatusOK)
			}
			if !strings.Contains(rec.Body.String(), `crm_stage_transitions_total{from="Ice",outcome="rejected",to="none"} 1`) {
				t.Errorf("metrics missing rejected transition:\n%s", rec.Body.String())
			}
		})
	}
}

func TestRegisterDependencies_MetricsDisabled(t *testing.T) {
	cfg := testConfig(config.StorageConfig{Driver: config.DriverMemory})
	cfg.Metrics.Enabled = false

	injector := do.New()
	registerDependencies(injector, cfg, slog.New(slog.DiscardHandler), nil)
	t.Cleanup(func() { injector.Shutdown() })

	h := do.MustInvoke[http.Handler](injector)
	if rec := serve(t, h, http.MethodGet, "/metrics", ""); rec.Code != http.StatusNotFound {
		t.Errorf("metrics status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestOpenStores_UnknownDriver(t *testing.T) {
	_, err := openStores(context.Background(), config.StorageConfig{Driver: "mongo"}, nil)
	if err == nil || !strings.Contains(err.Error(), `unsupported storage driver "mongo"`) {
		t.Errorf("openStores() error = %v, want unsupported driver", err)
	}
}

func TestOpenStores_RedisUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := openStores(ctx, config.StorageConfig{
		Driver: config.DriverRedis,
		Redis:  config.RedisConfig{Addr: "127.0.0.1:1"},
	}, nil)
	if err == nil {
		t.Fatal("openStores() error = nil, want connection error")
	}
}

func TestInitTelemetry_Disabled(t *testing.T) {
	p, err := initTelemetry(context.Background(), &config.Config{})
	if err != nil {
		t.Fatalf("initTelemetry() error = %v", err)
	}
	if p.metrics != nil || p.tracer != nil {
		t.Error("disabled telemetry returned providers")
	}
	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}
