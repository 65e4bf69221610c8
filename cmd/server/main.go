// Package main is the entry point for the funnel API. It wires all
// dependencies using samber/do v2, opens the configured store, starts the
// HTTP server, and handles graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/glavpro/crm-stages/internal/adapters/http"
	"github.com/glavpro/crm-stages/internal/adapters/http/handlers"
	"github.com/glavpro/crm-stages/internal/adapters/http/middleware"
	"github.com/glavpro/crm-stages/internal/app"
	"github.com/glavpro/crm-stages/internal/platform/config"
	"github.com/glavpro/crm-stages/internal/platform/health"
	"github.com/glavpro/crm-stages/internal/platform/logging"
	"github.com/glavpro/crm-stages/internal/platform/metrics"
	"github.com/glavpro/crm-stages/internal/platform/telemetry"
	"github.com/glavpro/crm-stages/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
	storeOpenTimeout      = 10 * time.Second

	instrumentationScope = "github.com/glavpro/crm-stages"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	injector := do.New()
	registerDependencies(injector, cfg, logger, otel.metrics)

	// Resolve the server (eagerly wires the full graph, opening the store).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		_ = otel.Shutdown(ctx)
		return fmt.Errorf("resolving server: %w", err)
	}
	logger.Info("storage ready", slog.String("driver", cfg.Storage.Driver))

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		runErr = fmt.Errorf("server failed: %w", err)
	}

	if runErr == nil {
		// Graceful shutdown: drain HTTP requests.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", slog.Any("error", err))
		}
		cancel()

		// Wait for Start() goroutine to return.
		<-serverErr
	}

	// Close the store after the last request has finished.
	if report := injector.Shutdown(); report != nil && !report.Succeed {
		logger.Error("container shutdown error", slog.String("error", report.Error()))
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	if runErr != nil {
		return runErr
	}
	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, instrumentationScope)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

// registerDependencies provides every service of the graph. otelMetrics may
// be nil when telemetry is disabled.
func registerDependencies(injector do.Injector, cfg *config.Config, logger *slog.Logger, otelMetrics *telemetry.Metrics) {
	do.Provide(injector, func(_ do.Injector) (*stores, error) {
		ctx, cancel := context.WithTimeout(context.Background(), storeOpenTimeout)
		defer cancel()
		return openStores(ctx, cfg.Storage, otelMetrics)
	})

	do.Provide(injector, func(_ do.Injector) (*metrics.Recorder, error) {
		return metrics.New(cfg.Metrics.Namespace), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.CompanyService, error) {
		s, err := do.Invoke[*stores](i)
		if err != nil {
			return nil, err
		}
		recorder := do.MustInvoke[*metrics.Recorder](i)
		return app.NewCompanyService(s.companies, s.events, logger, app.WithMetrics(recorder)), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		registry := health.New()
		s, err := do.Invoke[*stores](i)
		if err != nil {
			return nil, err
		}
		if s.checker != nil {
			registry.Register(s.checker)
		}
		return registry, nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.CompanyHandler, error) {
		svc, err := do.Invoke[ports.CompanyService](i)
		if err != nil {
			return nil, err
		}
		return handlers.NewCompanyHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry, err := do.Invoke[ports.HealthRegistry](i)
		if err != nil {
			return nil, err
		}
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		companyH, err := do.Invoke[*handlers.CompanyHandler](i)
		if err != nil {
			return nil, err
		}
		healthH := do.MustInvoke[*handlers.HealthHandler](i)

		opts := adapthttp.RouterOptions{
			WriteRateLimit:  cfg.Server.RateLimit.Requests,
			WriteRateWindow: cfg.Server.RateLimit.Window,
		}
		if cfg.Metrics.Enabled {
			opts.MetricsHandler = do.MustInvoke[*metrics.Recorder](i).Handler()
			opts.MetricsPath = cfg.Metrics.Path
		}

		return adapthttp.NewRouter(companyH, healthH, opts, middleware.Standard(middleware.StandardOptions{
			Logger:  logger,
			Metrics: otelMetrics,
			Timeout: cfg.Server.WriteTimeout,
		})), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler, err := do.Invoke[nethttp.Handler](i)
		if err != nil {
			return nil, err
		}
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
