package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/glavpro/crm-stages/internal/platform/telemetry"
)

// Chain composes middleware so that the first argument is the outermost:
// Chain(a, b)(h) is a(b(h)).
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			handler = middlewares[i](handler)
		}
		return handler
	}
}

// StandardOptions configures the server pipeline.
type StandardOptions struct {
	Logger *slog.Logger
	// Metrics may be nil when telemetry is disabled.
	Metrics *telemetry.Metrics
	// Timeout bounds each request; zero disables it.
	Timeout time.Duration
}

// Standard returns the pipeline every funnel API request passes through.
// Recovery is outermost so a panic anywhere still yields a problem
// response; Logging sits inside CorrelationID so the manager and
// correlation IDs are on every entry.
func Standard(opts StandardOptions) func(http.Handler) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	mws := []func(http.Handler) http.Handler{
		Recovery(logger),
		RequestID(),
		CorrelationID(),
		OpenTelemetry(opts.Metrics),
		Logging(logger),
	}
	if opts.Timeout > 0 {
		mws = append(mws, Timeout(opts.Timeout))
	}
	return Chain(mws...)
}
