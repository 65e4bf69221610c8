// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/glavpro/crm-stages/internal/adapters/http/handlers"
	"github.com/glavpro/crm-stages/internal/adapters/http/middleware"
)

// RouterOptions holds the optional parts of the route table.
type RouterOptions struct {
	// MetricsHandler is mounted at MetricsPath when both are set.
	MetricsHandler http.Handler
	MetricsPath    string

	// WriteRateLimit requests per WriteRateWindow are allowed per client IP
	// on the mutating company routes. Zero disables the limit.
	WriteRateLimit  int
	WriteRateWindow time.Duration
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	companyHandler *handlers.CompanyHandler,
	healthHandler *handlers.HealthHandler,
	opts RouterOptions,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	if opts.MetricsHandler != nil && opts.MetricsPath != "" {
		r.Method(http.MethodGet, opts.MetricsPath, opts.MetricsHandler)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/companies", companyHandler.ListCompanies)
		r.Get("/companies/{id}", companyHandler.GetCard)
		r.Get("/companies/{id}/events", companyHandler.ListEvents)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(opts.WriteRateLimit, opts.WriteRateWindow))

			r.Post("/companies", companyHandler.CreateCompany)
			r.Post("/companies/{id}/events", companyHandler.RecordEvent)
			r.Post("/companies/{id}/transition", companyHandler.Transition)
			r.Post("/companies/{id}/reject", companyHandler.Reject)
			r.Post("/companies/{id}/actions/{action}", companyHandler.ExecuteAction)
		})
	})

	return r
}
