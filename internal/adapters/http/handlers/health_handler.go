package handlers

import (
	"log/slog"
	"net/http"

	"github.com/glavpro/crm-stages/internal/adapters/http/dto"
	"github.com/glavpro/crm-stages/internal/platform/logging"
	"github.com/glavpro/crm-stages/internal/ports"
)

// HealthHandler serves the liveness and readiness endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a HealthHandler over the checks in registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. It never touches the store.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.HealthResponse{Status: dto.HealthOK})
}

// Readiness handles GET /health/ready: 200 when every store and upstream
// check passes, 503 otherwise. Check errors can carry store addresses, so
// they are logged and the body only says which check is down.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	resp := dto.HealthResponse{
		Status: dto.HealthReady,
		Checks: make(map[string]string, len(results)),
	}
	for name, err := range results {
		if err == nil {
			resp.Checks[name] = dto.HealthOK
			continue
		}
		resp.Checks[name] = dto.HealthDown
		resp.Status = dto.HealthNotReady
		logging.FromContext(r.Context()).WarnContext(r.Context(), "readiness check failed",
			slog.String("check", name),
			slog.Any("error", err),
		)
	}

	code := http.StatusOK
	if resp.Status == dto.HealthNotReady {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, resp)
}
