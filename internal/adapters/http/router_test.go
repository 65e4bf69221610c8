package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/glavpro/crm-stages/internal/adapters/http"
	"github.com/glavpro/crm-stages/internal/adapters/http/handlers"
	"github.com/glavpro/crm-stages/internal/domain/company"
	"github.com/glavpro/crm-stages/internal/domain/funnel"
	"github.com/glavpro/crm-stages/internal/platform/metrics"
	"github.com/glavpro/crm-stages/mocks"
)

func newTestRouter(t *testing.T, opts adapthttp.RouterOptions) (http.Handler, *mocks.MockCompanyService) {
	t.Helper()
	svc := mocks.NewMockCompanyService(t)
	registry := mocks.NewMockHealthRegistry(t)

	ch := handlers.NewCompanyHandler(svc)
	hh := handlers.NewHealthHandler(registry)

	router := adapthttp.NewRouter(ch, hh, opts)
	return router, svc
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, adapthttp.RouterOptions{
		MetricsHandler: http.NotFoundHandler(),
		MetricsPath:    "/metrics",
	})

	expectedRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health/live"},
		{http.MethodGet, "/health/ready"},
		{http.MethodGet, "/metrics"},
		{http.MethodGet, "/api/v1/companies"},
		{http.MethodPost, "/api/v1/companies"},
		{http.MethodGet, "/api/v1/companies/{id}"},
		{http.MethodGet, "/api/v1/companies/{id}/events"},
		{http.MethodPost, "/api/v1/companies/{id}/events"},
		{http.MethodPost, "/api/v1/companies/{id}/transition"},
		{http.MethodPost, "/api/v1/companies/{id}/reject"},
		{http.MethodPost, "/api/v1/companies/{id}/actions/{action}"},
	}

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, expected := range expectedRoutes {
		key := expected.method + " " + expected.path
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_NoMetricsRouteWithoutHandler(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, adapthttp.RouterOptions{MetricsPath: "/metrics"})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	t.Parallel()

	rec := metrics.New("crm")
	rec.Transition("Ice", "Touched", metrics.OutcomeSuccess)

	router, _ := newTestRouter(t, adapthttp.RouterOptions{
		MetricsHandler: rec.Handler(),
		MetricsPath:    "/metrics",
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	body, _ := io.ReadAll(w.Body)
	if !strings.Contains(string(body), "crm_stage_transitions_total") {
		t.Errorf("metrics body missing transition counter:\n%s", body)
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockCompanyService(t)
	registry := mocks.NewMockHealthRegistry(t)

	ch := handlers.NewCompanyHandler(svc)
	hh := handlers.NewHealthHandler(registry)

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	router := adapthttp.NewRouter(ch, hh, adapthttp.RouterOptions{}, testMW)

	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	router.ServeHTTP(rec, req)

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_IntegrationListCompanies(t *testing.T) {
	t.Parallel()

	router, svc := newTestRouter(t, adapthttp.RouterOptions{})

	svc.EXPECT().ListCompanies(mock.Anything).Return([]company.Company{}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/companies", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouter_WriteRoutesRateLimited(t *testing.T) {
	t.Parallel()

	router, svc := newTestRouter(t, adapthttp.RouterOptions{
		WriteRateLimit:  1,
		WriteRateWindow: time.Minute,
	})

	svc.EXPECT().Reject(mock.Anything, int64(1), int64(7)).
		Return(&funnel.TransitionResult{Success: true, NewStage: funnel.StageNull}, nil).Once()
	svc.EXPECT().ListCompanies(mock.Anything).Return([]company.Company{}, nil).Times(2)

	send := func(method, path string) int {
		req := httptest.NewRequest(method, path, nil)
		req.Header.Set("X-Manager-ID", "7")
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec.Code
	}

	if got := send(http.MethodPost, "/api/v1/companies/1/reject"); got != http.StatusOK {
		t.Errorf("first write status = %d, want %d", got, http.StatusOK)
	}
	if got := send(http.MethodPost, "/api/v1/companies/1/reject"); got != http.StatusTooManyRequests {
		t.Errorf("second write status = %d, want %d", got, http.StatusTooManyRequests)
	}

	// Reads are not limited.
	for range 2 {
		if got := send(http.MethodGet, "/api/v1/companies"); got != http.StatusOK {
			t.Errorf("read status = %d, want %d", got, http.StatusOK)
		}
	}
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, adapthttp.RouterOptions{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, adapthttp.RouterOptions{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/companies", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
