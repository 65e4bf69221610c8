package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glavpro/crm-stages/internal/adapters/http/middleware"
)

func TestCorrelationID_ExtractsFromHeader(t *testing.T) {
	t.Parallel()

	var gotID string
	handler := middleware.CorrelationID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		gotID = middleware.CorrelationIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set("X-Correlation-ID", "corr-abc")
	handler.ServeHTTP(rec, req)

	if gotID != "corr-abc" {
		t.Errorf("CorrelationIDFromContext = %q, want %q", gotID, "corr-abc")
	}
	if respID := rec.Header().Get("X-Correlation-ID"); respID != "corr-abc" {
		t.Errorf("response X-Correlation-ID = %q, want %q", respID, "corr-abc")
	}
}

func TestCorrelationID_DefaultsToRequestID(t *testing.T) {
	t.Parallel()

	var gotID string
	// Chain: RequestID → CorrelationID → handler
	handler := middleware.RequestID()(
		middleware.CorrelationID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			gotID = middleware.CorrelationIDFromContext(r.Context())
		})),
	)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	handler.ServeHTTP(rec, req)

	reqID := rec.Header().Get("X-Request-ID")
	if reqID == "" {
		t.Fatal("X-Request-ID response header is empty")
	}
	if gotID != reqID {
		t.Errorf("CorrelationIDFromContext = %q, want request ID %q", gotID, reqID)
	}
}

func TestCorrelationID_SetsResponseHeader(t *testing.T) {
	t.Parallel()

	handler := middleware.CorrelationID()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set("X-Correlation-ID", "corr-xyz")
	handler.ServeHTTP(rec, req)

	if respID := rec.Header().Get("X-Correlation-ID"); respID != "corr-xyz" {
		t.Errorf("response X-Correlation-ID = %q, want %q", respID, "corr-xyz")
	}
}

func TestCorrelationIDFromContext_NotFound(t *testing.T) {
	t.Parallel()

	id := middleware.CorrelationIDFromContext(context.Background())
	if id != "" {
		t.Errorf("CorrelationIDFromContext = %q, want empty string", id)
	}
}

func TestWithCorrelationID_StoresInContext(t *testing.T) {
	t.Parallel()

	ctx := middleware.WithCorrelationID(context.Background(), "test-corr")
	got := middleware.CorrelationIDFromContext(ctx)

	if got != "test-corr" {
		t.Errorf("CorrelationIDFromContext = %q, want %q", got, "test-corr")
	}
}

func TestCorrelationID_StoresManager(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		want   int64
		wantOK bool
	}{
		{name: "positive id", header: "42", want: 42, wantOK: true},
		{name: "absent", header: ""},
		{name: "zero", header: "0"},
		{name: "negative", header: "-3"},
		{name: "not a number", header: "boss"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var (
				got int64
				ok  bool
			)
			handler := middleware.CorrelationID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				got, ok = middleware.ManagerIDFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodPost, "/api/v1/companies/1/reject", http.NoBody)
			if tt.header != "" {
				req.Header.Set("X-Manager-ID", tt.header)
			}
			handler.ServeHTTP(httptest.NewRecorder(), req)

			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ManagerIDFromContext = (%d, %v), want (%d, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestWithManagerID_StoresInContext(t *testing.T) {
	t.Parallel()

	got, ok := middleware.ManagerIDFromContext(middleware.WithManagerID(context.Background(), 9))
	if !ok || got != 9 {
		t.Errorf("ManagerIDFromContext = (%d, %v), want (9, true)", got, ok)
	}
}
