package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/glavpro/crm-stages/internal/platform/httpclient"
)

const (
	headerCorrelationID = "X-Correlation-ID"
	headerManagerID     = "X-Manager-ID"
)

type (
	correlationIDKey struct{}
	managerIDKey     struct{}
)

// WithCorrelationID stores id in ctx, both for this service and for
// outbound calls made through httpclient.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, correlationIDKey{}, id)
	return httpclient.WithCorrelationID(ctx, id)
}

// CorrelationIDFromContext returns the correlation ID, or "" if none is set.
func CorrelationIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return id
	}
	return ""
}

// WithManagerID stores the acting manager in ctx and forwards it to
// outbound funnel API calls.
func WithManagerID(ctx context.Context, id int64) context.Context {
	ctx = context.WithValue(ctx, managerIDKey{}, id)
	return httpclient.WithManagerID(ctx, id)
}

// ManagerIDFromContext returns the acting manager set by CorrelationID.
func ManagerIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(managerIDKey{}).(int64)
	return id, ok
}

// CorrelationID returns middleware that ties a request to the business
// conversation it belongs to. The X-Correlation-ID header is reused when
// present and falls back to the request ID, so it must run after RequestID.
//
// A well-formed X-Manager-ID (positive integer) is stored alongside it.
// Malformed values are left for the handlers to reject; they never reach
// logs or outbound headers.
func CorrelationID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(headerCorrelationID)
			if id == "" {
				id = RequestIDFromContext(r.Context())
			}
			ctx := WithCorrelationID(r.Context(), id)
			if manager, err := strconv.ParseInt(r.Header.Get(headerManagerID), 10, 64); err == nil && manager > 0 {
				ctx = WithManagerID(ctx, manager)
			}
			w.Header().Set(headerCorrelationID, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
