package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/glavpro/crm-stages/internal/platform/logging"
)

// Logging returns middleware that logs request start and completion. The
// child logger it stores via logging.WithLogger carries the request and
// correlation IDs and, on writes, the acting manager.
//
// Completion is logged at Info, at Warn when a handler answered with a
// problem (a refused transition, a restricted action) and at Error on 5xx.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			child := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			if manager, ok := ManagerIDFromContext(ctx); ok {
				child = child.With(slog.Int64("manager_id", manager))
			}
			ctx = logging.WithLogger(ctx, child)

			child.InfoContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)

			if child.Enabled(ctx, slog.LevelDebug) {
				headerAttrs := RedactHeaders(r.Header)
				args := make([]any, 0, len(headerAttrs))
				for _, a := range headerAttrs {
					args = append(args, a)
				}
				child.DebugContext(ctx, "request headers", args...)
			}

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			child.Log(ctx, completionLevel(rw), "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rw.statusCode),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

func completionLevel(rw *responseWriter) slog.Level {
	switch {
	case rw.statusCode >= http.StatusInternalServerError:
		return slog.LevelError
	case rw.problem():
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
