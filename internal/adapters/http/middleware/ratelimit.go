package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/httprate"

	"github.com/glavpro/crm-stages/internal/adapters/http/dto"
)

// RateLimit returns middleware that allows at most requests per window for
// each client IP. Rejected requests get a 429 problem response with code
// RATE_LIMITED and a Retry-After header. A non-positive limit disables it.
func RateLimit(requests int, window time.Duration) func(http.Handler) http.Handler {
	if requests <= 0 || window <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return httprate.Limit(
		requests,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Retry-After", fmt.Sprintf("%d", int(window.Seconds())))
			dto.WriteProblem(w, r, dto.NewProblem(r, http.StatusTooManyRequests, dto.CodeRateLimited,
				"too many requests, try again later"))
		}),
	)
}
