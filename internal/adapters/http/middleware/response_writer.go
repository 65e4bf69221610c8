// Package middleware provides HTTP middleware for the funnel API.
//
// Standard assembles the pipeline the server runs:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout → Handler
//
// RateLimit is mounted by the router on the write routes only.
package middleware

import (
	"net/http"
	"strings"
)

const problemContentType = "application/problem+json"

// responseWriter records what a handler sent: the status, the body size and
// whether the body is an RFC 9457 problem. Recovery, otel and logging read it.
type responseWriter struct {
	http.ResponseWriter
	statusCode    int
	headerWritten bool
	isProblem     bool
	written       int64
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

// WriteHeader keeps the first status and ignores later calls.
func (rw *responseWriter) WriteHeader(code int) {
	if rw.headerWritten {
		return
	}
	rw.commit(code)
	rw.ResponseWriter.WriteHeader(code)
}

// Write triggers an implicit 200 when no status was written.
func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.headerWritten {
		rw.commit(http.StatusOK)
	}
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	return n, err
}

// commit freezes the status and the content type the client will see.
func (rw *responseWriter) commit(code int) {
	rw.statusCode = code
	rw.headerWritten = true
	rw.isProblem = strings.HasPrefix(rw.Header().Get("Content-Type"), problemContentType)
}

// problem reports whether the response is a funnel error (problem+json).
func (rw *responseWriter) problem() bool {
	return rw.isProblem
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
