// Package metrics exposes the funnel's Prometheus counters and the /metrics
// handler.
//
// Counters live on a dedicated registry rather than the global default so
// tests and multiple servers in one process do not collide.
package metrics

import (
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeConflict = "conflict"
	OutcomeError    = "error"
)

// Recorder owns the funnel counters. A nil *Recorder is valid and records
// nothing.
type Recorder struct {
	registry    *prometheus.Registry
	transitions *prometheus.CounterVec
	actions     *prometheus.CounterVec
}

// New creates a Recorder on a fresh registry that also carries the Go and
// process collectors.
func New(namespace string) *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	r := &Recorder{
		registry: reg,
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stage_transitions_total",
			Help:      "Stage transition attempts by source stage, target stage, and outcome",
		}, []string{"from", "to", "outcome"}),
		actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actions_total",
			Help:      "Executed actions by action and outcome",
		}, []string{"action", "outcome"}),
	}
	reg.MustRegister(r.transitions, r.actions)
	return r
}

// Registry returns the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// Handler returns the HTTP handler serving the registry in the exposition
// format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Transition counts one transition attempt. An empty to is reported as
// "none".
func (r *Recorder) Transition(from, to, outcome string) {
	if r == nil {
		return
	}
	r.transitions.WithLabelValues(labelOr(from, "unknown"), labelOr(to, "none"), normalizeOutcome(outcome)).Inc()
}

// Action counts one action execution.
func (r *Recorder) Action(action, outcome string) {
	if r == nil {
		return
	}
	r.actions.WithLabelValues(labelOr(action, "unknown"), normalizeOutcome(outcome)).Inc()
}

func labelOr(v, fallback string) string {
	if v = strings.TrimSpace(v); v == "" {
		return fallback
	}
	return v
}

func normalizeOutcome(outcome string) string {
	switch o := strings.ToLower(strings.TrimSpace(outcome)); o {
	case OutcomeSuccess, OutcomeRejected, OutcomeConflict, OutcomeError:
		return o
	default:
		return OutcomeError
	}
}
