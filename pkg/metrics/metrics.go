// Package metrics holds the Prometheus collectors exported by the service.
package metrics

import (
	"genericurl/pkg/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5} //nolint: gochecknoglobals

// Metrics groups the application collectors. A nil *Metrics is valid and
// records nothing, so callers that do not care about metrics can pass nil.
type Metrics struct {
	// Normalized counts normalizations by the rule that produced the result.
	Normalized *prometheus.CounterVec
	// Copies counts copy commands by terminal status.
	Copies *prometheus.CounterVec
	// RequestDuration observes HTTP handling latency by route and status code.
	RequestDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	m := &Metrics{
		Normalized: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "genericurl",
			Name:      "normalized_total",
			Help:      "Number of URLs normalized, by rule applied.",
		}, []string{"rule"}),
		Copies: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "genericurl",
			Name:      "copies_total",
			Help:      "Number of copy commands, by status.",
		}, []string{"status"}),
		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "genericurl",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request handling latency.",
			Buckets:   DefaultBuckets,
		}, []string{"route", "code"}),
	}

	// expose every rule from the start so rates never start from a missing series
	for _, r := range domain.Rules() {
		m.Normalized.WithLabelValues(string(r))
	}

	return m
}

// ObserveCanonical records one normalization.
func (m *Metrics) ObserveCanonical(c domain.Canonical) {
	if m == nil {
		return
	}
	m.Normalized.WithLabelValues(string(c.Rule)).Inc()
}

// ObserveCopy records the outcome of one copy command.
func (m *Metrics) ObserveCopy(r domain.CopyResult) {
	if m == nil {
		return
	}
	m.Copies.WithLabelValues(string(r.Status)).Inc()
}
