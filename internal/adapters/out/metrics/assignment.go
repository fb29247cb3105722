// Package metrics exposes the logistics telemetry as Prometheus collectors.
// Every recorder tolerates a nil receiver, so callers need no guards.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "logistics"

// AssignmentMetrics counts auto-assignment attempts.
type AssignmentMetrics struct {
	outcomes *prometheus.CounterVec
	skipped  *prometheus.CounterVec
}

func NewAssignmentMetrics(reg prometheus.Registerer) *AssignmentMetrics {
	if reg == nil {
		return &AssignmentMetrics{}
	}
	outcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_assignments_total",
		Help:      "Auto-assignment attempts by outcome.",
	}, []string{"outcome"})
	skipped := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "zone_geometry_skipped_total",
		Help:      "Zones left out of resolution because their boundary could not be parsed.",
	}, []string{"zone"})
	reg.MustRegister(outcomes, skipped)
	return &AssignmentMetrics{outcomes: outcomes, skipped: skipped}
}

func (m *AssignmentMetrics) RecordOutcome(outcome string) {
	if m == nil || m.outcomes == nil {
		return
	}
	m.outcomes.WithLabelValues(normalizeLabel(outcome)).Inc()
}

func (m *AssignmentMetrics) RecordSkippedZone(zoneName string) {
	if m == nil || m.skipped == nil {
		return
	}
	m.skipped.WithLabelValues(normalizeLabel(zoneName)).Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
