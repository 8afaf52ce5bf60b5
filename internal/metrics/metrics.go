// Package metrics records flow outcomes for the controller.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Flow names.
const (
	FlowLoad   = "load"
	FlowAdd    = "add"
	FlowToggle = "toggle"
	FlowDelete = "delete"
)

// Outcome labels.
const (
	OutcomeSuccess   = "success"
	OutcomeError     = "error"
	OutcomeInvalid   = "invalid"
	OutcomeCancelled = "cancelled"
)

var (
	FlowsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tasksync_flows_total",
			Help: "Total number of completed flows by outcome",
		},
		[]string{"flow", "outcome"},
	)

	FlowDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tasksync_flow_duration_seconds",
			Help:    "Duration of flows including store round-trips",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"flow"},
	)

	RenderedTasks = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tasksync_rendered_tasks",
			Help: "Number of task rows in the latest render",
		},
	)
)

// Observe records one finished flow.
func Observe(flow, outcome string, started time.Time) {
	FlowsTotal.WithLabelValues(flow, outcome).Inc()
	FlowDuration.WithLabelValues(flow).Observe(time.Since(started).Seconds())
}
