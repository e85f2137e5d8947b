// Package metrics exposes Prometheus instruments shared by the handlers and
// the WMATA client.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	toolInvocations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "metro_bot_tool_invocations_total",
		Help: "Total number of tool invocations by tool and outcome.",
	}, []string{"tool", "outcome"})

	upstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "metro_bot_upstream_requests_total",
		Help: "Total number of WMATA API requests by endpoint and result.",
	}, []string{"endpoint", "result"})

	upstreamLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "metro_bot_upstream_request_duration_seconds",
		Help:    "WMATA API request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})

	alertsRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "metro_bot_alerts_recorded_total",
		Help: "Total number of alert records written by the watcher.",
	}, []string{"kind"})
)

// ObserveTool records the outcome of a single tool invocation
func ObserveTool(tool, outcome string) {
	toolInvocations.WithLabelValues(tool, outcome).Inc()
}

// ObserveUpstream records one WMATA API call
func ObserveUpstream(endpoint, result string, elapsed time.Duration) {
	upstreamRequests.WithLabelValues(endpoint, result).Inc()
	upstreamLatency.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

// ObserveAlerts records alert records saved by the watcher
func ObserveAlerts(kind string, n int) {
	alertsRecorded.WithLabelValues(kind).Add(float64(n))
}
