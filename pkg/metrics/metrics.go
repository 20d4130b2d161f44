package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	LaunchQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "launch_queries_total",
			Help: "Total number of launch query operations (count)",
		},
		[]string{"operation", "status"},
	)

	LaunchQueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "launch_query_duration_ms",
			Help:    "End-to-end duration of launch query operations in milliseconds",
			Buckets: []float64{10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000},
		},
		[]string{"operation"},
	)

	UpstreamRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Total number of requests issued to the upstream launch data source (count)",
		},
		[]string{"status"},
	)

	RateLimitRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_limit_requests_total",
			Help: "Total number of requests evaluated by the rate limiter (count)",
		},
		[]string{"status"},
	)
)

func RegisterLaunchMetrics() {
	prometheus.MustRegister(LaunchQueriesTotal)
	prometheus.MustRegister(LaunchQueryDuration)
	prometheus.MustRegister(UpstreamRequestsTotal)
}

func RegisterRateLimitMetrics() {
	prometheus.MustRegister(RateLimitRequestsTotal)
}

// ObserveLaunchQuery records one completed operation with its outcome.
func ObserveLaunchQuery(operation, status string, start time.Time) {
	LaunchQueriesTotal.WithLabelValues(operation, status).Inc()
	LaunchQueryDuration.WithLabelValues(operation).Observe(float64(time.Since(start).Milliseconds()))
}
