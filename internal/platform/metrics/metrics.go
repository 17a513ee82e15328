// Package metrics provides Prometheus collectors for the API, the HTTP
// middleware that feeds them and the operational handler serving
// /metrics and /health.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Failure labels for AuthFailuresTotal.
const (
	AuthReasonMissingHeader = "missing_header"
	AuthReasonMalformed     = "malformed_header"
	AuthReasonExpired       = "expired"
	AuthReasonInvalid       = "invalid"
)

var (
	// RequestsTotal counts HTTP requests by method, route pattern and status class.
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mesto_requests_total",
			Help: "Total requests",
		},
		[]string{"method", "route", "status"},
	)

	// RequestDuration records HTTP request duration in seconds.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mesto_request_duration_seconds",
			Help:    "Request duration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// FailuresTotal counts normalized failures by kind.
	FailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mesto_failures_total",
			Help: "Normalized failures",
		},
		[]string{"kind"},
	)

	// AuthFailuresTotal counts rejected bearer tokens by reason.
	AuthFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mesto_auth_failures_total",
			Help: "Authentication failures",
		},
		[]string{"reason"},
	)
)

func init() {
	prometheus.MustRegister(
		RequestsTotal,
		RequestDuration,
		FailuresTotal,
		AuthFailuresTotal,
	)
}
