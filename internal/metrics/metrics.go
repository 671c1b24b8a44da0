package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal tracks logical API calls per operation.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "voxa_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"operation", "method"},
	)

	// AttemptsTotal tracks individual network attempts, including retries.
	AttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "voxa_attempts_total",
			Help: "Total number of network attempts",
		},
		[]string{"operation"},
	)

	// RetriesTotal tracks retries by cause (network or status).
	RetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "voxa_retries_total",
			Help: "Total number of retried attempts",
		},
		[]string{"reason"},
	)

	// ErrorsTotal tracks raised errors by taxonomy kind.
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "voxa_errors_total",
			Help: "Total number of API errors by kind",
		},
		[]string{"kind"},
	)

	// AttemptLatency tracks per-attempt latency.
	AttemptLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "voxa_attempt_latency_seconds",
			Help:    "Network attempt latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)
