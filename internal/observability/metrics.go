package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Calculations counts schedule calculations by outcome.
	Calculations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "canamort_calculations_total",
			Help: "Amortization schedule calculations by outcome",
		},
		[]string{"status"},
	)

	// ValidationFailures counts rejected inputs by field error.
	ValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "canamort_validation_failures_total",
			Help: "Loan inputs rejected before reaching the engine",
		},
		[]string{"reason"},
	)

	// RequestDuration observes HTTP handler latency.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "canamort_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "status"},
	)
)
