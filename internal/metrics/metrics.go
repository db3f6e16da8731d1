// Package metrics exposes Prometheus instrumentation for the calculation
// engine and the HTTP API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ComparisonsComputed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "loan_comparisons_computed_total",
			Help: "Total number of three-program loan comparisons computed",
		},
	)

	SolverRuns = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "max_price_solver_runs_total",
			Help: "Total number of max-affordable-price searches",
		},
	)

	SolverIterations = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "max_price_solver_iterations",
			Help:    "Binary search iterations per max-affordable-price run",
			Buckets: prometheus.LinearBuckets(5, 5, 10),
		},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "api_request_duration_seconds",
			Help: "Duration of API request handling in seconds",
		},
		[]string{"handler"},
	)
)
