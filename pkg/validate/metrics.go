package validate

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	validationRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gbvalidate_runs_total",
			Help: "Total number of submission validation runs",
		},
		[]string{"outcome"}, // passed or failed
	)

	validationFindingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gbvalidate_findings_total",
			Help: "Total number of findings emitted, by severity",
		},
		[]string{"severity"},
	)

	validationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gbvalidate_run_duration_seconds",
			Help:    "Duration of one full validation run in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
		},
	)
)

// observeRun records metrics for one completed run.
func observeRun(result *Result) {
	outcome := "failed"
	if result.Summary.Passed {
		outcome = "passed"
	}
	validationRunsTotal.WithLabelValues(outcome).Inc()
	for _, f := range result.Findings {
		validationFindingsTotal.WithLabelValues(string(f.Severity)).Inc()
	}
	validationDuration.Observe(result.Summary.Duration.Seconds())
}
