// SPDX-License-Identifier: MIT

// Package metrics holds the Prometheus collectors of the revenue search.
//
// Collectors live on a dedicated Registry so embedding programs decide
// whether and how to expose them. RegisterDefault attaches them once;
// Observe is safe to call before that and simply feeds unregistered
// collectors.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/katalvlaran/lvrail/calculator"
)

var (
	// Registry is the dedicated registry of the search collectors.
	Registry = prometheus.NewRegistry()

	// Calculations counts finished calculations by calculator variant.
	Calculations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "revenue_calculations_total", Help: "Finished revenue calculations."},
		[]string{"variant"},
	)
	// Evaluations counts complete candidate run sets evaluated.
	Evaluations = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "revenue_search_evaluations_total", Help: "Candidate run sets evaluated."},
	)
	// Predictions counts bound checks made while searching.
	Predictions = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "revenue_search_predictions_total", Help: "Revenue bound checks."},
	)
	// Edges counts edges travelled by the search.
	Edges = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "revenue_search_edges_total", Help: "Edges travelled while searching."},
	)
	// Duration records calculation wall time by variant.
	Duration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "revenue_calculation_duration_seconds",
			Help:    "Revenue calculation duration in seconds.",
			Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5, 1, 5, 30},
		},
		[]string{"variant"},
	)
)

var regOnce sync.Once

// RegisterDefault registers the search collectors and the Go/process
// collectors on Registry. Later calls are no-ops.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(Calculations)
		Registry.MustRegister(Evaluations)
		Registry.MustRegister(Predictions)
		Registry.MustRegister(Edges)
		Registry.MustRegister(Duration)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

// Observe records one finished calculation.
func Observe(variant calculator.Variant, elapsed time.Duration, st calculator.Stats) {
	label := variant.String()
	Calculations.WithLabelValues(label).Inc()
	Duration.WithLabelValues(label).Observe(elapsed.Seconds())
	Evaluations.Add(float64(st.Evaluations))
	Predictions.Add(float64(st.Predictions))
	Edges.Add(float64(st.EdgesTravelled))
}

// WriteTextfile writes the current state of Registry in the text
// exposition format to path.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, Registry)
}
