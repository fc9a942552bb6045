// Package metrics exposes Prometheus instruments for served solves.
package metrics

import (
	"net/http"
	"time"

	"github.com/katalvlaran/tspanneal/tsp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "tspanneal"

// Outcome labels for SolvesTotal.
const (
	OutcomeOK       = "ok"
	OutcomeCanceled = "canceled"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
)

// Metrics bundles the collectors registered on one registry.
type Metrics struct {
	registry *prometheus.Registry

	SolvesTotal     *prometheus.CounterVec
	SolveDuration   prometheus.Histogram
	SolveIterations prometheus.Counter
	TourCost        prometheus.Histogram
	PointsPerSolve  prometheus.Histogram
	InFlight        prometheus.Gauge
}

// New creates the collectors on a fresh registry, together with the Go and
// process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		SolvesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solves_total",
			Help:      "Solve requests by outcome.",
		}, []string{"outcome", "metric"}),
		SolveDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_duration_seconds",
			Help:      "Wall time of one annealing run.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
		SolveIterations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "iterations_total",
			Help:      "Annealing iterations completed across all solves.",
		}),
		TourCost: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tour_cost",
			Help:      "Best tour cost returned.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 20),
		}),
		PointsPerSolve: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "points_per_solve",
			Help:      "Instance size of each solve.",
			Buckets:   prometheus.ExponentialBuckets(2, 2, 14),
		}),
		InFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "solves_in_flight",
			Help:      "Solves currently running.",
		}),
	}

	m.registry.MustRegister(
		m.SolvesTotal,
		m.SolveDuration,
		m.SolveIterations,
		m.TourCost,
		m.PointsPerSolve,
		m.InFlight,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveSolve records a finished solve.
func (m *Metrics) ObserveSolve(points int, metric tsp.Metric, res tsp.Result, elapsed time.Duration) {
	outcome := OutcomeOK
	if res.Canceled {
		outcome = OutcomeCanceled
	}
	m.SolvesTotal.WithLabelValues(outcome, metric.String()).Inc()
	m.SolveDuration.Observe(elapsed.Seconds())
	m.SolveIterations.Add(float64(res.Iterations))
	m.TourCost.Observe(res.Cost)
	m.PointsPerSolve.Observe(float64(points))
}

// ObserveFailure records a solve that returned an error.
func (m *Metrics) ObserveFailure(outcome string, metric tsp.Metric) {
	m.SolvesTotal.WithLabelValues(outcome, metric.String()).Inc()
}
