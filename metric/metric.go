// Package metric exposes prometheus instrumentation for watch mode, where
// the process is long-lived and worth scraping.
package metric

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics contains all evaluation-level metrics
type Metrics struct {
	EvaluationsTotal   *prometheus.CounterVec
	EvaluationDuration *prometheus.HistogramVec
	TriplesLoaded      *prometheus.GaugeVec
	Score              *prometheus.GaugeVec
}

// New creates a new Metrics instance with all evaluation metrics
func New() *Metrics {
	return &Metrics{
		EvaluationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ontometrics",
				Subsystem: "evaluation",
				Name:      "runs_total",
				Help:      "Total number of evaluation runs",
			},
			[]string{"source", "status"},
		),

		EvaluationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "ontometrics",
				Subsystem: "evaluation",
				Name:      "duration_seconds",
				Help:      "Time spent loading and evaluating an ontology",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"source"},
		),

		TriplesLoaded: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "ontometrics",
				Subsystem: "store",
				Name:      "triples",
				Help:      "Number of distinct triples in the last loaded snapshot",
			},
			[]string{"source"},
		),

		Score: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "ontometrics",
				Subsystem: "evaluation",
				Name:      "score",
				Help:      "Latest value of a named metric for a source",
			},
			[]string{"source", "metric"},
		),
	}
}

// Register registers all metrics with the given registerer
func (m *Metrics) Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		m.EvaluationsTotal,
		m.EvaluationDuration,
		m.TriplesLoaded,
		m.Score,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// ObserveRun records the outcome of one evaluation run
func (m *Metrics) ObserveRun(source string, duration time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.EvaluationsTotal.WithLabelValues(source, status).Inc()
	m.EvaluationDuration.WithLabelValues(source).Observe(duration.Seconds())
}

// SetScore records the latest value of a named metric for a source
func (m *Metrics) SetScore(source, name string, value float64) {
	m.Score.WithLabelValues(source, name).Set(value)
}

// Handler returns an HTTP handler exposing the given registry
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
