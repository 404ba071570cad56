package assessment

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusMetrics collects assessment metrics into Prometheus counters.
type PrometheusMetrics struct {
	assessments     prometheus.Counter
	penaltiesTotal  prometheus.Counter
	penaltiesAmount prometheus.Counter
	errors          *prometheus.CounterVec
}

// NewPrometheusMetrics creates and registers all assessment metrics.
func NewPrometheusMetrics() *PrometheusMetrics {
	return &PrometheusMetrics{
		assessments: promauto.NewCounter(prometheus.CounterOpts{
			Name: "revas_assessments_total",
			Help: "Total number of total-due computations performed",
		}),
		penaltiesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "revas_penalties_applied_total",
			Help: "Total number of penalties written back to payment records",
		}),
		penaltiesAmount: promauto.NewCounter(prometheus.CounterOpts{
			Name: "revas_penalties_amount_total",
			Help: "Cumulative penalty amount applied, in naira",
		}),
		errors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "revas_assessment_errors_total",
			Help: "Total number of failed assessment operations",
		}, []string{"operation", "type"}),
	}
}

func (m *PrometheusMetrics) RecordAssessment(shopID uint, totalDue float64) {
	m.assessments.Inc()
}

func (m *PrometheusMetrics) RecordPenalty(amount float64) {
	m.penaltiesTotal.Inc()
	m.penaltiesAmount.Add(amount)
}

func (m *PrometheusMetrics) RecordError(operation, errType string) {
	m.errors.WithLabelValues(operation, errType).Inc()
}
