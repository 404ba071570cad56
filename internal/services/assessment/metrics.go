package assessment

// MetricsCollector defines the interface for collecting assessment metrics
type MetricsCollector interface {
	// RecordAssessment records a completed total-due computation
	RecordAssessment(shopID uint, totalDue float64)

	// RecordPenalty records a penalty written back to a payment record
	RecordPenalty(amount float64)

	// RecordError records a failed operation
	RecordError(operation, errType string)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector
type NoopMetricsCollector struct{}

func (n *NoopMetricsCollector) RecordAssessment(uint, float64) {}
func (n *NoopMetricsCollector) RecordPenalty(float64)          {}
func (n *NoopMetricsCollector) RecordError(string, string)     {}
