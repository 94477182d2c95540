package streams

import (
	"perflog-analytics/internal/shared/metrics"
)

var (
	streamAnalysisCompleted              = "analysis_completed"
	metricAnalysisCompletedProducedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "analysis_completed_published_total",
		},
		[]string{"stream_id"},
	)

	metricAnalysisCompletedConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "analysis_completed_consumed_total",
		},
		[]string{"stream_id", metrics.FieldErrorCode},
	)
)
