package archivers

import (
	"perflog-analytics/internal/shared/metrics"
)

// metricResultsWrittenTotal counts archive attempts per log kind. A successful write has an
// empty error_code; a failed one carries ARC_9000 or ARC_9001.
var (
	metricResultsWrittenTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubArchive,
			Name:      "results_written_total",
		},
		[]string{metrics.FieldKind, metrics.FieldErrorCode},
	)
)
