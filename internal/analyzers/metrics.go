package analyzers

import (
	"perflog-analytics/internal/shared/metrics"
)

const (
	layerMemory = "memory"
	layerStore  = "store"

	outcomeHit  = "hit"
	outcomeMiss = "miss"
)

var (
	metricAnalysisRequestsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalysis,
			Name:      "requests_total",
		},
		[]string{metrics.FieldKind, metrics.FieldErrorCode},
	)

	// metricCacheLookupsTotal counts result lookups per cache layer. A memory miss is followed
	// by a store lookup; a store miss means the log is parsed.
	metricCacheLookupsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalysis,
			Name:      "cache_lookups_total",
		},
		[]string{metrics.FieldKind, "layer", "outcome"},
	)

	metricRecordsParsedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalysis,
			Name:      "records_parsed_total",
		},
		[]string{metrics.FieldKind},
	)
)
