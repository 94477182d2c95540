package http

import (
	"perflog-analytics/internal/shared/metrics"
)

const (
	labelMethod = "method"
	labelRoute  = "route"
	labelStatus = "status"
)

var (
	// metricHTTPRequestsTotal counts requests by chi route pattern.
	metricHTTPRequestsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "requests_total",
		},
		[]string{labelMethod, labelRoute, labelStatus, metrics.FieldErrorCode},
	)

	metricHTTPRequestDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "request_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{labelMethod, labelRoute, labelStatus, metrics.FieldErrorCode},
	)
)
