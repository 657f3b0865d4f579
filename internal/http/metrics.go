package http

import (
	"trade-analytics/internal/shared/metrics"
)

const labelArtifactKind = "artifact_kind"

var (
	metricHTTPRequestsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "requests_total",
		},
		[]string{"method", "route", "status", metrics.FieldErrorCode},
	)

	metricHTTPRequestDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "request_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{"method", "route", "status", metrics.FieldErrorCode},
	)

	// Bytes of artifacts streamed from GET /results/{name}.
	metricArtifactBytesServed = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "artifact_bytes_served_total",
		},
		[]string{labelArtifactKind},
	)

	metricUploadsRateLimitedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "uploads_rate_limited_total",
		},
		[]string{},
	)
)
