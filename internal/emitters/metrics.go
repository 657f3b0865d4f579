package emitters

import (
	"trade-analytics/internal/shared/metrics"
)

var (
	metricArtifactsEmittedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubEmitter,
			Name:      "artifacts_emitted_total",
		},
		[]string{"emitter"},
	)

	metricEmitFailuresTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubEmitter,
			Name:      "emit_failures_total",
		},
		[]string{"emitter"},
	)
)
