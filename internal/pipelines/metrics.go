package pipelines

import (
	"trade-analytics/internal/shared/metrics"
)

var (
	metricRunsProcessedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubPipeline,
			Name:      "runs_processed_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricRunDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubPipeline,
			Name:      "run_processing_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{metrics.FieldErrorCode},
	)

	metricCurrentRunArtifacts = metrics.NewGauge(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubPipeline,
			Name:      "current_run_artifacts",
		},
	)
)
