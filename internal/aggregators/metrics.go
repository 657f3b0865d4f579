package aggregators

import (
	"trade-analytics/internal/shared/metrics"
)

var (
	// metricReportsBuiltTotal counts built reports; empty="true" marks reports of tables without rows.
	metricReportsBuiltTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "reports_built_total",
		},
		[]string{"empty"},
	)

	metricReportBuildDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "report_build_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{},
	)

	// metricSparseSeriesTotal counts top-N token series with fewer than two non-zero hours.
	metricSparseSeriesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "sparse_series_total",
		},
		[]string{"matrix"},
	)
)
