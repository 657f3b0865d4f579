package ingestors

import (
	"trade-analytics/internal/shared/metrics"
)

const (
	outcomeParsed  = "parsed"
	outcomeSkipped = "skipped"
	outcomeDropped = "dropped"
)

var (
	metricIngestedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "uploads_ingested_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricLinesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "lines_total",
		},
		[]string{"outcome"},
	)
)
