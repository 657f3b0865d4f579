package aggregators

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"trade-analytics/internal/models"
	"trade-analytics/internal/shared/loggers"

	"github.com/shopspring/decimal"
)

const minPointsForTrend = 2

type Options struct {
	TopN            int
	OthersThreshold float64
}

//go:generate mockgen -source=aggregation_service.go -destination=./mocks/aggregation_service_mock.go -package=mocks
type AggregationService interface {
	// BuildReport runs every aggregate over table. It only reads the table.
	BuildReport(ctx context.Context, table *models.EventTable) *models.Report
}

type aggregationService struct {
	topN      int
	threshold decimal.Decimal
}

func NewAggregationService(opts Options) (AggregationService, error) {
	if opts.TopN <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTopN, opts.TopN)
	}
	if opts.OthersThreshold <= 0 || opts.OthersThreshold >= 1 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidThreshold, opts.OthersThreshold)
	}
	return &aggregationService{
		topN:      opts.TopN,
		threshold: decimal.NewFromFloat(opts.OthersThreshold),
	}, nil
}

func (s *aggregationService) BuildReport(ctx context.Context, table *models.EventTable) *models.Report {
	logger := loggers.Ctx(ctx)
	start := time.Now()

	report := &models.Report{
		EntriesPerHour:      EntriesPerHour(table),
		QuantityPerHour:     QuantityPerHour(table),
		TradePattern:        TradePattern(table),
		TopTokensByCount:    TopTokens(table, s.topN, models.CountRows),
		TopTokensByQuantity: TopTokens(table, s.topN, models.SumQuantity),
		CountShare:          ShareBreakdown(table, s.threshold, models.CountRows),
		QuantityShare:       ShareBreakdown(table, s.threshold, models.SumQuantity),
	}

	s.warnSparseSeries(logger, "count", report.TopTokensByCount)
	s.warnSparseSeries(logger, "quantity", report.TopTokensByQuantity)

	metricReportBuildDuration.WithLabelValues().Observe(time.Since(start).Seconds())
	metricReportsBuiltTotal.WithLabelValues(strconv.FormatBool(report.IsEmpty())).Inc()

	logger.Debug().
		Int("rows", table.Len()).
		Int("hours", len(report.EntriesPerHour)).
		Int("distinct_tokens", report.CountShare.DistinctTokens).
		Int("pattern_hours", len(report.TradePattern)).
		Msg("report built")

	return report
}

// warnSparseSeries flags top tokens whose series cannot show a trend.
func (s *aggregationService) warnSparseSeries(logger *loggers.Logger, matrixName string, matrix models.HourlyMatrix) {
	for _, series := range matrix.Series {
		if series.NonZeroPoints() >= minPointsForTrend {
			continue
		}
		metricSparseSeriesTotal.WithLabelValues(matrixName).Inc()
		logger.Warn().
			Str(loggers.FieldToken, series.Token).
			Str("matrix", matrixName).
			Int("non_zero_points", series.NonZeroPoints()).
			Msg("insufficient data points for trend")
	}
}
