package ingestors

import (
	"bufio"
	"context"
	"errors"
	"io"

	"trade-analytics/internal/models"
	"trade-analytics/internal/shared/loggers"
	"trade-analytics/internal/shared/metrics"
)

const (
	maxLoggedParseErrors = 10
	initialLineBuffer    = 4 * 1024
	ctxCheckEvery        = 1024
)

// IngestResult is the table built from one upload plus its line counters.
type IngestResult struct {
	Table *models.EventTable
	Stats models.IngestStats
}

//go:generate mockgen -source=ingestion_service.go -destination=./mocks/ingestion_service_mock.go -package=mocks
type IngestionService interface {
	// Ingest reads r line by line and builds the event table. Malformed lines are skipped and
	// counted; only a failure to read the stream itself is returned as an error.
	Ingest(ctx context.Context, r io.Reader) (*IngestResult, error)
}

type ingestionService struct {
	parser       RecordParser
	maxLineBytes int
}

func NewIngestionService(parser RecordParser, maxLineBytes int) IngestionService {
	if maxLineBytes <= 0 {
		maxLineBytes = bufio.MaxScanTokenSize
	}
	return &ingestionService{
		parser:       parser,
		maxLineBytes: maxLineBytes,
	}
}

func (s *ingestionService) Ingest(ctx context.Context, r io.Reader) (*IngestResult, error) {
	logger := loggers.Ctx(ctx)

	if r == nil {
		err := errValidationFailed("empty upload", nil)
		metricIngestedTotal.WithLabelValues(err.Code).Inc()
		return nil, err
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(initialLineBuffer, s.maxLineBytes)), s.maxLineBytes)

	builder := NewTableBuilder()
	var stats models.IngestStats

	for scanner.Scan() {
		stats.LinesRead++
		if stats.LinesRead%ctxCheckEvery == 0 && ctx.Err() != nil {
			return nil, s.abort(stats.LinesRead, ctx.Err())
		}

		record, err := s.parser.Parse(scanner.Text())
		if err != nil {
			stats.LinesSkipped++
			metricLinesTotal.WithLabelValues(outcomeSkipped).Inc()
			if stats.LinesSkipped <= maxLoggedParseErrors {
				logger.Debug().
					Err(err).
					Int64(loggers.FieldLineNumber, stats.LinesRead).
					Msg("skipping malformed line")
			}
			continue
		}

		stats.RecordsParsed++
		if builder.Append(record) {
			metricLinesTotal.WithLabelValues(outcomeParsed).Inc()
		} else {
			metricLinesTotal.WithLabelValues(outcomeDropped).Inc()
		}
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			logger.Warn().
				Int64(loggers.FieldLineNumber, stats.LinesRead+1).
				Int("max_line_bytes", s.maxLineBytes).
				Msg("line exceeds maximum length")
		}
		return nil, s.abort(stats.LinesRead, err)
	}

	stats.RowsDropped = builder.Dropped()
	table := builder.Build()

	if table.IsEmpty() {
		logger.Warn().
			Int64("lines_read", stats.LinesRead).
			Int64("lines_skipped", stats.LinesSkipped).
			Msg("upload produced no usable records")
	}

	logger.Info().
		Int64("lines_read", stats.LinesRead).
		Int64("records_parsed", stats.RecordsParsed).
		Int64("lines_skipped", stats.LinesSkipped).
		Int64("rows_dropped", stats.RowsDropped).
		Msg("upload ingested")

	metricIngestedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return &IngestResult{Table: table, Stats: stats}, nil
}

func (s *ingestionService) abort(lineNumber int64, cause error) error {
	svcErr := errInternalReadFailed(lineNumber, cause)
	metricIngestedTotal.WithLabelValues(svcErr.Code).Inc()
	return svcErr
}
