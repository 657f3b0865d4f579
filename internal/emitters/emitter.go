package emitters

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"trade-analytics/internal/models"
	"trade-analytics/internal/shared/loggers"

	"golang.org/x/sync/errgroup"
)

const (
	contentTypeHTML     = "text/html; charset=utf-8"
	contentTypeJSON     = "application/json"
	contentTypeXLSX     = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeParquet  = "application/vnd.apache.parquet"
	contentTypeFallback = "application/octet-stream"
)

//go:generate mockgen -source=emitter.go -destination=./mocks/emitter_mock.go -package=mocks
type Emitter interface {
	Name() string
	// Emit renders artifacts for run and stores them. run.Report and table are only read.
	Emit(ctx context.Context, run *models.ProcessingRun, table *models.EventTable) ([]models.Artifact, error)
}

type compositeEmitter struct {
	emitters []Emitter
}

// NewCompositeEmitter runs every emitter concurrently and merges their artifacts, sorted by name.
// The first failure cancels the others.
func NewCompositeEmitter(emitters ...Emitter) Emitter {
	return &compositeEmitter{emitters: emitters}
}

func (c *compositeEmitter) Name() string {
	return "composite"
}

func (c *compositeEmitter) Emit(ctx context.Context, run *models.ProcessingRun, table *models.EventTable) ([]models.Artifact, error) {
	results := make([][]models.Artifact, len(c.emitters))
	g, gctx := errgroup.WithContext(ctx)

	for i, emitter := range c.emitters {
		g.Go(func() error {
			logger := loggers.Ctx(gctx).With().Str(loggers.FieldEmitter, emitter.Name()).Logger()
			artifacts, err := emitter.Emit(logger.WithContext(gctx), run, table)
			if err != nil {
				metricEmitFailuresTotal.WithLabelValues(emitter.Name()).Inc()
				return fmt.Errorf("%s emitter: %w", emitter.Name(), err)
			}
			metricArtifactsEmittedTotal.WithLabelValues(emitter.Name()).Add(float64(len(artifacts)))
			logger.Debug().Int("artifacts", len(artifacts)).Msg("emitter finished")
			results[i] = artifacts
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var artifacts []models.Artifact
	for _, r := range results {
		artifacts = append(artifacts, r...)
	}
	slices.SortFunc(artifacts, func(a, b models.Artifact) int { return strings.Compare(a.Name, b.Name) })
	return artifacts, nil
}

// ContentTypeOf maps an artifact file name to the content type it is served with.
func ContentTypeOf(name string) string {
	switch {
	case strings.HasSuffix(name, ".html"):
		return contentTypeHTML
	case strings.HasSuffix(name, ".json"):
		return contentTypeJSON
	case strings.HasSuffix(name, ".xlsx"):
		return contentTypeXLSX
	case strings.HasSuffix(name, ".parquet"):
		return contentTypeParquet
	default:
		return contentTypeFallback
	}
}
