package pipelines

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"
	"time"

	"trade-analytics/internal/aggregators"
	"trade-analytics/internal/emitters"
	"trade-analytics/internal/ingestors"
	"trade-analytics/internal/models"
	"trade-analytics/internal/shared/loggers"
	"trade-analytics/internal/shared/metrics"
	"trade-analytics/internal/shared/svcerrors"
	"trade-analytics/internal/shared/ulid"
	"trade-analytics/internal/stores"

	"github.com/mileusna/useragent"
)

const unknownClient = "unknown"

// Upload is one file handed to the pipeline.
type Upload struct {
	FileName  string
	UserAgent string
	Body      io.Reader
}

//go:generate mockgen -source=pipeline_service.go -destination=./mocks/pipeline_service_mock.go -package=mocks
type PipelineService interface {
	// ProcessUpload stores the upload, builds its table and report, emits the artifacts and makes
	// the result the current run.
	ProcessUpload(ctx context.Context, upload Upload) (*models.ProcessingRun, error)
	CurrentRun(ctx context.Context) (*models.ProcessingRun, error)
	// ListResults returns the artifacts of the current run sorted by name. No run yields none.
	ListResults(ctx context.Context) []models.Artifact
	GetArtifact(ctx context.Context, name string) (io.ReadCloser, models.Artifact, error)
	// Reset deletes uploads, artifacts and the run manifest and clears the current run.
	Reset(ctx context.Context) error
	// Restore reloads the current run from the manifest written by a previous process.
	Restore(ctx context.Context) error
}

type pipelineService struct {
	ingestionService   ingestors.IngestionService
	aggregationService aggregators.AggregationService
	emitter            emitters.Emitter
	uploadStore        stores.UploadStore
	artifactStore      stores.ArtifactStore
	runStore           stores.RunStore

	mu      sync.RWMutex
	current *models.ProcessingRun
}

func NewPipelineService(
	ingestionService ingestors.IngestionService,
	aggregationService aggregators.AggregationService,
	emitter emitters.Emitter,
	uploadStore stores.UploadStore,
	artifactStore stores.ArtifactStore,
	runStore stores.RunStore,
) PipelineService {
	return &pipelineService{
		ingestionService:   ingestionService,
		aggregationService: aggregationService,
		emitter:            emitter,
		uploadStore:        uploadStore,
		artifactStore:      artifactStore,
		runStore:           runStore,
	}
}

func (s *pipelineService) ProcessUpload(ctx context.Context, upload Upload) (run *models.ProcessingRun, err error) {
	start := time.Now()
	defer func() { recordRun(start, err) }()

	if upload.Body == nil {
		return nil, errValidationFailed("no file part", nil)
	}
	if upload.FileName == "" {
		return nil, errValidationFailed("no selected file", nil)
	}

	runID := ulid.NewULID()
	clientFamily := ClientFamily(upload.UserAgent)
	logger := loggers.Ctx(ctx).With().
		Str(loggers.FieldRunID, runID).
		Str(loggers.FieldFileName, upload.FileName).
		Str(loggers.FieldClientFamily, clientFamily).
		Logger()
	ctx = logger.WithContext(ctx)

	key, err := s.uploadStore.Put(ctx, runID, upload.FileName, upload.Body)
	if err != nil {
		return nil, errInternalStorage(err)
	}
	defer func() {
		if err != nil {
			s.discardRun(ctx, runID)
		}
	}()

	result, err := s.ingest(ctx, key)
	if err != nil {
		return nil, err
	}

	run = &models.ProcessingRun{
		RunID:        runID,
		FileName:     upload.FileName,
		ClientFamily: clientFamily,
		UploadedAt:   start.UTC(),
		Stats:        result.Stats,
		Report:       s.aggregationService.BuildReport(ctx, result.Table),
	}

	run.Artifacts, err = s.emitter.Emit(ctx, run, result.Table)
	if err != nil {
		return nil, errInternalEmit(err)
	}
	if run.Artifacts == nil {
		run.Artifacts = []models.Artifact{}
	}

	previous, err := s.swap(ctx, run)
	if err != nil {
		return nil, errInternalStorage(err)
	}
	if previous != nil {
		if err := s.artifactStore.DeleteRun(ctx, previous.RunID); err != nil {
			logger.Warn().Err(err).Str("previous_run_id", previous.RunID).Msg("failed to delete artifacts of replaced run")
		}
	}

	logger.Info().
		Int64("lines_read", run.Stats.LinesRead).
		Int64("records_parsed", run.Stats.RecordsParsed).
		Int("artifacts", len(run.Artifacts)).
		Msg("upload processed")
	return run, nil
}

func (s *pipelineService) ingest(ctx context.Context, key string) (*ingestors.IngestResult, error) {
	readCloser, err := s.uploadStore.Open(ctx, key)
	if err != nil {
		return nil, errInternalStorage(err)
	}
	defer readCloser.Close()

	return s.ingestionService.Ingest(ctx, readCloser)
}

// discardRun removes the upload and any artifacts written by a run that did not complete.
func (s *pipelineService) discardRun(ctx context.Context, runID string) {
	logger := loggers.Ctx(ctx)
	ctx = context.WithoutCancel(ctx)

	if err := s.artifactStore.DeleteRun(ctx, runID); err != nil {
		logger.Warn().Err(err).Msg("failed to delete artifacts of failed run")
	}
	if err := s.uploadStore.DeleteRun(ctx, runID); err != nil {
		logger.Warn().Err(err).Msg("failed to delete upload of failed run")
	}
}

// swap persists run as the current manifest and replaces the in-memory run. It returns the run
// that was replaced, if any.
func (s *pipelineService) swap(ctx context.Context, run *models.ProcessingRun) (*models.ProcessingRun, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.runStore.Save(ctx, run); err != nil {
		return nil, err
	}
	previous := s.current
	s.current = run
	metricCurrentRunArtifacts.Set(float64(len(run.Artifacts)))
	return previous, nil
}

func (s *pipelineService) CurrentRun(ctx context.Context) (*models.ProcessingRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil, errRunNotFound()
	}
	return s.current, nil
}

func (s *pipelineService) ListResults(ctx context.Context) []models.Artifact {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return []models.Artifact{}
	}
	return slices.Clone(s.current.Artifacts)
}

func (s *pipelineService) GetArtifact(ctx context.Context, name string) (io.ReadCloser, models.Artifact, error) {
	run, err := s.CurrentRun(ctx)
	if err != nil {
		return nil, models.Artifact{}, err
	}

	idx := slices.IndexFunc(run.Artifacts, func(a models.Artifact) bool { return a.Name == name })
	if idx < 0 {
		return nil, models.Artifact{}, errArtifactNotFound(name, nil)
	}

	readCloser, err := s.artifactStore.Get(ctx, run.RunID, name)
	if err != nil {
		// a concurrent reset may have removed the file
		if errors.Is(err, stores.ErrArtifactNotFound) {
			return nil, models.Artifact{}, errArtifactNotFound(name, err)
		}
		return nil, models.Artifact{}, errInternalStorage(err)
	}
	return readCloser, run.Artifacts[idx], nil
}

func (s *pipelineService) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	metricCurrentRunArtifacts.Set(0)

	if err := s.runStore.Delete(ctx); err != nil {
		return errInternalStorage(err)
	}
	if err := s.uploadStore.DeleteAll(ctx); err != nil {
		return errInternalStorage(err)
	}
	if err := s.artifactStore.DeleteAll(ctx); err != nil {
		return errInternalStorage(err)
	}

	loggers.Ctx(ctx).Info().Msg("uploads and artifacts deleted")
	return nil
}

func (s *pipelineService) Restore(ctx context.Context) error {
	logger := loggers.Ctx(ctx)

	run, err := s.runStore.Load(ctx)
	if err != nil {
		if errors.Is(err, stores.ErrRunNotFound) {
			logger.Info().Msg("no previous run to restore")
			return nil
		}
		return errInternalStorage(err)
	}
	// the run id becomes a storage key segment
	createdAt, err := ulid.Time(run.RunID)
	if err != nil {
		return errInternalStorage(fmt.Errorf("invalid run id %q in manifest: %w", run.RunID, err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = run
	metricCurrentRunArtifacts.Set(float64(len(run.Artifacts)))

	logger.Info().
		Str(loggers.FieldRunID, run.RunID).
		Time("run_created_at", createdAt).
		Int("artifacts", len(run.Artifacts)).
		Msg("previous run restored")
	return nil
}

// ClientFamily reduces a User-Agent header to the browser or client name.
func ClientFamily(userAgent string) string {
	if userAgent == "" {
		return unknownClient
	}
	ua := useragent.Parse(userAgent)
	if ua.Name == "" {
		return unknownClient
	}
	return ua.Name
}

func recordRun(start time.Time, err error) {
	errorCode := metrics.ValueNoError
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		errorCode = svcErr.Code
	}
	metricRunsProcessedTotal.WithLabelValues(errorCode).Inc()
	metricRunDuration.WithLabelValues(errorCode).Observe(time.Since(start).Seconds())
}
