package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"trade-analytics/internal/aggregators"
	"trade-analytics/internal/emitters"
	internalhttp "trade-analytics/internal/http"
	"trade-analytics/internal/ingestors"
	"trade-analytics/internal/pipelines"
	"trade-analytics/internal/shared/configs"
	"trade-analytics/internal/shared/filestorages"
	"trade-analytics/internal/shared/loggers"
	"trade-analytics/internal/stores"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	pipelineService pipelines.PipelineService
	pipelineLogger  loggers.Logger
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "trade-analytics").
		Logger()

	// Initialize file storage and stores
	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	uploadStore := stores.NewUploadStore(fileStorage)
	artifactStore := stores.NewArtifactStore(fileStorage)
	runStore := stores.NewRunStore(fileStorage)

	// Initialize ingestion and aggregation
	ingestionService := ingestors.NewIngestionService(ingestors.NewRecordParser(), config.Ingestion.MaxLineBytes)
	aggregationService, err := aggregators.NewAggregationService(aggregators.Options{
		TopN:            config.Aggregation.TopN,
		OthersThreshold: config.Aggregation.OthersThreshold,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize aggregation service: %w", err)
	}

	// Initialize emitters
	emitter := emitters.NewCompositeEmitter(
		emitters.NewChartEmitter(artifactStore),
		emitters.NewWorkbookEmitter(artifactStore),
		emitters.NewSnapshotEmitter(artifactStore),
		emitters.NewReportEmitter(artifactStore),
	)

	pipelineService := pipelines.NewPipelineService(
		ingestionService,
		aggregationService,
		emitter,
		uploadStore,
		artifactStore,
		runStore,
	)
	pipelineLogger := appLogger.With().Str(loggers.FieldComponent, "pipeline").Logger()

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(pipelineService, httpLogger, internalhttp.RouterOptions{
		MaxUploadBytes: config.Ingestion.MaxUploadBytes,
		UploadRPS:      config.Server.UploadRateLimit.RPS,
		UploadBurst:    config.Server.UploadRateLimit.Burst,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:          config,
		appLogger:       appLogger,
		server:          server,
		pipelineService: pipelineService,
		pipelineLogger:  pipelineLogger,
	}, nil
}

// Start restores the last processed run and starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting trade-analytics service on port %d (log_level=%s, file_storage_root_dir=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.FileStorage.RootDir)

	restoreCtx := app.pipelineLogger.WithContext(context.Background())
	if err := app.pipelineService.Restore(restoreCtx); err != nil {
		app.appLogger.Warn().Err(err).Msg("failed to restore previous run")
	}

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")
	return nil
}
