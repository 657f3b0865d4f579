package http

import (
	"net/http"

	"trade-analytics/internal/pipelines"
	"trade-analytics/internal/shared/loggers"
	"trade-analytics/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"golang.org/x/time/rate"
)

// RouterOptions bounds what clients may send.
type RouterOptions struct {
	MaxUploadBytes int64
	UploadRPS      float64
	UploadBurst    int
}

// NewRouter creates and configures the HTTP router.
func NewRouter(pipelineService pipelines.PipelineService, httpLogger loggers.Logger, opts RouterOptions) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	uploadHandler := NewUploadHandler(pipelineService, opts.MaxUploadBytes)
	listResultsHandler := NewListResultsHandler(pipelineService)
	getResultHandler := NewGetResultHandler(pipelineService)
	reportHandler := NewReportHandler(pipelineService)
	resetHandler := NewResetHandler(pipelineService)

	uploadLimiter := rate.NewLimiter(rate.Limit(opts.UploadRPS), opts.UploadBurst)

	// Routes
	router.With(mwUploadRateLimit(uploadLimiter)).Post("/uploads", errorHandlingAdapter(uploadHandler))
	router.Delete("/uploads", errorHandlingAdapter(resetHandler))
	router.Post("/reset", errorHandlingAdapter(resetHandler))
	router.Get(resultsPath, errorHandlingAdapter(listResultsHandler))
	router.Get(resultsPath+"/{name}", errorHandlingAdapter(getResultHandler))
	router.Get("/report", errorHandlingAdapter(reportHandler))
	router.Get("/healthz", errorHandlingAdapter(appHttpHandlerFunc(healthz)))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}

func healthz(w http.ResponseWriter, r *http.Request) error {
	render.JSON(w, r, map[string]string{"status": "ok"})
	return nil
}
