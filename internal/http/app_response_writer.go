package http

import (
	"net/http"

	"trade-analytics/internal/models"
	"trade-analytics/internal/shared/metrics"
	"trade-analytics/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5/middleware"
)

// appResponseWriter carries what a handler produced so the metrics and logging middlewares can
// see it: the service error of a failed request and the artifact a download streamed.
type appResponseWriter struct {
	middleware.WrapResponseWriter
	svcError *svcerrors.ServiceError
	artifact *models.Artifact
}

func newAppResponseWriter(w http.ResponseWriter, protoMajor int) *appResponseWriter {
	return &appResponseWriter{
		WrapResponseWriter: middleware.NewWrapResponseWriter(w, protoMajor),
	}
}

func (w *appResponseWriter) SetServiceError(svcError *svcerrors.ServiceError) {
	w.svcError = svcError
}

func (w *appResponseWriter) ErrorCode() string {
	if w.svcError != nil {
		return w.svcError.Code
	}
	return metrics.ValueNoError
}

func (w *appResponseWriter) SetArtifact(artifact models.Artifact) {
	w.artifact = &artifact
}

// Artifact returns the artifact served by this response, if any.
func (w *appResponseWriter) Artifact() (models.Artifact, bool) {
	if w.artifact == nil {
		return models.Artifact{}, false
	}
	return *w.artifact, true
}

// StatusOrOK reports 200 for handlers that wrote a body without an explicit status.
func (w *appResponseWriter) StatusOrOK() int {
	if status := w.Status(); status != 0 {
		return status
	}
	return http.StatusOK
}

// markArtifact records on w, when it is an appResponseWriter, which artifact is being streamed.
func markArtifact(w http.ResponseWriter, artifact models.Artifact) {
	if appWriter, ok := w.(*appResponseWriter); ok {
		appWriter.SetArtifact(artifact)
	}
}
