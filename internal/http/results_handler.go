package http

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"trade-analytics/internal/models"
	"trade-analytics/internal/pipelines"
	"trade-analytics/internal/shared/loggers"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

const resultsPath = "/results"

// ResultItem is one artifact of the current run as listed by GET /results.
type ResultItem struct {
	Name        string              `json:"name"`
	Kind        models.ArtifactKind `json:"kind"`
	Title       string              `json:"title,omitempty"`
	ContentType string              `json:"contentType"`
	URL         string              `json:"url"`
}

// ResultsResponse is returned by GET /results. Results are sorted by name.
type ResultsResponse struct {
	Results []ResultItem `json:"results"`
}

// ReportResponse is returned by GET /report.
type ReportResponse struct {
	RunID        string             `json:"runId"`
	FileName     string             `json:"fileName"`
	ClientFamily string             `json:"clientFamily"`
	UploadedAt   time.Time          `json:"uploadedAt"`
	Stats        models.IngestStats `json:"stats"`
	Report       *models.Report     `json:"report"`
}

type listResultsHandler struct {
	pipelineService pipelines.PipelineService
}

func NewListResultsHandler(pipelineService pipelines.PipelineService) AppHttpHandler {
	return &listResultsHandler{pipelineService: pipelineService}
}

func (h *listResultsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	artifacts := h.pipelineService.ListResults(r.Context())

	items := make([]ResultItem, 0, len(artifacts))
	for _, a := range artifacts {
		items = append(items, ResultItem{
			Name:        a.Name,
			Kind:        a.Kind,
			Title:       a.Title,
			ContentType: a.ContentType,
			URL:         resultsPath + "/" + a.Name,
		})
	}

	render.JSON(w, r, ResultsResponse{Results: items})
	return nil
}

type getResultHandler struct {
	pipelineService pipelines.PipelineService
}

func NewGetResultHandler(pipelineService pipelines.PipelineService) AppHttpHandler {
	return &getResultHandler{pipelineService: pipelineService}
}

// Handle streams one artifact of the current run. Charts and JSON open inline, the workbook
// and the snapshot download.
func (h *getResultHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	name := chi.URLParam(r, "name")

	readCloser, artifact, err := h.pipelineService.GetArtifact(r.Context(), name)
	if err != nil {
		return err
	}
	defer readCloser.Close()

	disposition := "inline"
	if artifact.Kind == models.ArtifactWorkbook || artifact.Kind == models.ArtifactSnapshot {
		disposition = "attachment"
	}
	w.Header().Set(headerContentType, artifact.ContentType)
	w.Header().Set(headerContentDisposition, fmt.Sprintf("%s; filename=%q", disposition, artifact.Name))
	markArtifact(w, artifact)
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, readCloser); err != nil {
		// headers are gone, nothing left to tell the client
		loggers.Ctx(r.Context()).Warn().Err(err).Str(loggers.FieldArtifact, name).Msg("artifact stream interrupted")
	}
	return nil
}

type reportHandler struct {
	pipelineService pipelines.PipelineService
}

func NewReportHandler(pipelineService pipelines.PipelineService) AppHttpHandler {
	return &reportHandler{pipelineService: pipelineService}
}

func (h *reportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	run, err := h.pipelineService.CurrentRun(r.Context())
	if err != nil {
		return err
	}

	render.JSON(w, r, ReportResponse{
		RunID:        run.RunID,
		FileName:     run.FileName,
		ClientFamily: run.ClientFamily,
		UploadedAt:   run.UploadedAt,
		Stats:        run.Stats,
		Report:       run.Report,
	})
	return nil
}
