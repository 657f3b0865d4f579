package http

import (
	"net/http"

	"trade-analytics/internal/pipelines"

	"github.com/go-chi/render"
)

// ResetResponse is returned by POST /reset and DELETE /uploads.
type ResetResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type resetHandler struct {
	pipelineService pipelines.PipelineService
}

func NewResetHandler(pipelineService pipelines.PipelineService) AppHttpHandler {
	return &resetHandler{pipelineService: pipelineService}
}

func (h *resetHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	if err := h.pipelineService.Reset(r.Context()); err != nil {
		return err
	}

	render.JSON(w, r, ResetResponse{
		Success: true,
		Message: "Uploads and artifacts deleted successfully",
	})
	return nil
}
