package http

import (
	"errors"
	"net/http"
	"strings"

	"trade-analytics/internal/models"
	"trade-analytics/internal/pipelines"

	"github.com/go-chi/render"
)

const (
	formFieldFile = "file"
	// multipart parts beyond this are spooled to temp files
	multipartMemoryBytes = 8 << 20
)

// UploadResponse is returned by POST /uploads.
type UploadResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	RunID   string             `json:"runId"`
	Stats   models.IngestStats `json:"stats"`
}

type uploadHandler struct {
	pipelineService pipelines.PipelineService
	maxUploadBytes  int64
}

func NewUploadHandler(pipelineService pipelines.PipelineService, maxUploadBytes int64) AppHttpHandler {
	return &uploadHandler{
		pipelineService: pipelineService,
		maxUploadBytes:  maxUploadBytes,
	}
}

// Handle processes POST /uploads requests carrying a multipart "file" part.
func (h *uploadHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(multipartMemoryBytes); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return errUploadTooLarge(maxBytesErr.Limit, err)
		}
		return errInvalidMultipart(err)
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	upload := pipelines.Upload{UserAgent: userAgent(r)}
	file, fileHeader, err := r.FormFile(formFieldFile)
	switch {
	case err == nil:
		defer file.Close()
		upload.FileName = fileHeader.Filename
		upload.Body = file
	case errors.Is(err, http.ErrMissingFile):
		// a file input submitted without a selection arrives as a plain value
		if _, ok := r.MultipartForm.Value[formFieldFile]; ok {
			upload.Body = strings.NewReader("")
		}
	default:
		return errInvalidMultipart(err)
	}

	run, err := h.pipelineService.ProcessUpload(r.Context(), upload)
	if err != nil {
		return err
	}

	render.JSON(w, r, UploadResponse{
		Success: true,
		Message: "File processed successfully.",
		RunID:   run.RunID,
		Stats:   run.Stats,
	})
	return nil
}
