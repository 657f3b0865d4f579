package emitters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"trade-analytics/internal/models"
	"trade-analytics/internal/stores"
)

const reportName = "report.json"

// reportDocument is the downloadable JSON form of a run's aggregates.
type reportDocument struct {
	RunID    string             `json:"runId"`
	FileName string             `json:"fileName"`
	Stats    models.IngestStats `json:"stats"`
	Report   *models.Report     `json:"report"`
	Cells    reportCells        `json:"cells"`
}

// reportCells is the flattened (hour, token, value) form of the top-N matrices.
type reportCells struct {
	TopTokensByCount    []models.MatrixCell `json:"topTokensByCount"`
	TopTokensByQuantity []models.MatrixCell `json:"topTokensByQuantity"`
}

type reportEmitter struct {
	artifactStore stores.ArtifactStore
}

func NewReportEmitter(artifactStore stores.ArtifactStore) Emitter {
	return &reportEmitter{artifactStore: artifactStore}
}

func (e *reportEmitter) Name() string {
	return "report"
}

func (e *reportEmitter) Emit(ctx context.Context, run *models.ProcessingRun, _ *models.EventTable) ([]models.Artifact, error) {
	if run.Report == nil {
		return nil, nil
	}

	doc := reportDocument{
		RunID:    run.RunID,
		FileName: run.FileName,
		Stats:    run.Stats,
		Report:   run.Report,
		Cells: reportCells{
			TopTokensByCount:    run.Report.TopTokensByCount.Cells(),
			TopTokensByQuantity: run.Report.TopTokensByQuantity.Cells(),
		},
	}
	jsonData, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := e.artifactStore.Put(ctx, run.RunID, reportName, bytes.NewReader(jsonData)); err != nil {
		return nil, err
	}

	return []models.Artifact{{
		Name:        reportName,
		Kind:        models.ArtifactReport,
		ContentType: contentTypeJSON,
		Title:       "Aggregates report",
	}}, nil
}
