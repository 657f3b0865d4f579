package emitters

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"trade-analytics/internal/models"
	"trade-analytics/internal/stores"

	"github.com/xuri/excelize/v2"
)

const (
	workbookName = "aggregates.xlsx"

	sheetSummary             = "Summary"
	sheetEntriesPerHour      = "EntriesPerHour"
	sheetQuantityPerHour     = "QuantityPerHour"
	sheetTradePattern        = "TradePattern"
	sheetTopTokensByCount    = "TopTokensByCount"
	sheetTopTokensByQuantity = "TopTokensByQuantity"
	sheetCountShare          = "CountShare"
	sheetQuantityShare       = "QuantityShare"
)

type workbookEmitter struct {
	artifactStore stores.ArtifactStore
}

// NewWorkbookEmitter writes every aggregate of a run into one spreadsheet, one sheet per aggregate.
func NewWorkbookEmitter(artifactStore stores.ArtifactStore) Emitter {
	return &workbookEmitter{artifactStore: artifactStore}
}

func (e *workbookEmitter) Name() string {
	return "workbook"
}

func (e *workbookEmitter) Emit(ctx context.Context, run *models.ProcessingRun, _ *models.EventTable) ([]models.Artifact, error) {
	if run.Report == nil {
		return nil, nil
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetSummary); err != nil {
		return nil, fmt.Errorf("failed to name summary sheet: %w", err)
	}

	sheets := []struct {
		name string
		rows [][]any
	}{
		{sheetSummary, summaryRows(run)},
		{sheetEntriesPerHour, seriesRows("Entries", run.Report.EntriesPerHour)},
		{sheetQuantityPerHour, seriesRows("Quantity", run.Report.QuantityPerHour)},
		{sheetTradePattern, seriesRows("Occurrences", run.Report.TradePattern)},
		{sheetTopTokensByCount, matrixRows("Entries", run.Report.TopTokensByCount)},
		{sheetTopTokensByQuantity, matrixRows("Quantity", run.Report.TopTokensByQuantity)},
		{sheetCountShare, breakdownRows("Entries", run.Report.CountShare)},
		{sheetQuantityShare, breakdownRows("Quantity", run.Report.QuantityShare)},
	}
	for _, sheet := range sheets {
		if sheet.name != sheetSummary {
			if _, err := f.NewSheet(sheet.name); err != nil {
				return nil, fmt.Errorf("failed to add sheet %s: %w", sheet.name, err)
			}
		}
		if err := writeRows(f, sheet.name, sheet.rows); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := e.artifactStore.Put(ctx, run.RunID, workbookName, &buf); err != nil {
		return nil, err
	}

	return []models.Artifact{{
		Name:        workbookName,
		Kind:        models.ArtifactWorkbook,
		ContentType: contentTypeXLSX,
		Title:       "Aggregates workbook",
	}}, nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func summaryRows(run *models.ProcessingRun) [][]any {
	return [][]any{
		{"Run ID", run.RunID},
		{"File", run.FileName},
		{"Client", run.ClientFamily},
		{"Uploaded At", run.UploadedAt.UTC().Format(time.RFC3339)},
		{"Lines Read", run.Stats.LinesRead},
		{"Records Parsed", run.Stats.RecordsParsed},
		{"Lines Skipped", run.Stats.LinesSkipped},
		{"Rows Dropped", run.Stats.RowsDropped},
	}
}

func seriesRows(valueName string, series models.HourlySeries) [][]any {
	rows := [][]any{{hourAxis, valueName}}
	for _, p := range series {
		rows = append(rows, []any{models.FormatHour(p.Hour), p.Value})
	}
	return rows
}

func matrixRows(valueName string, matrix models.HourlyMatrix) [][]any {
	rows := [][]any{{hourAxis, "Token", valueName}}
	for _, cell := range matrix.Cells() {
		rows = append(rows, []any{models.FormatHour(cell.Hour), cell.Token, cell.Value})
	}
	return rows
}

func breakdownRows(valueName string, breakdown models.Breakdown) [][]any {
	rows := [][]any{{"Token", valueName}}
	for _, entry := range breakdown.Entries {
		rows = append(rows, []any{entry.Label, entry.Value})
	}
	rows = append(rows,
		[]any{"Total", breakdown.Total},
		[]any{"Total Tokens", breakdown.DistinctTokens},
	)
	return rows
}
