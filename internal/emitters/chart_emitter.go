package emitters

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"trade-analytics/internal/models"
	"trade-analytics/internal/shared/loggers"
	"trade-analytics/internal/stores"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const (
	chartWidth  = "1200px"
	chartHeight = "600px"
	hourAxis    = "Hour (IST)"
)

type renderer interface {
	Render(w io.Writer) error
}

// chartDef describes one chart document. build returns false when its aggregate is empty and
// the chart should be left out.
type chartDef struct {
	name  string
	title string
	build func(title string, run *models.ProcessingRun) (renderer, bool)
}

var chartDefs = []chartDef{
	{
		name:  "01_entries_per_hour.html",
		title: "Entries per Hour",
		build: func(title string, run *models.ProcessingRun) (renderer, bool) {
			return hourlyLine(title, "Entries", run.Report.EntriesPerHour)
		},
	},
	{
		name:  "02_quantity_per_hour.html",
		title: "Quantity per Hour",
		build: func(title string, run *models.ProcessingRun) (renderer, bool) {
			return hourlyLine(title, "Quantity", run.Report.QuantityPerHour)
		},
	},
	{
		name:  "03_trade_pattern.html",
		title: "T followed by N/M per Hour",
		build: func(title string, run *models.ProcessingRun) (renderer, bool) {
			return hourlyBar(title, "Occurrences", run.Report.TradePattern)
		},
	},
	{
		name:  "04_top_tokens_by_count.html",
		title: "Top Tokens by Entries",
		build: func(title string, run *models.ProcessingRun) (renderer, bool) {
			return matrixLine(title, "Entries", run.Report.TopTokensByCount)
		},
	},
	{
		name:  "05_top_tokens_by_quantity.html",
		title: "Top Tokens by Quantity",
		build: func(title string, run *models.ProcessingRun) (renderer, bool) {
			return matrixLine(title, "Quantity", run.Report.TopTokensByQuantity)
		},
	},
	{
		name:  "06_count_share.html",
		title: "Entry Share by Token",
		build: func(title string, run *models.ProcessingRun) (renderer, bool) {
			return breakdownPie(title, run.Report.CountShare)
		},
	},
	{
		name:  "07_quantity_share.html",
		title: "Quantity Share by Token",
		build: func(title string, run *models.ProcessingRun) (renderer, bool) {
			return breakdownPie(title, run.Report.QuantityShare)
		},
	},
}

type chartEmitter struct {
	artifactStore stores.ArtifactStore
}

// NewChartEmitter renders one interactive HTML chart per non-empty aggregate.
func NewChartEmitter(artifactStore stores.ArtifactStore) Emitter {
	return &chartEmitter{artifactStore: artifactStore}
}

func (e *chartEmitter) Name() string {
	return "chart"
}

func (e *chartEmitter) Emit(ctx context.Context, run *models.ProcessingRun, _ *models.EventTable) ([]models.Artifact, error) {
	logger := loggers.Ctx(ctx)
	if run.Report == nil {
		return nil, nil
	}

	var artifacts []models.Artifact
	for _, def := range chartDefs {
		chart, ok := def.build(def.title, run)
		if !ok {
			logger.Debug().Str(loggers.FieldArtifact, def.name).Msg("no data, chart omitted")
			continue
		}

		var buf bytes.Buffer
		if err := chart.Render(&buf); err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", def.name, err)
		}
		if err := e.artifactStore.Put(ctx, run.RunID, def.name, &buf); err != nil {
			return nil, err
		}
		artifacts = append(artifacts, models.Artifact{
			Name:        def.name,
			Kind:        models.ArtifactChart,
			ContentType: contentTypeHTML,
			Title:       def.title,
		})
	}

	if len(artifacts) == 0 {
		logger.Warn().Msg("no chart data available")
	}
	return artifacts, nil
}

func axisOptions(title, subtitle, valueName, trigger string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     chartWidth,
			Height:    chartHeight,
		}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: trigger}),
		charts.WithXAxisOpts(opts.XAxis{Name: hourAxis}),
		charts.WithYAxisOpts(opts.YAxis{Name: valueName}),
	}
}

func hourLabels(series models.HourlySeries) []string {
	labels := make([]string, len(series))
	for i, p := range series {
		labels[i] = models.FormatHour(p.Hour)
	}
	return labels
}

func hourlyLine(title, valueName string, series models.HourlySeries) (renderer, bool) {
	if len(series) == 0 {
		return nil, false
	}
	data := make([]opts.LineData, len(series))
	for i, p := range series {
		data[i] = opts.LineData{Value: p.Value}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(axisOptions(title, "", valueName, "axis")...)
	line.SetXAxis(hourLabels(series)).AddSeries(valueName, data)
	return line, true
}

func hourlyBar(title, valueName string, series models.HourlySeries) (renderer, bool) {
	if len(series) == 0 {
		return nil, false
	}
	data := make([]opts.BarData, len(series))
	for i, p := range series {
		data[i] = opts.BarData{Value: p.Value}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(axisOptions(title, "", valueName, "axis")...)
	bar.SetXAxis(hourLabels(series)).AddSeries(valueName, data)
	return bar, true
}

func matrixLine(title, valueName string, matrix models.HourlyMatrix) (renderer, bool) {
	if matrix.IsEmpty() {
		return nil, false
	}
	labels := make([]string, len(matrix.Hours))
	for i, hour := range matrix.Hours {
		labels[i] = models.FormatHour(hour)
	}

	line := charts.NewLine()
	subtitle := fmt.Sprintf("Top %d tokens", len(matrix.Series))
	line.SetGlobalOptions(axisOptions(title, subtitle, valueName, "axis")...)
	line.SetXAxis(labels)
	for _, series := range matrix.Series {
		data := make([]opts.LineData, len(series.Values))
		for i, v := range series.Values {
			data[i] = opts.LineData{Value: v}
		}
		line.AddSeries(series.Token, data)
	}
	return line, true
}

func breakdownPie(title string, breakdown models.Breakdown) (renderer, bool) {
	if breakdown.IsEmpty() {
		return nil, false
	}
	data := make([]opts.PieData, len(breakdown.Entries))
	for i, entry := range breakdown.Entries {
		data[i] = opts.PieData{Name: entry.Label, Value: entry.Value}
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     chartWidth,
			Height:    chartHeight,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("Total Tokens: %d", breakdown.DistinctTokens),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "item"}),
	)
	pie.AddSeries(title, data)
	return pie, true
}
