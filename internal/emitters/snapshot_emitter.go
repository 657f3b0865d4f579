package emitters

import (
	"bytes"
	"context"
	"fmt"

	"trade-analytics/internal/models"
	"trade-analytics/internal/shared/loggers"
	"trade-analytics/internal/stores"

	"github.com/parquet-go/parquet-go"
)

const snapshotName = "events.parquet"

// eventSnapshotRow is the columnar layout of one table row. Instants are Unix nanoseconds.
type eventSnapshotRow struct {
	Action      string  `parquet:"action"`
	Token       string  `parquet:"token"`
	TimestampNs int64   `parquet:"timestamp_ns"`
	HourNs      int64   `parquet:"hour_ns"`
	Quantity    float64 `parquet:"quantity"`
}

type snapshotEmitter struct {
	artifactStore stores.ArtifactStore
}

// NewSnapshotEmitter writes the event table of a run as a parquet file.
func NewSnapshotEmitter(artifactStore stores.ArtifactStore) Emitter {
	return &snapshotEmitter{artifactStore: artifactStore}
}

func (e *snapshotEmitter) Name() string {
	return "snapshot"
}

func (e *snapshotEmitter) Emit(ctx context.Context, run *models.ProcessingRun, table *models.EventTable) ([]models.Artifact, error) {
	if table.IsEmpty() {
		loggers.Ctx(ctx).Debug().Msg("empty table, snapshot skipped")
		return nil, nil
	}

	rows := make([]eventSnapshotRow, 0, table.Len())
	for _, row := range table.All() {
		rows = append(rows, eventSnapshotRow{
			Action:      row.Action,
			Token:       row.Token,
			TimestampNs: row.Timestamp.UnixNano(),
			HourNs:      row.Hour.UnixNano(),
			Quantity:    row.Quantity,
		})
	}

	var buf bytes.Buffer
	if err := parquet.Write(&buf, rows); err != nil {
		return nil, fmt.Errorf("failed to write parquet snapshot: %w", err)
	}
	if err := e.artifactStore.Put(ctx, run.RunID, snapshotName, &buf); err != nil {
		return nil, err
	}

	return []models.Artifact{{
		Name:        snapshotName,
		Kind:        models.ArtifactSnapshot,
		ContentType: contentTypeParquet,
		Title:       "Event table snapshot",
	}}, nil
}
