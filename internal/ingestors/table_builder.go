package ingestors

import (
	"math"

	"trade-analytics/internal/models"
)

// TableBuilder accumulates parsed records in arrival order and derives their hour bucket.
// It belongs to a single processing run and is not safe for concurrent use.
type TableBuilder struct {
	rows    []models.EventRow
	dropped int64
}

func NewTableBuilder() *TableBuilder {
	return &TableBuilder{}
}

// Append adds rec as the next row. Records without a usable timestamp or quantity are
// dropped and counted; Append reports whether the record was kept.
func (b *TableBuilder) Append(rec models.EventRecord) bool {
	if rec.Timestamp.IsZero() || math.IsNaN(rec.Quantity) || math.IsInf(rec.Quantity, 0) {
		b.dropped++
		return false
	}
	b.rows = append(b.rows, models.EventRow{
		EventRecord: rec,
		Hour:        models.HourStart(rec.Timestamp),
	})
	return true
}

// Dropped is the number of records Append refused.
func (b *TableBuilder) Dropped() int64 {
	return b.dropped
}

// Build returns an immutable table of the rows appended so far.
func (b *TableBuilder) Build() *models.EventTable {
	return models.NewEventTable(b.rows)
}
