package models

import "time"

// EventRecord is one parsed trading event. Timestamp is already normalized to IST.
type EventRecord struct {
	Action    string    `json:"action"`
	Token     string    `json:"token"`
	Timestamp time.Time `json:"timestamp"`
	Quantity  float64   `json:"quantity"`
}

// EventRow is an EventRecord plus its derived hour bucket.
type EventRow struct {
	EventRecord
	Hour time.Time `json:"hour"`
}

// IngestStats counts what happened to the lines of one upload.
type IngestStats struct {
	LinesRead     int64 `json:"linesRead"`
	RecordsParsed int64 `json:"recordsParsed"`
	LinesSkipped  int64 `json:"linesSkipped"`
	RowsDropped   int64 `json:"rowsDropped"`
}
