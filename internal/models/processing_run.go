package models

import "time"

type ArtifactKind string

const (
	ArtifactChart    ArtifactKind = "chart"
	ArtifactWorkbook ArtifactKind = "workbook"
	ArtifactSnapshot ArtifactKind = "snapshot"
	ArtifactReport   ArtifactKind = "report"
)

// Artifact is one generated file of a processing run.
type Artifact struct {
	Name        string       `json:"name"`
	Kind        ArtifactKind `json:"kind"`
	ContentType string       `json:"contentType"`
	Title       string       `json:"title,omitempty"`
}

// ProcessingRun is one processed upload and everything derived from it.
type ProcessingRun struct {
	RunID        string      `json:"runId"`
	FileName     string      `json:"fileName"`
	ClientFamily string      `json:"clientFamily"`
	UploadedAt   time.Time   `json:"uploadedAt"`
	Stats        IngestStats `json:"stats"`
	Report       *Report     `json:"report"`
	Artifacts    []Artifact  `json:"artifacts"`
}
