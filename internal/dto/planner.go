package dto

import "github.com/noah-isme/course-planner-api/internal/models"

// SelectionRequest carries the student's picked course codes. Selections are
// never persisted server-side; every planner call receives the full set.
type SelectionRequest struct {
	Codes []string `json:"codes" validate:"required,min=1,dive,required"`
}

// ConflictResponse summarises pairwise clashes across a selection.
type ConflictResponse struct {
	Keys            []string `json:"keys"`
	Descriptions    []string `json:"descriptions"`
	EarliestMinutes int      `json:"earliest_minutes"`
	LatestMinutes   int      `json:"latest_minutes"`
}

// CheckClashRequest asks whether a candidate course would clash with an
// already-settled selection.
type CheckClashRequest struct {
	Candidate string   `json:"candidate" validate:"required"`
	Codes     []string `json:"codes" validate:"dive,required"`
}

// CheckClashResponse lists the courses the candidate would clash with.
type CheckClashResponse struct {
	Candidate   string   `json:"candidate"`
	ClashesWith []string `json:"clashes_with"`
}

// GridResponse carries everything the presentation layer needs to draw the
// weekly grid: the expanded slots, conflict keys for highlighting, and the
// hour bounds for sizing.
type GridResponse struct {
	Slots           []models.TimeSlot `json:"slots"`
	ConflictKeys    []string          `json:"conflict_keys"`
	EarliestMinutes int               `json:"earliest_minutes"`
	LatestMinutes   int               `json:"latest_minutes"`
}

// ExportRequest names a selection and a download format.
type ExportRequest struct {
	Codes  []string `json:"codes" validate:"required,min=1,dive,required"`
	Format string   `json:"format" validate:"required,oneof=csv pdf"`
}

// ExportResult is a rendered download.
type ExportResult struct {
	FileName    string
	ContentType string
	Payload     []byte
}
