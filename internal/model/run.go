package model

import "time"

// RunStatus tracks the lifecycle of an analysis run.
type RunStatus string

const (
	RunStatusQueued   RunStatus = "queued"
	RunStatusRunning  RunStatus = "running"
	RunStatusComplete RunStatus = "complete"
	RunStatusFailed   RunStatus = "failed"
)

// Run is one analysis of a document collection. Result is replaced wholesale
// on re-run; it is never merged.
type Run struct {
	ID        string     `json:"id"`
	Documents []Document `json:"documents"`
	Status    RunStatus  `json:"status"`
	Result    *RunResult `json:"result,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// RunResult is the output of one pipeline run.
type RunResult struct {
	Analysis      AnalysisResult `json:"analysis"`
	CategoryOrder []string       `json:"category_order"`
	Summary       RunSummary     `json:"summary"`
	Model         string         `json:"model"`
	DurationMS    int64          `json:"duration_ms"`
}
