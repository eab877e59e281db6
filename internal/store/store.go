// Package store persists analysis runs. Two backends are provided: SQLite
// for single-user CLI work and Postgres for shared deployments.
package store

import (
	"context"

	"github.com/ingrediq/docintel-cli/internal/model"
)

// RunFilter specifies criteria for listing runs.
type RunFilter struct {
	Status model.RunStatus `json:"status,omitempty"`
	Limit  int             `json:"limit,omitempty"`
	Offset int             `json:"offset,omitempty"`
}

// Store defines the persistence interface for analysis runs. A run's result
// is replaced wholesale by UpdateRunResult; results are never merged.
type Store interface {
	CreateRun(ctx context.Context, docs []model.Document) (*model.Run, error)
	UpdateRunStatus(ctx context.Context, runID string, status model.RunStatus) error
	UpdateRunResult(ctx context.Context, runID string, result *model.RunResult) error
	GetRun(ctx context.Context, runID string) (*model.Run, error)
	ListRuns(ctx context.Context, filter RunFilter) ([]model.Run, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}
