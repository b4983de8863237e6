package parcontact

import (
	"context"
	"time"
)

// Run is one batch execution over an input file.
type Run struct {
	ID         string
	Input      string
	StartedAt  time.Time
	FinishedAt time.Time

	// Summary is zero until the run is finished.
	Summary Summary
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.Input == "" {
		return Errorf(EINVALID, "run input required")
	}
	return nil
}

// Finished reports whether the run recorded its summary.
func (r *Run) Finished() bool {
	return !r.FinishedAt.IsZero()
}

// RunFilter represents a filter for FindRuns.
type RunFilter struct {
	Limit  int
	Offset int
}

// RunService manages batch runs and their stored results.
type RunService interface {
	// CreateRun assigns an ID and a start time to run and stores it.
	CreateRun(ctx context.Context, run *Run) error

	// FinishRun records the summary of a run.
	// Returns ENOTFOUND if the run does not exist.
	FinishRun(ctx context.Context, id string, summary *Summary) error

	// FindRunByID returns ENOTFOUND if the run does not exist.
	FindRunByID(ctx context.Context, id string) (*Run, error)

	// FindRuns returns runs, latest first.
	FindRuns(ctx context.Context, filter RunFilter) ([]*Run, error)

	// FindResults returns the persisted results of a run in row order.
	FindResults(ctx context.Context, runID string) ([]*Result, error)
}
