package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/parcontact"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ parcontact.RunService = (*RunService)(nil)

// RunService implements parcontact.RunService using SQLite.
type RunService struct {
	db *DB

	// Now defaults to time.Now.
	Now func() time.Time
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateRun creates a new run.
func (s *RunService) CreateRun(ctx context.Context, run *parcontact.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()
	run.StartedAt = s.now()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, input, started_at)
		VALUES (?, ?, ?)
	`, run.ID, run.Input, run.StartedAt.Format(time.RFC3339))

	return err
}

// FinishRun records the summary and end time of a run.
func (s *RunService) FinishRun(ctx context.Context, id string, summary *parcontact.Summary) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE runs
		SET finished_at = ?, processed = ?, errors = ?, skipped = ?, duplicates = ?
		WHERE id = ?
	`, s.now().Format(time.RFC3339), summary.Processed, summary.Errors, summary.Skipped, summary.Duplicates, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return parcontact.Errorf(parcontact.ENOTFOUND, "run not found")
	}
	return nil
}

// FindRunByID retrieves a run by ID.
func (s *RunService) FindRunByID(ctx context.Context, id string) (*parcontact.Run, error) {
	run, err := scanRun(s.db.QueryRowContext(ctx, `
		SELECT id, input, started_at, finished_at, processed, errors, skipped, duplicates
		FROM runs
		WHERE id = ?
	`, id))
	if err == sql.ErrNoRows {
		return nil, parcontact.Errorf(parcontact.ENOTFOUND, "run not found")
	}
	return run, err
}

// FindRuns retrieves runs, latest first.
func (s *RunService) FindRuns(ctx context.Context, filter parcontact.RunFilter) ([]*parcontact.Run, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT id, input, started_at, finished_at, processed, errors, skipped, duplicates
		FROM runs ORDER BY started_at DESC, rowid DESC`)
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*parcontact.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// FindResults retrieves the results stored for a run in row order.
func (s *RunService) FindResults(ctx context.Context, runID string) ([]*parcontact.Result, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT row_index, url, general, pedagogical, admin, status, message, fetch_error, created_at
		FROM results
		WHERE run_id = ?
		ORDER BY row_index
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*parcontact.Result
	for rows.Next() {
		var r parcontact.Result
		var status, createdAt string
		if err := rows.Scan(&r.RowIndex, &r.URL, &r.General, &r.Pedagogical, &r.Admin,
			&status, &r.Message, &r.FetchError, &createdAt); err != nil {
			return nil, err
		}
		r.Status = parcontact.Status(status)
		if r.Timestamp, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		results = append(results, &r)
	}
	return results, rows.Err()
}

func (s *RunService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*parcontact.Run, error) {
	var run parcontact.Run
	var startedAt, finishedAt string
	if err := row.Scan(&run.ID, &run.Input, &startedAt, &finishedAt,
		&run.Summary.Processed, &run.Summary.Errors, &run.Summary.Skipped, &run.Summary.Duplicates); err != nil {
		return nil, err
	}

	var err error
	if run.StartedAt, err = parseRFC3339(startedAt, "started_at"); err != nil {
		return nil, err
	}
	if finishedAt != "" {
		if run.FinishedAt, err = parseRFC3339(finishedAt, "finished_at"); err != nil {
			return nil, err
		}
	}
	return &run, nil
}

// parseRFC3339 parses a timestamp column, naming the column on failure.
func parseRFC3339(value, column string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", column, err)
	}
	return t, nil
}

// appendPagination adds LIMIT and OFFSET clauses for positive values.
// SQLite requires a LIMIT before an OFFSET.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit <= 0 && offset > 0 {
		limit = -1
	}
	if limit != 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}
