package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/parcontact"
)

// Compile-time interface verification.
var _ parcontact.ResultSink = (*ResultStore)(nil)

// ResultStore stores the results of one run. Appended results are inserted
// in a single transaction on Flush.
type ResultStore struct {
	db      *DB
	runID   string
	pending []*parcontact.Result
}

// NewResultStore creates a ResultStore for the run with the given ID.
func NewResultStore(db *DB, runID string) *ResultStore {
	return &ResultStore{db: db, runID: runID}
}

// Append buffers result until the next Flush.
func (s *ResultStore) Append(_ context.Context, result *parcontact.Result) error {
	s.pending = append(s.pending, result)
	return nil
}

// Flush inserts the buffered results.
func (s *ResultStore) Flush(ctx context.Context) error {
	if len(s.pending) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO results (run_id, row_index, url, general, pedagogical, admin, status, message, fetch_error, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range s.pending {
		if _, err := stmt.ExecContext(ctx, s.runID, r.RowIndex, r.URL, r.General, r.Pedagogical, r.Admin,
			string(r.Status), r.Message, r.FetchError, r.Timestamp.UTC().Format(time.RFC3339)); err != nil {
			return fmt.Errorf("insert row %d: %w", r.RowIndex, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	s.pending = nil
	return nil
}

// Close discards unflushed results. The database is closed by its owner.
func (s *ResultStore) Close() error {
	s.pending = nil
	return nil
}
