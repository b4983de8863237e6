package crawl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fwojciec/parcontact"
)

// Batch runs the extraction pipeline over input rows, one at a time, in
// order. A failing row is recorded and never stops the run; only a sink
// failure or cancellation does.
type Batch struct {
	Extractor parcontact.ContactExtractor
	Sink      parcontact.ResultSink
	Config    parcontact.BatchConfig

	// Seen, if set, detects repeated URLs. Repeated rows are still
	// processed.
	Seen parcontact.URLSet

	// Sleep waits for d or until ctx is done. Defaults to a timer.
	Sleep func(ctx context.Context, d time.Duration) error

	// Now defaults to time.Now.
	Now func() time.Time
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressSkipped
	ProgressProcessed
	ProgressFailed
	ProgressDuplicate
	ProgressCheckpoint
	ProgressPaused
	ProgressFinished
)

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Row       parcontact.Row
	Result    *parcontact.Result
	Completed int
	Total     int
	Error     error
}

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// batchState carries the counters of a run through the loop.
type batchState struct {
	summary   parcontact.Summary
	completed int
	total     int

	// invocations counts rows for which the pipeline returned a result. It
	// drives checkpoints and pauses.
	invocations int
}

// errSink marks failures of the result sink, which are fatal.
type errSink struct {
	err error
}

func (e *errSink) Error() string { return e.err.Error() }
func (e *errSink) Unwrap() error { return e.err }

// Run processes rows and returns the totals. The sink is flushed every
// Config.CheckpointEvery processed rows and once more at the end, including
// when ctx is canceled. A sink failure aborts the run without a final flush.
func (b *Batch) Run(ctx context.Context, rows []parcontact.Row, progress ProgressFunc) (*parcontact.Summary, error) {
	state := &batchState{total: len(rows)}
	notify := func(event ProgressEvent) {
		if progress != nil {
			event.Completed = state.completed
			event.Total = state.total
			progress(event)
		}
	}

	notify(ProgressEvent{Type: ProgressStarted})

	var runErr error
	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}
		if err := b.processRow(ctx, state, row, notify); err != nil {
			var sinkErr *errSink
			if errors.As(err, &sinkErr) {
				return &state.summary, sinkErr.err
			}
			runErr = err
			break
		}
	}

	if err := b.Sink.Flush(context.WithoutCancel(ctx)); err != nil {
		return &state.summary, fmt.Errorf("final flush: %w", err)
	}

	notify(ProgressEvent{Type: ProgressFinished})
	return &state.summary, runErr
}

// processRow records exactly one result for row. The returned error is
// either an *errSink or the context error.
func (b *Batch) processRow(ctx context.Context, state *batchState, row parcontact.Row, notify ProgressFunc) error {
	if err := b.Config.ValidateURL(row.URL); err != nil {
		result := &parcontact.Result{
			RowIndex:    row.Index,
			URL:         row.URL,
			General:     parcontact.InvalidURL,
			Pedagogical: parcontact.InvalidURL,
			Admin:       parcontact.InvalidURL,
			Status:      parcontact.StatusSkipped,
			Message:     parcontact.ErrorMessage(err),
			Timestamp:   b.now(),
		}
		if err := b.append(ctx, result); err != nil {
			return err
		}
		state.summary.Skipped++
		state.completed++
		notify(ProgressEvent{Type: ProgressSkipped, Row: row, Result: result, Error: err})
		return nil
	}

	if b.Seen != nil {
		if b.Seen.Test(row.URL) {
			state.summary.Duplicates++
			notify(ProgressEvent{Type: ProgressDuplicate, Row: row})
		}
		b.Seen.Add(row.URL)
	}

	result, err := b.extract(ctx, row)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		result = &parcontact.Result{
			RowIndex:    row.Index,
			URL:         row.URL,
			General:     parcontact.FetchFailed,
			Pedagogical: parcontact.FetchFailed,
			Admin:       parcontact.FetchFailed,
			Status:      parcontact.StatusError,
			Message:     err.Error(),
			Timestamp:   b.now(),
		}
		if err := b.append(ctx, result); err != nil {
			return err
		}
		state.summary.Errors++
		state.completed++
		notify(ProgressEvent{Type: ProgressFailed, Row: row, Result: result, Error: err})
		return nil
	}

	if result.FetchError != "" && b.Config.FetchErrorsAsErrors {
		failed := *result
		failed.Status = parcontact.StatusError
		failed.Message = result.FetchError
		result = &failed
	}

	if err := b.append(ctx, result); err != nil {
		return err
	}
	state.completed++
	state.invocations++
	if result.Status == parcontact.StatusError {
		state.summary.Errors++
		notify(ProgressEvent{Type: ProgressFailed, Row: row, Result: result, Error: errors.New(result.Message)})
	} else {
		state.summary.Processed++
		notify(ProgressEvent{Type: ProgressProcessed, Row: row, Result: result})
	}

	if b.Config.CheckpointEvery > 0 && state.invocations%b.Config.CheckpointEvery == 0 {
		if err := b.Sink.Flush(ctx); err != nil {
			return &errSink{err: fmt.Errorf("checkpoint after row %d: %w", row.Index, err)}
		}
		notify(ProgressEvent{Type: ProgressCheckpoint, Row: row})
	}

	if err := b.sleep(ctx, b.Config.Delay); err != nil {
		return err
	}
	if b.Config.PauseEvery > 0 && state.invocations%b.Config.PauseEvery == 0 {
		notify(ProgressEvent{Type: ProgressPaused, Row: row})
		if err := b.sleep(ctx, b.Config.Pause); err != nil {
			return err
		}
	}
	return nil
}

// extract invokes the pipeline, turning a panic into an EINTERNAL error.
func (b *Batch) extract(ctx context.Context, row parcontact.Row) (result *parcontact.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = nil, parcontact.Errorf(parcontact.EINTERNAL, "panic: %v", r)
		}
	}()

	result, err = b.Extractor.ExtractContacts(ctx, row)
	if err == nil && result == nil {
		err = parcontact.Errorf(parcontact.EINTERNAL, "no result for row %d", row.Index)
	}
	return result, err
}

func (b *Batch) append(ctx context.Context, result *parcontact.Result) error {
	if err := b.Sink.Append(ctx, result); err != nil {
		return &errSink{err: fmt.Errorf("append row %d: %w", result.RowIndex, err)}
	}
	return nil
}

func (b *Batch) sleep(ctx context.Context, d time.Duration) error {
	if b.Sleep != nil {
		return b.Sleep(ctx, d)
	}
	return sleepContext(ctx, d)
}

func (b *Batch) now() time.Time {
	if b.Now != nil {
		return b.Now()
	}
	return time.Now()
}

// sleepContext waits for d, returning early with the context error.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
