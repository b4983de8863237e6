package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/fwojciec/parcontact"
	"github.com/fwojciec/parcontact/bloom"
	"github.com/fwojciec/parcontact/crawl"
	pcslog "github.com/fwojciec/parcontact/slog"
)

// Run executes the run command.
func (c *RunCmd) Run(deps *Dependencies) error {
	rows, err := readRows(c.Input, c.Column, c.StartRow)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", parcontact.ErrorMessage(err))
		return err
	}
	if c.Limit > 0 && len(rows) > c.Limit {
		rows = rows[:c.Limit]
	}

	path := c.Output
	if path == "" {
		path = defaultOutput(deps)
	}

	out, err := openOutput(deps.Ctx, deps, path, c.Input)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", parcontact.ErrorMessage(err))
		return err
	}

	batch := &crawl.Batch{
		Extractor: deps.Extractor,
		Sink:      pcslog.NewLoggingSink(out.sink, deps.Logger),
		Config: parcontact.BatchConfig{
			DomainMarker:        c.Domain,
			Delay:               c.Delay,
			Pause:               c.Pause,
			PauseEvery:          c.PauseEvery,
			CheckpointEvery:     c.CheckpointEvery,
			FetchErrorsAsErrors: c.Strict,
		},
		Seen:  bloom.NewURLSet(len(rows)),
		Sleep: deps.Sleep,
		Now:   deps.Now,
	}

	summary, runErr := batch.Run(deps.Ctx, rows, c.progress(deps))
	if err := out.finish(summary); err != nil && runErr == nil {
		runErr = err
	}

	fmt.Fprintf(deps.Stdout, "\nProcessed %d, errors %d, skipped %d, duplicates %d\n",
		summary.Processed, summary.Errors, summary.Skipped, summary.Duplicates)

	if errors.Is(runErr, context.Canceled) {
		fmt.Fprintf(deps.Stdout, "Interrupted, partial results saved to %s\n", path)
		return runErr
	}
	if runErr != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", parcontact.ErrorMessage(runErr))
		return runErr
	}

	fmt.Fprintf(deps.Stdout, "Results saved to %s\n", path)
	return nil
}

func (c *RunCmd) progress(deps *Dependencies) crawl.ProgressFunc {
	return func(event crawl.ProgressEvent) {
		label := crawl.ListingLabel(event.Row.URL, 50)
		switch event.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Processing %d rows from %s\n", event.Total, c.Input)
		case crawl.ProgressSkipped:
			fmt.Fprintf(deps.Stdout, "[%d/%d] row %d skipped: %s\n",
				event.Completed, event.Total, event.Row.Index, parcontact.ErrorMessage(event.Error))
		case crawl.ProgressProcessed:
			r := event.Result
			fmt.Fprintf(deps.Stdout, "[%d/%d] row %d %s: %s | %s | %s\n",
				event.Completed, event.Total, event.Row.Index, label, r.General, r.Pedagogical, r.Admin)
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "[%d/%d] row %d %s: %v\n",
				event.Completed, event.Total, event.Row.Index, label, event.Error)
		case crawl.ProgressDuplicate:
			fmt.Fprintf(deps.Stderr, "  row %d repeats an earlier URL\n", event.Row.Index)
		case crawl.ProgressCheckpoint:
			fmt.Fprintf(deps.Stdout, "  checkpoint: %d rows saved\n", event.Completed)
		case crawl.ProgressPaused:
			fmt.Fprintf(deps.Stdout, "  pausing %s\n", c.Pause)
		case crawl.ProgressFinished:
			// Summary printed after the batch completes
		}
	}
}
