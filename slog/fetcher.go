// Package slog provides logging decorators for parcontact services and the
// logger setup of the command line tool.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/parcontact"
)

// Ensure LoggingFetcher implements parcontact.Fetcher.
var _ parcontact.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging. Successful fetches are logged
// at debug level, failures at warn level.
type LoggingFetcher struct {
	next   parcontact.Fetcher
	logger *slog.Logger
	op     string
}

// NewLoggingFetcher creates a new LoggingFetcher. op names the operation in
// log records, e.g. "fetch listing".
func NewLoggingFetcher(next parcontact.Fetcher, logger *slog.Logger, op string) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger, op: op}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		level := slog.LevelDebug
		if err != nil {
			level = slog.LevelWarn
		}
		f.logger.Log(ctx, level, f.op,
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}
