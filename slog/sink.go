package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/parcontact"
)

// Ensure LoggingSink implements parcontact.ResultSink.
var _ parcontact.ResultSink = (*LoggingSink)(nil)

// LoggingSink wraps a ResultSink and logs every result and checkpoint.
type LoggingSink struct {
	next    parcontact.ResultSink
	logger  *slog.Logger
	pending int
}

// NewLoggingSink creates a new LoggingSink.
func NewLoggingSink(next parcontact.ResultSink, logger *slog.Logger) *LoggingSink {
	return &LoggingSink{next: next, logger: logger}
}

// Append logs the result and delegates to the wrapped sink.
func (s *LoggingSink) Append(ctx context.Context, result *parcontact.Result) error {
	attrs := []any{
		"row", result.RowIndex,
		"url", result.URL,
		"status", string(result.Status),
		"general", result.General,
		"pedagogical", result.Pedagogical,
		"admin", result.Admin,
	}
	level := slog.LevelInfo
	if result.Message != "" {
		attrs = append(attrs, "message", result.Message)
	}
	if result.FetchError != "" {
		attrs = append(attrs, "fetch_err", result.FetchError)
	}
	if result.Status == parcontact.StatusError {
		level = slog.LevelWarn
	}
	s.logger.Log(ctx, level, "result", attrs...)

	if err := s.next.Append(ctx, result); err != nil {
		s.logger.Error("append result", "row", result.RowIndex, "err", err)
		return err
	}
	s.pending++
	return nil
}

// Flush delegates to the wrapped sink and logs the checkpoint.
func (s *LoggingSink) Flush(ctx context.Context) (err error) {
	defer func(begin time.Time, count int) {
		level := slog.LevelInfo
		if err != nil {
			level = slog.LevelError
		}
		s.logger.Log(ctx, level, "checkpoint",
			"count", count,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now(), s.pending)

	if err = s.next.Flush(ctx); err == nil {
		s.pending = 0
	}
	return err
}

// Close delegates to the wrapped sink.
func (s *LoggingSink) Close() error {
	return s.next.Close()
}
