package mock

import (
	"context"

	"github.com/fwojciec/parcontact"
)

var _ parcontact.ResultSink = (*ResultSink)(nil)

// ResultSink is a mock implementation of parcontact.ResultSink.
type ResultSink struct {
	AppendFn func(ctx context.Context, result *parcontact.Result) error
	FlushFn  func(ctx context.Context) error
	CloseFn  func() error
}

func (s *ResultSink) Append(ctx context.Context, result *parcontact.Result) error {
	return s.AppendFn(ctx, result)
}

func (s *ResultSink) Flush(ctx context.Context) error {
	return s.FlushFn(ctx)
}

func (s *ResultSink) Close() error {
	return s.CloseFn()
}
