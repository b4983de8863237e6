package crawl

import (
	"context"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/fwojciec/parcontact"
)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelay is the first backoff delay; it doubles on each retry.
const DefaultRetryDelay = 2 * time.Second

var _ parcontact.Fetcher = (*RetryFetcher)(nil)

// RetryFetcher retries network failures of the wrapped fetcher with
// exponential backoff. Other errors, including cancellation, are returned
// immediately.
type RetryFetcher struct {
	next    parcontact.Fetcher
	retries int
	delay   time.Duration

	// Logger, if set, is called before each retry.
	Logger LogFunc
}

// NewRetryFetcher wraps next with up to retries additional attempts.
func NewRetryFetcher(next parcontact.Fetcher, retries int, delay time.Duration) *RetryFetcher {
	if retries < 0 {
		retries = 0
	}
	return &RetryFetcher{next: next, retries: retries, delay: delay}
}

// Fetch calls the wrapped fetcher until it succeeds, fails with a
// non-network error, or runs out of attempts.
func (f *RetryFetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.retries == 0 {
		return f.next.Fetch(ctx, url)
	}

	var html string
	err := retry.Do(
		func() error {
			body, err := f.next.Fetch(ctx, url)
			if err != nil {
				return err
			}
			html = body
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(uint(f.retries+1)),
		retry.Delay(f.delay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return ctx.Err() == nil && parcontact.ErrorCode(err) == parcontact.ENETWORK
		}),
		retry.OnRetry(func(n uint, err error) {
			if f.Logger != nil && int(n) < f.retries {
				f.Logger("  retry %s (attempt %d): %v", url, n+2, err)
			}
		}),
	)
	if err != nil {
		return "", err
	}
	return html, nil
}
