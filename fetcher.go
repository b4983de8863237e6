package parcontact

import "context"

// Fetcher retrieves the HTML body of a page.
type Fetcher interface {
	// Fetch performs a single GET and returns the body decoded as UTF-8.
	// Connection failures, timeouts and non-success statuses return an
	// ENETWORK error. Implementations do not retry.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)
}
