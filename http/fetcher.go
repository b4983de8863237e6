// Package http provides an HTTP-based implementation of parcontact.Fetcher.
package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/parcontact"
	"golang.org/x/net/html/charset"
)

// Default timeouts for listing pages and institution websites.
const (
	DefaultFetchTimeout = 15 * time.Second
	DefaultSiteTimeout  = 10 * time.Second
)

// MaxBodySize caps the number of bytes read from a response.
const MaxBodySize = 10 << 20

// Ensure Fetcher implements parcontact.Fetcher at compile time.
var _ parcontact.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs with a single GET request.
// It does not execute JavaScript and never retries.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (15s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithClient sets the underlying client. Its timeout is replaced by the
// configured one.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		clone := *c
		f.client = &clone
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{}
	}
	f.client.Timeout = f.timeout

	return f
}

// Fetch retrieves the HTML content from the given URL, decoded to UTF-8
// according to the Content-Type header or the document's meta tags.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", parcontact.Errorf(parcontact.EINVALID, "invalid request for %s: %v", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return "", ctxErr
		}
		return "", parcontact.Errorf(parcontact.ENETWORK, "GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", parcontact.Errorf(parcontact.ENETWORK, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := charset.NewReader(io.LimitReader(resp.Body, MaxBodySize), resp.Header.Get("Content-Type"))
	if err != nil {
		return "", parcontact.Errorf(parcontact.ENETWORK, "decode %s: %v", url, err)
	}

	b, err := io.ReadAll(body)
	if err != nil {
		return "", parcontact.Errorf(parcontact.ENETWORK, "read %s: %v", url, err)
	}

	return string(b), nil
}
