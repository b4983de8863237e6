// Package lru caches fetched pages in memory. Many listings of the same
// institution link to the same website, which is then fetched only once.
package lru

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/fwojciec/parcontact"
)

// DefaultSize is the number of pages kept by default.
const DefaultSize = 256

var _ parcontact.Fetcher = (*CachingFetcher)(nil)

// CachingFetcher remembers successful fetches of the wrapped fetcher.
// Failures are not cached.
type CachingFetcher struct {
	next  parcontact.Fetcher
	cache *lru.Cache[string, string]
}

// NewCachingFetcher creates a CachingFetcher keeping up to size pages.
func NewCachingFetcher(next parcontact.Fetcher, size int) (*CachingFetcher, error) {
	c, err := lru.New[string, string](size)
	if err != nil {
		return nil, parcontact.Errorf(parcontact.EINVALID, "page cache: %v", err)
	}
	return &CachingFetcher{next: next, cache: c}, nil
}

// Fetch returns the cached body for url, or fetches and caches it.
func (f *CachingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	if html, ok := f.cache.Get(url); ok {
		return html, nil
	}
	html, err := f.next.Fetch(ctx, url)
	if err != nil {
		return "", err
	}
	f.cache.Add(url, html)
	return html, nil
}

// Len returns the number of cached pages.
func (f *CachingFetcher) Len() int {
	return f.cache.Len()
}
