package crawl

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/parcontact"
	"golang.org/x/time/rate"
)

var _ parcontact.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter spaces requests to the same host by a minimum interval using
// token buckets with a burst of 1. Listing pages all share the catalog host,
// while each institution website gets its own bucket.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
}

// NewDomainLimiter creates a DomainLimiter allowing rps requests per second
// to each domain. A non-positive rps disables limiting.
func NewDomainLimiter(rps float64) *DomainLimiter {
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
	}
}

// NewIntervalLimiter creates a DomainLimiter allowing one request per
// interval to each domain.
func NewIntervalLimiter(interval time.Duration) *DomainLimiter {
	l := NewDomainLimiter(0)
	if interval > 0 {
		l.limit = rate.Every(interval)
	}
	return l
}

// Wait blocks until the rate limit allows a request to the domain.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	domain = strings.TrimPrefix(strings.ToLower(domain), "www.")

	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(d.limit, 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}
