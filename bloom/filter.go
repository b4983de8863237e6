// Package bloom detects listing URLs that appear more than once in an input
// sheet using a Bloom filter.
package bloom

import (
	"net/url"
	"strings"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/parcontact"
)

// DefaultFalsePositiveRate is used by NewURLSet.
const DefaultFalsePositiveRate = 0.001

// minCapacity keeps tiny inputs from producing a degenerate filter.
const minCapacity = 1024

var _ parcontact.URLSet = (*URLSet)(nil)

// URLSet remembers listing URLs. URLs are compared after normalization, so
// the same listing written with a different host case, a trailing fragment
// or surrounding spaces is recognized.
type URLSet struct {
	f *bloom.BloomFilter
}

// NewURLSet creates a URLSet sized for rows expected URLs.
func NewURLSet(rows int) *URLSet {
	return NewURLSetWithRate(rows, DefaultFalsePositiveRate)
}

// NewURLSetWithRate creates a URLSet sized for rows expected URLs with the
// given false positive rate.
func NewURLSetWithRate(rows int, fpRate float64) *URLSet {
	n := uint(max(rows, minCapacity))
	return &URLSet{f: bloom.NewWithEstimates(n, fpRate)}
}

// Add adds a URL to the set.
func (s *URLSet) Add(rawURL string) {
	s.f.AddString(normalize(rawURL))
}

// Test returns true if the URL might be in the set.
// False positives are possible; false negatives are not.
func (s *URLSet) Test(rawURL string) bool {
	return s.f.TestString(normalize(rawURL))
}

// EstimatedCount returns the approximate number of distinct URLs added.
func (s *URLSet) EstimatedCount() uint {
	return uint(s.f.ApproximatedSize())
}

// normalize trims rawURL, lowercases its scheme and host and drops the
// fragment. Unparseable input is only trimmed.
func normalize(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""
	u.RawFragment = ""
	return u.String()
}
