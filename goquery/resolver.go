package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/parcontact"
)

var _ parcontact.SiteResolver = (*Resolver)(nil)

// Resolver finds the institution's website among the links of a listing.
// The first absolute http(s) link whose host is outside the excluded domains
// wins.
type Resolver struct {
	ExcludedDomains []string
}

// NewResolver creates a Resolver that ignores links to the catalog itself
// and to government portals.
func NewResolver() *Resolver {
	return &Resolver{
		ExcludedDomains: []string{parcontact.CatalogDomain, parcontact.GovernmentDomain},
	}
}

// ResolveOfficialSite returns the first external link of html.
func (r *Resolver) ResolveOfficialSite(html string) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", false
	}

	var site string
	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, _ := sel.Attr("href")
		href = strings.TrimSpace(href)
		if r.isExternal(href) {
			site = href
			return false
		}
		return true
	})
	return site, site != ""
}

func (r *Resolver) isExternal(href string) bool {
	u, err := url.Parse(href)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return false
	}
	for _, domain := range r.ExcludedDomains {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return false
		}
	}
	return true
}
