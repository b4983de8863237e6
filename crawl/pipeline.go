package crawl

import (
	"context"
	"net/url"
	"time"

	"github.com/fwojciec/parcontact"
)

// MaxSiteEmails is the number of addresses kept from an institution website.
const MaxSiteEmails = 3

var _ parcontact.ContactExtractor = (*Pipeline)(nil)

// Pipeline extracts the contacts of one listing page. It reads the contact
// section of the listing and, when neither a pedagogical nor an
// administrative address is found there, scans the institution's website.
type Pipeline struct {
	// Fetcher retrieves listing pages.
	Fetcher parcontact.Fetcher

	// SiteFetcher retrieves institution websites. Defaults to Fetcher.
	SiteFetcher parcontact.Fetcher

	Locator  parcontact.ContactLocator
	Resolver parcontact.SiteResolver
	Renderer parcontact.TextRenderer

	// RateLimiter, if set, is waited on before every request.
	RateLimiter parcontact.DomainLimiter

	// Now defaults to time.Now.
	Now func() time.Time
}

// ExtractContacts runs the pipeline for row. Fetch failures are captured in
// the result; only context cancellation is returned as an error.
func (p *Pipeline) ExtractContacts(ctx context.Context, row parcontact.Row) (*parcontact.Result, error) {
	html, err := p.fetch(ctx, p.Fetcher, row.URL)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return &parcontact.Result{
			RowIndex:    row.Index,
			URL:         row.URL,
			General:     parcontact.FetchFailed,
			Pedagogical: parcontact.FetchFailed,
			Admin:       parcontact.FetchFailed,
			Status:      parcontact.StatusProcessed,
			FetchError:  err.Error(),
			Timestamp:   p.now(),
		}, nil
	}

	contacts := parcontact.NoContacts()
	if section, ok := p.Locator.FindContactSection(html); ok {
		contacts = parcontact.Classify(section.Text, section.Emails)
	}

	if contacts.Pedagogical == parcontact.NotFound && contacts.Admin == parcontact.NotFound {
		if emails := p.officialSiteEmails(ctx, html); len(emails) > 0 {
			contacts.Pedagogical = emails[0]
			contacts.Admin = emails[0]
			if len(emails) > 1 {
				contacts.Admin = emails[1]
			}
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	return &parcontact.Result{
		RowIndex:    row.Index,
		URL:         row.URL,
		General:     contacts.General,
		Pedagogical: contacts.Pedagogical,
		Admin:       contacts.Admin,
		Status:      parcontact.StatusProcessed,
		Timestamp:   p.now(),
	}, nil
}

// officialSiteEmails returns up to MaxSiteEmails addresses from the
// institution website linked by the listing. Failures yield nil.
func (p *Pipeline) officialSiteEmails(ctx context.Context, listingHTML string) []string {
	site, ok := p.Resolver.ResolveOfficialSite(listingHTML)
	if !ok {
		return nil
	}

	fetcher := p.SiteFetcher
	if fetcher == nil {
		fetcher = p.Fetcher
	}
	html, err := p.fetch(ctx, fetcher, site)
	if err != nil {
		return nil
	}

	emails := parcontact.ExtractEmails(p.Renderer.RenderText(html))
	if len(emails) > MaxSiteEmails {
		emails = emails[:MaxSiteEmails]
	}
	return emails
}

func (p *Pipeline) fetch(ctx context.Context, f parcontact.Fetcher, rawURL string) (string, error) {
	if p.RateLimiter != nil {
		if err := p.RateLimiter.Wait(ctx, hostOf(rawURL)); err != nil {
			return "", err
		}
	}
	return f.Fetch(ctx, rawURL)
}

func (p *Pipeline) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

// hostOf returns the host of rawURL, or rawURL itself if it does not parse.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Hostname()
}
