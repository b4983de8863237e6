package crawl_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/parcontact"
	"github.com/fwojciec/parcontact/crawl"
	"github.com/fwojciec/parcontact/goquery"
	"github.com/fwojciec/parcontact/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingURL = "https://dossierappel.parcoursup.fr/Candidats/public/fiches/afficherFicheFormation?g_ta_cod=43102"

var fixedTime = time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

// newPipeline returns a pipeline with the real HTML components and fetchers
// serving pages from a map.
func newPipeline(pages map[string]string) *crawl.Pipeline {
	return &crawl.Pipeline{
		Fetcher: &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				html, ok := pages[url]
				if !ok {
					return "", parcontact.Errorf(parcontact.ENETWORK, "HTTP 404 for %s", url)
				}
				return html, nil
			},
		},
		Locator:  goquery.NewLocator(),
		Resolver: goquery.NewResolver(),
		Renderer: goquery.NewRenderer(),
		Now:      func() time.Time { return fixedTime },
	}
}

func TestPipeline_ExtractContacts(t *testing.T) {
	t.Parallel()

	t.Run("classifies the contact section of a listing", func(t *testing.T) {
		t.Parallel()

		p := newPipeline(map[string]string{
			listingURL: `<html><body>
				<section>
					<div>
						<h2>Contacter et échanger avec l'établissement</h2>
						<p>Contact pédagogique: prof@uni.fr Contact administratif: admin@uni.fr</p>
					</div>
				</section>
			</body></html>`,
		})

		result, err := p.ExtractContacts(context.Background(), parcontact.Row{Index: 5, URL: listingURL})

		require.NoError(t, err)
		assert.Equal(t, &parcontact.Result{
			RowIndex:    5,
			URL:         listingURL,
			General:     parcontact.NotFound,
			Pedagogical: "prof@uni.fr",
			Admin:       "admin@uni.fr",
			Status:      parcontact.StatusProcessed,
			Timestamp:   fixedTime,
		}, result)
	})

	t.Run("captures a listing fetch failure in the result", func(t *testing.T) {
		t.Parallel()

		p := newPipeline(map[string]string{})

		result, err := p.ExtractContacts(context.Background(), parcontact.Row{Index: 7, URL: listingURL})

		require.NoError(t, err)
		assert.Equal(t, parcontact.StatusProcessed, result.Status)
		assert.Equal(t, parcontact.FetchFailed, result.General)
		assert.Equal(t, parcontact.FetchFailed, result.Pedagogical)
		assert.Equal(t, parcontact.FetchFailed, result.Admin)
		assert.Contains(t, result.FetchError, "HTTP 404")
	})

	t.Run("falls back to the official site", func(t *testing.T) {
		t.Parallel()

		p := newPipeline(map[string]string{
			listingURL: `<html><body>
				<h2>Contacter et échanger avec l'établissement</h2>
				<a href="https://www.parcoursup.fr/aide">Aide</a>
				<a href="https://www.education.gouv.fr">Ministère</a>
				<a href="https://www.iut-exemple.fr">Site de l'établissement</a>
			</body></html>`,
			"https://www.iut-exemple.fr": `<html><body>
				<p>scolarite@iut-exemple.fr</p>
				<p>direction@iut-exemple.fr</p>
				<p>accueil@iut-exemple.fr</p>
				<p>info@iut-exemple.fr</p>
			</body></html>`,
		})

		result, err := p.ExtractContacts(context.Background(), parcontact.Row{Index: 2, URL: listingURL})

		require.NoError(t, err)
		assert.Equal(t, parcontact.NotFound, result.General)
		assert.Equal(t, "scolarite@iut-exemple.fr", result.Pedagogical)
		assert.Equal(t, "direction@iut-exemple.fr", result.Admin)
		assert.Equal(t, parcontact.StatusProcessed, result.Status)
	})

	t.Run("reuses a single site email for both roles", func(t *testing.T) {
		t.Parallel()

		p := newPipeline(map[string]string{
			listingURL:              `<html><body><a href="https://lycee.example">Site</a></body></html>`,
			"https://lycee.example": `<html><body>Écrivez-nous: contact@lycee.example</body></html>`,
		})

		result, err := p.ExtractContacts(context.Background(), parcontact.Row{Index: 3, URL: listingURL})

		require.NoError(t, err)
		assert.Equal(t, "contact@lycee.example", result.Pedagogical)
		assert.Equal(t, "contact@lycee.example", result.Admin)
	})

	t.Run("swallows official site failures", func(t *testing.T) {
		t.Parallel()

		p := newPipeline(map[string]string{
			listingURL: `<html><body><a href="https://down.example">Site</a></body></html>`,
		})

		result, err := p.ExtractContacts(context.Background(), parcontact.Row{Index: 3, URL: listingURL})

		require.NoError(t, err)
		assert.Equal(t, parcontact.NotFound, result.Pedagogical)
		assert.Equal(t, parcontact.NotFound, result.Admin)
		assert.Empty(t, result.FetchError)
	})

	t.Run("skips the fallback when the section has a pedagogical contact", func(t *testing.T) {
		t.Parallel()

		var fetches atomic.Int32
		p := &crawl.Pipeline{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					fetches.Add(1)
					return "<html></html>", nil
				},
			},
			Locator: &mock.ContactLocator{
				FindContactSectionFn: func(_ string) (*parcontact.ContactSection, bool) {
					return &parcontact.ContactSection{
						Text:   "Responsable: resp@uni.fr",
						Emails: []string{"resp@uni.fr"},
					}, true
				},
			},
			Resolver: &mock.SiteResolver{
				ResolveOfficialSiteFn: func(_ string) (string, bool) {
					t.Fatal("resolver should not be called")
					return "", false
				},
			},
		}

		result, err := p.ExtractContacts(context.Background(), parcontact.Row{Index: 2, URL: listingURL})

		require.NoError(t, err)
		assert.Equal(t, "resp@uni.fr", result.Pedagogical)
		assert.Equal(t, int32(1), fetches.Load())
	})

	t.Run("uses the site fetcher for the official site", func(t *testing.T) {
		t.Parallel()

		var siteURL string
		p := newPipeline(map[string]string{
			listingURL: `<html><body><a href="https://univ.example/">Site</a></body></html>`,
		})
		p.SiteFetcher = &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				siteURL = url
				return "<p>ufr@univ.example</p>", nil
			},
		}

		result, err := p.ExtractContacts(context.Background(), parcontact.Row{Index: 2, URL: listingURL})

		require.NoError(t, err)
		assert.Equal(t, "https://univ.example/", siteURL)
		assert.Equal(t, "ufr@univ.example", result.Pedagogical)
	})

	t.Run("waits on the rate limiter per host", func(t *testing.T) {
		t.Parallel()

		var domains []string
		p := newPipeline(map[string]string{
			listingURL:             `<html><body><a href="https://univ.example">Site</a></body></html>`,
			"https://univ.example": `<p>ufr@univ.example</p>`,
		})
		p.RateLimiter = &mock.DomainLimiter{
			WaitFn: func(_ context.Context, domain string) error {
				domains = append(domains, domain)
				return nil
			},
		}

		_, err := p.ExtractContacts(context.Background(), parcontact.Row{Index: 2, URL: listingURL})

		require.NoError(t, err)
		assert.Equal(t, []string{"dossierappel.parcoursup.fr", "univ.example"}, domains)
	})

	t.Run("returns the context error when canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		p := &crawl.Pipeline{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, _ string) (string, error) {
					cancel()
					return "", ctx.Err()
				},
			},
		}

		result, err := p.ExtractContacts(ctx, parcontact.Row{Index: 2, URL: listingURL})

		require.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, result)
	})
}
