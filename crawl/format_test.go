package crawl_test

import (
	"testing"

	"github.com/fwojciec/parcontact/crawl"
	"github.com/stretchr/testify/assert"
)

func TestTruncateURL(t *testing.T) {
	t.Parallel()

	t.Run("returns URL unchanged when shorter than max", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "https://x.com", crawl.TruncateURL("https://x.com", 50))
	})

	t.Run("truncates with ellipsis when longer than max", func(t *testing.T) {
		t.Parallel()
		url := "https://example.com/very/long/path/to/documentation"
		result := crawl.TruncateURL(url, 20)
		assert.Equal(t, ".../to/documentation", result)
		assert.Len(t, result, 20)
	})

	t.Run("returns empty string when maxLen is zero", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, crawl.TruncateURL("https://example.com", 0))
	})

	t.Run("returns prefix when maxLen is tiny", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "htt", crawl.TruncateURL("https://example.com", 3))
	})
}

func TestListingLabel(t *testing.T) {
	t.Parallel()

	t.Run("uses the program code", func(t *testing.T) {
		t.Parallel()
		url := "https://dossierappel.parcoursup.fr/Candidats/public/fiches/afficherFicheFormation?g_ta_cod=43102&typeBac=0&originePc=0"
		assert.Equal(t, "g_ta_cod=43102", crawl.ListingLabel(url, 30))
	})

	t.Run("falls back to the truncated URL", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "...org/page", crawl.ListingLabel("https://example.org/page", 11))
	})
}

func TestFormatPercent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "N/A", crawl.FormatPercent(3, 0))
	assert.Equal(t, "50.0%", crawl.FormatPercent(1, 2))
	assert.Equal(t, "33.3%", crawl.FormatPercent(1, 3))
}
