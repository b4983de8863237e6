package parcontact_test

import (
	"testing"

	"github.com/fwojciec/parcontact"
	"github.com/stretchr/testify/assert"
)

func TestBatchConfig_ValidateURL(t *testing.T) {
	t.Parallel()

	cfg := parcontact.DefaultBatchConfig()

	t.Run("accepts catalog listing", func(t *testing.T) {
		t.Parallel()
		err := cfg.ValidateURL("https://dossierappel.parcoursup.fr/Candidats/public/fiches/afficherFicheFormation?g_ta_cod=43102")
		assert.NoError(t, err)
	})

	t.Run("rejects empty URL", func(t *testing.T) {
		t.Parallel()
		err := cfg.ValidateURL("  ")
		assert.Equal(t, parcontact.EINVALID, parcontact.ErrorCode(err))
	})

	t.Run("rejects other domains", func(t *testing.T) {
		t.Parallel()
		err := cfg.ValidateURL("https://example.org/page")
		assert.Equal(t, parcontact.EINVALID, parcontact.ErrorCode(err))
	})
}

func TestDefaultBatchConfig(t *testing.T) {
	t.Parallel()

	cfg := parcontact.DefaultBatchConfig()

	assert.Equal(t, parcontact.CatalogDomain, cfg.DomainMarker)
	assert.Equal(t, parcontact.DefaultDelay, cfg.Delay)
	assert.Equal(t, parcontact.DefaultPause, cfg.Pause)
	assert.Equal(t, 50, cfg.PauseEvery)
	assert.Equal(t, 100, cfg.CheckpointEvery)
	assert.False(t, cfg.FetchErrorsAsErrors)
}
