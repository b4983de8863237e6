package parcontact

import (
	"strings"
	"time"
)

// CatalogDomain is the marker an input URL must contain to be processed.
const CatalogDomain = "parcoursup.fr"

// GovernmentDomain hosts the public portals linked from every listing.
const GovernmentDomain = "gouv.fr"

// Default batch settings.
const (
	DefaultDelay           = 1 * time.Second
	DefaultPause           = 10 * time.Second
	DefaultPauseEvery      = 50
	DefaultCheckpointEvery = 100
)

// BatchConfig controls throttling and checkpointing of a batch run.
type BatchConfig struct {
	// DomainMarker must appear in a row's URL for it to be processed.
	DomainMarker string

	// Delay is applied after every processed row.
	Delay time.Duration

	// Pause is applied in addition to Delay after every PauseEvery
	// processed rows.
	Pause      time.Duration
	PauseEvery int

	// CheckpointEvery is the number of processed rows between flushes.
	CheckpointEvery int

	// FetchErrorsAsErrors reports rows whose listing page could not be
	// fetched with StatusError instead of StatusProcessed.
	FetchErrorsAsErrors bool
}

// DefaultBatchConfig returns the settings used for bulk runs against the
// Parcoursup catalog.
func DefaultBatchConfig() BatchConfig {
	return BatchConfig{
		DomainMarker:    CatalogDomain,
		Delay:           DefaultDelay,
		Pause:           DefaultPause,
		PauseEvery:      DefaultPauseEvery,
		CheckpointEvery: DefaultCheckpointEvery,
	}
}

// ValidateURL returns an EINVALID error if rawURL is empty or does not
// contain the domain marker.
func (c BatchConfig) ValidateURL(rawURL string) error {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return Errorf(EINVALID, "missing URL")
	}
	if !strings.Contains(rawURL, c.DomainMarker) {
		return Errorf(EINVALID, "URL %q is not a %s listing", rawURL, c.DomainMarker)
	}
	return nil
}
