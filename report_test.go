package parcontact_test

import (
	"testing"

	"github.com/fwojciec/parcontact"
	"github.com/stretchr/testify/assert"
)

func TestNewReport(t *testing.T) {
	t.Parallel()

	r := parcontact.NewReport([]*parcontact.Result{
		{Status: parcontact.StatusProcessed, Pedagogical: "prof@uni.fr", Admin: parcontact.NotFound},
		{Status: parcontact.StatusProcessed, Pedagogical: parcontact.NotFound, Admin: "admin@uni.fr"},
		{Status: parcontact.StatusProcessed, Pedagogical: parcontact.NotFound, Admin: parcontact.NotFound},
		{Status: parcontact.StatusProcessed, Pedagogical: parcontact.FetchFailed, Admin: parcontact.FetchFailed},
		{Status: parcontact.StatusError, Message: "boom"},
		{Status: parcontact.StatusSkipped},
	})

	assert.Equal(t, &parcontact.Report{Total: 6, WithEmail: 2, Errors: 1, Skipped: 1}, r)
	assert.InDelta(t, 2.0/6.0, r.SuccessRate(), 1e-9)
}

func TestReport_SuccessRate_Empty(t *testing.T) {
	t.Parallel()

	assert.Zero(t, parcontact.NewReport(nil).SuccessRate())
}

func TestParseStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		status  parcontact.Status
		message string
	}{
		{"Traité", parcontact.StatusProcessed, ""},
		{" Skipped ", parcontact.StatusSkipped, ""},
		{"Erreur: HTTP 503", parcontact.StatusError, "HTTP 503"},
		{"Erreur", parcontact.StatusError, ""},
	}
	for _, tt := range tests {
		status, message := parcontact.ParseStatus(tt.in)
		assert.Equal(t, tt.status, status, tt.in)
		assert.Equal(t, tt.message, message, tt.in)
	}
}
