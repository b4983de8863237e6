package parcontact_test

import (
	"testing"

	"github.com/fwojciec/parcontact"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	t.Run("no emails leaves every role not found", func(t *testing.T) {
		t.Parallel()

		got := parcontact.Classify("Contact pédagogique", nil)

		assert.Equal(t, parcontact.NoContacts(), got)
	})

	t.Run("single email without keywords is pedagogical", func(t *testing.T) {
		t.Parallel()

		got := parcontact.Classify("Pour toute question : info@lycee.fr", []string{"info@lycee.fr"})

		assert.Equal(t, parcontact.Contacts{
			General:     parcontact.NotFound,
			Pedagogical: "info@lycee.fr",
			Admin:       parcontact.NotFound,
		}, got)
	})

	t.Run("two emails without keywords are assigned by position", func(t *testing.T) {
		t.Parallel()

		got := parcontact.Classify("a@uni.fr b@uni.fr", []string{"a@uni.fr", "b@uni.fr"})

		assert.Equal(t, parcontact.NotFound, got.General)
		assert.Equal(t, "a@uni.fr", got.Pedagogical)
		assert.Equal(t, "b@uni.fr", got.Admin)
	})

	t.Run("keywords assign pedagogical then administrative", func(t *testing.T) {
		t.Parallel()

		text := "Contact pédagogique: prof@uni.fr Contact administratif: admin@uni.fr"
		got := parcontact.Classify(text, []string{"prof@uni.fr", "admin@uni.fr"})

		assert.Equal(t, parcontact.Contacts{
			General:     parcontact.NotFound,
			Pedagogical: "prof@uni.fr",
			Admin:       "admin@uni.fr",
		}, got)
	})

	t.Run("keywords apply to the whole section regardless of proximity", func(t *testing.T) {
		t.Parallel()

		// Both keywords sit after the two addresses.
		text := "a@uni.fr ... b@uni.fr ... (responsable pédagogique, service administratif)"
		got := parcontact.Classify(text, []string{"a@uni.fr", "b@uni.fr"})

		assert.Equal(t, "a@uni.fr", got.Pedagogical)
		assert.Equal(t, "b@uni.fr", got.Admin)
	})

	t.Run("matches keywords without accent and in upper case", func(t *testing.T) {
		t.Parallel()

		got := parcontact.Classify("EQUIPE PEDAGOGIQUE : x@y.fr", []string{"x@y.fr"})

		assert.Equal(t, "x@y.fr", got.Pedagogical)
	})

	t.Run("matches decomposed accents", func(t *testing.T) {
		t.Parallel()

		got := parcontact.Classify("Responsable pe\u0301dagogique x@y.fr", []string{"x@y.fr"})

		assert.Equal(t, "x@y.fr", got.Pedagogical)
	})

	t.Run("administration keyword fills admin and leaves pedagogical to position", func(t *testing.T) {
		t.Parallel()

		text := "Administration : scol@iut.fr"
		got := parcontact.Classify(text, []string{"scol@iut.fr"})

		assert.Equal(t, "scol@iut.fr", got.Admin)
		assert.Equal(t, parcontact.NotFound, got.Pedagogical)
		assert.Equal(t, parcontact.NotFound, got.General)
	})

	t.Run("extra emails of a keyword section go to general first", func(t *testing.T) {
		t.Parallel()

		text := "Contact pédagogique / administratif"
		got := parcontact.Classify(text, []string{"a@u.fr", "b@u.fr", "c@u.fr"})

		assert.Equal(t, parcontact.Contacts{
			General:     "c@u.fr",
			Pedagogical: "a@u.fr",
			Admin:       "b@u.fr",
		}, got)
	})

	t.Run("pedagogical keyword with three emails uses the leftover for admin", func(t *testing.T) {
		t.Parallel()

		got := parcontact.Classify("Contact pédagogique", []string{"a@u.fr", "b@u.fr", "c@u.fr"})

		assert.Equal(t, parcontact.Contacts{
			General:     "b@u.fr",
			Pedagogical: "a@u.fr",
			Admin:       "c@u.fr",
		}, got)
	})

	t.Run("pedagogical keyword with two emails reuses the second for admin", func(t *testing.T) {
		t.Parallel()

		got := parcontact.Classify("Contact pédagogique", []string{"a@u.fr", "b@u.fr"})

		assert.Equal(t, parcontact.Contacts{
			General:     "b@u.fr",
			Pedagogical: "a@u.fr",
			Admin:       "b@u.fr",
		}, got)
	})

	t.Run("administrative keyword with two emails reuses the first for pedagogical", func(t *testing.T) {
		t.Parallel()

		got := parcontact.Classify("Service administratif", []string{"a@u.fr", "b@u.fr"})

		assert.Equal(t, parcontact.Contacts{
			General:     "b@u.fr",
			Pedagogical: "a@u.fr",
			Admin:       "a@u.fr",
		}, got)
	})
}
