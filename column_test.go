package parcontact_test

import (
	"testing"

	"github.com/fwojciec/parcontact"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnLetter(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "A", parcontact.ColumnLetter(0))
	assert.Equal(t, "O", parcontact.ColumnLetter(14))
	assert.Equal(t, "Z", parcontact.ColumnLetter(25))
	assert.Equal(t, "AA", parcontact.ColumnLetter(26))
	assert.Equal(t, "AZ", parcontact.ColumnLetter(51))
	assert.Equal(t, "BA", parcontact.ColumnLetter(52))
	assert.Empty(t, parcontact.ColumnLetter(-1))
}

func TestColumnIndex(t *testing.T) {
	t.Parallel()

	header := []string{"Etablissement", " URL Parcoursup ", "Ville"}

	t.Run("matches a header name", func(t *testing.T) {
		t.Parallel()
		i, err := parcontact.ColumnIndex(header, "url parcoursup")
		require.NoError(t, err)
		assert.Equal(t, 1, i)
	})

	t.Run("reads a column letter", func(t *testing.T) {
		t.Parallel()
		i, err := parcontact.ColumnIndex(header, "O")
		require.NoError(t, err)
		assert.Equal(t, 14, i)

		i, err = parcontact.ColumnIndex(header, "ab")
		require.NoError(t, err)
		assert.Equal(t, 27, i)
	})

	t.Run("prefers the header name", func(t *testing.T) {
		t.Parallel()
		i, err := parcontact.ColumnIndex([]string{"Nom", "URL"}, "URL")
		require.NoError(t, err)
		assert.Equal(t, 1, i)
	})

	t.Run("rejects unknown columns", func(t *testing.T) {
		t.Parallel()
		_, err := parcontact.ColumnIndex(header, "Lien fiche")
		assert.Equal(t, parcontact.ENOTFOUND, parcontact.ErrorCode(err))
	})

	t.Run("rejects an empty column", func(t *testing.T) {
		t.Parallel()
		_, err := parcontact.ColumnIndex(header, " ")
		assert.Equal(t, parcontact.EINVALID, parcontact.ErrorCode(err))
	})
}

func TestColumn_HasMarker(t *testing.T) {
	t.Parallel()

	c := &parcontact.Column{Samples: []string{"", "https://dossierappel.parcoursup.fr/fiche?g_ta_cod=1"}}

	assert.True(t, c.HasMarker(parcontact.CatalogDomain))
	assert.False(t, c.HasMarker("onisep.fr"))
}

func TestSheetRows(t *testing.T) {
	t.Parallel()

	records := [][]string{
		{"Nom", "URL"},
		{"IUT", " https://dossierappel.parcoursup.fr/fiche?g_ta_cod=1 "},
		{"Lycée"},
	}

	rows, err := parcontact.SheetRows(records, "B", parcontact.DefaultStartRow)

	require.NoError(t, err)
	assert.Equal(t, []parcontact.Row{
		{Index: 2, URL: "https://dossierappel.parcoursup.fr/fiche?g_ta_cod=1"},
		{Index: 3, URL: ""},
	}, rows)
}

func TestSheetRows_IncludesHeaderFromRowOne(t *testing.T) {
	t.Parallel()

	rows, err := parcontact.SheetRows([][]string{{"URL"}, {"https://x.parcoursup.fr"}}, "A", 1)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, parcontact.Row{Index: 1, URL: "URL"}, rows[0])
}

func TestSheetColumns(t *testing.T) {
	t.Parallel()

	columns := parcontact.SheetColumns([][]string{
		{"Nom"},
		{"IUT", "extra"},
	}, 5)

	require.Len(t, columns, 2)
	assert.Equal(t, "Nom", columns[0].Header)
	assert.Equal(t, []string{"IUT"}, columns[0].Samples)
	assert.Equal(t, "B", columns[1].Letter)
	assert.Empty(t, columns[1].Header)
	assert.Equal(t, []string{"extra"}, columns[1].Samples)
	assert.Nil(t, parcontact.SheetColumns(nil, 5))
}
