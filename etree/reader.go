package etree

import (
	"io"

	"github.com/beevik/etree"
	"github.com/fwojciec/parcontact"
)

// ReadRows reads the URL column of the first worksheet of a SpreadsheetML
// workbook. column is a header name or a spreadsheet letter; rows numbered
// below startRow are skipped, row 1 being the header.
func ReadRows(r io.Reader, column string, startRow int) ([]parcontact.Row, error) {
	recs, err := readRecords(r)
	if err != nil {
		return nil, err
	}
	return parcontact.SheetRows(recs, column, startRow)
}

// Columns describes the columns of the first worksheet with up to samples
// values from the first data rows.
func Columns(r io.Reader, samples int) ([]*parcontact.Column, error) {
	recs, err := readRecords(r)
	if err != nil {
		return nil, err
	}
	return parcontact.SheetColumns(recs, samples), nil
}

func readRecords(r io.Reader) ([][]string, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, parcontact.Errorf(parcontact.EPARSE, "parsing workbook: %v", err)
	}
	recs, ok := records(doc)
	if !ok {
		return nil, parcontact.Errorf(parcontact.EPARSE, "not a SpreadsheetML workbook")
	}
	return recs, nil
}

// ReadResults reads a results workbook written by Sink.
func ReadResults(r io.Reader) ([]*parcontact.Result, error) {
	recs, err := readRecords(r)
	if err != nil {
		return nil, err
	}
	return parcontact.ParseResults(recs)
}
