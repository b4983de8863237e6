package csv

import (
	"encoding/csv"
	"errors"
	"io"

	"github.com/fwojciec/parcontact"
)

// ReadRows reads the URL column of a CSV sheet. column is a header name or a
// spreadsheet letter; rows numbered below startRow are skipped, row 1 being
// the header.
func ReadRows(r io.Reader, column string, startRow int) ([]parcontact.Row, error) {
	records, err := readAll(r)
	if err != nil {
		return nil, err
	}
	return parcontact.SheetRows(records, column, startRow)
}

// Columns describes the columns of a CSV sheet with up to samples values
// from the first data rows.
func Columns(r io.Reader, samples int) ([]*parcontact.Column, error) {
	records, err := readAll(r)
	if err != nil {
		return nil, err
	}
	return parcontact.SheetColumns(records, samples), nil
}

func readAll(r io.Reader) ([][]string, error) {
	cr, err := newReader(r)
	if err != nil {
		return nil, err
	}
	records, err := cr.ReadAll()
	if err != nil {
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return nil, parcontact.Errorf(parcontact.EPARSE, "line %d: %v", parseErr.Line, parseErr.Err)
		}
		return nil, err
	}
	return records, nil
}
