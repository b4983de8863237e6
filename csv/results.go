package csv

import (
	"io"

	"github.com/fwojciec/parcontact"
)

// ReadResults reads a results file written by Sink.
func ReadResults(r io.Reader) ([]*parcontact.Result, error) {
	records, err := readAll(r)
	if err != nil {
		return nil, err
	}
	return parcontact.ParseResults(records)
}
