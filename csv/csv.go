// Package csv reads input sheets exported as CSV and writes results as CSV.
//
// Files exported by spreadsheet software in French locales use a semicolon
// separator; the separator is detected from the first line. A leading UTF-8
// byte order mark is ignored on input and written on output so that
// spreadsheet software opens accented headers correctly.
package csv

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"io"
)

var bom = []byte("\xef\xbb\xbf")

// newReader returns a csv.Reader over r with the detected separator.
func newReader(r io.Reader) (*csv.Reader, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(4096)
	if err != nil && err != io.EOF {
		return nil, err
	}
	if bytes.HasPrefix(head, bom) {
		head = head[len(bom):]
		if _, err := br.Discard(len(bom)); err != nil {
			return nil, err
		}
	}
	if i := bytes.IndexByte(head, '\n'); i >= 0 {
		head = head[:i]
	}

	cr := csv.NewReader(br)
	if bytes.Count(head, []byte{';'}) > bytes.Count(head, []byte{','}) {
		cr.Comma = ';'
	}
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return cr, nil
}
