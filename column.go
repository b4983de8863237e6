package parcontact

import (
	"strings"
)

// DefaultURLColumn is the column of the listing URLs in the catalog export.
const DefaultURLColumn = "O"

// DefaultStartRow is the first data row; row 1 holds the headers.
const DefaultStartRow = 2

// Column describes one column of an input sheet.
type Column struct {
	// Index is zero-based.
	Index   int
	Letter  string
	Header  string
	Samples []string
}

// HasMarker reports whether any sample value contains marker.
func (c *Column) HasMarker(marker string) bool {
	for _, s := range c.Samples {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}

// ColumnLetter returns the spreadsheet letter of the zero-based column i:
// 0 is "A", 25 is "Z", 26 is "AA".
func ColumnLetter(i int) string {
	if i < 0 {
		return ""
	}
	var b []byte
	for i++; i > 0; i = (i - 1) / 26 {
		b = append([]byte{byte('A' + (i-1)%26)}, b...)
	}
	return string(b)
}

// ColumnIndex resolves column against the header row. A header name matches
// first, ignoring case and surrounding spaces; otherwise column is read as a
// spreadsheet letter. It returns an ENOTFOUND error if neither applies.
func ColumnIndex(header []string, column string) (int, error) {
	name := strings.TrimSpace(column)
	if name == "" {
		return 0, Errorf(EINVALID, "missing column")
	}
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i, nil
		}
	}
	if i, ok := letterIndex(name); ok {
		return i, nil
	}
	return 0, Errorf(ENOTFOUND, "column %q not found", column)
}

// letterIndex parses a spreadsheet column letter of up to three characters.
func letterIndex(s string) (int, bool) {
	if len(s) > 3 {
		return 0, false
	}
	n := 0
	for _, r := range strings.ToUpper(s) {
		if r < 'A' || r > 'Z' {
			return 0, false
		}
		n = n*26 + int(r-'A') + 1
	}
	return n - 1, true
}

// SheetRows reads the URL column of a sheet given as records, the first
// record being the header row. column is resolved with ColumnIndex; records
// numbered below startRow are skipped. Row indexes are 1-based record
// numbers and records missing the column yield an empty URL.
func SheetRows(records [][]string, column string, startRow int) ([]Row, error) {
	if len(records) == 0 {
		return nil, Errorf(EINVALID, "empty sheet")
	}

	col, err := ColumnIndex(records[0], column)
	if err != nil {
		return nil, err
	}

	var rows []Row
	for i, record := range records {
		index := i + 1
		if index < startRow {
			continue
		}
		var url string
		if col < len(record) {
			url = strings.TrimSpace(record[col])
		}
		rows = append(rows, Row{Index: index, URL: url})
	}
	return rows, nil
}

// SheetColumns describes every column of a sheet given as records, with up
// to samples values taken from the records after the header.
func SheetColumns(records [][]string, samples int) []*Column {
	if len(records) == 0 {
		return nil
	}
	samples = max(samples, 0)

	width := 0
	for _, record := range records {
		width = max(width, len(record))
	}

	columns := make([]*Column, width)
	for i := range columns {
		c := &Column{Index: i, Letter: ColumnLetter(i)}
		if i < len(records[0]) {
			c.Header = strings.TrimSpace(records[0][i])
		}
		for _, record := range records[1:min(len(records), samples+1)] {
			var v string
			if i < len(record) {
				v = strings.TrimSpace(record[i])
			}
			c.Samples = append(c.Samples, v)
		}
		columns[i] = c
	}
	return columns
}
