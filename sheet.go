package parcontact

import (
	"strconv"
	"strings"
	"time"
)

// ParseResults reads a results sheet given as records, the first record
// being the ResultColumns header. Columns are located by header name, so
// sheets reordered in spreadsheet software still load. Timestamps are read
// in the local time zone.
func ParseResults(records [][]string) ([]*Result, error) {
	if len(records) == 0 {
		return nil, Errorf(EINVALID, "empty results sheet")
	}

	cols := make([]int, len(ResultColumns))
	for i, name := range ResultColumns {
		col := headerIndex(records[0], name)
		if col < 0 {
			return nil, Errorf(EPARSE, "results sheet has no %q column", name)
		}
		cols[i] = col
	}
	cell := func(record []string, i int) string {
		if cols[i] < len(record) {
			return strings.TrimSpace(record[cols[i]])
		}
		return ""
	}

	results := make([]*Result, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) == 0 {
			continue
		}
		index, err := strconv.Atoi(cell(record, 0))
		if err != nil {
			return nil, Errorf(EPARSE, "invalid row number %q", cell(record, 0))
		}
		status, message := ParseStatus(cell(record, 5))
		result := &Result{
			RowIndex:    index,
			URL:         cell(record, 1),
			General:     cell(record, 2),
			Pedagogical: cell(record, 3),
			Admin:       cell(record, 4),
			Status:      status,
			Message:     message,
		}
		if ts, err := time.ParseInLocation(TimeLayout, cell(record, 6), time.Local); err == nil {
			result.Timestamp = ts
		}
		results = append(results, result)
	}
	return results, nil
}

func headerIndex(header []string, name string) int {
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}
