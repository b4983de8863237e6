package parcontact

import "strings"

// Report summarizes a results file.
type Report struct {
	// Total counts every result row.
	Total int

	// WithEmail counts processed rows with a pedagogical or administrative
	// address.
	WithEmail int

	Errors  int
	Skipped int
}

// NewReport tallies results.
func NewReport(results []*Result) *Report {
	r := &Report{Total: len(results)}
	for _, result := range results {
		switch result.Status {
		case StatusProcessed:
			if result.HasEmail() {
				r.WithEmail++
			}
		case StatusError:
			r.Errors++
		case StatusSkipped:
			r.Skipped++
		}
	}
	return r
}

// SuccessRate returns the share of rows with an email, between 0 and 1.
func (r *Report) SuccessRate() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.WithEmail) / float64(r.Total)
}

// ParseStatus reads a status column value as written by StatusText.
func ParseStatus(s string) (Status, string) {
	s = strings.TrimSpace(s)
	switch {
	case s == string(StatusProcessed):
		return StatusProcessed, ""
	case s == string(StatusSkipped):
		return StatusSkipped, ""
	case strings.HasPrefix(s, string(StatusError)):
		msg := strings.TrimPrefix(s, string(StatusError))
		return StatusError, strings.TrimSpace(strings.TrimPrefix(msg, ":"))
	}
	return Status(s), ""
}
