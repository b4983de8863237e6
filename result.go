package parcontact

import (
	"context"
	"strconv"
	"time"
)

// Sentinel values written in place of an email address.
const (
	// NotFound marks a role for which no email was found.
	NotFound = "Non trouvé"

	// FetchFailed marks every role of a row whose listing page could not be
	// retrieved, or whose processing failed unexpectedly.
	FetchFailed = "Erreur"

	// InvalidURL marks every role of a row that was skipped by validation.
	InvalidURL = "URL invalide"
)

// TimeLayout is the format of the Timestamp column of a results sheet.
const TimeLayout = "2006-01-02 15:04:05"

// ResultColumns is the header row of a results sheet.
var ResultColumns = []string{
	"Ligne",
	"URL",
	"Contact Général",
	"Mail Pédagogique",
	"Mail Administratif",
	"Statut",
	"Timestamp",
}

// Status is the outcome of processing one input row.
type Status string

// Status values as they appear in the output.
const (
	StatusProcessed Status = "Traité"
	StatusSkipped   Status = "Skipped"
	StatusError     Status = "Erreur"
)

// Row is one input row: its spreadsheet row number and the listing URL.
type Row struct {
	Index int
	URL   string
}

// Result holds the contacts extracted for one row.
type Result struct {
	RowIndex    int
	URL         string
	General     string
	Pedagogical string
	Admin       string
	Status      Status

	// Message explains an Error status.
	Message string

	// FetchError records a listing fetch failure captured inside the
	// pipeline. The row may still be reported as Processed.
	FetchError string

	Timestamp time.Time
}

// StatusText renders the status column: "Erreur: <message>" for errors.
func (r *Result) StatusText() string {
	if r.Status == StatusError {
		return string(StatusError) + ": " + r.Message
	}
	return string(r.Status)
}

// Fields returns the columns of r in ResultColumns order.
func (r *Result) Fields() []string {
	return []string{
		strconv.Itoa(r.RowIndex),
		r.URL,
		r.General,
		r.Pedagogical,
		r.Admin,
		r.StatusText(),
		r.Timestamp.Format(TimeLayout),
	}
}

// HasEmail reports whether the pedagogical or administrative role holds an
// address rather than a sentinel.
func (r *Result) HasEmail() bool {
	return IsEmail(r.Pedagogical) || IsEmail(r.Admin)
}

// ContactExtractor runs the extraction pipeline for a single listing URL.
type ContactExtractor interface {
	// ExtractContacts never reports per-page failures as errors: they are
	// captured in the returned Result. An error is returned only when the
	// context is done or something unexpected happened.
	ExtractContacts(ctx context.Context, row Row) (*Result, error)
}

// ResultSink receives results in input order and persists them durably on
// Flush. It has a single writer.
type ResultSink interface {
	// Append buffers a result.
	Append(ctx context.Context, result *Result) error

	// Flush persists every appended result (checkpoint).
	Flush(ctx context.Context) error

	// Close releases the underlying resources. It does not flush.
	Close() error
}

// Summary reports the totals of a batch run.
type Summary struct {
	Processed  int
	Errors     int
	Skipped    int
	Duplicates int
}

// Total returns the number of rows that produced a result.
func (s *Summary) Total() int {
	return s.Processed + s.Errors + s.Skipped
}
