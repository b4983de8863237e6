package etree

import (
	"context"
	"os"
	"path/filepath"

	"github.com/beevik/etree"
	"github.com/fwojciec/parcontact"
)

// SheetName is the name of the results worksheet.
const SheetName = "Contacts"

var _ parcontact.ResultSink = (*Sink)(nil)

// Sink writes results to a SpreadsheetML workbook. The workbook is kept in
// memory and rewritten as a whole on every Flush, through a temporary file
// renamed over path so that a reader never sees a partial document.
type Sink struct {
	path    string
	doc     *etree.Document
	table   *etree.Element
	pending []*parcontact.Result
}

// NewSink creates the workbook at path with its header row.
func NewSink(path string) (*Sink, error) {
	doc, table := newWorkbook(SheetName)
	appendRow(table, parcontact.ResultColumns)
	doc.Indent(1)

	s := &Sink{path: path, doc: doc, table: table}
	if err := s.write(); err != nil {
		return nil, err
	}
	return s, nil
}

// Append buffers result until the next Flush.
func (s *Sink) Append(_ context.Context, result *parcontact.Result) error {
	s.pending = append(s.pending, result)
	return nil
}

// Flush adds the buffered results to the workbook and saves it.
func (s *Sink) Flush(_ context.Context) error {
	rows := make([]*etree.Element, 0, len(s.pending))
	for _, result := range s.pending {
		rows = append(rows, appendRow(s.table, result.Fields(), 0))
	}
	s.doc.Indent(1)
	if err := s.write(); err != nil {
		for _, row := range rows {
			s.table.RemoveChild(row)
		}
		return err
	}
	s.pending = nil
	return nil
}

// Close discards unflushed results.
func (s *Sink) Close() error {
	s.pending = nil
	return nil
}

func (s *Sink) write() error {
	f, err := os.CreateTemp(filepath.Dir(s.path), "."+filepath.Base(s.path)+".*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer os.Remove(tmp)

	if err := f.Chmod(0o644); err != nil {
		_ = f.Close()
		return err
	}
	if _, err := s.doc.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
