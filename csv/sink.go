package csv

import (
	"context"
	"encoding/csv"
	"os"

	"github.com/fwojciec/parcontact"
)

var _ parcontact.ResultSink = (*Sink)(nil)

// Sink writes results to a CSV file. Appended results are buffered and
// written, then synced to disk, on Flush.
type Sink struct {
	f       *os.File
	w       *csv.Writer
	pending []*parcontact.Result
}

// NewSink creates or truncates the file at path and writes the header.
func NewSink(path string) (*Sink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if _, err := f.Write(bom); err != nil {
		_ = f.Close()
		return nil, err
	}
	w := csv.NewWriter(f)
	if err := w.Write(parcontact.ResultColumns); err != nil {
		_ = f.Close()
		return nil, err
	}
	return &Sink{f: f, w: w}, nil
}

// Append buffers result until the next Flush.
func (s *Sink) Append(_ context.Context, result *parcontact.Result) error {
	s.pending = append(s.pending, result)
	return nil
}

// Flush writes the buffered results and syncs the file.
func (s *Sink) Flush(_ context.Context) error {
	for _, result := range s.pending {
		if err := s.w.Write(result.Fields()); err != nil {
			return err
		}
	}
	s.w.Flush()
	if err := s.w.Error(); err != nil {
		return err
	}
	if err := s.f.Sync(); err != nil {
		return err
	}
	s.pending = nil
	return nil
}

// Close closes the file without flushing.
func (s *Sink) Close() error {
	return s.f.Close()
}
