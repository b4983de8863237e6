package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/parcontact"
	"github.com/fwojciec/parcontact/csv"
	"github.com/fwojciec/parcontact/etree"
	"github.com/fwojciec/parcontact/sqlite"
)

// Extensions of the supported sheet formats.
const (
	extCSV = ".csv"
	extXML = ".xml"
	extDB  = ".db"
)

// ResultsPrefix names output files created without --output.
const ResultsPrefix = "contacts_extraits_"

func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// readRows reads the listing URLs of an input sheet.
func readRows(path, column string, startRow int) ([]parcontact.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if ext(path) == extXML {
		return etree.ReadRows(f, column, startRow)
	}
	return csv.ReadRows(f, column, startRow)
}

// readColumns describes the columns of an input sheet.
func readColumns(path string, samples int) ([]*parcontact.Column, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if ext(path) == extXML {
		return etree.Columns(f, samples)
	}
	return csv.Columns(f, samples)
}

// readResults reads a results sheet written by a csv or etree sink.
func readResults(path string) ([]*parcontact.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch ext(path) {
	case extCSV:
		return csv.ReadResults(f)
	case extXML:
		return etree.ReadResults(f)
	default:
		return nil, parcontact.Errorf(parcontact.EINVALID, "unsupported results format %q", filepath.Ext(path))
	}
}

// defaultOutput names the output file of a run started now.
func defaultOutput(deps *Dependencies) string {
	return ResultsPrefix + deps.Now().Format("20060102_150405") + extCSV
}

// output is an open result sink. finish records the run totals and releases
// every resource.
type output struct {
	sink   parcontact.ResultSink
	finish func(summary *parcontact.Summary) error
}

// openOutput opens the sink matching the extension of path.
func openOutput(ctx context.Context, deps *Dependencies, path, input string) (*output, error) {
	switch ext(path) {
	case extCSV:
		sink, err := csv.NewSink(path)
		if err != nil {
			return nil, err
		}
		return &output{sink: sink, finish: func(*parcontact.Summary) error { return sink.Close() }}, nil

	case extXML:
		sink, err := etree.NewSink(path)
		if err != nil {
			return nil, err
		}
		return &output{sink: sink, finish: func(*parcontact.Summary) error { return sink.Close() }}, nil

	case extDB:
		db := sqlite.NewDB(path)
		if err := db.Open(); err != nil {
			return nil, err
		}
		runs := sqlite.NewRunService(db)
		runs.Now = deps.Now
		run := &parcontact.Run{Input: input}
		if err := runs.CreateRun(ctx, run); err != nil {
			db.Close()
			return nil, err
		}
		fmt.Fprintf(deps.Stdout, "Run %s\n", run.ID)

		store := sqlite.NewResultStore(db, run.ID)
		return &output{sink: store, finish: func(summary *parcontact.Summary) error {
			defer db.Close()
			store.Close()
			return runs.FinishRun(context.WithoutCancel(ctx), run.ID, summary)
		}}, nil

	default:
		return nil, parcontact.Errorf(parcontact.EINVALID, "unsupported output format %q (use .csv, .xml or .db)", filepath.Ext(path))
	}
}
