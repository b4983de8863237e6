package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/parcontact"
	"github.com/fwojciec/parcontact/crawl"
	"github.com/fwojciec/parcontact/sqlite"
)

// Run executes the report command.
func (c *ReportCmd) Run(deps *Dependencies) error {
	path := c.Results
	if path == "" {
		latest, err := latestResults(c.Dir)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", parcontact.ErrorMessage(err))
			return err
		}
		path = latest
	}

	results, err := c.load(deps, path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", parcontact.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Results: %s\n\n", path)
	for _, r := range results[:min(len(results), c.Samples)] {
		fmt.Fprintf(deps.Stdout, "%4d  %-40s  %s | %s | %s  [%s]\n",
			r.RowIndex, crawl.ListingLabel(r.URL, 40), r.General, r.Pedagogical, r.Admin, r.StatusText())
	}

	report := parcontact.NewReport(results)
	fmt.Fprintf(deps.Stdout, "\nRows: %d\n", report.Total)
	fmt.Fprintf(deps.Stdout, "With email: %d (%s)\n", report.WithEmail, crawl.FormatPercent(report.WithEmail, report.Total))
	fmt.Fprintf(deps.Stdout, "Errors: %d\n", report.Errors)
	fmt.Fprintf(deps.Stdout, "Skipped: %d\n", report.Skipped)
	return nil
}

func (c *ReportCmd) load(deps *Dependencies, path string) ([]*parcontact.Result, error) {
	if ext(path) != extDB {
		return readResults(path)
	}

	db := sqlite.NewDB(path)
	if err := db.Open(); err != nil {
		return nil, err
	}
	defer db.Close()
	runs := sqlite.NewRunService(db)

	runID := c.RunID
	if runID == "" {
		latest, err := runs.FindRuns(deps.Ctx, parcontact.RunFilter{Limit: 1})
		if err != nil {
			return nil, err
		}
		if len(latest) == 0 {
			return nil, parcontact.Errorf(parcontact.ENOTFOUND, "no runs in %s", path)
		}
		runID = latest[0].ID
	} else if _, err := runs.FindRunByID(deps.Ctx, runID); err != nil {
		return nil, err
	}

	return runs.FindResults(deps.Ctx, runID)
}

// latestResults returns the most recently modified results file in dir.
func latestResults(dir string) (string, error) {
	var latest string
	var latestMod int64
	for _, e := range []string{extCSV, extXML, extDB} {
		matches, err := filepath.Glob(filepath.Join(dir, ResultsPrefix+"*"+e))
		if err != nil {
			return "", err
		}
		for _, m := range matches {
			info, err := os.Stat(m)
			if err != nil {
				continue
			}
			if mod := info.ModTime().UnixNano(); latest == "" || mod > latestMod || (mod == latestMod && m > latest) {
				latest, latestMod = m, mod
			}
		}
	}
	if latest == "" {
		return "", parcontact.Errorf(parcontact.ENOTFOUND, "no %s* results file in %s", ResultsPrefix, dir)
	}
	return latest, nil
}
