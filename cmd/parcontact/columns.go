package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/parcontact"
	"github.com/fwojciec/parcontact/crawl"
)

// Run executes the columns command.
func (c *ColumnsCmd) Run(deps *Dependencies) error {
	columns, err := readColumns(c.Input, max(c.Samples, c.Scan))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", parcontact.ErrorMessage(err))
		return err
	}

	var matches []*parcontact.Column
	for _, col := range columns {
		samples := col.Samples[:min(len(col.Samples), c.Samples)]
		shown := make([]string, 0, len(samples))
		for _, s := range samples {
			if s != "" {
				shown = append(shown, crawl.TruncateURL(s, 40))
			}
		}
		fmt.Fprintf(deps.Stdout, "%-3s %-30s %s\n", col.Letter, col.Header, strings.Join(shown, " | "))

		if col.HasMarker(c.Domain) {
			matches = append(matches, col)
		}
	}

	if len(matches) == 0 {
		fmt.Fprintf(deps.Stdout, "\nNo column contains %s URLs.\n", c.Domain)
		return nil
	}
	for _, col := range matches {
		fmt.Fprintf(deps.Stdout, "\nColumn %s (%s) contains %s URLs. Use --column %s\n",
			col.Letter, col.Header, c.Domain, col.Letter)
	}
	return nil
}
