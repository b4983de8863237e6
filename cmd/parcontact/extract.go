package main

import (
	"fmt"

	"github.com/fwojciec/parcontact"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	result, err := deps.Extractor.ExtractContacts(deps.Ctx, parcontact.Row{Index: 1, URL: c.URL})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", parcontact.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Contact Général:    %s\n", result.General)
	fmt.Fprintf(deps.Stdout, "Mail Pédagogique:   %s\n", result.Pedagogical)
	fmt.Fprintf(deps.Stdout, "Mail Administratif: %s\n", result.Admin)
	if result.FetchError != "" {
		fmt.Fprintf(deps.Stderr, "warning: %s\n", result.FetchError)
	}
	return nil
}
