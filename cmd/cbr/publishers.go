package main

import (
	"fmt"

	"github.com/Miidoriya/cbr/pretty"
)

// Run executes the publishers command.
func (c *PublishersCmd) Run(deps *Dependencies) error {
	entries, err := deps.Catalog.ListPublishers(deps.Ctx)
	if err != nil {
		reportError(deps, err)
		return err
	}

	if deps.JSON {
		return writeJSON(deps.Stdout, entries)
	}
	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No publishers found.")
		return nil
	}
	pretty.RenderPublishers(deps.Stdout, entries)
	return nil
}
