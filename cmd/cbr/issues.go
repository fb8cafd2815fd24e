package main

import (
	"fmt"

	"github.com/Miidoriya/cbr"
	"github.com/Miidoriya/cbr/pretty"
)

// Run executes the issues command.
func (c *IssuesCmd) Run(deps *Dependencies) error {
	records, err := deps.Catalog.ExtractIssues(deps.Ctx, c.Title, c.URL)
	if err != nil {
		reportError(deps, err)
		return err
	}
	return writeIssues(deps, records)
}

func writeIssues(deps *Dependencies, records []cbr.IssueRecord) error {
	if deps.JSON {
		return writeJSON(deps.Stdout, records)
	}
	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No issues found.")
		return nil
	}
	pretty.RenderIssues(deps.Stdout, records)
	return nil
}
