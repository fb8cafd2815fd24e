package main

import (
	"fmt"

	"github.com/Miidoriya/cbr"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	titles, err := findTitles(deps, c.Publisher, c.Query)
	if err != nil {
		reportError(deps, err)
		return err
	}

	if len(titles) == 0 {
		err := cbr.Errorf(cbr.ENOTFOUND, "no titles match %q", c.Query)
		reportError(deps, err)
		fmt.Fprintln(deps.Stderr, "Hint: run 'cbr titles' with a different query or a lower --threshold")
		return err
	}
	if c.Pick < 1 || c.Pick > len(titles) {
		err := cbr.Errorf(cbr.EINVALID, "--pick must be between 1 and %d", len(titles))
		reportError(deps, err)
		return err
	}

	title := titles[c.Pick-1]
	if !deps.JSON {
		fmt.Fprintf(deps.Stderr, "Scraping %s (%s)\n", title.DisplayName, title.DetailURL)
	}

	records, err := deps.Catalog.ExtractIssues(deps.Ctx, title.DisplayName, title.DetailURL)
	if err != nil {
		reportError(deps, err)
		return err
	}
	return writeIssues(deps, records)
}
