package main

import (
	"fmt"

	"github.com/Miidoriya/cbr"
	"github.com/Miidoriya/cbr/pretty"
)

// Run executes the titles command.
func (c *TitlesCmd) Run(deps *Dependencies) error {
	titles, err := findTitles(deps, c.Publisher, c.Query)
	if err != nil {
		reportError(deps, err)
		return err
	}

	if deps.JSON {
		return writeJSON(deps.Stdout, titles)
	}
	if len(titles) == 0 {
		fmt.Fprintf(deps.Stdout, "No titles match %q. Try a different query or a lower --threshold.\n", c.Query)
		return nil
	}
	pretty.RenderTitles(deps.Stdout, titles)
	return nil
}

// findTitles resolves the publisher by identifier and ranks its series
// against query.
func findTitles(deps *Dependencies, publisherID, query string) ([]cbr.CandidateTitle, error) {
	entries, err := deps.Catalog.ListPublishers(deps.Ctx)
	if err != nil {
		return nil, err
	}

	publisher, err := cbr.FindPublisher(entries, publisherID)
	if err != nil {
		return nil, err
	}

	candidates, err := deps.Catalog.ListSeries(deps.Ctx, publisher)
	if err != nil {
		return nil, err
	}
	return deps.Catalog.FindTitles(query, candidates), nil
}
