// Package catalog walks the publisher, series and issue listings of the site
// and extracts issue records concurrently.
package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/Miidoriya/cbr"
)

// Stage identifies one level of the catalog walk.
type Stage int

const (
	StagePublishers Stage = iota
	StageSeries
	StageIssues
)

// String returns the stage name used in error messages.
func (s Stage) String() string {
	switch s {
	case StagePublishers:
		return "publisher list"
	case StageSeries:
		return "series list"
	case StageIssues:
		return "issue list"
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// Ensure Navigator implements cbr.CatalogService at compile time.
var _ cbr.CatalogService = (*Navigator)(nil)

// Navigator implements cbr.CatalogService. Each stage fetches and parses one
// listing; the caller decides which publisher and title to descend into.
// A failed stage returns an error wrapped with the stage name and leaves the
// Navigator usable for another attempt.
type Navigator struct {
	Site        cbr.Site
	Fetcher     cbr.Fetcher
	Parser      cbr.ListingParser
	Resolver    cbr.TitleResolver
	Pipeline    *Pipeline
	Threshold   float64
	RetryDelays []time.Duration
	Logger      LogFunc
}

// NewNavigator creates a Navigator using cbr.DefaultThreshold and no fetch
// retries.
func NewNavigator(site cbr.Site, fetcher cbr.Fetcher, parser cbr.ListingParser, resolver cbr.TitleResolver, pipeline *Pipeline) *Navigator {
	return &Navigator{
		Site:      site,
		Fetcher:   fetcher,
		Parser:    parser,
		Resolver:  resolver,
		Pipeline:  pipeline,
		Threshold: cbr.DefaultThreshold,
	}
}

// ListPublishers fetches the publisher index.
func (n *Navigator) ListPublishers(ctx context.Context) ([]cbr.PublisherEntry, error) {
	page, err := n.fetch(ctx, n.Site.PublisherIndexURL())
	if err != nil {
		return nil, stageError(StagePublishers, err)
	}

	entries, err := n.Parser.Publishers(page)
	if err != nil {
		return nil, stageError(StagePublishers, err)
	}
	return entries, nil
}

// ListSeries fetches every series link of publisher.
func (n *Navigator) ListSeries(ctx context.Context, publisher cbr.PublisherEntry) ([]cbr.CandidateTitle, error) {
	if err := publisher.Validate(); err != nil {
		return nil, stageError(StageSeries, err)
	}

	page, err := n.fetch(ctx, publisher.ListingURL)
	if err != nil {
		return nil, stageError(StageSeries, err)
	}

	titles, err := n.Parser.SeriesLinks(page)
	if err != nil {
		return nil, stageError(StageSeries, err)
	}
	return titles, nil
}

// FindTitles returns the candidates whose display name scores above the
// Navigator's threshold for query, best first. No match yields an empty
// slice.
func (n *Navigator) FindTitles(query string, candidates []cbr.CandidateTitle) []cbr.CandidateTitle {
	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.DisplayName
	}

	matches := n.Resolver.Resolve(query, names, n.Threshold)
	titles := make([]cbr.CandidateTitle, 0, len(matches))
	for _, m := range matches {
		titles = append(titles, candidates[m.Index])
	}
	return titles
}

// ExtractIssues fetches the series listing at seriesURL and extracts one
// record per issue row.
func (n *Navigator) ExtractIssues(ctx context.Context, titleName, seriesURL string) ([]cbr.IssueRecord, error) {
	if seriesURL == "" {
		return nil, stageError(StageIssues, cbr.Errorf(cbr.EINVALID, "series %q has no URL", titleName))
	}

	page, err := n.fetch(ctx, seriesURL)
	if err != nil {
		return nil, stageError(StageIssues, err)
	}

	rows, err := n.Parser.IssueRows(page)
	if err != nil {
		return nil, stageError(StageIssues, err)
	}

	records, err := n.Pipeline.ExtractAll(ctx, rows, titleName)
	if err != nil {
		return nil, stageError(StageIssues, err)
	}
	return records, nil
}

// fetch retries only failures that Retryable accepts.
func (n *Navigator) fetch(ctx context.Context, url string) (string, error) {
	return FetchWithRetryDelays(ctx, url, n.Fetcher.Fetch, n.Logger, n.RetryDelays)
}

func stageError(s Stage, err error) error {
	return fmt.Errorf("%s: %w", s, err)
}
