package mock

import (
	"context"

	"github.com/Miidoriya/cbr"
	"golang.org/x/net/html"
)

var (
	_ cbr.ListingParser  = (*ListingParser)(nil)
	_ cbr.TitleResolver  = (*TitleResolver)(nil)
	_ cbr.IssueExtractor = (*IssueExtractor)(nil)
	_ cbr.CatalogService = (*CatalogService)(nil)
)

// ListingParser is a mock implementation of cbr.ListingParser.
type ListingParser struct {
	PublishersFn  func(page string) ([]cbr.PublisherEntry, error)
	SeriesLinksFn func(page string) ([]cbr.CandidateTitle, error)
	IssueRowsFn   func(page string) ([]*html.Node, error)
}

func (p *ListingParser) Publishers(page string) ([]cbr.PublisherEntry, error) {
	return p.PublishersFn(page)
}

func (p *ListingParser) SeriesLinks(page string) ([]cbr.CandidateTitle, error) {
	return p.SeriesLinksFn(page)
}

func (p *ListingParser) IssueRows(page string) ([]*html.Node, error) {
	return p.IssueRowsFn(page)
}

// TitleResolver is a mock implementation of cbr.TitleResolver.
type TitleResolver struct {
	ResolveFn func(query string, candidates []string, threshold float64) []cbr.Match
}

func (r *TitleResolver) Resolve(query string, candidates []string, threshold float64) []cbr.Match {
	return r.ResolveFn(query, candidates, threshold)
}

// IssueExtractor is a mock implementation of cbr.IssueExtractor.
type IssueExtractor struct {
	ExtractFn func(row *html.Node, title string) cbr.IssueRecord
}

func (e *IssueExtractor) Extract(row *html.Node, title string) cbr.IssueRecord {
	return e.ExtractFn(row, title)
}

// CatalogService is a mock implementation of cbr.CatalogService.
type CatalogService struct {
	ListPublishersFn func(ctx context.Context) ([]cbr.PublisherEntry, error)
	ListSeriesFn     func(ctx context.Context, publisher cbr.PublisherEntry) ([]cbr.CandidateTitle, error)
	FindTitlesFn     func(query string, candidates []cbr.CandidateTitle) []cbr.CandidateTitle
	ExtractIssuesFn  func(ctx context.Context, titleName, seriesURL string) ([]cbr.IssueRecord, error)
}

func (s *CatalogService) ListPublishers(ctx context.Context) ([]cbr.PublisherEntry, error) {
	return s.ListPublishersFn(ctx)
}

func (s *CatalogService) ListSeries(ctx context.Context, publisher cbr.PublisherEntry) ([]cbr.CandidateTitle, error) {
	return s.ListSeriesFn(ctx, publisher)
}

func (s *CatalogService) FindTitles(query string, candidates []cbr.CandidateTitle) []cbr.CandidateTitle {
	return s.FindTitlesFn(query, candidates)
}

func (s *CatalogService) ExtractIssues(ctx context.Context, titleName, seriesURL string) ([]cbr.IssueRecord, error) {
	return s.ExtractIssuesFn(ctx, titleName, seriesURL)
}
