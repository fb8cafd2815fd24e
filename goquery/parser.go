package goquery

import (
	"slices"

	"github.com/Miidoriya/cbr"
	"golang.org/x/net/html"
)

// Listing patterns, compiled once for the process lifetime.
var (
	PublisherLinkPattern = MustCompile("div.section > table > tbody > tr .top-publisher a")
	SeriesLinkPattern    = MustCompile("td.series > a")
	IssueRowPattern      = MustCompile("div.section > table > tbody > tr")

	headerCellPattern = MustCompile("th")
)

// Ensure Parser implements cbr.ListingParser at compile time.
var _ cbr.ListingParser = (*Parser)(nil)

// Parser turns the site's listing pages into catalog entries.
type Parser struct {
	site      cbr.Site
	extractor *Extractor
}

// NewParser creates a new Parser building URLs for site.
func NewParser(site cbr.Site) *Parser {
	return &Parser{
		site:      site,
		extractor: NewExtractor(WithSite(site)),
	}
}

// Publishers parses the publisher index. A link without an href becomes a
// placeholder entry instead of failing the listing.
func (p *Parser) Publishers(page string) ([]cbr.PublisherEntry, error) {
	doc, err := Parse(page)
	if err != nil {
		return nil, err
	}

	entries := []cbr.PublisherEntry{}
	for n := range doc.SelectAll(PublisherLinkPattern) {
		href, _ := Attr(n, "href")
		entries = append(entries, cbr.NewPublisherEntry(p.site, Text(n), href))
	}
	return entries, nil
}

// SeriesLinks parses a publisher's all-series listing. A link without an
// href becomes a placeholder with an empty detail URL.
func (p *Parser) SeriesLinks(page string) ([]cbr.CandidateTitle, error) {
	doc, err := Parse(page)
	if err != nil {
		return nil, err
	}

	titles := []cbr.CandidateTitle{}
	for n := range doc.SelectAll(SeriesLinkPattern) {
		title := cbr.CandidateTitle{DisplayName: Text(n)}
		if href, ok := Attr(n, "href"); ok && href != "" {
			title.DetailURL = p.site.SeriesURL(href)
		}
		titles = append(titles, title)
	}
	return titles, nil
}

// IssueRows parses a series listing and returns its issue rows, without a
// leading header row.
func (p *Parser) IssueRows(page string) ([]*html.Node, error) {
	doc, err := Parse(page)
	if err != nil {
		return nil, err
	}
	rows := slices.Collect(doc.SelectAll(IssueRowPattern))
	return p.DropHeaderRow(rows), nil
}

// DropHeaderRow removes the first row when it is a header row. Only the
// first row is inspected: series tables carry at most one header, and later
// rows without data are kept so they still produce records.
func (p *Parser) DropHeaderRow(rows []*html.Node) []*html.Node {
	if len(rows) == 0 || !p.IsHeaderRow(rows[0]) {
		return rows
	}
	return rows[1:]
}

// IsHeaderRow reports whether row is a table header: it has th cells or no
// issue field can be extracted from it.
func (p *Parser) IsHeaderRow(row *html.Node) bool {
	if _, ok := SelectFirst(row, headerCellPattern); ok {
		return true
	}
	return p.extractor.Matched(row) == 0
}
