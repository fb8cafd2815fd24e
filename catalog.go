package cbr

import (
	"context"

	"golang.org/x/net/html"
)

// NotAvailable is the value of an issue field whose markup is missing from
// the row.
const NotAvailable = "N/A"

// DefaultThreshold is the similarity score a candidate title must exceed to
// match a query.
const DefaultThreshold = 50.0

// PublisherEntry represents a publisher link on the publisher index.
type PublisherEntry struct {
	Identifier string `json:"identifier"`
	Name       string `json:"name"`
	ListingURL string `json:"listingUrl"`
}

// NewPublisherEntry builds the entry for a publisher link. A link whose href
// yields no identifier degrades to a placeholder with an empty identifier
// and listing URL.
func NewPublisherEntry(site Site, name, href string) PublisherEntry {
	id := PublisherIdentifier(href)
	if id == "" {
		return PublisherEntry{Name: name}
	}
	return PublisherEntry{
		Identifier: id,
		Name:       name,
		ListingURL: site.PublisherListingURL(href),
	}
}

// IsPlaceholder reports whether the entry was degraded from a malformed link.
func (p PublisherEntry) IsPlaceholder() bool {
	return p.Identifier == ""
}

// Validate returns an error if the entry cannot be navigated.
func (p PublisherEntry) Validate() error {
	if p.IsPlaceholder() || p.ListingURL == "" {
		return Errorf(EINVALID, "publisher %q has no listing URL", p.Name)
	}
	return nil
}

// CandidateTitle represents a series link eligible for matching against a
// query. It only lives for a single resolution round.
type CandidateTitle struct {
	DisplayName string `json:"displayName"`
	DetailURL   string `json:"detailUrl"`
}

// IsPlaceholder reports whether the series link had no usable href.
func (c CandidateTitle) IsPlaceholder() bool {
	return c.DetailURL == ""
}

// IssueRecord holds the review metadata of one issue of a series.
type IssueRecord struct {
	Title             string `json:"title"`
	IssueNumber       string `json:"issueNumber"`
	Writer            string `json:"writer"`
	Artist            string `json:"artist"`
	UserRatingScore   string `json:"userRatingScore"`
	CriticRatingScore string `json:"criticRatingScore"`
	UserRatingCount   string `json:"userRatingCount"`
	CriticRatingCount string `json:"criticRatingCount"`
	DetailURL         string `json:"detailUrl,omitempty"`
}

// NewIssueRecord returns a record for title with every scraped field set to
// NotAvailable.
func NewIssueRecord(title string) IssueRecord {
	return IssueRecord{
		Title:             title,
		IssueNumber:       NotAvailable,
		Writer:            NotAvailable,
		Artist:            NotAvailable,
		UserRatingScore:   NotAvailable,
		CriticRatingScore: NotAvailable,
		UserRatingCount:   NotAvailable,
		CriticRatingCount: NotAvailable,
		DetailURL:         NotAvailable,
	}
}

// Match is a candidate that scored above the similarity threshold.
type Match struct {
	Index int     // position in the candidate list
	Text  string  // candidate display text
	Score float64 // similarity in [0, 100]
}

// TitleResolver scores a free-text query against candidate display strings.
type TitleResolver interface {
	// Resolve returns the candidates scoring strictly above threshold.
	// An empty result means no candidate matched; it is not an error.
	Resolve(query string, candidates []string, threshold float64) []Match
}

// ListingParser turns listing pages into catalog entries.
type ListingParser interface {
	// Publishers parses the publisher index.
	Publishers(page string) ([]PublisherEntry, error)

	// SeriesLinks parses a publisher's all-series listing.
	SeriesLinks(page string) ([]CandidateTitle, error)

	// IssueRows parses a series listing and returns its issue rows with a
	// leading header row removed.
	IssueRows(page string) ([]*html.Node, error)
}

// IssueExtractor maps one issue row to a record.
type IssueExtractor interface {
	// Extract never fails: fields missing from the row are NotAvailable and
	// Title is always title.
	Extract(row *html.Node, title string) IssueRecord
}

// CatalogService walks the publisher, series and issue listings.
// Transitions between stages are driven by the caller.
type CatalogService interface {
	// ListPublishers fetches the publisher index.
	ListPublishers(ctx context.Context) ([]PublisherEntry, error)

	// ListSeries fetches every series link of a publisher.
	// Returns EINVALID for a placeholder publisher.
	ListSeries(ctx context.Context, publisher PublisherEntry) ([]CandidateTitle, error)

	// FindTitles narrows candidates to those matching query, best first.
	FindTitles(query string, candidates []CandidateTitle) []CandidateTitle

	// ExtractIssues fetches a series listing and extracts one record per
	// issue row, titled titleName.
	ExtractIssues(ctx context.Context, titleName, seriesURL string) ([]IssueRecord, error)
}

// FindPublisher returns the entry with the given identifier.
// Returns ENOTFOUND if no entry matches.
func FindPublisher(entries []PublisherEntry, identifier string) (PublisherEntry, error) {
	for _, e := range entries {
		if !e.IsPlaceholder() && e.Identifier == identifier {
			return e, nil
		}
	}
	return PublisherEntry{}, Errorf(ENOTFOUND, "publisher %q not found", identifier)
}
