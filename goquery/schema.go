package goquery

import (
	"github.com/Miidoriya/cbr"
	"golang.org/x/net/html"
)

// Mode selects how a field value is read from its matched node.
type Mode int

const (
	// ModeText reads the node's text content.
	ModeText Mode = iota
	// ModeAttr reads one attribute of the node.
	ModeAttr
)

// Field describes how one issue field is located within a row and written
// into the record.
type Field struct {
	Name    string
	Pattern Pattern
	Mode    Mode
	Attr    string // attribute name, ModeAttr only
	Set     func(r *cbr.IssueRecord, value string)
}

// read returns the field's value in row, or false when the row has no
// matching node or the node yields an empty value.
func (f Field) read(row *html.Node) (string, bool) {
	n, ok := SelectFirst(row, f.Pattern)
	if !ok {
		return "", false
	}
	var v string
	switch f.Mode {
	case ModeAttr:
		v, _ = Attr(n, f.Attr)
	default:
		v = Text(n)
	}
	return v, v != ""
}

// Issue row patterns, compiled once for the process lifetime.
var (
	issueNumberPattern       = MustCompile(".issue a")
	writerPattern            = MustCompile(".writer a")
	artistPattern            = MustCompile(".artist a")
	criticRatingPattern      = MustCompile(".rating .CriticRatingList div")
	userRatingPattern        = MustCompile(".rating .UserRatingList div")
	criticReviewCountPattern = MustCompile(".reviews .CriticReviewNumList a")
	userReviewCountPattern   = MustCompile(".reviews .UserReviewNumList a")
)

// IssueSchema lists the fields scraped from every issue row.
// The detail URL is stored as found; Extractor resolves it against its site.
var IssueSchema = []Field{
	{Name: "issue", Pattern: issueNumberPattern, Set: func(r *cbr.IssueRecord, v string) { r.IssueNumber = v }},
	{Name: "writer", Pattern: writerPattern, Set: func(r *cbr.IssueRecord, v string) { r.Writer = v }},
	{Name: "artist", Pattern: artistPattern, Set: func(r *cbr.IssueRecord, v string) { r.Artist = v }},
	{Name: "critic_rating", Pattern: criticRatingPattern, Set: func(r *cbr.IssueRecord, v string) { r.CriticRatingScore = v }},
	{Name: "user_rating", Pattern: userRatingPattern, Set: func(r *cbr.IssueRecord, v string) { r.UserRatingScore = v }},
	{Name: "critic_reviews", Pattern: criticReviewCountPattern, Set: func(r *cbr.IssueRecord, v string) { r.CriticRatingCount = v }},
	{Name: "user_reviews", Pattern: userReviewCountPattern, Set: func(r *cbr.IssueRecord, v string) { r.UserRatingCount = v }},
	{Name: "url", Pattern: issueNumberPattern, Mode: ModeAttr, Attr: "href", Set: func(r *cbr.IssueRecord, v string) { r.DetailURL = v }},
}

// Ensure Extractor implements cbr.IssueExtractor at compile time.
var _ cbr.IssueExtractor = (*Extractor)(nil)

// Extractor maps issue rows to records using a fixed schema.
// Extractor is safe for concurrent use.
type Extractor struct {
	site   cbr.Site
	schema []Field
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithSite sets the site used to resolve issue links.
// Defaults to the zero cbr.Site.
func WithSite(site cbr.Site) ExtractorOption {
	return func(e *Extractor) {
		e.site = site
	}
}

// WithSchema replaces IssueSchema.
func WithSchema(schema []Field) ExtractorOption {
	return func(e *Extractor) {
		e.schema = schema
	}
}

// NewExtractor creates a new Extractor using IssueSchema.
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{schema: IssueSchema}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract builds the record for row. Fields without a matching node keep
// cbr.NotAvailable; the record's title is always title.
func (e *Extractor) Extract(row *html.Node, title string) cbr.IssueRecord {
	rec := cbr.NewIssueRecord(title)
	for _, f := range e.schema {
		v, ok := f.read(row)
		if !ok {
			continue
		}
		f.Set(&rec, v)
	}
	if rec.DetailURL != cbr.NotAvailable {
		if u := e.site.ResolveURL(rec.DetailURL); u != "" {
			rec.DetailURL = u
		}
	}
	return rec
}

// Matched returns the number of schema fields with a value in row.
func (e *Extractor) Matched(row *html.Node) int {
	var n int
	for _, f := range e.schema {
		if _, ok := f.read(row); ok {
			n++
		}
	}
	return n
}
