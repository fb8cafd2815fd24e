package cbr

import (
	"net/url"
	"strings"
)

// DefaultBaseURL is the origin of the review aggregation site.
const DefaultBaseURL = "https://comicbookroundup.com"

// Site builds the URLs of the catalog listings relative to a base URL.
// The zero value uses DefaultBaseURL.
type Site struct {
	BaseURL string
}

func (s Site) base() string {
	if s.BaseURL == "" {
		return DefaultBaseURL
	}
	return strings.TrimRight(s.BaseURL, "/")
}

// PublisherIndexURL returns the URL of the listing of all publishers.
func (s Site) PublisherIndexURL() string {
	return s.base() + "/comic-books/reviews"
}

// PublisherListingURL returns the all-series listing of the publisher at href.
func (s Site) PublisherListingURL(href string) string {
	return s.base() + hrefPath(href) + "/all-series"
}

// SeriesURL returns the issue listing of the series at href.
func (s Site) SeriesURL(href string) string {
	return s.base() + hrefPath(href)
}

// ResolveURL resolves href against the base URL. Absolute hrefs are returned
// unchanged.
func (s Site) ResolveURL(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if u.IsAbs() {
		return u.String()
	}
	base, err := url.Parse(s.base() + "/")
	if err != nil {
		return ""
	}
	return base.ResolveReference(u).String()
}

// hrefPath returns the path (and query) of href rooted at "/", dropping any
// scheme and host so absolute and site-relative links build the same URL.
func hrefPath(href string) string {
	p := strings.TrimRight(href, "/")
	if u, err := url.Parse(href); err == nil && u.IsAbs() {
		p = strings.TrimRight(u.EscapedPath(), "/")
		if u.RawQuery != "" {
			p += "?" + u.RawQuery
		}
	}
	if p != "" && !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

// PublisherIdentifier returns the last path segment of a publisher href.
// It returns "" when href is empty or cannot be parsed.
func PublisherIdentifier(href string) string {
	u, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	p := strings.TrimRight(u.Path, "/")
	if i := strings.LastIndex(p, "/"); i >= 0 {
		p = p[i+1:]
	}
	return p
}
