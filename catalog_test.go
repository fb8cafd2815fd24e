package cbr_test

import (
	"testing"

	"github.com/Miidoriya/cbr"
	"github.com/stretchr/testify/assert"
)

func TestNewPublisherEntry(t *testing.T) {
	t.Parallel()

	t.Run("derives identifier and listing URL from href", func(t *testing.T) {
		t.Parallel()

		p := cbr.NewPublisherEntry(cbr.Site{}, "Marvel Comics", "/publisher/marvel-comics")

		assert.Equal(t, "marvel-comics", p.Identifier)
		assert.Equal(t, "https://comicbookroundup.com/publisher/marvel-comics/all-series", p.ListingURL)
		assert.False(t, p.IsPlaceholder())
		assert.NoError(t, p.Validate())
	})

	t.Run("ignores trailing slash", func(t *testing.T) {
		t.Parallel()

		p := cbr.NewPublisherEntry(cbr.Site{}, "DC", "/publisher/dc-comics/")

		assert.Equal(t, "dc-comics", p.Identifier)
		assert.Equal(t, "https://comicbookroundup.com/publisher/dc-comics/all-series", p.ListingURL)
	})

	t.Run("accepts absolute href", func(t *testing.T) {
		t.Parallel()

		p := cbr.NewPublisherEntry(cbr.Site{}, "Image", "https://comicbookroundup.com/publisher/image-comics")

		assert.Equal(t, "image-comics", p.Identifier)
		assert.Equal(t, "https://comicbookroundup.com/publisher/image-comics/all-series", p.ListingURL)
	})

	t.Run("empty href degrades to placeholder", func(t *testing.T) {
		t.Parallel()

		p := cbr.NewPublisherEntry(cbr.Site{}, "Broken", "")

		assert.True(t, p.IsPlaceholder())
		assert.Empty(t, p.ListingURL)
		assert.Equal(t, "Broken", p.Name)
		assert.Equal(t, cbr.EINVALID, cbr.ErrorCode(p.Validate()))
	})

	t.Run("unparseable href degrades to placeholder", func(t *testing.T) {
		t.Parallel()

		p := cbr.NewPublisherEntry(cbr.Site{}, "Broken", "%zz")

		assert.True(t, p.IsPlaceholder())
	})
}

func TestSite(t *testing.T) {
	t.Parallel()

	t.Run("default base URL", func(t *testing.T) {
		t.Parallel()

		var s cbr.Site

		assert.Equal(t, "https://comicbookroundup.com/comic-books/reviews", s.PublisherIndexURL())
		assert.Equal(t, "https://comicbookroundup.com/comic-books/reviews/marvel-comics/batman", s.SeriesURL("/comic-books/reviews/marvel-comics/batman"))
	})

	t.Run("custom base URL", func(t *testing.T) {
		t.Parallel()

		s := cbr.Site{BaseURL: "http://127.0.0.1:8080/"}

		assert.Equal(t, "http://127.0.0.1:8080/comic-books/reviews", s.PublisherIndexURL())
		assert.Equal(t, "http://127.0.0.1:8080/publisher/dc/all-series", s.PublisherListingURL("/publisher/dc"))
	})

	t.Run("roots hrefs without a leading slash", func(t *testing.T) {
		t.Parallel()

		var s cbr.Site

		assert.Equal(t, "https://comicbookroundup.com/publisher/x/all-series", s.PublisherListingURL("publisher/x"))
		assert.Equal(t, "https://comicbookroundup.com/comic-books/reviews/image-comics/saga", s.SeriesURL("comic-books/reviews/image-comics/saga/"))

		p := cbr.NewPublisherEntry(s, "X", "publisher/x")
		assert.Equal(t, "x", p.Identifier)
		assert.Equal(t, "https://comicbookroundup.com/publisher/x/all-series", p.ListingURL)
	})

	t.Run("resolves relative and absolute hrefs", func(t *testing.T) {
		t.Parallel()

		var s cbr.Site

		assert.Equal(t, "https://comicbookroundup.com/comic-books/reviews/dc-comics/batman-2016/1", s.ResolveURL("/comic-books/reviews/dc-comics/batman-2016/1"))
		assert.Equal(t, "https://other.example/x", s.ResolveURL("https://other.example/x"))
	})
}

func TestNewIssueRecord(t *testing.T) {
	t.Parallel()

	r := cbr.NewIssueRecord("Saga")

	assert.Equal(t, cbr.IssueRecord{
		Title:             "Saga",
		IssueNumber:       cbr.NotAvailable,
		Writer:            cbr.NotAvailable,
		Artist:            cbr.NotAvailable,
		UserRatingScore:   cbr.NotAvailable,
		CriticRatingScore: cbr.NotAvailable,
		UserRatingCount:   cbr.NotAvailable,
		CriticRatingCount: cbr.NotAvailable,
		DetailURL:         cbr.NotAvailable,
	}, r)
}

func TestFindPublisher(t *testing.T) {
	t.Parallel()

	entries := []cbr.PublisherEntry{
		{Name: "Broken"},
		cbr.NewPublisherEntry(cbr.Site{}, "Marvel Comics", "/publisher/marvel-comics"),
	}

	p, err := cbr.FindPublisher(entries, "marvel-comics")
	assert.NoError(t, err)
	assert.Equal(t, "Marvel Comics", p.Name)

	_, err = cbr.FindPublisher(entries, "")
	assert.Equal(t, cbr.ENOTFOUND, cbr.ErrorCode(err))

	_, err = cbr.FindPublisher(entries, "dc-comics")
	assert.Equal(t, cbr.ENOTFOUND, cbr.ErrorCode(err))
}
