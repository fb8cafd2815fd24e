package goquery_test

import (
	"testing"

	"github.com/Miidoriya/cbr"
	"github.com/Miidoriya/cbr/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts every field of a complete row", func(t *testing.T) {
		t.Parallel()

		rows := parseRows(t, issueListingHTML(
			issueRow("1", "Brian K. Vaughan", "Fiona Staples", "9.1", "9.3", "42", "312"),
		))
		require.Len(t, rows, 1)

		rec := goquery.NewExtractor().Extract(rows[0], "Saga")

		assert.Equal(t, cbr.IssueRecord{
			Title:             "Saga",
			IssueNumber:       "Issue #1",
			Writer:            "Brian K. Vaughan",
			Artist:            "Fiona Staples",
			UserRatingScore:   "9.3",
			CriticRatingScore: "9.1",
			UserRatingCount:   "312",
			CriticRatingCount: "42",
			DetailURL:         "https://comicbookroundup.com/comic-books/reviews/image-comics/saga/1",
		}, rec)
	})

	t.Run("missing writer link yields N/A while other fields populate", func(t *testing.T) {
		t.Parallel()

		rows := parseRows(t, issueListingHTML(
			issueRow("2", "", "Fiona Staples", "8.8", "9.0", "35", "201"),
		))
		require.Len(t, rows, 1)

		rec := goquery.NewExtractor().Extract(rows[0], "Saga")

		assert.Equal(t, cbr.NotAvailable, rec.Writer)
		assert.Equal(t, "Issue #2", rec.IssueNumber)
		assert.Equal(t, "Fiona Staples", rec.Artist)
		assert.Equal(t, "8.8", rec.CriticRatingScore)
		assert.Equal(t, "9.0", rec.UserRatingScore)
		assert.Equal(t, "35", rec.CriticRatingCount)
		assert.Equal(t, "201", rec.UserRatingCount)
	})

	t.Run("row without any field yields all N/A except title", func(t *testing.T) {
		t.Parallel()

		rows := parseRows(t, issueListingHTML(`<tr><td>nothing here</td></tr>`))
		require.Len(t, rows, 1)

		rec := goquery.NewExtractor().Extract(rows[0], "X")

		assert.Equal(t, cbr.NewIssueRecord("X"), rec)
	})

	t.Run("matched node with empty text is treated as missing", func(t *testing.T) {
		t.Parallel()

		rows := parseRows(t, issueListingHTML(
			`<tr><td class="writer"><a href="/w">  </a></td><td class="artist"><a href="/a">Jim Lee</a></td></tr>`,
		))
		require.Len(t, rows, 1)

		rec := goquery.NewExtractor().Extract(rows[0], "X")

		assert.Equal(t, cbr.NotAvailable, rec.Writer)
		assert.Equal(t, "Jim Lee", rec.Artist)
	})

	t.Run("resolves issue link against the configured site", func(t *testing.T) {
		t.Parallel()

		rows := parseRows(t, issueListingHTML(
			issueRow("3", "BKV", "", "", "", "", ""),
		))
		require.Len(t, rows, 1)

		e := goquery.NewExtractor(goquery.WithSite(cbr.Site{BaseURL: "http://localhost:9999"}))
		rec := e.Extract(rows[0], "Saga")

		assert.Equal(t, "http://localhost:9999/comic-books/reviews/image-comics/saga/3", rec.DetailURL)
	})

	t.Run("custom schema", func(t *testing.T) {
		t.Parallel()

		rows := parseRows(t, issueListingHTML(
			`<tr><td class="credits" data-writer="Ed Brubaker">x</td></tr>`,
		))
		require.Len(t, rows, 1)

		schema := []goquery.Field{{
			Name:    "writer",
			Pattern: goquery.MustCompile("td.credits"),
			Mode:    goquery.ModeAttr,
			Attr:    "data-writer",
			Set:     func(r *cbr.IssueRecord, v string) { r.Writer = v },
		}}
		rec := goquery.NewExtractor(goquery.WithSchema(schema)).Extract(rows[0], "Criminal")

		assert.Equal(t, "Ed Brubaker", rec.Writer)
		assert.Equal(t, cbr.NotAvailable, rec.Artist)
	})
}

func TestExtractor_Matched(t *testing.T) {
	t.Parallel()

	rows := parseRows(t, issueListingHTML(
		issueRow("1", "Brian K. Vaughan", "Fiona Staples", "9.1", "9.3", "42", "312"),
		issueRow("", "Brian K. Vaughan", "", "", "", "", ""),
		headerRowHTML,
	))
	require.Len(t, rows, 3)

	e := goquery.NewExtractor()

	assert.Equal(t, len(goquery.IssueSchema), e.Matched(rows[0]))
	assert.Equal(t, 1, e.Matched(rows[1]))
	assert.Equal(t, 0, e.Matched(rows[2]))
}
