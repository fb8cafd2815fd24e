package goquery_test

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/Miidoriya/cbr/goquery"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const publisherIndexHTML = `<!DOCTYPE html>
<html>
<body>
<div class="section">
<table>
<tbody>
<tr>
	<td class="top-publisher"><a href="/publisher/marvel-comics">Marvel Comics</a></td>
	<td class="top-publisher"><a href="/publisher/dc-comics">DC Comics</a></td>
</tr>
<tr>
	<td class="top-publisher"><a>Broken Link</a></td>
	<td class="top-publisher"><a href="/publisher/image-comics">Image Comics</a></td>
</tr>
</tbody>
</table>
</div>
</body>
</html>`

const seriesListingHTML = `<!DOCTYPE html>
<html>
<body>
<div class="section">
<table>
<tr><td class="series"><a href="/comic-books/reviews/image-comics/saga">Saga</a></td><td>2012</td></tr>
<tr><td class="series"><a href="/comic-books/reviews/image-comics/saga-of-the-swamp-thing">Saga of the Swamp Thing</a></td></tr>
<tr><td class="series"><a>Monstress</a></td></tr>
<tr><td class="other"><a href="/not-a-series">Ignored</a></td></tr>
</table>
</div>
</body>
</html>`

// issueRow renders one issue row. Empty arguments leave the cell without its
// link or rating node.
func issueRow(issue, writer, artist, critic, user, criticCount, userCount string) string {
	var b strings.Builder
	b.WriteString("<tr>")
	cell := func(class, inner string) {
		fmt.Fprintf(&b, `<td class="%s">%s</td>`, class, inner)
	}
	link := func(text string) string {
		if text == "" {
			return ""
		}
		return fmt.Sprintf(`<a href="/link/%s">%s</a>`, strings.ReplaceAll(text, " ", "-"), text)
	}
	value := func(class, text string) string {
		if text == "" {
			return ""
		}
		return fmt.Sprintf(`<div class="%s"><div class="review">%s</div></div>`, class, text)
	}
	count := func(class, text string) string {
		if text == "" {
			return ""
		}
		return fmt.Sprintf(`<div class="%s"><a href="#">%s</a></div>`, class, text)
	}
	if issue != "" {
		cell("issue", fmt.Sprintf(`<a href="/comic-books/reviews/image-comics/saga/%s">Issue #%s</a>`, issue, issue))
	} else {
		cell("issue", "")
	}
	cell("writer", link(writer))
	cell("artist", link(artist))
	cell("rating", value("CriticRatingList", critic)+value("UserRatingList", user))
	cell("reviews", count("CriticReviewNumList", criticCount)+count("UserReviewNumList", userCount))
	b.WriteString("</tr>")
	return b.String()
}

const headerRowHTML = `<tr><th>Issue</th><th>Writer</th><th>Artist</th><th>Rating</th><th>Reviews</th></tr>`

// issueListingHTML wraps rows in the series listing table markup.
func issueListingHTML(rows ...string) string {
	return `<!DOCTYPE html><html><body><div class="section"><table><tbody>` +
		strings.Join(rows, "\n") +
		`</tbody></table></div></body></html>`
}

// parseRows parses a listing and returns every issue row, header included.
func parseRows(t *testing.T, page string) []*html.Node {
	t.Helper()

	doc, err := goquery.Parse(page)
	require.NoError(t, err)
	return slices.Collect(doc.SelectAll(goquery.IssueRowPattern))
}
