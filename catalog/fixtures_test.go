package catalog_test

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/Miidoriya/cbr/goquery"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const publisherIndexHTML = `<html><body><div class="section"><table><tbody>
<tr><td class="top-publisher"><a href="/publisher/marvel-comics">Marvel Comics</a></td></tr>
<tr><td class="top-publisher"><a href="/publisher/image-comics">Image Comics</a></td></tr>
</tbody></table></div></body></html>`

const seriesListingHTML = `<html><body><div class="section"><table>
<tr><td class="series"><a href="/comic-books/reviews/image-comics/saga">Saga</a></td></tr>
<tr><td class="series"><a href="/comic-books/reviews/image-comics/sage-of-the-stars">Sage</a></td></tr>
<tr><td class="series"><a href="/comic-books/reviews/image-comics/monstress">Monstress</a></td></tr>
</table></div></body></html>`

const headerRowHTML = `<tr><th>Issue</th><th>Writer</th><th>Artist</th></tr>`

// issueRowHTML renders a row carrying an issue link, writer and artist.
func issueRowHTML(issue int, writer, artist string) string {
	return fmt.Sprintf(`<tr>`+
		`<td class="issue"><a href="/comic-books/reviews/image-comics/saga/%d">Issue #%d</a></td>`+
		`<td class="writer"><a href="#">%s</a></td>`+
		`<td class="artist"><a href="#">%s</a></td>`+
		`<td class="rating"><div class="CriticRatingList"><div>8.5</div></div><div class="UserRatingList"><div>9.0</div></div></td>`+
		`<td class="reviews"><div class="CriticReviewNumList"><a href="#">12</a></div><div class="UserReviewNumList"><a href="#">40</a></div></td>`+
		`</tr>`, issue, issue, writer, artist)
}

// issueListingHTML wraps rows in the series listing table markup.
func issueListingHTML(rows ...string) string {
	return `<html><body><div class="section"><table><tbody>` +
		strings.Join(rows, "\n") +
		`</tbody></table></div></body></html>`
}

// syntheticRows returns n data rows with distinct writers and artists.
func syntheticRows(n int) []string {
	rows := make([]string, n)
	for i := range n {
		rows[i] = issueRowHTML(i+1, fmt.Sprintf("Writer %d", i), fmt.Sprintf("Artist %d", i))
	}
	return rows
}

// parseRows parses a listing and returns every issue row, header included.
func parseRows(t *testing.T, page string) []*html.Node {
	t.Helper()

	doc, err := goquery.Parse(page)
	require.NoError(t, err)
	return slices.Collect(doc.SelectAll(goquery.IssueRowPattern))
}
