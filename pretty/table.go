// Package pretty renders catalog listings as terminal tables using
// github.com/jedib0t/go-pretty/v6.
package pretty

import (
	"io"

	"github.com/Miidoriya/cbr"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func newWriter(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	return t
}

// RenderPublishers writes one row per publisher. Placeholders are listed
// with an empty identifier.
func RenderPublishers(w io.Writer, entries []cbr.PublisherEntry) {
	t := newWriter(w)
	t.AppendHeader(table.Row{"Identifier", "Publisher", "Listing URL"})
	for _, e := range entries {
		t.AppendRow(table.Row{e.Identifier, e.Name, e.ListingURL})
	}
	t.Render()
}

// RenderTitles writes the ranked candidate titles, numbered from 1.
func RenderTitles(w io.Writer, titles []cbr.CandidateTitle) {
	t := newWriter(w)
	t.AppendHeader(table.Row{"#", "Title", "URL"})
	for i, c := range titles {
		t.AppendRow(table.Row{i + 1, c.DisplayName, c.DetailURL})
	}
	t.Render()
}

// RenderIssues writes one row per issue record.
func RenderIssues(w io.Writer, records []cbr.IssueRecord) {
	t := newWriter(w)
	t.AppendHeader(table.Row{
		"Title",
		"Issue Number",
		"Writer/s",
		"Artist/s",
		"User Review Score",
		"Critic Review Score",
		"User Review Count",
		"Critic Review Count",
	})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
	})
	for _, r := range records {
		t.AppendRow(table.Row{
			r.Title,
			r.IssueNumber,
			r.Writer,
			r.Artist,
			r.UserRatingScore,
			r.CriticRatingScore,
			r.UserRatingCount,
			r.CriticRatingCount,
		})
	}
	t.Render()
}
