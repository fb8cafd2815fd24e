package slog

import (
	"log/slog"
	"time"

	"github.com/Miidoriya/cbr"
	"golang.org/x/net/html"
)

// Ensure LoggingParser implements cbr.ListingParser.
var _ cbr.ListingParser = (*LoggingParser)(nil)

// LoggingParser wraps a ListingParser, logging result counts and warning
// about links that degraded to placeholders.
type LoggingParser struct {
	next   cbr.ListingParser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next cbr.ListingParser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

func (p *LoggingParser) Publishers(page string) (entries []cbr.PublisherEntry, err error) {
	defer func(begin time.Time) {
		for _, e := range entries {
			if e.IsPlaceholder() {
				p.logger.Warn("publisher link without identifier", "name", e.Name)
			}
		}
		p.logger.Info("parse publishers",
			"count", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Publishers(page)
}

func (p *LoggingParser) SeriesLinks(page string) (titles []cbr.CandidateTitle, err error) {
	defer func(begin time.Time) {
		for _, t := range titles {
			if t.IsPlaceholder() {
				p.logger.Warn("series link without href", "name", t.DisplayName)
			}
		}
		p.logger.Info("parse series",
			"count", len(titles),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.SeriesLinks(page)
}

func (p *LoggingParser) IssueRows(page string) (rows []*html.Node, err error) {
	defer func(begin time.Time) {
		p.logger.Info("parse issue rows",
			"count", len(rows),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.IssueRows(page)
}
