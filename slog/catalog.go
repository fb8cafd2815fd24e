package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/Miidoriya/cbr"
	"github.com/google/uuid"
)

// Ensure LoggingCatalog implements cbr.CatalogService.
var _ cbr.CatalogService = (*LoggingCatalog)(nil)

// LoggingCatalog wraps a CatalogService with operation logging. Every
// extraction is tagged with a run ID.
type LoggingCatalog struct {
	next   cbr.CatalogService
	logger *slog.Logger
}

// NewLoggingCatalog creates a new LoggingCatalog.
func NewLoggingCatalog(next cbr.CatalogService, logger *slog.Logger) *LoggingCatalog {
	return &LoggingCatalog{next: next, logger: logger}
}

func (c *LoggingCatalog) ListPublishers(ctx context.Context) (entries []cbr.PublisherEntry, err error) {
	defer func(begin time.Time) {
		c.logger.Info("list publishers",
			"count", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.ListPublishers(ctx)
}

func (c *LoggingCatalog) ListSeries(ctx context.Context, publisher cbr.PublisherEntry) (titles []cbr.CandidateTitle, err error) {
	defer func(begin time.Time) {
		c.logger.Info("list series",
			"publisher", publisher.Identifier,
			"count", len(titles),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.ListSeries(ctx, publisher)
}

func (c *LoggingCatalog) FindTitles(query string, candidates []cbr.CandidateTitle) []cbr.CandidateTitle {
	titles := c.next.FindTitles(query, candidates)
	c.logger.Info("find titles",
		"query", query,
		"candidates", len(candidates),
		"matches", len(titles),
	)
	return titles
}

func (c *LoggingCatalog) ExtractIssues(ctx context.Context, titleName, seriesURL string) (records []cbr.IssueRecord, err error) {
	logger := c.logger.With("run", uuid.NewString())
	logger.Info("extract issues", "title", titleName, "url", seriesURL)
	defer func(begin time.Time) {
		logger.Info("extract issues done",
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.ExtractIssues(ctx, titleName, seriesURL)
}
