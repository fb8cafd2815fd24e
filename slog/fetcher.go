// Package slog decorates the catalog services with structured logging
// through log/slog.
package slog

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/Miidoriya/cbr"
	"github.com/cespare/xxhash/v2"
)

// Ensure LoggingFetcher implements cbr.Fetcher.
var _ cbr.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with request logging. Each fetched page is
// logged with an xxhash digest so repeated fetches of an unchanged listing
// can be spotted in the logs.
type LoggingFetcher struct {
	next   cbr.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next cbr.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (page string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"url", url,
			"bytes", len(page),
			"hash", ContentHash(page),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

// ContentHash returns the hex xxhash64 digest of page, or "" for an empty
// page.
func ContentHash(page string) string {
	if page == "" {
		return ""
	}
	return strconv.FormatUint(xxhash.Sum64String(page), 16)
}
