package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Miidoriya/cbr"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Catalog cbr.CatalogService
	JSON    bool
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	BaseURL     string        `name:"base-url" env:"CBR_BASE_URL" default:"https://comicbookroundup.com" help:"Site base URL"`
	Transport   string        `env:"CBR_TRANSPORT" enum:"http,resty,browser" default:"http" help:"Page fetcher (http, resty, browser)"`
	Timeout     time.Duration `env:"CBR_TIMEOUT" default:"10s" help:"Timeout per page fetch"`
	Retries     int           `default:"2" help:"Retries per failed page fetch"`
	Concurrency int           `short:"c" default:"0" help:"Concurrent issue rows (0 uses all CPUs)"`
	Threshold   float64       `short:"t" default:"50" help:"Minimum title similarity score (0-100)"`
	Metric      string        `enum:"ratio,jaro-winkler" default:"ratio" help:"Title similarity metric"`
	IgnoreCase  bool          `name:"ignore-case" short:"i" help:"Match titles case-insensitively"`
	JSON        bool          `name:"json" help:"Write JSON instead of tables"`
	Verbose     bool          `short:"v" help:"Log fetches and timings to stderr"`

	Publishers PublishersCmd `cmd:"" help:"List publishers"`
	Titles     TitlesCmd     `cmd:"" help:"Find a publisher's series by title"`
	Issues     IssuesCmd     `cmd:"" help:"Extract issue reviews from a series URL"`
	Scrape     ScrapeCmd     `cmd:"" help:"Find a series by title and extract its issue reviews"`
}

// PublishersCmd is the "publishers" subcommand.
type PublishersCmd struct{}

// TitlesCmd is the "titles" subcommand.
type TitlesCmd struct {
	Publisher string `arg:"" help:"Publisher identifier, e.g. image-comics"`
	Query     string `arg:"" help:"Series title to look for"`
}

// IssuesCmd is the "issues" subcommand.
type IssuesCmd struct {
	Title string `arg:"" help:"Series title recorded on every issue"`
	URL   string `arg:"" help:"Series listing URL"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	Publisher string `arg:"" help:"Publisher identifier, e.g. image-comics"`
	Query     string `arg:"" help:"Series title to look for"`
	Pick      int    `short:"p" default:"1" help:"Rank of the matching title to scrape"`
}

// writeJSON writes v as indented JSON to w.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// userMessage returns the message of the application error inside err,
// keeping the context it was wrapped with, such as the catalog stage.
func userMessage(err error) string {
	var e *cbr.Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	return strings.TrimSuffix(err.Error(), e.Error()) + e.Message
}

// reportError prints err for the user with a hint when one applies.
func reportError(deps *Dependencies, err error) {
	fmt.Fprintf(deps.Stderr, "error: %s\n", userMessage(err))
	if cbr.ErrorCode(err) == cbr.EFETCH {
		fmt.Fprintln(deps.Stderr, "Hint: check your connection, or retry with --retries or --transport browser")
	}
}
