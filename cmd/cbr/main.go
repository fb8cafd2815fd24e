// Command cbr browses the comic book review catalog: it lists publishers,
// resolves series titles by fuzzy match and extracts per-issue reviews.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/Miidoriya/cbr"
	"github.com/Miidoriya/cbr/catalog"
	"github.com/Miidoriya/cbr/goquery"
	cbrhttp "github.com/Miidoriya/cbr/http"
	"github.com/Miidoriya/cbr/matchr"
	cbrresty "github.com/Miidoriya/cbr/resty"
	"github.com/Miidoriya/cbr/rod"
	cbrslog "github.com/Miidoriya/cbr/slog"
	"github.com/alecthomas/kong"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Catalog overrides the wired catalog service. Set before calling Run()
	// for end-to-end testing.
	Catalog cbr.CatalogService

	fetcher cbr.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.fetcher != nil {
		return m.fetcher.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("cbr"),
		kong.Description("Browse comic book reviews by publisher and series."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'cbr --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.JSON = cli.JSON
	deps.Catalog = m.Catalog
	if deps.Catalog == nil {
		svc, err := m.wire(cli, stderr)
		if err != nil {
			return err
		}
		defer m.Close()
		deps.Catalog = svc
	}

	return kongCtx.Run(deps)
}

// wire builds the catalog service from the global flags.
func (m *Main) wire(cli *CLI, stderr io.Writer) (cbr.CatalogService, error) {
	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	metric, err := matchr.ParseMetric(cli.Metric)
	if err != nil {
		return nil, err
	}

	fetcher, err := newFetcher(cli, logger)
	if err != nil {
		if cli.Transport == "browser" {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
		}
		return nil, fmt.Errorf("failed to create fetcher: %w", err)
	}
	m.fetcher = fetcher

	site := cbr.Site{BaseURL: cli.BaseURL}
	var parser cbr.ListingParser = goquery.NewParser(site)
	if cli.Verbose {
		fetcher = cbrslog.NewLoggingFetcher(fetcher, logger)
		parser = cbrslog.NewLoggingParser(parser, logger)
	}

	pipeline := catalog.NewPipeline(goquery.NewExtractor(goquery.WithSite(site)))
	pipeline.Concurrency = cli.Concurrency
	if cli.Verbose {
		pipeline.Progress = func(p catalog.Progress) {
			logger.Debug("extract progress", "completed", p.Completed, "total", p.Total)
		}
	}

	nav := catalog.NewNavigator(
		site,
		fetcher,
		parser,
		matchr.NewResolver(matchr.WithMetric(metric), matchr.WithCaseFold(cli.IgnoreCase)),
		pipeline,
	)
	nav.Threshold = cli.Threshold
	nav.Logger = func(format string, args ...any) {
		logger.Warn(fmt.Sprintf(format, args...))
	}
	// resty retries inside the transport.
	if cli.Transport != "resty" {
		nav.RetryDelays = catalog.RetryDelays(cli.Retries, time.Second)
	}

	if cli.Verbose {
		return cbrslog.NewLoggingCatalog(nav, logger), nil
	}
	return nav, nil
}

func newFetcher(cli *CLI, logger *slog.Logger) (cbr.Fetcher, error) {
	switch cli.Transport {
	case "resty":
		return cbrresty.NewFetcher(
			cbrresty.WithTimeout(cli.Timeout),
			cbrresty.WithRetries(cli.Retries),
			cbrresty.WithUserAgent(cbrhttp.DefaultUserAgent),
			cbrresty.WithLogger(logger),
		), nil
	case "browser":
		f, err := rod.NewFetcher(rod.WithFetchTimeout(cli.Timeout))
		if err != nil {
			return nil, err
		}
		return f, nil
	default:
		return cbrhttp.NewFetcher(cbrhttp.WithTimeout(cli.Timeout)), nil
	}
}
