// Package rod provides a cbr.Fetcher that renders pages in headless Chrome
// through github.com/go-rod/rod. It serves sites that gate listings behind
// JavaScript challenges a plain HTTP client cannot pass.
package rod

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Miidoriya/cbr"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout bounds a single page load.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements cbr.Fetcher at compile time.
var _ cbr.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
	timeout  time.Duration

	closed    atomic.Bool
	closeOnce sync.Once
	closeErr  error
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the timeout of a single page load.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{timeout: DefaultFetchTimeout}
	for _, opt := range opts {
		opt(f)
	}

	l := launcher.New().Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	f.launcher = l
	f.browser = browser
	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
// Navigation failures are returned as *cbr.FetchError.
// Returns EINVALID after Close.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.closed.Load() {
		return "", cbr.Errorf(cbr.EINVALID, "fetcher is closed")
	}
	if err := ctx.Err(); err != nil {
		return "", &cbr.FetchError{URL: url, Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", &cbr.FetchError{URL: url, Err: err}
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", &cbr.FetchError{URL: url, Err: err}
	}
	if err := page.WaitLoad(); err != nil {
		return "", &cbr.FetchError{URL: url, Err: err}
	}

	html, err := page.HTML()
	if err != nil {
		return "", &cbr.FetchError{URL: url, Err: err}
	}
	return html, nil
}

// LauncherPID returns the process ID of the launched browser.
func (f *Fetcher) LauncherPID() int {
	return f.launcher.PID()
}

// Close closes the browser and kills its process. Calling Close more than
// once returns the first result.
func (f *Fetcher) Close() error {
	f.closeOnce.Do(func() {
		f.closed.Store(true)
		f.closeErr = f.browser.Close()
		f.launcher.Kill()
	})
	return f.closeErr
}
