// Package resty provides a cbr.Fetcher backed by github.com/go-resty/resty/v2
// with transport-level retries on connection failures and 5xx responses.
package resty

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Miidoriya/cbr"
	"github.com/go-resty/resty/v2"
)

// DefaultFetchTimeout is the default timeout for a single request attempt.
const DefaultFetchTimeout = 10 * time.Second

// DefaultRetryWait is the initial wait between retried attempts.
const DefaultRetryWait = 500 * time.Millisecond

// Ensure Fetcher implements cbr.Fetcher at compile time.
var _ cbr.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content using a resty client.
type Fetcher struct {
	client    *resty.Client
	timeout   time.Duration
	retries   int
	retryWait time.Duration
	userAgent string
	logger    *slog.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout of each request attempt.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRetries sets how many times a failed request is retried.
// Defaults to no retries.
func WithRetries(n int) Option {
	return func(f *Fetcher) {
		f.retries = n
	}
}

// WithRetryWait sets the initial wait between retries. Resty backs off
// exponentially from there.
func WithRetryWait(d time.Duration) Option {
	return func(f *Fetcher) {
		f.retryWait = d
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithLogger routes resty's own diagnostics to logger.
// Defaults to discarding them.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// NewFetcher creates a new resty-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		retryWait: DefaultRetryWait,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}

	client := resty.New()
	client.SetLogger(restyLogger{f.logger})
	client.SetTimeout(f.timeout)
	client.SetRedirectPolicy(resty.FlexibleRedirectPolicy(10))
	if f.userAgent != "" {
		client.SetHeader("User-Agent", f.userAgent)
	}
	if f.retries > 0 {
		client.SetRetryCount(f.retries)
		client.SetRetryWaitTime(f.retryWait)
		client.SetRetryMaxWaitTime(f.retryWait << f.retries)
		client.AddRetryCondition(func(res *resty.Response, err error) bool {
			return err != nil || res.StatusCode() >= 500
		})
	}
	f.client = client

	return f
}

// Fetch retrieves the HTML content from the given URL.
// Transport failures and non-2xx responses are returned as *cbr.FetchError.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	res, err := f.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return "", &cbr.FetchError{URL: url, Err: err}
	}
	if !res.IsSuccess() {
		return "", &cbr.FetchError{URL: url, StatusCode: res.StatusCode()}
	}
	return res.String(), nil
}

// Close releases idle connections held by the client.
func (f *Fetcher) Close() error {
	f.client.GetClient().CloseIdleConnections()
	return nil
}

// restyLogger adapts slog to resty.Logger.
type restyLogger struct {
	logger *slog.Logger
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.logger.Warn(fmt.Sprintf(format, v...))
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.logger.Warn(fmt.Sprintf(format, v...))
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.logger.Debug(fmt.Sprintf(format, v...))
}
