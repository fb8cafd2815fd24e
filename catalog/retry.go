package catalog

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Miidoriya/cbr"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) (string, error)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// Retryable reports whether a failed fetch may succeed when repeated.
// A 4xx response names a listing that does not exist or is refused, so it
// is final; 429 is the exception.
func Retryable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	var fe *cbr.FetchError
	if errors.As(err, &fe) && fe.StatusCode >= 400 && fe.StatusCode < 500 {
		return fe.StatusCode == http.StatusTooManyRequests
	}
	return true
}

// FetchWithRetryDelays fetches url, waiting delays[i] before retry i+1.
// With no delays the fetch is attempted once, and errors that are not
// Retryable end the loop immediately. logger, if set, reports each retry.
func FetchWithRetryDelays(ctx context.Context, url string, fetch FetchFunc, logger LogFunc, delays []time.Duration) (string, error) {
	for attempt := 0; ; attempt++ {
		page, err := fetch(ctx, url)
		if err == nil {
			return page, nil
		}
		if attempt == len(delays) || !Retryable(err) {
			return "", err
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		if logger != nil {
			logger("retry %s in %s (attempt %d): %v", url, delays[attempt], attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}
}

// RetryDelays builds n exponential backoff delays starting at base.
func RetryDelays(n int, base time.Duration) []time.Duration {
	delays := make([]time.Duration, 0, max(n, 0))
	for i := range n {
		delays = append(delays, base<<i)
	}
	return delays
}
