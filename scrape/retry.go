package scrape

import (
	"context"
	"time"

	"github.com/fwojciec/rolodex"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, source string) (*rolodex.FetchResult, error)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// FetchWithRetry attempts to fetch a source with exponential backoff retry
// logic. It retries up to 3 times (4 total attempts) with delays of 1s, 2s,
// 4s. The logger function, if provided, is called for each retry attempt.
func FetchWithRetry(ctx context.Context, source string, fetch FetchFunc, logger LogFunc) (*rolodex.FetchResult, error) {
	return FetchWithRetryDelays(ctx, source, fetch, logger, DefaultRetryDelays())
}

// FetchWithRetryDelays is like FetchWithRetry but allows configurable delays.
// This is useful for testing without waiting for real delays.
func FetchWithRetryDelays(ctx context.Context, source string, fetch FetchFunc, logger LogFunc, delays []time.Duration) (*rolodex.FetchResult, error) {
	maxAttempts := len(delays) + 1 // 1 initial + N retries

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		result, err := fetch(ctx, source)
		if err == nil {
			return result, nil
		}
		lastErr = err

		// Blocked, invalid and missing sources are permanent failures.
		if !retryable(err) {
			break
		}

		// Don't retry after the last attempt
		if attempt >= maxAttempts-1 {
			break
		}

		// Check context before sleeping
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		// Log retry
		if logger != nil {
			logger("  retry %s (attempt %d): %v", source, attempt+2, err)
		}

		// Wait before next attempt
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return nil, lastErr
}

// retryable reports whether a fetch error is worth another attempt.
func retryable(err error) bool {
	switch rolodex.ErrorCode(err) {
	case rolodex.EFORBIDDEN, rolodex.EINVALID, rolodex.ENOTFOUND:
		return false
	}
	return true
}
