package collector

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/sociolens/tweetlens/core"
)

// retryFetcher retries the wrapped fetcher with exponential backoff.
type retryFetcher struct {
	next        Fetcher
	maxAttempts int
	baseDelay   time.Duration
}

// WithRetry wraps a fetcher in a retry policy.
// maxAttempts: maximum number of attempts (must be > 0)
// baseDelay: base delay between retries (doubles on each retry)
// Only ErrNetwork failures are retried; anything else fails immediately.
func WithRetry(next Fetcher, maxAttempts int, baseDelay time.Duration) (Fetcher, error) {
	if maxAttempts <= 0 {
		return nil, ErrInvalidMaxAttempts
	}
	return &retryFetcher{
		next:        next,
		maxAttempts: maxAttempts,
		baseDelay:   baseDelay,
	}, nil
}

// Fetch retries the wrapped fetch until it succeeds, returns a
// non-retryable error, or attempts run out.
func (r *retryFetcher) Fetch(ctx context.Context, query string, maxResults int) ([]*core.Record, error) {
	var lastErr error
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		// Check context before attempting
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		records, err := r.next.Fetch(ctx, query, maxResults)
		if err == nil {
			if attempt > 1 {
				slog.Debug("fetch succeeded after retry", "attempt", attempt)
			}
			return records, nil
		}
		if !errors.Is(err, ErrNetwork) {
			return nil, err
		}
		lastErr = err

		slog.Debug("fetch failed, will retry", "attempt", attempt, "maxAttempts", r.maxAttempts, "error", err)

		// Don't sleep after the last attempt
		if attempt == r.maxAttempts {
			break
		}

		// Calculate exponential backoff: baseDelay * 2^(attempt-1)
		delay := r.baseDelay
		for i := 1; i < attempt; i++ {
			delay *= 2
		}

		// Sleep with context awareness
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
			// Continue to next attempt
		}
	}

	return nil, lastErr
}

// rateLimitedFetcher blocks until the limiter admits the request.
type rateLimitedFetcher struct {
	next    Fetcher
	limiter *rate.Limiter
}

// WithRateLimit wraps a fetcher in a rate-limit policy admitting rps
// requests per second with the given burst.
func WithRateLimit(next Fetcher, rps float64, burst int) Fetcher {
	return &rateLimitedFetcher{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// Fetch waits for the limiter, then delegates.
func (r *rateLimitedFetcher) Fetch(ctx context.Context, query string, maxResults int) ([]*core.Record, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return r.next.Fetch(ctx, query, maxResults)
}
