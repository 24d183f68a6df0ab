package notify

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// retryConfig controls retry behavior with exponential backoff and jitter.
type retryConfig struct {
	// maxAttempts is the total number of attempts (including the first try).
	// A value of 1 means no retries.
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	multiplier     float64
	jitterFraction float64
}

func defaultRetryConfig() retryConfig {
	return retryConfig{
		maxAttempts:    3,
		initialBackoff: 500 * time.Millisecond,
		maxBackoff:     10 * time.Second,
		multiplier:     2.0,
		jitterFraction: 0.25,
	}
}

// doWithRetry executes fn, retrying transient failures with backoff. Context
// cancellation stops retries immediately.
func doWithRetry(ctx context.Context, cfg retryConfig, fn func(ctx context.Context) (*SendResponse, error)) (*SendResponse, error) {
	var lastErr error
	for attempt := 0; attempt < cfg.maxAttempts; attempt++ {
		resp, err := fn(ctx)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return nil, lastErr
		}
		if !isTransient(lastErr) {
			return nil, lastErr
		}
		if attempt >= cfg.maxAttempts-1 {
			break
		}

		zap.L().Warn("retrying email send",
			zap.Int("attempt", attempt+1),
			zap.Error(lastErr),
		)

		timer := time.NewTimer(computeBackoff(attempt, cfg))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, lastErr
		case <-timer.C:
		}
	}
	return nil, lastErr
}

// isTransient reports whether a send failure is worth retrying: rate limiting,
// server-side errors and network timeouts. Client errors (bad payload, bad
// key) never recover on retry.
func isTransient(err error) bool {
	var apiErr *apiError
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusTooManyRequests || apiErr.Status >= http.StatusInternalServerError
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func computeBackoff(attempt int, cfg retryConfig) time.Duration {
	delay := float64(cfg.initialBackoff) * math.Pow(cfg.multiplier, float64(attempt))
	if delay > float64(cfg.maxBackoff) {
		delay = float64(cfg.maxBackoff)
	}
	if cfg.jitterFraction > 0 {
		jitterRange := delay * cfg.jitterFraction
		delay += (rand.Float64()*2 - 1) * jitterRange
	}
	if delay < 0 {
		delay = 0
	}
	return time.Duration(delay)
}
