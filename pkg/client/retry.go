package client

import (
	"context"
	"math"
	"math/rand/v2"
	"time"
)

// RetryPolicy controls retries with exponential backoff and jitter.
type RetryPolicy struct {
	// MaxAttempts is the total number of attempts including the first one.
	MaxAttempts int
	// InitialDelay is the delay before the first retry.
	InitialDelay time.Duration
	// MaxDelay caps the delay between retries.
	MaxDelay time.Duration
	// BackoffMultiplier scales the delay after every attempt (typically 2.0).
	BackoffMultiplier float64
	// JitterFactor randomizes each delay by ±factor (0.0 to 1.0).
	JitterFactor float64
}

// DefaultRetryPolicy is the production policy: three attempts with a short
// initial delay.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:       3,
		InitialDelay:      500 * time.Millisecond,
		MaxDelay:          10 * time.Second,
		BackoffMultiplier: 2.0,
		JitterFactor:      0.1,
	}
}

// AggressiveRetryPolicy retries more, faster. Useful for flaky links.
func AggressiveRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:       5,
		InitialDelay:      100 * time.Millisecond,
		MaxDelay:          5 * time.Second,
		BackoffMultiplier: 1.5,
		JitterFactor:      0.2,
	}
}

// NoRetry disables retries entirely.
func NoRetry() RetryPolicy {
	return RetryPolicy{MaxAttempts: 1, BackoffMultiplier: 1.0}
}

// do runs operation until it succeeds, exhausts the attempt budget, fails
// with a non-retryable error, or the context is done.
func (p RetryPolicy) do(ctx context.Context, operation func() error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		lastErr = operation()
		if lastErr == nil {
			return nil
		}
		if !isRetryable(lastErr) {
			return lastErr
		}
		if attempt+1 < attempts {
			if err := sleepContext(ctx, p.delay(attempt)); err != nil {
				return err
			}
		}
	}
	return lastErr
}

// delay computes the backoff for the given zero-based attempt, with jitter
// to avoid thundering herds.
func (p RetryPolicy) delay(attempt int) time.Duration {
	base := float64(p.InitialDelay.Milliseconds())
	exponential := base * math.Pow(p.BackoffMultiplier, float64(attempt))
	capped := math.Min(exponential, float64(p.MaxDelay.Milliseconds()))

	if p.JitterFactor > 0 {
		amplitude := capped * p.JitterFactor
		capped += (rand.Float64()*2 - 1) * amplitude
	}

	if capped < 0 {
		capped = 0
	}
	return time.Duration(capped) * time.Millisecond
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
