package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quickPolicy(maxAttempts int) RetryPolicy {
	return RetryPolicy{
		MaxAttempts:       maxAttempts,
		InitialDelay:      time.Millisecond,
		MaxDelay:          10 * time.Millisecond,
		BackoffMultiplier: 2.0,
	}
}

func TestRetryPolicy_SucceedsOnSecondAttempt(t *testing.T) {
	// given
	attempts := 0

	// when
	err := quickPolicy(3).do(context.Background(), func() error {
		attempts++
		if attempts == 1 {
			return &NetworkError{Op: "GET /health", Err: errors.New("connection failed")}
		}
		return nil
	})

	// then
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
}

func TestRetryPolicy_StopsOnNonRetryableError(t *testing.T) {
	// given
	attempts := 0

	// when
	err := quickPolicy(5).do(context.Background(), func() error {
		attempts++
		return ErrUnauthorized
	})

	// then
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, 1, attempts)
}

func TestRetryPolicy_ExhaustsAttemptBudget(t *testing.T) {
	// given
	attempts := 0

	// when
	err := quickPolicy(3).do(context.Background(), func() error {
		attempts++
		return ErrServerError
	})

	// then
	require.ErrorIs(t, err, ErrServerError)
	assert.Equal(t, 3, attempts)
}

func TestRetryPolicy_RespectsContextCancellation(t *testing.T) {
	// given
	ctx, cancel := context.WithCancel(context.Background())
	policy := RetryPolicy{
		MaxAttempts:       3,
		InitialDelay:      time.Hour, // never actually slept through
		MaxDelay:          time.Hour,
		BackoffMultiplier: 2.0,
	}

	attempts := 0
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	// when
	err := policy.do(ctx, func() error {
		attempts++
		return ErrServerError
	})

	// then
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, attempts)
}

func TestRetryPolicy_DelayGrowsAndIsCapped(t *testing.T) {
	// given - no jitter so delays are exact
	policy := RetryPolicy{
		MaxAttempts:       5,
		InitialDelay:      100 * time.Millisecond,
		MaxDelay:          300 * time.Millisecond,
		BackoffMultiplier: 2.0,
	}

	// when / then
	assert.Equal(t, 100*time.Millisecond, policy.delay(0))
	assert.Equal(t, 200*time.Millisecond, policy.delay(1))
	assert.Equal(t, 300*time.Millisecond, policy.delay(2)) // capped
	assert.Equal(t, 300*time.Millisecond, policy.delay(3)) // still capped
}

func TestRetryPolicy_JitterStaysWithinBounds(t *testing.T) {
	// given
	policy := RetryPolicy{
		MaxAttempts:       3,
		InitialDelay:      100 * time.Millisecond,
		MaxDelay:          time.Second,
		BackoffMultiplier: 2.0,
		JitterFactor:      0.1,
	}

	// when / then - 100ms ± 10%
	for range 50 {
		delay := policy.delay(0)
		assert.GreaterOrEqual(t, delay, 90*time.Millisecond)
		assert.LessOrEqual(t, delay, 110*time.Millisecond)
	}
}

func TestNoRetry_SingleAttempt(t *testing.T) {
	// given
	attempts := 0

	// when
	err := NoRetry().do(context.Background(), func() error {
		attempts++
		return ErrServerError
	})

	// then
	require.Error(t, err)
	assert.Equal(t, 1, attempts)
}
