package retrylimit

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig(maxAttempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts:    maxAttempts,
		InitialDelay:   time.Millisecond,
		MaxDelay:       5 * time.Millisecond,
		RateLimitDelay: time.Millisecond,
		Multiplier:     2.0,
	}
}

type rateLimitErr struct{}

func (rateLimitErr) Error() string   { return "rate limited" }
func (rateLimitErr) StatusCode() int { return http.StatusTooManyRequests }

func TestRetrySucceedsAfterFailures(t *testing.T) {
	attempts := 0
	err := WithRetryConfig(context.Background(), func() error {
		attempts++
		if attempts < 3 {
			return errors.New("transient")
		}
		return nil
	}, nil, fastConfig(5))

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestRetryExhaustsAttempts(t *testing.T) {
	boom := errors.New("boom")
	err := WithRetryConfig(context.Background(), func() error {
		return boom
	}, nil, fastConfig(3))

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestRateLimitErrorShrinksLimiter(t *testing.T) {
	lim := NewAdaptiveLimiter(10, 1, 40, 1, 0.5)
	attempts := 0

	err := WithRetryConfig(context.Background(), func() error {
		attempts++
		if attempts == 1 {
			return rateLimitErr{}
		}
		return nil
	}, lim, fastConfig(5))

	require.NoError(t, err)
	assert.Less(t, lim.CurrentLimit(), 10.0)
}

func TestRetryRespectsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WithRetryConfig(ctx, func() error {
		return errors.New("never succeeds")
	}, nil, fastConfig(10))

	assert.ErrorIs(t, err, context.Canceled)
}
