package retry

import (
	"context"
	"errors"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig(maxAttempts int) Config {
	return Config{
		MaxAttempts:    maxAttempts,
		InitialDelay:   10 * time.Millisecond,
		MaxDelay:       100 * time.Millisecond,
		Multiplier:     2.0,
		JitterFraction: 0.1,
	}
}

func TestWithBackoff_FirstTrySucceeds(t *testing.T) {
	attempts := 0

	err := WithBackoff(context.Background(), fastConfig(3), func() error {
		attempts++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, attempts)
}

func TestWithBackoff_SucceedsAfterTransientFailures(t *testing.T) {
	attempts := 0

	err := WithBackoff(context.Background(), fastConfig(3), func() error {
		attempts++
		if attempts < 3 {
			return &HTTPError{StatusCode: 500, Message: "Server Error"}
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestWithBackoff_ExhaustsAttempts(t *testing.T) {
	attempts := 0
	serverErr := &HTTPError{StatusCode: 503, Message: "Service Unavailable"}

	err := WithBackoff(context.Background(), fastConfig(3), func() error {
		attempts++
		return serverErr
	})

	require.Error(t, err)
	assert.Equal(t, 3, attempts)
	assert.ErrorIs(t, err, serverErr)
}

func TestWithBackoff_StopsOnNonRetryableError(t *testing.T) {
	attempts := 0
	badRequest := &HTTPError{StatusCode: 400, Message: "Bad Request"}

	err := WithBackoff(context.Background(), fastConfig(3), func() error {
		attempts++
		return badRequest
	})

	require.Error(t, err)
	assert.Equal(t, 1, attempts)
	assert.Same(t, badRequest, err)
}

func TestWithBackoff_ContextCanceledDuringWait(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	attempts := 0

	err := WithBackoff(ctx, fastConfig(5), func() error {
		attempts++
		if attempts == 2 {
			cancel()
		}
		return &HTTPError{StatusCode: 500, Message: "Server Error"}
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.GreaterOrEqual(t, attempts, 2)
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		retryable bool
	}{
		{"nil", nil, false},
		{"context canceled", context.Canceled, false},
		{"context deadline", context.DeadlineExceeded, false},
		{"http 500", &HTTPError{StatusCode: 500}, true},
		{"http 502", &HTTPError{StatusCode: 502}, true},
		{"http 429", &HTTPError{StatusCode: 429}, true},
		{"http 408", &HTTPError{StatusCode: 408}, true},
		{"http 400", &HTTPError{StatusCode: 400}, false},
		{"http 404", &HTTPError{StatusCode: 404}, false},
		{"connection refused", syscall.ECONNREFUSED, true},
		{"connection reset", syscall.ECONNRESET, true},
		{"timed out", syscall.ETIMEDOUT, true},
		{"network unreachable", syscall.ENETUNREACH, true},
		{"generic error", errors.New("boom"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.retryable, IsRetryable(tt.err))
		})
	}
}

func TestPresetConfigs(t *testing.T) {
	assert.Equal(t, 3, DefaultConfig().MaxAttempts)
	assert.Equal(t, 30*time.Second, DefaultConfig().MaxDelay)

	assert.Equal(t, 5, FeedFetchConfig().MaxAttempts)

	assert.Equal(t, 2*time.Second, AIAPIConfig().InitialDelay)
	assert.Equal(t, 10*time.Second, AIAPIConfig().MaxDelay)

	assert.Equal(t, 3, PageFetchConfig().MaxAttempts)
	assert.Equal(t, 10*time.Second, PageFetchConfig().MaxDelay)
}

func TestHTTPError_Error(t *testing.T) {
	err := &HTTPError{StatusCode: 500, Message: "Internal Server Error"}
	assert.Equal(t, "HTTP 500: Internal Server Error", err.Error())
}

func TestAddJitter(t *testing.T) {
	base := 100 * time.Millisecond

	seen := make(map[time.Duration]bool)
	for i := 0; i < 10; i++ {
		got := addJitter(base, 0.2)
		assert.GreaterOrEqual(t, got, base)
		assert.LessOrEqual(t, got, time.Duration(float64(base)*1.2))
		seen[got] = true
	}
	assert.Greater(t, len(seen), 1, "jitter should vary")

	assert.Equal(t, base, addJitter(base, 0))
}
