package common

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardwise/cardwise/internal/service"
)

func fastRetry(attempts int) service.RetryOptions {
	return service.RetryOptions{
		MaxAttempts:  attempts,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
	}
}

func TestWithRetry_SucceedsFirstAttempt(t *testing.T) {
	calls := 0
	err := WithRetry(context.Background(), func() error {
		calls++
		return nil
	}, fastRetry(3))

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_RetriesNetworkFailures(t *testing.T) {
	calls := 0
	err := WithRetry(context.Background(), func() error {
		calls++
		if calls < 3 {
			return ErrNetworkFailure
		}
		return nil
	}, fastRetry(3))

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestWithRetry_GivesUpAfterMaxAttempts(t *testing.T) {
	calls := 0
	err := WithRetry(context.Background(), func() error {
		calls++
		return ErrNetworkFailure
	}, fastRetry(3))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMaxRetries)
	assert.Equal(t, 3, calls)
}

func TestWithRetry_DoesNotRetryMalformedResponses(t *testing.T) {
	calls := 0
	err := WithRetry(context.Background(), func() error {
		calls++
		return ErrMalformedResponse
	}, fastRetry(3))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedResponse)
	assert.Equal(t, 1, calls, "schema errors are not transient")
}

func TestWithRetry_HonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WithRetry(ctx, func() error {
		return ErrNetworkFailure
	}, fastRetry(5))

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(ErrNetworkFailure))
	assert.True(t, IsRetryable(context.DeadlineExceeded))
	assert.True(t, IsRetryable(&RetryableError{Err: errors.New("transient"), Retryable: true}))
	assert.False(t, IsRetryable(&RetryableError{Err: errors.New("permanent"), Retryable: false}))
	assert.False(t, IsRetryable(ErrMalformedResponse))
	assert.False(t, IsRetryable(ErrEmptyCardSet))
	assert.False(t, IsRetryable(errors.New("unknown")))
}
