package completion

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetry(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts: attempts,
		BaseBackoff: time.Millisecond,
		MaxInterval: 2 * time.Millisecond,
		Logger:      zerolog.Nop(),
	}
}

func TestRetryingRecoversFromTransientErrors(t *testing.T) {
	calls := 0
	svc := Func(func(ctx context.Context, req Request) (string, error) {
		calls++
		if calls < 3 {
			return "", &APIError{StatusCode: http.StatusBadGateway}
		}
		return "ok", nil
	})

	text, err := Retrying(svc, fastRetry(3)).Complete(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
	assert.Equal(t, 3, calls)
}

func TestRetryingGivesUpAfterMaxAttempts(t *testing.T) {
	calls := 0
	transport := errors.New("connection reset")
	svc := Func(func(ctx context.Context, req Request) (string, error) {
		calls++
		return "", transport
	})

	_, err := Retrying(svc, fastRetry(2)).Complete(context.Background(), Request{})
	assert.ErrorIs(t, err, transport)
	assert.Equal(t, 2, calls)
}

func TestRetryingStopsOnPermanentErrors(t *testing.T) {
	cases := []error{
		&APIError{StatusCode: http.StatusUnauthorized, Message: "bad key"},
		&DecodeError{Err: errors.New("eof")},
		ErrMissingAPIKey,
	}
	for _, permanent := range cases {
		calls := 0
		svc := Func(func(ctx context.Context, req Request) (string, error) {
			calls++
			return "", permanent
		})
		_, err := Retrying(svc, fastRetry(5)).Complete(context.Background(), Request{})
		assert.ErrorIs(t, err, permanent)
		assert.Equal(t, 1, calls, "error %v should not be retried", permanent)
	}
}

func TestRetryingSingleAttemptIsPassthrough(t *testing.T) {
	svc := Func(func(ctx context.Context, req Request) (string, error) { return "x", nil })
	wrapped := Retrying(svc, fastRetry(1))
	_, isRetrying := wrapped.(*retrying)
	assert.False(t, isRetrying)
}

func TestInstrumentedPassesThrough(t *testing.T) {
	boom := errors.New("boom")
	svc := Instrumented(Func(func(ctx context.Context, req Request) (string, error) {
		if req.UserMessage == "fail" {
			return "", boom
		}
		return req.UserMessage, nil
	}))

	text, err := svc.Complete(context.Background(), Request{UserMessage: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "hi", text)

	_, err = svc.Complete(context.Background(), Request{UserMessage: "fail"})
	assert.ErrorIs(t, err, boom)
}
