// Package completion talks to the text-completion service that writes replies
// to diary entries.
package completion

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Request is one system instruction plus the user's text.
type Request struct {
	SystemInstruction string
	UserMessage       string
}

// Service returns free-form reply text for a Request.
type Service interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Func adapts a function to Service.
type Func func(ctx context.Context, req Request) (string, error)

func (f Func) Complete(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}

var ErrMissingAPIKey = errors.New("completion API key is not configured")

// APIError is a non-2xx answer from the provider.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("completion API status %d", e.StatusCode)
	}
	return fmt.Sprintf("completion API status %d: %s", e.StatusCode, e.Message)
}

// Temporary reports whether retrying the same request may succeed.
func (e *APIError) Temporary() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

// isRetryable is true for transport failures and temporary API errors.
func isRetryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, ErrMissingAPIKey) {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Temporary()
	}
	var decodeErr *DecodeError
	return !errors.As(err, &decodeErr)
}

// DecodeError is a 2xx answer whose body could not be understood.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode completion response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
