package orchestrator

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyResponse means the completion service answered with no usable text.
	ErrEmptyResponse = errors.New("AI reply generation failed: empty response")
	// ErrBusy means another request is still in flight.
	ErrBusy = errors.New("a reply is already being generated")
	// ErrNoCompletion means no completion service was configured.
	ErrNoCompletion = errors.New("completion service is not configured")
)

// ValidationError is bad user input caught before any network call.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid content: %v", e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ServiceError wraps a failure of the completion service.
type ServiceError struct {
	Err error
}

func (e *ServiceError) Error() string {
	if e.Err == nil {
		return "AI service temporarily unavailable, please try again later"
	}
	return fmt.Sprintf("AI service temporarily unavailable: %v", e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}
