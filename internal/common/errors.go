// Package common provides shared utilities and types used across the application.
package common

import (
	"context"
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Catalog errors.
	ErrUnknownCategory = errors.New("unknown category")

	// Reward analyzer errors.
	ErrNetworkFailure    = errors.New("reward analyzer unreachable")
	ErrMalformedResponse = errors.New("malformed analyzer response")

	// Ranking errors.
	ErrEmptyCardSet     = errors.New("no eligible cards")
	ErrInvalidBreakdown = errors.New("invalid reward breakdown")

	// Session errors.
	ErrStaleTransaction  = errors.New("stale transaction")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrAnalysisPending   = errors.New("analysis still pending")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// IsRetryable determines if an error should trigger a retry.
func IsRetryable(err error) bool {
	// Transport problems are worth retrying; schema problems are not until
	// the backend changes.
	if errors.Is(err, ErrNetworkFailure) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var retryableErr *RetryableError
	if errors.As(err, &retryableErr) {
		return retryableErr.Retryable
	}

	return false
}
