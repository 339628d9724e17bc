// Package provider defines the contract between services and external
// model-completion APIs, plus the error classification retry loops rely on.
package provider

import (
	"context"
	"errors"
)

// CompletionRequest is a single chat-style completion call.
type CompletionRequest struct {
	System string
	Prompt string
}

// Completer produces a text completion for a request.
// Implementations classify their failures as transient or fatal.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// TransientError represents a temporary failure that may succeed on retry.
type TransientError struct {
	err error
}

func (e *TransientError) Error() string {
	return e.err.Error()
}

func (e *TransientError) Unwrap() error {
	return e.err
}

// NewTransientError wraps an error as transient (retryable).
func NewTransientError(err error) error {
	return &TransientError{err: err}
}

// FatalError represents a permanent failure that must not be retried.
type FatalError struct {
	err error
}

func (e *FatalError) Error() string {
	return e.err.Error()
}

func (e *FatalError) Unwrap() error {
	return e.err
}

// NewFatalError wraps an error as fatal (non-retryable).
func NewFatalError(err error) error {
	return &FatalError{err: err}
}

// ErrMalformedReply marks completions the upstream returned in an unusable
// shape (no choices, empty content). Never retried.
var ErrMalformedReply = errors.New("malformed provider reply")

// IsTransient reports whether the error is transient and worth retrying.
func IsTransient(err error) bool {
	var transient *TransientError
	return errors.As(err, &transient)
}

// IsFatal reports whether the error is fatal and must not be retried.
func IsFatal(err error) bool {
	var fatal *FatalError
	return errors.As(err, &fatal)
}
