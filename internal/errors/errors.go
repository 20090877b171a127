// Package errors provides standardized error kinds that express intent rather than
// infrastructure details. Use cases return errors matching one of these kinds and
// handlers map them to HTTP status codes.
package errors

import (
	"errors"
	"fmt"
)

// Standard error kinds shared by every module.
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates the input data is invalid or cannot be processed.
	ErrInvalidInput = errors.New("invalid input")

	// ErrTooManyRequests indicates the caller exceeded its rate limit.
	ErrTooManyRequests = errors.New("too many requests")
)

// New creates a new error with the given message.
// This is a convenience wrapper around errors.New for consistency.
func New(message string) error {
	return errors.New(message)
}

// Wrap wraps an error with additional context while preserving the error chain.
// Use this to add context at each layer without losing the original error type.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf is like Wrap but formats the context message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Tag returns an error whose message is exactly message and which matches kind
// under Is. Unlike Wrap, the kind's text is not appended to the message, which
// keeps user-facing messages stable.
func Tag(kind error, message string) error {
	return &taggedError{kind: kind, message: message}
}

type taggedError struct {
	kind    error
	message string
}

func (e *taggedError) Error() string { return e.message }

func (e *taggedError) Unwrap() error { return e.kind }

// Is reports whether any error in err's tree matches target.
// This is a convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
// This is a convenience wrapper around errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}
