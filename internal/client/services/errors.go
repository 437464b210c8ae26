package services

import (
	"errors"
	"fmt"
)

// Kinds of failure reported by AuthService and PictureService. Match them
// with errors.Is.
var (
	ErrRejected        = errors.New("rejected by service")
	ErrNetwork         = errors.New("network failure")
	ErrUnauthenticated = errors.New("not authenticated")
	ErrSessionExpired  = errors.New("session expired")
	ErrInvalidInput    = errors.New("invalid input")
	ErrFailed          = errors.New("operation failed")
)

// Error pairs a failure kind with a message fit for the user. Err keeps the
// underlying cause, if any.
type Error struct {
	Kind    error
	Message string
	Err     error
}

type (
	AuthError     = Error
	ResourceError = Error
)

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return fmt.Sprintf("%v: %v", e.Kind, e.Err)
	}
	return e.Kind.Error()
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Message extracts the user-facing text of err, falling back to err.Error().
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return err.Error()
}
