package error

import (
	"errors"
)

// EnvironmentError reports a failure of the host environment (no machine
// identifier, no resolvable directory, unreadable bundled carrier image).
// The trial gate cannot proceed past one of these.
type EnvironmentError struct {
	Op  string
	Err error
}

func (e *EnvironmentError) Error() string {
	if e.Err == nil {
		return e.Op
	}

	return e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying cause.
func (e *EnvironmentError) Unwrap() error {
	return e.Err
}

// NewEnvironmentError wraps err as a fatal environment failure of op
func NewEnvironmentError(op string, err error) error {
	return &EnvironmentError{Op: op, Err: err}
}

// IsEnvironmentError checks if an error, or any error it wraps, is an EnvironmentError
func IsEnvironmentError(err error) bool {
	if err == nil {
		return false
	}

	var envErr *EnvironmentError

	return errors.As(err, &envErr)
}
