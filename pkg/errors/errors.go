// Package errors augments the standard errors
// with sentinel values that can wrap a cause,
// so call sites may both match a taxonomy error
// with Is() and retain the underlying failure.
package errors

import (
	stderr "errors"
)

var _ error = New("")

// New builds a sentinel Error with a fixed message
func New(msg string) *Error {
	return &Error{msg: msg}
}

// Error is a message-identified error that may carry a wrapped cause.
//
// Unlike fmt.Errorf("%w", ...), wrapping does not alter the message, so
// a sentinel stays printable as declared while Unwrap exposes the cause.
type Error struct {
	msg string
	err error
}

// Error message
func (e *Error) Error() string {
	return e.msg
}

// Unwrap the nested cause, if any
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}

// Wrap a cause under this sentinel. A new value is returned
// so package-level sentinels are never mutated.
func (e *Error) Wrap(err error) *Error {
	return &Error{msg: e.msg, err: err}
}

// Is reports a match on the sentinel itself or its message identity
func (e *Error) Is(target error) bool {
	if o, ok := target.(*Error); ok {
		return e == o || e.msg == o.msg
	}
	return e.err == target
}

// As finds the first error in err's chain that matches target
// (a shortcut to standard lib errors.As)
func As(err error, target interface{}) bool {
	return stderr.As(err, target)
}

// Is reports whether any error in err's chain matches target
// (a shortcut to standard lib errors.Is)
func Is(err, target error) bool {
	return stderr.Is(err, target)
}
