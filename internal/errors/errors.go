// Package errors carries typed, wrappable errors for the service layers.
// Algorithm packages keep plain sentinels; these types classify failures at
// the storage, benchmark and transport boundaries.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Type tags a failure with the category it belongs to.
type Type string

const (
	TypeValidation    Type = "validation"
	TypeComputation   Type = "computation"
	TypeStorage       Type = "storage"
	TypeConfiguration Type = "configuration"
)

// Error pairs a failure with its category and the operation that hit it.
type Error struct {
	Type      Type
	Operation string
	Message   string
	Cause     error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %s: %v", e.Type, e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Type, e.Operation, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New builds an Error without a cause.
func New(t Type, operation, message string) *Error {
	return &Error{Type: t, Operation: operation, Message: message}
}

// Wrap attaches a category and operation to an existing error. It returns a
// plain nil for a nil cause, so call sites can wrap unconditionally without
// manufacturing a non-nil interface around a nil pointer.
func Wrap(err error, t Type, operation, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Type: t, Operation: operation, Message: message, Cause: err}
}

// IsType reports whether any error in the chain is an Error of category t.
func IsType(err error, t Type) bool {
	var e *Error
	for stderrors.As(err, &e) {
		if e.Type == t {
			return true
		}
		err = e.Unwrap()
	}
	return false
}
