// Package apperr carries the error taxonomy shared by all domain operations:
// every failure is classified so the transport layer can map it to a status
// without inspecting message text.
package apperr

import "errors"

type Kind int

const (
	Internal Kind = iota
	Unauthorized
	Forbidden
	Validation
	Conflict
	NotFound
)

// Error is a classified domain error. Field is set for Validation errors that
// identify a single offending input field. Err holds the underlying cause for
// Internal errors; it is logged at the boundary and never sent to clients.
type Error struct {
	Kind    Kind
	Field   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// NewField builds a Validation error naming the offending field.
func NewField(field, message string) *Error {
	return &Error{Kind: Validation, Field: field, Message: message}
}

// Wrap classifies an unexpected failure as Internal, keeping the cause for
// logging while message is what the client sees.
func Wrap(err error, message string) *Error {
	return &Error{Kind: Internal, Message: message, Err: err}
}

// Classify returns err unchanged when it is already a classified error,
// otherwise wraps it as Internal with the given client-facing message.
func Classify(err error, message string) error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, message)
}

// KindOf extracts the kind of err; anything unclassified is Internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// Message returns the client-facing message of err, or fallback when err is
// not a classified error (raw storage detail must not cross the boundary).
func Message(err error, fallback string) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return fallback
}
