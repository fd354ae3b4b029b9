// Package apierror defines the error value the JSON error responder reads.
//
// Error is deliberately an unstructured bag of optional attributes: the
// responder reads zero or more of {Status, StatusCode, Message, Code, Name,
// Type, Stack} and omits whatever is absent. There is no hierarchy and no
// validation; the zero value is a legal (attribute-sparse) error.
package apierror

import "errors"

// Error carries the optional attributes translated into a JSON error body.
type Error struct {
	Status     int    // candidate HTTP status, checked first
	StatusCode int    // fallback candidate, checked when Status is zero
	Message    string // caller-facing message (client-class responses only)
	Code       int    // machine-readable numeric code
	Name       string // error name, e.g. "ValidationError"
	Type       string // error sub-type, e.g. "field"
	Stack      string // diagnostic trace text
}

// New returns an Error with the given status and message.
func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Message != "" {
		return e.Message
	}
	return "api error"
}

// WithCode sets the numeric code and returns the receiver for chaining.
func (e *Error) WithCode(code int) *Error {
	e.Code = code
	return e
}

// WithName sets the error name and returns the receiver for chaining.
func (e *Error) WithName(name string) *Error {
	e.Name = name
	return e
}

// WithType sets the error type and returns the receiver for chaining.
func (e *Error) WithType(t string) *Error {
	e.Type = t
	return e
}

// WithStack sets the stack trace text and returns the receiver for chaining.
func (e *Error) WithStack(stack string) *Error {
	e.Stack = stack
	return e
}

// From extracts an *Error from anywhere in err's chain, or returns nil.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}
