package service

import "errors"

// Error kinds. Use errors.Is against these to classify a service error.
var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrNotFound       = errors.New("not found")
	ErrBackend        = errors.New("backend error")
)

// Error is returned by every ExpenseService operation that fails.
// Message is safe to show to clients; Err carries the underlying cause.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func invalidRequest(msg string) *Error {
	return &Error{Kind: ErrInvalidRequest, Message: msg}
}

func notFound(msg string) *Error {
	return &Error{Kind: ErrNotFound, Message: msg}
}

func backend(msg string, err error) *Error {
	return &Error{Kind: ErrBackend, Message: msg, Err: err}
}
