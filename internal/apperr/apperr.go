// Package apperr defines the error type used across the application
package apperr

import "fmt"

// Error is an application error with a user-presentable message.
type Error struct {
	Message string
	base    *Error
}

func (e *Error) Error() string {
	return e.Message
}

// Fmt fills in the message placeholders and returns a new error that
// still matches the original with errors.Is.
func (e *Error) Fmt(args ...any) *Error {
	b := e
	if e.base != nil {
		b = e.base
	}

	return &Error{
		Message: fmt.Sprintf(e.Message, args...),
		base:    b,
	}
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	if t == e || t == e.base {
		return true
	}

	return e.base != nil && e.base == t.base
}
