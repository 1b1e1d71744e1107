package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is the single error type crossing layer boundaries. Repositories wrap
// storage failures, services add domain violations, handlers map Status to the
// HTTP response. Err keeps the cause for logs; it is never sent to clients.
type Error struct {
	Status int
	Code   string
	Msg    string
	Err    error
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Code
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string) error {
	return &Error{Status: http.StatusBadRequest, Code: "VALIDATION_ERROR", Msg: msg}
}

func Validationf(format string, args ...any) error {
	return Validation(fmt.Sprintf(format, args...))
}

func Authentication(msg string) error {
	return &Error{Status: http.StatusUnauthorized, Code: "AUTHENTICATION_ERROR", Msg: msg}
}

func Forbidden(msg string) error {
	return &Error{Status: http.StatusForbidden, Code: "FORBIDDEN", Msg: msg}
}

func NotFound(msg string) error {
	return &Error{Status: http.StatusNotFound, Code: "NOT_FOUND", Msg: msg}
}

func Database(msg string, err error) error {
	return &Error{Status: http.StatusInternalServerError, Code: "DATABASE_ERROR", Msg: msg, Err: err}
}

func Internal(msg string, err error) error {
	return &Error{Status: http.StatusInternalServerError, Code: "INTERNAL_ERROR", Msg: msg, Err: err}
}

// From extracts an *Error; anything else becomes an opaque 500 so internal
// details never reach the response body.
func From(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return &Error{Status: http.StatusInternalServerError, Code: "INTERNAL_ERROR", Msg: "internal error", Err: err}
}
