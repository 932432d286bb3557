package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is an error that knows its HTTP status
type Error struct {
	Code    int    `json:"code"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Message
}

// New creates a new error with the given code and message
func New(code int, reason, message string) *Error {
	return &Error{
		Code:    code,
		Reason:  reason,
		Message: message,
	}
}

// Newf creates a new error with the given code and formatted message
func Newf(code int, reason, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Reason:  reason,
		Message: fmt.Sprintf(format, args...),
	}
}

// Common error codes
const (
	CodeInternalError = http.StatusInternalServerError
	CodeNotFound      = http.StatusNotFound
)

// Common error reasons
const (
	ReasonInternalError = "INTERNAL_ERROR"
	ReasonNotFound      = "NOT_FOUND"
)

// Common errors
var (
	ErrInternalError = New(CodeInternalError, ReasonInternalError, "Internal server error")
	ErrNotFound      = New(CodeNotFound, ReasonNotFound, "Resource not found")
)

// From classifies err. Errors that are not an *Error become internal errors
// carrying the original message.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Newf(CodeInternalError, ReasonInternalError, "%v", err)
}
