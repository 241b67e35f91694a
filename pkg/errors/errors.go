// Package errors carries coded errors through every layer of autoframe.
//
// A [Code] says what went wrong in a form callers can branch on; the
// message says it in words a designer can act on. The CLI prints
// [UserMessage], the bridge folds it into conversion messages, and the HTTP
// API answers with [HTTPStatus] and the code.
//
//	err := errors.New(errors.ErrCodeUnsupportedType, "%q is a %s", name, kind)
//	if errors.Is(err, errors.ErrCodeUnsupportedType) {
//	    // count as failed, keep going
//	}
//
//	err = errors.Wrap(errors.ErrCodeHostWrite, cause, "set padding on %q", name)
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code is a machine-readable error code.
type Code string

const (
	// Malformed input
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidDocument Code = "INVALID_DOCUMENT"
	ErrCodeInvalidGeometry Code = "INVALID_GEOMETRY"
	ErrCodeInvalidOptions  Code = "INVALID_OPTIONS"
	ErrCodeInvalidMessage  Code = "INVALID_MESSAGE"

	// Missing resources
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeNodeNotFound Code = "NODE_NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// A container or selection that cannot be converted
	ErrCodeUnsupportedType Code = "UNSUPPORTED_TYPE"
	ErrCodeMixedLayout     Code = "MIXED_LAYOUT"
	ErrCodeEmptySelection  Code = "EMPTY_SELECTION"

	// The host refused a property write
	ErrCodeHostWrite Code = "HOST_WRITE"

	ErrCodeInternal Code = "INTERNAL_ERROR"
)

var statusByCode = map[Code]int{
	ErrCodeInvalidInput:    http.StatusBadRequest,
	ErrCodeInvalidDocument: http.StatusBadRequest,
	ErrCodeInvalidGeometry: http.StatusBadRequest,
	ErrCodeInvalidOptions:  http.StatusBadRequest,
	ErrCodeInvalidMessage:  http.StatusBadRequest,
	ErrCodeNotFound:        http.StatusNotFound,
	ErrCodeNodeNotFound:    http.StatusNotFound,
	ErrCodeFileNotFound:    http.StatusNotFound,
	ErrCodeUnsupportedType: http.StatusUnprocessableEntity,
	ErrCodeMixedLayout:     http.StatusUnprocessableEntity,
	ErrCodeEmptySelection:  http.StatusUnprocessableEntity,
}

// Status is the HTTP status for the code; unknown codes are server errors.
func (c Code) Status() int {
	if s, ok := statusByCode[c]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// Error is a coded error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New creates an error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an error around cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// as finds the outermost *Error in err's chain.
func as(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// Is reports whether the outermost *Error in err's chain has code.
func Is(err error, code Code) bool {
	e, ok := as(err)
	return ok && e.Code == code
}

// GetCode returns the code of the outermost *Error in err's chain, or "".
func GetCode(err error) Code {
	if e, ok := as(err); ok {
		return e.Code
	}
	return ""
}

// UserMessage returns the message without the code prefix. Errors without a
// code are returned as-is.
func UserMessage(err error) string {
	e, ok := as(err)
	if !ok {
		return err.Error()
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// HTTPStatus maps err to the status the HTTP API answers with.
func HTTPStatus(err error) int {
	return GetCode(err).Status()
}
