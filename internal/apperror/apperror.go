// Package apperror provides the domain errors returned by the catalog services.
//
// Services return typed errors and callers match them with errors.Is:
//
//	if errors.Is(err, apperror.ErrNotFound) {
//	    ...
//	}
package apperror

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error code.
type Code string

const (
	CodeNotFound   Code = "NOT_FOUND"
	CodeValidation Code = "VALIDATION"
	CodeInternal   Code = "INTERNAL"
)

// ServerErrorMessage is the only message a client sees for non-validation failures.
const ServerErrorMessage = "An error occurred on the server."

// Error is a domain error with a code, a message and optional details.
type Error struct {
	Code    Code
	Message string
	Details any
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches any *Error carrying the same code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

var (
	ErrNotFound   = &Error{Code: CodeNotFound, Message: "not found"}
	ErrValidation = &Error{Code: CodeValidation, Message: "validation error"}
	ErrInternal   = &Error{Code: CodeInternal, Message: "internal error"}
)

func NotFound(msg string) *Error {
	return &Error{Code: CodeNotFound, Message: msg}
}

// Validation carries the ordered list of human readable messages in Details.
func Validation(messages []string) *Error {
	return &Error{Code: CodeValidation, Message: "validation failed", Details: messages}
}

func Internal(cause error) *Error {
	return &Error{Code: CodeInternal, Message: ServerErrorMessage, cause: cause}
}

// Messages returns the validation messages carried by err, if any.
func Messages(err error) []string {
	var e *Error
	if errors.As(err, &e) && e.Code == CodeValidation {
		if messages, ok := e.Details.([]string); ok {
			return messages
		}
	}
	return nil
}
