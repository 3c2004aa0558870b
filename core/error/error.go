// File: error.go
// Title: Core Error Implementation
// Description: Implements the main Error type with error codes, severities,
//              operation context, and a details map. The type stays compatible
//              with Go's standard error interface and the errors package
//              unwrapping conventions.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-02
// Modified: 2026-08-21
//
// Change History:
// - 2026-07-02 v0.1.0: Initial implementation with contextual errors

package error

import (
	stderrors "errors"
	"fmt"
	"time"
)

// Error represents a structured error with code, severity, and metadata
type Error struct {
	// Core error information
	message   string
	cause     error
	code      Code
	severity  Severity
	timestamp time.Time

	// Context and metadata
	details   map[string]interface{}
	operation string
}

// New creates a new Error with the given message
func New(message string) *Error {
	return &Error{
		message:   message,
		code:      CodeUnknown,
		severity:  SeverityMedium,
		timestamp: time.Now(),
		details:   make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message
func Newf(format string, args ...interface{}) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with additional context
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := New(message)
	wrapped.cause = err

	// Inherit code and severity from a wrapped cmdreg error
	var regErr *Error
	if stderrors.As(err, &regErr) {
		wrapped.code = regErr.code
		wrapped.severity = regErr.severity
	}

	return wrapped
}

// WithCode sets the error code
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	return e
}

// WithSeverity sets the error severity
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

// WithOperation sets the operation that produced the error
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// WithDetail adds a single detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	for k, v := range details {
		e.details[k] = v
	}
	return e
}

// Error implements the standard error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}
	return e.message
}

// Unwrap returns the wrapped cause, if any
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether the target matches this error by code
func (e *Error) Is(target error) bool {
	var regErr *Error
	if stderrors.As(target, &regErr) {
		return e.code == regErr.code
	}
	return false
}

// Message returns the error message without the cause chain
func (e *Error) Message() string {
	return e.message
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Severity returns the error severity
func (e *Error) Severity() Severity {
	return e.severity
}

// Timestamp returns the creation time of the error
func (e *Error) Timestamp() time.Time {
	return e.timestamp
}

// Operation returns the operation that produced the error
func (e *Error) Operation() string {
	return e.operation
}

// Details returns a copy of the error details
func (e *Error) Details() map[string]interface{} {
	details := make(map[string]interface{}, len(e.details))
	for k, v := range e.details {
		details[k] = v
	}
	return details
}

// Detail returns a single detail value
func (e *Error) Detail(key string) (interface{}, bool) {
	v, ok := e.details[key]
	return v, ok
}

// IsCode reports whether err (or any error in its chain) carries the given code
func IsCode(err error, code Code) bool {
	var regErr *Error
	if stderrors.As(err, &regErr) {
		return regErr.code == code
	}
	return false
}

// GetCode returns the code of err, or CodeUnknown for non-cmdreg errors
func GetCode(err error) Code {
	var regErr *Error
	if stderrors.As(err, &regErr) {
		return regErr.code
	}
	return CodeUnknown
}
