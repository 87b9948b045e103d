// File: error.go
// Title: Core Error Implementation
// Description: Implements the Error type carrying a code, severity, the failing
//              operation and key/value details. It stays compatible with the
//              standard error interface, including errors.Is/As unwrapping.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors
// - 2025-10-19 v0.2.0: Dropped stack capture and user/request context, chain-aware
//                       code lookup

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Error represents a structured error with code, operation and details
type Error struct {
	message   string
	cause     error
	code      Code
	severity  Severity
	operation string
	details   map[string]interface{}
}

// New creates a new Error with the given message
func New(message string) *Error {
	return &Error{
		message:  message,
		code:     CodeUnknown,
		severity: SeverityMedium,
		details:  make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message
func Newf(format string, args ...interface{}) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with additional context.
// The code and severity of a wrapped *Error are preserved.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := &Error{
		message:  message,
		cause:    err,
		code:     CodeUnknown,
		severity: SeverityMedium,
		details:  make(map[string]interface{}),
	}

	var inner *Error
	if errors.As(err, &inner) {
		wrapped.code = inner.code
		wrapped.severity = inner.severity
		for k, v := range inner.details {
			wrapped.details[k] = v
		}
	}

	return wrapped
}

// Error implements the standard error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.message, e.cause.Error())
	}
	return e.message
}

// Unwrap returns the underlying cause for error unwrapping
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is an *Error with the same code.
// A target without a message matches on code alone.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.message != "" && t.message != e.message {
		return false
	}
	return t.code == e.code
}

// WithCode sets the error code
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	if e.severity == SeverityMedium {
		e.severity = GetSeverityFromCode(code)
	}
	return e
}

// WithSeverity sets the error severity
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

// WithOperation sets the operation that caused the error
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// WithDetail adds a key-value detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Severity returns the error severity
func (e *Error) Severity() Severity {
	return e.severity
}

// Operation returns the operation that caused the error
func (e *Error) Operation() string {
	return e.operation
}

// Details returns a copy of the error details
func (e *Error) Details() map[string]interface{} {
	result := make(map[string]interface{}, len(e.details))
	for k, v := range e.details {
		result[k] = v
	}
	return result
}

// String returns a detailed multi-line representation of the error
func (e *Error) String() string {
	parts := []string{
		fmt.Sprintf("Error: %s", e.message),
		fmt.Sprintf("Code: %s", e.code),
		fmt.Sprintf("Severity: %s", e.severity),
	}

	if e.operation != "" {
		parts = append(parts, fmt.Sprintf("Operation: %s", e.operation))
	}

	if len(e.details) > 0 {
		keys := make([]string, 0, len(e.details))
		for k := range e.details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		detailStrs := make([]string, 0, len(keys))
		for _, k := range keys {
			detailStrs = append(detailStrs, fmt.Sprintf("%s=%v", k, e.details[k]))
		}
		parts = append(parts, fmt.Sprintf("Details: {%s}", strings.Join(detailStrs, ", ")))
	}

	if e.cause != nil {
		parts = append(parts, fmt.Sprintf("Cause: %s", e.cause.Error()))
	}

	return strings.Join(parts, "\n")
}

// MarshalJSON implements json.Marshaler for structured logging
func (e *Error) MarshalJSON() ([]byte, error) {
	data := map[string]interface{}{
		"message":  e.message,
		"code":     e.code,
		"severity": e.severity.String(),
	}

	if len(e.details) > 0 {
		data["details"] = e.details
	}

	if e.operation != "" {
		data["operation"] = e.operation
	}

	if e.cause != nil {
		data["cause"] = e.cause.Error()
	}

	return json.Marshal(data)
}

// HasCode checks if any error in the chain has the given code
func HasCode(err error, code Code) bool {
	for err != nil {
		if e, ok := err.(*Error); ok && e.code == code {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// GetCode returns the code of the outermost *Error in the chain, or CodeUnknown
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.code
	}
	return CodeUnknown
}

// GetSeverity returns the error severity, or SeverityMedium for foreign errors
func GetSeverity(err error) Severity {
	var e *Error
	if errors.As(err, &e) {
		return e.severity
	}
	return SeverityMedium
}
