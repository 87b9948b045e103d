// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used by the gregor calendar library and its
//              command line tools. Codes classify failures so callers can react
//              to an ordering violation differently from a malformed input.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2025-10-19 v0.2.0: Reduced to calendar and configuration codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Calendar and interval codes
	CodeOrderingViolation Code = "ORDERING_VIOLATION"
	CodeUnsupportedField  Code = "UNSUPPORTED_FIELD"
	CodeInvalidPattern    Code = "INVALID_PATTERN"
	CodeValueOutOfRange   Code = "VALUE_OUT_OF_RANGE"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeOrderingViolation, CodeUnsupportedField, CodeInvalidPattern, CodeValueOutOfRange,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeOrderingViolation:
		return "interval"
	case CodeUnsupportedField, CodeInvalidPattern:
		return "format"
	case CodeInvalidInput, CodeValueOutOfRange:
		return "validation"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// ExitCode maps the code to a process exit status for the CLI.
func (c Code) ExitCode() int {
	switch c.Category() {
	case "validation", "interval", "format":
		return 2
	case "configuration":
		return 3
	default:
		return 1
	}
}
