// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. Calendar computations are
//              deterministic, so most failures are caller mistakes and rank low;
//              configuration failures stop a tool from starting and rank high.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2025-10-19 v0.2.0: Severity mapping for calendar codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates invalid caller input
	SeverityLow Severity = iota

	// SeverityMedium is the default for unclassified errors
	SeverityMedium

	// SeverityHigh indicates the program cannot continue as configured
	SeverityHigh

	// SeverityCritical indicates a broken internal invariant
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeConfigError, CodeInvalidConfig:
		return SeverityHigh
	case CodeInvalidInput, CodeOrderingViolation, CodeUnsupportedField,
		CodeInvalidPattern, CodeValueOutOfRange, CodeNotFound:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
