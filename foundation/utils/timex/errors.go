// File: errors.go
// Title: Calendar Error Helpers
// Description: Constructors and predicates for the error codes raised by the
//              timex package.
// Author: msto63
// Version: v0.2.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.2.0: Initial implementation

package timex

import (
	gerror "github.com/msto63/gregor/foundation/core/error"
)

// IsOrderingViolation reports whether err was caused by an interval whose start
// lies after its end
func IsOrderingViolation(err error) bool {
	return gerror.HasCode(err, gerror.CodeOrderingViolation)
}

// IsUnsupportedField reports whether err was caused by a pattern that asked a
// calendar value for a field it does not carry
func IsUnsupportedField(err error) bool {
	return gerror.HasCode(err, gerror.CodeUnsupportedField)
}

// IsInvalidInput reports whether err was caused by an invalid calendar value,
// an unknown pattern name, a malformed pattern or an unparseable string
func IsInvalidInput(err error) bool {
	return gerror.HasCode(err, gerror.CodeInvalidInput) ||
		gerror.HasCode(err, gerror.CodeInvalidPattern)
}

func invalidInput(operation, format string, args ...interface{}) *gerror.Error {
	return gerror.Newf(format, args...).
		WithCode(gerror.CodeInvalidInput).
		WithOperation(operation)
}

func invalidPattern(pattern, format string, args ...interface{}) *gerror.Error {
	return gerror.Newf(format, args...).
		WithCode(gerror.CodeInvalidPattern).
		WithOperation("timex.CompilePattern").
		WithDetail("pattern", pattern)
}
