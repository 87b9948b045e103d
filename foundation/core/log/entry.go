// File: entry.go
// Title: Log Entry Structure
// Description: Defines the log entry and the Fields helpers used to attach
//              structured key/value data to a message.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive log entry structure
// - 2025-10-19 v0.2.0: Dropped request/user context and caller info

package log

import (
	"time"
)

// Entry represents a single log entry with all its metadata
type Entry struct {
	Timestamp     time.Time
	Level         Level
	Message       string
	Logger        string
	CorrelationID string
	Fields        Fields
	Error         error
}

// Fields represents custom key-value pairs for structured logging
type Fields map[string]interface{}

// NewEntry creates an entry stamped with the current time
func NewEntry(level Level, message string) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    make(Fields),
	}
}

// Field creates a single field for logging
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Err creates an error field for logging
func Err(err error) Fields {
	return Fields{"error": err}
}

// Merge combines multiple Fields into one
func (f Fields) Merge(other Fields) Fields {
	result := make(Fields, len(f)+len(other))
	for k, v := range f {
		result[k] = v
	}
	for k, v := range other {
		result[k] = v
	}
	return result
}
