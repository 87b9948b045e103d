// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger type that provides structured logging with
//              contextual fields, JSON and text output, and integration with the
//              error package.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2025-10-19 v0.2.0: Synchronous output only, correlation id as the single
//                       request context

package log

import (
	"io"
	"os"
	"sync"

	gerror "github.com/msto63/gregor/foundation/core/error"
)

// Logger represents a structured logger with contextual information.
// With* methods return a modified copy and never change the receiver.
type Logger struct {
	level         Level
	formatter     Formatter
	output        io.Writer
	name          string
	contextFields Fields
	correlationID string

	mutex *sync.Mutex // shared by clones writing to the same output
}

// Config represents logger configuration
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
	Name   string
}

// New creates a new logger with default configuration
func New() *Logger {
	return &Logger{
		level:         DefaultLevel(),
		formatter:     NewJSONFormatter(),
		output:        os.Stderr,
		contextFields: make(Fields),
		mutex:         &sync.Mutex{},
	}
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	logger := &Logger{
		level:         config.Level,
		formatter:     GetFormatter(config.Format),
		output:        config.Output,
		name:          config.Name,
		contextFields: make(Fields),
		mutex:         &sync.Mutex{},
	}

	if config.Output == nil {
		logger.output = os.Stderr
	}

	return logger
}

// Discard returns a logger that drops every entry
func Discard() *Logger {
	return NewWithConfig(Config{Level: LevelFatal + 1, Output: io.Discard})
}

// WithLevel sets the minimum log level
func (l *Logger) WithLevel(level Level) *Logger {
	clone := l.clone()
	clone.level = level
	return clone
}

// WithName sets the logger name
func (l *Logger) WithName(name string) *Logger {
	clone := l.clone()
	clone.name = name
	return clone
}

// WithField adds a persistent field to all log entries
func (l *Logger) WithField(key string, value interface{}) *Logger {
	clone := l.clone()
	clone.contextFields[key] = value
	return clone
}

// WithFields adds persistent fields to all log entries
func (l *Logger) WithFields(fields Fields) *Logger {
	clone := l.clone()
	for k, v := range fields {
		clone.contextFields[k] = v
	}
	return clone
}

// WithCorrelationID sets the correlation ID context
func (l *Logger) WithCorrelationID(correlationID string) *Logger {
	clone := l.clone()
	clone.correlationID = correlationID
	return clone
}

// Trace logs a trace level message
func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(LevelTrace, message, nil, fields...)
}

// Debug logs a debug level message
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields...)
}

// Info logs an info level message
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields...)
}

// Warn logs a warning level message
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields...)
}

// Error logs an error level message
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, fields...)
}

// ErrorWithErr logs an error with an error object
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields...)
}

// LogError logs an error at a level derived from its severity
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	fields := Fields{
		"error_code": gerror.GetCode(err).String(),
	}

	switch gerror.GetSeverity(err) {
	case gerror.SeverityLow:
		l.log(LevelInfo, err.Error(), err, fields)
	case gerror.SeverityMedium:
		l.log(LevelWarn, err.Error(), err, fields)
	default:
		l.log(LevelError, err.Error(), err, fields)
	}
}

// IsLevelEnabled returns true if the given level is enabled
func (l *Logger) IsLevelEnabled(level Level) bool {
	return level.ShouldLog(l.level)
}

// GetLevel returns the current log level
func (l *Logger) GetLevel() Level {
	return l.level
}

// log is the internal logging method
func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	if !level.ShouldLog(l.level) {
		return
	}

	entry := NewEntry(level, message)
	entry.Logger = l.name
	entry.CorrelationID = l.correlationID
	entry.Error = err

	for k, v := range l.contextFields {
		entry.Fields[k] = v
	}

	for _, fieldSet := range fields {
		for k, v := range fieldSet {
			entry.Fields[k] = v
		}
	}

	formatted, formatErr := l.formatter.Format(entry)
	if formatErr != nil {
		return
	}

	l.mutex.Lock()
	l.output.Write(formatted)
	l.mutex.Unlock()
}

// clone creates a copy of the logger for immutable operations
func (l *Logger) clone() *Logger {
	clone := &Logger{
		level:         l.level,
		formatter:     l.formatter,
		output:        l.output,
		name:          l.name,
		correlationID: l.correlationID,
		contextFields: make(Fields, len(l.contextFields)),
		mutex:         l.mutex,
	}

	for k, v := range l.contextFields {
		clone.contextFields[k] = v
	}

	return clone
}
