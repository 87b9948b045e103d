// File: format.go
// Title: Log Format Definitions
// Description: Defines the JSON and text output formats for log entries.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with multiple output formats
// - 2025-10-19 v0.2.0: Reduced to JSON and text, sorted text fields

package log

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Format represents the output format for log messages
type Format int

const (
	// FormatJSON outputs structured JSON logs
	FormatJSON Format = iota

	// FormatText outputs human-readable text logs
	FormatText
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a log format
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return FormatJSON, nil
	case "text":
		return FormatText, nil
	default:
		return FormatJSON, &ParseError{Input: format, Type: "format"}
	}
}

// Formatter defines the interface for log formatters
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// GetFormatter returns the formatter for the given format
func GetFormatter(format Format) Formatter {
	if format == FormatText {
		return NewTextFormatter()
	}
	return NewJSONFormatter()
}

// JSONFormatter formats log entries as JSON
type JSONFormatter struct {
	TimestampFormat string
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{TimestampFormat: time.RFC3339}
}

// Format formats a log entry as a single JSON line
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	data := make(map[string]interface{}, len(entry.Fields)+6)

	for k, v := range entry.Fields {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		data[k] = v
	}

	data["timestamp"] = entry.Timestamp.Format(f.TimestampFormat)
	data["level"] = entry.Level.String()
	data["message"] = entry.Message

	if entry.Logger != "" {
		data["logger"] = entry.Logger
	}

	if entry.CorrelationID != "" {
		data["correlation_id"] = entry.CorrelationID
	}

	if entry.Error != nil {
		data["error"] = entry.Error.Error()
		if m, ok := entry.Error.(json.Marshaler); ok {
			if raw, err := m.MarshalJSON(); err == nil {
				data["error_details"] = json.RawMessage(raw)
			}
		}
	}

	out, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// TextFormatter formats log entries as human-readable text
type TextFormatter struct {
	TimestampFormat  string
	DisableTimestamp bool
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{TimestampFormat: "15:04:05"}
}

// Format formats a log entry as text
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	var parts []string

	if !f.DisableTimestamp {
		parts = append(parts, entry.Timestamp.Format(f.TimestampFormat))
	}

	parts = append(parts, fmt.Sprintf("[%s]", entry.Level.ShortString()))

	if entry.Logger != "" {
		parts = append(parts, fmt.Sprintf("{%s}", entry.Logger))
	}

	parts = append(parts, entry.Message)

	keys := make([]string, 0, len(entry.Fields))
	for k := range entry.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, entry.Fields[k]))
	}

	if entry.Error != nil {
		parts = append(parts, fmt.Sprintf("error=%q", entry.Error.Error()))
	}

	if entry.CorrelationID != "" {
		parts = append(parts, fmt.Sprintf("cid=%s", entry.CorrelationID))
	}

	return []byte(strings.Join(parts, " ") + "\n"), nil
}
