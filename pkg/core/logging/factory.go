// ============================================================================
// gregor - Kalenderarithmetik und Zeitformatierung
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating loggers from configuration
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	"github.com/google/uuid"

	mdwlog "github.com/msto63/gregor/foundation/core/log"
	"github.com/msto63/gregor/pkg/core/config"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Service name
	ServiceName string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format
	Format string // "json" or "text" (default: json)

	// Output writer (default: stderr)
	Output io.Writer

	// Correlation id stamped on every entry; empty disables it
	CorrelationID string
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "info",
		Format:      "json",
	}
}

// FromConfig derives a logger configuration from the application config
func FromConfig(cfg *config.Config) LoggerConfig {
	return LoggerConfig{
		ServiceName: cfg.General.Name,
		Level:       cfg.General.LogLevel,
		Format:      cfg.General.LogFormat,
	}
}

// NewLogger creates a new Foundation logger
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	// Build output writer
	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	// Determine format
	format := mdwlog.FormatJSON
	if cfg.Format == "text" {
		format = mdwlog.FormatText
	}

	logger := mdwlog.NewWithConfig(mdwlog.Config{
		Level:  parseLevel(cfg.Level),
		Format: format,
		Output: output,
		Name:   cfg.ServiceName,
	})

	if cfg.CorrelationID != "" {
		logger = logger.WithCorrelationID(cfg.CorrelationID)
	}

	return logger
}

// NewSimpleLogger creates a logger with default configuration
func NewSimpleLogger(serviceName string) *mdwlog.Logger {
	return NewLogger(DefaultLoggerConfig(serviceName))
}

// NewCorrelationID returns a fresh random correlation id
func NewCorrelationID() string {
	return uuid.NewString()
}

// parseLevel converts a string level to mdwlog.Level, falling back to info
func parseLevel(level string) mdwlog.Level {
	parsed, err := mdwlog.ParseLevel(level)
	if err != nil {
		return mdwlog.LevelInfo
	}
	return parsed
}
