// ============================================================================
// gregor - Kalenderarithmetik und Zeitformatierung
// ============================================================================
//
// Package:     catalog
// Description: Error definitions for the pattern catalog
// Author:      Mike Stoffels
// Created:     2025-12-11
// License:     MIT
// ============================================================================

package catalog

import "errors"

var (
	// Loading errors
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
	ErrInvalidSyntax     = errors.New("invalid catalog syntax")

	// Validation errors
	ErrNoPatterns         = errors.New("catalog defines no patterns")
	ErrUnsupportedVersion = errors.New("unsupported catalog version")
)
