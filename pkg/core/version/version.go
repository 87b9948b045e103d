// ============================================================================
// gregor - Kalenderarithmetik und Zeitformatierung
// ============================================================================
//
// Package:     version
// Description: Central version management for library, CLI and catalog format
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

// Version constants for all gregor components
const (
	// Platform version
	Platform = "0.2.0"

	// Component versions
	Timex   = "0.2.0"
	CLI     = "0.2.0"
	Browser = "0.1.0"

	// Catalog is the pattern catalog file format version
	Catalog = "1.0.0"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "timex":
		return Timex
	case "cli":
		return CLI
	case "browser":
		return Browser
	case "catalog":
		return Catalog
	default:
		return Platform
	}
}
