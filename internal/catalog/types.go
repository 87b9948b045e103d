// ============================================================================
// gregor - Kalenderarithmetik und Zeitformatierung
// ============================================================================
//
// Package:     catalog
// Description: Pattern catalog file structure
// Author:      Mike Stoffels
// Created:     2025-12-11
// License:     MIT
// ============================================================================

package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/msto63/gregor/pkg/core/version"
)

// File is a pattern catalog as stored on disk:
//
//	version = "1.0.0"
//
//	[patterns]
//	german = "dd.MM.yyyy"
type File struct {
	Version  string            `toml:"version" yaml:"version"`
	Patterns map[string]string `toml:"patterns" yaml:"patterns"`

	// Internal tracking
	SourceFile string    `toml:"-" yaml:"-"`
	LoadedAt   time.Time `toml:"-" yaml:"-"`
}

// Defaults fills in missing optional values
func (f *File) Defaults() {
	if f.Version == "" {
		f.Version = version.Catalog
	}
}

// Validate checks the catalog structure. Pattern strings themselves are
// compiled when the catalog is merged into a registry.
func (f *File) Validate() error {
	if major(f.Version) != major(version.Catalog) {
		return fmt.Errorf("%w: %s", ErrUnsupportedVersion, f.Version)
	}
	if len(f.Patterns) == 0 {
		return ErrNoPatterns
	}
	return nil
}

func major(v string) string {
	if i := strings.IndexByte(v, '.'); i >= 0 {
		return v[:i]
	}
	return v
}
