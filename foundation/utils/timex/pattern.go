// File: pattern.go
// Title: Named Format Patterns
// Description: Immutable registry mapping symbolic pattern names to pattern
//              strings. The default registry holds the built-in names; custom
//              registries are derived from it with With and Merge.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Business, display and compact format constants
// - 2025-10-19 v0.2.0: Named pattern registry

package timex

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// FormatPattern is the symbolic name of a pattern in a registry
type FormatPattern string

// Built-in pattern names
const (
	PatternDate            FormatPattern = "DATE"
	PatternDateTime        FormatPattern = "DATE_TIME"
	PatternTime            FormatPattern = "TIME"
	PatternChineseDate     FormatPattern = "CHINESE_DATE"
	PatternChineseDateTime FormatPattern = "CHINESE_DATE_TIME"
	PatternMonth           FormatPattern = "MONTH"
	PatternCompactDate     FormatPattern = "COMPACT_DATE"
	PatternCompactDateTime FormatPattern = "COMPACT_DATE_TIME"
)

// String returns the pattern name
func (n FormatPattern) String() string {
	return string(n)
}

// ParsePatternName normalizes a user supplied name: "date-time" and
// "Date Time" both become DATE_TIME.
func ParsePatternName(value string) FormatPattern {
	name := strings.ToUpper(strings.TrimSpace(value))
	name = strings.NewReplacer("-", "_", " ", "_").Replace(name)
	return FormatPattern(name)
}

var defaultPatterns = Patterns{entries: map[FormatPattern]string{
	PatternDate:            "yyyy-MM-dd",
	PatternDateTime:        "yyyy-MM-dd HH:mm:ss",
	PatternTime:            "HH:mm:ss",
	PatternChineseDate:     "yyyy年MM月dd日",
	PatternChineseDateTime: "yyyy年MM月dd日 HH:mm:ss",
	PatternMonth:           "yyyy-MM",
	PatternCompactDate:     "yyyyMMdd",
	PatternCompactDateTime: "yyyyMMddHHmmss",
}}

// Patterns is an immutable name to pattern registry.
// The zero value is an empty registry.
type Patterns struct {
	entries map[FormatPattern]string
}

// DefaultPatterns returns the registry of built-in patterns
func DefaultPatterns() Patterns {
	return defaultPatterns
}

// With returns a copy of p with name bound to pattern.
// The pattern is compiled first and rejected when it is malformed.
func (p Patterns) With(name FormatPattern, pattern string) (Patterns, error) {
	return p.Merge(map[string]string{string(name): pattern})
}

// Merge returns a copy of p extended with entries. Names are normalized with
// ParsePatternName and existing names are replaced. Nothing is added when any
// entry is invalid.
func (p Patterns) Merge(entries map[string]string) (Patterns, error) {
	merged := make(map[FormatPattern]string, len(p.entries)+len(entries))
	for k, v := range p.entries {
		merged[k] = v
	}
	for raw, pattern := range entries {
		name := ParsePatternName(raw)
		if name == "" {
			return p, invalidInput("timex.Patterns.Merge", "empty pattern name")
		}
		if _, err := CompilePattern(pattern); err != nil {
			return p, err
		}
		merged[name] = pattern
	}
	return Patterns{entries: merged}, nil
}

// Lookup returns the pattern bound to name
func (p Patterns) Lookup(name FormatPattern) (string, bool) {
	pattern, ok := p.entries[name]
	return pattern, ok
}

// Names returns the registered names in sorted order
func (p Patterns) Names() []FormatPattern {
	names := make([]FormatPattern, 0, len(p.entries))
	for name := range p.entries {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Len returns the number of registered patterns
func (p Patterns) Len() int {
	return len(p.entries)
}

// Render formats v with the pattern registered under name using the default
// display locale
func (p Patterns) Render(v Temporal, name FormatPattern) (string, error) {
	return p.RenderLocale(v, name, DefaultLocale())
}

// RenderLocale formats v with the pattern registered under name and the names of tag
func (p Patterns) RenderLocale(v Temporal, name FormatPattern, tag language.Tag) (string, error) {
	pattern, ok := p.entries[name]
	if !ok {
		return "", invalidInput("timex.Render", "unknown pattern name %q", string(name)).
			WithDetail("name", string(name))
	}
	return FormatLocale(v, pattern, tag)
}

// Render formats v with a built-in pattern
func Render(v Temporal, name FormatPattern) (string, error) {
	return defaultPatterns.Render(v, name)
}
