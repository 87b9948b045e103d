// File: parse.go
// Title: Instant Parsing
// Description: Parses user supplied instants from epoch milliseconds, ISO dates,
//              local date-times and RFC3339 strings.
// Author: msto63
// Version: v0.2.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.2.0: Initial implementation

package timex

import (
	"strconv"
	"strings"
	"time"
)

// Go layouts used by String methods and parsing
const (
	layoutDate           = "2006-01-02"
	layoutDateTime       = "2006-01-02 15:04:05"
	layoutDateTimeMillis = "2006-01-02 15:04:05.000"
)

// parseLayouts are tried in order; zone-less layouts resolve in time.Local
var parseLayouts = []struct {
	layout string
	zoned  bool
}{
	{time.RFC3339, true},
	{"2006-01-02T15:04:05", false},
	{layoutDateTime, false},
	{"2006-01-02T15:04", false},
	{"2006-01-02 15:04", false},
	{layoutDate, false},
}

// ParseInstant parses value as epoch milliseconds, yyyy-MM-dd,
// yyyy-MM-dd HH:mm:ss, yyyy-MM-ddTHH:mm:ss or RFC3339.
// Fractional seconds are accepted after the seconds field of every layout.
func ParseInstant(value string) (Instant, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return 0, invalidInput("timex.ParseInstant", "empty instant")
	}

	if ms, err := strconv.ParseInt(v, 10, 64); err == nil {
		return Instant(ms), nil
	}

	for _, candidate := range parseLayouts {
		var (
			t   time.Time
			err error
		)
		if candidate.zoned {
			t, err = time.Parse(candidate.layout, v)
		} else {
			t, err = time.ParseInLocation(candidate.layout, v, time.Local)
		}
		if err == nil {
			return InstantOf(t), nil
		}
	}

	return 0, invalidInput("timex.ParseInstant", "unable to parse instant %q", value).
		WithDetail("input", value)
}

// ParseDate parses a yyyy-MM-dd string into a LocalDate
func ParseDate(value string) (LocalDate, error) {
	t, err := time.Parse(layoutDate, strings.TrimSpace(value))
	if err != nil {
		return LocalDate{}, invalidInput("timex.ParseDate", "unable to parse date %q", value).
			WithDetail("input", value)
	}
	return DateOf(t.Year(), t.Month(), t.Day())
}
