// File: instant.go
// Title: Absolute Instants
// Description: Defines Instant, a zone-free point on the time line counted in
//              milliseconds since the Unix epoch, together with the helpers
//              that resolve it in the local zone.
// Author: msto63
// Version: v0.2.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.2.0: Initial implementation

package timex

import (
	"time"
)

// Instant is an absolute point in time in milliseconds since 1970-01-01T00:00:00Z.
type Instant int64

// Now returns the current instant
func Now() Instant {
	return InstantOf(time.Now())
}

// InstantOf converts a time.Time to an Instant, truncating to milliseconds
func InstantOf(t time.Time) Instant {
	return Instant(t.UnixMilli())
}

// UnixMilli creates an Instant from milliseconds since the Unix epoch
func UnixMilli(ms int64) Instant {
	return Instant(ms)
}

// UnixMilli returns the instant as milliseconds since the Unix epoch
func (i Instant) UnixMilli() int64 {
	return int64(i)
}

// Time resolves the instant in the local zone
func (i Instant) Time() time.Time {
	return time.UnixMilli(int64(i)).In(time.Local)
}

// Compare orders two instants by their position on the time line after local
// resolution. It returns -1, 0 or +1.
func (i Instant) Compare(other Instant) int {
	return i.Time().Compare(other.Time())
}

// Before reports whether i lies strictly before other
func (i Instant) Before(other Instant) bool {
	return i.Compare(other) < 0
}

// After reports whether i lies strictly after other
func (i Instant) After(other Instant) bool {
	return i.Compare(other) > 0
}

// Equal reports whether both instants denote the same millisecond
func (i Instant) Equal(other Instant) bool {
	return i.Compare(other) == 0
}

// Add returns the instant shifted by d, truncated to milliseconds
func (i Instant) Add(d time.Duration) Instant {
	return i + Instant(d.Milliseconds())
}

// Sub returns the duration i - other
func (i Instant) Sub(other Instant) time.Duration {
	return time.Duration(i-other) * time.Millisecond
}

// String renders the instant in the local zone with millisecond precision
func (i Instant) String() string {
	return i.Time().Format(layoutDateTimeMillis)
}
