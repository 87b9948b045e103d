// File: interval.go
// Title: Ordered Intervals
// Description: Interval value type with an ordering check at construction, and
//              the overlap and point containment predicates.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: TimeRange with Contains and Overlaps
// - 2025-10-19 v0.2.0: Replaced TimeRange by Interval on Instant with a
//                       validating constructor

package timex

import (
	"fmt"
	"time"

	gerror "github.com/msto63/gregor/foundation/core/error"
)

// Interval is a pair of instants with start <= end.
// Values built by NewInterval never violate the ordering.
type Interval struct {
	start Instant
	end   Instant
}

// NewInterval creates an interval. It fails with an ordering violation when
// start lies after end; equal endpoints are allowed.
func NewInterval(start, end Instant) (Interval, error) {
	if start.After(end) {
		return Interval{}, gerror.Newf("interval start %s is after end %s", start, end).
			WithCode(gerror.CodeOrderingViolation).
			WithOperation("timex.NewInterval").
			WithDetail("start", start.UnixMilli()).
			WithDetail("end", end.UnixMilli())
	}
	return Interval{start: start, end: end}, nil
}

// MustInterval is like NewInterval but panics on an ordering violation
func MustInterval(start, end Instant) Interval {
	iv, err := NewInterval(start, end)
	if err != nil {
		panic(err)
	}
	return iv
}

// Start returns the start instant
func (iv Interval) Start() Instant {
	return iv.start
}

// End returns the end instant
func (iv Interval) End() Instant {
	return iv.end
}

// Duration returns end - start
func (iv Interval) Duration() time.Duration {
	return iv.end.Sub(iv.start)
}

// Overlaps is IntervalsOverlap(iv, other)
func (iv Interval) Overlaps(other Interval) bool {
	return IntervalsOverlap(iv, other)
}

// Contains is PointInInterval(point, iv.Start(), iv.End())
func (iv Interval) Contains(point Instant) bool {
	return PointInInterval(point, iv.start, iv.end)
}

// String renders both endpoints in the local zone
func (iv Interval) String() string {
	return fmt.Sprintf("%s - %s", iv.start.Time().Format(layoutDateTime), iv.end.Time().Format(layoutDateTime))
}

// IntervalsOverlap reports whether a and b share at least one instant.
// Boundaries are inclusive, so intervals that touch overlap.
func IntervalsOverlap(a, b Interval) bool {
	return !(a.end.Before(b.start) || a.start.After(b.end))
}

// PointInInterval reports whether point lies strictly between start and end.
// The endpoints themselves are not contained.
func PointInInterval(point, start, end Instant) bool {
	return point.After(start) && point.Before(end)
}
