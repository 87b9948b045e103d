// Package timex implements calendar-aware date and time arithmetic for gregor.
//
// Package: timex
// Title: Calendar Time Utilities
// Description: Conversion between absolute instants and calendar-local values,
//              an ordered interval type with overlap and containment tests,
//              month and day arithmetic, and pattern-driven formatting.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time operations
// - 2025-01-26 v0.1.1: Enhanced documentation with examples
// - 2025-10-19 v0.2.0: Rebuilt around Instant and calendar-local value types
//
// Package Overview:
//
// # Instants and Calendar Values
//
// An Instant is a count of milliseconds since the Unix epoch and carries no zone.
// Every calendar view of an instant is resolved in the process local zone
// (time.Local):
//   - ToLocalDateTime, ToLocalDate, ToLocalTime: instant to calendar value
//   - LocalDateTime.Instant, LocalDate.Instant: calendar value back to instant
//   - ParseInstant: epoch milliseconds, ISO dates, date-times and RFC3339
//
// LocalDate, LocalTime and LocalDateTime are immutable. Constructors validate
// their fields, so a value obtained from DateOf or DateTimeOf is always a real
// calendar position. The zero LocalDate is invalid and is rejected wherever an
// instant has to be derived from it.
//
// # Intervals
//
// NewInterval is the only way to build an Interval with arbitrary endpoints and
// it refuses a start that lies after the end:
//
//	iv, err := timex.NewInterval(start, end)
//	if timex.IsOrderingViolation(err) {
//		// start > end
//	}
//
// Overlap is inclusive at the boundaries while point containment is exclusive:
//
//	timex.IntervalsOverlap(a, b)         // touching intervals overlap
//	timex.PointInInterval(p, start, end) // endpoints are not contained
//
// # Calendar Arithmetic
//
// Month and day helpers take an Instant and work on its local calendar view:
//   - DaysToEndOfMonth, DaysToStartOfMonth, DaysInMonth, IsFirstDayOfMonth
//   - StartOfMonth, EndOfMonth, SetDay, DayOfMonth
//   - AddMonths (rollover), AddMonthsClamped (end-of-month pinning), AddDays
//   - DaysBetween: signed whole days, time of day considered
//   - MonthCountToYearsAndMonths: 27 months renders as "2年3月"
//
// # Formatting
//
// Patterns use the letter language of common date libraries ("yyyy-MM-dd
// HH:mm:ss"). Named patterns live in an immutable Patterns registry:
//
//	s, err := timex.Render(timex.ToLocalDate(now), timex.PatternDate)
//	s, err = timex.FormatLocale(dt, "EEEE, d. MMMM yyyy", language.German)
//
// Rendering a field the value does not carry, such as an hour from a LocalDate,
// fails with an unsupported-field error rather than printing a default.
//
// # Error Handling
//
// Failures are *error.Error values from foundation/core/error with one of the
// codes ORDERING_VIOLATION, UNSUPPORTED_FIELD, INVALID_PATTERN or INVALID_INPUT.
// IsOrderingViolation, IsUnsupportedField and IsInvalidInput test for them
// anywhere in an error chain.
//
// # Thread Safety
//
// All functions are pure. Values are immutable and the default registry is never
// modified, so everything in this package is safe for concurrent use.
package timex
