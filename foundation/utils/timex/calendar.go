// File: calendar.go
// Title: Calendar Arithmetic
// Description: Month boundary queries, month and day offsets, day differences
//              and month count decomposition on the local calendar view of an
//              instant.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: StartOfMonth, EndOfMonth and DaysBetween on time.Time
// - 2025-10-19 v0.2.0: Rebuilt on Instant and LocalDateTime, added month offsets
//                       and month count decomposition

package timex

import (
	"fmt"
	"time"

	gerror "github.com/msto63/gregor/foundation/core/error"
)

const firstDayOfMonth = 1

// IsLeapYear reports whether year is a leap year in the proleptic Gregorian calendar
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// LengthOfMonth returns the number of days in the given month
func LengthOfMonth(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// ===============================
// Month Boundaries
// ===============================

// DaysInMonth returns the length of the local month containing i
func DaysInMonth(i Instant) int {
	return ToLocalDate(i).LengthOfMonth()
}

// DaysToEndOfMonth counts the days from the local date of i to the last day of
// its month, both included. On the last day it returns 1.
func DaysToEndOfMonth(i Instant) int {
	d := ToLocalDate(i)
	return d.LengthOfMonth() - d.Day() + 1
}

// DaysToStartOfMonth counts the days from the first of the month to the local
// date of i, both included. On the first day it returns 1.
func DaysToStartOfMonth(i Instant) int {
	return ToLocalDate(i).Day() - firstDayOfMonth + 1
}

// StartOfMonth returns midnight of the first day of the local month of i
func StartOfMonth(i Instant) LocalDateTime {
	d := ToLocalDate(i)
	return LocalDate{year: d.year, month: d.month, day: firstDayOfMonth}.AtStartOfDay()
}

// EndOfMonth returns the last day of the local month of i at the same time of day
func EndOfMonth(i Instant) LocalDateTime {
	dt := ToLocalDateTime(i)
	dt.date.day = dt.date.LengthOfMonth()
	return dt
}

// IsFirstDayOfMonth reports whether the local date of i is the first of its month
func IsFirstDayOfMonth(i Instant) bool {
	return ToLocalDate(i).Day() == firstDayOfMonth
}

// YearOf returns the local calendar year of i
func YearOf(i Instant) int {
	return ToLocalDate(i).Year()
}

// MonthOf returns the zero-based local month of i (January = 0)
func MonthOf(i Instant) int {
	return int(ToLocalDate(i).Month()) - 1
}

// SetDay returns midnight of the given day in the local year and month of i.
// A day that does not exist in that month is an error.
func SetDay(i Instant, day int) (LocalDateTime, error) {
	d, err := ToLocalDate(i).WithDay(day)
	if err != nil {
		return LocalDateTime{}, gerror.Wrap(err, "setting day of month").WithOperation("timex.SetDay")
	}
	return d.AtStartOfDay(), nil
}

// DayOfMonth sets the day of the local month of i and keeps the time of day.
// Out of range days roll over: day 0 is the last day of the previous month.
func DayOfMonth(i Instant, day int) LocalDateTime {
	dt := ToLocalDateTime(i)
	first := daysFromCivil(dt.Year(), dt.Month(), firstDayOfMonth)
	return dateFromEpochDay(first + int64(day-firstDayOfMonth)).AtTime(dt.time)
}

// ===============================
// Offsets
// ===============================

// AddMonths moves the local date-time of i by n months. Days beyond the target
// month's length roll over, so January 31 plus one month is March 2 or 3.
func AddMonths(i Instant, n int) LocalDateTime {
	return ToLocalDateTime(i).PlusMonths(n)
}

// AddMonthsClamped moves the local date-time of i by n months and pins the day
// to the end of the target month, so January 31 plus one month is February 28 or 29.
func AddMonthsClamped(i Instant, n int) LocalDateTime {
	return ToLocalDateTime(i).PlusMonthsClamped(n)
}

// AddDays moves the local date-time of i by n calendar days
func AddDays(i Instant, n int) LocalDateTime {
	return ToLocalDateTime(i).PlusDays(n)
}

// ===============================
// Differences
// ===============================

// DaysBetween returns the number of whole days from d1 to d2 on their local
// date-times, truncated toward zero. A day only counts once the time of day of
// d1 has been reached again, so DaysBetween(a, b) == -DaysBetween(b, a).
func DaysBetween(d1, d2 Instant) int64 {
	from, to := ToLocalDateTime(d1), ToLocalDateTime(d2)
	days := to.date.EpochDay() - from.date.EpochDay()

	switch {
	case days > 0 && to.time.Before(from.time):
		days--
	case days < 0 && to.time.After(from.time):
		days++
	}
	return days
}

// YearsMonths is a month count split into years and remaining months
type YearsMonths struct {
	Years  int
	Months int
}

// MonthCountToYearsAndMonths splits total into floor(total/12) years and the
// truncated remainder total % 12. For negative totals the remainder keeps the
// sign of total: -5 months is -1 years and -5 months.
func MonthCountToYearsAndMonths(total int) YearsMonths {
	return YearsMonths{
		Years:  int(floorDiv(int64(total), 12)),
		Months: total % 12,
	}
}

// String renders "Y年" for whole years (including 0), "M月" below one year and
// "Y年M月" otherwise
func (ym YearsMonths) String() string {
	switch {
	case ym.Months == 0:
		return fmt.Sprintf("%d年", ym.Years)
	case ym.Years == 0:
		return fmt.Sprintf("%d月", ym.Months)
	default:
		return fmt.Sprintf("%d年%d月", ym.Years, ym.Months)
	}
}
