// File: local.go
// Title: Calendar-Local Values
// Description: Immutable LocalDate, LocalTime and LocalDateTime values on the
//              proleptic Gregorian calendar, plus the Field and Temporal types
//              the formatter uses to ask a value which components it carries.
// Author: msto63
// Version: v0.2.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.2.0: Initial implementation

package timex

import (
	"fmt"
	"time"
)

// Field identifies a calendar component a value may carry
type Field int

const (
	FieldYear Field = iota + 1
	FieldMonth
	FieldDay
	FieldDayOfYear
	FieldWeekday
	FieldHour
	FieldMinute
	FieldSecond
	FieldNanosecond
)

// String returns the field name
func (f Field) String() string {
	switch f {
	case FieldYear:
		return "year"
	case FieldMonth:
		return "month"
	case FieldDay:
		return "day"
	case FieldDayOfYear:
		return "day-of-year"
	case FieldWeekday:
		return "weekday"
	case FieldHour:
		return "hour"
	case FieldMinute:
		return "minute"
	case FieldSecond:
		return "second"
	case FieldNanosecond:
		return "nanosecond"
	default:
		return fmt.Sprintf("field(%d)", int(f))
	}
}

// Temporal is a calendar value that can be rendered by a pattern.
// It is implemented by LocalDate, LocalTime and LocalDateTime.
type Temporal interface {
	// Supports reports whether the value carries the field
	Supports(f Field) bool

	fieldValue(f Field) int
	valid() bool
}

// ===============================
// LocalDate
// ===============================

// LocalDate is a date without time of day or zone. The zero value is invalid.
type LocalDate struct {
	year  int
	month time.Month
	day   int
}

// DateOf creates a LocalDate after checking month and day ranges
func DateOf(year int, month time.Month, day int) (LocalDate, error) {
	if month < time.January || month > time.December {
		return LocalDate{}, invalidInput("timex.DateOf", "month %d out of range 1-12", month).
			WithDetail("month", int(month))
	}
	if length := LengthOfMonth(year, month); day < 1 || day > length {
		return LocalDate{}, invalidInput("timex.DateOf", "day %d out of range 1-%d for %04d-%02d", day, length, year, month).
			WithDetail("day", day)
	}
	return LocalDate{year: year, month: month, day: day}, nil
}

// MustDateOf is like DateOf but panics on invalid input
func MustDateOf(year int, month time.Month, day int) LocalDate {
	d, err := DateOf(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// dateFromEpochDay converts a day count relative to 1970-01-01
func dateFromEpochDay(days int64) LocalDate {
	year, month, day := civilFromDays(days)
	return LocalDate{year: year, month: month, day: day}
}

func (d LocalDate) Year() int         { return d.year }
func (d LocalDate) Month() time.Month { return d.month }
func (d LocalDate) Day() int          { return d.day }

// IsValid reports whether d denotes a real calendar day
func (d LocalDate) IsValid() bool {
	return d.month >= time.January && d.month <= time.December &&
		d.day >= 1 && d.day <= LengthOfMonth(d.year, d.month)
}

// LengthOfMonth returns the number of days in the month of d
func (d LocalDate) LengthOfMonth() int {
	return LengthOfMonth(d.year, d.month)
}

// EpochDay returns the number of days since 1970-01-01
func (d LocalDate) EpochDay() int64 {
	return daysFromCivil(d.year, d.month, d.day)
}

// DayOfYear returns the ordinal day within the year, starting at 1
func (d LocalDate) DayOfYear() int {
	return int(d.EpochDay()-daysFromCivil(d.year, time.January, 1)) + 1
}

// Weekday returns the day of the week
func (d LocalDate) Weekday() time.Weekday {
	// 1970-01-01 was a Thursday
	return time.Weekday(floorMod(d.EpochDay()+int64(time.Thursday), 7))
}

// PlusDays returns the date n days later (earlier for negative n)
func (d LocalDate) PlusDays(n int) LocalDate {
	return dateFromEpochDay(d.EpochDay() + int64(n))
}

// PlusMonths shifts the month by n and rolls a day beyond the target month's
// length over into the following month: 2023-01-31 plus one month is 2023-03-03.
func (d LocalDate) PlusMonths(n int) LocalDate {
	year, month := shiftMonth(d.year, d.month, n)
	return dateFromEpochDay(daysFromCivil(year, month, 1) + int64(d.day-1))
}

// PlusMonthsClamped shifts the month by n and pins the day to the target
// month's last day: 2023-01-31 plus one month is 2023-02-28.
func (d LocalDate) PlusMonthsClamped(n int) LocalDate {
	year, month := shiftMonth(d.year, d.month, n)
	return LocalDate{year: year, month: month, day: min(d.day, LengthOfMonth(year, month))}
}

// WithDay returns the same year and month with the given day
func (d LocalDate) WithDay(day int) (LocalDate, error) {
	return DateOf(d.year, d.month, day)
}

// AtTime combines d with a time of day
func (d LocalDate) AtTime(t LocalTime) LocalDateTime {
	return LocalDateTime{date: d, time: t}
}

// AtStartOfDay returns d at midnight
func (d LocalDate) AtStartOfDay() LocalDateTime {
	return LocalDateTime{date: d}
}

// Instant returns the instant at which d begins in the local zone
func (d LocalDate) Instant() (Instant, error) {
	return FromLocalDate(d)
}

// Compare returns -1, 0 or +1 depending on the calendar order of d and other
func (d LocalDate) Compare(other LocalDate) int {
	return compareInt64(d.EpochDay(), other.EpochDay())
}

func (d LocalDate) Before(other LocalDate) bool { return d.Compare(other) < 0 }
func (d LocalDate) After(other LocalDate) bool  { return d.Compare(other) > 0 }

// String renders d as yyyy-MM-dd
func (d LocalDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

// Supports implements Temporal
func (d LocalDate) Supports(f Field) bool {
	switch f {
	case FieldYear, FieldMonth, FieldDay, FieldDayOfYear, FieldWeekday:
		return true
	default:
		return false
	}
}

func (d LocalDate) fieldValue(f Field) int {
	switch f {
	case FieldYear:
		return d.year
	case FieldMonth:
		return int(d.month)
	case FieldDay:
		return d.day
	case FieldDayOfYear:
		return d.DayOfYear()
	case FieldWeekday:
		return int(d.Weekday())
	default:
		return 0
	}
}

func (d LocalDate) valid() bool { return d.IsValid() }

// ===============================
// LocalTime
// ===============================

// LocalTime is a time of day without date or zone. The zero value is midnight.
type LocalTime struct {
	hour   int
	minute int
	second int
	nano   int
}

// Midnight is 00:00:00
var Midnight = LocalTime{}

// TimeOf creates a LocalTime after checking all component ranges
func TimeOf(hour, minute, second, nano int) (LocalTime, error) {
	switch {
	case hour < 0 || hour > 23:
		return LocalTime{}, invalidInput("timex.TimeOf", "hour %d out of range 0-23", hour).WithDetail("hour", hour)
	case minute < 0 || minute > 59:
		return LocalTime{}, invalidInput("timex.TimeOf", "minute %d out of range 0-59", minute).WithDetail("minute", minute)
	case second < 0 || second > 59:
		return LocalTime{}, invalidInput("timex.TimeOf", "second %d out of range 0-59", second).WithDetail("second", second)
	case nano < 0 || nano > 999999999:
		return LocalTime{}, invalidInput("timex.TimeOf", "nanosecond %d out of range", nano).WithDetail("nanosecond", nano)
	}
	return LocalTime{hour: hour, minute: minute, second: second, nano: nano}, nil
}

// MustTimeOf is like TimeOf but panics on invalid input
func MustTimeOf(hour, minute, second, nano int) LocalTime {
	t, err := TimeOf(hour, minute, second, nano)
	if err != nil {
		panic(err)
	}
	return t
}

func (t LocalTime) Hour() int       { return t.hour }
func (t LocalTime) Minute() int     { return t.minute }
func (t LocalTime) Second() int     { return t.second }
func (t LocalTime) Nanosecond() int { return t.nano }

// nanoOfDay returns the nanoseconds elapsed since midnight
func (t LocalTime) nanoOfDay() int64 {
	return (int64(t.hour)*3600+int64(t.minute)*60+int64(t.second))*int64(time.Second) + int64(t.nano)
}

// Compare returns -1, 0 or +1 depending on the order of t and other within a day
func (t LocalTime) Compare(other LocalTime) int {
	return compareInt64(t.nanoOfDay(), other.nanoOfDay())
}

func (t LocalTime) Before(other LocalTime) bool { return t.Compare(other) < 0 }
func (t LocalTime) After(other LocalTime) bool  { return t.Compare(other) > 0 }

// String renders t as HH:mm:ss with a fraction when one is present
func (t LocalTime) String() string {
	s := fmt.Sprintf("%02d:%02d:%02d", t.hour, t.minute, t.second)
	switch {
	case t.nano == 0:
		return s
	case t.nano%int(time.Millisecond) == 0:
		return fmt.Sprintf("%s.%03d", s, t.nano/int(time.Millisecond))
	default:
		return fmt.Sprintf("%s.%09d", s, t.nano)
	}
}

// Supports implements Temporal
func (t LocalTime) Supports(f Field) bool {
	switch f {
	case FieldHour, FieldMinute, FieldSecond, FieldNanosecond:
		return true
	default:
		return false
	}
}

func (t LocalTime) fieldValue(f Field) int {
	switch f {
	case FieldHour:
		return t.hour
	case FieldMinute:
		return t.minute
	case FieldSecond:
		return t.second
	case FieldNanosecond:
		return t.nano
	default:
		return 0
	}
}

func (t LocalTime) valid() bool {
	return t.hour >= 0 && t.hour <= 23 && t.minute >= 0 && t.minute <= 59 &&
		t.second >= 0 && t.second <= 59 && t.nano >= 0 && t.nano <= 999999999
}

// ===============================
// LocalDateTime
// ===============================

// LocalDateTime is a date and time of day without zone. The zero value is invalid.
type LocalDateTime struct {
	date LocalDate
	time LocalTime
}

// DateTimeOf creates a LocalDateTime after checking all component ranges
func DateTimeOf(year int, month time.Month, day, hour, minute, second, nano int) (LocalDateTime, error) {
	d, err := DateOf(year, month, day)
	if err != nil {
		return LocalDateTime{}, err
	}
	t, err := TimeOf(hour, minute, second, nano)
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{date: d, time: t}, nil
}

// MustDateTimeOf is like DateTimeOf but panics on invalid input
func MustDateTimeOf(year int, month time.Month, day, hour, minute, second, nano int) LocalDateTime {
	dt, err := DateTimeOf(year, month, day, hour, minute, second, nano)
	if err != nil {
		panic(err)
	}
	return dt
}

// DateTimeFromTime returns the wall clock reading of t in its own location
func DateTimeFromTime(t time.Time) LocalDateTime {
	return LocalDateTime{
		date: LocalDate{year: t.Year(), month: t.Month(), day: t.Day()},
		time: LocalTime{hour: t.Hour(), minute: t.Minute(), second: t.Second(), nano: t.Nanosecond()},
	}
}

func (dt LocalDateTime) Date() LocalDate      { return dt.date }
func (dt LocalDateTime) TimeOfDay() LocalTime { return dt.time }
func (dt LocalDateTime) Year() int            { return dt.date.year }
func (dt LocalDateTime) Month() time.Month    { return dt.date.month }
func (dt LocalDateTime) Day() int             { return dt.date.day }
func (dt LocalDateTime) Hour() int            { return dt.time.hour }
func (dt LocalDateTime) Minute() int          { return dt.time.minute }
func (dt LocalDateTime) Second() int          { return dt.time.second }
func (dt LocalDateTime) Nanosecond() int      { return dt.time.nano }

// IsValid reports whether dt denotes a real calendar position
func (dt LocalDateTime) IsValid() bool {
	return dt.date.IsValid() && dt.time.valid()
}

// PlusDays returns dt moved by n calendar days, keeping the time of day
func (dt LocalDateTime) PlusDays(n int) LocalDateTime {
	return dt.date.PlusDays(n).AtTime(dt.time)
}

// PlusMonths returns dt moved by n months with day rollover, keeping the time of day
func (dt LocalDateTime) PlusMonths(n int) LocalDateTime {
	return dt.date.PlusMonths(n).AtTime(dt.time)
}

// PlusMonthsClamped returns dt moved by n months with the day pinned to the
// month end, keeping the time of day
func (dt LocalDateTime) PlusMonthsClamped(n int) LocalDateTime {
	return dt.date.PlusMonthsClamped(n).AtTime(dt.time)
}

// GoTime returns dt as a time.Time in the local zone. Wall times skipped by a
// daylight saving transition are normalized by time.Date.
func (dt LocalDateTime) GoTime() time.Time {
	return time.Date(dt.date.year, dt.date.month, dt.date.day,
		dt.time.hour, dt.time.minute, dt.time.second, dt.time.nano, time.Local)
}

// Instant returns the instant dt denotes in the local zone
func (dt LocalDateTime) Instant() (Instant, error) {
	return FromLocalDateTime(dt)
}

// Compare returns -1, 0 or +1 depending on the calendar order of dt and other
func (dt LocalDateTime) Compare(other LocalDateTime) int {
	if c := dt.date.Compare(other.date); c != 0 {
		return c
	}
	return dt.time.Compare(other.time)
}

func (dt LocalDateTime) Before(other LocalDateTime) bool { return dt.Compare(other) < 0 }
func (dt LocalDateTime) After(other LocalDateTime) bool  { return dt.Compare(other) > 0 }
func (dt LocalDateTime) Equal(other LocalDateTime) bool  { return dt.Compare(other) == 0 }

// String renders dt as yyyy-MM-ddTHH:mm:ss
func (dt LocalDateTime) String() string {
	return dt.date.String() + "T" + dt.time.String()
}

// Supports implements Temporal
func (dt LocalDateTime) Supports(f Field) bool {
	return dt.date.Supports(f) || dt.time.Supports(f)
}

func (dt LocalDateTime) fieldValue(f Field) int {
	if dt.date.Supports(f) {
		return dt.date.fieldValue(f)
	}
	return dt.time.fieldValue(f)
}

func (dt LocalDateTime) valid() bool { return dt.IsValid() }

// ===============================
// Day Number Helpers
// ===============================

// daysFromCivil returns the days since 1970-01-01 of a proleptic Gregorian date
func daysFromCivil(year int, month time.Month, day int) int64 {
	y := int64(year)
	if month <= time.February {
		y--
	}
	era := floorDiv(y, 400)
	yoe := y - era*400
	mp := (int64(month) + 9) % 12
	doy := (153*mp+2)/5 + int64(day) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// civilFromDays is the inverse of daysFromCivil
func civilFromDays(days int64) (int, time.Month, int) {
	z := days + 719468
	era := floorDiv(z, 146097)
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d := doy - (153*mp+2)/5 + 1
	m := mp + 3
	if m > 12 {
		m -= 12
	}
	if m <= 2 {
		y++
	}
	return int(y), time.Month(m), int(d)
}

// shiftMonth adds n months to year/month
func shiftMonth(year int, month time.Month, n int) (int, time.Month) {
	total := int64(year)*12 + int64(month-1) + int64(n)
	return int(floorDiv(total, 12)), time.Month(floorMod(total, 12) + 1)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
