// File: conversion.go
// Title: Instant Conversion
// Description: Converts between absolute instants and calendar-local values in
//              the process local zone.
// Author: msto63
// Version: v0.2.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.2.0: Initial implementation

package timex

// ToLocalDateTime returns the local calendar date and time of day of i
func ToLocalDateTime(i Instant) LocalDateTime {
	return DateTimeFromTime(i.Time())
}

// ToLocalDate returns the local calendar date of i
func ToLocalDate(i Instant) LocalDate {
	return ToLocalDateTime(i).date
}

// ToLocalTime returns the local time of day of i
func ToLocalTime(i Instant) LocalTime {
	return ToLocalDateTime(i).time
}

// FromLocalDateTime returns the instant dt denotes in the local zone.
// Sub-millisecond precision is truncated.
func FromLocalDateTime(dt LocalDateTime) (Instant, error) {
	if !dt.IsValid() {
		return 0, invalidInput("timex.FromLocalDateTime", "invalid local date-time %s", dt)
	}
	return InstantOf(dt.GoTime()), nil
}

// FromLocalDate returns the instant at which d begins in the local zone
func FromLocalDate(d LocalDate) (Instant, error) {
	if !d.IsValid() {
		return 0, invalidInput("timex.FromLocalDate", "invalid local date %s", d)
	}
	return FromLocalDateTime(d.AtStartOfDay())
}
