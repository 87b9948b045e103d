// File: conversion_test.go
// Title: Conversion Tests
// Description: Tests for instant to calendar conversion, calendar value
//              construction and instant parsing.
// Author: msto63
// Version: v0.2.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.2.0: Initial implementation

package timex

import (
	"testing"
	"time"
)

func TestToLocalDateTime(t *testing.T) {
	ref := time.Date(2024, time.July, 4, 13, 5, 9, 250*int(time.Millisecond), time.Local)
	i := InstantOf(ref)

	dt := ToLocalDateTime(i)
	want := MustDateTimeOf(2024, time.July, 4, 13, 5, 9, 250*int(time.Millisecond))
	if dt != want {
		t.Errorf("ToLocalDateTime() = %v, want %v", dt, want)
	}
	if ToLocalDate(i) != want.Date() {
		t.Errorf("ToLocalDate() = %v", ToLocalDate(i))
	}
	if ToLocalTime(i) != want.TimeOfDay() {
		t.Errorf("ToLocalTime() = %v", ToLocalTime(i))
	}
}

func TestRoundTrip(t *testing.T) {
	testCases := []LocalDateTime{
		MustDateTimeOf(2024, time.February, 29, 12, 0, 0, 0),
		MustDateTimeOf(1970, time.January, 1, 9, 30, 15, 123000000),
		MustDateTimeOf(1969, time.December, 31, 11, 59, 59, 0),
		MustDateTimeOf(2099, time.November, 30, 20, 45, 0, 0),
	}

	for _, dt := range testCases {
		t.Run(dt.String(), func(t *testing.T) {
			i, err := dt.Instant()
			if err != nil {
				t.Fatalf("Instant() error = %v", err)
			}
			if back := ToLocalDateTime(i); back != dt {
				t.Errorf("round trip = %v, want %v", back, dt)
			}
		})
	}
}

func TestLocalDateInstantIsStartOfDay(t *testing.T) {
	d := MustDateOf(2024, time.March, 10)

	i, err := d.Instant()
	if err != nil {
		t.Fatalf("Instant() error = %v", err)
	}
	want := InstantOf(time.Date(2024, time.March, 10, 0, 0, 0, 0, time.Local))
	if i != want {
		t.Errorf("Instant() = %v, want %v", i, want)
	}
}

func TestInvalidValuesFailConversion(t *testing.T) {
	if _, err := (LocalDate{}).Instant(); !IsInvalidInput(err) {
		t.Errorf("zero LocalDate Instant() error = %v, want invalid input", err)
	}
	if _, err := (LocalDateTime{}).Instant(); !IsInvalidInput(err) {
		t.Errorf("zero LocalDateTime Instant() error = %v, want invalid input", err)
	}
}

func TestDateOfValidation(t *testing.T) {
	testCases := []struct {
		name    string
		year    int
		month   time.Month
		day     int
		wantErr bool
	}{
		{"leap day", 2024, time.February, 29, false},
		{"no leap day", 2023, time.February, 29, true},
		{"month zero", 2024, 0, 1, true},
		{"month thirteen", 2024, 13, 1, true},
		{"day zero", 2024, time.January, 0, true},
		{"april 31", 2024, time.April, 31, true},
		{"year zero", 0, time.January, 1, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DateOf(tc.year, tc.month, tc.day)
			if (err != nil) != tc.wantErr {
				t.Fatalf("DateOf() error = %v, wantErr %v", err, tc.wantErr)
			}
			if err != nil && !IsInvalidInput(err) {
				t.Errorf("DateOf() error = %v, want invalid input", err)
			}
		})
	}

	for _, bad := range [][4]int{{24, 0, 0, 0}, {0, 60, 0, 0}, {0, 0, 60, 0}, {0, 0, 0, 1e9}, {-1, 0, 0, 0}} {
		if _, err := TimeOf(bad[0], bad[1], bad[2], bad[3]); !IsInvalidInput(err) {
			t.Errorf("TimeOf(%v) error = %v, want invalid input", bad, err)
		}
	}
}

func TestLocalDateCalendar(t *testing.T) {
	testCases := []struct {
		date      LocalDate
		weekday   time.Weekday
		dayOfYear int
		epochDay  int64
	}{
		{MustDateOf(1970, time.January, 1), time.Thursday, 1, 0},
		{MustDateOf(1969, time.December, 31), time.Wednesday, 365, -1},
		{MustDateOf(2000, time.March, 1), time.Wednesday, 61, 11017},
		{MustDateOf(2024, time.December, 31), time.Tuesday, 366, 20088},
	}

	for _, tc := range testCases {
		t.Run(tc.date.String(), func(t *testing.T) {
			if tc.date.Weekday() != tc.weekday {
				t.Errorf("Weekday() = %v, want %v", tc.date.Weekday(), tc.weekday)
			}
			if tc.date.DayOfYear() != tc.dayOfYear {
				t.Errorf("DayOfYear() = %d, want %d", tc.date.DayOfYear(), tc.dayOfYear)
			}
			if tc.date.EpochDay() != tc.epochDay {
				t.Errorf("EpochDay() = %d, want %d", tc.date.EpochDay(), tc.epochDay)
			}
			if dateFromEpochDay(tc.epochDay) != tc.date {
				t.Errorf("dateFromEpochDay(%d) = %v", tc.epochDay, dateFromEpochDay(tc.epochDay))
			}
		})
	}
}

func TestParseInstant(t *testing.T) {
	testCases := []struct {
		input   string
		want    Instant
		wantErr bool
	}{
		{"1704067200000", UnixMilli(1704067200000), false},
		{"-1", UnixMilli(-1), false},
		{"2024-01-15", at(2024, 1, 15, 0, 0, 0), false},
		{"2024-01-15 08:30:00", at(2024, 1, 15, 8, 30, 0), false},
		{"2024-01-15T08:30:00", at(2024, 1, 15, 8, 30, 0), false},
		{" 2024-01-15 08:30 ", at(2024, 1, 15, 8, 30, 0), false},
		{"2024-01-15T08:30:00Z", UnixMilli(1705307400000), false},
		{"2024-01-15T08:30:00.500+01:00", UnixMilli(1705303800500), false},
		{"", 0, true},
		{"yesterday", 0, true},
		{"2024-02-30", 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseInstant(tc.input)
			if tc.wantErr {
				if !IsInvalidInput(err) {
					t.Errorf("ParseInstant(%q) error = %v, want invalid input", tc.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseInstant(%q) error = %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("ParseInstant(%q) = %d, want %d", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	if err != nil || d != MustDateOf(2024, time.February, 29) {
		t.Errorf("ParseDate() = %v, %v", d, err)
	}
	if _, err := ParseDate("29.02.2024"); !IsInvalidInput(err) {
		t.Errorf("ParseDate(29.02.2024) error = %v", err)
	}
}
