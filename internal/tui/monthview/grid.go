// ============================================================================
// gregor - Kalenderarithmetik und Zeitformatierung
// ============================================================================
//
// Package:     monthview
// Description: Month grid layout shared by the browser and the CLI
// Author:      Mike Stoffels
// Created:     2025-12-12
// License:     MIT
// ============================================================================

package monthview

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"

	"github.com/msto63/gregor/foundation/utils/timex"
)

const cellWidth = 5

// GridOptions controls how a month grid is rendered
type GridOptions struct {
	WeekStart time.Weekday
	Locale    language.Tag
	Today     timex.LocalDate
	Selected  timex.LocalDate // zero value selects nothing
	Plain     bool            // no colors, layout only
}

// GridStart returns the date in the top left cell of the grid for the month
// containing d
func GridStart(d timex.LocalDate, weekStart time.Weekday) timex.LocalDate {
	first := d.PlusDays(1 - d.Day())
	return first.PlusDays(-leadingDays(first, weekStart))
}

// GridWeeks returns the number of week rows needed for the month containing d
func GridWeeks(d timex.LocalDate, weekStart time.Weekday) int {
	first := d.PlusDays(1 - d.Day())
	return (leadingDays(first, weekStart) + d.LengthOfMonth() + 6) / 7
}

func leadingDays(first timex.LocalDate, weekStart time.Weekday) int {
	return (int(first.Weekday()) - int(weekStart) + 7) % 7
}

// MonthTitle renders the month name and year in the given locale
func MonthTitle(d timex.LocalDate, tag language.Tag) string {
	title, err := timex.FormatLocale(d, "MMMM yyyy", tag)
	if err != nil {
		return d.String()
	}
	return title
}

// RenderGrid renders the weekday header and the week rows of the month
// containing month. Days of the neighbouring months fill the first and last
// rows.
func RenderGrid(month timex.LocalDate, opts GridOptions) string {
	start := GridStart(month, opts.WeekStart)
	weeks := GridWeeks(month, opts.WeekStart)

	var b strings.Builder

	// Weekday header
	for i := 0; i < 7; i++ {
		name, err := timex.FormatLocale(start.PlusDays(i), "EEE", opts.Locale)
		if err != nil {
			name = start.PlusDays(i).Weekday().String()[:3]
		}
		b.WriteString(renderCell(name, WeekdayHeaderStyle, opts.Plain))
	}

	for w := 0; w < weeks; w++ {
		b.WriteString("\n")
		for i := 0; i < 7; i++ {
			d := start.PlusDays(w*7 + i)
			b.WriteString(renderCell(strconv.Itoa(d.Day()), cellStyle(d, month, opts), opts.Plain))
		}
	}

	return b.String()
}

func cellStyle(d, month timex.LocalDate, opts GridOptions) lipgloss.Style {
	switch {
	case opts.Selected.IsValid() && d.Compare(opts.Selected) == 0:
		return SelectedDayStyle
	case opts.Today.IsValid() && d.Compare(opts.Today) == 0:
		return TodayStyle
	case d.Month() != month.Month() || d.Year() != month.Year():
		return OutsideDayStyle
	default:
		return DayStyle
	}
}

func renderCell(text string, style lipgloss.Style, plain bool) string {
	if plain {
		style = lipgloss.NewStyle()
	}
	return style.Width(cellWidth).Align(lipgloss.Right).Render(text)
}
