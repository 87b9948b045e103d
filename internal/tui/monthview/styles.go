// ============================================================================
// gregor - Kalenderarithmetik und Zeitformatierung
// ============================================================================
//
// Package:     monthview
// Description: Styles for the month browser TUI
// Author:      Mike Stoffels
// Created:     2025-12-12
// License:     MIT
// ============================================================================

package monthview

import (
	"github.com/charmbracelet/lipgloss"
)

// Color Palette
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorAccent    = lipgloss.Color("#F59E0B") // Amber
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorDimmed    = lipgloss.Color("#374151") // Dark Gray

	ColorBgPanel    = lipgloss.Color("#1E293B") // Slate 800
	ColorBgSelected = lipgloss.Color("#3B0764") // Purple 950

	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
	ColorTextDim   = lipgloss.Color("#64748B") // Slate 500
)

// Header styles
var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	MonthTitleStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	TitlePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 2).
			MarginBottom(1)
)

// Grid cell styles
var (
	WeekdayHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Bold(true)

	DayStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	OutsideDayStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	TodayStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	SelectedDayStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Background(ColorBgSelected).
				Bold(true)
)

// Panel styles
var (
	GridPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDimmed).
			Padding(0, 1)

	InfoPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1)

	InfoLabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	InfoValueStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorBgPanel).
			Foreground(ColorText).
			Padding(0, 1)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)

	StatusOKStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)
)

// Help styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Logo
const Logo = "gregor Monatsansicht"

// RenderKeyHint renders a keyboard shortcut hint
func RenderKeyHint(key, description string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(description)
}

// RenderInfoLine renders a label/value pair for the info panel
func RenderInfoLine(label, value string) string {
	return InfoLabelStyle.Render(label+": ") + InfoValueStyle.Render(value)
}
