// ============================================================================
// gregor - Kalenderarithmetik und Zeitformatierung
// ============================================================================
//
// Package:     monthview
// Description: Interactive month browser built on Bubble Tea
// Author:      Mike Stoffels
// Created:     2025-12-12
// License:     MIT
// ============================================================================

package monthview

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"

	"github.com/msto63/gregor/foundation/utils/timex"
)

// Model is the month browser state
type Model struct {
	// UI state
	width    int
	height   int
	ready    bool
	quitting bool

	// Calendar state
	today    timex.LocalDate
	selected timex.LocalDate

	// Goto input
	gotoInput  textinput.Model
	gotoActive bool

	// Status line
	status      string
	statusError bool

	// Configuration
	patterns  timex.Patterns
	pattern   timex.FormatPattern
	locale    language.Tag
	weekStart time.Weekday
	plain     bool
}

// Config holds month browser configuration
type Config struct {
	Patterns  timex.Patterns
	Pattern   timex.FormatPattern // pattern used for the selected day
	Locale    language.Tag
	WeekStart time.Weekday
	Start     timex.LocalDate // initially selected day; zero value means today
	Plain     bool
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Patterns:  timex.DefaultPatterns(),
		Pattern:   timex.PatternDate,
		Locale:    timex.DefaultLocale(),
		WeekStart: time.Monday,
	}
}

// New creates a new month browser model
func New(cfg Config) Model {
	input := textinput.New()
	input.Placeholder = "yyyy-MM-dd"
	input.Prompt = "Gehe zu: "
	input.CharLimit = 32
	input.Width = 24

	if cfg.Pattern == "" {
		cfg.Pattern = timex.PatternDate
	}

	today := timex.ToLocalDate(timex.Now())
	selected := cfg.Start
	if !selected.IsValid() {
		selected = today
	}

	return Model{
		today:     today,
		selected:  selected,
		gotoInput: input,
		patterns:  cfg.Patterns,
		pattern:   cfg.Pattern,
		locale:    cfg.Locale,
		weekStart: cfg.WeekStart,
		plain:     cfg.Plain,
	}
}

// Selected returns the selected day
func (m Model) Selected() timex.LocalDate {
	return m.selected
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tickEveryMinute()
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.gotoActive {
			return m.handleGotoKey(msg)
		}
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case PatternsReloadedMsg:
		m.patterns = msg.Patterns
		if _, ok := m.patterns.Lookup(m.pattern); !ok {
			m.pattern = timex.PatternDate
		}
		return m.setStatus(fmt.Sprintf("Muster neu geladen (%d)", m.patterns.Len()), false)

	case tickMsg:
		m.today = timex.ToLocalDate(timex.InstantOf(time.Time(msg)))
		return m, tickEveryMinute()

	case clearStatusMsg:
		m.status = ""
		m.statusError = false
		return m, nil
	}

	return m, nil
}

// handleKeyPress processes navigation keys
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyLeft:
		m.selected = m.selected.PlusDays(-1)
	case tea.KeyRight:
		m.selected = m.selected.PlusDays(1)
	case tea.KeyUp:
		m.selected = m.selected.PlusDays(-7)
	case tea.KeyDown:
		m.selected = m.selected.PlusDays(7)
	case tea.KeyPgUp:
		m.selected = m.selected.PlusMonthsClamped(-1)
	case tea.KeyPgDown:
		m.selected = m.selected.PlusMonthsClamped(1)

	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "q":
			m.quitting = true
			return m, tea.Quit
		case "h":
			m.selected = m.selected.PlusDays(-1)
		case "l":
			m.selected = m.selected.PlusDays(1)
		case "k":
			m.selected = m.selected.PlusDays(-7)
		case "j":
			m.selected = m.selected.PlusDays(7)
		case "p", "[":
			m.selected = m.selected.PlusMonthsClamped(-1)
		case "n", "]":
			m.selected = m.selected.PlusMonthsClamped(1)
		case "P", "{":
			m.selected = m.selected.PlusMonthsClamped(-12)
		case "N", "}":
			m.selected = m.selected.PlusMonthsClamped(12)
		case "t":
			m.selected = m.today
		case "g", "/":
			m.gotoActive = true
			m.gotoInput.Reset()
			cmd := m.gotoInput.Focus()
			return m, cmd
		}
	}

	return m, nil
}

// handleGotoKey feeds keys to the goto input until it is submitted or cancelled
func (m Model) handleGotoKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyEsc:
		m.gotoActive = false
		m.gotoInput.Blur()
		return m, nil

	case tea.KeyEnter:
		m.gotoActive = false
		m.gotoInput.Blur()
		target, err := parseTarget(m.gotoInput.Value())
		if err != nil {
			return m.setStatus("Ungültiges Datum: "+m.gotoInput.Value(), true)
		}
		m.selected = target
		return m, nil
	}

	var cmd tea.Cmd
	m.gotoInput, cmd = m.gotoInput.Update(msg)
	return m, cmd
}

// parseTarget accepts a date or any form ParseInstant understands
func parseTarget(value string) (timex.LocalDate, error) {
	if d, err := timex.ParseDate(value); err == nil {
		return d, nil
	}
	i, err := timex.ParseInstant(value)
	if err != nil {
		return timex.LocalDate{}, err
	}
	return timex.ToLocalDate(i), nil
}

func (m Model) setStatus(text string, isError bool) (Model, tea.Cmd) {
	m.status = text
	m.statusError = isError
	return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func tickEveryMinute() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Lade Monatsansicht..."
	}

	var b strings.Builder

	// Header
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	// Grid and info side by side
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		GridPanelStyle.Render(m.renderGrid()),
		" ",
		InfoPanelStyle.Render(m.renderInfo()),
	))
	b.WriteString("\n")

	// Goto input or status
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")

	// Help bar
	b.WriteString(m.renderHelpBar())

	return b.String()
}

// renderHeader renders the logo and the month title
func (m Model) renderHeader() string {
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		LogoStyle.Render(Logo),
		strings.Repeat(" ", 3),
		MonthTitleStyle.Render(MonthTitle(m.selected, m.locale)),
	)

	width := m.width - 4
	if width < 20 {
		width = 20
	}
	return TitlePanelStyle.Width(width).Render(header)
}

func (m Model) renderGrid() string {
	return RenderGrid(m.selected, GridOptions{
		WeekStart: m.weekStart,
		Locale:    m.locale,
		Today:     m.today,
		Selected:  m.selected,
		Plain:     m.plain,
	})
}

// renderInfo renders the calendar facts for the selected day
func (m Model) renderInfo() string {
	lines := []string{}

	rendered, err := m.patterns.RenderLocale(m.selected, m.pattern, m.locale)
	if err != nil {
		rendered = m.selected.String()
	}
	lines = append(lines, RenderInfoLine(m.pattern.String(), rendered))

	if weekday, err := timex.FormatLocale(m.selected, "EEEE", m.locale); err == nil {
		lines = append(lines, RenderInfoLine("Wochentag", weekday))
	}
	lines = append(lines, RenderInfoLine("Tag im Jahr", strconv.Itoa(m.selected.DayOfYear())))

	if instant, err := m.selected.Instant(); err == nil {
		lines = append(lines,
			RenderInfoLine("Tage im Monat", strconv.Itoa(timex.DaysInMonth(instant))),
			RenderInfoLine("Seit Monatsanfang", strconv.Itoa(timex.DaysToStartOfMonth(instant))),
			RenderInfoLine("Bis Monatsende", strconv.Itoa(timex.DaysToEndOfMonth(instant))),
		)
		if today, err := m.today.Instant(); err == nil {
			lines = append(lines, RenderInfoLine("Abstand zu heute", fmt.Sprintf("%+d", timex.DaysBetween(today, instant))))
		}
	}

	return strings.Join(lines, "\n")
}

// renderStatusBar renders the goto input or the last status message
func (m Model) renderStatusBar() string {
	var content string
	switch {
	case m.gotoActive:
		content = m.gotoInput.View()
	case m.status != "" && m.statusError:
		content = StatusErrorStyle.Render(m.status)
	case m.status != "":
		content = StatusOKStyle.Render(m.status)
	default:
		content = HelpDescStyle.Render(m.selected.String())
	}

	width := m.width - 2
	if width < 20 {
		width = 20
	}
	return StatusBarStyle.Width(width).Render(content)
}

// renderHelpBar renders the help shortcuts bar
func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("←→↑↓/hjkl", "Tag/Woche"),
		RenderKeyHint("n/p", "Monat"),
		RenderKeyHint("N/P", "Jahr"),
		RenderKeyHint("t", "Heute"),
		RenderKeyHint("g", "Gehe zu"),
		RenderKeyHint("q", "Beenden"),
	}

	return HelpStyle.Render(strings.Join(items, "  "))
}

// Run starts the month browser. reloads, when not nil, delivers pattern
// registries from a watched catalog.
func Run(cfg Config, reloads <-chan timex.Patterns) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())

	if reloads != nil {
		go func() {
			for patterns := range reloads {
				p.Send(PatternsReloadedMsg{Patterns: patterns})
			}
		}()
	}

	_, err := p.Run()
	return err
}
