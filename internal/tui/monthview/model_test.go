package monthview

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"

	"github.com/msto63/gregor/foundation/utils/timex"
)

func newTestModel(start timex.LocalDate) Model {
	cfg := DefaultConfig()
	cfg.Start = start
	cfg.Locale = language.English
	cfg.Plain = true
	return New(cfg)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestGridLayout(t *testing.T) {
	tests := []struct {
		name      string
		month     timex.LocalDate
		weekStart time.Weekday
		wantStart timex.LocalDate
		wantWeeks int
	}{
		// 2024-09-01 is a Sunday
		{"sunday first, monday start", timex.MustDateOf(2024, time.September, 15), time.Monday, timex.MustDateOf(2024, time.August, 26), 6},
		{"sunday first, sunday start", timex.MustDateOf(2024, time.September, 15), time.Sunday, timex.MustDateOf(2024, time.September, 1), 5},
		// 2021-02-01 is a Monday and February 2021 has 28 days
		{"exact four weeks", timex.MustDateOf(2021, time.February, 10), time.Monday, timex.MustDateOf(2021, time.February, 1), 4},
		{"leap february", timex.MustDateOf(2024, time.February, 29), time.Monday, timex.MustDateOf(2024, time.January, 29), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GridStart(tt.month, tt.weekStart); got.Compare(tt.wantStart) != 0 {
				t.Errorf("GridStart() = %v, want %v", got, tt.wantStart)
			}
			if got := GridWeeks(tt.month, tt.weekStart); got != tt.wantWeeks {
				t.Errorf("GridWeeks() = %d, want %d", got, tt.wantWeeks)
			}
		})
	}
}

func TestRenderGridPlain(t *testing.T) {
	out := RenderGrid(timex.MustDateOf(2024, time.September, 1), GridOptions{
		WeekStart: time.Sunday,
		Locale:    language.English,
		Plain:     true,
	})

	lines := strings.Split(out, "\n")
	if len(lines) != 6 {
		t.Fatalf("RenderGrid() has %d lines, want 6:\n%s", len(lines), out)
	}
	if got := strings.Fields(lines[0]); strings.Join(got, " ") != "Sun Mon Tue Wed Thu Fri Sat" {
		t.Errorf("header = %q", lines[0])
	}
	if got := strings.Fields(lines[1]); got[0] != "1" || got[6] != "7" {
		t.Errorf("first week = %q", lines[1])
	}
	if got := strings.Fields(lines[5]); got[0] != "29" || got[1] != "30" || got[2] != "1" {
		t.Errorf("last week = %q", lines[5])
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("plain grid contains escape sequences")
	}
}

func TestMonthTitle(t *testing.T) {
	d := timex.MustDateOf(2024, time.March, 5)
	if got := MonthTitle(d, language.English); got != "March 2024" {
		t.Errorf("MonthTitle(en) = %q", got)
	}
	if got := MonthTitle(d, language.German); got != "März 2024" {
		t.Errorf("MonthTitle(de) = %q", got)
	}
}

func TestModelNavigation(t *testing.T) {
	start := timex.MustDateOf(2024, time.January, 31)

	tests := []struct {
		name string
		keys []tea.KeyMsg
		want timex.LocalDate
	}{
		{"next day", []tea.KeyMsg{{Type: tea.KeyRight}}, timex.MustDateOf(2024, time.February, 1)},
		{"previous day vim", []tea.KeyMsg{runes("h")}, timex.MustDateOf(2024, time.January, 30)},
		{"week down", []tea.KeyMsg{runes("j")}, timex.MustDateOf(2024, time.February, 7)},
		{"week up", []tea.KeyMsg{{Type: tea.KeyUp}}, timex.MustDateOf(2024, time.January, 24)},
		{"next month clamps", []tea.KeyMsg{runes("n")}, timex.MustDateOf(2024, time.February, 29)},
		{"page down twice", []tea.KeyMsg{{Type: tea.KeyPgDown}, {Type: tea.KeyPgDown}}, timex.MustDateOf(2024, time.March, 29)},
		{"previous year", []tea.KeyMsg{runes("P")}, timex.MustDateOf(2023, time.January, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var model tea.Model = newTestModel(start)
			for _, key := range tt.keys {
				model, _ = model.Update(key)
			}
			if got := model.(Model).Selected(); got.Compare(tt.want) != 0 {
				t.Errorf("Selected() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestModelGoto(t *testing.T) {
	var model tea.Model = newTestModel(timex.MustDateOf(2024, time.January, 1))

	model, _ = model.Update(runes("g"))
	for _, r := range "2025-07-04" {
		model, _ = model.Update(runes(string(r)))
	}
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	m := model.(Model)
	if want := timex.MustDateOf(2025, time.July, 4); m.Selected().Compare(want) != 0 {
		t.Errorf("Selected() = %v, want %v", m.Selected(), want)
	}
	if m.gotoActive {
		t.Error("goto input still active after enter")
	}

	model, _ = m.Update(runes("g"))
	for _, r := range "soon" {
		model, _ = model.Update(runes(string(r)))
	}
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	m = model.(Model)
	if !m.statusError {
		t.Error("invalid goto target did not set an error status")
	}
	if want := timex.MustDateOf(2025, time.July, 4); m.Selected().Compare(want) != 0 {
		t.Errorf("invalid goto moved selection to %v", m.Selected())
	}
}

func TestModelPatternsReloaded(t *testing.T) {
	var model tea.Model = newTestModel(timex.MustDateOf(2024, time.March, 5))
	model, _ = model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	patterns, err := timex.DefaultPatterns().With("GERMAN", "dd.MM.yyyy")
	if err != nil {
		t.Fatal(err)
	}
	model, _ = model.Update(PatternsReloadedMsg{Patterns: patterns})

	m := model.(Model)
	if m.patterns.Len() != patterns.Len() {
		t.Errorf("patterns not replaced: %d entries", m.patterns.Len())
	}
	if !strings.Contains(m.View(), "2024-03-05") {
		t.Error("View() does not show the selected day")
	}
}

func TestModelQuit(t *testing.T) {
	model := newTestModel(timex.MustDateOf(2024, time.March, 5))
	_, cmd := model.Update(runes("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}
