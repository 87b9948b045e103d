package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8B5CF6")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8FAFC")).
			Bold(true)

	trueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981")).
			Bold(true)

	falseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F59E0B")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444")).
			Bold(true)
)

// output writes command results as styled text, plain text or JSON
type output struct {
	w      io.Writer
	styled bool
	json   bool
}

func newOutput(w io.Writer, color string) *output {
	styled := useColor(color, plain, stdoutIsTerminal(), os.Getenv)
	if styled && strings.EqualFold(color, "always") {
		lipgloss.SetColorProfile(termenv.ANSI256)
	}
	return &output{w: w, styled: styled, json: jsonOut}
}

// useColor decides whether output is styled. "always" and "never" from the
// config win; "auto" requires a terminal and honours NO_COLOR and TERM=dumb.
func useColor(setting string, plainFlag, tty bool, getenv func(string) string) bool {
	if plainFlag {
		return false
	}
	switch strings.ToLower(setting) {
	case "always":
		return true
	case "never":
		return false
	}
	if getenv("NO_COLOR") != "" || getenv("TERM") == "dumb" {
		return false
	}
	return tty
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (o *output) render(style lipgloss.Style, s string) string {
	if !o.styled {
		return s
	}
	return style.Render(s)
}

// title prints a heading line
func (o *output) title(s string) {
	fmt.Fprintln(o.w, o.render(titleStyle, s))
}

// field prints an aligned "label: value" line
func (o *output) field(label string, value interface{}) {
	fmt.Fprintf(o.w, "  %s %s\n",
		o.render(labelStyle, fmt.Sprintf("%-20s", label+":")),
		o.render(valueStyle, fmt.Sprint(value)))
}

// boolean prints a yes/no answer
func (o *output) boolean(v bool) {
	if v {
		fmt.Fprintln(o.w, o.render(trueStyle, "true"))
	} else {
		fmt.Fprintln(o.w, o.render(falseStyle, "false"))
	}
}

// line prints s unstyled
func (o *output) line(s string) {
	fmt.Fprintln(o.w, s)
}

// emit prints v as indented JSON when --json is set and reports whether it did
func (o *output) emit(v interface{}) (bool, error) {
	if !o.json {
		return false, nil
	}
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return true, enc.Encode(v)
}
