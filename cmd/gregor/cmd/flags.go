package cmd

import (
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/text/language"

	gerror "github.com/msto63/gregor/foundation/core/error"
	"github.com/msto63/gregor/foundation/utils/timex"
)

// patternValue is a pflag.Value holding a normalized pattern name.
// Whether the name exists is checked against the loaded registry at run time.
type patternValue struct {
	name timex.FormatPattern
}

var _ pflag.Value = (*patternValue)(nil)

func (p *patternValue) String() string { return p.name.String() }
func (p *patternValue) Type() string   { return "pattern" }

func (p *patternValue) Set(s string) error {
	name := timex.ParsePatternName(s)
	if name == "" {
		return gerror.New("empty pattern name").WithCode(gerror.CodeInvalidInput)
	}
	p.name = name
	return nil
}

// localeValue is a pflag.Value holding a BCP 47 language tag
type localeValue struct {
	tag language.Tag
	set bool
}

var _ pflag.Value = (*localeValue)(nil)

func (l *localeValue) String() string {
	if !l.set {
		return ""
	}
	return l.tag.String()
}

func (l *localeValue) Type() string { return "locale" }

func (l *localeValue) Set(s string) error {
	tag, err := timex.ParseLocale(s)
	if err != nil {
		return err
	}
	l.tag = tag
	l.set = true
	return nil
}

// or returns the flag value, or fallback when the flag was not given
func (l *localeValue) or(fallback language.Tag) language.Tag {
	if l.set {
		return l.tag
	}
	return fallback
}

// parseInstantArg parses a positional argument as an instant
func parseInstantArg(name, value string) (timex.Instant, error) {
	i, err := timex.ParseInstant(value)
	if err != nil {
		return 0, gerror.Wrap(err, "invalid "+name).WithDetail("argument", name)
	}
	return i, nil
}

// parseIntArg parses a positional argument as a signed integer
func parseIntArg(name, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, gerror.Newf("invalid %s %q: not an integer", name, value).
			WithCode(gerror.CodeInvalidInput).
			WithDetail("argument", name)
	}
	return n, nil
}
