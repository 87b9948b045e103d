// File: format.go
// Title: Pattern Formatting
// Description: Compiles date/time pattern strings into layouts and renders
//              calendar values with them. A layout refuses to render a field
//              the value does not carry.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Format with predefined Go layouts
// - 2025-10-19 v0.2.0: Letter pattern compiler with field checks and locale names

package timex

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"

	gerror "github.com/msto63/gregor/foundation/core/error"
)

// letterRule describes a pattern letter: the field it reads and how many
// repetitions are allowed
type letterRule struct {
	field    Field
	maxWidth int
}

var letterRules = map[rune]letterRule{
	'y': {FieldYear, 9},
	'u': {FieldYear, 9},
	'M': {FieldMonth, 5},
	'L': {FieldMonth, 5},
	'd': {FieldDay, 2},
	'D': {FieldDayOfYear, 3},
	'E': {FieldWeekday, 5},
	'a': {FieldHour, 1},
	'H': {FieldHour, 2},
	'k': {FieldHour, 2},
	'K': {FieldHour, 2},
	'h': {FieldHour, 2},
	'm': {FieldMinute, 2},
	's': {FieldSecond, 2},
	'S': {FieldNanosecond, 9},
	'n': {FieldNanosecond, 9},
}

// token is either a literal run (letter == 0) or a field letter repeated width times
type token struct {
	letter  rune
	width   int
	field   Field
	literal string
}

// Layout is a compiled pattern. It is immutable and safe for concurrent use.
type Layout struct {
	pattern string
	tokens  []token
}

// CompilePattern parses a pattern string.
//
// Letters: y/u year, M/L month, d day, D day of year, E weekday, a day period,
// H hour 0-23, k hour 1-24, K hour 0-11, h hour 1-12, m minute, s second,
// S fraction of second, n nanosecond. Text in single quotes is literal and ''
// is a single quote. Every other ASCII letter is reserved; remaining
// characters are copied as they are.
func CompilePattern(pattern string) (*Layout, error) {
	var (
		tokens []token
		lit    strings.Builder
	)
	flush := func() {
		if lit.Len() > 0 {
			tokens = append(tokens, token{literal: lit.String()})
			lit.Reset()
		}
	}

	runes := []rune(pattern)
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case r == '\'':
			if i+1 < len(runes) && runes[i+1] == '\'' {
				lit.WriteRune('\'')
				i += 2
				continue
			}
			j, closed := i+1, false
			for j < len(runes) {
				if runes[j] == '\'' {
					if j+1 < len(runes) && runes[j+1] == '\'' {
						lit.WriteRune('\'')
						j += 2
						continue
					}
					closed = true
					break
				}
				lit.WriteRune(runes[j])
				j++
			}
			if !closed {
				return nil, invalidPattern(pattern, "unterminated quote at position %d in pattern %q", i, pattern)
			}
			i = j + 1

		case isASCIILetter(r):
			rule, ok := letterRules[r]
			if !ok {
				return nil, invalidPattern(pattern, "reserved pattern letter %q in pattern %q", r, pattern)
			}
			j := i
			for j < len(runes) && runes[j] == r {
				j++
			}
			width := j - i
			if width > rule.maxWidth {
				return nil, invalidPattern(pattern, "too many pattern letters %q in pattern %q", r, pattern).
					WithDetail("letter", string(r)).
					WithDetail("width", width)
			}
			flush()
			tokens = append(tokens, token{letter: r, width: width, field: rule.field})
			i = j

		default:
			lit.WriteRune(r)
			i++
		}
	}
	flush()

	return &Layout{pattern: pattern, tokens: tokens}, nil
}

// MustCompilePattern is like CompilePattern but panics on error
func MustCompilePattern(pattern string) *Layout {
	l, err := CompilePattern(pattern)
	if err != nil {
		panic(err)
	}
	return l
}

// String returns the source pattern
func (l *Layout) String() string {
	return l.pattern
}

// Fields returns the distinct fields the layout reads, in order of first use
func (l *Layout) Fields() []Field {
	var fields []Field
	seen := make(map[Field]bool)
	for _, tok := range l.tokens {
		if tok.letter == 0 || seen[tok.field] {
			continue
		}
		seen[tok.field] = true
		fields = append(fields, tok.field)
	}
	return fields
}

// Format renders v using the default display locale
func (l *Layout) Format(v Temporal) (string, error) {
	return l.FormatLocale(v, DefaultLocale())
}

// FormatLocale renders v with month, weekday and day period names of tag
func (l *Layout) FormatLocale(v Temporal, tag language.Tag) (string, error) {
	if v == nil {
		return "", invalidInput("timex.Format", "nothing to format")
	}
	if !v.valid() {
		return "", invalidInput("timex.Format", "cannot format invalid calendar value %v", v)
	}
	for _, tok := range l.tokens {
		if tok.letter != 0 && !v.Supports(tok.field) {
			return "", gerror.Newf("pattern %q needs the %s field, which %T does not carry", l.pattern, tok.field, v).
				WithCode(gerror.CodeUnsupportedField).
				WithOperation("timex.Format").
				WithDetail("field", tok.field.String()).
				WithDetail("pattern", l.pattern)
		}
	}

	names := namesFor(tag)
	var b strings.Builder
	for _, tok := range l.tokens {
		if tok.letter == 0 {
			b.WriteString(tok.literal)
			continue
		}
		appendField(&b, tok, v, names)
	}
	return b.String(), nil
}

// Format renders v with pattern and the default display locale
func Format(v Temporal, pattern string) (string, error) {
	return FormatLocale(v, pattern, DefaultLocale())
}

// FormatLocale renders v with pattern and the names of tag.
// Compiled patterns are cached.
func FormatLocale(v Temporal, pattern string, tag language.Tag) (string, error) {
	layout, err := layouts.get(pattern)
	if err != nil {
		return "", err
	}
	return layout.FormatLocale(v, tag)
}

// FormatInstant renders the local date-time of i
func FormatInstant(i Instant, pattern string) (string, error) {
	return Format(ToLocalDateTime(i), pattern)
}

// CurrentDate renders today with the DATE pattern
func CurrentDate() string {
	return mustRender(ToLocalDate(Now()), PatternDate)
}

// CurrentDateTime renders now with the DATE_TIME pattern
func CurrentDateTime() string {
	return mustRender(ToLocalDateTime(Now()), PatternDateTime)
}

// CurrentTime renders the time of day with the TIME pattern
func CurrentTime() string {
	return mustRender(ToLocalTime(Now()), PatternTime)
}

// mustRender is only used with built-in patterns whose fields the value carries
func mustRender(v Temporal, name FormatPattern) string {
	s, err := Render(v, name)
	if err != nil {
		panic(err)
	}
	return s
}

func appendField(b *strings.Builder, tok token, v Temporal, names *nameTable) {
	switch tok.letter {
	case 'y':
		year := v.fieldValue(FieldYear)
		if year <= 0 {
			year = 1 - year // year of era
		}
		if tok.width == 2 {
			appendPadded(b, year%100, 2)
		} else {
			appendPadded(b, year, tok.width)
		}
	case 'u':
		year := v.fieldValue(FieldYear)
		if tok.width == 2 {
			appendPadded(b, int(floorMod(int64(year), 100)), 2)
		} else {
			appendPadded(b, year, tok.width)
		}
	case 'M', 'L':
		month := v.fieldValue(FieldMonth)
		switch tok.width {
		case 1, 2:
			appendPadded(b, month, tok.width)
		case 3:
			b.WriteString(names.monthsShort[month-1])
		case 4:
			b.WriteString(names.months[month-1])
		default:
			b.WriteString(names.monthsNarrow[month-1])
		}
	case 'd':
		appendPadded(b, v.fieldValue(FieldDay), tok.width)
	case 'D':
		appendPadded(b, v.fieldValue(FieldDayOfYear), tok.width)
	case 'E':
		wd := v.fieldValue(FieldWeekday)
		switch tok.width {
		case 1, 2, 3:
			b.WriteString(names.weekdaysShort[wd])
		case 4:
			b.WriteString(names.weekdays[wd])
		default:
			b.WriteString(names.weekdaysNarrow[wd])
		}
	case 'a':
		b.WriteString(names.dayPeriods[v.fieldValue(FieldHour)/12])
	case 'H':
		appendPadded(b, v.fieldValue(FieldHour), tok.width)
	case 'k':
		hour := v.fieldValue(FieldHour)
		if hour == 0 {
			hour = 24
		}
		appendPadded(b, hour, tok.width)
	case 'K':
		appendPadded(b, v.fieldValue(FieldHour)%12, tok.width)
	case 'h':
		hour := v.fieldValue(FieldHour) % 12
		if hour == 0 {
			hour = 12
		}
		appendPadded(b, hour, tok.width)
	case 'm':
		appendPadded(b, v.fieldValue(FieldMinute), tok.width)
	case 's':
		appendPadded(b, v.fieldValue(FieldSecond), tok.width)
	case 'S':
		nano := v.fieldValue(FieldNanosecond)
		for i := tok.width; i < 9; i++ {
			nano /= 10
		}
		appendPadded(b, nano, tok.width)
	case 'n':
		appendPadded(b, v.fieldValue(FieldNanosecond), tok.width)
	}
}

// appendPadded writes n with at least width digits, sign first
func appendPadded(b *strings.Builder, n, width int) {
	if n < 0 {
		b.WriteByte('-')
		n = -n
	}
	digits := strconv.Itoa(n)
	for i := len(digits); i < width; i++ {
		b.WriteByte('0')
	}
	b.WriteString(digits)
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
