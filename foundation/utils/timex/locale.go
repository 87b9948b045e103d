// File: locale.go
// Title: Locale Name Tables
// Description: Month, weekday and day period names for the display locales the
//              formatter supports, selected with golang.org/x/text/language
//              matching.
// Author: msto63
// Version: v0.2.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.2.0: Initial implementation with Chinese, English and German

package timex

import (
	"strings"

	"golang.org/x/text/language"
)

// nameTable holds the text forms of calendar fields for one locale.
// Weekday arrays are indexed by time.Weekday (Sunday = 0).
type nameTable struct {
	months         [12]string
	monthsShort    [12]string
	monthsNarrow   [12]string
	weekdays       [7]string
	weekdaysShort  [7]string
	weekdaysNarrow [7]string
	dayPeriods     [2]string
}

var englishNames = nameTable{
	months: [12]string{"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"},
	monthsShort: [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	monthsNarrow:   [12]string{"J", "F", "M", "A", "M", "J", "J", "A", "S", "O", "N", "D"},
	weekdays:       [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	weekdaysShort:  [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	weekdaysNarrow: [7]string{"S", "M", "T", "W", "T", "F", "S"},
	dayPeriods:     [2]string{"AM", "PM"},
}

var chineseNames = nameTable{
	months: [12]string{"一月", "二月", "三月", "四月", "五月", "六月",
		"七月", "八月", "九月", "十月", "十一月", "十二月"},
	monthsShort: [12]string{"1月", "2月", "3月", "4月", "5月", "6月",
		"7月", "8月", "9月", "10月", "11月", "12月"},
	monthsNarrow:   [12]string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"},
	weekdays:       [7]string{"星期日", "星期一", "星期二", "星期三", "星期四", "星期五", "星期六"},
	weekdaysShort:  [7]string{"周日", "周一", "周二", "周三", "周四", "周五", "周六"},
	weekdaysNarrow: [7]string{"日", "一", "二", "三", "四", "五", "六"},
	dayPeriods:     [2]string{"上午", "下午"},
}

var germanNames = nameTable{
	months: [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni",
		"Juli", "August", "September", "Oktober", "November", "Dezember"},
	monthsShort: [12]string{"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni",
		"Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez."},
	monthsNarrow:   [12]string{"J", "F", "M", "A", "M", "J", "J", "A", "S", "O", "N", "D"},
	weekdays:       [7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
	weekdaysShort:  [7]string{"So.", "Mo.", "Di.", "Mi.", "Do.", "Fr.", "Sa."},
	weekdaysNarrow: [7]string{"S", "M", "D", "M", "D", "F", "S"},
	dayPeriods:     [2]string{"AM", "PM"},
}

// supportedLocales and localeNames are parallel; the first entry is the
// matcher's fallback for unsupported tags.
var (
	supportedLocales = []language.Tag{language.English, language.Chinese, language.German}
	localeNames      = []*nameTable{&englishNames, &chineseNames, &germanNames}
	localeMatcher    = language.NewMatcher(supportedLocales)
)

// DefaultLocale returns the display locale used when none is given
func DefaultLocale() language.Tag {
	return language.Chinese
}

// SupportedLocales returns the locales with name tables
func SupportedLocales() []language.Tag {
	out := make([]language.Tag, len(supportedLocales))
	copy(out, supportedLocales)
	return out
}

// MatchLocale returns the supported locale closest to tag.
// Tags without a reasonable match resolve to English.
func MatchLocale(tag language.Tag) language.Tag {
	_, idx, _ := localeMatcher.Match(tag)
	return supportedLocales[idx]
}

// ParseLocale parses a BCP 47 tag such as "zh", "en-US" or "de-AT"
func ParseLocale(value string) (language.Tag, error) {
	tag, err := language.Parse(strings.TrimSpace(value))
	if err != nil {
		return language.Und, invalidInput("timex.ParseLocale", "invalid locale %q: %v", value, err).
			WithDetail("input", value)
	}
	return tag, nil
}

func namesFor(tag language.Tag) *nameTable {
	_, idx, _ := localeMatcher.Match(tag)
	return localeNames[idx]
}
