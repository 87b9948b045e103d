package cmd

import (
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	gerror "github.com/msto63/gregor/foundation/core/error"
	mdwlog "github.com/msto63/gregor/foundation/core/log"
	"github.com/msto63/gregor/foundation/utils/timex"
)

var (
	formatPattern patternValue
	formatLayout  string
	formatLocale  localeValue
)

var formatCmd = &cobra.Command{
	Use:   "format <zeitpunkt>",
	Short: "Formatiert einen Zeitpunkt mit einem Muster",
	Long: `Formatiert einen Zeitpunkt mit einem benannten Muster (--pattern)
oder einem eigenen Muster (--layout). Ohne beides wird das Standardmuster
aus der Konfiguration verwendet.

Musterbuchstaben:
  y/u Jahr   M/L Monat   d Tag   D Tag im Jahr   E Wochentag   a AM/PM
  H Stunde 0-23   k 1-24   K 0-11   h 1-12   m Minute   s Sekunde
  S Sekundenbruchteil   n Nanosekunde   '...' Literal   '' Apostroph

Beispiele:
  gregor format 1700000000000 --pattern chinese-date
  gregor format "2024-03-05 14:30:00" --layout "EEEE, d. MMMM yyyy" --locale de`,
	Args: cobra.ExactArgs(1),
	RunE: runFormat,
}

var formatNowCmd = &cobra.Command{
	Use:   "now",
	Short: "Formatiert den aktuellen Zeitpunkt",
	Long: `Formatiert den aktuellen Zeitpunkt. Ohne --pattern und --layout werden
aktuelles Datum, Datum mit Uhrzeit und Uhrzeit ausgegeben.`,
	Args: cobra.NoArgs,
	RunE: runFormatNow,
}

func init() {
	rootCmd.AddCommand(formatCmd)
	formatCmd.AddCommand(formatNowCmd)

	formatCmd.PersistentFlags().VarP(&formatPattern, "pattern", "p", "Name eines Musters (siehe: gregor patterns)")
	formatCmd.PersistentFlags().StringVarP(&formatLayout, "layout", "l", "", "Eigenes Muster, z.B. \"yyyy-MM-dd HH:mm\"")
	formatCmd.PersistentFlags().Var(&formatLocale, "locale", "Sprache für Monats- und Wochentagsnamen (zh, en, de)")
	formatCmd.MarkFlagsMutuallyExclusive("pattern", "layout")
}

func runFormat(cmd *cobra.Command, args []string) error {
	instant, err := parseInstantArg("instant", args[0])
	if err != nil {
		return err
	}
	return printFormatted(timex.ToLocalDateTime(instant))
}

func runFormatNow(cmd *cobra.Command, args []string) error {
	if formatLayout != "" || formatPattern.name != "" {
		return printFormatted(timex.ToLocalDateTime(timex.Now()))
	}

	if done, err := app.out.emit(map[string]string{
		"date":      timex.CurrentDate(),
		"date_time": timex.CurrentDateTime(),
		"time":      timex.CurrentTime(),
	}); done {
		return err
	}
	app.out.field("Datum", timex.CurrentDate())
	app.out.field("Datum und Uhrzeit", timex.CurrentDateTime())
	app.out.field("Uhrzeit", timex.CurrentTime())
	return nil
}

// printFormatted renders v with the layout, named pattern or default pattern
// selected by the flags
func printFormatted(v timex.Temporal) error {
	text, pattern, err := formatWithFlags(v, app.patterns, app.defaultPattern(), formatLocale.or(app.locale))
	if err != nil {
		return err
	}

	app.logger.Debug("Formatted value", mdwlog.Fields{"pattern": pattern})

	if done, err := app.out.emit(map[string]string{"pattern": pattern, "text": text}); done {
		return err
	}
	app.out.line(text)
	return nil
}

// formatWithFlags resolves the pattern from --layout or --pattern, falling
// back to fallback, and returns the rendered text and the pattern used
func formatWithFlags(v timex.Temporal, patterns timex.Patterns, fallback timex.FormatPattern, tag language.Tag) (string, string, error) {
	pattern := formatLayout
	if pattern == "" {
		name := formatPattern.name
		if name == "" {
			name = fallback
		}
		var ok bool
		if pattern, ok = patterns.Lookup(name); !ok {
			return "", "", gerror.Newf("unknown pattern %q", name).
				WithCode(gerror.CodeInvalidInput).
				WithOperation("format").
				WithDetail("pattern", name.String())
		}
	}

	text, err := timex.FormatLocale(v, pattern, tag)
	return text, pattern, err
}
