package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/msto63/gregor/foundation/utils/timex"
)

var patternsSample string

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Zeigt alle benannten Muster",
	Long: `Zeigt die eingebauten Muster, die Muster aus der Konfiguration und
die Muster aus dem Musterkatalog (format.patterns_file) mit einem
Beispiel.`,
	Args: cobra.NoArgs,
	RunE: runPatterns,
}

func init() {
	rootCmd.AddCommand(patternsCmd)

	patternsCmd.Flags().StringVar(&patternsSample, "sample", "",
		"Beispielzeitpunkt (default: jetzt)")
}

type patternEntry struct {
	Name    string `json:"name"`
	Pattern string `json:"pattern"`
	Sample  string `json:"sample"`
}

func runPatterns(cmd *cobra.Command, args []string) error {
	sample := timex.Now()
	if patternsSample != "" {
		var err error
		if sample, err = parseInstantArg("sample", patternsSample); err != nil {
			return err
		}
	}
	entries := listPatterns(app.patterns, timex.ToLocalDateTime(sample), app.locale)

	if done, err := app.out.emit(entries); done {
		return err
	}

	app.out.title(fmt.Sprintf("%d Muster", len(entries)))
	for _, e := range entries {
		app.out.field(e.Name, fmt.Sprintf("%-24s %s", e.Pattern, e.Sample))
	}
	return nil
}

// listPatterns renders every registry entry for sample, sorted by name
func listPatterns(patterns timex.Patterns, sample timex.LocalDateTime, tag language.Tag) []patternEntry {
	names := patterns.Names()
	entries := make([]patternEntry, 0, len(names))
	for _, name := range names {
		pattern, _ := patterns.Lookup(name)
		text, err := patterns.RenderLocale(sample, name, tag)
		if err != nil {
			text = err.Error()
		}
		entries = append(entries, patternEntry{Name: name.String(), Pattern: pattern, Sample: text})
	}
	return entries
}
