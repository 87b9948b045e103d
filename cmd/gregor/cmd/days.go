package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/gregor/foundation/utils/timex"
)

var daysCmd = &cobra.Command{
	Use:   "days",
	Short: "Tagesarithmetik",
}

var daysAddCmd = &cobra.Command{
	Use:   "add <zeitpunkt> <tage>",
	Short: "Addiert Kalendertage, die Uhrzeit bleibt erhalten",
	Long: `Addiert Kalendertage. Die Uhrzeit bleibt auch über eine
Zeitumstellung hinweg erhalten.

Negative Werte nach -- angeben: gregor days add -- 2024-03-01 -1`,
	Args: cobra.ExactArgs(2),
	RunE: runDaysAdd,
}

var daysBetweenCmd = &cobra.Command{
	Use:   "between <von> <bis>",
	Short: "Zählt die vollen Tage zwischen zwei Zeitpunkten",
	Long: `Zählt die vollen Kalendertage von <von> bis <bis>. Liegt <bis> vor
<von>, ist das Ergebnis negativ. Angebrochene Tage zählen nicht.`,
	Args: cobra.ExactArgs(2),
	RunE: runDaysBetween,
}

var spanCmd = &cobra.Command{
	Use:   "span <monate>",
	Short: "Stellt eine Monatsanzahl als Jahre und Monate dar",
	Long: `Stellt eine Monatsanzahl als Jahre und Monate dar, z.B. 14 als 1年2月.

Negative Werte nach -- angeben: gregor span -- -5`,
	Args: cobra.ExactArgs(1),
	RunE: runSpan,
}

func init() {
	rootCmd.AddCommand(daysCmd)
	rootCmd.AddCommand(spanCmd)
	daysCmd.AddCommand(daysAddCmd)
	daysCmd.AddCommand(daysBetweenCmd)
}

func runDaysAdd(cmd *cobra.Command, args []string) error {
	instant, err := parseInstantArg("instant", args[0])
	if err != nil {
		return err
	}
	n, err := parseIntArg("days", args[1])
	if err != nil {
		return err
	}
	return printDateTime(timex.AddDays(instant, n))
}

func runDaysBetween(cmd *cobra.Command, args []string) error {
	from, err := parseInstantArg("from", args[0])
	if err != nil {
		return err
	}
	to, err := parseInstantArg("to", args[1])
	if err != nil {
		return err
	}

	days := timex.DaysBetween(from, to)
	if done, err := app.out.emit(map[string]int64{"days": days}); done {
		return err
	}
	app.out.field("Tage", days)
	return nil
}

func runSpan(cmd *cobra.Command, args []string) error {
	total, err := parseIntArg("months", args[0])
	if err != nil {
		return err
	}

	ym := timex.MonthCountToYearsAndMonths(total)
	if done, err := app.out.emit(map[string]interface{}{
		"years":  ym.Years,
		"months": ym.Months,
		"text":   ym.String(),
	}); done {
		return err
	}
	app.out.line(ym.String())
	return nil
}
