package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/gregor/foundation/utils/timex"
)

var convertCmd = &cobra.Command{
	Use:   "convert <zeitpunkt>",
	Short: "Rechnet einen Zeitpunkt in lokale Werte um",
	Long: `Rechnet einen Zeitpunkt in Datum, Uhrzeit und Datum mit Uhrzeit der
lokalen Zeitzone um und zurück in Epoch-Millisekunden.

Beispiele:
  gregor convert 1700000000000
  gregor convert "2024-03-05 14:30:00"
  gregor convert 2024-03-05T14:30:00+08:00`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

type conversionResult struct {
	Instant       int64  `json:"instant"`
	LocalDateTime string `json:"local_date_time"`
	LocalDate     string `json:"local_date"`
	LocalTime     string `json:"local_time"`
	DateInstant   int64  `json:"date_instant"`
	RoundTrip     int64  `json:"round_trip"`
}

func runConvert(cmd *cobra.Command, args []string) error {
	instant, err := parseInstantArg("instant", args[0])
	if err != nil {
		return err
	}

	dateTime := timex.ToLocalDateTime(instant)
	date := timex.ToLocalDate(instant)

	roundTrip, err := timex.FromLocalDateTime(dateTime)
	if err != nil {
		return err
	}
	startOfDay, err := timex.FromLocalDate(date)
	if err != nil {
		return err
	}

	result := conversionResult{
		Instant:       instant.UnixMilli(),
		LocalDateTime: dateTime.String(),
		LocalDate:     date.String(),
		LocalTime:     timex.ToLocalTime(instant).String(),
		DateInstant:   startOfDay.UnixMilli(),
		RoundTrip:     roundTrip.UnixMilli(),
	}

	if done, err := app.out.emit(result); done {
		return err
	}

	app.out.title(instant.String())
	app.out.field("Epoch-Millis", result.Instant)
	app.out.field("LocalDateTime", result.LocalDateTime)
	app.out.field("LocalDate", result.LocalDate)
	app.out.field("LocalTime", result.LocalTime)
	app.out.field("Tagesbeginn (ms)", result.DateInstant)
	app.out.field("Rückumrechnung (ms)", result.RoundTrip)
	return nil
}
