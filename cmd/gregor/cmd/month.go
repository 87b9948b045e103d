package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/gregor/foundation/utils/timex"
	"github.com/msto63/gregor/internal/tui/monthview"
)

var (
	monthAddClamp    bool
	monthSetLenient  bool
	monthCalendarDay string
)

var monthCmd = &cobra.Command{
	Use:   "month",
	Short: "Monatsarithmetik und Monatskalender",
}

var monthInfoCmd = &cobra.Command{
	Use:   "info [zeitpunkt]",
	Short: "Zeigt Monatslänge, Monatsgrenzen und Abstände",
	Long: `Zeigt Kennzahlen des Monats, in dem der Zeitpunkt liegt.
Ohne Argument wird der aktuelle Zeitpunkt verwendet.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMonthInfo,
}

var monthAddCmd = &cobra.Command{
	Use:   "add <zeitpunkt> <monate>",
	Short: "Addiert Kalendermonate",
	Long: `Addiert Kalendermonate. Ein Tag jenseits der Länge des Zielmonats
läuft in den Folgemonat über (31.01. + 1 Monat = 02.03. bzw. 03.03.).
Mit --clamp wird stattdessen auf den letzten Tag des Zielmonats begrenzt.

Negative Werte nach -- angeben: gregor month add -- 2024-03-31 -1`,
	Args: cobra.ExactArgs(2),
	RunE: runMonthAdd,
}

var monthSetDayCmd = &cobra.Command{
	Use:   "setday <zeitpunkt> <tag>",
	Short: "Setzt den Tag im Monat",
	Long: `Setzt den Tag im Monat und die Uhrzeit auf Mitternacht.
Ein Tag außerhalb der Monatslänge ist ein Fehler; mit --lenient läuft er
in den Folgemonat über und die Uhrzeit bleibt erhalten.`,
	Args: cobra.ExactArgs(2),
	RunE: runMonthSetDay,
}

var monthCalendarCmd = &cobra.Command{
	Use:   "calendar [datum]",
	Short: "Zeigt den Monatskalender",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runMonthCalendar,
}

func init() {
	rootCmd.AddCommand(monthCmd)
	monthCmd.AddCommand(monthInfoCmd)
	monthCmd.AddCommand(monthAddCmd)
	monthCmd.AddCommand(monthSetDayCmd)
	monthCmd.AddCommand(monthCalendarCmd)

	monthAddCmd.Flags().BoolVar(&monthAddClamp, "clamp", false,
		"Auf den letzten Tag des Zielmonats begrenzen")
	monthSetDayCmd.Flags().BoolVar(&monthSetLenient, "lenient", false,
		"Überlauf in den Folgemonat erlauben")
	monthCalendarCmd.Flags().StringVar(&monthCalendarDay, "mark", "",
		"Zusätzlich hervorgehobenes Datum (yyyy-MM-dd)")
}

// instantOrNow parses the optional first argument, defaulting to now
func instantOrNow(args []string) (timex.Instant, error) {
	if len(args) == 0 {
		return timex.Now(), nil
	}
	return parseInstantArg("instant", args[0])
}

type monthInfo struct {
	Year               int    `json:"year"`
	Month              int    `json:"month"`
	DaysInMonth        int    `json:"days_in_month"`
	DaysToStartOfMonth int    `json:"days_to_start_of_month"`
	DaysToEndOfMonth   int    `json:"days_to_end_of_month"`
	FirstDayOfMonth    bool   `json:"first_day_of_month"`
	StartOfMonth       string `json:"start_of_month"`
	EndOfMonth         string `json:"end_of_month"`
}

func runMonthInfo(cmd *cobra.Command, args []string) error {
	instant, err := instantOrNow(args)
	if err != nil {
		return err
	}

	info := monthInfo{
		Year:               timex.YearOf(instant),
		Month:              timex.MonthOf(instant),
		DaysInMonth:        timex.DaysInMonth(instant),
		DaysToStartOfMonth: timex.DaysToStartOfMonth(instant),
		DaysToEndOfMonth:   timex.DaysToEndOfMonth(instant),
		FirstDayOfMonth:    timex.IsFirstDayOfMonth(instant),
		StartOfMonth:       timex.StartOfMonth(instant).String(),
		EndOfMonth:         timex.EndOfMonth(instant).String(),
	}

	if done, err := app.out.emit(info); done {
		return err
	}

	app.out.title(monthview.MonthTitle(timex.ToLocalDate(instant), app.locale))
	app.out.field("Jahr", info.Year)
	app.out.field("Monat (0-basiert)", info.Month)
	app.out.field("Tage im Monat", info.DaysInMonth)
	app.out.field("Seit Monatsanfang", info.DaysToStartOfMonth)
	app.out.field("Bis Monatsende", info.DaysToEndOfMonth)
	app.out.field("Erster Tag", info.FirstDayOfMonth)
	app.out.field("Monatsanfang", info.StartOfMonth)
	app.out.field("Monatsende", info.EndOfMonth)
	return nil
}

func runMonthAdd(cmd *cobra.Command, args []string) error {
	instant, err := parseInstantArg("instant", args[0])
	if err != nil {
		return err
	}
	n, err := parseIntArg("months", args[1])
	if err != nil {
		return err
	}

	var result timex.LocalDateTime
	if monthAddClamp {
		result = timex.AddMonthsClamped(instant, n)
	} else {
		result = timex.AddMonths(instant, n)
	}

	return printDateTime(result)
}

func runMonthSetDay(cmd *cobra.Command, args []string) error {
	instant, err := parseInstantArg("instant", args[0])
	if err != nil {
		return err
	}
	day, err := parseIntArg("day", args[1])
	if err != nil {
		return err
	}

	if monthSetLenient {
		return printDateTime(timex.DayOfMonth(instant, day))
	}

	result, err := timex.SetDay(instant, day)
	if err != nil {
		return err
	}
	return printDateTime(result)
}

func runMonthCalendar(cmd *cobra.Command, args []string) error {
	month := timex.ToLocalDate(timex.Now())
	if len(args) == 1 {
		instant, err := parseInstantArg("date", args[0])
		if err != nil {
			return err
		}
		month = timex.ToLocalDate(instant)
	}

	opts := monthview.GridOptions{
		WeekStart: app.cfg.WeekStart(),
		Locale:    app.locale,
		Today:     timex.ToLocalDate(timex.Now()),
		Plain:     !app.out.styled,
	}
	if monthCalendarDay != "" {
		mark, err := timex.ParseDate(monthCalendarDay)
		if err != nil {
			return err
		}
		opts.Selected = mark
	}

	app.out.title(monthview.MonthTitle(month, app.locale))
	app.out.line(monthview.RenderGrid(month, opts))
	return nil
}

// printDateTime prints a single LocalDateTime result with its instant
func printDateTime(dt timex.LocalDateTime) error {
	instant, err := dt.Instant()
	if err != nil {
		return err
	}

	if done, err := app.out.emit(map[string]interface{}{
		"local_date_time": dt.String(),
		"instant":         instant.UnixMilli(),
	}); done {
		return err
	}

	app.out.line(dt.String())
	return nil
}
