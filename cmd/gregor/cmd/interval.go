package cmd

import (
	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/gregor/foundation/core/log"
	"github.com/msto63/gregor/foundation/utils/timex"
)

var intervalCmd = &cobra.Command{
	Use:   "interval",
	Short: "Intervalle anlegen und vergleichen",
	Long: `Legt geschlossene Zeitintervalle an und prüft Überlappung und
Enthaltensein.

Zwei Intervalle überlappen auch dann, wenn sie sich nur an einem
Endpunkt berühren. Ein Zeitpunkt liegt nur dann in einem Intervall,
wenn er echt zwischen Start und Ende liegt.`,
}

var intervalNewCmd = &cobra.Command{
	Use:   "new <start> <ende>",
	Short: "Legt ein Intervall an und zeigt seine Dauer",
	Args:  cobra.ExactArgs(2),
	RunE:  runIntervalNew,
}

var intervalOverlapCmd = &cobra.Command{
	Use:   "overlap <start1> <ende1> <start2> <ende2>",
	Short: "Prüft, ob zwei Intervalle überlappen",
	Args:  cobra.ExactArgs(4),
	RunE:  runIntervalOverlap,
}

var intervalContainsCmd = &cobra.Command{
	Use:   "contains <start> <ende> <zeitpunkt>",
	Short: "Prüft, ob ein Zeitpunkt echt im Intervall liegt",
	Args:  cobra.ExactArgs(3),
	RunE:  runIntervalContains,
}

func init() {
	rootCmd.AddCommand(intervalCmd)
	intervalCmd.AddCommand(intervalNewCmd)
	intervalCmd.AddCommand(intervalOverlapCmd)
	intervalCmd.AddCommand(intervalContainsCmd)
}

// parseInterval builds an interval from two positional arguments
func parseInterval(start, end string) (timex.Interval, error) {
	s, err := parseInstantArg("start", start)
	if err != nil {
		return timex.Interval{}, err
	}
	e, err := parseInstantArg("end", end)
	if err != nil {
		return timex.Interval{}, err
	}
	return timex.NewInterval(s, e)
}

func runIntervalNew(cmd *cobra.Command, args []string) error {
	iv, err := parseInterval(args[0], args[1])
	if err != nil {
		return err
	}

	if done, err := app.out.emit(map[string]interface{}{
		"start":       iv.Start().UnixMilli(),
		"end":         iv.End().UnixMilli(),
		"duration_ms": iv.Duration().Milliseconds(),
	}); done {
		return err
	}

	app.out.title(iv.String())
	app.out.field("Start", iv.Start().UnixMilli())
	app.out.field("Ende", iv.End().UnixMilli())
	app.out.field("Dauer", iv.Duration())
	return nil
}

func runIntervalOverlap(cmd *cobra.Command, args []string) error {
	a, err := parseInterval(args[0], args[1])
	if err != nil {
		return err
	}
	b, err := parseInterval(args[2], args[3])
	if err != nil {
		return err
	}

	overlaps := timex.IntervalsOverlap(a, b)
	app.logger.Debug("Interval overlap checked", mdwlog.Fields{
		"a": a.String(), "b": b.String(), "overlaps": overlaps,
	})

	if done, err := app.out.emit(map[string]bool{"overlaps": overlaps}); done {
		return err
	}
	app.out.boolean(overlaps)
	return nil
}

func runIntervalContains(cmd *cobra.Command, args []string) error {
	start, err := parseInstantArg("start", args[0])
	if err != nil {
		return err
	}
	end, err := parseInstantArg("end", args[1])
	if err != nil {
		return err
	}
	point, err := parseInstantArg("point", args[2])
	if err != nil {
		return err
	}

	contained := timex.PointInInterval(point, start, end)
	if done, err := app.out.emit(map[string]bool{"contains": contained}); done {
		return err
	}
	app.out.boolean(contained)
	return nil
}
