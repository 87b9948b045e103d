package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	gerror "github.com/msto63/gregor/foundation/core/error"
)

var (
	cfgFile string
	verbose bool
	plain   bool
	jsonOut bool
)

var rootCmd = &cobra.Command{
	Use:   "gregor",
	Short: "gregor - Kalenderarithmetik und Zeitformatierung",
	Long: `gregor rechnet mit Kalendermonaten und Tagen, prüft Zeitintervalle
und formatiert Zeitpunkte mit Mustern wie "yyyy年MM月dd日".

Zeitpunkte werden als Epoch-Millisekunden, yyyy-MM-dd,
yyyy-MM-dd HH:mm:ss oder RFC3339 angegeben und in der lokalen
Zeitzone ausgewertet.

Befehle:
  convert   - Zeitpunkt in lokale Datums-/Zeitwerte umrechnen
  interval  - Intervalle anlegen und auf Überlappung prüfen
  month     - Monatsarithmetik und Monatskalender
  days      - Tage addieren und Tagesabstände
  span      - Monatsanzahl als Jahre und Monate
  format    - Zeitpunkte mit Mustern formatieren
  patterns  - Benannte Muster anzeigen
  browse    - Interaktive Monatsansicht`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command and prints a failure to stderr
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

// ExitCode maps a command error to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return gerror.GetCode(err).ExitCode()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: $GREGOR_CONFIG oder ./gregor.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "Ausgabe ohne Farben")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Ausgabe als JSON")
}

func printError(err error) {
	msg := fmt.Sprintf("Fehler: %v", err)
	if app != nil && app.out.styled {
		msg = errorStyle.Render(msg)
	}
	fmt.Fprintln(os.Stderr, msg)

	if app != nil {
		app.logger.LogError(err)
	}
}
