// ============================================================================
// gregor - Kalenderarithmetik und Zeitformatierung
// ============================================================================
//
// Package:     cmd
// Description: CLI command for the interactive month browser
// Author:      Mike Stoffels
// Created:     2025-12-12
// License:     MIT
// ============================================================================

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/msto63/gregor/foundation/utils/timex"
	"github.com/msto63/gregor/internal/tui/monthview"
)

var browsePattern patternValue

var browseCmd = &cobra.Command{
	Use:     "browse [datum]",
	Aliases: []string{"cal", "tui"},
	Short:   "Startet die interaktive Monatsansicht",
	Long: `Startet die interaktive Monatsansicht.

Ist catalog.watch gesetzt, werden Änderungen am Musterkatalog
während der Anzeige übernommen.

Tastenkuerzel:
  ←→ / h l     Tag zurück / vor
  ↑↓ / k j     Woche zurück / vor
  n p / PgDn PgUp   Monat vor / zurück
  N P          Jahr vor / zurück
  t            Heute
  g / /        Gehe zu Datum
  q / Esc      Beenden`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)

	browseCmd.Flags().Var(&browsePattern, "pattern", "Muster für den gewählten Tag (default: DATE)")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg := monthview.Config{
		Patterns:  app.patterns,
		Pattern:   browsePattern.name,
		Locale:    app.locale,
		WeekStart: app.cfg.WeekStart(),
		Plain:     !app.out.styled,
	}
	if len(args) == 1 {
		instant, err := parseInstantArg("date", args[0])
		if err != nil {
			return err
		}
		cfg.Start = timex.ToLocalDate(instant)
	}

	var reloads chan timex.Patterns
	if app.loader != nil && app.cfg.Catalog.Watch {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		reloads = make(chan timex.Patterns, 1)
		app.loader.SetOnChange(func(p timex.Patterns) {
			// keep only the newest registry if the UI falls behind
			select {
			case <-reloads:
			default:
			}
			reloads <- p
		})

		done, err := app.loader.Watch(ctx)
		if err != nil {
			return err
		}
		defer func() {
			cancel()
			<-done
			close(reloads)
		}()
	}

	return monthview.Run(cfg, reloads)
}
