// ============================================================================
// gregor - Kalenderarithmetik und Zeitformatierung
// ============================================================================
//
// Package:     cmd
// Description: Shared command state: config, logger, patterns and output
// Author:      Mike Stoffels
// Created:     2025-12-12
// License:     MIT
// ============================================================================

package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	gerror "github.com/msto63/gregor/foundation/core/error"
	mdwlog "github.com/msto63/gregor/foundation/core/log"
	"github.com/msto63/gregor/foundation/utils/timex"
	"github.com/msto63/gregor/internal/catalog"
	"github.com/msto63/gregor/pkg/core/config"
	"github.com/msto63/gregor/pkg/core/logging"
)

// appContext is built once per invocation before any command runs
type appContext struct {
	cfg      *config.Config
	logger   *mdwlog.Logger
	patterns timex.Patterns
	locale   language.Tag
	out      *output
	loader   *catalog.Loader // nil without a pattern catalog
}

var app *appContext

func setup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logCfg := logging.FromConfig(cfg)
	if verbose {
		logCfg.Level = "debug"
	}
	logCfg.CorrelationID = logging.NewCorrelationID()
	logger := logging.NewLogger(logCfg)

	locale, err := cfg.Locale()
	if err != nil {
		return err
	}

	patterns, err := cfg.Patterns()
	if err != nil {
		return gerror.Wrap(err, "invalid inline pattern").
			WithCode(gerror.CodeInvalidConfig).
			WithDetail("path", cfg.Path())
	}

	var loader *catalog.Loader
	if cfg.Format.PatternsFile != "" {
		loader = catalog.NewLoader(cfg.ResolvePath(cfg.Format.PatternsFile), patterns, logger)
		loader.SetDebounce(cfg.Catalog.Debounce.Duration)
		if patterns, err = loader.Load(); err != nil {
			return err
		}
	}

	app = &appContext{
		cfg:      cfg,
		logger:   logger,
		patterns: patterns,
		locale:   locale,
		out:      newOutput(cmd.OutOrStdout(), cfg.Display.Color),
		loader:   loader,
	}

	logger.Debug("Command started", mdwlog.Fields{
		"command":  cmd.CommandPath(),
		"config":   cfg.Path(),
		"locale":   locale.String(),
		"patterns": patterns.Len(),
	})
	return nil
}

// loadConfig loads --config or the environment default. A missing default
// file falls back to built-in settings; a missing --config file is an error.
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}

	cfg, err := config.LoadFromEnv()
	if gerror.HasCode(err, gerror.CodeNotFound) && os.Getenv(config.EnvConfigPath) == "" {
		return config.Default(), nil
	}
	return cfg, err
}

// defaultPattern returns the configured default pattern name
func (a *appContext) defaultPattern() timex.FormatPattern {
	return timex.ParsePatternName(a.cfg.Format.DefaultPattern)
}
