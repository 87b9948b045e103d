// ============================================================================
// gregor - Kalenderarithmetik und Zeitformatierung
// ============================================================================
//
// Package:     config
// Description: Typed application configuration loaded from TOML or YAML
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	gerror "github.com/msto63/gregor/foundation/core/error"
	mdwlog "github.com/msto63/gregor/foundation/core/log"
	"github.com/msto63/gregor/foundation/utils/timex"
)

// EnvConfigPath names the environment variable holding the config file path
const EnvConfigPath = "GREGOR_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Format  FormatConfig  `toml:"format" yaml:"format"`
	Display DisplayConfig `toml:"display" yaml:"display"`
	Catalog CatalogConfig `toml:"catalog" yaml:"catalog"`

	// path of the file the config was loaded from, empty for defaults
	path string
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string `toml:"name" yaml:"name"`
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// FormatConfig holds formatter settings
type FormatConfig struct {
	Locale         string            `toml:"locale" yaml:"locale"`
	DefaultPattern string            `toml:"default_pattern" yaml:"default_pattern"`
	PatternsFile   string            `toml:"patterns_file" yaml:"patterns_file"`
	Patterns       map[string]string `toml:"patterns" yaml:"patterns"`
}

// DisplayConfig holds terminal output settings
type DisplayConfig struct {
	WeekStart string `toml:"week_start" yaml:"week_start"` // "monday" or "sunday"
	Color     string `toml:"color" yaml:"color"`           // "auto", "always" or "never"
}

// CatalogConfig holds pattern catalog reload settings
type CatalogConfig struct {
	Watch    bool     `toml:"watch" yaml:"watch"`
	Debounce Duration `toml:"debounce" yaml:"debounce"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration scalar
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	return d.UnmarshalText([]byte(node.Value))
}

// Default returns a configuration with all defaults applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML (.toml) or YAML (.yaml, .yml) file
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, gerror.Newf("config file not found: %s", path).
				WithCode(gerror.CodeNotFound).
				WithOperation("config.Load")
		}
		return nil, gerror.Wrap(err, "failed to read config").
			WithCode(gerror.CodeConfigError).
			WithOperation("config.Load")
	}

	var cfg Config
	if err := decode(path, data, &cfg); err != nil {
		return nil, gerror.Wrap(err, "failed to parse config").
			WithCode(gerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}
	cfg.path = path

	// Apply defaults
	cfg.applyDefaults()

	// Expand environment variables in file paths
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// decode picks the decoder by file extension
func decode(path string, data []byte, out interface{}) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		_, err := toml.Decode(string(data), out)
		return err
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, out)
	default:
		return fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}
}

// LoadFromEnv loads configuration from the GREGOR_CONFIG environment variable
// or the first default location that exists. When no file is found the error
// carries CodeNotFound.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		path = findDefault()
	}

	if path == "" {
		return nil, gerror.Newf("no config file found, set %s or create gregor.toml", EnvConfigPath).
			WithCode(gerror.CodeNotFound).
			WithOperation("config.LoadFromEnv")
	}

	return Load(path)
}

func findDefault() string {
	defaultPaths := []string{
		"./gregor.toml",
		"./gregor.yaml",
		"./configs/gregor.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		defaultPaths = append(defaultPaths,
			filepath.Join(home, ".config/gregor/config.toml"),
			filepath.Join(home, ".config/gregor/config.yaml"),
		)
	}
	for _, p := range defaultPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.Name == "" {
		c.General.Name = "gregor"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	// Format
	if c.Format.Locale == "" {
		c.Format.Locale = timex.DefaultLocale().String()
	}
	if c.Format.DefaultPattern == "" {
		c.Format.DefaultPattern = string(timex.PatternDateTime)
	}

	// Display
	if c.Display.WeekStart == "" {
		c.Display.WeekStart = "monday"
	}
	if c.Display.Color == "" {
		c.Display.Color = "auto"
	}

	// Catalog
	if c.Catalog.Debounce.Duration == 0 {
		c.Catalog.Debounce.Duration = 200 * time.Millisecond
	}
}

// expandEnvVars expands environment variables in configuration values
func (c *Config) expandEnvVars() {
	c.Format.PatternsFile = os.ExpandEnv(c.Format.PatternsFile)
}

// Validate checks values that have a closed set of choices
func (c *Config) Validate() error {
	invalid := func(field, value string) error {
		return gerror.Newf("invalid value %q for %s", value, field).
			WithCode(gerror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("field", field)
	}

	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", c.General.LogLevel)
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", c.General.LogFormat)
	}
	if _, err := c.Locale(); err != nil {
		return invalid("format.locale", c.Format.Locale)
	}
	switch strings.ToLower(c.Display.WeekStart) {
	case "monday", "sunday":
	default:
		return invalid("display.week_start", c.Display.WeekStart)
	}
	switch strings.ToLower(c.Display.Color) {
	case "auto", "always", "never":
	default:
		return invalid("display.color", c.Display.Color)
	}
	return nil
}

// Path returns the file the configuration was loaded from
func (c *Config) Path() string {
	return c.path
}

// ResolvePath resolves p relative to the directory of the config file
func (c *Config) ResolvePath(p string) string {
	if p == "" || filepath.IsAbs(p) || c.path == "" {
		return p
	}
	return filepath.Join(filepath.Dir(c.path), p)
}

// Locale returns the display locale
func (c *Config) Locale() (language.Tag, error) {
	return timex.ParseLocale(c.Format.Locale)
}

// Patterns returns the built-in patterns extended with the inline patterns
func (c *Config) Patterns() (timex.Patterns, error) {
	return timex.DefaultPatterns().Merge(c.Format.Patterns)
}

// WeekStart returns the first day of a calendar week
func (c *Config) WeekStart() time.Weekday {
	if strings.EqualFold(c.Display.WeekStart, "sunday") {
		return time.Sunday
	}
	return time.Monday
}
