package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gerror "github.com/msto63/gregor/foundation/core/error"
	"github.com/msto63/gregor/foundation/utils/timex"
)

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"seconds", "30s", 30 * time.Second, false},
		{"milliseconds", "250ms", 250 * time.Millisecond, false},
		{"complex", "1m30s", 90 * time.Second, false},
		{"invalid", "invalid", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))

			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalText() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && d.Duration != tt.expected {
				t.Errorf("UnmarshalText() = %v, want %v", d.Duration, tt.expected)
			}
		})
	}
}

func TestConfig_applyDefaults(t *testing.T) {
	cfg := Default()

	if cfg.General.Name != "gregor" {
		t.Errorf("General.Name = %v, want gregor", cfg.General.Name)
	}
	if cfg.General.LogLevel != "warn" {
		t.Errorf("General.LogLevel = %v, want warn", cfg.General.LogLevel)
	}
	if cfg.Format.Locale != "zh" {
		t.Errorf("Format.Locale = %v, want zh", cfg.Format.Locale)
	}
	if cfg.Format.DefaultPattern != "DATE_TIME" {
		t.Errorf("Format.DefaultPattern = %v, want DATE_TIME", cfg.Format.DefaultPattern)
	}
	if cfg.WeekStart() != time.Monday {
		t.Errorf("WeekStart() = %v, want Monday", cfg.WeekStart())
	}
	if cfg.Catalog.Debounce.Duration != 200*time.Millisecond {
		t.Errorf("Catalog.Debounce = %v, want 200ms", cfg.Catalog.Debounce.Duration)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v", err)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/gregor.toml")
	if !gerror.HasCode(err, gerror.CodeNotFound) {
		t.Errorf("Load() error = %v, want NOT_FOUND", err)
	}
}

func TestLoad_TOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "gregor.toml")

	configContent := `
[general]
log_level = "debug"

[format]
locale = "de"
patterns_file = "patterns.yaml"

[format.patterns]
german = "dd.MM.yyyy"

[display]
week_start = "sunday"

[catalog]
watch = true
debounce = "1s"
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.LogLevel != "debug" {
		t.Errorf("General.LogLevel = %v, want debug", cfg.General.LogLevel)
	}
	if cfg.General.Name != "gregor" {
		t.Errorf("General.Name default not applied: %v", cfg.General.Name)
	}
	if cfg.WeekStart() != time.Sunday {
		t.Errorf("WeekStart() = %v, want Sunday", cfg.WeekStart())
	}
	if !cfg.Catalog.Watch || cfg.Catalog.Debounce.Duration != time.Second {
		t.Errorf("Catalog = %+v", cfg.Catalog)
	}
	if cfg.Path() != configPath {
		t.Errorf("Path() = %v, want %v", cfg.Path(), configPath)
	}
	if got := cfg.ResolvePath(cfg.Format.PatternsFile); got != filepath.Join(tmpDir, "patterns.yaml") {
		t.Errorf("ResolvePath() = %v", got)
	}

	patterns, err := cfg.Patterns()
	if err != nil {
		t.Fatalf("Patterns() error = %v", err)
	}
	if got, ok := patterns.Lookup("GERMAN"); !ok || got != "dd.MM.yyyy" {
		t.Errorf("Patterns().Lookup(GERMAN) = %q, %v", got, ok)
	}
	if _, ok := patterns.Lookup(timex.PatternDate); !ok {
		t.Error("built-in DATE missing from merged patterns")
	}
}

func TestLoad_YAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "gregor.yml")

	configContent := `
general:
  log_format: json
format:
  locale: en-US
  patterns:
    us-date: MM/dd/yyyy
catalog:
  debounce: 50ms
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.LogFormat != "json" {
		t.Errorf("General.LogFormat = %v, want json", cfg.General.LogFormat)
	}
	if cfg.Catalog.Debounce.Duration != 50*time.Millisecond {
		t.Errorf("Catalog.Debounce = %v, want 50ms", cfg.Catalog.Debounce.Duration)
	}
	tag, err := cfg.Locale()
	if err != nil || tag.String() != "en-US" {
		t.Errorf("Locale() = %v, %v", tag, err)
	}
	patterns, err := cfg.Patterns()
	if err != nil {
		t.Fatalf("Patterns() error = %v", err)
	}
	if _, ok := patterns.Lookup("US_DATE"); !ok {
		t.Error("inline YAML pattern missing")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		wantCode gerror.Code
	}{
		{"broken toml", "a.toml", "[general\nname=", gerror.CodeConfigError},
		{"unknown extension", "a.ini", "name=x", gerror.CodeConfigError},
		{"bad log level", "a.toml", "[general]\nlog_level = \"loud\"", gerror.CodeInvalidConfig},
		{"bad week start", "a.yaml", "display:\n  week_start: friday", gerror.CodeInvalidConfig},
		{"bad color", "a.yaml", "display:\n  color: purple", gerror.CodeInvalidConfig},
		{"bad locale", "a.toml", "[format]\nlocale = \"not a locale!\"", gerror.CodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if !gerror.HasCode(err, tt.wantCode) {
				t.Errorf("Load() error = %v, want code %v", err, tt.wantCode)
			}
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "custom.toml")
	if err := os.WriteFile(configPath, []byte("[general]\nname = \"from-env\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv(EnvConfigPath, configPath)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.General.Name != "from-env" {
		t.Errorf("General.Name = %v, want from-env", cfg.General.Name)
	}
}
