package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"

	mdwlog "github.com/msto63/gregor/foundation/core/log"
	"github.com/msto63/gregor/pkg/core/config"
)

func TestDefaultLoggerConfig(t *testing.T) {
	cfg := DefaultLoggerConfig("gregor")

	if cfg.ServiceName != "gregor" {
		t.Errorf("ServiceName = %v, want gregor", cfg.ServiceName)
	}
	if cfg.Level != "info" {
		t.Errorf("Level = %v, want info", cfg.Level)
	}
	if cfg.Format != "json" {
		t.Errorf("Format = %v, want json", cfg.Format)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected mdwlog.Level
	}{
		{"trace", mdwlog.LevelTrace},
		{"debug", mdwlog.LevelDebug},
		{"info", mdwlog.LevelInfo},
		{"warn", mdwlog.LevelWarn},
		{"warning", mdwlog.LevelWarn},
		{"error", mdwlog.LevelError},
		{"unknown", mdwlog.LevelInfo},
		{"", mdwlog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{
		ServiceName:   "gregor",
		Level:         "debug",
		Format:        "text",
		Output:        &buf,
		CorrelationID: "cid-42",
	})

	if logger.GetLevel() != mdwlog.LevelDebug {
		t.Errorf("GetLevel() = %v, want debug", logger.GetLevel())
	}

	logger.Debug("hello")
	out := buf.String()
	for _, want := range []string{"[DBG]", "{gregor}", "hello", "cid=cid-42"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestFromConfig(t *testing.T) {
	cfg := config.Default()
	lc := FromConfig(cfg)

	if lc.ServiceName != "gregor" || lc.Level != "warn" || lc.Format != "text" {
		t.Errorf("FromConfig() = %+v", lc)
	}
}

func TestNewCorrelationID(t *testing.T) {
	a, b := NewCorrelationID(), NewCorrelationID()
	if a == b {
		t.Error("NewCorrelationID() returned the same id twice")
	}
	if _, err := uuid.Parse(a); err != nil {
		t.Errorf("NewCorrelationID() = %q is not a UUID: %v", a, err)
	}
}
