// File: logger_test.go
// Title: Logger Tests
// Description: Tests for logger configuration, context handling, level
//              filtering and both output formats.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive logger tests
// - 2025-10-19 v0.2.0: Adjusted to the reduced logger surface

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	gerror "github.com/msto63/gregor/foundation/core/error"
)

func TestNew(t *testing.T) {
	logger := New()

	if logger.GetLevel() != DefaultLevel() {
		t.Errorf("New() level = %v, want %v", logger.GetLevel(), DefaultLevel())
	}

	if logger.contextFields == nil {
		t.Error("New() should initialize context fields")
	}
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  LevelDebug,
		Format: FormatJSON,
		Output: &buf,
		Name:   "gregor",
	}).WithCorrelationID("cid-1").WithField("command", "convert")

	logger.Info("converted instant", Field("millis", 1704067200000))

	var got map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}

	checks := map[string]interface{}{
		"level":          "info",
		"message":        "converted instant",
		"logger":         "gregor",
		"correlation_id": "cid-1",
		"command":        "convert",
		"millis":         float64(1704067200000),
	}
	for k, want := range checks {
		if got[k] != want {
			t.Errorf("field %s = %v, want %v", k, got[k], want)
		}
	}
}

func TestTextOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelInfo, Format: FormatText, Output: &buf, Name: "cli"})
	logger.formatter = &TextFormatter{DisableTimestamp: true}

	logger.Warn("pattern reloaded", Fields{"b": 2, "a": 1})

	want := "[WRN] {cli} pattern reloaded a=1 b=2\n"
	if buf.String() != want {
		t.Errorf("text output = %q, want %q", buf.String(), want)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelWarn, Format: FormatText, Output: &buf})

	logger.Debug("hidden")
	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("messages below level were written: %q", buf.String())
	}

	logger.Error("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("error message missing: %q", buf.String())
	}
}

func TestWithDoesNotMutateReceiver(t *testing.T) {
	base := New()
	derived := base.WithField("k", "v").WithLevel(LevelError).WithName("x")

	if len(base.contextFields) != 0 {
		t.Error("WithField() mutated the receiver")
	}
	if base.GetLevel() == LevelError || base.name == "x" {
		t.Error("WithLevel()/WithName() mutated the receiver")
	}
	if derived.contextFields["k"] != "v" {
		t.Error("derived logger lost its field")
	}
}

func TestLogErrorUsesSeverity(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelTrace, Format: FormatJSON, Output: &buf})

	logger.LogError(gerror.New("start after end").WithCode(gerror.CodeOrderingViolation))

	var got map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if got["level"] != "info" {
		t.Errorf("low severity logged at %v, want info", got["level"])
	}
	if got["error_code"] != "ORDERING_VIOLATION" {
		t.Errorf("error_code = %v", got["error_code"])
	}

	buf.Reset()
	logger.LogError(errors.New("plain"))
	if !strings.Contains(buf.String(), `"level":"warn"`) {
		t.Errorf("foreign error should log as warn: %q", buf.String())
	}

	buf.Reset()
	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Error("LogError(nil) wrote output")
	}
}

func TestParseLevelAndFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{" WARNING ", LevelWarn, false},
		{"err", LevelError, false},
		{"verbose", LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	if f, err := ParseFormat("TEXT"); err != nil || f != FormatText {
		t.Errorf("ParseFormat(TEXT) = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	if logger.IsLevelEnabled(LevelFatal) {
		t.Error("Discard() logger should not enable any level")
	}
	logger.Error("ignored")
}
