// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and chain lookup.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2025-10-19 v0.2.0: Cases for calendar codes and chain-aware lookup

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original error"),
			message:  "wrapper message",
			wantMsg:  "wrapper message: original error",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap calendar error",
			err:      New("start after end").WithCode(CodeOrderingViolation),
			message:  "building interval",
			wantMsg:  "building interval: start after end",
			wantCode: CodeOrderingViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.message)

			if tt.wantNil {
				if wrapped != nil {
					t.Errorf("Wrap() = %v, want nil", wrapped)
				}
				return
			}

			if wrapped.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", wrapped.Error(), tt.wantMsg)
			}

			if wrapped.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", wrapped.Code(), tt.wantCode)
			}

			if !errors.Is(wrapped, tt.err) {
				t.Error("errors.Is(wrapped, original) = false, want true")
			}
		})
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeOrderingViolation, SeverityLow},
		{CodeUnsupportedField, SeverityLow},
		{CodeInvalidInput, SeverityLow},
		{CodeConfigError, SeverityHigh},
		{CodeInternal, SeverityCritical},
		{CodeUnknown, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}

	explicit := New("x").WithSeverity(SeverityCritical).WithCode(CodeInvalidInput)
	if explicit.Severity() != SeverityCritical {
		t.Errorf("explicit severity overwritten: got %v", explicit.Severity())
	}
}

func TestHasCodeWalksChain(t *testing.T) {
	inner := New("bad field").WithCode(CodeUnsupportedField)
	outer := fmt.Errorf("rendering: %w", inner)

	if !HasCode(outer, CodeUnsupportedField) {
		t.Error("HasCode() = false through fmt wrapping, want true")
	}
	if HasCode(outer, CodeOrderingViolation) {
		t.Error("HasCode() matched the wrong code")
	}
	if HasCode(nil, CodeUnknown) {
		t.Error("HasCode(nil) = true")
	}
	if GetCode(outer) != CodeUnsupportedField {
		t.Errorf("GetCode() = %v, want %v", GetCode(outer), CodeUnsupportedField)
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode() of foreign error should be CodeUnknown")
	}
}

func TestIsMatchesByCode(t *testing.T) {
	err := New("start 10 is after end 5").WithCode(CodeOrderingViolation)
	target := &Error{code: CodeOrderingViolation}

	if !errors.Is(err, target) {
		t.Error("errors.Is() by code = false, want true")
	}
	if errors.Is(err, &Error{code: CodeInvalidInput}) {
		t.Error("errors.Is() matched different code")
	}
}

func TestDetailsAndString(t *testing.T) {
	err := New("day out of range").
		WithCode(CodeInvalidInput).
		WithOperation("timex.SetDay").
		WithDetail("day", 31).
		WithDetail("month", "February")

	details := err.Details()
	details["day"] = 1
	if err.Details()["day"] != 31 {
		t.Error("Details() returned the internal map")
	}

	s := err.String()
	for _, want := range []string{"Code: INVALID_INPUT", "Operation: timex.SetDay", "day=31", "month=February"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in %q", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("eof"), "reading catalog").WithCode(CodeConfigError).WithOperation("catalog.Load")

	raw, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("Marshal() error = %v", jerr)
	}

	var got map[string]interface{}
	if jerr := json.Unmarshal(raw, &got); jerr != nil {
		t.Fatalf("Unmarshal() error = %v", jerr)
	}

	if got["code"] != "CONFIG_ERROR" || got["operation"] != "catalog.Load" || got["cause"] != "eof" {
		t.Errorf("unexpected JSON: %s", raw)
	}
}

func TestCodeCategoryAndExit(t *testing.T) {
	if CodeOrderingViolation.Category() != "interval" {
		t.Errorf("Category() = %q", CodeOrderingViolation.Category())
	}
	if CodeUnsupportedField.ExitCode() != 2 || CodeConfigError.ExitCode() != 3 || CodeUnknown.ExitCode() != 1 {
		t.Error("ExitCode() mapping changed")
	}
	if Code("NOPE").IsValid() {
		t.Error("IsValid() accepted unknown code")
	}
}
