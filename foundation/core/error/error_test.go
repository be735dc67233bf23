// File: error_test.go
// Title: Core Error Tests
// Description: Tests for the structured error type, codes and severities.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test suite
// - 2026-10-19 v0.2.0: Tests for TDL codes and errors.As helpers

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

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
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
			name:     "wrap structured error keeps code",
			err:      New("unexpected token").WithCode(CodeTDLSyntax),
			message:  "compile failed",
			wantMsg:  "compile failed: unexpected token",
			wantCode: CodeTDLSyntax,
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
				t.Error("errors.Is should find the wrapped cause")
			}
		})
	}
}

func TestWrap_InheritsDetails(t *testing.T) {
	inner := New("duplicate task").WithCode(CodeTDLSemantic).WithDetail("task", "t")
	outer := Wrap(inner, "check failed")

	if v, ok := outer.Detail("task"); !ok || v != "t" {
		t.Errorf("Detail(task) = %v, %v, want t, true", v, ok)
	}
	if outer.RootCause() != inner {
		t.Errorf("RootCause() = %v, want inner error", outer.RootCause())
	}
}

func TestWithCode_Severity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeTDLSyntax, SeverityLow},
		{CodeTDLSemantic, SeverityLow},
		{CodeDatabaseError, SeverityHigh},
		{CodeInternal, SeverityCritical},
		{CodeConfigError, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}

	explicit := New("x").WithSeverity(SeverityCritical).WithCode(CodeTDLSyntax)
	if explicit.Severity() != SeverityCritical {
		t.Errorf("explicit severity overwritten: got %v", explicit.Severity())
	}
}

func TestHasCode_ThroughFmtWrap(t *testing.T) {
	base := New("bad literal").WithCode(CodeTDLSyntax)
	err := fmt.Errorf("file a.tdl: %w", base)

	if !HasCode(err, CodeTDLSyntax) {
		t.Error("HasCode() should see through fmt.Errorf wrapping")
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode() of a plain error should be CodeUnknown")
	}
	if GetSeverity(err) != SeverityLow {
		t.Errorf("GetSeverity() = %v, want low", GetSeverity(err))
	}
}

func TestCode_Category(t *testing.T) {
	tests := []struct {
		code     Code
		category string
		exit     int
	}{
		{CodeTDLSyntax, "tdl", 1},
		{CodeValueOutOfRange, "validation", 1},
		{CodeInvalidConfig, "configuration", 2},
		{CodeNotFound, "generic", 2},
		{CodeDatabaseError, "storage", 3},
		{CodeInternal, "generic", 3},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.category {
				t.Errorf("Category() = %v, want %v", got, tt.category)
			}
			if got := tt.code.ExitCode(); got != tt.exit {
				t.Errorf("ExitCode() = %v, want %v", got, tt.exit)
			}
			if !tt.code.IsValid() {
				t.Error("IsValid() should be true")
			}
		})
	}

	if Code("NOPE").IsValid() {
		t.Error("unknown code reported as valid")
	}
}

func TestMarshalJSON(t *testing.T) {
	err := New("missing property").
		WithCode(CodeTDLSemantic).
		WithOperation("validator.Validate").
		WithDetail("task", "controlLoop")

	data, marshalErr := json.Marshal(err)
	if marshalErr != nil {
		t.Fatalf("json.Marshal() error = %v", marshalErr)
	}

	var decoded map[string]interface{}
	if e := json.Unmarshal(data, &decoded); e != nil {
		t.Fatalf("json.Unmarshal() error = %v", e)
	}
	if decoded["code"] != "TDL_SEMANTIC" {
		t.Errorf("code = %v, want TDL_SEMANTIC", decoded["code"])
	}
	if decoded["operation"] != "validator.Validate" {
		t.Errorf("operation = %v, want validator.Validate", decoded["operation"])
	}
	details, _ := decoded["details"].(map[string]interface{})
	if details["task"] != "controlLoop" {
		t.Errorf("details.task = %v, want controlLoop", details["task"])
	}
}

func TestString(t *testing.T) {
	err := New("boom").WithCode(CodeInternal).WithDetail("b", 2).WithDetail("a", 1)
	s := err.String()

	if !strings.Contains(s, "Code: INTERNAL") {
		t.Errorf("String() missing code: %s", s)
	}
	if !strings.Contains(s, "Details: {a=1, b=2}") {
		t.Errorf("String() details not sorted: %s", s)
	}
}
