// File: logger_test.go
// Title: Core Logger Tests
// Description: Tests for level filtering, formatters, context fields,
//              timers and structured error logging.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test suite
// - 2026-10-19 v0.2.0: Buffer based assertions for all formats

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	mdwerror "github.com/msto63/tdl/foundation/core/error"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewWithConfig(Config{Level: level, Format: format, Output: buf}), buf
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("json.Unmarshal(%q) error = %v", buf.String(), err)
	}
	return data
}

func TestLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		name    string
		min     Level
		logFn   func(l *Logger)
		wantOut bool
	}{
		{"debug below info", LevelInfo, func(l *Logger) { l.Debug("d") }, false},
		{"info at info", LevelInfo, func(l *Logger) { l.Info("i") }, true},
		{"warn above info", LevelInfo, func(l *Logger) { l.Warn("w") }, true},
		{"error below fatal", LevelFatal, func(l *Logger) { l.Error("e") }, false},
		{"audit always", LevelFatal, func(l *Logger) { l.Audit("a") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(tt.min, FormatJSON)
			tt.logFn(logger)
			if got := buf.Len() > 0; got != tt.wantOut {
				t.Errorf("output written = %v, want %v", got, tt.wantOut)
			}
		})
	}
}

func TestLogger_JSONFields(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)
	logger = logger.WithName("parser").WithRequestID("run-1").WithField("source", "a.tdl")

	logger.Info("parsed", Fields{"tasks": 2})

	data := decodeLine(t, buf)
	checks := map[string]interface{}{
		"level":      "info",
		"message":    "parsed",
		"logger":     "parser",
		"request_id": "run-1",
		"source":     "a.tdl",
		"tasks":      float64(2),
	}
	for k, want := range checks {
		if data[k] != want {
			t.Errorf("%s = %v, want %v", k, data[k], want)
		}
	}
}

func TestLogger_WithIsImmutable(t *testing.T) {
	base, buf := newBufferLogger(LevelInfo, FormatJSON)
	_ = base.WithField("extra", true)

	base.Info("plain")

	data := decodeLine(t, buf)
	if _, ok := data["extra"]; ok {
		t.Error("WithField() modified the receiver")
	}
}

func TestLogger_TextFormat(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatText)
	logger.WithFormatter(&TextFormatter{DisableTimestamp: true}).Info("hello", Fields{"b": 2, "a": 1})

	got := strings.TrimSpace(buf.String())
	want := "[" + LevelInfo.ShortString() + "] hello [a=1 b=2]"
	if got != want {
		t.Errorf("text line = %q, want %q", got, want)
	}
}

func TestLogger_LogfmtFormat(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatLogfmt)
	logger.Warn("slow", Fields{"task": "t1"})

	out := buf.String()
	for _, part := range []string{"level=warn", `message="slow"`, `task="t1"`} {
		if !strings.Contains(out, part) {
			t.Errorf("logfmt output %q missing %q", out, part)
		}
	}
}

func TestLogger_ConsoleWithoutColors(t *testing.T) {
	f := NewConsoleFormatter()
	f.DisableColors = true
	f.DisableTimestamp = true

	out, err := f.Format(NewEntry(LevelError, "boom"))
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if got := strings.TrimSpace(string(out)); got != LevelError.ShortString()+" boom" {
		t.Errorf("console line = %q", got)
	}
}

func TestLogger_LogError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
		wantCode  interface{}
	}{
		{
			name:      "plain error",
			err:       errors.New("disk full"),
			wantLevel: "error",
		},
		{
			name:      "syntax error logs at info",
			err:       mdwerror.New("expected '{'").WithCode(mdwerror.CodeTDLSyntax),
			wantLevel: "info",
			wantCode:  "TDL_SYNTAX",
		},
		{
			name:      "config error logs at warn",
			err:       mdwerror.New("bad file").WithCode(mdwerror.CodeConfigError),
			wantLevel: "warn",
			wantCode:  "CONFIG_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(LevelTrace, FormatJSON)
			logger.LogError(tt.err)

			data := decodeLine(t, buf)
			if data["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", data["level"], tt.wantLevel)
			}
			if tt.wantCode != nil && data["error_code"] != tt.wantCode {
				t.Errorf("error_code = %v, want %v", data["error_code"], tt.wantCode)
			}
		})
	}

	logger, buf := newBufferLogger(LevelTrace, FormatJSON)
	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Error("LogError(nil) should not write")
	}
}

func TestTimer_Stop(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)

	timer := logger.StartTimer("parse").WithField("source", "x.tdl")
	timer.Stop()

	data := decodeLine(t, buf)
	if data["message"] != "parse completed" {
		t.Errorf("message = %v, want %q", data["message"], "parse completed")
	}
	if data["operation"] != "parse" {
		t.Errorf("operation = %v, want parse", data["operation"])
	}
	if data["source"] != "x.tdl" {
		t.Errorf("source = %v, want x.tdl", data["source"])
	}

	buf.Reset()
	timer.Stop()
	if buf.Len() != 0 {
		t.Error("second Stop() should not log")
	}
}

func TestTimer_WithFields(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)

	logger.StartTimer("compile").
		WithFields(Fields{"source": "a.tdl", "length": 12}).
		WithField("tasks", 2).
		Stop()

	data := decodeLine(t, buf)
	if data["source"] != "a.tdl" || data["length"] != float64(12) || data["tasks"] != float64(2) {
		t.Errorf("fields = %v, want source, length and tasks", data)
	}
}

func TestLogger_Trace(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)
	logger.Trace("token", Field("type", "IDENTIFIER"))
	if buf.Len() != 0 {
		t.Errorf("Trace() at debug level wrote %q", buf.String())
	}

	logger, buf = newBufferLogger(LevelTrace, FormatJSON)
	logger.Trace("token", Field("type", "IDENTIFIER"))

	data := decodeLine(t, buf)
	if data["level"] != "trace" || data["type"] != "IDENTIFIER" {
		t.Errorf("entry = %v, want trace level with type field", data)
	}
}

func TestTimer_StopWithError(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatJSON)

	logger.StartTimer("validate").StopWithError(errors.New("duplicate task"))

	data := decodeLine(t, buf)
	if data["level"] != "error" {
		t.Errorf("level = %v, want error", data["level"])
	}
	if data["error"] != "duplicate task" {
		t.Errorf("error = %v, want duplicate task", data["error"])
	}
}

func TestParseLevelAndFormat(t *testing.T) {
	if lvl, err := ParseLevel("warning"); err != nil || lvl != LevelWarn {
		t.Errorf("ParseLevel(warning) = %v, %v", lvl, err)
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("ParseLevel(loud) should fail")
	}
	if f, err := ParseFormat("Console"); err != nil || f != FormatConsole {
		t.Errorf("ParseFormat(Console) = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}
