package logging

import (
	"bytes"
	"io"
	"strings"
	"testing"

	mdwconfig "github.com/msto63/tdl/foundation/core/config"
	mdwlog "github.com/msto63/tdl/foundation/core/log"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
		{Level(99), "unknown"},
		{mdwlog.LevelTrace, "trace"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.level.String(); got != tt.expected {
				t.Errorf("Level.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNew(t *testing.T) {
	logger := New("catalog")

	if logger == nil {
		t.Fatal("New() returned nil")
	}
	if logger.name != "catalog" {
		t.Errorf("name = %v, want catalog", logger.name)
	}
}

func TestLogger_WithLevel(t *testing.T) {
	logger := New("test")
	result := logger.WithLevel(LevelDebug)

	if result.name != "test" {
		t.Errorf("name should be preserved: got %v", result.name)
	}
	if result.GetLevel() != mdwlog.LevelDebug {
		t.Errorf("GetLevel() = %v, want debug", result.GetLevel())
	}
}

func TestLogger_KeyValues(t *testing.T) {
	var buf bytes.Buffer
	logger := Wrap(NewLogger(LoggerConfig{
		Component: "catalog",
		Level:     "debug",
		Format:    "logfmt",
		Output:    &buf,
	}))

	logger.Info("file loaded", "path", "a.tdl", "tasks", 3, "orphan")

	out := buf.String()
	for _, want := range []string{`message="file loaded"`, `path="a.tdl"`, "tasks=3", "logger=catalog"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %s", want, out)
		}
	}
	if strings.Contains(out, "orphan") {
		t.Errorf("orphan key should be dropped: %s", out)
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
		{"invalid", mdwlog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDefaultLoggerConfig(t *testing.T) {
	cfg := DefaultLoggerConfig("tdl")

	if cfg.Component != "tdl" {
		t.Errorf("Component = %v, want tdl", cfg.Component)
	}
	if cfg.Level != "warn" {
		t.Errorf("Level = %v, want warn", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("Format = %v, want console", cfg.Format)
	}
}

func TestNewLogger_AdditionalOutputs(t *testing.T) {
	var primary, extra bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Component:         "tdl",
		Level:             "info",
		Format:            "json",
		Output:            &primary,
		AdditionalOutputs: []io.Writer{&extra},
	})

	logger.Info("hello")

	if !strings.Contains(primary.String(), "hello") || !strings.Contains(extra.String(), "hello") {
		t.Errorf("outputs = %q, %q, want both to contain the entry", primary.String(), extra.String())
	}
}

func TestFromSettings(t *testing.T) {
	settings := mdwconfig.DefaultSettings()
	settings.Log.Level = "debug"
	settings.Log.Format = "logfmt"

	var buf bytes.Buffer
	logger := FromSettings("tdl", &settings, &buf)

	if logger.GetLevel() != mdwlog.LevelDebug {
		t.Errorf("GetLevel() = %v, want debug", logger.GetLevel())
	}
	logger.Debug("visible")
	if !strings.Contains(buf.String(), `message="visible"`) {
		t.Errorf("output = %q, want logfmt debug entry", buf.String())
	}

	if got := FromSettings("tdl", nil, &buf).GetLevel(); got != mdwlog.LevelWarn {
		t.Errorf("FromSettings(nil) level = %v, want warn", got)
	}
}

func TestToFields(t *testing.T) {
	if fields := toFields(); fields != nil {
		t.Error("toFields() with no args should return nil")
	}

	fields := toFields("key1", "value1", "key2", 42)
	if fields["key1"] != "value1" {
		t.Errorf("fields[key1] = %v, want value1", fields["key1"])
	}
	if fields["key2"] != 42 {
		t.Errorf("fields[key2] = %v, want 42", fields["key2"])
	}

	fields = toFields(123, "value")
	if len(fields) != 0 {
		t.Errorf("Non-string key should be skipped, got %v fields", len(fields))
	}
}

func BenchmarkLogger_Info(b *testing.B) {
	logger := Wrap(mdwlog.Discard())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("benchmark message", "iteration", i)
	}
}
