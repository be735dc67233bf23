// ============================================================================
// TDL - Task Definition Language Toolchain
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating component loggers
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	mdwconfig "github.com/msto63/tdl/foundation/core/config"
	mdwlog "github.com/msto63/tdl/foundation/core/log"
)

// Level is the severity used by WithLevel
type Level = mdwlog.Level

const (
	LevelDebug = mdwlog.LevelDebug
	LevelInfo  = mdwlog.LevelInfo
	LevelWarn  = mdwlog.LevelWarn
	LevelError = mdwlog.LevelError
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Component name (logger name in every entry)
	Component string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format: json, text, console or logfmt (default: console)
	Format string

	// Output writer (default: os.Stderr)
	Output io.Writer

	// Additional outputs (besides Output)
	AdditionalOutputs []io.Writer

	// EnableCaller adds function, file and line to each entry
	EnableCaller bool
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(component string) LoggerConfig {
	return LoggerConfig{
		Component: component,
		Level:     "warn",
		Format:    "console",
	}
}

// NewLogger creates a new Foundation logger
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	level := parseLevel(cfg.Level)

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	format, err := mdwlog.ParseFormat(cfg.Format)
	if err != nil || cfg.Format == "" {
		format = mdwlog.FormatConsole
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:        level,
		Format:       format,
		Output:       output,
		Name:         cfg.Component,
		EnableCaller: cfg.EnableCaller,
	})
}

// FromSettings creates the logger described by the [log] section of the
// tool settings
func FromSettings(component string, settings *mdwconfig.Settings, output io.Writer) *mdwlog.Logger {
	cfg := DefaultLoggerConfig(component)
	cfg.Output = output
	if settings != nil {
		cfg.Level = settings.Log.Level
		cfg.Format = settings.Log.Format
	}
	return NewLogger(cfg)
}

// NewSimpleLogger creates a component logger with default configuration
func NewSimpleLogger(component string) *mdwlog.Logger {
	return NewLogger(DefaultLoggerConfig(component))
}

// parseLevel converts a string level to mdwlog.Level
func parseLevel(level string) mdwlog.Level {
	switch level {
	case "trace":
		return mdwlog.LevelTrace
	case "debug":
		return mdwlog.LevelDebug
	case "info":
		return mdwlog.LevelInfo
	case "warn", "warning":
		return mdwlog.LevelWarn
	case "error":
		return mdwlog.LevelError
	case "fatal":
		return mdwlog.LevelFatal
	default:
		return mdwlog.LevelWarn
	}
}

// Key/value layer for application packages

// Logger wraps the Foundation logger with key/value logging methods
type Logger struct {
	*mdwlog.Logger
	name string
}

// New creates a component logger with default configuration
func New(name string) *Logger {
	return &Logger{
		Logger: NewSimpleLogger(name),
		name:   name,
	}
}

// Wrap adapts an existing Foundation logger
func Wrap(logger *mdwlog.Logger) *Logger {
	if logger == nil {
		logger = mdwlog.GetDefault()
	}
	return &Logger{
		Logger: logger,
		name:   logger.Name(),
	}
}

// WithLevel returns a new logger with the specified level
func (l *Logger) WithLevel(level Level) *Logger {
	return &Logger{
		Logger: l.Logger.WithLevel(level),
		name:   l.name,
	}
}

// Debug logs a debug message with key-value pairs
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.Logger.Debug(msg, toFields(keysAndValues...))
}

// Info logs an info message with key-value pairs
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.Logger.Info(msg, toFields(keysAndValues...))
}

// Warn logs a warning message with key-value pairs
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.Logger.Warn(msg, toFields(keysAndValues...))
}

// Error logs an error message with key-value pairs
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.Logger.Error(msg, toFields(keysAndValues...))
}

// toFields converts key-value pairs to mdwlog.Fields
func toFields(keysAndValues ...interface{}) mdwlog.Fields {
	if len(keysAndValues) == 0 {
		return nil
	}

	fields := make(mdwlog.Fields)
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}
