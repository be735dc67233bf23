// File: timer.go
// Title: Performance Timer
// Description: Measures the duration of an operation and logs it through
//              the owning logger when stopped.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with performance timing
// - 2026-10-19 v0.2.0: Duration carried on the entry, threshold helpers removed

package log

import (
	"time"
)

// Timer represents a performance timer for measuring operation duration
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	level     Level
	stopped   bool
}

// NewTimer creates a new timer for the given operation
func NewTimer(logger *Logger, operation string) *Timer {
	if logger == nil {
		logger = GetDefault()
	}
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
		level:     LevelDebug,
	}
}

// WithLevel sets the log level for the timer completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to be logged when the timer completes
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// WithFields adds multiple fields to be logged when the timer completes
func (t *Timer) WithFields(fields Fields) *Timer {
	for k, v := range fields {
		t.fields[k] = v
	}
	return t
}

// Elapsed returns the time since the timer was started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop logs the completion message and returns the measured duration.
// Only the first call logs.
func (t *Timer) Stop() time.Duration {
	return t.stop(nil)
}

// StopWithError logs a failed completion at error level
func (t *Timer) StopWithError(err error) time.Duration {
	return t.stop(err)
}

func (t *Timer) stop(err error) time.Duration {
	duration := t.Elapsed()
	if t.stopped {
		return duration
	}
	t.stopped = true

	fields := t.fields.Clone()
	fields["operation"] = t.operation

	if err != nil {
		t.logger.log(LevelError, t.operation+" failed", err, duration, fields)
		return duration
	}
	t.logger.log(t.level, t.operation+" completed", nil, duration, fields)
	return duration
}
