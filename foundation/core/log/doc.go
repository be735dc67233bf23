// Package log provides structured logging for the TDL toolchain.
//
// Package: log
// Title: TDL Structured Logging Framework
// Description: Implements a structured logger with levels, persistent
//              context fields, pluggable formatters (JSON, text, console,
//              logfmt) and operation timers. Errors from the core error
//              package are logged with their code and severity.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-19 v0.2.0: lipgloss console formatter, stderr default output, async mode removed
//
// Usage:
//
//	import mdwlog "github.com/msto63/tdl/foundation/core/log"
//
//	logger := mdwlog.New().
//		WithLevel(mdwlog.LevelDebug).
//		WithField("component", "tdl-parser")
//
//	logger.Info("Program parsed", mdwlog.Fields{"tasks": 3})
//
//	timer := logger.StartTimer("compile")
//	// ... parse and validate
//	timer.Stop()
package log
