// File: level.go
// Title: Log Level Definitions
// Description: Defines log levels and their parsing and filtering rules.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial level definitions
// - 2026-10-19 v0.2.0: Level names table driven, ANSI colors moved to the
//                      console formatter

package log

import (
	"strings"
)

// Level represents the importance level of a log message
type Level int

const (
	// LevelTrace is the most verbose level, e.g. individual tokens
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal

	// LevelAudit is always logged regardless of the minimum level
	LevelAudit
)

// levelNames holds the long and short name per level, indexed by Level
var levelNames = [...]struct{ long, short string }{
	LevelTrace: {"trace", "TRC"},
	LevelDebug: {"debug", "DBG"},
	LevelInfo:  {"info", "INF"},
	LevelWarn:  {"warn", "WRN"},
	LevelError: {"error", "ERR"},
	LevelFatal: {"fatal", "FTL"},
	LevelAudit: {"audit", "AUD"},
}

// levelAliases maps accepted spellings that are neither long nor short names
var levelAliases = map[string]Level{
	"information": LevelInfo,
	"warning":     LevelWarn,
}

func (l Level) valid() bool {
	return l >= LevelTrace && int(l) < len(levelNames)
}

// String returns the lowercase name used in config files and JSON output
func (l Level) String() string {
	if !l.valid() {
		return "unknown"
	}
	return levelNames[l].long
}

// ShortString returns the three letter badge used by text formatters
func (l Level) ShortString() string {
	if !l.valid() {
		return "???"
	}
	return levelNames[l].short
}

// ShouldLog reports whether l passes the minimum level. Audit always does.
func (l Level) ShouldLog(minLevel Level) bool {
	return l == LevelAudit || l >= minLevel
}

// ParseLevel accepts long names, short badges and a few aliases, ignoring
// case. Unknown input yields LevelInfo and a *ParseError.
func ParseLevel(level string) (Level, error) {
	s := strings.ToLower(strings.TrimSpace(level))
	if l, ok := levelAliases[s]; ok {
		return l, nil
	}
	for i, names := range levelNames {
		if s == names.long || s == strings.ToLower(names.short) {
			return Level(i), nil
		}
	}
	return LevelInfo, &ParseError{Input: level, Type: "level"}
}

// ParseError reports an unparsable level or format value
type ParseError struct {
	Input string
	Type  string
}

func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// DefaultLevel is the level of a logger created with New
func DefaultLevel() Level {
	return LevelInfo
}
