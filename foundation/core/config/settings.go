// File: settings.go
// Title: Typed TDL Settings
// Description: Typed view over Config for the tdl toolchain: logging,
//              parser limits, optional validation bounds, catalog watch
//              and SQLite index settings, with defaults and validation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package config

import (
	"fmt"
	"strings"
	"time"

	mdwerror "github.com/msto63/tdl/foundation/core/error"
)

// EnvPrefix is the prefix for environment overrides (TDL_LOG_LEVEL, ...)
const EnvPrefix = "TDL"

const (
	// DefaultMaxInputLength caps a single TDL source at 1 MiB
	DefaultMaxInputLength = 1 << 20

	// DefaultWatchExtension selects the files a catalog picks up
	DefaultWatchExtension = ".tdl"

	// DefaultDebounce delays reloads after bursts of file events
	DefaultDebounce = 100 * time.Millisecond

	// DefaultIndexPath is the SQLite index location
	DefaultIndexPath = "tdl-index.db"
)

// Settings is the typed configuration of the tdl toolchain
type Settings struct {
	Log        LogSettings        `toml:"log" yaml:"log" json:"log"`
	Parser     ParserSettings     `toml:"parser" yaml:"parser" json:"parser"`
	Validation ValidationSettings `toml:"validation" yaml:"validation" json:"validation"`
	Watch      WatchSettings      `toml:"watch" yaml:"watch" json:"watch"`
	Index      IndexSettings      `toml:"index" yaml:"index" json:"index"`

	// Source is the file the settings were loaded from, empty for defaults
	Source string `toml:"-" yaml:"-" json:"-"`
}

// LogSettings configures the logger
type LogSettings struct {
	Level  string `toml:"level" yaml:"level" json:"level"`
	Format string `toml:"format" yaml:"format" json:"format"`
}

// ParserSettings configures the parser
type ParserSettings struct {
	MaxInputLength int `toml:"max_input_length" yaml:"max_input_length" json:"max_input_length"`
}

// ValidationSettings holds optional upper bounds; 0 means unlimited
type ValidationSettings struct {
	MaxPriority int64 `toml:"max_priority" yaml:"max_priority" json:"max_priority"`
	MaxDeadline int64 `toml:"max_deadline" yaml:"max_deadline" json:"max_deadline"`
}

// WatchSettings configures the catalog file watcher
type WatchSettings struct {
	Extension string        `toml:"extension" yaml:"extension" json:"extension"`
	Debounce  time.Duration `toml:"debounce" yaml:"debounce" json:"debounce"`
}

// IndexSettings configures the SQLite task index
type IndexSettings struct {
	Path string `toml:"path" yaml:"path" json:"path"`
}

// DefaultSettings returns the built-in defaults
func DefaultSettings() Settings {
	return Settings{
		Log:    LogSettings{Level: "warn", Format: "console"},
		Parser: ParserSettings{MaxInputLength: DefaultMaxInputLength},
		Watch:  WatchSettings{Extension: DefaultWatchExtension, Debounce: DefaultDebounce},
		Index:  IndexSettings{Path: DefaultIndexPath},
	}
}

// FromConfig builds Settings from a Config, falling back to defaults for
// absent keys
func FromConfig(c *Config) Settings {
	d := DefaultSettings()
	return Settings{
		Log: LogSettings{
			Level:  c.GetString("log.level", d.Log.Level),
			Format: c.GetString("log.format", d.Log.Format),
		},
		Parser: ParserSettings{
			MaxInputLength: c.GetInt("parser.max_input_length", d.Parser.MaxInputLength),
		},
		Validation: ValidationSettings{
			MaxPriority: c.GetInt64("validation.max_priority"),
			MaxDeadline: c.GetInt64("validation.max_deadline"),
		},
		Watch: WatchSettings{
			Extension: c.GetString("watch.extension", d.Watch.Extension),
			Debounce:  c.GetDuration("watch.debounce", d.Watch.Debounce),
		},
		Index: IndexSettings{
			Path: c.GetString("index.path", d.Index.Path),
		},
		Source: c.FilePath(),
	}
}

// LoadSettings loads and validates Settings. An empty path yields the
// defaults with TDL_* environment overrides applied.
func LoadSettings(path string) (Settings, error) {
	var c *Config
	if strings.TrimSpace(path) == "" {
		c = Empty(EnvPrefix)
	} else {
		loaded, err := LoadWithOptions(path, LoadOptions{Format: FormatAuto, EnvPrefix: EnvPrefix})
		if err != nil {
			return Settings{}, err
		}
		c = loaded
	}

	s := FromConfig(c)
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

var validLogLevels = map[string]bool{
	"trace": true, "debug": true, "info": true, "warn": true, "warning": true,
	"error": true, "fatal": true, "audit": true,
}

var validLogFormats = map[string]bool{
	"json": true, "text": true, "console": true, "logfmt": true,
}

// Validate checks the settings for consistency
func (s Settings) Validate() error {
	invalid := func(key string, value interface{}, reason string) error {
		return mdwerror.New(fmt.Sprintf("invalid config value %s=%v: %s", key, value, reason)).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Settings.Validate").
			WithDetail("key", key).
			WithDetail("value", value)
	}

	if !validLogLevels[strings.ToLower(s.Log.Level)] {
		return invalid("log.level", s.Log.Level, "unknown level")
	}
	if !validLogFormats[strings.ToLower(s.Log.Format)] {
		return invalid("log.format", s.Log.Format, "unknown format")
	}
	if s.Parser.MaxInputLength <= 0 {
		return invalid("parser.max_input_length", s.Parser.MaxInputLength, "must be > 0")
	}
	if s.Validation.MaxPriority < 0 {
		return invalid("validation.max_priority", s.Validation.MaxPriority, "must be >= 0")
	}
	if s.Validation.MaxDeadline < 0 {
		return invalid("validation.max_deadline", s.Validation.MaxDeadline, "must be >= 0")
	}
	if !strings.HasPrefix(s.Watch.Extension, ".") {
		return invalid("watch.extension", s.Watch.Extension, "must start with '.'")
	}
	if s.Watch.Debounce < 0 {
		return invalid("watch.debounce", s.Watch.Debounce, "must not be negative")
	}
	if strings.TrimSpace(s.Index.Path) == "" {
		return invalid("index.path", s.Index.Path, "must not be empty")
	}
	return nil
}
