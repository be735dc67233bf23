// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads tdl configuration from TOML or YAML
//              files with TDL_* environment overrides.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-19 v0.2.0: Typed Settings for the tdl toolchain

/*
Package config provides configuration loading for the tdl toolchain.

A Config is a dot-addressable view over a TOML or YAML document. The format
is detected from the file extension. When an environment prefix is set, a
variable such as TDL_PARSER_MAX_INPUT_LENGTH overrides parser.max_input_length.

Settings is the typed form used by the command line tool:

	settings, err := mdwconfig.LoadSettings("tdl.toml")
	if err != nil {
		return err
	}
	p, err := parser.New(parser.Options{MaxInputLength: settings.Parser.MaxInputLength})

A file may contain any subset of the sections:

	[log]
	level = "debug"
	format = "console"

	[parser]
	max_input_length = 65536

	[validation]
	max_priority = 10
	max_deadline = 10000

	[watch]
	extension = ".tdl"
	debounce = "250ms"

	[index]
	path = "tasks.db"

Invalid values are reported as errors with code INVALID_CONFIG.
*/
package config
