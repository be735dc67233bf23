// ============================================================================
// TDL - Task Definition Language Toolchain
// ============================================================================
//
// Package:     version
// Description: Central version management for the toolchain
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for the toolchain
const (
	// Toolchain version
	Tool = "0.1.0"

	// Language is the version of the TDL grammar the parser accepts
	Language = "1.0"

	// Component versions
	Parser    = "0.1.0"
	Validator = "0.1.0"
	Catalog   = "0.1.0"
	Index     = "0.1.0"
)

// Build metadata, set with -ldflags "-X github.com/msto63/tdl/pkg/core/version.Commit=..."
var (
	Commit    = "dev"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "parser":
		return Parser
	case "validator":
		return Validator
	case "catalog":
		return Catalog
	case "index":
		return Index
	default:
		return Tool
	}
}

// String returns a one-line version banner
func String() string {
	return fmt.Sprintf("tdl %s (language %s, commit %s, built %s, %s/%s)",
		Tool, Language, Commit, BuildDate, runtime.GOOS, runtime.GOARCH)
}
