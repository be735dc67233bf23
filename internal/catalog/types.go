// ============================================================================
// TDL - Task Definition Language Toolchain
// ============================================================================
//
// Package:     catalog
// Description: Catalog entry types
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package catalog

import (
	"errors"
	"time"

	"github.com/msto63/tdl/foundation/tdl/ast"
)

var (
	// ErrEntryNotFound is returned for paths that are not in the catalog
	ErrEntryNotFound = errors.New("catalog entry not found")

	// ErrNotDirectory is returned when the catalog root is not a directory
	ErrNotDirectory = errors.New("catalog root is not a directory")
)

// Entry is the result of compiling one TDL file
type Entry struct {
	ID       string       // Unique per load, changes on every reload
	Path     string       // Absolute path of the source file
	RunID    string       // Compile run id, matches the compiler log output
	Source   string       // File content at load time
	Program  *ast.Program // Validated program, nil when Err is set
	Err      error        // Compile failure
	LoadedAt time.Time
}

// Valid reports whether the file compiled without errors
func (e *Entry) Valid() bool {
	return e != nil && e.Err == nil && e.Program != nil
}

// TaskCount returns the number of tasks of a valid entry
func (e *Entry) TaskCount() int {
	if !e.Valid() {
		return 0
	}
	return len(e.Program.Tasks)
}

// Stats summarizes the catalog contents
type Stats struct {
	Files   int
	Valid   int
	Invalid int
	Tasks   int
}
