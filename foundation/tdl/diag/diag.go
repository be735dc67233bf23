// File: diag.go
// Title: TDL Diagnostics
// Description: Error types raised by the TDL parser and validator. Both
//              carry the source position and convert to the structured
//              platform error with TDL codes and details.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial syntax and semantic error types

package diag

import (
	"errors"
	"fmt"

	mdwerror "github.com/msto63/tdl/foundation/core/error"
)

// SyntaxError reports a token that does not match the active grammar rule.
// Unrecognized characters surface here as well, with Unknown set.
type SyntaxError struct {
	Expected string // Description of what the rule required
	Found    string // Description of the offending token
	Lexeme   string // Literal text of the offending token
	Unknown  bool   // Offending token is an unrecognized character
	Line     int
	Column   int
	Offset   int
	Message  string
}

// Error implements the error interface
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

// ToError converts the error into a platform error with code TDL_SYNTAX
func (e *SyntaxError) ToError() *mdwerror.Error {
	err := mdwerror.Wrap(e, "syntax error").
		WithCode(mdwerror.CodeTDLSyntax).
		WithDetail("line", e.Line).
		WithDetail("column", e.Column).
		WithDetail("lexeme", e.Lexeme)
	if e.Expected != "" {
		err = err.WithDetail("expected", e.Expected)
	}
	if e.Unknown {
		err = err.WithDetail("lexical", true)
	}
	return err
}

// SemanticKind classifies a semantic error
type SemanticKind int

const (
	// DuplicateTask is a task name declared twice in one program
	DuplicateTask SemanticKind = iota + 1

	// DuplicateProperty is a property key written twice in one task
	DuplicateProperty

	// MissingProperty is a required property absent from a task
	MissingProperty

	// OutOfRange is a property value violating its bound
	OutOfRange
)

// String returns the snake_case name used in error details
func (k SemanticKind) String() string {
	switch k {
	case DuplicateTask:
		return "duplicate_task"
	case DuplicateProperty:
		return "duplicate_property"
	case MissingProperty:
		return "missing_property"
	case OutOfRange:
		return "out_of_range"
	default:
		return "unknown"
	}
}

// SemanticError reports a violation of a program-wide invariant
type SemanticError struct {
	Kind     SemanticKind
	Task     string // Task name
	Property string // Property key, empty for DuplicateTask
	Line     int
	Column   int
	Offset   int
	Message  string
}

// Error implements the error interface
func (e *SemanticError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

// ToError converts the error into a platform error with code TDL_SEMANTIC
func (e *SemanticError) ToError() *mdwerror.Error {
	err := mdwerror.Wrap(e, "semantic error").
		WithCode(mdwerror.CodeTDLSemantic).
		WithDetail("kind", e.Kind.String()).
		WithDetail("line", e.Line).
		WithDetail("column", e.Column).
		WithDetail("task", e.Task)
	if e.Property != "" {
		err = err.WithDetail("property", e.Property)
	}
	return err
}

// Convert returns the platform form of a syntax or semantic error found in
// err's chain. Other errors are returned unchanged.
func Convert(err error) error {
	var syntaxErr *SyntaxError
	if errors.As(err, &syntaxErr) {
		return syntaxErr.ToError()
	}
	var semanticErr *SemanticError
	if errors.As(err, &semanticErr) {
		return semanticErr.ToError()
	}
	return err
}

// PositionOf extracts the source position of a syntax or semantic error
func PositionOf(err error) (line, column int, ok bool) {
	var syntaxErr *SyntaxError
	if errors.As(err, &syntaxErr) {
		return syntaxErr.Line, syntaxErr.Column, true
	}
	var semanticErr *SemanticError
	if errors.As(err, &semanticErr) {
		return semanticErr.Line, semanticErr.Column, true
	}
	return 0, 0, false
}

// KindOf returns "syntax", the semantic kind name, or "" for other errors
func KindOf(err error) string {
	var syntaxErr *SyntaxError
	if errors.As(err, &syntaxErr) {
		if syntaxErr.Unknown {
			return "lexical"
		}
		return "syntax"
	}
	var semanticErr *SemanticError
	if errors.As(err, &semanticErr) {
		return semanticErr.Kind.String()
	}
	return ""
}
