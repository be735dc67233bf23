// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across the TDL toolchain. Codes
//              classify failures for rendering, logging and exit handling.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-19 v0.2.0: TDL syntax/semantic codes, storage codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeCanceled     Code = "CANCELED"

	// TDL front end
	CodeTDLSyntax   Code = "TDL_SYNTAX"
	CodeTDLSemantic Code = "TDL_SEMANTIC"

	// Storage
	CodeDatabaseError Code = "DATABASE_ERROR"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeRequiredField    Code = "REQUIRED_FIELD"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
	CodeDuplicateEntry   Code = "DUPLICATE_ENTRY"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeCanceled,
		CodeTDLSyntax, CodeTDLSemantic,
		CodeDatabaseError,
		CodeConfigError, CodeInvalidConfig,
		CodeValidationFailed, CodeRequiredField, CodeValueOutOfRange, CodeDuplicateEntry:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeTDLSyntax, CodeTDLSemantic:
		return "tdl"
	case CodeDatabaseError:
		return "storage"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeRequiredField, CodeValueOutOfRange, CodeDuplicateEntry:
		return "validation"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit status the CLI uses for this code.
// Source errors exit with 1, usage/configuration problems with 2 and
// everything else with 3.
func (c Code) ExitCode() int {
	switch c.Category() {
	case "tdl", "validation":
		return 1
	case "configuration":
		return 2
	}
	if c == CodeInvalidInput || c == CodeNotFound {
		return 2
	}
	return 3
}
