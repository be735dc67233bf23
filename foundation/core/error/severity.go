// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger maps
//              severities to log levels when it records an error.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-19 v0.2.0: Severity mapping for TDL codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a problem in user input, e.g. a malformed task file
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	SeverityMedium

	// SeverityHigh indicates a serious error, e.g. an unusable index database
	SeverityHigh

	// SeverityCritical indicates a critical error that makes the tool unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines the severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeDatabaseError:
		return SeverityHigh
	case CodeConfigError, CodeInvalidConfig, CodeCanceled:
		return SeverityMedium
	case CodeInvalidInput, CodeNotFound, CodeTDLSyntax, CodeTDLSemantic,
		CodeValidationFailed, CodeRequiredField, CodeValueOutOfRange, CodeDuplicateEntry:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
