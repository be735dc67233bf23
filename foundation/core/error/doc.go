// Package error provides structured error handling for the TDL toolchain.
//
// Package: error
// Title: TDL Error Handling Framework
// Description: Implements a structured error type with codes, severity,
//              contextual details and stack traces. Syntax and semantic
//              failures of the TDL front end are converted into this type
//              so that the CLI, the catalog and the logger can treat every
//              failure uniformly.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-19 v0.2.0: Reduced code set to the TDL domain, added TDL codes
//
// Usage:
//
//	import mdwerror "github.com/msto63/tdl/foundation/core/error"
//
//	err := mdwerror.New("task file not found").
//		WithCode(mdwerror.CodeNotFound).
//		WithOperation("catalog.loadFile").
//		WithDetail("path", path)
//
//	if mdwerror.HasCode(err, mdwerror.CodeTDLSyntax) {
//		// render a diagnostic
//	}
package error
