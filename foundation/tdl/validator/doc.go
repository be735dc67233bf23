// File: doc.go
// Title: TDL Validator Package Documentation
// Description: Package validator enforces the semantic rules of TDL.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial package documentation

// Package validator checks a parsed TDL program for rules that cannot be
// decided token by token. Tasks are visited in source order. For each task
// the name is checked against earlier tasks, then every property value is
// range-checked in source order, then priority and deadline must both be
// present.
// The first violation is returned as a *diag.SemanticError.
package validator
