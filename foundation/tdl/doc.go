// File: doc.go
// Title: Task Definition Language (TDL) Package Documentation
// Description: Front end for the Task Definition Language: tokenizer,
//              lookahead buffer, recursive descent parser and semantic
//              validator behind a single Compile call.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial TDL implementation

/*
Package tdl compiles Task Definition Language source into a validated
syntax tree.

# TDL Language Overview

A TDL program is a sequence of task blocks. Each task has a name and the
two integer properties priority and deadline:

	# control tasks
	task controlLoop {
	    priority = 5;
	    deadline = 100;
	}

Keywords (task, priority, deadline) are case sensitive. Identifiers start
with an ASCII letter followed by letters, digits or '_'. Integers are
unsigned decimal literals that must fit in int64. '#' starts a comment that
runs to the end of the line.

# Rules

Parsing rejects grammar violations and a property set twice in the same
task. Validation then requires, in task order:

  - unique task names
  - both priority and deadline in every task
  - priority >= 0 and deadline > 0

Optional upper bounds for both values can be configured. Every check stops
at the first failure; no partial program is returned.

# Usage

	compiler, err := tdl.New(tdl.Options{})
	if err != nil {
	    return err
	}

	result, err := compiler.Compile(ctx, "plan.tdl", source)
	if err != nil {
	    line, column, _ := diag.PositionOf(err)
	    ...
	}
	for _, task := range result.Program.Tasks {
	    ...
	}

Errors from Compile carry the codes TDL_SYNTAX or TDL_SEMANTIC and keep the
underlying *diag.SyntaxError or *diag.SemanticError reachable through
errors.As.

# Subpackages

  - parser: tokens, lexer, lookahead buffer and grammar
  - ast: Program, Task and Property nodes with canonical rendering
  - validator: program-wide semantic rules
  - diag: syntax and semantic error types
*/
package tdl
