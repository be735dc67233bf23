// File: doc.go
// Title: TDL AST Package Documentation
// Description: Package ast defines the syntax tree of the Task Definition
//              Language.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial package documentation

/*
Package ast defines the abstract syntax tree of the Task Definition Language.

The tree is strict: a Program owns its Tasks and a Task owns its Properties.
There are no parent links and no shared nodes. Property keys are the closed
set KeyPriority and KeyDeadline.

String on any node renders canonical TDL source, so a parsed and validated
program can be printed back:

	task controlLoop {
	    priority = 5;
	    deadline = 100;
	}
*/
package ast
