// File: doc.go
// Title: TDL Parser Package Documentation
// Description: Lexer, lookahead buffer and recursive descent parser for the
//              Task Definition Language.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial parser implementation

/*
Package parser turns TDL source text into an ast.Program.

The pipeline has three parts:

  - Lexer produces tokens on demand, skipping whitespace and '#' comments.
    Positions are 1-based lines and columns. Characters outside the grammar
    become TokenUnknown tokens so they surface as syntax errors.
  - Lookahead queues tokens in front of the lexer. Peek(k) never consumes,
    Next returns every token exactly once in order.
  - Parser applies the grammar

	Program  := Task* END_OF_INPUT
	Task     := 'task' IDENTIFIER '{' Property* '}'
	Property := ('priority' | 'deadline') '=' INTEGER ';'

Parsing stops at the first error. Grammar violations are returned as
*diag.SyntaxError, a property repeated inside one task as a
*diag.SemanticError of kind DuplicateProperty. Integer literals that do not
fit in int64 are rejected with "integer literal out of range".

Cross-task rules (unique names, required properties, value ranges) belong
to the validator package.
*/
package parser
