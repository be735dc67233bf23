// File: token.go
// Title: TDL Token Model
// Description: Closed set of lexical token kinds produced by the TDL lexer
//              and the Token value carrying text, integer value and source
//              position.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial token model

package parser

import (
	"fmt"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenUnknown

	// Keywords
	TokenTask     // task
	TokenPriority // priority
	TokenDeadline // deadline

	// Identifiers and literals
	TokenIdentifier // controlLoop, t_1
	TokenInteger    // 100

	// Delimiters
	TokenEquals     // =
	TokenSemicolon  // ;
	TokenLeftBrace  // {
	TokenRightBrace // }
)

// keywords maps reserved words to their token type. Matching is exact and
// case sensitive.
var keywords = map[string]TokenType{
	"task":     TokenTask,
	"priority": TokenPriority,
	"deadline": TokenDeadline,
}

// String returns the category name of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "END_OF_INPUT"
	case TokenUnknown:
		return "UNKNOWN"
	case TokenTask:
		return "TASK_KEYWORD"
	case TokenPriority:
		return "PRIORITY_KEYWORD"
	case TokenDeadline:
		return "DEADLINE_KEYWORD"
	case TokenIdentifier:
		return "IDENTIFIER"
	case TokenInteger:
		return "INTEGER_LITERAL"
	case TokenEquals:
		return "EQUALS"
	case TokenSemicolon:
		return "SEMICOLON"
	case TokenLeftBrace:
		return "LBRACE"
	case TokenRightBrace:
		return "RBRACE"
	default:
		return "INVALID"
	}
}

// Describe returns the human form of the token type used in messages
func (tt TokenType) Describe() string {
	switch tt {
	case TokenEOF:
		return "end of input"
	case TokenUnknown:
		return "unknown character"
	case TokenTask:
		return "'task'"
	case TokenPriority:
		return "'priority'"
	case TokenDeadline:
		return "'deadline'"
	case TokenIdentifier:
		return "identifier"
	case TokenInteger:
		return "integer literal"
	case TokenEquals:
		return "'='"
	case TokenSemicolon:
		return "';'"
	case TokenLeftBrace:
		return "'{'"
	case TokenRightBrace:
		return "'}'"
	default:
		return "invalid token"
	}
}

// Token represents a lexical token with position information
type Token struct {
	Type     TokenType // Token type
	Value    string    // Literal source text
	IntValue int64     // Integer value, TokenInteger only
	Overflow bool      // Integer literal does not fit in int64
	Offset   int       // Byte offset in input (0-based)
	Line     int       // Line number (1-based)
	Column   int       // Column number (1-based)
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "END_OF_INPUT"
	default:
		return fmt.Sprintf("%s(%s)", t.Type.String(), t.Value)
	}
}

// Describe returns the token as it is named in error messages, e.g.
// "identifier 'foo'" or "unknown character '-'"
func (t Token) Describe() string {
	switch t.Type {
	case TokenEOF:
		return "end of input"
	case TokenIdentifier, TokenUnknown:
		return fmt.Sprintf("%s '%s'", t.Type.Describe(), t.Value)
	case TokenInteger:
		return fmt.Sprintf("integer literal %s", t.Value)
	default:
		return t.Type.Describe()
	}
}
