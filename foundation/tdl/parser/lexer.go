// File: lexer.go
// Title: TDL Lexical Analyzer (Tokenizer)
// Description: Converts TDL source text into tokens on demand. Skips
//              whitespace and '#' comments and tracks exact 1-based line
//              and column positions. Unrecognized characters become
//              TokenUnknown and are never dropped.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial lexer implementation

package parser

import (
	"strconv"
	"unicode/utf8"
)

// Lexer performs lexical analysis of TDL input
type Lexer struct {
	input  string // Input string
	pos    int    // Byte offset of the next unread character
	line   int    // Current line number (1-based)
	column int    // Current column number (1-based)
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	return &Lexer{
		input:  input,
		line:   1,
		column: 1,
	}
}

// NextToken returns the next token from the input. Once the end of input
// is reached every further call returns TokenEOF at the same position.
func (l *Lexer) NextToken() Token {
	l.skipWhitespaceAndComments()

	tok := Token{Offset: l.pos, Line: l.line, Column: l.column}

	if l.pos >= len(l.input) {
		tok.Type = TokenEOF
		return tok
	}

	ch := l.input[l.pos]
	switch {
	case isLetter(ch):
		tok.Value = l.readWhile(isIdentChar)
		tok.Type = lookupIdent(tok.Value)
		return tok
	case isDigit(ch):
		tok.Type = TokenInteger
		tok.Value = l.readWhile(isDigit)
		value, err := strconv.ParseInt(tok.Value, 10, 64)
		if err != nil {
			// only a range error is possible for a pure digit run
			tok.Overflow = true
		} else {
			tok.IntValue = value
		}
		return tok
	}

	start := l.pos
	l.readChar()
	tok.Value = l.input[start:l.pos]

	switch ch {
	case '=':
		tok.Type = TokenEquals
	case ';':
		tok.Type = TokenSemicolon
	case '{':
		tok.Type = TokenLeftBrace
	case '}':
		tok.Type = TokenRightBrace
	default:
		tok.Type = TokenUnknown
	}

	return tok
}

// Tokenize returns all tokens through the first TokenEOF
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens
		}
	}
}

// readChar consumes one character. A multi-byte UTF-8 sequence counts as a
// single column.
func (l *Lexer) readChar() {
	if l.pos >= len(l.input) {
		return
	}

	if l.input[l.pos] == '\n' {
		l.pos++
		l.line++
		l.column = 1
		return
	}

	_, size := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += size
	l.column++
}

// readWhile consumes a maximal run of ASCII characters matching pred
func (l *Lexer) readWhile(pred func(byte) bool) string {
	start := l.pos
	for l.pos < len(l.input) && pred(l.input[l.pos]) {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// skipWhitespaceAndComments skips whitespace and '#' line comments in any
// interleaving
func (l *Lexer) skipWhitespaceAndComments() {
	for l.pos < len(l.input) {
		switch ch := l.input[l.pos]; {
		case isWhitespace(ch):
			l.readChar()
		case ch == '#':
			for l.pos < len(l.input) && l.input[l.pos] != '\n' {
				l.readChar()
			}
		default:
			return
		}
	}
}

// lookupIdent classifies identifier text as keyword or identifier
func lookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return TokenIdentifier
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isIdentChar(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == '_'
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}
