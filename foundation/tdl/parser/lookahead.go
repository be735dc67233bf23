// File: lookahead.go
// Title: TDL Token Lookahead Buffer
// Description: Ordered queue in front of a token source that allows
//              peeking arbitrarily far ahead without consuming. Every
//              source token is returned by Next exactly once, in order.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial lookahead buffer

package parser

// TokenSource produces tokens on demand. *Lexer implements it.
type TokenSource interface {
	NextToken() Token
}

// Lookahead buffers tokens pulled from a TokenSource
type Lookahead struct {
	src   TokenSource
	queue []Token
}

// NewLookahead creates a lookahead buffer over src
func NewLookahead(src TokenSource) *Lookahead {
	return &Lookahead{src: src}
}

// Peek returns the token k positions ahead of the next unconsumed token
// without consuming anything. Peek(0) is the next token. Negative k is
// treated as 0. Once TokenEOF is queued no further tokens are pulled and
// peeks beyond it return that TokenEOF.
func (b *Lookahead) Peek(k int) Token {
	if k < 0 {
		k = 0
	}

	for len(b.queue) <= k {
		if n := len(b.queue); n > 0 && b.queue[n-1].Type == TokenEOF {
			return b.queue[n-1]
		}
		b.queue = append(b.queue, b.src.NextToken())
	}

	return b.queue[k]
}

// Next consumes and returns the next token
func (b *Lookahead) Next() Token {
	if len(b.queue) == 0 {
		return b.src.NextToken()
	}

	tok := b.queue[0]
	b.queue[0] = Token{}
	b.queue = b.queue[1:]
	return tok
}

// Buffered returns the number of queued tokens
func (b *Lookahead) Buffered() int {
	return len(b.queue)
}
