// File: parser.go
// Title: TDL Recursive Descent Parser
// Description: Builds the TDL syntax tree from the token stream. Decisions
//              are taken from the current token only; every mismatch is
//              reported as a *diag.SyntaxError with position, expected
//              context and the offending lexeme. Duplicate properties are
//              rejected while a task is being built.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial parser implementation

package parser

import (
	"fmt"

	mdwerror "github.com/msto63/tdl/foundation/core/error"
	mdwlog "github.com/msto63/tdl/foundation/core/log"
	"github.com/msto63/tdl/foundation/tdl/ast"
	"github.com/msto63/tdl/foundation/tdl/diag"
)

// DefaultMaxInputLength is used when Options.MaxInputLength is zero
const DefaultMaxInputLength = 1 << 20

// Parser implements recursive descent parsing for TDL. A Parser may be
// reused for sequential calls but is not safe for concurrent use.
type Parser struct {
	tokens  *Lookahead
	current Token // Next unconsumed token, always tokens.Peek(0)
	logger  *mdwlog.Logger
	options Options
}

// Options configures parser behavior
type Options struct {
	Logger         *mdwlog.Logger
	MaxInputLength int
}

// New creates a new TDL parser with the given options
func New(opts Options) (*Parser, error) {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.MaxInputLength == 0 {
		opts.MaxInputLength = DefaultMaxInputLength
	}
	if opts.MaxInputLength < 0 {
		return nil, mdwerror.New(fmt.Sprintf("invalid max input length: %d", opts.MaxInputLength)).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("parser.New")
	}

	return &Parser{
		logger:  opts.Logger.WithField("component", "tdl-parser"),
		options: opts,
	}, nil
}

// ParseProgram parses input with default options
func ParseProgram(input string) (*ast.Program, error) {
	p, err := New(Options{Logger: mdwlog.Discard()})
	if err != nil {
		return nil, err
	}
	return p.Parse(input)
}

// Parse parses TDL source text into a Program
func (p *Parser) Parse(input string) (*ast.Program, error) {
	return p.ParseSource("", input)
}

// ParseSource parses TDL source text; name identifies the source in the
// resulting Program and in log output. On error no partial program is
// returned.
func (p *Parser) ParseSource(name, input string) (*ast.Program, error) {
	if len(input) > p.options.MaxInputLength {
		return nil, mdwerror.New(fmt.Sprintf("input exceeds maximum length: %d > %d",
			len(input), p.options.MaxInputLength)).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("parser.Parse").
			WithDetail("source", name)
	}

	p.tokens = NewLookahead(NewLexer(input))
	p.current = p.tokens.Peek(0)

	p.logger.Debug("Starting TDL parsing", mdwlog.Fields{
		"source": name,
		"length": len(input),
	})

	prog, err := p.parseProgram()
	p.tokens = nil
	if err != nil {
		p.logger.Debug("TDL parsing failed", mdwlog.Fields{
			"source": name,
			"error":  err.Error(),
		})
		return nil, err
	}
	prog.Source = name

	p.logger.Debug("TDL parsing completed", mdwlog.Fields{
		"source": name,
		"tasks":  len(prog.Tasks),
	})

	return prog, nil
}

// parseProgram parses Task* END_OF_INPUT
func (p *Parser) parseProgram() (*ast.Program, error) {
	prog := &ast.Program{}

	for p.current.Type == TokenTask {
		task, err := p.parseTask()
		if err != nil {
			return nil, err
		}
		prog.Tasks = append(prog.Tasks, task)
	}

	if p.current.Type != TokenEOF {
		return nil, p.syntaxError("end of input", "unexpected token at end of program, expected 'task' or end of input")
	}

	return prog, nil
}

// parseTask parses TASK_KEYWORD IDENTIFIER LBRACE Property* RBRACE
func (p *Parser) parseTask() (*ast.Task, error) {
	if _, err := p.expect(TokenTask, "'task'"); err != nil {
		return nil, err
	}

	name, err := p.expect(TokenIdentifier, "task name (identifier)")
	if err != nil {
		return nil, err
	}

	task := &ast.Task{
		Name: name.Value,
		Pos:  positionOf(name),
	}

	if _, err := p.expect(TokenLeftBrace, "'{' after task name"); err != nil {
		return nil, err
	}

	if err := p.parseTaskBody(task); err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenRightBrace, "'}'"); err != nil {
		return nil, err
	}

	return task, nil
}

// parseTaskBody parses properties until the closing brace, which is left
// for the caller
func (p *Parser) parseTaskBody(task *ast.Task) error {
	for {
		switch p.current.Type {
		case TokenPriority, TokenDeadline:
			if err := p.parseProperty(task); err != nil {
				return err
			}
		case TokenRightBrace:
			return nil
		default:
			return p.syntaxError("'priority', 'deadline', or '}'",
				"unexpected token in task body, expected 'priority', 'deadline', or '}'")
		}
	}
}

// parseProperty parses (PRIORITY_KEYWORD | DEADLINE_KEYWORD) EQUALS
// INTEGER_LITERAL SEMICOLON and appends it to task
func (p *Parser) parseProperty(task *ast.Task) error {
	keyword := p.current
	key := ast.KeyPriority
	if keyword.Type == TokenDeadline {
		key = ast.KeyDeadline
	}
	p.advance()

	if _, err := p.expect(TokenEquals, "'=' after property name"); err != nil {
		return err
	}

	if p.current.Type == TokenInteger && p.current.Overflow {
		se := p.syntaxError("integer literal", "")
		se.Message = fmt.Sprintf("integer literal out of range: %s", p.current.Value)
		return se
	}
	literal, err := p.expect(TokenInteger, "integer literal for property value")
	if err != nil {
		return err
	}

	if _, err := p.expect(TokenSemicolon, "';' after property"); err != nil {
		return err
	}

	if first, exists := task.Property(key); exists {
		return &diag.SemanticError{
			Kind:     diag.DuplicateProperty,
			Task:     task.Name,
			Property: key.String(),
			Line:     keyword.Line,
			Column:   keyword.Column,
			Offset:   keyword.Offset,
			Message: fmt.Sprintf("duplicate property '%s' in task '%s' at line %d (first set at line %d)",
				key, task.Name, keyword.Line, first.Pos.Line),
		}
	}

	task.Properties = append(task.Properties, ast.Property{
		Key:   key,
		Value: literal.IntValue,
		Pos:   positionOf(keyword),
	})
	return nil
}

// advance consumes the current token and loads the next one
func (p *Parser) advance() {
	p.tokens.Next()
	p.current = p.tokens.Peek(0)
}

// expect consumes the current token if it has the wanted type
func (p *Parser) expect(tt TokenType, expected string) (Token, error) {
	tok := p.current
	if tok.Type != tt {
		return tok, p.syntaxError(expected, fmt.Sprintf("expected %s", expected))
	}
	p.advance()
	return tok, nil
}

// syntaxError creates a syntax error at the current token. The found token
// is appended to message.
func (p *Parser) syntaxError(expected, message string) *diag.SyntaxError {
	tok := p.current
	return &diag.SyntaxError{
		Expected: expected,
		Found:    tok.Describe(),
		Lexeme:   tok.Value,
		Unknown:  tok.Type == TokenUnknown,
		Line:     tok.Line,
		Column:   tok.Column,
		Offset:   tok.Offset,
		Message:  fmt.Sprintf("%s, found %s", message, tok.Describe()),
	}
}

// positionOf converts a token position into an AST position
func positionOf(tok Token) ast.Position {
	return ast.Position{
		Line:   tok.Line,
		Column: tok.Column,
		Offset: tok.Offset,
	}
}
