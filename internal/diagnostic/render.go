// ============================================================================
// TDL - Task Definition Language Toolchain
// ============================================================================
//
// Package:     diagnostic
// Description: Renders compile errors with a source snippet and caret
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/tdl/foundation/tdl/diag"
)

// Renderer formats compile results for terminal output
type Renderer struct {
	color bool
}

// NewRenderer creates a renderer. With color disabled the output is plain
// text.
func NewRenderer(color bool) *Renderer {
	return &Renderer{color: color}
}

// Render formats err for the file path whose content is source:
//
//	plan.tdl:3:14: out_of_range: invalid deadline 0 for task 't' ...
//	    3 |   deadline = 0;
//	      |              ^
//
// Errors without a source position render as "path: error: message".
func (r *Renderer) Render(path, source string, err error) string {
	if err == nil {
		return ""
	}

	kind, message, line, column, ok := describe(err)
	if !ok {
		return fmt.Sprintf("%s: %s %s\n",
			r.style(LocationStyle, path), r.style(KindStyle, "error:"), err.Error())
	}

	kindStyle := KindStyle
	if kind == "lexical" {
		kindStyle = LexicalKindStyle
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s %s\n",
		r.style(LocationStyle, fmt.Sprintf("%s:%d:%d:", path, line, column)),
		r.style(kindStyle, kind+":"),
		message)

	if text, found := sourceLine(source, line); found {
		gutter := fmt.Sprintf("%5d | ", line)
		blank := strings.Repeat(" ", len(gutter)-2) + "| "
		fmt.Fprintf(&sb, "%s%s\n", r.style(GutterStyle, gutter), text)
		fmt.Fprintf(&sb, "%s%s%s\n", r.style(GutterStyle, blank), caretIndent(text, column), r.style(CaretStyle, "^"))
	}

	return sb.String()
}

// OK formats a success line for a compiled file
func (r *Renderer) OK(path string, tasks int) string {
	noun := "tasks"
	if tasks == 1 {
		noun = "task"
	}
	return fmt.Sprintf("%s %s (%d %s)\n", r.style(SuccessStyle, "ok"), path, tasks, noun)
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return s.Render(text)
}

// describe extracts kind, bare message and position of a TDL error
func describe(err error) (kind, message string, line, column int, ok bool) {
	var syntaxErr *diag.SyntaxError
	if errors.As(err, &syntaxErr) {
		return diag.KindOf(err), syntaxErr.Message, syntaxErr.Line, syntaxErr.Column, true
	}
	var semanticErr *diag.SemanticError
	if errors.As(err, &semanticErr) {
		return diag.KindOf(err), semanticErr.Message, semanticErr.Line, semanticErr.Column, true
	}
	return "", "", 0, 0, false
}

// sourceLine returns the 1-based line of source without its line ending
func sourceLine(source string, line int) (string, bool) {
	if line < 1 {
		return "", false
	}
	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return "", false
	}
	return strings.TrimSuffix(lines[line-1], "\r"), true
}

// caretIndent builds the padding that places a caret under column. Tabs
// are kept so the caret lines up with the source line.
func caretIndent(text string, column int) string {
	var sb strings.Builder
	col := 1
	for _, r := range text {
		if col >= column {
			break
		}
		if r == '\t' {
			sb.WriteRune('\t')
		} else {
			sb.WriteRune(' ')
		}
		col++
	}
	for ; col < column; col++ {
		sb.WriteRune(' ')
	}
	return sb.String()
}
