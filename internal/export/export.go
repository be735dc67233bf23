// ============================================================================
// TDL - Task Definition Language Toolchain
// ============================================================================
//
// Package:     export
// Description: Output encoders for validated TDL programs
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package export

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/tdl/foundation/core/error"
	"github.com/msto63/tdl/foundation/tdl/ast"
)

// Format names an output encoding
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Document is the structured form of a program used by the data encoders
type Document struct {
	Source string    `json:"source,omitempty" yaml:"source,omitempty" toml:"source,omitempty"`
	Tasks  []TaskDoc `json:"tasks" yaml:"tasks" toml:"tasks"`
}

// TaskDoc is one task of a Document
type TaskDoc struct {
	Name     string `json:"name" yaml:"name" toml:"name"`
	Line     int    `json:"line" yaml:"line" toml:"line"`
	Column   int    `json:"column" yaml:"column" toml:"column"`
	Priority int64  `json:"priority" yaml:"priority" toml:"priority"`
	Deadline int64  `json:"deadline" yaml:"deadline" toml:"deadline"`
}

// Encoder writes a program in one format
type Encoder interface {
	Encode(w io.Writer, prog *ast.Program) error
}

// EncoderFunc adapts a function to Encoder
type EncoderFunc func(w io.Writer, prog *ast.Program) error

// Encode implements Encoder
func (f EncoderFunc) Encode(w io.Writer, prog *ast.Program) error {
	return f(w, prog)
}

var encoders = map[Format]Encoder{
	FormatText: EncoderFunc(encodeText),
	FormatJSON: EncoderFunc(encodeJSON),
	FormatYAML: EncoderFunc(encodeYAML),
	FormatTOML: EncoderFunc(encodeTOML),
}

// Formats returns the supported format names, sorted
func Formats() []string {
	names := make([]string, 0, len(encoders))
	for f := range encoders {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return names
}

// Get returns the encoder for a format name
func Get(name string) (Encoder, error) {
	enc, ok := encoders[Format(strings.ToLower(name))]
	if !ok {
		return nil, mdwerror.New(fmt.Sprintf("unknown output format: %s", name)).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("export.Get").
			WithDetail("supported", strings.Join(Formats(), ", "))
	}
	return enc, nil
}

// Write encodes prog in the named format
func Write(w io.Writer, name string, prog *ast.Program) error {
	enc, err := Get(name)
	if err != nil {
		return err
	}
	if prog == nil {
		return mdwerror.New("program is nil").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("export.Write")
	}
	if err := enc.Encode(w, prog); err != nil {
		return mdwerror.Wrap(err, "failed to encode program").
			WithCode(mdwerror.CodeInternal).
			WithOperation("export.Write").
			WithDetail("format", name)
	}
	return nil
}

// NewDocument converts prog into its structured form
func NewDocument(prog *ast.Program) *Document {
	b := &documentBuilder{}
	prog.Accept(b)
	return &b.doc
}

// documentBuilder collects a Document through the AST visitor
type documentBuilder struct {
	doc  Document
	task *TaskDoc
}

func (b *documentBuilder) VisitProgram(prog *ast.Program) interface{} {
	b.doc.Source = prog.Source
	b.doc.Tasks = make([]TaskDoc, 0, len(prog.Tasks))
	for _, task := range prog.Tasks {
		task.Accept(b)
	}
	return nil
}

func (b *documentBuilder) VisitTask(task *ast.Task) interface{} {
	b.doc.Tasks = append(b.doc.Tasks, TaskDoc{
		Name:   task.Name,
		Line:   task.Pos.Line,
		Column: task.Pos.Column,
	})
	b.task = &b.doc.Tasks[len(b.doc.Tasks)-1]
	for i := range task.Properties {
		task.Properties[i].Accept(b)
	}
	return nil
}

func (b *documentBuilder) VisitProperty(prop *ast.Property) interface{} {
	switch prop.Key {
	case ast.KeyPriority:
		b.task.Priority = prop.Value
	case ast.KeyDeadline:
		b.task.Deadline = prop.Value
	}
	return nil
}

func encodeText(w io.Writer, prog *ast.Program) error {
	_, err := io.WriteString(w, prog.String())
	return err
}

func encodeJSON(w io.Writer, prog *ast.Program) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(prog))
}

func encodeYAML(w io.Writer, prog *ast.Program) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(prog)); err != nil {
		return err
	}
	return enc.Close()
}

func encodeTOML(w io.Writer, prog *ast.Program) error {
	return toml.NewEncoder(w).Encode(NewDocument(prog))
}
