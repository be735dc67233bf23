// File: nodes.go
// Title: TDL Abstract Syntax Tree Node Definitions
// Description: Defines the AST produced by the TDL parser: a Program owns
//              its Tasks, a Task owns its Properties. Property keys form a
//              closed set decided once at parse time from the token kind.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial AST definitions

package ast

import (
	"fmt"
	"strings"
)

// Node represents the base interface for all AST nodes
type Node interface {
	// String renders the node as canonical TDL source
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// Position returns the source position of the node
	Position() Position
}

// Position represents a position in the source code
type Position struct {
	Line   int // Line number (1-based)
	Column int // Column number (1-based)
	Offset int // Byte offset (0-based)
}

// String returns "line:column"
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid reports whether the position points into a source
func (p Position) IsValid() bool {
	return p.Line > 0
}

// PropertyKey identifies one of the recognized task properties
type PropertyKey int

const (
	// KeyPriority is the "priority" property
	KeyPriority PropertyKey = iota + 1

	// KeyDeadline is the "deadline" property
	KeyDeadline
)

// PropertyKeys lists every key in canonical order
var PropertyKeys = []PropertyKey{KeyPriority, KeyDeadline}

// String returns the source spelling of the key
func (k PropertyKey) String() string {
	switch k {
	case KeyPriority:
		return "priority"
	case KeyDeadline:
		return "deadline"
	default:
		return "unknown"
	}
}

// Property is one "key = value;" pair inside a task body
type Property struct {
	Key   PropertyKey // priority or deadline
	Value int64       // Value exactly as written
	Pos   Position    // Position of the property keyword
}

// Task is one "task <name> { ... }" declaration
type Task struct {
	Name       string     // Task name, never empty
	Properties []Property // Properties in source order, keys unique
	Pos        Position   // Position of the name token
}

// Program is the parse root
type Program struct {
	Source string  // Optional source name, used in messages only
	Tasks  []*Task // Tasks in source order
}

// String implements Node
func (p *Property) String() string {
	return fmt.Sprintf("%s = %d;", p.Key, p.Value)
}

// Accept implements Node
func (p *Property) Accept(visitor Visitor) interface{} {
	return visitor.VisitProperty(p)
}

// Position implements Node
func (p *Property) Position() Position {
	return p.Pos
}

// Property returns the first property with the given key
func (t *Task) Property(key PropertyKey) (Property, bool) {
	for _, prop := range t.Properties {
		if prop.Key == key {
			return prop, true
		}
	}
	return Property{}, false
}

// Priority returns the priority value if present
func (t *Task) Priority() (int64, bool) {
	prop, ok := t.Property(KeyPriority)
	return prop.Value, ok
}

// Deadline returns the deadline value if present
func (t *Task) Deadline() (int64, bool) {
	prop, ok := t.Property(KeyDeadline)
	return prop.Value, ok
}

// String implements Node
func (t *Task) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "task %s {\n", t.Name)
	for i := range t.Properties {
		fmt.Fprintf(&sb, "    %s\n", t.Properties[i].String())
	}
	sb.WriteString("}")
	return sb.String()
}

// Accept implements Node
func (t *Task) Accept(visitor Visitor) interface{} {
	return visitor.VisitTask(t)
}

// Position implements Node
func (t *Task) Position() Position {
	return t.Pos
}

// Lookup returns the first task with the given name, or nil
func (p *Program) Lookup(name string) *Task {
	for _, task := range p.Tasks {
		if task.Name == name {
			return task
		}
	}
	return nil
}

// TaskNames returns the task names in source order
func (p *Program) TaskNames() []string {
	names := make([]string, len(p.Tasks))
	for i, task := range p.Tasks {
		names[i] = task.Name
	}
	return names
}

// String implements Node. Tasks are separated by a blank line.
func (p *Program) String() string {
	parts := make([]string, len(p.Tasks))
	for i, task := range p.Tasks {
		parts[i] = task.String()
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "\n\n") + "\n"
}

// Accept implements Node
func (p *Program) Accept(visitor Visitor) interface{} {
	return visitor.VisitProgram(p)
}

// Position implements Node. A program starts at the beginning of its source.
func (p *Program) Position() Position {
	return Position{Line: 1, Column: 1}
}
