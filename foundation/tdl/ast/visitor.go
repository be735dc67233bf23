// File: visitor.go
// Title: TDL AST Visitor Pattern Implementation
// Description: Visitor interface for double dispatch over AST nodes and a
//              depth-first Walk helper.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial visitor implementation

package ast

// Visitor interface for traversing AST nodes using the visitor pattern
type Visitor interface {
	VisitProgram(prog *Program) interface{}
	VisitTask(task *Task) interface{}
	VisitProperty(prop *Property) interface{}
}

// Walk traverses prog depth-first in source order. If fn returns false for
// a node its children are skipped.
func Walk(prog *Program, fn func(Node) bool) {
	if prog == nil || !fn(prog) {
		return
	}
	for _, task := range prog.Tasks {
		if !fn(task) {
			continue
		}
		for i := range task.Properties {
			fn(&task.Properties[i])
		}
	}
}

// Stats counts nodes of a program
type Stats struct {
	Tasks      int
	Properties int
}

// StatsVisitor collects Stats through Accept
type StatsVisitor struct {
	Stats Stats
}

// VisitProgram implements Visitor
func (v *StatsVisitor) VisitProgram(prog *Program) interface{} {
	for _, task := range prog.Tasks {
		task.Accept(v)
	}
	return v.Stats
}

// VisitTask implements Visitor
func (v *StatsVisitor) VisitTask(task *Task) interface{} {
	v.Stats.Tasks++
	for i := range task.Properties {
		task.Properties[i].Accept(v)
	}
	return nil
}

// VisitProperty implements Visitor
func (v *StatsVisitor) VisitProperty(prop *Property) interface{} {
	v.Stats.Properties++
	return nil
}

// Count returns the node statistics of prog
func Count(prog *Program) Stats {
	v := &StatsVisitor{}
	if prog != nil {
		prog.Accept(v)
	}
	return v.Stats
}
