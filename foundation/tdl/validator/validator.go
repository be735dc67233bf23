// File: validator.go
// Title: TDL Semantic Validator
// Description: Checks program-wide invariants on a parsed TDL program:
//              unique task names, required priority and deadline, and value
//              ranges. Stops at the first violation in task order.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial validator implementation
// - 2026-10-19 v0.1.1: Range checks run during the property scan

package validator

import (
	"fmt"

	mdwerror "github.com/msto63/tdl/foundation/core/error"
	mdwlog "github.com/msto63/tdl/foundation/core/log"
	"github.com/msto63/tdl/foundation/tdl/ast"
	"github.com/msto63/tdl/foundation/tdl/diag"
)

// Options configures optional upper bounds. Zero means unlimited.
type Options struct {
	Logger      *mdwlog.Logger
	MaxPriority int64
	MaxDeadline int64
}

// Validator enforces the semantic rules of TDL. It holds no per-call state.
type Validator struct {
	logger  *mdwlog.Logger
	options Options
}

// New creates a validator
func New(opts Options) *Validator {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	return &Validator{
		logger:  opts.Logger.WithField("component", "tdl-validator"),
		options: opts,
	}
}

// Validate checks prog with the default rules
func Validate(prog *ast.Program) error {
	return New(Options{Logger: mdwlog.Discard()}).Validate(prog)
}

// Validate checks prog and returns the first violation as a
// *diag.SemanticError. prog is not modified.
func (v *Validator) Validate(prog *ast.Program) error {
	if prog == nil {
		return mdwerror.New("program is nil").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("validator.Validate")
	}

	seen := make(map[string]*ast.Task, len(prog.Tasks))
	for _, task := range prog.Tasks {
		if first, ok := seen[task.Name]; ok {
			return v.fail(prog, &diag.SemanticError{
				Kind:   diag.DuplicateTask,
				Task:   task.Name,
				Line:   task.Pos.Line,
				Column: task.Pos.Column,
				Offset: task.Pos.Offset,
				Message: fmt.Sprintf("duplicate task name '%s' at line %d (first declared at line %d)",
					task.Name, task.Pos.Line, first.Pos.Line),
			})
		}
		seen[task.Name] = task

		if err := v.validateTask(task); err != nil {
			return v.fail(prog, err)
		}
	}

	v.logger.Debug("TDL validation passed", mdwlog.Fields{
		"source": prog.Source,
		"tasks":  len(prog.Tasks),
	})
	return nil
}

// validateTask scans the properties in source order, checking each value
// as it is reached, then checks presence (priority before deadline)
func (v *Validator) validateTask(task *ast.Task) *diag.SemanticError {
	present := make(map[ast.PropertyKey]bool, len(ast.PropertyKeys))
	for i := range task.Properties {
		prop := &task.Properties[i]
		if err := v.checkRange(task, prop); err != nil {
			return err
		}
		present[prop.Key] = true
	}

	for _, key := range ast.PropertyKeys {
		if !present[key] {
			return &diag.SemanticError{
				Kind:     diag.MissingProperty,
				Task:     task.Name,
				Property: key.String(),
				Line:     task.Pos.Line,
				Column:   task.Pos.Column,
				Offset:   task.Pos.Offset,
				Message:  fmt.Sprintf("task '%s' is missing required property '%s'", task.Name, key),
			}
		}
	}
	return nil
}

// checkRange enforces priority >= 0 and deadline > 0 plus the configured
// upper bounds
func (v *Validator) checkRange(task *ast.Task, prop *ast.Property) *diag.SemanticError {
	var bound string
	switch prop.Key {
	case ast.KeyPriority:
		if prop.Value < 0 {
			bound = "must be >= 0"
		} else if v.options.MaxPriority > 0 && prop.Value > v.options.MaxPriority {
			bound = fmt.Sprintf("must be <= %d", v.options.MaxPriority)
		}
	case ast.KeyDeadline:
		if prop.Value <= 0 {
			bound = "must be > 0"
		} else if v.options.MaxDeadline > 0 && prop.Value > v.options.MaxDeadline {
			bound = fmt.Sprintf("must be <= %d", v.options.MaxDeadline)
		}
	}
	if bound == "" {
		return nil
	}

	return &diag.SemanticError{
		Kind:     diag.OutOfRange,
		Task:     task.Name,
		Property: prop.Key.String(),
		Line:     prop.Pos.Line,
		Column:   prop.Pos.Column,
		Offset:   prop.Pos.Offset,
		Message: fmt.Sprintf("invalid %s %d for task '%s' at line %d: %s",
			prop.Key, prop.Value, task.Name, prop.Pos.Line, bound),
	}
}

func (v *Validator) fail(prog *ast.Program, err *diag.SemanticError) error {
	v.logger.Debug("TDL validation failed", mdwlog.Fields{
		"source": prog.Source,
		"kind":   err.Kind.String(),
		"task":   err.Task,
	})
	return err
}
