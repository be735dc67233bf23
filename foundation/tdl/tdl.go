// File: tdl.go
// Title: TDL Compiler Interface
// Description: High-level API that runs the TDL front end: tokenize and
//              parse the source, then validate the program. Each run gets
//              a run id and is timed through the foundation logger.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial compiler facade

package tdl

import (
	"context"
	"time"

	"github.com/google/uuid"

	mdwerror "github.com/msto63/tdl/foundation/core/error"
	mdwlog "github.com/msto63/tdl/foundation/core/log"
	mdwast "github.com/msto63/tdl/foundation/tdl/ast"
	mdwdiag "github.com/msto63/tdl/foundation/tdl/diag"
	mdwparser "github.com/msto63/tdl/foundation/tdl/parser"
	mdwvalidator "github.com/msto63/tdl/foundation/tdl/validator"
)

// Compiler coordinates parsing and validation. It is safe for concurrent
// use; every Compile call works on its own parser.
type Compiler struct {
	validator *mdwvalidator.Validator
	logger    *mdwlog.Logger
	options   Options
}

// Options configures the compiler
type Options struct {
	// Logger for compile runs (optional, defaults to default logger)
	Logger *mdwlog.Logger

	// MaxInputLength limits the source size in bytes (default: 1 MiB)
	MaxInputLength int

	// MaxPriority is an optional upper bound for priority (0: unlimited)
	MaxPriority int64

	// MaxDeadline is an optional upper bound for deadline (0: unlimited)
	MaxDeadline int64
}

// Result is a successfully compiled program
type Result struct {
	// RunID identifies the compile run in log output
	RunID string

	// Program is the validated syntax tree
	Program *mdwast.Program

	// Duration is the time spent parsing and validating
	Duration time.Duration
}

// New creates a compiler with the given options
func New(opts Options) (*Compiler, error) {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.MaxInputLength == 0 {
		opts.MaxInputLength = mdwparser.DefaultMaxInputLength
	}
	if opts.MaxInputLength < 0 || opts.MaxPriority < 0 || opts.MaxDeadline < 0 {
		return nil, mdwerror.New("compiler limits must not be negative").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("tdl.New").
			WithDetails(map[string]interface{}{
				"max_input_length": opts.MaxInputLength,
				"max_priority":     opts.MaxPriority,
				"max_deadline":     opts.MaxDeadline,
			})
	}

	logger := opts.Logger.WithField("component", "tdl-compiler")

	return &Compiler{
		validator: mdwvalidator.New(mdwvalidator.Options{
			Logger:      logger,
			MaxPriority: opts.MaxPriority,
			MaxDeadline: opts.MaxDeadline,
		}),
		logger:  logger,
		options: opts,
	}, nil
}

// CompileString compiles source with default options and no logging
func CompileString(source string) (*mdwast.Program, error) {
	c, err := New(Options{Logger: mdwlog.Discard()})
	if err != nil {
		return nil, err
	}
	result, err := c.Compile(context.Background(), "", source)
	if err != nil {
		return nil, err
	}
	return result.Program, nil
}

// Compile parses and validates source. name identifies the source in
// messages. Syntax and semantic failures are returned as *mdwerror.Error
// with code TDL_SYNTAX or TDL_SEMANTIC; the diag error stays reachable
// through errors.As.
func (c *Compiler) Compile(ctx context.Context, name, source string) (*Result, error) {
	runID := uuid.NewString()
	logger := c.logger.WithRequestID(runID)
	timer := logger.StartTimer("tdl compile").WithFields(mdwlog.Fields{
		"source": name,
		"length": len(source),
	})

	if err := checkContext(ctx, "parse"); err != nil {
		timer.StopWithError(err)
		return nil, err
	}

	parser, err := mdwparser.New(mdwparser.Options{
		Logger:         logger,
		MaxInputLength: c.options.MaxInputLength,
	})
	if err != nil {
		timer.StopWithError(err)
		return nil, err
	}

	prog, err := parser.ParseSource(name, source)
	if err != nil {
		err = c.fail(name, "parse", err)
		timer.StopWithError(err)
		return nil, err
	}

	if err := checkContext(ctx, "validate"); err != nil {
		timer.StopWithError(err)
		return nil, err
	}

	if err := c.validator.Validate(prog); err != nil {
		err = c.fail(name, "validate", err)
		timer.StopWithError(err)
		return nil, err
	}

	duration := timer.WithField("tasks", len(prog.Tasks)).Stop()

	return &Result{
		RunID:    runID,
		Program:  prog,
		Duration: duration,
	}, nil
}

// fail converts a phase error into the platform error type
func (c *Compiler) fail(name, phase string, err error) error {
	converted := mdwdiag.Convert(err)
	if e, ok := mdwerror.As(converted); ok {
		return e.WithOperation("tdl.Compile").
			WithDetail("source", name).
			WithDetail("phase", phase)
	}
	return converted
}

// checkContext reports cancellation before a phase starts
func checkContext(ctx context.Context, phase string) error {
	if ctx == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return mdwerror.Wrap(err, "compile canceled").
			WithCode(mdwerror.CodeCanceled).
			WithOperation("tdl.Compile").
			WithDetail("phase", phase)
	}
	return nil
}
