package interpreter

import (
	"io"
	"log/slog"
	"os"
)

type interpreterOpts struct {
	globals *environment
	stdout  io.Writer
	logger  *slog.Logger
}

var defaultInterpreterOpts = interpreterOpts{
	stdout: os.Stdout,
}

type InterpreterOption func(*interpreterOpts)

// WithGlobals sets the top-level scope. It outlives every Run call on the
// interpreter, which is what lets REPL lines see each other's variables.
func WithGlobals(globals *environment) InterpreterOption {
	return func(opts *interpreterOpts) {
		opts.globals = globals
	}
}

// WithStdout redirects the output of print statements.
func WithStdout(stdout io.Writer) InterpreterOption {
	return func(opts *interpreterOpts) {
		opts.stdout = stdout
	}
}

func WithLogger(logger *slog.Logger) InterpreterOption {
	return func(opts *interpreterOpts) {
		opts.logger = logger
	}
}

func newInterpreterOpts(options ...InterpreterOption) *interpreterOpts {
	opts := defaultInterpreterOpts
	for _, opt := range options {
		opt(&opts)
	}

	if opts.globals == nil {
		opts.globals = NewEnvironment()
	}
	if opts.logger == nil {
		opts.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &opts
}
