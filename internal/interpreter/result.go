package interpreter

import "github.com/leonardinius/treelox/internal/loxerrors"

// Result is the outcome of one top-level run.
type Result struct {
	// Value is the value of the last executed statement, or nil when the
	// run stopped on an error.
	Value Value

	// Expression reports whether the run ended with an expression
	// statement (or was a bare expression), i.e. whether Value is worth echoing.
	Expression bool

	SyntaxErrors  []*loxerrors.SyntaxError
	RuntimeErrors []*loxerrors.RuntimeError
}

func newResult(ctx *loxerrors.Context, value Value, expression bool) *Result {
	return &Result{
		Value:         value,
		Expression:    expression,
		SyntaxErrors:  ctx.SyntaxErrors(),
		RuntimeErrors: ctx.RuntimeErrors(),
	}
}

func (r *Result) HasSyntaxErrors() bool {
	return len(r.SyntaxErrors) > 0
}

func (r *Result) HasRuntimeErrors() bool {
	return len(r.RuntimeErrors) > 0
}

// Errors lists syntax errors first, then runtime errors, each in report order.
func (r *Result) Errors() []error {
	errs := make([]error, 0, len(r.SyntaxErrors)+len(r.RuntimeErrors))
	for _, err := range r.SyntaxErrors {
		errs = append(errs, err)
	}
	for _, err := range r.RuntimeErrors {
		errs = append(errs, err)
	}
	return errs
}
