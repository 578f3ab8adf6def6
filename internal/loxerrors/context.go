package loxerrors

import "golang.org/x/exp/slices"

// SyntaxReporter receives diagnostics from the scanner and the parser.
type SyntaxReporter interface {
	ReportSyntaxError(err *SyntaxError)
}

// Context accumulates the errors of a single top-level run.
// It is built fresh for every run and never shared between runs.
type Context struct {
	syntaxErrors  []*SyntaxError
	runtimeErrors []*RuntimeError
}

func NewContext() *Context {
	return &Context{}
}

// ReportSyntaxError implements SyntaxReporter.
func (c *Context) ReportSyntaxError(err *SyntaxError) {
	c.syntaxErrors = append(c.syntaxErrors, err)
}

func (c *Context) ReportRuntimeError(err *RuntimeError) {
	c.runtimeErrors = append(c.runtimeErrors, err)
}

func (c *Context) HasSyntaxErrors() bool {
	return len(c.syntaxErrors) > 0
}

func (c *Context) HasRuntimeErrors() bool {
	return len(c.runtimeErrors) > 0
}

func (c *Context) SyntaxErrors() []*SyntaxError {
	return slices.Clone(c.syntaxErrors)
}

func (c *Context) RuntimeErrors() []*RuntimeError {
	return slices.Clone(c.runtimeErrors)
}

var _ SyntaxReporter = (*Context)(nil)
