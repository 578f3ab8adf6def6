package loxerrors

import (
	"errors"
	"fmt"

	"github.com/leonardinius/treelox/internal/token"
)

var (
	ErrRuntimeOperandMustBeNumber              = errors.New("Operand must be a number.")
	ErrRuntimeOperandsMustBeNumbers            = errors.New("Operands must be numbers.")
	ErrRuntimeOperandsMustBeNumbersOrOneString = errors.New("Operands must be two numbers or at least one string.")
	ErrRuntimeDivisionByZero                   = errors.New("Division by zero.")
	ErrRuntimeUndefinedVariable                = errors.New("Undefined variable")
	ErrRuntimeUnsupportedOperator              = errors.New("Unsupported operator.")
	ErrRuntimeOutputFailed                     = errors.New("Cannot write output")
)

func ErrRuntimeOutputFailedError(cause error) error {
	return fmt.Errorf("%w: %w.", ErrRuntimeOutputFailed, cause)
}

func ErrRuntimeUndefinedVariableError(name string) error {
	return fmt.Errorf("%w '%s'.", ErrRuntimeUndefinedVariable, name)
}

func NewRuntimeError(tok *token.Token, cause error) *RuntimeError {
	return &RuntimeError{Token: tok, cause: cause}
}

// RuntimeError aborts the current run. Token locates the offending operator or name.
type RuntimeError struct {
	Token *token.Token
	cause error
}

// Message is the bare diagnostic text, without the line trailer.
func (r *RuntimeError) Message() string {
	return r.cause.Error()
}

// Error implements error.
func (r *RuntimeError) Error() string {
	return fmt.Sprintf("%v\n[line %d]", r.cause, r.Token.Line)
}

func (r *RuntimeError) Unwrap() error {
	return r.cause
}

var _ error = (*RuntimeError)(nil)
var _ wrapper = (*RuntimeError)(nil)
