package loxerrors

import "fmt"

// SyntaxError is a scanner or parser diagnostic.
type SyntaxError struct {
	Line  int
	Where string
	cause error
}

// Message is the bare diagnostic text, without line and location.
func (s *SyntaxError) Message() string {
	return s.cause.Error()
}

// Error implements error.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %v", s.Line, s.Where, s.cause)
}

func (s *SyntaxError) Unwrap() error {
	return s.cause
}

var _ error = (*SyntaxError)(nil)
var _ wrapper = (*SyntaxError)(nil)

// wrapper is what errors.Unwrap looks for.
type wrapper interface {
	Unwrap() error
}
