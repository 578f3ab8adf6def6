package loxerrors

import (
	"errors"
	"fmt"
)

var (
	ErrScanUnexpectedCharacter = errors.New("Unexpected character")
	ErrScanUnterminatedString  = errors.New("Unterminated string.")
)

func ErrScanUnexpectedCharacterError(c rune) error {
	return fmt.Errorf("%w '%c'.", ErrScanUnexpectedCharacter, c)
}

// NewScanError reports a lexical error. Scanner errors carry no location.
func NewScanError(line int, cause error) *SyntaxError {
	return &SyntaxError{Line: line, Where: "", cause: cause}
}
