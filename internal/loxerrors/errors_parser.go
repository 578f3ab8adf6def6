package loxerrors

import (
	"errors"
	"fmt"

	"github.com/leonardinius/treelox/internal/token"
)

var (
	ErrParseUnexpectedToken                       = errors.New("Expect expression.")
	ErrParseUnexpectedVariableName                = errors.New("Expect variable name.")
	ErrParseInvalidAssignmentTarget               = errors.New("Invalid assignment target.")
	ErrParseExpectedRightParenToken               = errors.New("Expect ')' after expression.")
	ErrParseExpectedColonTernaryToken             = errors.New("Expect ':' in ternary.")
	ErrParseExpectedLeftParentIfToken             = errors.New("Expect '(' after 'if'.")
	ErrParseExpectedRightParentIfToken            = errors.New("Expect ')' after if condition.")
	ErrParseExpectedLeftParentWhileToken          = errors.New("Expect '(' after 'while'.")
	ErrParseExpectedRightParentWhileToken         = errors.New("Expect ')' after condition.")
	ErrParseExpectedLeftParentForToken            = errors.New("Expect '(' after 'for'.")
	ErrParseExpectedRightParentForToken           = errors.New("Expect ')' after for clauses.")
	ErrParseExpectedRightCurlyBlockToken          = errors.New("Expect '}' after block.")
	ErrParseExpectedSemicolonTokenAfterPrintValue = errors.New("Expect ';' after value.")
	ErrParseExpectedSemicolonTokenAfterExpr       = errors.New("Expect ';' after expression.")
	ErrParseExpectedSemicolonTokenAfterVar        = errors.New("Expect ';' after variable declaration.")
	ErrParseExpectedSemicolonAfterForLoopCond     = errors.New("Expect ';' after loop condition.")
	ErrParseExpectedEndOfExpression               = errors.New("Expect end of expression.")
)

// NewParseError reports a grammar violation at tok.
func NewParseError(tok *token.Token, cause error) *SyntaxError {
	where := " at end"
	if tok.Type != token.EOF {
		where = fmt.Sprintf(" at '%s'", tok.Lexeme)
	}
	return &SyntaxError{Line: tok.Line, Where: where, cause: cause}
}
