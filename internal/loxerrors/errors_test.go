package loxerrors_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/leonardinius/treelox/internal/loxerrors"
	"github.com/leonardinius/treelox/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyntaxErrorFormat(t *testing.T) {
	t.Parallel()

	eof := token.NewTokenHeap(token.EOF, "", nil, 3)
	semi := token.NewTokenHeap(token.SEMICOLON, ";", nil, 2)

	testcases := []struct {
		name string
		err  *loxerrors.SyntaxError
		out  string
	}{
		{"scan", loxerrors.NewScanError(1, loxerrors.ErrScanUnterminatedString), "[line 1] Error: Unterminated string."},
		{"unexpected char", loxerrors.NewScanError(4, loxerrors.ErrScanUnexpectedCharacterError('#')), "[line 4] Error: Unexpected character '#'."},
		{"at end", loxerrors.NewParseError(eof, loxerrors.ErrParseUnexpectedToken), "[line 3] Error at end: Expect expression."},
		{"at token", loxerrors.NewParseError(semi, loxerrors.ErrParseUnexpectedToken), "[line 2] Error at ';': Expect expression."},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.out, tc.err.Error())
		})
	}
}

func TestRuntimeErrorFormat(t *testing.T) {
	t.Parallel()

	name := token.NewTokenHeap(token.IDENTIFIER, "x", nil, 7)
	err := loxerrors.NewRuntimeError(name, loxerrors.ErrRuntimeUndefinedVariableError("x"))

	assert.Equal(t, "Undefined variable 'x'.\n[line 7]", err.Error())
	assert.Equal(t, "Undefined variable 'x'.", err.Message())
	assert.ErrorIs(t, err, loxerrors.ErrRuntimeUndefinedVariable)

	var rerr *loxerrors.RuntimeError
	require.True(t, errors.As(error(err), &rerr))
	assert.Same(t, name, rerr.Token)
}

func TestContextCollects(t *testing.T) {
	t.Parallel()

	ctx := loxerrors.NewContext()
	assert.False(t, ctx.HasSyntaxErrors())
	assert.False(t, ctx.HasRuntimeErrors())

	ctx.ReportSyntaxError(loxerrors.NewScanError(1, loxerrors.ErrScanUnterminatedString))
	ctx.ReportRuntimeError(loxerrors.NewRuntimeError(token.NewTokenHeap(token.SLASH, "/", nil, 1), loxerrors.ErrRuntimeDivisionByZero))

	assert.True(t, ctx.HasSyntaxErrors())
	assert.True(t, ctx.HasRuntimeErrors())
	assert.Len(t, ctx.SyntaxErrors(), 1)
	assert.Len(t, ctx.RuntimeErrors(), 1)
}

func TestReporter(t *testing.T) {
	t.Parallel()

	out := strings.Builder{}
	r := loxerrors.NewErrReporter(&out)
	r.ReportError(loxerrors.NewScanError(1, loxerrors.ErrScanUnterminatedString))
	r.ReportPanic(errors.New("boom"))

	assert.Equal(t, "[line 1] Error: Unterminated string.\nFATAL boom\n", out.String())
}
