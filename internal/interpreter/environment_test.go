package interpreter

import (
	"testing"

	"github.com/leonardinius/treelox/internal/loxerrors"
	"github.com/leonardinius/treelox/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identifier(name string) *token.Token {
	return token.NewTokenHeap(token.IDENTIFIER, name, nil, 1)
}

func TestEnvironmentDefineGet(t *testing.T) {
	t.Parallel()

	env := NewEnvironment()
	env.Define("a", ValueFloat(1))

	value, err := env.Get(identifier("a"))
	require.NoError(t, err)
	assert.Equal(t, ValueFloat(1), value)

	env.Define("a", ValueString("redefined"))
	value, err = env.Get(identifier("a"))
	require.NoError(t, err)
	assert.Equal(t, ValueString("redefined"), value)
}

func TestEnvironmentShadowing(t *testing.T) {
	t.Parallel()

	outer := NewEnvironment()
	outer.Define("a", ValueString("outer"))
	inner := outer.Nest()
	inner.Define("a", ValueString("inner"))

	value, err := inner.Get(identifier("a"))
	require.NoError(t, err)
	assert.Equal(t, ValueString("inner"), value)

	value, err = outer.Get(identifier("a"))
	require.NoError(t, err)
	assert.Equal(t, ValueString("outer"), value)
	assert.Same(t, outer, inner.Enclosing())
}

func TestEnvironmentAssignWalksChain(t *testing.T) {
	t.Parallel()

	outer := NewEnvironment()
	outer.Define("a", ValueFloat(1))
	inner := outer.Nest().Nest()

	require.NoError(t, inner.Assign(identifier("a"), ValueFloat(2)))

	value, err := outer.Get(identifier("a"))
	require.NoError(t, err)
	assert.Equal(t, ValueFloat(2), value)
	assert.NotContains(t, inner.values, "a")
}

func TestEnvironmentUndefined(t *testing.T) {
	t.Parallel()

	env := NewEnvironment().Nest()

	_, err := env.Get(identifier("missing"))
	require.ErrorIs(t, err, loxerrors.ErrRuntimeUndefinedVariable)
	assert.EqualError(t, err, "Undefined variable 'missing'.\n[line 1]")

	err = env.Assign(identifier("missing"), NilValue)
	require.ErrorIs(t, err, loxerrors.ErrRuntimeUndefinedVariable)

	var runtimeErr *loxerrors.RuntimeError
	require.ErrorAs(t, err, &runtimeErr)
	assert.Equal(t, "missing", runtimeErr.Token.Lexeme)
}

func TestEnvironmentString(t *testing.T) {
	t.Parallel()

	env := NewEnvironment()
	env.Define("a", ValueFloat(1))
	inner := env.Nest()
	inner.Define("b", ValueBool(true))

	assert.Equal(t, "{b=true,} -> {a=1,}", inner.String())
}

func TestIsTruthy(t *testing.T) {
	t.Parallel()

	assert.False(t, isTruthy(nil))
	assert.False(t, isTruthy(NilValue))
	assert.False(t, isTruthy(ValueBool(false)))
	assert.True(t, isTruthy(ValueBool(true)))
	assert.True(t, isTruthy(ValueFloat(0)))
	assert.True(t, isTruthy(EmptyStringValue))
}

func TestIsEqual(t *testing.T) {
	t.Parallel()

	assert.True(t, isEqual(NilValue, NilValue))
	assert.True(t, isEqual(ValueFloat(0), ValueFloat(-0.0)))
	assert.True(t, isEqual(ValueString("a"), ValueString("a")))
	assert.False(t, isEqual(ValueFloat(1), ValueString("1")))
	assert.False(t, isEqual(NilValue, ValueBool(false)))
}
