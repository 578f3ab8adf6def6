package interpreter

import (
	"strconv"

	"github.com/leonardinius/treelox/internal/token"
)

type ValueType uint

const (
	ValueNilType ValueType = iota
	ValueBoolType
	ValueFloatType
	ValueStringType
)

// Value is a runtime value. The set of implementations is closed:
// nil, boolean, number and string.
type Value interface {
	Type() ValueType
	String() string
}

type (
	ValueNil    struct{}
	ValueBool   bool
	ValueFloat  float64
	ValueString string
)

var (
	NilValue         = ValueNil{}
	EmptyStringValue = ValueString("")
)

// Type implements Value.
func (v ValueNil) Type() ValueType {
	return ValueNilType
}

// Type implements Value.
func (v ValueBool) Type() ValueType {
	return ValueBoolType
}

// Type implements Value.
func (v ValueFloat) Type() ValueType {
	return ValueFloatType
}

// Type implements Value.
func (v ValueString) Type() ValueType {
	return ValueStringType
}

// String implements fmt.Stringer.
func (v ValueNil) String() string {
	return "nil"
}

// String implements fmt.Stringer.
func (v ValueBool) String() string {
	return strconv.FormatBool(bool(v))
}

// String implements fmt.Stringer.
func (v ValueFloat) String() string {
	return token.FormatNumber(float64(v))
}

// String implements fmt.Stringer.
func (v ValueString) String() string {
	return string(v)
}

// literalValue converts a parser literal (nil, bool, float64, string).
func literalValue(literal any) Value {
	switch v := literal.(type) {
	case nil:
		return NilValue
	case bool:
		return ValueBool(v)
	case float64:
		return ValueFloat(v)
	case string:
		return ValueString(v)
	}
	panic("unreachable: unsupported literal")
}

func isTruthy(value Value) bool {
	switch v := value.(type) {
	case nil, ValueNil:
		return false
	case ValueBool:
		return bool(v)
	}
	return true
}

// isEqual compares kind and value. Values of different kinds are never equal.
func isEqual(left, right Value) bool {
	return left == right
}

var (
	_ Value = ValueNil{}
	_ Value = ValueBool(false)
	_ Value = ValueFloat(0)
	_ Value = ValueString("")
)
