package interpreter

import (
	"fmt"
	"strings"

	"github.com/leonardinius/treelox/internal/loxerrors"
	"github.com/leonardinius/treelox/internal/token"
)

// environment is one lexical scope. enclosing is borrowed: a child scope
// never outlives the block that created it, so the chain stays acyclic.
type environment struct {
	enclosing *environment
	values    map[string]Value
}

func NewEnvironment() *environment {
	return &environment{}
}

// Define binds name in this scope, shadowing any outer binding.
// Redefinition in the same scope overwrites.
func (e *environment) Define(name string, value Value) {
	if e.values == nil {
		e.values = make(map[string]Value)
	}
	e.values[name] = value
}

func (e *environment) Get(name *token.Token) (Value, error) {
	for self := e; self != nil; self = self.enclosing {
		if value, ok := self.values[name.Lexeme]; ok {
			return value, nil
		}
	}

	return nil, e.undefinedVariable(name)
}

func (e *environment) Assign(name *token.Token, value Value) error {
	for self := e; self != nil; self = self.enclosing {
		if _, ok := self.values[name.Lexeme]; ok {
			self.values[name.Lexeme] = value
			return nil
		}
	}

	return e.undefinedVariable(name)
}

func (e *environment) Nest() *environment {
	env := NewEnvironment()
	env.enclosing = e
	return env
}

func (e *environment) Enclosing() *environment {
	return e.enclosing
}

func (e *environment) undefinedVariable(name *token.Token) error {
	return loxerrors.NewRuntimeError(name, loxerrors.ErrRuntimeUndefinedVariableError(name.Lexeme))
}

func (e *environment) String() string {
	w := new(strings.Builder)

	for self := e; self != nil; self = self.enclosing {
		w.WriteString("{")
		for k, v := range self.values {
			fmt.Fprintf(w, "%s=%v,", k, v)
		}
		w.WriteString("}")
		if self.enclosing != nil {
			w.WriteString(" -> ")
		}
	}

	return w.String()
}

var _ fmt.Stringer = (*environment)(nil)
