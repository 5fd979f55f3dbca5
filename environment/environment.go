/*
File    : bhasa/environment/environment.go
*/

// Package environment implements bhasa's nested name→value scope chain
// (spec §3, §4.3): the data structure that backs variable declaration,
// lookup, and assignment for both block scoping and function closures.
package environment

import (
	"fmt"

	"github.com/sandeepkc/bhasa/lexer"
	"github.com/sandeepkc/bhasa/objects"
)

// UndefinedVariableError is returned by Get and Assign when name is not
// bound anywhere in the scope chain (spec §4.3 invariants).
type UndefinedVariableError struct {
	Name string
	Line int
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("Undefined variable '%s'.", e.Name)
}

// Environment is one lexical scope: a flat map of bindings plus a pointer
// to the enclosing scope. A fresh Environment is created on entry to a
// block or function call and discarded on exit (spec §3). Functions
// retain a pointer to their defining Environment to implement closures,
// which is why this is a heap-linked chain rather than a stack.
type Environment struct {
	values    map[string]objects.Literal
	Enclosing *Environment
}

// NewEnvironment creates a scope. Pass nil for enclosing to create the
// global scope.
func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{
		values:    make(map[string]objects.Literal),
		Enclosing: enclosing,
	}
}

// Define unconditionally writes name into this scope, the innermost one.
// Redefining a name already present in the same scope is permitted and
// overwrites the previous binding (spec §4.3).
func (e *Environment) Define(name string, value objects.Literal) {
	e.values[name] = value
}

// Get walks the scope chain outward from e until name is found, or
// returns UndefinedVariableError once the chain is exhausted (spec §4.3).
func (e *Environment) Get(name lexer.Token) (objects.Literal, error) {
	if value, ok := e.values[name.Lexeme]; ok {
		return value, nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Get(name)
	}
	return nil, &UndefinedVariableError{Name: name.Lexeme, Line: name.Line}
}

// Assign writes value into the nearest scope in the chain (starting at e)
// that already has a binding for name, leaving scopes further out
// untouched. It fails with UndefinedVariableError if no scope in the
// chain has name — assignment never creates a new binding (spec §4.3).
func (e *Environment) Assign(name lexer.Token, value objects.Literal) error {
	if _, ok := e.values[name.Lexeme]; ok {
		e.values[name.Lexeme] = value
		return nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Assign(name, value)
	}
	return &UndefinedVariableError{Name: name.Lexeme, Line: name.Line}
}
