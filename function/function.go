/*
File    : bhasa/function/function.go
*/

// Package function implements the Callable capability for user-defined
// bhasa functions (spec §3, §4.4 "Function call execution"), including
// the non-local return mechanism described in spec §9: a sum-typed
// execution outcome bubbled up through every statement, caught at the
// function-call boundary.
package function

import (
	"fmt"

	"github.com/sandeepkc/bhasa/environment"
	"github.com/sandeepkc/bhasa/objects"
	"github.com/sandeepkc/bhasa/parser"
)

// Signal distinguishes plain fall-through statement execution from an
// in-flight `return`.
type Signal int

const (
	// SignalNone means execution reached the end of the statement
	// normally; Value is meaningless.
	SignalNone Signal = iota
	// SignalReturn means a Return statement is unwinding; Value holds
	// its result.
	SignalReturn
)

// Outcome is the sum type `Normal | Returning(Literal)` from spec §9,
// returned by every statement execution so a Return can bubble through
// arbitrarily many enclosing blocks without using panic/recover.
type Outcome struct {
	Signal Signal
	Value  objects.Literal
}

// Normal is the outcome of a statement that completed without returning.
var Normal = Outcome{Signal: SignalNone}

// Returning builds the outcome a Return statement produces.
func Returning(value objects.Literal) Outcome {
	return Outcome{Signal: SignalReturn, Value: value}
}

// Interpreter is the capability Function needs from the evaluator to run
// its body: execute a statement list against a fresh environment whose
// enclosing scope is the function's captured closure. Declaring this
// interface here (rather than importing the eval package) keeps
// function free of a dependency cycle — eval.Interpreter satisfies it
// structurally.
type Interpreter interface {
	ExecuteBlock(statements []parser.Stmt, env *environment.Environment) (Outcome, error)
}

// Function is the runtime representation of a user-defined function: its
// declaration and the environment it closed over at definition time
// (spec §3 Callable, §4.4 closures).
type Function struct {
	Declaration *parser.FunctionStmt
	Closure     *environment.Environment
}

// New wraps a parsed FunctionStmt and its defining environment into a
// callable.
func New(declaration *parser.FunctionStmt, closure *environment.Environment) *Function {
	return &Function{Declaration: declaration, Closure: closure}
}

// Arity implements objects.Callable.
func (f *Function) Arity() int {
	return len(f.Declaration.Params)
}

// Name returns the function's declared name, used for Display and error
// messages.
func (f *Function) Name() string {
	return f.Declaration.Name.Lexeme
}

// Call implements objects.Callable. It binds each parameter to the
// corresponding already-evaluated argument (arity is enforced by the
// caller, so argument count always matches param count here) and
// executes the body as a block whose enclosing scope is the closure, not
// the caller's environment — this is what makes closures capture their
// defining scope rather than their call site.
func (f *Function) Call(interp interface{}, arguments []objects.Literal) (objects.Literal, error) {
	it, ok := interp.(Interpreter)
	if !ok {
		return nil, fmt.Errorf("function: interpreter %T does not implement function.Interpreter", interp)
	}

	callEnv := environment.NewEnvironment(f.Closure)
	for i, param := range f.Declaration.Params {
		callEnv.Define(param.Lexeme, arguments[i])
	}

	outcome, err := it.ExecuteBlock(f.Declaration.Body, callEnv)
	if err != nil {
		return nil, err
	}
	if outcome.Signal == SignalReturn {
		return outcome.Value, nil
	}
	// Absent a return, the result is Null (spec §4.4).
	return objects.Null{}, nil
}
