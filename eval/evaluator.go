/*
File    : bhasa/eval/evaluator.go
*/

// Package eval implements the tree-walking executor described in spec
// §4.4: it drives a parsed statement list against a mutable environment
// chain, producing print side effects and a list of runtime diagnostics.
package eval

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/sandeepkc/bhasa/environment"
	"github.com/sandeepkc/bhasa/function"
	"github.com/sandeepkc/bhasa/objects"
	"github.com/sandeepkc/bhasa/parser"
)

// Interpreter holds the mutable state of one evaluation run: the global
// and current environment, the destination for `print` output, the
// accumulated runtime diagnostics, and a logger for stage-transition and
// per-diagnostic debug/warn lines.
//
// Expression and statement visiting cannot return a value directly
// (Accept's signature is void, matching the teacher's visitor shape), so
// VisitXxx methods stash their result in the exprValue/exprErr or
// stmtOutcome scratch fields; evaluate/execute read them back
// immediately after Accept returns. This is safe because visiting is
// synchronous and never re-entrant across goroutines.
type Interpreter struct {
	globals *environment.Environment
	env     *environment.Environment
	Out     io.Writer
	Logger  *logrus.Logger
	errors  []*RuntimeError

	exprValue objects.Literal
	exprErr   error

	stmtOutcome function.Outcome
}

// NewInterpreter creates an interpreter with a fresh global environment,
// stdout as the print destination, and a Warn-level logger. Use
// SetLogger to install a configured applog logger from the CLI layer.
func NewInterpreter() *Interpreter {
	globals := environment.NewEnvironment(nil)
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	return &Interpreter{
		globals: globals,
		env:     globals,
		Out:     os.Stdout,
		Logger:  logger,
	}
}

// SetOutput redirects `print` output, primarily for tests that capture
// stdout into a buffer.
func (it *Interpreter) SetOutput(w io.Writer) {
	it.Out = w
}

// SetLogger installs a pre-configured logger (e.g. from applog), replacing
// the default.
func (it *Interpreter) SetLogger(logger *logrus.Logger) {
	it.Logger = logger
}

// Run executes a program's statement list against the global environment
// and returns every runtime diagnostic collected along the way. Per spec
// §4.5, a runtime error is never fatal: it is recorded and execution
// continues with the next statement.
func (it *Interpreter) Run(statements []parser.Stmt) []*RuntimeError {
	it.errors = nil
	it.Logger.Debugf("eval: executing %d top-level statements", len(statements))
	for _, stmt := range statements {
		it.execute(stmt)
	}
	return it.errors
}

// evaluate visits expr and returns its value, or an error already
// recorded (or being propagated from an already-recorded error deeper in
// the tree).
func (it *Interpreter) evaluate(expr parser.Expr) (objects.Literal, error) {
	expr.Accept(it)
	return it.exprValue, it.exprErr
}

// execute visits stmt and returns the bubbled execution outcome (spec
// §9): Normal for ordinary fall-through, Returning(v) when a Return
// statement is unwinding.
func (it *Interpreter) execute(stmt parser.Stmt) function.Outcome {
	it.stmtOutcome = function.Normal
	stmt.Accept(it)
	return it.stmtOutcome
}

// ExecuteBlock runs statements against env, restoring the previous
// environment on every exit path (guaranteed-release scope per spec §5),
// and stops early the moment a Return statement bubbles up. It
// implements function.Interpreter, letting Function.Call run a body
// without function importing eval.
func (it *Interpreter) ExecuteBlock(statements []parser.Stmt, env *environment.Environment) (function.Outcome, error) {
	previous := it.env
	it.env = env
	defer func() { it.env = previous }()

	for _, stmt := range statements {
		outcome := it.execute(stmt)
		if outcome.Signal == function.SignalReturn {
			return outcome, nil
		}
	}
	return function.Normal, nil
}

// recordError converts err to a *RuntimeError if necessary, appends it to
// the diagnostic list, and logs it at Warn level. It is called exactly
// once per root cause, at the point where the error originates — callers
// further up the tree propagate the same error without re-recording it,
// per spec §4.5's "no cascading secondary error" rule.
func (it *Interpreter) recordError(err error) *RuntimeError {
	rtErr := toRuntimeError(err)
	it.errors = append(it.errors, rtErr)
	it.Logger.Warn(rtErr.Error())
	return rtErr
}

// toRuntimeError normalizes any error reaching the evaluator boundary
// (including environment.UndefinedVariableError) into a *RuntimeError.
func toRuntimeError(err error) *RuntimeError {
	if rtErr, ok := err.(*RuntimeError); ok {
		return rtErr
	}
	if undef, ok := err.(*environment.UndefinedVariableError); ok {
		return newUndefinedVariable(undef.Line, undef.Name)
	}
	return newUnexpectedError(0, err.Error())
}

// failExpr records a fresh runtime error and leaves it as the current
// expression result.
func (it *Interpreter) failExpr(err *RuntimeError) {
	it.recordError(err)
	it.exprValue = nil
	it.exprErr = err
}

// propagateExpr forwards an already-recorded error without logging it
// again.
func (it *Interpreter) propagateExpr(err error) {
	it.exprValue = nil
	it.exprErr = err
}

// okExpr sets a successful expression result.
func (it *Interpreter) okExpr(v objects.Literal) {
	it.exprValue = v
	it.exprErr = nil
}
