/*
File    : bhasa/eval/eval_statements.go
*/
package eval

import (
	"fmt"

	"github.com/sandeepkc/bhasa/environment"
	"github.com/sandeepkc/bhasa/function"
	"github.com/sandeepkc/bhasa/objects"
	"github.com/sandeepkc/bhasa/parser"
)

// VisitExpressionStmt implements parser.StmtVisitor: evaluates and
// discards the result.
func (it *Interpreter) VisitExpressionStmt(stmt *parser.ExpressionStmt) {
	it.evaluate(stmt.Expression)
	it.stmtOutcome = function.Normal
}

// VisitPrintStmt implements parser.StmtVisitor (spec §4.4, §6): writes
// the evaluated value's Display() text followed by a newline to Out. A
// failed evaluation prints nothing; the diagnostic was already recorded.
func (it *Interpreter) VisitPrintStmt(stmt *parser.PrintStmt) {
	v, err := it.evaluate(stmt.Expression)
	if err == nil {
		fmt.Fprintln(it.Out, v.Display())
	}
	it.stmtOutcome = function.Normal
}

// VisitVarStmt implements parser.StmtVisitor: binds Name in the current
// scope to Initializer's value, or Null when absent (or when evaluation
// failed — the diagnostic was already recorded, and binding Null avoids
// a cascading UndefinedVariable on every later reference).
func (it *Interpreter) VisitVarStmt(stmt *parser.VarStmt) {
	var value objects.Literal = objects.Null{}
	if stmt.Initializer != nil {
		if v, err := it.evaluate(stmt.Initializer); err == nil {
			value = v
		}
	}
	it.env.Define(stmt.Name.Lexeme, value)
	it.stmtOutcome = function.Normal
}

// VisitBlockStmt implements parser.StmtVisitor: runs Statements in a
// fresh scope enclosed by the current environment.
func (it *Interpreter) VisitBlockStmt(stmt *parser.BlockStmt) {
	blockEnv := environment.NewEnvironment(it.env)
	outcome, _ := it.ExecuteBlock(stmt.Statements, blockEnv)
	it.stmtOutcome = outcome
}

// VisitIfStmt implements parser.StmtVisitor. Spec §9 open question
// resolved: general truthiness governs the branch taken, matching
// While's rule rather than the source's stricter `Boolean(true)`-only
// check (see DESIGN.md).
func (it *Interpreter) VisitIfStmt(stmt *parser.IfStmt) {
	cond, err := it.evaluate(stmt.Condition)
	if err != nil {
		it.stmtOutcome = function.Normal
		return
	}

	switch {
	case objects.IsTruthy(cond):
		it.stmtOutcome = it.execute(stmt.Then)
	case stmt.Else != nil:
		it.stmtOutcome = it.execute(stmt.Else)
	default:
		it.stmtOutcome = function.Normal
	}
}

// VisitWhileStmt implements parser.StmtVisitor (spec §4.4): repeats Body
// while Condition is truthy. A condition evaluation failure terminates
// the loop rather than retrying it.
func (it *Interpreter) VisitWhileStmt(stmt *parser.WhileStmt) {
	for {
		cond, err := it.evaluate(stmt.Condition)
		if err != nil || !objects.IsTruthy(cond) {
			it.stmtOutcome = function.Normal
			return
		}

		outcome := it.execute(stmt.Body)
		if outcome.Signal == function.SignalReturn {
			it.stmtOutcome = outcome
			return
		}
	}
}

// VisitFunctionStmt implements parser.StmtVisitor (spec §4.4): builds a
// callable closing over the current environment and binds it to Name.
func (it *Interpreter) VisitFunctionStmt(stmt *parser.FunctionStmt) {
	fn := function.New(stmt, it.env)
	it.env.Define(stmt.Name.Lexeme, objects.Function{Callable: fn, Name: fn.Name()})
	it.stmtOutcome = function.Normal
}

// VisitReturnStmt implements parser.StmtVisitor (spec §4.4, §9): bubbles
// Value (or Null when absent) up as a Returning outcome, unwinding every
// enclosing block until Function.Call catches it.
func (it *Interpreter) VisitReturnStmt(stmt *parser.ReturnStmt) {
	var value objects.Literal = objects.Null{}
	if stmt.Value != nil {
		if v, err := it.evaluate(stmt.Value); err == nil {
			value = v
		}
	}
	it.stmtOutcome = function.Returning(value)
}
