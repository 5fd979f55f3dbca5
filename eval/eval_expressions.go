/*
File    : bhasa/eval/eval_expressions.go
*/
package eval

import (
	"fmt"

	"github.com/sandeepkc/bhasa/lexer"
	"github.com/sandeepkc/bhasa/objects"
	"github.com/sandeepkc/bhasa/parser"
)

// VisitLiteralExpr implements parser.ExprVisitor: a literal evaluates to
// itself.
func (it *Interpreter) VisitLiteralExpr(expr *parser.LiteralExpr) {
	it.okExpr(expr.Value)
}

// VisitGroupingExpr implements parser.ExprVisitor: a parenthesized
// expression evaluates to its inner expression's value.
func (it *Interpreter) VisitGroupingExpr(expr *parser.GroupingExpr) {
	v, err := it.evaluate(expr.Inner)
	if err != nil {
		it.propagateExpr(err)
		return
	}
	it.okExpr(v)
}

// VisitVariableExpr implements parser.ExprVisitor (spec §4.4): reads
// Name from the environment chain. A stored Null is treated as an
// uninitialized read and reported as UnassignedVariable (spec §9 open
// question, resolved to keep the source's conflation of the two cases).
func (it *Interpreter) VisitVariableExpr(expr *parser.VariableExpr) {
	v, err := it.env.Get(expr.Name)
	if err != nil {
		it.failExpr(toRuntimeError(err))
		return
	}
	if _, isNull := v.(objects.Null); isNull {
		it.failExpr(newUnassignedVariable(expr.Name.Line, expr.Name.Lexeme))
		return
	}
	it.okExpr(v)
}

// VisitUnaryExpr implements parser.ExprVisitor (spec §4.4): `-` negates a
// Number, `!` inverts a Boolean; any other operand is a TypeMismatch.
func (it *Interpreter) VisitUnaryExpr(expr *parser.UnaryExpr) {
	operand, err := it.evaluate(expr.Operand)
	if err != nil {
		it.propagateExpr(err)
		return
	}

	switch expr.Op.Kind {
	case lexer.MINUS:
		n, ok := operand.(objects.Number)
		if !ok {
			it.failExpr(newTypeMismatch(expr.Op.Line, "Operand must be a number."))
			return
		}
		it.okExpr(objects.Number{Value: -n.Value})
	case lexer.BANG:
		b, ok := operand.(objects.Boolean)
		if !ok {
			it.failExpr(newTypeMismatch(expr.Op.Line, "Operand must be a boolean."))
			return
		}
		it.okExpr(objects.Boolean{Value: !b.Value})
	default:
		it.failExpr(newUnsupportedOperator(expr.Op.Line, string(expr.Op.Kind)))
	}
}

// VisitBinaryExpr implements parser.ExprVisitor, dispatching on the
// operator per spec §4.4.
func (it *Interpreter) VisitBinaryExpr(expr *parser.BinaryExpr) {
	left, err := it.evaluate(expr.Left)
	if err != nil {
		it.propagateExpr(err)
		return
	}
	right, err := it.evaluate(expr.Right)
	if err != nil {
		it.propagateExpr(err)
		return
	}

	switch expr.Op.Kind {
	case lexer.PLUS:
		it.evalPlus(expr.Op, left, right)
	case lexer.MINUS:
		it.evalArithmetic(expr.Op, left, right, func(a, b float64) float64 { return a - b })
	case lexer.STAR:
		it.evalArithmetic(expr.Op, left, right, func(a, b float64) float64 { return a * b })
	case lexer.SLASH:
		it.evalDivide(expr.Op, left, right)
	case lexer.GREATER:
		it.evalComparison(expr.Op, left, right, func(a, b float64) bool { return a > b })
	case lexer.GREATER_EQUAL:
		it.evalComparison(expr.Op, left, right, func(a, b float64) bool { return a >= b })
	case lexer.LESS:
		it.evalComparison(expr.Op, left, right, func(a, b float64) bool { return a < b })
	case lexer.LESS_EQUAL:
		it.evalComparison(expr.Op, left, right, func(a, b float64) bool { return a <= b })
	case lexer.EQUAL_EQUAL:
		it.okExpr(objects.Boolean{Value: objects.Equals(left, right)})
	case lexer.BANG_EQUAL:
		it.okExpr(objects.Boolean{Value: !objects.Equals(left, right)})
	default:
		it.failExpr(newUnsupportedOperator(expr.Op.Line, string(expr.Op.Kind)))
	}
}

// evalPlus implements the `+` overload set: Number+Number adds,
// String+String concatenates, and a Number mixed with a String
// concatenates using the number's canonical decimal text.
func (it *Interpreter) evalPlus(op lexer.Token, left, right objects.Literal) {
	ln, lIsNum := left.(objects.Number)
	rn, rIsNum := right.(objects.Number)
	if lIsNum && rIsNum {
		it.okExpr(objects.Number{Value: ln.Value + rn.Value})
		return
	}

	ls, lIsStr := left.(objects.String)
	rs, rIsStr := right.(objects.String)
	switch {
	case lIsStr && rIsStr:
		it.okExpr(objects.String{Value: ls.Value + rs.Value})
	case lIsStr && rIsNum:
		it.okExpr(objects.String{Value: ls.Value + rn.Display()})
	case lIsNum && rIsStr:
		it.okExpr(objects.String{Value: ln.Display() + rs.Value})
	default:
		it.failExpr(newTypeMismatch(op.Line, "Operands must be two numbers or two strings."))
	}
}

// evalArithmetic implements `-` and `*`: both operands must be Number.
func (it *Interpreter) evalArithmetic(op lexer.Token, left, right objects.Literal, apply func(a, b float64) float64) {
	ln, rn, ok := it.bothNumbers(op, left, right)
	if !ok {
		return
	}
	it.okExpr(objects.Number{Value: apply(ln, rn)})
}

// evalDivide implements `/`: both operands Number, zero divisor is
// DivisionByZero.
func (it *Interpreter) evalDivide(op lexer.Token, left, right objects.Literal) {
	ln, rn, ok := it.bothNumbers(op, left, right)
	if !ok {
		return
	}
	if rn == 0 {
		it.failExpr(newDivisionByZero(op.Line))
		return
	}
	it.okExpr(objects.Number{Value: ln / rn})
}

// evalComparison implements `>`, `>=`, `<`, `<=`: both operands Number,
// result is Boolean.
func (it *Interpreter) evalComparison(op lexer.Token, left, right objects.Literal, apply func(a, b float64) bool) {
	ln, rn, ok := it.bothNumbers(op, left, right)
	if !ok {
		return
	}
	it.okExpr(objects.Boolean{Value: apply(ln, rn)})
}

// bothNumbers extracts both operands as float64, failing with
// TypeMismatch if either is not a Number.
func (it *Interpreter) bothNumbers(op lexer.Token, left, right objects.Literal) (float64, float64, bool) {
	ln, lok := left.(objects.Number)
	rn, rok := right.(objects.Number)
	if !lok || !rok {
		it.failExpr(newTypeMismatch(op.Line, "Operands must be numbers."))
		return 0, 0, false
	}
	return ln.Value, rn.Value, true
}

// VisitLogicalExpr implements parser.ExprVisitor (spec §4.4): evaluates
// Left, and short-circuits without evaluating Right when the result is
// already determined by Left's truthiness.
func (it *Interpreter) VisitLogicalExpr(expr *parser.LogicalExpr) {
	left, err := it.evaluate(expr.Left)
	if err != nil {
		it.propagateExpr(err)
		return
	}

	if expr.Op.Kind == lexer.OR {
		if objects.IsTruthy(left) {
			it.okExpr(left)
			return
		}
	} else {
		if !objects.IsTruthy(left) {
			it.okExpr(left)
			return
		}
	}

	right, err := it.evaluate(expr.Right)
	if err != nil {
		it.propagateExpr(err)
		return
	}
	it.okExpr(right)
}

// VisitAssignExpr implements parser.ExprVisitor (spec §4.4): evaluates
// Value and writes it to the nearest enclosing scope already binding
// Name.
func (it *Interpreter) VisitAssignExpr(expr *parser.AssignExpr) {
	v, err := it.evaluate(expr.Value)
	if err != nil {
		it.propagateExpr(err)
		return
	}
	if err := it.env.Assign(expr.Name, v); err != nil {
		it.failExpr(toRuntimeError(err))
		return
	}
	it.okExpr(v)
}

// VisitCallExpr implements parser.ExprVisitor (spec §4.4): evaluates the
// callee and arguments left-to-right, enforces arity, and invokes the
// callable.
func (it *Interpreter) VisitCallExpr(expr *parser.CallExpr) {
	callee, err := it.evaluate(expr.Callee)
	if err != nil {
		it.propagateExpr(err)
		return
	}

	fn, ok := callee.(objects.Function)
	if !ok {
		it.failExpr(newTypeMismatch(expr.ClosingParen.Line, "Can only call functions and classes."))
		return
	}

	arguments := make([]objects.Literal, 0, len(expr.Arguments))
	for _, argExpr := range expr.Arguments {
		arg, err := it.evaluate(argExpr)
		if err != nil {
			it.propagateExpr(err)
			return
		}
		arguments = append(arguments, arg)
	}

	if len(arguments) != fn.Callable.Arity() {
		it.failExpr(newArgumentMismatch(expr.ClosingParen.Line,
			fmt.Sprintf("Expected %d arguments but got %d.", fn.Callable.Arity(), len(arguments))))
		return
	}

	result, err := fn.Callable.Call(it, arguments)
	if err != nil {
		it.failExpr(toRuntimeError(err))
		return
	}
	it.okExpr(result)
}
