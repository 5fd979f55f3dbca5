/*
File    : bhasa/parser/node.go
*/
package parser

import (
	"github.com/sandeepkc/bhasa/lexer"
	"github.com/sandeepkc/bhasa/objects"
)

// ExprVisitor implements the Visitor design pattern over expression
// nodes, the same shape the teacher's printer visitor used for the full
// AST (one Visit method per concrete node type). The evaluator is the
// only production implementation; a debug printer could be added the
// same way without touching the node types.
type ExprVisitor interface {
	VisitLiteralExpr(expr *LiteralExpr)
	VisitVariableExpr(expr *VariableExpr)
	VisitGroupingExpr(expr *GroupingExpr)
	VisitUnaryExpr(expr *UnaryExpr)
	VisitBinaryExpr(expr *BinaryExpr)
	VisitLogicalExpr(expr *LogicalExpr)
	VisitAssignExpr(expr *AssignExpr)
	VisitCallExpr(expr *CallExpr)
}

// StmtVisitor mirrors ExprVisitor for the statement node hierarchy.
type StmtVisitor interface {
	VisitExpressionStmt(stmt *ExpressionStmt)
	VisitPrintStmt(stmt *PrintStmt)
	VisitVarStmt(stmt *VarStmt)
	VisitBlockStmt(stmt *BlockStmt)
	VisitIfStmt(stmt *IfStmt)
	VisitWhileStmt(stmt *WhileStmt)
	VisitFunctionStmt(stmt *FunctionStmt)
	VisitReturnStmt(stmt *ReturnStmt)
}

// Expr is the base interface every expression AST node implements.
type Expr interface {
	Accept(v ExprVisitor)
}

// Stmt is the base interface every statement AST node implements.
type Stmt interface {
	Accept(v StmtVisitor)
}

// LiteralExpr wraps a compile-time-known value: a number, string,
// boolean, or null produced directly by a token.
type LiteralExpr struct {
	Value objects.Literal
}

func (e *LiteralExpr) Accept(v ExprVisitor) { v.VisitLiteralExpr(e) }

// VariableExpr reads the value bound to Name in the current environment
// chain.
type VariableExpr struct {
	Name lexer.Token
}

func (e *VariableExpr) Accept(v ExprVisitor) { v.VisitVariableExpr(e) }

// GroupingExpr is a parenthesized sub-expression, kept as its own node so
// a printer could distinguish `(1 + 2) * 3` from `1 + 2 * 3`.
type GroupingExpr struct {
	Inner Expr
}

func (e *GroupingExpr) Accept(v ExprVisitor) { v.VisitGroupingExpr(e) }

// UnaryExpr applies a prefix operator (`-` or `!`) to Operand.
type UnaryExpr struct {
	Op      lexer.Token
	Operand Expr
}

func (e *UnaryExpr) Accept(v ExprVisitor) { v.VisitUnaryExpr(e) }

// BinaryExpr applies an infix operator between Left and Right. Logical
// `and`/`or` are represented separately as LogicalExpr because they
// short-circuit instead of always evaluating both operands.
type BinaryExpr struct {
	Left  Expr
	Op    lexer.Token
	Right Expr
}

func (e *BinaryExpr) Accept(v ExprVisitor) { v.VisitBinaryExpr(e) }

// LogicalExpr applies `and`/`or`, short-circuiting before Right is
// evaluated when the result is already determined by Left.
type LogicalExpr struct {
	Left  Expr
	Op    lexer.Token
	Right Expr
}

func (e *LogicalExpr) Accept(v ExprVisitor) { v.VisitLogicalExpr(e) }

// AssignExpr assigns the result of Value to the variable Name, which the
// parser has already verified resolves to an identifier (spec §4.2).
type AssignExpr struct {
	Name  lexer.Token
	Value Expr
}

func (e *AssignExpr) Accept(v ExprVisitor) { v.VisitAssignExpr(e) }

// CallExpr invokes Callee with Arguments. ClosingParen is kept for
// runtime error reporting (it carries the line of the call site).
type CallExpr struct {
	Callee       Expr
	ClosingParen lexer.Token
	Arguments    []Expr
}

func (e *CallExpr) Accept(v ExprVisitor) { v.VisitCallExpr(e) }

// ExpressionStmt evaluates Expression and discards the result.
type ExpressionStmt struct {
	Expression Expr
}

func (s *ExpressionStmt) Accept(v StmtVisitor) { v.VisitExpressionStmt(s) }

// PrintStmt evaluates Expression and writes its Display() text followed
// by a newline to stdout.
type PrintStmt struct {
	Expression Expr
}

func (s *PrintStmt) Accept(v StmtVisitor) { v.VisitPrintStmt(s) }

// VarStmt declares Name in the current scope, bound to Initializer's
// value or Null when Initializer is absent.
type VarStmt struct {
	Name        lexer.Token
	Initializer Expr // nil when no initializer is present
}

func (s *VarStmt) Accept(v StmtVisitor) { v.VisitVarStmt(s) }

// BlockStmt introduces a new lexical scope for Statements.
type BlockStmt struct {
	Statements []Stmt
}

func (s *BlockStmt) Accept(v StmtVisitor) { v.VisitBlockStmt(s) }

// IfStmt executes Then when Condition holds and Else (if present)
// otherwise.
type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt // nil when no else branch is present
}

func (s *IfStmt) Accept(v StmtVisitor) { v.VisitIfStmt(s) }

// WhileStmt repeats Body for as long as Condition holds. The parser also
// uses WhileStmt as the desugaring target for `for` loops (spec §4.2).
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

func (s *WhileStmt) Accept(v StmtVisitor) { v.VisitWhileStmt(s) }

// FunctionStmt declares Name as a callable closing over the defining
// environment, with Params bound positionally to call arguments.
type FunctionStmt struct {
	Name   lexer.Token
	Params []lexer.Token
	Body   []Stmt
}

func (s *FunctionStmt) Accept(v StmtVisitor) { v.VisitFunctionStmt(s) }

// ReturnStmt unwinds to the nearest enclosing function call with Value's
// result, or Null when Value is absent.
type ReturnStmt struct {
	Keyword lexer.Token
	Value   Expr // nil when no value is returned
}

func (s *ReturnStmt) Accept(v StmtVisitor) { v.VisitReturnStmt(s) }
