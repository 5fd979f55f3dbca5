/*
File    : bhasa/parser/parser_expressions.go
*/
package parser

import "github.com/sandeepkc/bhasa/lexer"

// expression is the entry point of the precedence cascade (spec §4.2).
func (p *Parser) expression() Expr {
	return p.assignment()
}

// assignment is right-associative: `a = b = c` parses as `a = (b = c)`.
// The left-hand side has already been parsed as a full expression by the
// time `=` is seen; it is only a valid assignment target when that
// expression is a bare VariableExpr (spec §4.2) — anything else records
// InvalidAssignment and yields the already-parsed expression unchanged.
func (p *Parser) assignment() Expr {
	expr := p.logicOr()

	if p.match(lexer.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		if variable, ok := expr.(*VariableExpr); ok {
			return &AssignExpr{Name: variable.Name, Value: value}
		}
		p.errors = append(p.errors, &ParseError{
			Kind: InvalidAssignment, Line: equals.Line, Lexeme: equals.Lexeme,
			Message: "Invalid assignment target.",
		})
		return expr
	}
	return expr
}

func (p *Parser) logicOr() Expr {
	expr := p.logicAnd()
	for p.match(lexer.OR) {
		op := p.previous()
		right := p.logicAnd()
		expr = &LogicalExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) logicAnd() Expr {
	expr := p.equality()
	for p.match(lexer.AND) {
		op := p.previous()
		right := p.equality()
		expr = &LogicalExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) equality() Expr {
	expr := p.comparison()
	for p.match(lexer.BANG_EQUAL, lexer.EQUAL_EQUAL) {
		op := p.previous()
		right := p.comparison()
		expr = &BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) comparison() Expr {
	expr := p.term()
	for p.match(lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL) {
		op := p.previous()
		right := p.term()
		expr = &BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) term() Expr {
	expr := p.factor()
	for p.match(lexer.MINUS, lexer.PLUS) {
		op := p.previous()
		right := p.factor()
		expr = &BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) factor() Expr {
	expr := p.unary()
	for p.match(lexer.SLASH, lexer.STAR) {
		op := p.previous()
		right := p.unary()
		expr = &BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) unary() Expr {
	if p.match(lexer.BANG, lexer.MINUS) {
		op := p.previous()
		operand := p.unary()
		return &UnaryExpr{Op: op, Operand: operand}
	}
	return p.call()
}
