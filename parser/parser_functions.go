/*
File    : bhasa/parser/parser_functions.go
*/
package parser

import "github.com/sandeepkc/bhasa/lexer"

// call parses a primary expression followed by zero or more call
// applications, supporting chained calls like `make(1)(2)`.
func (p *Parser) call() Expr {
	expr := p.primary()

	for p.match(lexer.LEFT_PAREN) {
		expr = p.finishCall(expr)
	}
	return expr
}

func (p *Parser) finishCall(callee Expr) Expr {
	var args []Expr
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(args) >= maxArgs {
				p.fail(MaxFunctionArguments, "Cannot have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	closingParen := p.consume(lexer.RIGHT_PAREN, UnclosedParen, "Expected ')' after arguments.")
	return &CallExpr{Callee: callee, ClosingParen: closingParen, Arguments: args}
}
