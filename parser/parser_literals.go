/*
File    : bhasa/parser/parser_literals.go
*/
package parser

import (
	"github.com/sandeepkc/bhasa/lexer"
	"github.com/sandeepkc/bhasa/objects"
)

// primary parses the terminal productions of the grammar: literals,
// identifiers, and parenthesized expressions (spec §4.2).
func (p *Parser) primary() Expr {
	switch {
	case p.match(lexer.FALSE):
		return &LiteralExpr{Value: objects.Boolean{Value: false}}
	case p.match(lexer.TRUE):
		return &LiteralExpr{Value: objects.Boolean{Value: true}}
	case p.match(lexer.NULL):
		return &LiteralExpr{Value: objects.Null{}}
	case p.match(lexer.NUMBER):
		tok := p.previous()
		n, ok := tok.Value.(float64)
		if !ok {
			p.abort(InvalidLiteral, "Invalid literal.")
		}
		return &LiteralExpr{Value: objects.Number{Value: n}}
	case p.match(lexer.STRING):
		tok := p.previous()
		s, ok := tok.Value.(string)
		if !ok {
			p.abort(InvalidLiteral, "Invalid literal.")
		}
		return &LiteralExpr{Value: objects.String{Value: s}}
	case p.match(lexer.IDENTIFIER):
		return &VariableExpr{Name: p.previous()}
	case p.match(lexer.LEFT_PAREN):
		expr := p.expression()
		p.consume(lexer.RIGHT_PAREN, UnclosedParen, "Expected ')' after expression.")
		return &GroupingExpr{Inner: expr}
	}

	p.abort(ExpectedExpression, "Expected expression.")
	return nil // unreachable: abort panics
}
