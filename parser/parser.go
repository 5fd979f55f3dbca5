/*
File    : bhasa/parser/parser.go
*/

// Package parser implements a recursive-descent parser for bhasa,
// turning the lexer's token stream into a statement list following the
// precedence cascade in spec §4.2. Parse errors are collected rather than
// raised to the caller: a malformed declaration triggers panic-mode
// synchronize and parsing continues with the next one (spec §4.5).
package parser

import (
	"github.com/sandeepkc/bhasa/lexer"
	"github.com/sandeepkc/bhasa/objects"
)

const maxArgs = 255

// Parser holds the token stream and cursor for a single parse run. Like
// the teacher's Pratt parser, a Parser is single-use: construct with
// NewParser and call Parse once.
type Parser struct {
	tokens  []lexer.Token
	current int
	errors  []*ParseError
}

// NewParser creates a Parser over an already-scanned token stream.
func NewParser(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// parseError is raised internally by consume/expr helpers to unwind the
// current declaration to synchronize(); it never escapes Parse.
type parseError struct{ err *ParseError }

// Parse runs the parser to completion, returning every successfully
// parsed top-level statement and the accumulated diagnostics. A
// synchronized-past declaration contributes no statement.
func (p *Parser) Parse() ([]Stmt, []*ParseError) {
	var statements []Stmt
	for !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	return statements, p.errors
}

// ---- token cursor helpers ----

func (p *Parser) peek() lexer.Token     { return p.tokens[p.current] }
func (p *Parser) previous() lexer.Token { return p.tokens[p.current-1] }
func (p *Parser) isAtEnd() bool         { return p.peek().Kind == lexer.EOF_TYPE }

func (p *Parser) check(kind lexer.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

// match advances and returns true if the current token's kind is one of
// kinds; otherwise it leaves the cursor untouched.
func (p *Parser) match(kinds ...lexer.TokenType) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past the current token if it has the expected kind,
// otherwise records kind at the current position and panics with
// parseError to unwind to the nearest synchronize point.
func (p *Parser) consume(kind lexer.TokenType, errKind ErrorKind, message string) lexer.Token {
	if p.check(kind) {
		return p.advance()
	}
	panic(parseError{p.fail(errKind, message)})
}

// fail records a diagnostic at the current token without unwinding.
func (p *Parser) fail(kind ErrorKind, message string) *ParseError {
	tok := p.peek()
	err := &ParseError{Kind: kind, Line: tok.Line, Lexeme: tok.Lexeme, Message: message}
	p.errors = append(p.errors, err)
	return err
}

// abort records a diagnostic and unwinds like consume's failure path.
func (p *Parser) abort(kind ErrorKind, message string) {
	panic(parseError{p.fail(kind, message)})
}

// synchronize implements panic-mode recovery (spec §4.2): advance until
// the previous token was a statement terminator or the next token starts
// a new statement.
func (p *Parser) synchronize() {
	for !p.isAtEnd() {
		if p.previous().Kind == lexer.SEMICOLON {
			return
		}
		switch p.peek().Kind {
		case lexer.FUNC, lexer.CLASS, lexer.VAR, lexer.FOR, lexer.WHILE, lexer.IF, lexer.PRINT, lexer.RETURN:
			return
		}
		p.advance()
	}
}

// ---- declarations & statements ----

func (p *Parser) declaration() (stmt Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); ok {
				p.synchronize()
				stmt = nil
				return
			}
			panic(r)
		}
	}()

	if p.match(lexer.VAR) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *Parser) varDeclaration() Stmt {
	name := p.consume(lexer.IDENTIFIER, InvalidDeclaration, "Expected variable name.")

	var initializer Expr
	if p.match(lexer.EQUAL) {
		initializer = p.expression()
	}
	p.consume(lexer.SEMICOLON, ExpectedExpression, "Expected ';' after variable declaration.")
	return &VarStmt{Name: name, Initializer: initializer}
}

func (p *Parser) statement() Stmt {
	switch {
	case p.match(lexer.IF):
		return p.ifStatement()
	case p.match(lexer.PRINT):
		return p.printStatement()
	case p.match(lexer.WHILE):
		return p.whileStatement()
	case p.match(lexer.FOR):
		return p.forStatement()
	case p.match(lexer.FUNC):
		return p.functionStatement("function")
	case p.match(lexer.RETURN):
		return p.returnStatement()
	case p.match(lexer.LEFT_BRACE):
		return &BlockStmt{Statements: p.block()}
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) ifStatement() Stmt {
	p.consume(lexer.LEFT_PAREN, UnclosedParen, "Expected '(' after 'if'.")
	condition := p.expression()
	p.consume(lexer.RIGHT_PAREN, UnclosedParen, "Expected ')' after if condition.")

	thenBranch := p.statement()
	var elseBranch Stmt
	if p.match(lexer.ELSE) {
		elseBranch = p.statement()
	}
	return &IfStmt{Condition: condition, Then: thenBranch, Else: elseBranch}
}

func (p *Parser) printStatement() Stmt {
	value := p.expression()
	p.consume(lexer.SEMICOLON, ExpectedExpression, "Expected ';' after value.")
	return &PrintStmt{Expression: value}
}

func (p *Parser) whileStatement() Stmt {
	p.consume(lexer.LEFT_PAREN, UnclosedParen, "Expected '(' after 'while'.")
	condition := p.expression()
	p.consume(lexer.RIGHT_PAREN, UnclosedParen, "Expected ')' after condition.")
	body := p.statement()
	return &WhileStmt{Condition: condition, Body: body}
}

// forStatement desugars `for (init; cond; incr) body` exactly as spec
// §4.2 prescribes: no For AST node is ever produced.
func (p *Parser) forStatement() Stmt {
	p.consume(lexer.LEFT_PAREN, UnclosedParen, "Expected '(' after 'for'.")

	var initializer Stmt
	switch {
	case p.match(lexer.SEMICOLON):
		initializer = nil
	case p.match(lexer.VAR):
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition Expr
	if !p.check(lexer.SEMICOLON) {
		condition = p.expression()
	}
	p.consume(lexer.SEMICOLON, ExpectedExpression, "Expected ';' after loop condition.")

	var increment Expr
	if !p.check(lexer.RIGHT_PAREN) {
		increment = p.expression()
	}
	p.consume(lexer.RIGHT_PAREN, UnclosedParen, "Expected ')' after for clauses.")

	body := p.statement()

	if increment != nil {
		body = &BlockStmt{Statements: []Stmt{body, &ExpressionStmt{Expression: increment}}}
	}
	if condition == nil {
		condition = &LiteralExpr{Value: objects.Boolean{Value: true}}
	}
	body = &WhileStmt{Condition: condition, Body: body}

	if initializer != nil {
		body = &BlockStmt{Statements: []Stmt{initializer, body}}
	}
	return body
}

func (p *Parser) functionStatement(kind string) Stmt {
	name := p.consume(lexer.IDENTIFIER, InvalidDeclaration, "Expected "+kind+" name.")
	p.consume(lexer.LEFT_PAREN, UnclosedParen, "Expected '(' after "+kind+" name.")

	var params []lexer.Token
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(params) >= maxArgs {
				p.fail(MaxFunctionArguments, "Cannot have more than 255 parameters.")
			}
			params = append(params, p.consume(lexer.IDENTIFIER, InvalidDeclaration, "Expected parameter name."))
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	p.consume(lexer.RIGHT_PAREN, UnclosedParen, "Expected ')' after parameters.")
	p.consume(lexer.LEFT_BRACE, ExpectedExpression, "Expected '{' before "+kind+" body.")
	body := p.block()
	return &FunctionStmt{Name: name, Params: params, Body: body}
}

func (p *Parser) returnStatement() Stmt {
	keyword := p.previous()
	var value Expr
	if !p.check(lexer.SEMICOLON) {
		value = p.expression()
	}
	p.consume(lexer.SEMICOLON, ExpectedExpression, "Expected ';' after return value.")
	return &ReturnStmt{Keyword: keyword, Value: value}
}

func (p *Parser) block() []Stmt {
	var statements []Stmt
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	p.consume(lexer.RIGHT_BRACE, ExpectedExpression, "Expected '}' after block.")
	return statements
}

func (p *Parser) expressionStatement() Stmt {
	expr := p.expression()
	p.consume(lexer.SEMICOLON, ExpectedExpression, "Expected ';' after expression.")
	return &ExpressionStmt{Expression: expr}
}
