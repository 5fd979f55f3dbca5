/*
File    : bhasa/parser/parser_test.go
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sandeepkc/bhasa/lexer"
	"github.com/sandeepkc/bhasa/objects"
)

func parse(t *testing.T, src string) ([]Stmt, []*ParseError) {
	t.Helper()
	tokens, lexErrs := lexer.NewLexer(src).ScanTokens()
	assert.Empty(t, lexErrs)
	return NewParser(tokens).Parse()
}

func TestParser_VarDeclaration(t *testing.T) {
	stmts, errs := parse(t, `let x = 10;`)
	assert.Empty(t, errs)
	assert.Len(t, stmts, 1)

	varStmt, ok := stmts[0].(*VarStmt)
	assert.True(t, ok)
	assert.Equal(t, "x", varStmt.Name.Lexeme)
	lit, ok := varStmt.Initializer.(*LiteralExpr)
	assert.True(t, ok)
	assert.Equal(t, objects.Number{Value: 10}, lit.Value)
}

func TestParser_VarDeclarationWithoutInitializer(t *testing.T) {
	stmts, errs := parse(t, `let x;`)
	assert.Empty(t, errs)
	varStmt := stmts[0].(*VarStmt)
	assert.Nil(t, varStmt.Initializer)
}

// Precedence: `*` binds tighter than `+` (spec §4.2 term/factor cascade).
func TestParser_OperatorPrecedence(t *testing.T) {
	stmts, errs := parse(t, `1 + 2 * 3;`)
	assert.Empty(t, errs)
	exprStmt := stmts[0].(*ExpressionStmt)
	bin := exprStmt.Expression.(*BinaryExpr)
	assert.Equal(t, lexer.PLUS, bin.Op.Kind)

	right := bin.Right.(*BinaryExpr)
	assert.Equal(t, lexer.STAR, right.Op.Kind)
}

func TestParser_AssignmentRightAssociative(t *testing.T) {
	stmts, errs := parse(t, `a = b = 3;`)
	assert.Empty(t, errs)
	outer := stmts[0].(*ExpressionStmt).Expression.(*AssignExpr)
	assert.Equal(t, "a", outer.Name.Lexeme)
	inner, ok := outer.Value.(*AssignExpr)
	assert.True(t, ok)
	assert.Equal(t, "b", inner.Name.Lexeme)
}

func TestParser_InvalidAssignmentTargetRecordsErrorButKeepsExpression(t *testing.T) {
	stmts, errs := parse(t, `1 + 2 = 3;`)
	assert.Len(t, errs, 1)
	assert.Equal(t, InvalidAssignment, errs[0].Kind)
	// the already-parsed left-hand expression is kept, per spec §4.2
	_, ok := stmts[0].(*ExpressionStmt).Expression.(*BinaryExpr)
	assert.True(t, ok)
}

func TestParser_ForDesugarsToWhile(t *testing.T) {
	stmts, errs := parse(t, `for (let i = 0; i < 3; i = i + 1) print i;`)
	assert.Empty(t, errs)

	outerBlock, ok := stmts[0].(*BlockStmt)
	assert.True(t, ok)
	assert.Len(t, outerBlock.Statements, 2)

	_, ok = outerBlock.Statements[0].(*VarStmt)
	assert.True(t, ok)

	whileStmt, ok := outerBlock.Statements[1].(*WhileStmt)
	assert.True(t, ok)

	innerBlock, ok := whileStmt.Body.(*BlockStmt)
	assert.True(t, ok)
	assert.Len(t, innerBlock.Statements, 2)
	_, ok = innerBlock.Statements[1].(*ExpressionStmt)
	assert.True(t, ok)
}

func TestParser_ForWithoutConditionDefaultsTrue(t *testing.T) {
	stmts, errs := parse(t, `for (;;) print 1;`)
	assert.Empty(t, errs)
	whileStmt := stmts[0].(*WhileStmt)
	lit, ok := whileStmt.Condition.(*LiteralExpr)
	assert.True(t, ok)
	assert.Equal(t, objects.Boolean{Value: true}, lit.Value)
}

func TestParser_FunctionDeclaration(t *testing.T) {
	stmts, errs := parse(t, `func add(a, b) { return a + b; }`)
	assert.Empty(t, errs)
	fn := stmts[0].(*FunctionStmt)
	assert.Equal(t, "add", fn.Name.Lexeme)
	assert.Len(t, fn.Params, 2)
	assert.Len(t, fn.Body, 1)
}

func TestParser_BlockScoping(t *testing.T) {
	stmts, errs := parse(t, `{ let a = 2; print a; }`)
	assert.Empty(t, errs)
	block := stmts[0].(*BlockStmt)
	assert.Len(t, block.Statements, 2)
}

// UnclosedParen (spec §8 scenario 6): `(1+2;` emits exactly one
// diagnostic and no statements.
func TestParser_UnclosedParenEmitsOneError(t *testing.T) {
	stmts, errs := parse(t, `(1+2;`)
	assert.Len(t, errs, 1)
	assert.Equal(t, UnclosedParen, errs[0].Kind)
	assert.Empty(t, stmts)
}

func TestParser_MaxFunctionArguments(t *testing.T) {
	src := "func many("
	for i := 0; i < 256; i++ {
		if i > 0 {
			src += ", "
		}
		src += "a" + string(rune('0'+i%10))
	}
	src += ") { return 1; }"

	_, errs := parse(t, src)
	assert.NotEmpty(t, errs)
	found := false
	for _, e := range errs {
		if e.Kind == MaxFunctionArguments {
			found = true
		}
	}
	assert.True(t, found)
}

// InvalidLiteral guards against a NUMBER/STRING token reaching the parser
// with a decoded Value of the wrong Go type. The real lexer never produces
// such a token, so this is exercised by handing the parser a hand-built
// stream rather than going through NewLexer (spec §7).
func TestParser_InvalidLiteralOnMistypedNumberToken(t *testing.T) {
	tokens := []lexer.Token{
		lexer.NewToken(lexer.NUMBER, "1", "not-a-float", 1),
		lexer.NewToken(lexer.SEMICOLON, ";", nil, 1),
		lexer.NewToken(lexer.EOF_TYPE, "", nil, 1),
	}
	stmts, errs := NewParser(tokens).Parse()
	assert.Len(t, errs, 1)
	assert.Equal(t, InvalidLiteral, errs[0].Kind)
	assert.Empty(t, stmts)
}

// Panic-mode recovery: a malformed statement doesn't stop the rest of
// the program from parsing (spec §4.2, §4.5).
func TestParser_SynchronizeRecoversAfterError(t *testing.T) {
	stmts, errs := parse(t, `let = ; let y = 2;`)
	assert.NotEmpty(t, errs)

	found := false
	for _, stmt := range stmts {
		if v, ok := stmt.(*VarStmt); ok && v.Name.Lexeme == "y" {
			found = true
		}
	}
	assert.True(t, found)
}
