/*
File    : bhasa/eval/evaluator_test.go
*/
package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandeepkc/bhasa/lexer"
	"github.com/sandeepkc/bhasa/parser"
)

// run lexes, parses, and evaluates src, failing the test if any earlier
// stage produced a diagnostic (mirroring the CLI's stage-abort rule,
// spec §4.5), and returns stdout plus runtime diagnostics.
func run(t *testing.T, src string) (string, []*RuntimeError) {
	t.Helper()
	tokens, lexErrs := lexer.NewLexer(src).ScanTokens()
	require.Empty(t, lexErrs)

	stmts, parseErrs := parser.NewParser(tokens).Parse()
	require.Empty(t, parseErrs)

	var out bytes.Buffer
	it := NewInterpreter()
	it.SetOutput(&out)
	runtimeErrs := it.Run(stmts)
	return out.String(), runtimeErrs
}

// Scenario 1 (spec §8): bilingual variables.
func TestEvaluator_BilingualVariables(t *testing.T) {
	out, errs := run(t, `manum x bhaneko 10; let y = 5; dekhau x joda y;`)
	assert.Empty(t, errs)
	assert.Equal(t, "15\n", out)
}

// `print (1 + 2);` outputs `3\n` (spec §8 invariant).
func TestEvaluator_NumberAdditionShortestDecimal(t *testing.T) {
	out, errs := run(t, `print (1 + 2);`)
	assert.Empty(t, errs)
	assert.Equal(t, "3\n", out)
}

// `print "a" + 1;` outputs `a1\n` (spec §8 invariant): number-to-string
// concatenation uses the canonical decimal text.
func TestEvaluator_StringNumberConcatenation(t *testing.T) {
	out, errs := run(t, `print "a" + 1;`)
	assert.Empty(t, errs)
	assert.Equal(t, "a1\n", out)
}

// Scenario 3 (spec §8): block scoping shadows the outer binding and
// restores it on block exit.
func TestEvaluator_BlockScoping(t *testing.T) {
	out, errs := run(t, `let a = 1; { let a = 2; print a; } print a;`)
	assert.Empty(t, errs)
	assert.Equal(t, "2\n1\n", out)
}

// Scenario 4 (spec §8): a called function prints its bound parameter.
func TestEvaluator_FunctionPrintsParameter(t *testing.T) {
	out, errs := run(t, `func make(x) { print x; } make(7);`)
	assert.Empty(t, errs)
	assert.Equal(t, "7\n", out)
}

// Closures: an inner function returned from an outer one still sees the
// outer's parameter after the outer call has returned.
func TestEvaluator_ClosureCapturesEnclosingParameter(t *testing.T) {
	out, errs := run(t, `
		func make(x) {
			func inner() { print x; }
			return inner;
		}
		let f = make(7);
		f();
	`)
	assert.Empty(t, errs)
	assert.Equal(t, "7\n", out)
}

// Scenario 5 (spec §8): division by zero produces no stdout and a
// `Error: Cannot divide by zero` diagnostic.
func TestEvaluator_DivisionByZero(t *testing.T) {
	out, errs := run(t, `print 1/0;`)
	assert.Equal(t, "", out)
	require.Len(t, errs, 1)
	assert.Equal(t, DivisionByZero, errs[0].Kind)
	assert.Equal(t, "Error: Cannot divide by zero", errs[0].Error())
}

// Short-circuit (spec §8): `b` is evaluated for `a OR b` iff `a` is not
// truthy, verified via a side effect on a counter.
func TestEvaluator_OrShortCircuits(t *testing.T) {
	out, _ := run(t, `
		let calls = 0;
		func bump() { calls = calls + 1; return true; }
		if (true or bump()) { print calls; }
	`)
	assert.Equal(t, "0\n", out)
}

func TestEvaluator_AndShortCircuits(t *testing.T) {
	out, _ := run(t, `
		let calls = 0;
		func bump() { calls = calls + 1; return true; }
		if (false and bump()) { print "unreachable"; }
		print calls;
	`)
	assert.Equal(t, "0\n", out)
}

// While truthiness and general-truthiness-for-if (spec §9 resolved open
// question): a non-boolean truthy condition still takes the `if` branch.
func TestEvaluator_IfUsesGeneralTruthiness(t *testing.T) {
	out, errs := run(t, `if ("nonempty") { print "yes"; } else { print "no"; }`)
	assert.Empty(t, errs)
	assert.Equal(t, "yes\n", out)
}

func TestEvaluator_WhileLoop(t *testing.T) {
	out, errs := run(t, `
		let i = 0;
		while (i < 3) {
			print i;
			i = i + 1;
		}
	`)
	assert.Empty(t, errs)
	assert.Equal(t, "0\n1\n2\n", out)
}

// for-loop desugaring is observationally equivalent to its while form
// (spec §8 invariant).
func TestEvaluator_ForLoopDesugaring(t *testing.T) {
	out, errs := run(t, `for (let i = 0; i < 3; i = i + 1) print i;`)
	assert.Empty(t, errs)
	assert.Equal(t, "0\n1\n2\n", out)
}

// Cross-type equality is always false/true respectively, never a
// TypeMismatch (spec §4.4).
func TestEvaluator_CrossTypeEqualityNeverErrors(t *testing.T) {
	out, errs := run(t, `print 1 == "1"; print 1 != "1";`)
	assert.Empty(t, errs)
	assert.Equal(t, "false\ntrue\n", out)
}

func TestEvaluator_UndefinedVariableReadIsRuntimeError(t *testing.T) {
	_, errs := run(t, `print missing;`)
	require.Len(t, errs, 1)
	assert.Equal(t, UndefinedVariable, errs[0].Kind)
}

func TestEvaluator_UnassignedVariableReadIsRuntimeError(t *testing.T) {
	_, errs := run(t, `let x; print x;`)
	require.Len(t, errs, 1)
	assert.Equal(t, UnassignedVariable, errs[0].Kind)
}

func TestEvaluator_CallArgumentMismatch(t *testing.T) {
	_, errs := run(t, `func add(a, b) { return a + b; } add(1);`)
	require.Len(t, errs, 1)
	assert.Equal(t, ArgumentMismatch, errs[0].Kind)
}

func TestEvaluator_CallOnNonCallableIsTypeMismatch(t *testing.T) {
	_, errs := run(t, `let x = 1; x();`)
	require.Len(t, errs, 1)
	assert.Equal(t, TypeMismatch, errs[0].Kind)
	assert.True(t, strings.Contains(errs[0].Error(), "Can only call functions and classes."))
}

func TestEvaluator_BooleanDisplay(t *testing.T) {
	out, errs := run(t, `print true; print false;`)
	assert.Empty(t, errs)
	assert.Equal(t, "true\nfalse\n", out)
}

func TestEvaluator_NullDisplay(t *testing.T) {
	out, errs := run(t, `print null;`)
	assert.Empty(t, errs)
	assert.Equal(t, "Null\n", out)
}
