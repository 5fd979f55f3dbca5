/*
File    : bhasa/objects/objects_test.go
*/
package objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumber_DisplayShortestDecimal(t *testing.T) {
	assert.Equal(t, "3", Number{Value: 3}.Display())
	assert.Equal(t, "3.5", Number{Value: 3.5}.Display())
	assert.Equal(t, "-2", Number{Value: -2}.Display())
}

func TestBoolean_Display(t *testing.T) {
	assert.Equal(t, "true", Boolean{Value: true}.Display())
	assert.Equal(t, "false", Boolean{Value: false}.Display())
}

func TestNull_Display(t *testing.T) {
	assert.Equal(t, "Null", Null{}.Display())
}

// Truthiness (spec §4.4, glossary): every Literal is truthy except
// Boolean(false) and Null.
func TestIsTruthy(t *testing.T) {
	assert.False(t, IsTruthy(Boolean{Value: false}))
	assert.False(t, IsTruthy(Null{}))
	assert.True(t, IsTruthy(Boolean{Value: true}))
	assert.True(t, IsTruthy(Number{Value: 0}))
	assert.True(t, IsTruthy(String{Value: ""}))
}

// Equals never errors on cross-type comparisons; it is simply false
// (spec §4.4).
func TestEquals_CrossTypeIsFalse(t *testing.T) {
	assert.False(t, Equals(Number{Value: 1}, String{Value: "1"}))
	assert.False(t, Equals(Boolean{Value: true}, Number{Value: 1}))
	assert.False(t, Equals(Null{}, Boolean{Value: false}))
}

func TestEquals_SameTypeCompares(t *testing.T) {
	assert.True(t, Equals(Number{Value: 1}, Number{Value: 1}))
	assert.False(t, Equals(Number{Value: 1}, Number{Value: 2}))
	assert.True(t, Equals(String{Value: "a"}, String{Value: "a"}))
	assert.True(t, Equals(Null{}, Null{}))
}

type stubCallable struct{ arity int }

func (s stubCallable) Arity() int { return s.arity }
func (s stubCallable) Call(interp interface{}, arguments []Literal) (Literal, error) {
	return Null{}, nil
}

func TestFunction_DisplayAndType(t *testing.T) {
	fn := Function{Callable: stubCallable{arity: 2}, Name: "add"}
	assert.Equal(t, CallableType, fn.Type())
	assert.Equal(t, "<fn add>", fn.Display())
}
