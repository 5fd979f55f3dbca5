/*
File    : bhasa/parser/errors.go
*/
package parser

import "fmt"

// ErrorKind tags the syntactic diagnostics in spec §7: UnclosedParen,
// ExpectedExpression, InvalidLiteral, InvalidDeclaration,
// InvalidAssignment, MaxFunctionArguments.
type ErrorKind string

const (
	UnclosedParen        ErrorKind = "UnclosedParen"
	ExpectedExpression   ErrorKind = "ExpectedExpression"
	InvalidLiteral       ErrorKind = "InvalidLiteral"
	InvalidDeclaration   ErrorKind = "InvalidDeclaration"
	InvalidAssignment    ErrorKind = "InvalidAssignment"
	MaxFunctionArguments ErrorKind = "MaxFunctionArguments"
)

// ParseError is one syntactic diagnostic, rendered in the spec §6 format
// "Line {n} at '{lexeme}': {message}".
type ParseError struct {
	Kind    ErrorKind
	Line    int
	Lexeme  string
	Message string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("Line %d at '%s': %s", e.Line, e.Lexeme, e.Message)
}
