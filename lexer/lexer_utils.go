/*
File: bhasa/lexer/lexer_utils.go
*/
package lexer

import "strconv"

// isDigit reports whether b is an ASCII decimal digit.
func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// isAlpha reports whether b can start or continue an identifier: a
// letter or underscore.
func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}

// isAlphaNumeric reports whether b can continue an identifier once started.
func isAlphaNumeric(b byte) bool {
	return isAlpha(b) || isDigit(b)
}

// parseFloat parses a scanned number lexeme as a 64-bit float.
func parseFloat(text string) (float64, error) {
	return strconv.ParseFloat(text, 64)
}
