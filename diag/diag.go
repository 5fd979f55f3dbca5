/*
File    : bhasa/diag/diag.go
*/

// Package diag aggregates a pipeline stage's typed diagnostic slice
// ([]*lexer.LexError, []*parser.ParseError, []*eval.RuntimeError) into a
// single *multierror.Error, the idiomatic shape for "many diagnostics,
// one stage" used by github.com/hashicorp/go-multierror (grounded on the
// golox manifest's dependency on the same library).
package diag

import "github.com/hashicorp/go-multierror"

// Aggregate folds errs into one *multierror.Error, or returns nil when
// errs is empty. The individual typed diagnostics remain reachable via
// the returned error's Errors field.
func Aggregate[E error](errs []E) *multierror.Error {
	if len(errs) == 0 {
		return nil
	}
	var result *multierror.Error
	for _, err := range errs {
		result = multierror.Append(result, err)
	}
	return result
}
