/*
File    : bhasa/cmd/bhasa/main.go
*/

// Command bhasa is the file-reading launcher spec.md places outside the
// core's scope (§1): it wires the scanner, parser, and evaluator into a
// single-pass pipeline, aborting between stages on any diagnostic (§4.5)
// and reporting exit codes and diagnostic text per §6.
package main

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sandeepkc/bhasa/applog"
	"github.com/sandeepkc/bhasa/diag"
	"github.com/sandeepkc/bhasa/eval"
	"github.com/sandeepkc/bhasa/lexer"
	"github.com/sandeepkc/bhasa/parser"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "bhasa <path>",
		Short: "Run a bhasa source file",
		Long: heredoc.Doc(`
			bhasa interprets a small bilingual scripting language: every
			keyword and operator accepts both an English spelling (let,
			if, print, +) and a Nepali-transliteration spelling (manum,
			yadi, dekhau, joda).

			Usage:
			  bhasa path/to/program.bh
		`),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFile(args[0], verbose)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "raise log level to debug")
	return cmd
}

// runFile executes the scan → parse → evaluate pipeline against the
// source at path, printing grouped diagnostics to stderr and returning a
// non-nil error whenever any stage produced one (spec §6 exit code rule).
func runFile(path string, verbose bool) error {
	logger := applog.New(verbose)
	red := color.New(color.FgRed)

	source, err := os.ReadFile(path)
	if err != nil {
		red.Fprintf(os.Stderr, "bhasa: %s\n", err)
		return err
	}

	tokens, lexErrs := lexer.NewLexer(string(source)).ScanTokens()
	logger.Debugf("scanned %d tokens", len(tokens))
	if agg := diag.Aggregate(lexErrs); agg != nil {
		printStage(red, "Lex Errors encountered:", agg.Errors)
		return agg
	}

	statements, parseErrs := parser.NewParser(tokens).Parse()
	logger.Debugf("parsed %d statements", len(statements))
	if agg := diag.Aggregate(parseErrs); agg != nil {
		printStage(red, "Parse Errors encountered:", agg.Errors)
		return agg
	}

	interp := eval.NewInterpreter()
	interp.SetLogger(logger)
	runtimeErrs := interp.Run(statements)
	logger.Debugf("executed %d statements", len(statements))
	if agg := diag.Aggregate(runtimeErrs); agg != nil {
		printStage(red, "Runtime Errors encountered:", agg.Errors)
		return agg
	}

	return nil
}

// printStage writes one stage's diagnostics in the spec §6 layout: a
// label line followed by one indented line per diagnostic, in red.
func printStage(red *color.Color, label string, errs []error) {
	red.Fprintln(os.Stderr, label)
	for _, e := range errs {
		red.Fprintln(os.Stderr, fmt.Sprintf("  %s", e.Error()))
	}
}
