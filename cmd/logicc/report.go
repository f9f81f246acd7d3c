package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/funvibe/logicc/internal/config"
	"github.com/funvibe/logicc/internal/diagnostics"
)

const (
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
	ansiReset  = "\x1b[0m"
)

// reporter prints diagnostics in the compiler's traditional format.
type reporter struct {
	out   io.Writer // results and semantic diagnostics
	err   io.Writer // syntax and fatal errors
	color bool
}

func newReporter(stdout, stderr io.Writer, mode string) *reporter {
	return &reporter{out: stdout, err: stderr, color: useColor(stderr, mode)}
}

// useColor decides whether w gets ANSI colours: always and never are
// absolute; auto requires a terminal that is not "dumb".
func useColor(w io.Writer, mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (r *reporter) paint(color, s string) string {
	if !r.color {
		return s
	}
	return color + s + ansiReset
}

// fatal prints a one-line error to stderr.
func (r *reporter) fatal(format string, args ...any) {
	fmt.Fprintln(r.err, r.paint(ansiRed, "Error: "+fmt.Sprintf(format, args...)))
}

func (r *reporter) warn(format string, args ...any) {
	fmt.Fprintln(r.err, r.paint(ansiYellow, "Warning: "+fmt.Sprintf(format, args...)))
}

// syntaxErrors prints lexer and parser diagnostics.
func (r *reporter) syntaxErrors(errs []*diagnostics.DiagnosticError) {
	for _, e := range errs {
		fmt.Fprintln(r.err, r.paint(ansiRed,
			fmt.Sprintf("Error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)))
		if e.Lexeme != "" {
			fmt.Fprintf(r.err, "Near token: '%s'\n", e.Lexeme)
		}
	}
}

// semantic prints the analyzer's errors and warnings as two blocks.
func (r *reporter) semantic(errs, warnings []*diagnostics.DiagnosticError) {
	if len(errs) > 0 {
		fmt.Fprintf(r.out, "\nSemantic Errors (%d):\n", len(errs))
		for _, e := range errs {
			fmt.Fprintf(r.out, "  %s %s\n", r.paint(ansiRed, "Error:"), e.Message)
		}
	}
	if len(warnings) > 0 {
		fmt.Fprintf(r.out, "\nSemantic Warnings (%d):\n", len(warnings))
		for _, w := range warnings {
			fmt.Fprintf(r.out, "  %s %s\n", r.paint(ansiYellow, "Warning:"), w.Message)
		}
	}
}
