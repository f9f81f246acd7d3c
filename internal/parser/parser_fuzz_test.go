package parser_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/funvibe/logicc/internal/analyzer"
	"github.com/funvibe/logicc/internal/asmsim"
	"github.com/funvibe/logicc/internal/ast"
	"github.com/funvibe/logicc/internal/codegen"
	"github.com/funvibe/logicc/internal/lexer"
	"github.com/funvibe/logicc/internal/parser"
	"github.com/funvibe/logicc/internal/pipeline"
	"github.com/funvibe/logicc/internal/prettyprinter"
	"github.com/funvibe/logicc/internal/symbols"
)

func parseSource(input string) (ast.Node, *pipeline.PipelineContext) {
	ctx := pipeline.NewPipelineContext(input)
	stream := lexer.NewTokenStream(lexer.New(input))
	p := parser.New(stream, ctx)
	return p.ParseProgram(), ctx
}

// FuzzParser checks that arbitrary input never panics, and that every
// accepted program survives printing and reparsing unchanged and computes
// the same value in every code generation mode.
func FuzzParser(f *testing.F) {
	f.Add(`TRUE /\ FALSE`)
	f.Add("forall x [a, b] P(x)")
	f.Add(`exists y [c] (Q(y) -> ~R(y, y)) <-> TRUE ^ FALSE`)
	f.Add("~~a b c")
	f.Add("forall x [] (")
	f.Add("P(x,) ] [ ,")

	f.Fuzz(func(t *testing.T, input string) {
		if len(input) > 256 {
			return
		}
		root, ctx := parseSource(input)
		if len(ctx.Errors) > 0 || root == nil {
			return
		}

		src := prettyprinter.NewCodePrinter().Print(root)
		again, ctx2 := parseSource(src)
		if len(ctx2.Errors) > 0 {
			t.Fatalf("printed form %q of %q does not parse: %v", src, input, ctx2.Errors[0])
		}
		if !ast.Equal(root, again) {
			t.Fatalf("printed form %q of %q parses to a different tree", src, input)
		}

		if !analyzer.New(symbols.NewSymbolTable(symbols.DefaultBuckets)).Analyze(root).OK() {
			return
		}
		var want *bool
		for _, mode := range []codegen.Mode{codegen.ModeNormal, codegen.ModeShortCircuit, codegen.ModeOptimized} {
			var buf strings.Builder
			if err := codegen.NewGenerator().Emit(&buf, root, mode); err != nil {
				t.Fatalf("%q in %s mode: %v", input, mode, err)
			}
			res, err := asmsim.Run(buf.String())
			if errors.Is(err, asmsim.ErrStepLimit) {
				return
			}
			if err != nil {
				t.Fatalf("%q in %s mode: %v", input, mode, err)
			}
			got := res.Value()
			if want == nil {
				want = &got
			} else if got != *want {
				t.Fatalf("%q: %s mode computed %v, normal mode %v", input, mode, got, *want)
			}
		}
	})
}
