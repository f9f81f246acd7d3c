package backend_test

import (
	"strings"
	"testing"

	"github.com/funvibe/logicc/internal/analyzer"
	"github.com/funvibe/logicc/internal/ast"
	"github.com/funvibe/logicc/internal/backend"
	"github.com/funvibe/logicc/internal/codegen"
	"github.com/funvibe/logicc/internal/diagnostics"
	"github.com/funvibe/logicc/internal/lexer"
	"github.com/funvibe/logicc/internal/parser"
	"github.com/funvibe/logicc/internal/pipeline"
)

func compile(t *testing.T, input string, mode codegen.Mode) *pipeline.PipelineContext {
	t.Helper()
	ctx := pipeline.NewPipelineContext(input)
	ctx = pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		&analyzer.SemanticAnalyzerProcessor{},
		codegen.NewCodegenProcessor(codegen.Options{
			ShortCircuit: mode != codegen.ModeNormal,
			Optimize:     mode == codegen.ModeOptimized,
		}),
	).Run(ctx)
	if ctx.HasErrors() {
		t.Fatalf("compiling %q: %v", input, ctx.Errors[0])
	}
	return ctx
}

var programs = []struct {
	input string
	want  bool
}{
	{`TRUE /\ FALSE`, false},
	{"forall x [a, b] P(x)", true},
	{"exists x [a] ~P(x)", false},
	{"~TRUE -> FALSE", true},
	{"TRUE FALSE", false},
	{`FALSE <-> exists x [a, b] FALSE`, true},
	{`TRUE ^ forall x [a, b, c] (P(x) -> Q(x))`, false},
}

func TestBackendsAgree(t *testing.T) {
	for _, p := range programs {
		for _, mode := range []codegen.Mode{codegen.ModeNormal, codegen.ModeShortCircuit, codegen.ModeOptimized} {
			ctx := compile(t, p.input, mode)
			for _, b := range []backend.Backend{backend.NewAsm(), backend.NewTreeWalk()} {
				got, err := b.Run(ctx)
				if err != nil {
					t.Fatalf("%s backend on %q: %v", b.Name(), p.input, err)
				}
				if got != p.want {
					t.Errorf("%s backend on %q (%s) = %v, want %v", b.Name(), p.input, mode, got, p.want)
				}
			}
		}
	}
}

func TestAsmBackendCountsSteps(t *testing.T) {
	b := backend.NewAsm()
	if _, err := b.Run(compile(t, "forall x [a, b, c] TRUE", codegen.ModeNormal)); err != nil {
		t.Fatal(err)
	}
	if b.Steps == 0 {
		t.Error("expected a non-zero step count")
	}

	if _, err := b.Run(pipeline.NewPipelineContext("TRUE")); err == nil {
		t.Error("expected an error without assembly")
	}
}

func TestEvaluateMalformed(t *testing.T) {
	b := ast.NewBuilder(nil)
	if _, err := backend.Evaluate(b.BinaryOp(ast.OpAnd, b.Literal(true), nil)); err == nil {
		t.Error("expected an error for a missing operand")
	}
	empty := &ast.Quantifier{Kind: ast.Forall, Variable: "x", Body: b.Literal(true)}
	if _, err := backend.Evaluate(empty); err == nil || !strings.Contains(err.Error(), "empty domain") {
		t.Errorf("expected empty domain error, got %v", err)
	}
}

func TestNew(t *testing.T) {
	for name, want := range map[string]string{"": "asm", "asm": "asm", "tree": "tree"} {
		b, err := backend.New(name)
		if err != nil || b.Name() != want {
			t.Errorf("New(%q) = %v, %v", name, b, err)
		}
	}
	if _, err := backend.New("jit"); err == nil {
		t.Error("expected an error for an unknown backend")
	}
}

func TestExecutionProcessor(t *testing.T) {
	ctx := compile(t, `TRUE \/ FALSE`, codegen.ModeShortCircuit)
	ctx = backend.NewExecutionProcessor(backend.NewAsm()).Process(ctx)
	if ctx.Result == nil || !*ctx.Result {
		t.Fatalf("expected TRUE result, got %v", ctx.Result)
	}

	ctx = pipeline.NewPipelineContext("TRUE")
	ctx.AstRoot = ast.NewBuilder(nil).Literal(true)
	ctx.FilePath = "prog.logic"
	ctx = backend.NewExecutionProcessor(backend.NewAsm()).Process(ctx)
	if len(ctx.Errors) != 1 || ctx.Errors[0].Code != diagnostics.ErrR001 || ctx.Errors[0].File != "prog.logic" {
		t.Errorf("expected one R001 error, got %v", ctx.Errors)
	}
	if ctx.Result != nil {
		t.Error("failed run should leave Result unset")
	}
}
