package asmsim_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/funvibe/logicc/internal/asmsim"
	"github.com/funvibe/logicc/internal/ast"
	"github.com/funvibe/logicc/internal/codegen"
	"github.com/funvibe/logicc/internal/lexer"
	"github.com/funvibe/logicc/internal/parser"
	"github.com/funvibe/logicc/internal/pipeline"
)

var modes = []codegen.Mode{codegen.ModeNormal, codegen.ModeShortCircuit, codegen.ModeOptimized}

func compile(t *testing.T, input string, mode codegen.Mode) string {
	t.Helper()
	ctx := &pipeline.PipelineContext{SourceCode: input}
	ctx = (&lexer.LexerProcessor{}).Process(ctx)
	ctx = (&parser.ParserProcessor{}).Process(ctx)
	if len(ctx.Errors) > 0 {
		t.Fatalf("parsing %q failed: %v", input, ctx.Errors[0])
	}
	var buf bytes.Buffer
	if err := codegen.NewGenerator().Emit(&buf, ctx.AstRoot, mode); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	return buf.String()
}

func run(t *testing.T, input string, mode codegen.Mode) asmsim.Result {
	t.Helper()
	res, err := asmsim.Run(compile(t, input, mode))
	if err != nil {
		t.Fatalf("running %q in %s mode: %v", input, mode, err)
	}
	return res
}

func TestExamplePrograms(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{`TRUE /\ FALSE`, false},
		{"forall x [a, b] P(x)", true},
		{"exists x [a] ~P(x)", false},
		{"~TRUE -> FALSE", true}, // ~(TRUE -> FALSE)
		{"TRUE FALSE", false},    // implicit AND
		{`FALSE \/ forall x [a, b, c] x`, true},
		{`forall x [a, b] (P(x) /\ exists y [c, d] ~Q(x, y))`, false},
	}
	for i, tt := range tests {
		for _, mode := range modes {
			t.Run(fmt.Sprintf("example_%d/%s", i, mode), func(t *testing.T) {
				res := run(t, tt.input, mode)
				if res.Value() != tt.want {
					t.Errorf("%s: result %d, want %v", tt.input, res.EAX, tt.want)
				}
				if res.EAX > 1 {
					t.Errorf("accumulator should hold 0 or 1, got %d", res.EAX)
				}
			})
		}
	}
}

var connectives = []struct {
	symbol string
	eval   func(a, b bool) bool
}{
	{`/\`, func(a, b bool) bool { return a && b }},
	{`\/`, func(a, b bool) bool { return a || b }},
	{"->", func(a, b bool) bool { return !a || b }},
	{"<->", func(a, b bool) bool { return a == b }},
	{"^", func(a, b bool) bool { return a != b }},
}

func lit(v bool) string {
	if v {
		return "TRUE"
	}
	return "FALSE"
}

// Every mode computes the same truth table; short-circuiting changes only
// control flow.
func TestModesAgreeOnTruthTables(t *testing.T) {
	for _, outer := range connectives {
		for _, inner := range connectives {
			for bits := 0; bits < 8; bits++ {
				a, b, c := bits&4 != 0, bits&2 != 0, bits&1 != 0
				input := fmt.Sprintf("%s %s (%s %s %s)", lit(a), outer.symbol, lit(b), inner.symbol, lit(c))
				want := outer.eval(a, inner.eval(b, c))

				for _, mode := range modes {
					if got := run(t, input, mode).Value(); got != want {
						t.Errorf("%s in %s mode = %v, want %v", input, mode, got, want)
					}
				}

				negated := "~(" + input + ")"
				for _, mode := range modes {
					if got := run(t, negated, mode).Value(); got == want {
						t.Errorf("%s in %s mode = %v", negated, mode, got)
					}
				}
			}
		}
	}
}

func TestQuantifiersOverLiteralBodies(t *testing.T) {
	for _, kind := range []string{"forall", "exists"} {
		for _, body := range []bool{true, false} {
			for size := 1; size <= 4; size++ {
				domain := make([]string, size)
				for i := range domain {
					domain[i] = fmt.Sprintf("d%d", i)
				}
				input := fmt.Sprintf("%s x [%s] %s", kind, strings.Join(domain, ", "), lit(body))
				for _, mode := range modes {
					if got := run(t, input, mode).Value(); got != body {
						t.Errorf("%s in %s mode = %v, want %v", input, mode, got, body)
					}
				}
			}
		}
	}
}

func TestShortCircuitSkipsWork(t *testing.T) {
	inputs := []string{
		`FALSE /\ (TRUE /\ TRUE /\ TRUE)`,
		`TRUE \/ (FALSE \/ FALSE \/ FALSE)`,
		"forall x [a, b, c, d] FALSE",
		"exists x [a, b, c, d] TRUE",
	}
	for _, input := range inputs {
		normal := run(t, input, codegen.ModeNormal)
		short := run(t, input, codegen.ModeShortCircuit)
		if normal.EAX != short.EAX {
			t.Errorf("%s: results differ (%d vs %d)", input, normal.EAX, short.EAX)
		}
		if short.Steps >= normal.Steps {
			t.Errorf("%s: short-circuit ran %d steps, normal %d", input, short.Steps, normal.Steps)
		}
	}
}

func TestLoopRunsOncePerDomainElement(t *testing.T) {
	count := func(size int) int {
		domain := strings.TrimSuffix(strings.Repeat("a, ", size), ", ")
		return run(t, fmt.Sprintf("forall x [%s] TRUE", domain), codegen.ModeNormal).Steps
	}
	perIteration := count(2) - count(1)
	if perIteration <= 0 || count(5)-count(4) != perIteration {
		t.Errorf("iteration cost is not constant: %d, %d", perIteration, count(5)-count(4))
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{"no_main", "    movl $1, %eax\n    ret\n", "no main label"},
		{"unknown_instruction", "main:\n    addl $1, %eax\n", "unknown instruction on line 2"},
		{"undefined_label", "main:\n    jmp .nowhere\n", "undefined label '.nowhere'"},
		{"bad_register", "main:\n    movl $1, %rax\n", "unknown register"},
		{"operand_count", "main:\n    pushl\n", "expects 1 operand"},
		{"duplicate_label", "main:\nmain:\n    ret\n", "duplicate label"},
		{"unbalanced_stack", "main:\n    pushl $1\n    ret\n", "unbalanced stack"},
		{"underflow", "main:\n    popl %eax\n    popl %eax\n", "stack underflow"},
		{"immediate_destination", "main:\n    movl %eax, $1\n", "destination must be a register"},
		{"falls_off", "main:\n    movl $1, %eax\n", "fell off the end"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := asmsim.Run(tt.code)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}

	_, err := asmsim.Run("main:\n    jmp main\n")
	if !errors.Is(err, asmsim.ErrStepLimit) {
		t.Errorf("expected ErrStepLimit, got %v", err)
	}
}

func TestRunHandwritten(t *testing.T) {
	code := `    .text
    .globl main
main:
    movl $0, %edx   # counter
    movl $0, %eax
.loop_0:
    incl %eax
    incl %edx
    cmpl $5, %edx
    jl .loop_0
    ret
`
	res, err := asmsim.Run(code)
	if err != nil {
		t.Fatal(err)
	}
	if res.EAX != 5 {
		t.Errorf("EAX = %d, want 5", res.EAX)
	}
}

func TestRunBuiltTree(t *testing.T) {
	b := ast.NewBuilder(nil)
	root := b.BinaryOp(ast.OpIff, b.Literal(false), b.UnaryOp(b.Literal(true)))
	var buf bytes.Buffer
	if err := codegen.NewGenerator().Emit(&buf, root, codegen.ModeShortCircuit); err != nil {
		t.Fatal(err)
	}
	res, err := asmsim.Run(buf.String())
	if err != nil || !res.Value() {
		t.Errorf("FALSE <-> ~TRUE should be TRUE: %v, %v", res, err)
	}
}
