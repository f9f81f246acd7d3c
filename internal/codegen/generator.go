package codegen

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/funvibe/logicc/internal/ast"
)

// Generator compiles a checked AST to x86 assembly (AT&T syntax).
//
// All state lives here: the register pool, the label counter and the output
// sink. Every Generate or Emit call resets it, so output depends only on the
// tree and the mode. A Generator is not safe for concurrent use; create one
// per goroutine.
type Generator struct {
	regs      RegisterPool
	nextLabel int
	mode      Mode
	out       *bufio.Writer

	err error // first internal error; emission stops once set
}

func NewGenerator() *Generator {
	return &Generator{}
}

// Registers exposes the register pool of the current run.
func (g *Generator) Registers() *RegisterPool {
	return &g.regs
}

// Labels returns how many labels the last run allocated.
func (g *Generator) Labels() int {
	return g.nextLabel
}

// Generate writes the program for root to opts.OutputFile, and to
// opts.Listing when set. A failure to create or write the file is a
// *SinkError; a malformed tree is an *InternalError and leaves a partial
// file behind.
func (g *Generator) Generate(root ast.Node, opts Options) (err error) {
	f, err := os.Create(opts.OutputFile)
	if err != nil {
		return &SinkError{Op: "open", Path: opts.OutputFile, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &SinkError{Op: "write", Path: opts.OutputFile, Err: cerr}
		}
	}()

	var w io.Writer = f
	if opts.Listing != nil {
		w = io.MultiWriter(f, opts.Listing)
	}
	err = g.Emit(w, root, opts.Mode())

	var ie *InternalError
	if err != nil && !errors.As(err, &ie) {
		return &SinkError{Op: "write", Path: opts.OutputFile, Err: err}
	}
	return err
}

// Emit writes the program for root to w in the given mode.
func (g *Generator) Emit(w io.Writer, root ast.Node, mode Mode) error {
	g.reset(w, mode)

	g.prologue()
	g.node(root, nil)
	if g.err == nil {
		g.epilogue()
	}

	if err := g.out.Flush(); err != nil && g.err == nil {
		return fmt.Errorf("writing assembly: %w", err)
	}
	return g.err
}

func (g *Generator) reset(w io.Writer, mode Mode) {
	g.regs.reset()
	g.nextLabel = 0
	g.mode = mode
	g.out = bufio.NewWriter(w)
	g.err = nil
}

func (g *Generator) fail(n ast.Node, err error, format string, args ...any) {
	if g.err == nil {
		g.err = &InternalError{Node: n, Msg: fmt.Sprintf(format, args...), Err: err}
	}
}

// node emits n, reporting a missing child against its parent.
func (g *Generator) node(n ast.Node, parent ast.Node) {
	if g.err != nil {
		return
	}
	if n == nil {
		g.fail(parent, nil, "nil node")
		return
	}
	n.Accept(g)
}

func (g *Generator) VisitLiteral(n *ast.Literal) {
	g.comment("Literal value")
	v := 0
	if n.Value {
		v = 1
	}
	g.instr("movl $%d, %s", v, Accumulator)
}

// Free variables are not bound to data; they evaluate to TRUE.
func (g *Generator) VisitVariable(n *ast.Variable) {
	g.comment("Variable reference: %s (assumed TRUE)", n.Name)
	g.instr("movl $1, %s", Accumulator)
}

// Predicates are not evaluated; every call is TRUE.
func (g *Generator) VisitPredicate(n *ast.Predicate) {
	g.comment("Predicate call: %s (assumed TRUE)", n.Name)
	g.instr("movl $1, %s", Accumulator)
}

func (g *Generator) VisitUnaryOp(n *ast.UnaryOp) {
	if n.Operator != ast.OpNot {
		g.fail(n, nil, "unknown unary operator %d", n.Operator)
		return
	}
	g.comment("Unary operation")
	g.node(n.Operand, n)
	g.comment("NOT operation")
	g.instr("xorl $1, %%eax")
}

func (g *Generator) VisitBinaryOp(n *ast.BinaryOp) {
	g.comment("Binary operation")

	if g.mode.shortCircuits() {
		switch n.Operator {
		case ast.OpAnd:
			g.shortCircuitAnd(n)
			return
		case ast.OpOr:
			g.shortCircuitOr(n)
			return
		}
	}

	g.comment("Evaluate left operand")
	g.node(n.Left, n)
	g.instr("pushl %%eax")

	g.comment("Evaluate right operand")
	g.node(n.Right, n)
	g.instr("movl %%eax, %%ecx")
	g.instr("popl %%eax")

	switch n.Operator {
	case ast.OpAnd:
		g.comment("AND operation")
		g.instr("andl %%ecx, %%eax")
	case ast.OpOr:
		g.comment("OR operation")
		g.instr("orl %%ecx, %%eax")
	case ast.OpXor:
		g.comment("XOR operation")
		g.instr("xorl %%ecx, %%eax")
	case ast.OpImplies:
		g.comment("IMPLIES operation (NOT left OR right)")
		g.instr("xorl $1, %%eax")
		g.instr("orl %%ecx, %%eax")
	case ast.OpIff:
		g.comment("IFF operation (NOT (left XOR right))")
		g.instr("xorl %%ecx, %%eax")
		g.instr("xorl $1, %%eax")
	default:
		g.fail(n, nil, "unknown binary operator %d", n.Operator)
	}
}

// shortCircuitAnd skips the right operand when the left one is FALSE.
func (g *Generator) shortCircuitAnd(n *ast.BinaryOp) {
	g.comment("Short-circuit AND")
	end := g.newLabel("end")
	isFalse := g.newLabel("false")

	g.node(n.Left, n)
	g.instr("cmpl $0, %%eax")
	g.instr("je %s", isFalse)

	g.instr("pushl %%eax")
	g.node(n.Right, n)
	g.instr("movl %%eax, %%ecx")
	g.instr("popl %%eax")
	g.instr("andl %%ecx, %%eax")
	g.instr("jmp %s", end)

	g.label(isFalse)
	g.instr("movl $0, %%eax")
	g.label(end)
}

// shortCircuitOr skips the right operand when the left one is TRUE.
func (g *Generator) shortCircuitOr(n *ast.BinaryOp) {
	g.comment("Short-circuit OR")
	end := g.newLabel("end")

	g.node(n.Left, n)
	g.instr("cmpl $0, %%eax")
	g.instr("jne %s", end)

	g.node(n.Right, n)
	g.label(end)
}

// VisitQuantifier emits a counted loop over the domain. Only the domain's
// size matters: the body is evaluated once per element with the counter in
// %edx, and the element names are not used.
func (g *Generator) VisitQuantifier(n *ast.Quantifier) {
	if n.Kind != ast.Forall && n.Kind != ast.Exists {
		g.fail(n, nil, "unknown quantifier %d", n.Kind)
		return
	}
	if len(n.Domain) == 0 {
		g.fail(n, nil, "empty domain for %s", n.Variable)
		return
	}

	start := g.newLabel("quant_loop_start")
	end := g.newLabel("quant_loop_end")

	g.comment("Quantifier: %s over variable %s", n.Kind, n.Variable)
	g.instr("movl $0, %%edx")

	var done string
	if n.Kind == ast.Forall {
		g.instr("movl $1, %%eax")
		done = g.newLabel("forall_short_circuit")
	} else {
		g.instr("movl $0, %%eax")
		done = g.newLabel("exists_short_circuit")
	}

	g.label(start)
	g.instr("pushl %%edx")
	g.instr("pushl %%eax")

	g.comment("Evaluating quantified expression with %s = %%edx", n.Variable)
	g.node(n.Body, n)

	g.instr("movl %%eax, %%ecx")
	g.instr("popl %%eax")
	g.instr("popl %%edx")

	if n.Kind == ast.Forall {
		g.comment("AND result (FORALL)")
		g.instr("andl %%ecx, %%eax")
		if g.mode.shortCircuits() {
			g.instr("cmpl $0, %%eax")
			g.instr("je %s", done)
		}
	} else {
		g.comment("OR result (EXISTS)")
		g.instr("orl %%ecx, %%eax")
		if g.mode.shortCircuits() {
			g.instr("cmpl $0, %%eax")
			g.instr("jne %s", done)
		}
	}

	g.instr("incl %%edx")
	g.instr("cmpl $%d, %%edx", len(n.Domain))
	g.instr("jl %s", start)

	if g.mode.shortCircuits() {
		g.label(done)
	}
	g.label(end)
}
