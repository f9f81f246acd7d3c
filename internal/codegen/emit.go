package codegen

import "fmt"

// newLabel returns a fresh `.prefix_N` label. Labels are never reused
// within one generation run.
func (g *Generator) newLabel(prefix string) string {
	l := fmt.Sprintf(".%s_%d", prefix, g.nextLabel)
	g.nextLabel++
	return l
}

func (g *Generator) instr(format string, args ...any) {
	fmt.Fprintf(g.out, "    "+format+"\n", args...)
}

func (g *Generator) label(name string) {
	fmt.Fprintf(g.out, "%s:\n", name)
}

func (g *Generator) comment(format string, args ...any) {
	fmt.Fprintf(g.out, "    # "+format+"\n", args...)
}

// prologue opens the stack frame and saves the callee-saved registers.
func (g *Generator) prologue() {
	fmt.Fprint(g.out, "    .text\n")
	fmt.Fprint(g.out, "    .globl main\n")
	g.label("main")
	g.instr("pushl %%ebp")
	g.instr("movl %%esp, %%ebp")
	g.instr("pushl %%ebx")
	g.instr("pushl %%esi")
	g.instr("pushl %%edi")
	g.comment("Begin logic expression evaluation")
}

func (g *Generator) epilogue() {
	g.comment("End logic expression evaluation")
	g.comment("Result is in %%eax (0=FALSE, 1=TRUE)")
	g.instr("popl %%edi")
	g.instr("popl %%esi")
	g.instr("popl %%ebx")
	g.instr("movl %%ebp, %%esp")
	g.instr("popl %%ebp")
	g.instr("ret")
}
