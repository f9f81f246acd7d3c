package prettyprinter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/funvibe/logicc/internal/ast"
)

// --- Tree Printer (Output shows the AST structure) ---

// TreePrinter renders one node per line, two spaces of indent per level.
type TreePrinter struct {
	buf    bytes.Buffer
	indent int
}

func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

func (p *TreePrinter) String() string {
	return p.buf.String()
}

// Print renders root, which may be nil.
func (p *TreePrinter) Print(root ast.Node) string {
	p.buf.Reset()
	p.indent = 0
	p.child(root)
	return p.buf.String()
}

func (p *TreePrinter) line(format string, args ...any) {
	p.buf.WriteString(strings.Repeat("  ", p.indent))
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteByte('\n')
}

func (p *TreePrinter) child(n ast.Node) {
	if n == nil {
		p.line("NULL")
		return
	}
	n.Accept(p)
}

func (p *TreePrinter) nested(n ast.Node) {
	p.indent++
	p.child(n)
	p.indent--
}

func (p *TreePrinter) VisitBinaryOp(n *ast.BinaryOp) {
	p.line("BinaryOp: %s", n.Operator)
	p.line("Left:")
	p.nested(n.Left)
	p.line("Right:")
	p.nested(n.Right)
}

func (p *TreePrinter) VisitUnaryOp(n *ast.UnaryOp) {
	p.line("UnaryOp: %s", n.Operator)
	p.line("Operand:")
	p.nested(n.Operand)
}

func (p *TreePrinter) VisitQuantifier(n *ast.Quantifier) {
	p.line("Quantifier: %s", n.Kind)
	p.line("Variable: %s", n.Variable)
	p.line("Domain: [%s]", strings.Join(n.Domain, ", "))
	p.line("Expression:")
	p.nested(n.Body)
}

func (p *TreePrinter) VisitLiteral(n *ast.Literal) {
	if n.Value {
		p.line("Literal: TRUE")
	} else {
		p.line("Literal: FALSE")
	}
}

func (p *TreePrinter) VisitVariable(n *ast.Variable) {
	p.line("Variable: %s", n.Name)
}

func (p *TreePrinter) VisitPredicate(n *ast.Predicate) {
	p.line("Predicate: %s", n.Name)
	p.line("Arguments: [%s]", strings.Join(n.Args, ", "))
}
