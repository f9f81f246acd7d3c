package prettyprinter

import (
	"bytes"
	"strings"

	"github.com/funvibe/logicc/internal/ast"
)

// --- Code Printer (Output looks like source code) ---

// CodePrinter reconstructs source text that parses back to the same tree.
//
// Every connective has one precedence level and groups to the right, and
// `~` and quantifier bodies extend as far right as they can. So only a
// compound left operand needs parentheses; the rest are added for
// readability.
type CodePrinter struct {
	buf bytes.Buffer
}

func NewCodePrinter() *CodePrinter {
	return &CodePrinter{}
}

func (p *CodePrinter) String() string {
	return p.buf.String()
}

// Print renders root on a single line.
func (p *CodePrinter) Print(root ast.Node) string {
	p.buf.Reset()
	p.expr(root)
	return p.buf.String()
}

func (p *CodePrinter) write(s string) {
	p.buf.WriteString(s)
}

func (p *CodePrinter) expr(n ast.Node) {
	if n != nil {
		n.Accept(p)
	}
}

func (p *CodePrinter) grouped(n ast.Node) {
	p.write("(")
	p.expr(n)
	p.write(")")
}

func isAtom(n ast.Node) bool {
	switch n.(type) {
	case *ast.Literal, *ast.Variable, *ast.Predicate:
		return true
	}
	return false
}

func (p *CodePrinter) VisitBinaryOp(n *ast.BinaryOp) {
	if n.Left == nil || isAtom(n.Left) {
		p.expr(n.Left)
	} else {
		p.grouped(n.Left)
	}
	p.write(" " + n.Operator.Symbol() + " ")
	p.expr(n.Right)
}

func (p *CodePrinter) VisitUnaryOp(n *ast.UnaryOp) {
	p.write("~")
	if _, ok := n.Operand.(*ast.BinaryOp); ok {
		p.grouped(n.Operand)
		return
	}
	p.expr(n.Operand)
}

func (p *CodePrinter) VisitQuantifier(n *ast.Quantifier) {
	p.write(n.Kind.Keyword() + " " + n.Variable + " [" + strings.Join(n.Domain, ", ") + "] ")
	p.expr(n.Body)
}

func (p *CodePrinter) VisitLiteral(n *ast.Literal) {
	if n.Value {
		p.write("TRUE")
	} else {
		p.write("FALSE")
	}
}

func (p *CodePrinter) VisitVariable(n *ast.Variable) {
	p.write(n.Name)
}

func (p *CodePrinter) VisitPredicate(n *ast.Predicate) {
	p.write(n.Name + "(" + strings.Join(n.Args, ", ") + ")")
}
