package backend

import (
	"errors"
	"fmt"

	"github.com/funvibe/logicc/internal/ast"
	"github.com/funvibe/logicc/internal/pipeline"
)

// TreeWalkBackend evaluates the AST directly, with the same meaning the
// code generator gives it: free variables and predicate calls are TRUE and
// a quantifier applies its body once per domain element.
type TreeWalkBackend struct{}

func NewTreeWalk() *TreeWalkBackend {
	return &TreeWalkBackend{}
}

func (b *TreeWalkBackend) Name() string { return "tree" }

func (b *TreeWalkBackend) Run(ctx *pipeline.PipelineContext) (bool, error) {
	if ctx.AstRoot == nil {
		return false, errors.New("no AST to execute")
	}
	if len(ctx.Errors) > 0 {
		return false, ctx.Errors[0]
	}
	return Evaluate(ctx.AstRoot)
}

// Evaluate computes the truth value of root.
func Evaluate(root ast.Node) (bool, error) {
	e := &evaluator{}
	v := e.eval(root)
	return v, e.err
}

type evaluator struct {
	result bool
	err    error
}

func (e *evaluator) eval(n ast.Node) bool {
	if e.err != nil {
		return false
	}
	if n == nil {
		e.err = errors.New("nil node in expression tree")
		return false
	}
	n.Accept(e)
	return e.result
}

func (e *evaluator) VisitLiteral(n *ast.Literal) { e.result = n.Value }

func (e *evaluator) VisitVariable(n *ast.Variable) { e.result = true }

func (e *evaluator) VisitPredicate(n *ast.Predicate) { e.result = true }

func (e *evaluator) VisitUnaryOp(n *ast.UnaryOp) {
	e.result = !e.eval(n.Operand)
}

func (e *evaluator) VisitBinaryOp(n *ast.BinaryOp) {
	left := e.eval(n.Left)
	right := e.eval(n.Right)
	switch n.Operator {
	case ast.OpAnd:
		e.result = left && right
	case ast.OpOr:
		e.result = left || right
	case ast.OpImplies:
		e.result = !left || right
	case ast.OpIff:
		e.result = left == right
	case ast.OpXor:
		e.result = left != right
	default:
		e.fail(n, "unknown binary operator %d", n.Operator)
	}
}

func (e *evaluator) VisitQuantifier(n *ast.Quantifier) {
	if len(n.Domain) == 0 {
		e.fail(n, "empty domain for %s", n.Variable)
		return
	}
	acc := n.Kind == ast.Forall
	for range n.Domain {
		v := e.eval(n.Body)
		switch n.Kind {
		case ast.Forall:
			acc = acc && v
		case ast.Exists:
			acc = acc || v
		default:
			e.fail(n, "unknown quantifier %d", n.Kind)
		}
	}
	e.result = acc
}

func (e *evaluator) fail(n ast.Node, format string, args ...any) {
	if e.err == nil {
		e.err = fmt.Errorf("%s: %s", n.Position(), fmt.Sprintf(format, args...))
	}
	e.result = false
}
