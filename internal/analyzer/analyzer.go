package analyzer

import (
	"errors"

	"github.com/funvibe/logicc/internal/ast"
	"github.com/funvibe/logicc/internal/config"
	"github.com/funvibe/logicc/internal/diagnostics"
	"github.com/funvibe/logicc/internal/symbols"
	"github.com/funvibe/logicc/internal/token"
)

// Analyzer performs semantic analysis on the AST: it binds quantified
// variables, registers predicate arities and reports shadowing.
//
// Every subtree is visited even when a sibling failed, so one run reports
// all problems in tree-walk order.
type Analyzer struct {
	symbolTable *symbols.SymbolTable
	scope       symbols.ScopeID

	errors   *diagnostics.List
	warnings *diagnostics.List

	// valid is the result of the most recent visit.
	valid bool
}

// Result is the outcome of one analysis run.
type Result struct {
	Errors   []*diagnostics.DiagnosticError
	Warnings []*diagnostics.DiagnosticError
	// Dropped counts diagnostics refused because a list hit its cap.
	Dropped int
}

// OK reports whether analysis succeeded. Warnings never cause failure.
func (r *Result) OK() bool {
	return len(r.Errors) == 0
}

func New(symbolTable *symbols.SymbolTable) *Analyzer {
	if symbolTable == nil {
		symbolTable = symbols.NewSymbolTable(config.SymbolTableBuckets)
	}
	return &Analyzer{
		symbolTable: symbolTable,
		scope:       symbols.GlobalScope,
		errors:      diagnostics.NewList(config.MaxDiagnostics),
		warnings:    diagnostics.NewList(config.MaxDiagnostics),
	}
}

// Analyze walks root and returns the collected diagnostics.
func (a *Analyzer) Analyze(root ast.Node) *Result {
	a.check(root, "program", root)
	return &Result{
		Errors:   a.errors.Entries(),
		Warnings: a.warnings.Entries(),
		Dropped:  a.errors.Dropped() + a.warnings.Dropped(),
	}
}

// check visits n and returns whether it is valid. A nil child is a
// malformed tree and is reported against its parent.
func (a *Analyzer) check(n ast.Node, role string, parent ast.Node) bool {
	if n == nil {
		var pos token.Position
		if parent != nil {
			pos = parent.Position()
		}
		a.errors.Add(diagnostics.NewError(diagnostics.ErrA006, pos,
			"Missing %s expression at line %d, column %d", role, pos.Line, pos.Column))
		return false
	}
	n.Accept(a)
	return a.valid
}

func (a *Analyzer) VisitLiteral(n *ast.Literal) {
	a.valid = true
}

func (a *Analyzer) VisitVariable(n *ast.Variable) {
	sym, ok := a.symbolTable.Lookup(a.scope, n.Name)
	switch {
	case !ok:
		a.errors.Add(diagnostics.NewError(diagnostics.ErrA001, n.Pos,
			"Unbound variable '%s' at line %d, column %d", n.Name, n.Pos.Line, n.Pos.Column))
		a.valid = false
	case sym.Kind != symbols.VariableSymbol:
		a.errors.Add(diagnostics.NewError(diagnostics.ErrA004, n.Pos,
			"Symbol '%s' at line %d, column %d is not a variable", n.Name, n.Pos.Line, n.Pos.Column))
		a.valid = false
	default:
		a.valid = true
	}
}

func (a *Analyzer) VisitPredicate(n *ast.Predicate) {
	ok := true

	// Predicates always register globally; the first call fixes the arity.
	existing, err := a.symbolTable.InsertPredicate(a.scope, n.Name, len(n.Args), n.Pos)
	switch {
	case errors.Is(err, symbols.ErrKindMismatch):
		a.errors.Add(diagnostics.NewError(diagnostics.ErrA005, n.Pos,
			"Symbol '%s' at line %d, column %d is not a predicate", n.Name, n.Pos.Line, n.Pos.Column))
		ok = false
	case errors.Is(err, symbols.ErrArityMismatch):
		a.errors.Add(diagnostics.NewError(diagnostics.ErrA002, n.Pos,
			"Predicate '%s' at line %d, column %d is called with %d arguments, but it was defined with %d arguments at line %d, column %d",
			n.Name, n.Pos.Line, n.Pos.Column, len(n.Args), existing.Arity, existing.Line, existing.Column))
		ok = false
	}

	for i, arg := range n.Args {
		sym, found := a.symbolTable.Lookup(a.scope, arg)
		switch {
		case !found:
			a.errors.Add(diagnostics.NewError(diagnostics.ErrA001, n.Pos,
				"Unbound variable '%s' used as argument %d in predicate '%s' at line %d, column %d",
				arg, i+1, n.Name, n.Pos.Line, n.Pos.Column))
			ok = false
		case sym.Kind != symbols.VariableSymbol:
			a.errors.Add(diagnostics.NewError(diagnostics.ErrA004, n.Pos,
				"Symbol '%s' used as argument %d in predicate '%s' at line %d, column %d is not a variable",
				arg, i+1, n.Name, n.Pos.Line, n.Pos.Column))
			ok = false
		}
	}

	a.valid = ok
}

func (a *Analyzer) VisitUnaryOp(n *ast.UnaryOp) {
	a.valid = a.check(n.Operand, "operand", n)
}

func (a *Analyzer) VisitBinaryOp(n *ast.BinaryOp) {
	left := a.check(n.Left, "left", n)
	right := a.check(n.Right, "right", n)
	a.valid = left && right
}

func (a *Analyzer) VisitQuantifier(n *ast.Quantifier) {
	if outer, ok := a.symbolTable.Lookup(a.scope, n.Variable); ok && outer.Kind == symbols.VariableSymbol {
		a.warnings.Add(diagnostics.NewWarning(diagnostics.WarnW001, n.Pos,
			"Variable '%s' at line %d, column %d shadows another variable defined at line %d, column %d",
			n.Variable, n.Pos.Line, n.Pos.Column, outer.Line, outer.Column))
	}

	enclosing := a.scope
	a.scope = a.symbolTable.EnterScope(enclosing)
	defer func() {
		a.scope = a.symbolTable.ExitScope(a.scope)
	}()

	if _, err := a.symbolTable.InsertVariable(a.scope, n.Variable, n.Domain, n.Pos); err != nil {
		a.errors.Add(diagnostics.NewError(diagnostics.ErrA003, n.Pos,
			"Variable '%s' at line %d, column %d is already defined in this scope",
			n.Variable, n.Pos.Line, n.Pos.Column))
		a.valid = false
		return
	}

	a.valid = a.check(n.Body, "quantified", n)
}
