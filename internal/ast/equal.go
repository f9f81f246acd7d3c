package ast

import "slices"

// Equal reports whether two trees have the same shape and contents.
// Source positions are ignored.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch x := a.(type) {
	case *BinaryOp:
		y, ok := b.(*BinaryOp)
		return ok && x.Operator == y.Operator && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *UnaryOp:
		y, ok := b.(*UnaryOp)
		return ok && x.Operator == y.Operator && Equal(x.Operand, y.Operand)
	case *Quantifier:
		y, ok := b.(*Quantifier)
		return ok && x.Kind == y.Kind && x.Variable == y.Variable &&
			slices.Equal(x.Domain, y.Domain) && Equal(x.Body, y.Body)
	case *Literal:
		y, ok := b.(*Literal)
		return ok && x.Value == y.Value
	case *Variable:
		y, ok := b.(*Variable)
		return ok && x.Name == y.Name
	case *Predicate:
		y, ok := b.(*Predicate)
		return ok && x.Name == y.Name && slices.Equal(x.Args, y.Args)
	}
	return false
}
