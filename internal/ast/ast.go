package ast

import "github.com/funvibe/logicc/internal/token"

// Node is the base interface for all AST nodes. The set of node types is
// closed: every implementation lives in this package.
type Node interface {
	Accept(v Visitor)
	Position() token.Position
	node()
}

// Visitor must handle every node type, so adding a node breaks every
// dispatch site at compile time.
type Visitor interface {
	VisitBinaryOp(n *BinaryOp)
	VisitUnaryOp(n *UnaryOp)
	VisitQuantifier(n *Quantifier)
	VisitLiteral(n *Literal)
	VisitVariable(n *Variable)
	VisitPredicate(n *Predicate)
}

type BinaryOperator int

const (
	OpAnd BinaryOperator = iota + 1
	OpOr
	OpImplies
	OpIff
	OpXor
)

func (op BinaryOperator) String() string {
	switch op {
	case OpAnd:
		return "AND"
	case OpOr:
		return "OR"
	case OpImplies:
		return "IMPLIES"
	case OpIff:
		return "IFF"
	case OpXor:
		return "XOR"
	default:
		return "UNKNOWN"
	}
}

// Symbol is the source spelling of the operator.
func (op BinaryOperator) Symbol() string {
	switch op {
	case OpAnd:
		return `/\`
	case OpOr:
		return `\/`
	case OpImplies:
		return "->"
	case OpIff:
		return "<->"
	case OpXor:
		return "^"
	default:
		return "?"
	}
}

// BinaryOperatorFor maps a connective token to its operator.
func BinaryOperatorFor(t token.TokenType) (BinaryOperator, bool) {
	switch t {
	case token.AND:
		return OpAnd, true
	case token.OR:
		return OpOr, true
	case token.IMPLIES:
		return OpImplies, true
	case token.IFF:
		return OpIff, true
	case token.XOR:
		return OpXor, true
	}
	return 0, false
}

type UnaryOperator int

const (
	OpNot UnaryOperator = iota + 1
)

func (op UnaryOperator) String() string {
	if op == OpNot {
		return "NOT"
	}
	return "UNKNOWN"
}

type QuantifierKind int

const (
	Forall QuantifierKind = iota + 1
	Exists
)

func (k QuantifierKind) String() string {
	switch k {
	case Forall:
		return "FORALL"
	case Exists:
		return "EXISTS"
	default:
		return "UNKNOWN"
	}
}

// Keyword is the source spelling of the quantifier.
func (k QuantifierKind) Keyword() string {
	if k == Exists {
		return "exists"
	}
	return "forall"
}

// BinaryOp: left op right
type BinaryOp struct {
	Operator BinaryOperator
	Left     Node
	Right    Node
	Pos      token.Position
}

func (n *BinaryOp) Accept(v Visitor)          { v.VisitBinaryOp(n) }
func (n *BinaryOp) Position() token.Position { return n.Pos }
func (n *BinaryOp) node()                    {}

// UnaryOp: ~operand
type UnaryOp struct {
	Operator UnaryOperator
	Operand  Node
	Pos      token.Position
}

func (n *UnaryOp) Accept(v Visitor)          { v.VisitUnaryOp(n) }
func (n *UnaryOp) Position() token.Position { return n.Pos }
func (n *UnaryOp) node()                    {}

// Quantifier: forall x [a, b] body
type Quantifier struct {
	Kind     QuantifierKind
	Variable string
	Domain   []string // at least one entry, in source order
	Body     Node
	Pos      token.Position
}

func (n *Quantifier) Accept(v Visitor)          { v.VisitQuantifier(n) }
func (n *Quantifier) Position() token.Position { return n.Pos }
func (n *Quantifier) node()                    {}

// Literal: TRUE or FALSE
type Literal struct {
	Value bool
	Pos   token.Position
}

func (n *Literal) Accept(v Visitor)          { v.VisitLiteral(n) }
func (n *Literal) Position() token.Position { return n.Pos }
func (n *Literal) node()                    {}

type Variable struct {
	Name string
	Pos  token.Position
}

func (n *Variable) Accept(v Visitor)          { v.VisitVariable(n) }
func (n *Variable) Position() token.Position { return n.Pos }
func (n *Variable) node()                    {}

// Predicate: P(x, y). Args are argument variable names in source order.
type Predicate struct {
	Name string
	Args []string
	Pos  token.Position
}

func (n *Predicate) Accept(v Visitor)          { v.VisitPredicate(n) }
func (n *Predicate) Position() token.Position { return n.Pos }
func (n *Predicate) node()                    {}
