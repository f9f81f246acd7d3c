package ast

import "github.com/funvibe/logicc/internal/token"

// PositionSource reports the tokenizer's current position at the moment a
// grammar rule is reduced.
type PositionSource interface {
	Position() token.Position
}

// Builder holds the construction actions for the grammar. Each method is
// called exactly once per rule reduction with fully built children and
// returns a new node stamped with the source's current position.
type Builder struct {
	src PositionSource
}

func NewBuilder(src PositionSource) *Builder {
	return &Builder{src: src}
}

func (b *Builder) pos() token.Position {
	if b.src == nil {
		return token.Position{}
	}
	return b.src.Position()
}

// BinaryOp reduces `expr binary_op expr` (and the implicit AND between
// adjacent top-level expressions).
func (b *Builder) BinaryOp(op BinaryOperator, left, right Node) *BinaryOp {
	return &BinaryOp{Operator: op, Left: left, Right: right, Pos: b.pos()}
}

// UnaryOp reduces `NOT expr`.
func (b *Builder) UnaryOp(operand Node) *UnaryOp {
	return &UnaryOp{Operator: OpNot, Operand: operand, Pos: b.pos()}
}

// Quantifier reduces `quantifier VARIABLE domain expr`. The domain list is
// consumed: its names move into the node and the list is left empty.
func (b *Builder) Quantifier(kind QuantifierKind, variable string, domain *NameList, body Node) *Quantifier {
	return &Quantifier{
		Kind:     kind,
		Variable: variable,
		Domain:   domain.take(),
		Body:     body,
		Pos:      b.pos(),
	}
}

func (b *Builder) Literal(value bool) *Literal {
	return &Literal{Value: value, Pos: b.pos()}
}

func (b *Builder) Variable(name string) *Variable {
	return &Variable{Name: name, Pos: b.pos()}
}

// Predicate reduces `PREDICATE '(' arg_list ')'`, consuming args.
func (b *Builder) Predicate(name string, args *NameList) *Predicate {
	return &Predicate{Name: name, Args: args.take(), Pos: b.pos()}
}

// NameList accumulates domain entries and predicate arguments. The grammar
// is right-recursive, so the last name is reduced first and earlier names
// are prepended; Names() is always in source order.
type NameList struct {
	names []string
}

func NewNameList(first string) *NameList {
	return &NameList{names: []string{first}}
}

// Prepend adds name before every name already in the list.
func (l *NameList) Prepend(name string) *NameList {
	l.names = append(l.names, "")
	copy(l.names[1:], l.names)
	l.names[0] = name
	return l
}

func (l *NameList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.names)
}

func (l *NameList) Names() []string {
	if l == nil {
		return nil
	}
	return l.names
}

func (l *NameList) take() []string {
	if l == nil {
		return nil
	}
	names := l.names
	l.names = nil
	return names
}
