package prettyprinter

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/funvibe/logicc/internal/ast"
)

// YAMLNode is the serialized form of an AST node.
type YAMLNode struct {
	Kind     string    `yaml:"kind"`
	Operator string    `yaml:"operator,omitempty"`
	Value    *bool     `yaml:"value,omitempty"`
	Name     string    `yaml:"name,omitempty"`
	Variable string    `yaml:"variable,omitempty"`
	Domain   []string  `yaml:"domain,omitempty,flow"`
	Args     []string  `yaml:"args,omitempty,flow"`
	Line     int       `yaml:"line"`
	Column   int       `yaml:"column"`
	Left     *YAMLNode `yaml:"left,omitempty"`
	Right    *YAMLNode `yaml:"right,omitempty"`
	Operand  *YAMLNode `yaml:"operand,omitempty"`
	Body     *YAMLNode `yaml:"body,omitempty"`
}

// yamlBuilder converts a tree to YAMLNode values.
type yamlBuilder struct {
	result *YAMLNode
}

func (b *yamlBuilder) build(n ast.Node) *YAMLNode {
	if n == nil {
		return nil
	}
	n.Accept(b)
	return b.result
}

func (b *yamlBuilder) VisitBinaryOp(n *ast.BinaryOp) {
	out := &YAMLNode{Kind: "binary", Operator: n.Operator.String(), Line: n.Pos.Line, Column: n.Pos.Column}
	out.Left = b.build(n.Left)
	out.Right = b.build(n.Right)
	b.result = out
}

func (b *yamlBuilder) VisitUnaryOp(n *ast.UnaryOp) {
	out := &YAMLNode{Kind: "unary", Operator: n.Operator.String(), Line: n.Pos.Line, Column: n.Pos.Column}
	out.Operand = b.build(n.Operand)
	b.result = out
}

func (b *yamlBuilder) VisitQuantifier(n *ast.Quantifier) {
	out := &YAMLNode{
		Kind:     "quantifier",
		Operator: n.Kind.String(),
		Variable: n.Variable,
		Domain:   n.Domain,
		Line:     n.Pos.Line,
		Column:   n.Pos.Column,
	}
	out.Body = b.build(n.Body)
	b.result = out
}

func (b *yamlBuilder) VisitLiteral(n *ast.Literal) {
	v := n.Value
	b.result = &YAMLNode{Kind: "literal", Value: &v, Line: n.Pos.Line, Column: n.Pos.Column}
}

func (b *yamlBuilder) VisitVariable(n *ast.Variable) {
	b.result = &YAMLNode{Kind: "variable", Name: n.Name, Line: n.Pos.Line, Column: n.Pos.Column}
}

func (b *yamlBuilder) VisitPredicate(n *ast.Predicate) {
	b.result = &YAMLNode{Kind: "predicate", Name: n.Name, Args: n.Args, Line: n.Pos.Line, Column: n.Pos.Column}
}

// ToYAMLNode converts root; a nil root yields nil.
func ToYAMLNode(root ast.Node) *YAMLNode {
	return (&yamlBuilder{}).build(root)
}

// PrintYAML serializes root as a YAML document.
func PrintYAML(root ast.Node) (string, error) {
	data, err := yaml.Marshal(ToYAMLNode(root))
	if err != nil {
		return "", fmt.Errorf("encoding AST as YAML: %w", err)
	}
	return string(data), nil
}
