package parser

import (
	"github.com/funvibe/logicc/internal/ast"
	"github.com/funvibe/logicc/internal/diagnostics"
	"github.com/funvibe/logicc/internal/token"
)

// ParseProgram parses `program := expr_list`. Adjacent top-level expressions
// are folded left with an implicit AND. The returned root is nil when no
// expression could be built; check SyntaxErrors before using a partial tree.
func (p *Parser) ParseProgram() ast.Node {
	var root ast.Node
	for !p.peekTokenIs(token.EOF) {
		expr := p.parseExpression()
		if expr == nil {
			// the failing rule already consumed the offending token
			continue
		}
		if root == nil {
			root = expr
		} else {
			root = p.build.BinaryOp(ast.OpAnd, root, expr)
		}
	}
	if root == nil && p.syntaxErrors == 0 {
		p.unexpected(p.peek())
	}
	return root
}

// parseExpression parses
//
//	expr := binary_expr | unary_expr | quant_expr | atom_expr
//	binary_expr := expr binary_op expr
//
// Connectives share one precedence level and group to the right, and NOT and
// quantifier bodies extend as far right as they can. These are the trees an
// LALR driver produces for this grammar when it resolves every shift/reduce
// conflict by shifting.
func (p *Parser) parseExpression() ast.Node {
	p.depth++
	defer func() { p.depth-- }()

	if p.depth > MaxRecursionDepth {
		tok := p.peek()
		p.addError(diagnostics.NewTokenError(diagnostics.ErrP001, tok,
			"expression too complex: nesting depth limit exceeded"))
		if tok.Type != token.EOF {
			p.nextToken()
		}
		return nil
	}

	var left ast.Node
	switch p.peek().Type {
	case token.NOT:
		left = p.parseUnaryExpression()
	case token.FORALL, token.EXISTS:
		left = p.parseQuantifiedExpression()
	default:
		left = p.parseAtomExpression()
	}
	if left == nil {
		return nil
	}

	op, ok := ast.BinaryOperatorFor(p.peek().Type)
	if !ok {
		return left
	}
	p.nextToken()
	right := p.parseExpression()
	if right == nil {
		return nil
	}
	return p.build.BinaryOp(op, left, right)
}

// unary_expr := NOT expr
func (p *Parser) parseUnaryExpression() ast.Node {
	p.nextToken()
	operand := p.parseExpression()
	if operand == nil {
		return nil
	}
	return p.build.UnaryOp(operand)
}

// quant_expr := quantifier VARIABLE domain expr
func (p *Parser) parseQuantifiedExpression() ast.Node {
	p.nextToken()
	kind := ast.Forall
	if p.curToken.Type == token.EXISTS {
		kind = ast.Exists
	}

	if !p.expectPeek(token.VARIABLE) {
		return nil
	}
	variable := p.curToken.Lexeme

	domain := p.parseDomain()
	if domain == nil {
		return nil
	}

	body := p.parseExpression()
	if body == nil {
		return nil
	}
	return p.build.Quantifier(kind, variable, domain, body)
}

// domain := '[' domain_list ']'
func (p *Parser) parseDomain() *ast.NameList {
	if !p.expectPeek(token.LBRACKET) {
		return nil
	}
	list := p.parseDomainList()
	if list == nil {
		return nil
	}
	if !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return list
}

// domain_list := (VARIABLE|PREDICATE) (',' domain_list)?
func (p *Parser) parseDomainList() *ast.NameList {
	if !p.peekTokenIs(token.VARIABLE) && !p.peekTokenIs(token.PREDICATE) {
		p.unexpected(p.peek(), token.VARIABLE, token.PREDICATE)
		if !p.peekTokenIs(token.EOF) {
			p.nextToken()
		}
		return nil
	}
	p.nextToken()
	value := p.curToken.Lexeme

	if !p.peekTokenIs(token.COMMA) {
		return ast.NewNameList(value)
	}
	p.nextToken()
	rest := p.parseDomainList()
	if rest == nil {
		return nil
	}
	return rest.Prepend(value)
}

// atom_expr := '(' expr ')' | predicate | variable | literal
func (p *Parser) parseAtomExpression() ast.Node {
	switch p.peek().Type {
	case token.LPAREN:
		p.nextToken()
		expr := p.parseExpression()
		if expr == nil {
			return nil
		}
		if !p.expectPeek(token.RPAREN) {
			return nil
		}
		return expr
	case token.PREDICATE:
		return p.parsePredicate()
	case token.VARIABLE:
		p.nextToken()
		return p.build.Variable(p.curToken.Lexeme)
	case token.TRUE_VAL:
		p.nextToken()
		return p.build.Literal(true)
	case token.FALSE_VAL:
		p.nextToken()
		return p.build.Literal(false)
	case token.EOF:
		p.unexpected(p.peek())
		return nil
	default:
		p.nextToken()
		p.unexpected(p.curToken)
		return nil
	}
}

// predicate := PREDICATE '(' arg_list ')'
func (p *Parser) parsePredicate() ast.Node {
	p.nextToken()
	name := p.curToken.Lexeme

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	args := p.parseArgList()
	if args == nil {
		return nil
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return p.build.Predicate(name, args)
}

// arg_list := VARIABLE (',' arg_list)?
func (p *Parser) parseArgList() *ast.NameList {
	if !p.expectPeek(token.VARIABLE) {
		return nil
	}
	arg := p.curToken.Lexeme

	if !p.peekTokenIs(token.COMMA) {
		return ast.NewNameList(arg)
	}
	p.nextToken()
	rest := p.parseArgList()
	if rest == nil {
		return nil
	}
	return rest.Prepend(arg)
}
