package parser

import (
	"github.com/funvibe/logicc/internal/ast"
	"github.com/funvibe/logicc/internal/diagnostics"
	"github.com/funvibe/logicc/internal/pipeline"
	"github.com/funvibe/logicc/internal/token"
)

// MaxRecursionDepth bounds expression nesting.
const MaxRecursionDepth = 10000

// Parser drives the grammar over a token stream and calls the ast.Builder
// construction actions once per reduction.
//
// Lookahead is lazy: a token is scanned only when the grammar needs it, so
// the stream's position at each reduction is the same one an LALR driver
// would observe.
type Parser struct {
	stream pipeline.TokenStream
	ctx    *pipeline.PipelineContext
	build  *ast.Builder

	curToken  token.Token
	peekToken token.Token
	hasPeek   bool

	depth        int
	syntaxErrors int
}

func New(stream pipeline.TokenStream, ctx *pipeline.PipelineContext) *Parser {
	return &Parser{
		stream: stream,
		ctx:    ctx,
		build:  ast.NewBuilder(stream),
	}
}

// SyntaxErrors returns the number of lexical and syntax errors seen so far.
func (p *Parser) SyntaxErrors() int {
	return p.syntaxErrors
}

// fetch scans the next token, reporting and skipping illegal characters.
func (p *Parser) fetch() token.Token {
	for {
		tok := p.stream.Next()
		if tok.Type != token.ILLEGAL {
			return tok
		}
		p.addError(diagnostics.NewTokenError(diagnostics.ErrL001, tok,
			"illegal character '%s'", tok.Lexeme))
	}
}

func (p *Parser) peek() token.Token {
	if !p.hasPeek {
		p.peekToken = p.fetch()
		p.hasPeek = true
	}
	return p.peekToken
}

func (p *Parser) peekTokenIs(t token.TokenType) bool {
	return p.peek().Type == t
}

func (p *Parser) nextToken() {
	p.curToken = p.peek()
	p.hasPeek = false
}

// expectPeek consumes the next token if it has type t. Otherwise it records a
// syntax error and skips the offending token, unless it is EOF.
func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.unexpected(p.peek(), t)
	if !p.peekTokenIs(token.EOF) {
		p.nextToken()
	}
	return false
}

func (p *Parser) addError(err *diagnostics.DiagnosticError) {
	p.syntaxErrors++
	p.ctx.Errors = append(p.ctx.Errors, err)
}

func (p *Parser) unexpected(tok token.Token, expected ...token.TokenType) {
	if tok.Type == token.EOF {
		p.addError(diagnostics.NewTokenError(diagnostics.ErrP002, tok,
			"syntax error, unexpected end of input%s", expecting(expected)))
		return
	}
	p.addError(diagnostics.NewTokenError(diagnostics.ErrP001, tok,
		"syntax error, unexpected %s%s", tok.Type, expecting(expected)))
}

func expecting(expected []token.TokenType) string {
	if len(expected) == 0 {
		return ""
	}
	s := ", expecting " + string(expected[0])
	for _, t := range expected[1:] {
		s += " or " + string(t)
	}
	return s
}
