package token

import "fmt"

type TokenType string

const (
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	// Connectives
	AND     TokenType = "AND"     // /\
	OR      TokenType = "OR"      // \/
	NOT     TokenType = "NOT"     // ~
	IMPLIES TokenType = "IMPLIES" // ->
	IFF     TokenType = "IFF"     // <->
	XOR     TokenType = "XOR"     // ^

	// Quantifiers
	FORALL TokenType = "FORALL"
	EXISTS TokenType = "EXISTS"

	// Literals
	TRUE_VAL  TokenType = "TRUE_VAL"
	FALSE_VAL TokenType = "FALSE_VAL"

	// Grouping
	LPAREN   TokenType = "LPAREN"
	RPAREN   TokenType = "RPAREN"
	LBRACKET TokenType = "LBRACKET"
	RBRACKET TokenType = "RBRACKET"
	COMMA    TokenType = ","

	// Identifiers
	VARIABLE  TokenType = "VARIABLE"  // starts with a lowercase letter
	PREDICATE TokenType = "PREDICATE" // starts with an uppercase letter
)

// Position is a 1-based source location.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

type Token struct {
	Type   TokenType
	Lexeme string
	Line   int
	Column int
}

func (t Token) Position() Position {
	return Position{Line: t.Line, Column: t.Column}
}

var keywords = map[string]TokenType{
	"forall": FORALL,
	"exists": EXISTS,
	"TRUE":   TRUE_VAL,
	"FALSE":  FALSE_VAL,
}

// LookupIdent classifies an identifier: keywords first, then the
// lowercase/uppercase convention for variables and predicates.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	if ident == "" {
		return ILLEGAL
	}
	if c := ident[0]; 'A' <= c && c <= 'Z' {
		return PREDICATE
	}
	return VARIABLE
}
