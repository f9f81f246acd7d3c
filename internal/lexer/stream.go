package lexer

import "github.com/funvibe/logicc/internal/token"

// TokenStream hands tokens to the parser one at a time and remembers where the
// most recently scanned token starts. AST construction stamps nodes with that
// position, the way a table-driven parser reads the scanner's line/column
// globals at reduction time.
type TokenStream struct {
	lexer   *Lexer
	current token.Position
	scanned int
	done    bool
	eof     token.Token
}

func NewTokenStream(l *Lexer) *TokenStream {
	return &TokenStream{lexer: l, current: token.Position{Line: 1, Column: 1}}
}

// Next scans the next token. Once EOF has been produced it is returned forever.
func (s *TokenStream) Next() token.Token {
	if s.done {
		return s.eof
	}
	tok := s.lexer.NextToken()
	s.current = tok.Position()
	s.scanned++
	if tok.Type == token.EOF {
		s.done = true
		s.eof = tok
	}
	return tok
}

// Position is the start of the most recently scanned token.
func (s *TokenStream) Position() token.Position {
	return s.current
}

// Scanned returns the number of tokens produced so far, EOF included.
func (s *TokenStream) Scanned() int {
	return s.scanned
}
