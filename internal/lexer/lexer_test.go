package lexer

import (
	"testing"

	"github.com/funvibe/logicc/internal/token"
)

func TestNextToken(t *testing.T) {
	input := `forall x [a, B] (P(x) /\ ~q) \/ y -> z <-> TRUE ^ FALSE
exists v_1 [c] Q(v_1) // trailing comment
`
	tests := []struct {
		expectedType   token.TokenType
		expectedLexeme string
		line, column   int
	}{
		{token.FORALL, "forall", 1, 1},
		{token.VARIABLE, "x", 1, 8},
		{token.LBRACKET, "[", 1, 10},
		{token.VARIABLE, "a", 1, 11},
		{token.COMMA, ",", 1, 12},
		{token.PREDICATE, "B", 1, 14},
		{token.RBRACKET, "]", 1, 15},
		{token.LPAREN, "(", 1, 17},
		{token.PREDICATE, "P", 1, 18},
		{token.LPAREN, "(", 1, 19},
		{token.VARIABLE, "x", 1, 20},
		{token.RPAREN, ")", 1, 21},
		{token.AND, `/\`, 1, 23},
		{token.NOT, "~", 1, 26},
		{token.VARIABLE, "q", 1, 27},
		{token.RPAREN, ")", 1, 28},
		{token.OR, `\/`, 1, 30},
		{token.VARIABLE, "y", 1, 33},
		{token.IMPLIES, "->", 1, 35},
		{token.VARIABLE, "z", 1, 38},
		{token.IFF, "<->", 1, 40},
		{token.TRUE_VAL, "TRUE", 1, 44},
		{token.XOR, "^", 1, 49},
		{token.FALSE_VAL, "FALSE", 1, 51},
		{token.EXISTS, "exists", 2, 1},
		{token.VARIABLE, "v_1", 2, 8},
		{token.LBRACKET, "[", 2, 12},
		{token.VARIABLE, "c", 2, 13},
		{token.RBRACKET, "]", 2, 14},
		{token.PREDICATE, "Q", 2, 16},
		{token.LPAREN, "(", 2, 17},
		{token.VARIABLE, "v_1", 2, 18},
		{token.RPAREN, ")", 2, 21},
		{token.EOF, "", 3, 1},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - type wrong. expected=%q, got=%q (%q)", i, tt.expectedType, tok.Type, tok.Lexeme)
		}
		if tok.Lexeme != tt.expectedLexeme {
			t.Fatalf("tests[%d] - lexeme wrong. expected=%q, got=%q", i, tt.expectedLexeme, tok.Lexeme)
		}
		if tok.Line != tt.line || tok.Column != tt.column {
			t.Fatalf("tests[%d] %q - position wrong. expected=%d:%d, got=%d:%d",
				i, tok.Lexeme, tt.line, tt.column, tok.Line, tok.Column)
		}
	}
}

func TestIllegalCharacters(t *testing.T) {
	tests := []struct {
		input  string
		lexeme string
	}{
		{"$", "$"},
		{"/ x", "/"},
		{`\ x`, `\`},
		{"- x", "-"},
		{"<- x", "<"},
		{"1", "1"},
	}
	for _, tt := range tests {
		tok := New(tt.input).NextToken()
		if tok.Type != token.ILLEGAL {
			t.Errorf("%q: expected ILLEGAL, got %s", tt.input, tok.Type)
		}
		if tok.Lexeme != tt.lexeme {
			t.Errorf("%q: expected lexeme %q, got %q", tt.input, tt.lexeme, tok.Lexeme)
		}
	}
}

func TestTokenStreamTracksLastScannedPosition(t *testing.T) {
	s := NewTokenStream(New("a\n  /\\ B"))
	if got := s.Next(); got.Type != token.VARIABLE {
		t.Fatalf("expected VARIABLE, got %s", got.Type)
	}
	if pos := s.Position(); pos != (token.Position{Line: 1, Column: 1}) {
		t.Errorf("after first token, Position() = %v", pos)
	}
	s.Next()
	if pos := s.Position(); pos != (token.Position{Line: 2, Column: 3}) {
		t.Errorf("after AND, Position() = %v", pos)
	}
	s.Next()
	eof := s.Next()
	if eof.Type != token.EOF {
		t.Fatalf("expected EOF, got %s", eof.Type)
	}
	if again := s.Next(); again != eof {
		t.Errorf("EOF should repeat, got %+v", again)
	}
	if s.Scanned() != 4 {
		t.Errorf("Scanned() = %d, want 4", s.Scanned())
	}
}

func TestEmbeddedControlCharacters(t *testing.T) {
	tests := []struct {
		input  string
		lexeme string
		column int
	}{
		{"a \x00 b", "\x00", 3},
		{"a \x07 b", "\x07", 3},
		{"a // note\x00 more\n\x00", "\x00", 1},
	}
	for _, tt := range tests {
		l := New(tt.input)
		var types []token.TokenType
		var illegal token.Token
		for tok := l.NextToken(); tok.Type != token.EOF; tok = l.NextToken() {
			types = append(types, tok.Type)
			if tok.Type == token.ILLEGAL {
				illegal = tok
			}
		}
		if illegal.Type != token.ILLEGAL || illegal.Lexeme != tt.lexeme || illegal.Column != tt.column {
			t.Errorf("%q: expected ILLEGAL %q at column %d, got %+v (tokens %v)",
				tt.input, tt.lexeme, tt.column, illegal, types)
		}
		if types[len(types)-1] == token.ILLEGAL && tt.input[len(tt.input)-1] != 0 {
			t.Errorf("%q: scanning stopped at the control character: %v", tt.input, types)
		}
	}
}
