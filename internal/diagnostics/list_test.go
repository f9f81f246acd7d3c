package diagnostics

import (
	"strings"
	"testing"

	"github.com/funvibe/logicc/internal/token"
)

func TestListCapsEntries(t *testing.T) {
	l := NewList(3)
	for i := 0; i < 5; i++ {
		kept := l.Add(NewError(ErrA001, token.Position{Line: 1, Column: i + 1}, "error %d", i))
		if want := i < 3; kept != want {
			t.Errorf("Add #%d: kept=%v, want %v", i, kept, want)
		}
	}
	if l.Len() != 3 {
		t.Errorf("Len() = %d, want 3", l.Len())
	}
	if l.Dropped() != 2 {
		t.Errorf("Dropped() = %d, want 2", l.Dropped())
	}
	if got := l.Entries()[2].Message; got != "error 2" {
		t.Errorf("last kept entry = %q, want %q", got, "error 2")
	}
}

func TestDiagnosticFormatting(t *testing.T) {
	tok := token.Token{Type: token.ILLEGAL, Lexeme: "$", Line: 2, Column: 7}
	err := NewTokenError(ErrL001, tok, "illegal character %q", tok.Lexeme)
	if err.Lexeme != "$" || err.Pos.Line != 2 || err.Pos.Column != 7 {
		t.Fatalf("unexpected diagnostic: %+v", err)
	}
	if got := err.Error(); got != `[L001] illegal character "$"` {
		t.Errorf("Error() = %q", got)
	}
	err.File = "input.logic"
	if !strings.HasPrefix(err.Error(), "input.logic: ") {
		t.Errorf("Error() with file = %q", err.Error())
	}

	w := NewWarning(WarnW001, token.Position{Line: 1, Column: 1}, "shadow")
	if !w.IsWarning() || w.Severity.String() != "Warning" {
		t.Errorf("expected a warning, got %+v", w)
	}
}
