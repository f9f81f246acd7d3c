package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/funvibe/logicc/internal/token"
)

type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination
	line         int  // current line number
	column       int  // current column number
}

func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		l.readPosition++
		l.column++
		return
	}

	r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += w
	l.column++
}

func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	line, col := l.line, l.column
	var tok token.Token

	if l.atEOF() {
		return token.Token{Type: token.EOF, Lexeme: "", Line: line, Column: col}
	}

	switch l.ch {
	case '/':
		// /\ is AND; a lone slash is not part of the language
		if l.peekChar() == '\\' {
			l.readChar()
			tok = token.Token{Type: token.AND, Lexeme: `/\`, Line: line, Column: col}
		} else {
			tok = newToken(token.ILLEGAL, l.ch, line, col)
		}
	case '\\':
		if l.peekChar() == '/' {
			l.readChar()
			tok = token.Token{Type: token.OR, Lexeme: `\/`, Line: line, Column: col}
		} else {
			tok = newToken(token.ILLEGAL, l.ch, line, col)
		}
	case '-':
		if l.peekChar() == '>' {
			l.readChar()
			tok = token.Token{Type: token.IMPLIES, Lexeme: "->", Line: line, Column: col}
		} else {
			tok = newToken(token.ILLEGAL, l.ch, line, col)
		}
	case '<':
		if l.peekChar() == '-' && l.peekChar2() == '>' {
			l.readChar()
			l.readChar()
			tok = token.Token{Type: token.IFF, Lexeme: "<->", Line: line, Column: col}
		} else {
			tok = newToken(token.ILLEGAL, l.ch, line, col)
		}
	case '~':
		tok = newToken(token.NOT, l.ch, line, col)
	case '^':
		tok = newToken(token.XOR, l.ch, line, col)
	case '(':
		tok = newToken(token.LPAREN, l.ch, line, col)
	case ')':
		tok = newToken(token.RPAREN, l.ch, line, col)
	case '[':
		tok = newToken(token.LBRACKET, l.ch, line, col)
	case ']':
		tok = newToken(token.RBRACKET, l.ch, line, col)
	case ',':
		tok = newToken(token.COMMA, l.ch, line, col)
	default:
		if isLetter(l.ch) {
			ident := l.readIdentifier()
			// readIdentifier leaves l.ch on the first char after the identifier
			return token.Token{Type: token.LookupIdent(ident), Lexeme: ident, Line: line, Column: col}
		}
		tok = newToken(token.ILLEGAL, l.ch, line, col)
	}

	l.readChar()
	return tok
}

// atEOF reports whether the input is exhausted. A NUL byte inside the
// input is an ordinary (illegal) character.
func (l *Lexer) atEOF() bool {
	return l.position >= len(l.input)
}

func (l *Lexer) readIdentifier() string {
	position := l.position
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}
	return l.input[position:l.position]
}

func isLetter(ch rune) bool {
	return ch < utf8.RuneSelf && unicode.IsLetter(ch)
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) peekChar2() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	_, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
	pos2 := l.readPosition + w
	if pos2 >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[pos2:])
	return r
}

func newToken(tokenType token.TokenType, ch rune, line, col int) token.Token {
	return token.Token{Type: tokenType, Lexeme: string(ch), Line: line, Column: col}
}

func (l *Lexer) skipWhitespace() {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
			l.readChar()
		}
		// Line comments
		if l.ch == '/' && l.peekChar() == '/' {
			for l.ch != '\n' && !l.atEOF() {
				l.readChar()
			}
			continue
		}
		break
	}
}
