package diagnostics

import (
	"fmt"

	"github.com/funvibe/logicc/internal/token"
)

type ErrorCode string

const (
	ErrL001  ErrorCode = "L001" // illegal character
	ErrP001  ErrorCode = "P001" // syntax error
	ErrP002  ErrorCode = "P002" // unexpected end of input
	ErrA001  ErrorCode = "A001" // unbound variable
	ErrA002  ErrorCode = "A002" // predicate arity mismatch
	ErrA003  ErrorCode = "A003" // symbol already defined in this scope
	ErrA004  ErrorCode = "A004" // symbol is not a variable
	ErrA005  ErrorCode = "A005" // symbol is not a predicate
	ErrA006  ErrorCode = "A006" // malformed expression tree
	WarnW001 ErrorCode = "W001" // variable shadows an enclosing binding
	ErrC001  ErrorCode = "C001" // internal code generation error
	ErrC002  ErrorCode = "C002" // output cannot be opened
	ErrR001  ErrorCode = "R001" // program could not be executed
)

type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "Warning"
	}
	return "Error"
}

// DiagnosticError is a single error or warning tied to a source position.
type DiagnosticError struct {
	Code     ErrorCode
	Severity Severity
	Pos      token.Position
	Lexeme   string // offending token text, when there is one
	File     string
	Message  string
}

func (e *DiagnosticError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s: [%s] %s", e.File, e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *DiagnosticError) IsWarning() bool {
	return e.Severity == SeverityWarning
}

func NewError(code ErrorCode, pos token.Position, format string, args ...any) *DiagnosticError {
	return &DiagnosticError{
		Code:     code,
		Severity: SeverityError,
		Pos:      pos,
		Message:  fmt.Sprintf(format, args...),
	}
}

func NewWarning(code ErrorCode, pos token.Position, format string, args ...any) *DiagnosticError {
	return &DiagnosticError{
		Code:     code,
		Severity: SeverityWarning,
		Pos:      pos,
		Message:  fmt.Sprintf(format, args...),
	}
}

// NewTokenError reports a problem at a token, keeping its text for context.
func NewTokenError(code ErrorCode, tok token.Token, format string, args ...any) *DiagnosticError {
	err := NewError(code, tok.Position(), format, args...)
	err.Lexeme = tok.Lexeme
	return err
}
