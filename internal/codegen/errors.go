package codegen

import (
	"fmt"

	"github.com/funvibe/logicc/internal/ast"
)

// InternalError reports a tree the generator cannot compile: a nil child,
// an unknown operator or quantifier, or an empty domain. It can only happen
// when an earlier phase produced a malformed tree.
type InternalError struct {
	Node ast.Node // nil when the offending node is itself missing
	Msg  string
	Err  error
}

func (e *InternalError) Error() string {
	msg := "internal code generation error: " + e.Msg
	if e.Node != nil {
		pos := e.Node.Position()
		msg += fmt.Sprintf(" at line %d, column %d", pos.Line, pos.Column)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *InternalError) Unwrap() error { return e.Err }

// SinkError reports that the output could not be opened or written.
type SinkError struct {
	Op   string // "open" or "write"
	Path string
	Err  error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("could not %s output file '%s': %v", e.Op, e.Path, e.Err)
}

func (e *SinkError) Unwrap() error { return e.Err }
