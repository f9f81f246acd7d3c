package pipeline

import (
	"io"

	"github.com/google/uuid"

	"github.com/funvibe/logicc/internal/ast"
	"github.com/funvibe/logicc/internal/diagnostics"
	"github.com/funvibe/logicc/internal/token"
)

// Processor is one stage of the compilation pipeline.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// TokenStream is the contract between the tokenizer and the parser driver.
type TokenStream interface {
	Next() token.Token
	// Position is the start of the most recently scanned token.
	Position() token.Position
}

// PipelineContext carries one compilation run through every stage.
type PipelineContext struct {
	RunID      string
	SourceCode string
	FilePath   string

	TokenStream  TokenStream
	AstRoot      ast.Node
	SyntaxErrors int

	Errors   []*diagnostics.DiagnosticError
	Warnings []*diagnostics.DiagnosticError

	// Assembly is the generated program text, set by the code generator.
	Assembly string

	// Result is the program's value once an execution stage has run.
	Result *bool

	// Trace receives one line per stage when non-nil.
	Trace io.Writer
}

func NewPipelineContext(source string) *PipelineContext {
	return &PipelineContext{
		RunID:      uuid.NewString(),
		SourceCode: source,
	}
}

// HasErrors reports whether any stage recorded an error (warnings excluded).
func (ctx *PipelineContext) HasErrors() bool {
	return len(ctx.Errors) > 0
}
