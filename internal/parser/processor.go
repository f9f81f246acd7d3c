package parser

import (
	"github.com/funvibe/logicc/internal/diagnostics"
	"github.com/funvibe/logicc/internal/pipeline"
	"github.com/funvibe/logicc/internal/token"
)

type ParserProcessor struct{}

func (pp *ParserProcessor) Name() string { return "parser" }

func (pp *ParserProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.TokenStream == nil {
		err := diagnostics.NewError(diagnostics.ErrP001, token.Position{}, "parser: token stream is nil")
		err.File = ctx.FilePath
		ctx.Errors = append(ctx.Errors, err)
		return ctx
	}

	parser := New(ctx.TokenStream, ctx)
	ctx.AstRoot = parser.ParseProgram()
	ctx.SyntaxErrors = parser.SyntaxErrors()

	// Ensure all errors have file path set
	for _, err := range ctx.Errors {
		if err.File == "" {
			err.File = ctx.FilePath
		}
	}

	return ctx
}
