package lexer

import "github.com/funvibe/logicc/internal/pipeline"

type LexerProcessor struct{}

func (lp *LexerProcessor) Name() string { return "lexer" }

// Process attaches a token stream over the source. Tokens are scanned lazily
// by the parser; illegal characters surface as ILLEGAL tokens there.
func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	ctx.TokenStream = NewTokenStream(New(ctx.SourceCode))
	return ctx
}
