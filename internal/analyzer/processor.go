package analyzer

import (
	"github.com/funvibe/logicc/internal/config"
	"github.com/funvibe/logicc/internal/pipeline"
	"github.com/funvibe/logicc/internal/symbols"
)

type SemanticAnalyzerProcessor struct{}

func (sap *SemanticAnalyzerProcessor) Name() string { return "analyzer" }

func (sap *SemanticAnalyzerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	// Nothing to analyze after a failed parse.
	if ctx.AstRoot == nil || ctx.SyntaxErrors > 0 || ctx.HasErrors() {
		return ctx
	}

	analyzer := New(symbols.NewSymbolTable(config.SymbolTableBuckets))
	result := analyzer.Analyze(ctx.AstRoot)

	for _, err := range result.Errors {
		err.File = ctx.FilePath
	}
	for _, w := range result.Warnings {
		w.File = ctx.FilePath
	}
	ctx.Errors = append(ctx.Errors, result.Errors...)
	ctx.Warnings = append(ctx.Warnings, result.Warnings...)

	return ctx
}
