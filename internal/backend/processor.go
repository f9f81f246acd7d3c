package backend

import (
	"github.com/funvibe/logicc/internal/diagnostics"
	"github.com/funvibe/logicc/internal/pipeline"
	"github.com/funvibe/logicc/internal/token"
)

// ExecutionProcessor runs a Backend as a pipeline stage and stores the
// program's value in ctx.Result.
type ExecutionProcessor struct {
	Backend Backend
}

func NewExecutionProcessor(b Backend) *ExecutionProcessor {
	return &ExecutionProcessor{Backend: b}
}

func (p *ExecutionProcessor) Name() string { return "run:" + p.Backend.Name() }

func (p *ExecutionProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	// If previous steps failed, don't run execution
	if ctx.AstRoot == nil || ctx.HasErrors() {
		return ctx
	}

	value, err := p.Backend.Run(ctx)
	if err != nil {
		d := diagnostics.NewError(diagnostics.ErrR001, token.Position{}, "%s", err)
		d.File = ctx.FilePath
		ctx.Errors = append(ctx.Errors, d)
		return ctx
	}
	ctx.Result = &value
	return ctx
}
