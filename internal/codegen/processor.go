package codegen

import (
	"bytes"
	"errors"
	"io"

	"github.com/funvibe/logicc/internal/diagnostics"
	"github.com/funvibe/logicc/internal/pipeline"
	"github.com/funvibe/logicc/internal/token"
)

// CodegenProcessor runs the generator as the last pipeline stage. The
// assembly is always kept in ctx.Assembly; it is also written to
// Options.OutputFile when one is set.
type CodegenProcessor struct {
	Options Options
}

func NewCodegenProcessor(opts Options) *CodegenProcessor {
	return &CodegenProcessor{Options: opts}
}

func (cp *CodegenProcessor) Name() string { return "codegen" }

func (cp *CodegenProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	// If previous steps failed, don't generate
	if ctx.AstRoot == nil || ctx.HasErrors() {
		return ctx
	}

	var buf bytes.Buffer
	g := NewGenerator()

	var err error
	if cp.Options.OutputFile == "" {
		err = g.Emit(&buf, ctx.AstRoot, cp.Options.Mode())
	} else {
		opts := cp.Options
		opts.Listing = &buf
		if cp.Options.Listing != nil {
			opts.Listing = io.MultiWriter(&buf, cp.Options.Listing)
		}
		err = g.Generate(ctx.AstRoot, opts)
	}

	if err != nil {
		cp.report(ctx, err)
		return ctx
	}
	ctx.Assembly = buf.String()
	return ctx
}

func (cp *CodegenProcessor) report(ctx *pipeline.PipelineContext, err error) {
	var sink *SinkError
	var internal *InternalError
	var d *diagnostics.DiagnosticError
	switch {
	case errors.As(err, &sink):
		d = diagnostics.NewError(diagnostics.ErrC002, token.Position{}, "%s", sink.Error())
	case errors.As(err, &internal) && internal.Node != nil:
		d = diagnostics.NewError(diagnostics.ErrC001, internal.Node.Position(), "%s", internal.Error())
	default:
		d = diagnostics.NewError(diagnostics.ErrC001, token.Position{}, "%s", err.Error())
	}
	d.File = ctx.FilePath
	ctx.Errors = append(ctx.Errors, d)
}
