package pipeline

import "fmt"

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		if ctx.Trace != nil {
			fmt.Fprintf(ctx.Trace, "[run %s] %s\n", ctx.RunID, stageName(processor))
		}
		ctx = processor.Process(ctx)
		// Continue on errors to collect diagnostics from all stages;
		// each stage decides for itself whether it has input to work on.
	}
	return ctx
}

func stageName(p Processor) string {
	if named, ok := p.(interface{ Name() string }); ok {
		return named.Name()
	}
	return fmt.Sprintf("%T", p)
}
