package backend

import (
	"errors"
	"fmt"

	"github.com/funvibe/logicc/internal/asmsim"
	"github.com/funvibe/logicc/internal/pipeline"
)

// AsmBackend executes the generated assembly on the simulator
type AsmBackend struct {
	// Steps is the instruction count of the last run.
	Steps int
}

func NewAsm() *AsmBackend {
	return &AsmBackend{}
}

func (b *AsmBackend) Name() string { return "asm" }

func (b *AsmBackend) Run(ctx *pipeline.PipelineContext) (bool, error) {
	if ctx.Assembly == "" {
		return false, errors.New("no assembly to run")
	}
	res, err := asmsim.Run(ctx.Assembly)
	if err != nil {
		return false, fmt.Errorf("executing assembly: %w", err)
	}
	b.Steps = res.Steps
	return res.Value(), nil
}
