// Package backend provides the execution backends behind -run.
// Both compute the truth value of a checked program: one runs the generated
// assembly, the other walks the tree.
package backend

import (
	"fmt"

	"github.com/funvibe/logicc/internal/pipeline"
)

// Backend is the interface for execution backends
type Backend interface {
	// Run evaluates the program in ctx and returns its truth value
	Run(ctx *pipeline.PipelineContext) (bool, error)

	// Name returns the backend name for display
	Name() string
}

// New returns the backend called name: "asm" or "tree".
func New(name string) (Backend, error) {
	switch name {
	case "asm", "":
		return NewAsm(), nil
	case "tree":
		return NewTreeWalk(), nil
	}
	return nil, fmt.Errorf("unknown backend %q (want asm or tree)", name)
}
