package codegen

import "io"

// Mode selects how connectives and quantifier loops are compiled.
type Mode int

const (
	// ModeNormal evaluates every operand.
	ModeNormal Mode = iota
	// ModeShortCircuit skips operands once the result is decided.
	ModeShortCircuit
	// ModeOptimized currently generates the same code as ModeShortCircuit.
	ModeOptimized
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeShortCircuit:
		return "short-circuit"
	case ModeOptimized:
		return "optimized"
	default:
		return "unknown"
	}
}

// shortCircuits reports whether m branches around operands.
func (m Mode) shortCircuits() bool {
	return m == ModeShortCircuit || m == ModeOptimized
}

// Options controls one Generate call.
type Options struct {
	ShortCircuit bool
	// Optimize implies ShortCircuit.
	Optimize bool

	// OutputFile is created (or truncated) to receive the assembly.
	OutputFile string

	// Listing, when set, receives a copy of everything written to OutputFile.
	Listing io.Writer
}

// Mode resolves the flags to a generation mode.
func (o Options) Mode() Mode {
	switch {
	case o.Optimize:
		return ModeOptimized
	case o.ShortCircuit:
		return ModeShortCircuit
	default:
		return ModeNormal
	}
}
