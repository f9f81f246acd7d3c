package codegen

import (
	"errors"

	"github.com/funvibe/logicc/internal/config"
)

type Register int

const (
	EAX Register = iota
	EBX
	ECX
	EDX
	ESI
	EDI
)

// Accumulator holds every fragment's 0/1 result.
const Accumulator = EAX

// Implicit registers used by the emitted code: the accumulator, the
// right-operand scratch register and the quantifier counter.
var implicitRegisters = []Register{EAX, ECX, EDX}

func (r Register) String() string {
	switch r {
	case EAX:
		return "%eax"
	case EBX:
		return "%ebx"
	case ECX:
		return "%ecx"
	case EDX:
		return "%edx"
	case ESI:
		return "%esi"
	case EDI:
		return "%edi"
	default:
		return "unknown_register"
	}
}

// ErrRegistersExhausted is returned by Allocate when every slot is in use.
var ErrRegistersExhausted = errors.New("no free registers available")

// RegisterPool tracks which general-purpose registers are in use.
type RegisterPool struct {
	inUse [config.RegisterCount]bool
}

// Allocate marks the first free register as in use and returns it.
func (p *RegisterPool) Allocate() (Register, error) {
	for i, used := range p.inUse {
		if !used {
			p.inUse[i] = true
			return Register(i), nil
		}
	}
	return 0, ErrRegistersExhausted
}

// Free releases r. Freeing an out-of-range register does nothing.
func (p *RegisterPool) Free(r Register) {
	if r >= 0 && int(r) < len(p.inUse) {
		p.inUse[r] = false
	}
}

func (p *RegisterPool) InUse(r Register) bool {
	return r >= 0 && int(r) < len(p.inUse) && p.inUse[r]
}

// Available returns the number of free registers.
func (p *RegisterPool) Available() int {
	n := 0
	for _, used := range p.inUse {
		if !used {
			n++
		}
	}
	return n
}

// reset frees every register and reserves the implicit ones.
func (p *RegisterPool) reset() {
	p.inUse = [config.RegisterCount]bool{}
	for _, r := range implicitRegisters {
		p.inUse[r] = true
	}
}
