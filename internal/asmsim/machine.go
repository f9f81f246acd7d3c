// Package asmsim executes the x86 subset emitted by the code generator, so
// generated programs can be checked by running them instead of by reading
// them.
package asmsim

import (
	"errors"
	"fmt"
)

const (
	regEAX = iota
	regEBX
	regECX
	regEDX
	regESI
	regEDI
	regESP
	regEBP
	numRegs
)

// MaxSteps bounds one Run.
const MaxSteps = 1_000_000

const (
	stackTop      = 0x00100000
	returnAddress = 0xFFFFFFFF
)

// ErrStepLimit is returned when a program runs longer than MaxSteps.
var ErrStepLimit = errors.New("step limit exceeded")

// Result is the state of a program that returned from main.
type Result struct {
	EAX   uint32
	Steps int
}

// Value is the boolean result: any non-zero accumulator is TRUE.
func (r Result) Value() bool {
	return r.EAX != 0
}

type machine struct {
	prog  *program
	regs  [numRegs]uint32
	stack map[uint32]uint32
	pc    int

	zero bool // last cmpl compared equal
	less bool // last cmpl: destination < source, signed
}

// Run assembles code and executes it from main until main returns.
func Run(code string) (Result, error) {
	prog, err := assemble(code)
	if err != nil {
		return Result{}, err
	}
	entry, ok := prog.labels["main"]
	if !ok {
		return Result{}, errors.New("no main label")
	}

	m := &machine{prog: prog, stack: make(map[uint32]uint32), pc: entry}
	m.regs[regESP] = stackTop
	m.push(returnAddress)

	for steps := 0; steps < MaxSteps; steps++ {
		if m.pc >= len(prog.code) {
			return Result{}, fmt.Errorf("fell off the end of the program after %d steps", steps)
		}
		done, err := m.step()
		if err != nil {
			return Result{}, err
		}
		if done {
			return Result{EAX: m.regs[regEAX], Steps: steps + 1}, nil
		}
	}
	return Result{}, ErrStepLimit
}

func (m *machine) push(v uint32) {
	m.regs[regESP] -= 4
	m.stack[m.regs[regESP]] = v
}

func (m *machine) pop() (uint32, error) {
	sp := m.regs[regESP]
	if sp >= stackTop {
		return 0, errors.New("stack underflow")
	}
	v := m.stack[sp]
	delete(m.stack, sp)
	m.regs[regESP] = sp + 4
	return v, nil
}

func (m *machine) value(op operand) uint32 {
	if op.kind == opRegister {
		return m.regs[op.reg]
	}
	return op.imm
}

func (m *machine) store(op operand, v uint32, inst instruction) error {
	if op.kind != opRegister {
		return fmt.Errorf("%s on line %d: destination must be a register", inst.mnemonic, inst.lineNo)
	}
	m.regs[op.reg] = v
	return nil
}

func (m *machine) jump(op operand) {
	m.pc = m.prog.labels[op.label]
}

// step executes one instruction and reports whether main returned.
func (m *machine) step() (bool, error) {
	inst := m.prog.code[m.pc]
	m.pc++
	ops := inst.operands

	switch inst.mnemonic {
	case "movl":
		return false, m.store(ops[1], m.value(ops[0]), inst)
	case "andl":
		return false, m.store(ops[1], m.value(ops[1])&m.value(ops[0]), inst)
	case "orl":
		return false, m.store(ops[1], m.value(ops[1])|m.value(ops[0]), inst)
	case "xorl":
		return false, m.store(ops[1], m.value(ops[1])^m.value(ops[0]), inst)
	case "incl":
		return false, m.store(ops[0], m.value(ops[0])+1, inst)
	case "cmpl":
		// AT&T order: cmpl src, dst compares dst against src
		src, dst := m.value(ops[0]), m.value(ops[1])
		m.zero = dst == src
		m.less = int32(dst) < int32(src)
	case "pushl":
		m.push(m.value(ops[0]))
	case "popl":
		v, err := m.pop()
		if err != nil {
			return false, fmt.Errorf("popl on line %d: %w", inst.lineNo, err)
		}
		return false, m.store(ops[0], v, inst)
	case "je":
		if m.zero {
			m.jump(ops[0])
		}
	case "jne":
		if !m.zero {
			m.jump(ops[0])
		}
	case "jl":
		if m.less {
			m.jump(ops[0])
		}
	case "jmp":
		m.jump(ops[0])
	case "ret":
		addr, err := m.pop()
		if err != nil {
			return false, fmt.Errorf("ret on line %d: %w", inst.lineNo, err)
		}
		if addr != returnAddress {
			return false, fmt.Errorf("ret on line %d: unbalanced stack (return address %#x)", inst.lineNo, addr)
		}
		return true, nil
	}
	return false, nil
}
