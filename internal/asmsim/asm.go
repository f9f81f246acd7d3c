package asmsim

import (
	"fmt"
	"strconv"
	"strings"
)

type opKind int

const (
	opImmediate opKind = iota
	opRegister
	opLabel
)

type operand struct {
	kind  opKind
	imm   uint32
	reg   int
	label string
}

type instruction struct {
	lineNo   int
	mnemonic string
	operands []operand
}

// program is an assembled listing: instructions in order plus label targets.
type program struct {
	code   []instruction
	labels map[string]int
}

var registerIndex = map[string]int{
	"%eax": regEAX,
	"%ebx": regEBX,
	"%ecx": regECX,
	"%edx": regEDX,
	"%esi": regESI,
	"%edi": regEDI,
	"%esp": regESP,
	"%ebp": regEBP,
}

// operand counts by mnemonic
var arity = map[string]int{
	"movl":  2,
	"andl":  2,
	"orl":   2,
	"xorl":  2,
	"cmpl":  2,
	"pushl": 1,
	"popl":  1,
	"incl":  1,
	"je":    1,
	"jne":   1,
	"jl":    1,
	"jmp":   1,
	"ret":   0,
}

// assemble resolves labels in a first pass and decodes instructions in a
// second, the same two passes an assembler makes.
func assemble(code string) (*program, error) {
	lines := strings.Split(code, "\n")
	p := &program{labels: make(map[string]int)}

	// pass 1: label addresses
	addr := 0
	for i, raw := range lines {
		label, rest := splitLine(raw)
		if label != "" {
			if _, exists := p.labels[label]; exists {
				return nil, fmt.Errorf("duplicate label '%s' on line %d", label, i+1)
			}
			p.labels[label] = addr
		}
		if rest != "" && !strings.HasPrefix(rest, ".") {
			addr++
		}
	}

	// pass 2: decode
	for i, raw := range lines {
		lineNo := i + 1
		_, rest := splitLine(raw)
		if rest == "" || strings.HasPrefix(rest, ".") {
			// directives (.text, .globl) carry no behaviour here
			continue
		}
		inst, err := decode(rest, lineNo, p.labels)
		if err != nil {
			return nil, err
		}
		p.code = append(p.code, inst)
	}
	return p, nil
}

// splitLine strips the comment and returns the label defined on the line,
// if any, and the remaining statement.
func splitLine(raw string) (label, rest string) {
	if hash := strings.IndexByte(raw, '#'); hash >= 0 {
		raw = raw[:hash]
	}
	line := strings.TrimSpace(raw)
	if colon := strings.IndexByte(line, ':'); colon > 0 && !strings.ContainsAny(line[:colon], " \t,") {
		return line[:colon], strings.TrimSpace(line[colon+1:])
	}
	return "", line
}

func decode(stmt string, lineNo int, labels map[string]int) (instruction, error) {
	mnemonic, args, _ := strings.Cut(stmt, " ")
	mnemonic = strings.ToLower(mnemonic)
	want, ok := arity[mnemonic]
	if !ok {
		return instruction{}, fmt.Errorf("unknown instruction on line %d: %s", lineNo, mnemonic)
	}

	inst := instruction{lineNo: lineNo, mnemonic: mnemonic}
	args = strings.TrimSpace(args)
	if args != "" {
		for _, field := range strings.Split(args, ",") {
			op, err := parseOperand(strings.TrimSpace(field), lineNo, labels)
			if err != nil {
				return instruction{}, err
			}
			inst.operands = append(inst.operands, op)
		}
	}
	if len(inst.operands) != want {
		return instruction{}, fmt.Errorf("%s expects %d operand(s) on line %d, got %d",
			mnemonic, want, lineNo, len(inst.operands))
	}
	return inst, nil
}

func parseOperand(s string, lineNo int, labels map[string]int) (operand, error) {
	switch {
	case strings.HasPrefix(s, "$"):
		v, err := strconv.ParseInt(s[1:], 0, 64)
		if err != nil {
			return operand{}, fmt.Errorf("invalid immediate '%s' on line %d", s, lineNo)
		}
		return operand{kind: opImmediate, imm: uint32(v)}, nil
	case strings.HasPrefix(s, "%"):
		reg, ok := registerIndex[strings.ToLower(s)]
		if !ok {
			return operand{}, fmt.Errorf("unknown register '%s' on line %d", s, lineNo)
		}
		return operand{kind: opRegister, reg: reg}, nil
	default:
		if _, ok := labels[s]; !ok {
			return operand{}, fmt.Errorf("undefined label '%s' on line %d", s, lineNo)
		}
		return operand{kind: opLabel, label: s}, nil
	}
}
