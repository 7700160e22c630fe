package cpu

import (
	"iter"
	"slices"
)

// Program is an assembled instruction listing shared by all cores.
type Program struct {
	Opcodes []Opcode       // Instructions, in execution order.
	Label   map[string]int // Map of labels to instruction indexes.
}

// Len returns the number of instructions.
func (prog *Program) Len() int {
	return len(prog.Opcodes)
}

// Opcode returns the instruction at pc.
func (prog *Program) Opcode(pc int) (op *Opcode, ok bool) {
	if pc < 0 || pc >= len(prog.Opcodes) {
		return
	}

	return &prog.Opcodes[pc], true
}

// LabelsAt returns the sorted labels bound to pc.
func (prog *Program) LabelsAt(pc int) (labels []string) {
	for label, ip := range prog.Label {
		if ip == pc {
			labels = append(labels, label)
		}
	}
	slices.Sort(labels)

	return
}

// Faults iterates over the instructions that failed to decode.
func (prog *Program) Faults() iter.Seq2[int, *Opcode] {
	return func(yield func(pc int, op *Opcode) bool) {
		for n := range prog.Opcodes {
			op := &prog.Opcodes[n]
			if op.Err == nil {
				continue
			}
			if !yield(n, op) {
				return
			}
		}
	}
}
