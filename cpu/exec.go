// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"log"
)

// Tick executes the instruction at the core's PC.
//
// Returns ErrPcEnd once the PC leaves the program, or an *ErrLoop if the
// PC was already executed. Any other error is an *ErrInstruction for a
// faulted instruction; the PC has then advanced to the next instruction.
func (core *Core) Tick(prog *Program, mem Memory) (err error) {
	pc := core.Pc

	op, ok := prog.Opcode(pc)
	if !ok {
		err = ErrPcEnd
		return
	}

	if core.Visited(pc) {
		err = &ErrLoop{Core: core.Id, Pc: pc}
		return
	}
	if core.visited == nil {
		core.visited = make(map[int]struct{})
	}
	core.visited[pc] = struct{}{}
	core.Steps++

	if core.Verbose {
		log.Printf("core %d: %03d: %v", core.Id, pc, op)
	}

	core.Pc, err = core.Execute(op, mem)
	if err != nil {
		err = &ErrInstruction{Core: core.Id, Pc: pc, LineNo: op.LineNo, Name: op.Name, Err: err}
	}

	return
}

// Run ticks the core until it halts, passing every faulted instruction
// to fault. Returns ErrPcEnd or an *ErrLoop.
func (core *Core) Run(prog *Program, mem Memory, fault func(err error)) (err error) {
	var loop *ErrLoop

	for {
		err = core.Tick(prog, mem)
		switch {
		case err == nil:
			// pass
		case errors.Is(err, ErrPcEnd), errors.As(err, &loop):
			return
		case fault != nil:
			fault(err)
		}
	}
}

// Execute executes a single decoded instruction, and returns the next PC.
func (core *Core) Execute(op *Opcode, mem Memory) (next int, err error) {
	next = core.Pc + 1

	if op.Err != nil {
		err = op.Err
		return
	}

	code := op.Code

	var a, b int32

	switch code.Op {
	case OP_ADD, OP_SUB:
		a, err = core.get(code.Rs1)
		if err != nil {
			return
		}
		b, err = core.get(code.Rs2)
		if err != nil {
			return
		}
		if code.Op == OP_SUB {
			err = core.set(code.Rd, a-b)
		} else {
			err = core.set(code.Rd, a+b)
		}
	case OP_ADDI:
		a, err = core.get(code.Rs1)
		if err != nil {
			return
		}
		err = core.set(code.Rd, a+code.Imm)
	case OP_LW:
		a, err = mem.LoadWord(int(code.Imm))
		if err != nil {
			return
		}
		err = core.set(code.Rd, a)
	case OP_SW:
		a, err = core.get(code.Rd)
		if err != nil {
			return
		}
		err = mem.StoreWord(int(code.Imm), a)
	case OP_BNE:
		a, err = core.get(code.Rs1)
		if err != nil {
			return
		}
		b, err = core.get(code.Rs2)
		if err != nil {
			return
		}
		if a != b {
			next, err = jump(op, next)
		}
	case OP_JAL:
		next, err = jump(op, next)
	default:
		err = ErrInstructionInvalid
	}

	return
}

// jump returns the linked target of op, or a fault if it has none.
func jump(op *Opcode, next int) (target int, err error) {
	if op.Code.Target < 0 {
		err = ErrLabelMissing(op.LinkLabel)
		return next, err
	}

	return op.Code.Target, nil
}
