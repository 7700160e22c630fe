package cpu

import (
	"fmt"
	"strings"
)

// CodeOp is a decoded operation.
type CodeOp int

//go:generate go tool stringer -linecomment -type=CodeOp
const (
	OP_INVALID = CodeOp(0) // invalid
	OP_ADD     = CodeOp(1) // add
	OP_SUB     = CodeOp(2) // sub
	OP_ADDI    = CodeOp(3) // addi
	OP_LW      = CodeOp(4) // lw
	OP_SW      = CodeOp(5) // sw
	OP_BNE     = CodeOp(6) // bne
	OP_JAL     = CodeOp(7) // jal
)

// Opcode represents a line of assembled code with its source location and decoded instruction.
type Opcode struct {
	LineNo    int      // Source line number.
	Ip        int      // Index in the program.
	Name      string   // Mnemonic as written.
	Args      []string // Argument tokens as written.
	Code      Code     // Decoded instruction, valid if Err is nil.
	LinkLabel string   // Label linked into Code.Target.
	Err       error    // Decode fault, raised when executed.
}

// Code is a decoded instruction.
//
//	add  Rd, Rs1, Rs2
//	sub  Rd, Rs1, Rs2
//	addi Rd, Rs1, Imm
//	lw   Rd, Imm
//	sw   Rd, Imm
//	bne  Rs1, Rs2, Target
//	jal  -, Target
type Code struct {
	Op     CodeOp
	Rd     Register
	Rs1    Register
	Rs2    Register
	Imm    int32 // Immediate for addi, byte address for lw and sw.
	Target int   // Instruction index for bne and jal.
}

// String returns the assembly language representation of this instruction.
func (code Code) String() (out string) {
	switch code.Op {
	case OP_ADD, OP_SUB:
		out = fmt.Sprintf("%v %v, %v, %v", code.Op, code.Rd, code.Rs1, code.Rs2)
	case OP_ADDI:
		out = fmt.Sprintf("%v %v, %v, %d", code.Op, code.Rd, code.Rs1, code.Imm)
	case OP_LW, OP_SW:
		out = fmt.Sprintf("%v %v, %d", code.Op, code.Rd, code.Imm)
	case OP_BNE:
		out = fmt.Sprintf("%v %v, %v, @%d", code.Op, code.Rs1, code.Rs2, code.Target)
	case OP_JAL:
		out = fmt.Sprintf("%v @%d", code.Op, code.Target)
	default:
		out = code.Op.String()
	}

	return
}

// String returns the source form of the opcode.
func (op *Opcode) String() string {
	if len(op.Args) == 0 {
		return op.Name
	}
	return op.Name + " " + strings.Join(op.Args, ", ")
}

// argKind is how an argument token is decoded.
type argKind int

const (
	ARG_REG    = argKind(iota) // Register name.
	ARG_VALUE                  // Signed 32-bit decimal.
	ARG_LABEL                  // Jump label.
	ARG_IGNORE                 // Present, not decoded.
)

// argSyntax describes the arguments of a mnemonic.
type argSyntax struct {
	Op   CodeOp
	Args []argKind
}

var syntaxMap = map[string]argSyntax{
	"add":  {OP_ADD, []argKind{ARG_REG, ARG_REG, ARG_REG}},
	"sub":  {OP_SUB, []argKind{ARG_REG, ARG_REG, ARG_REG}},
	"addi": {OP_ADDI, []argKind{ARG_REG, ARG_REG, ARG_VALUE}},
	"lw":   {OP_LW, []argKind{ARG_REG, ARG_VALUE}},
	"sw":   {OP_SW, []argKind{ARG_REG, ARG_VALUE}},
	"bne":  {OP_BNE, []argKind{ARG_REG, ARG_REG, ARG_LABEL}},
	"jal":  {OP_JAL, []argKind{ARG_IGNORE, ARG_LABEL}},
}
