package cpu

import (
	"errors"

	"github.com/ezrec/mcsim/translate"
)

var f = translate.From

var (
	// Core halting conditions
	ErrPcEnd = errors.New(f("pc end"))

	// Instruction decode errors
	ErrInstructionInvalid = errors.New(f("unknown instruction"))
	ErrRegisterInvalid    = errors.New(f("register invalid"))
	ErrOpcodeMissing      = errors.New(f("argument missing"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))

	// Assembler directive errors
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
)

// ErrLabelMissing is an unresolved label reference.
type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrDecode is an operand that could not be decoded.
type ErrDecode struct {
	Token string
	Err   error
}

func (err *ErrDecode) Error() string {
	return f("'%v' %v", err.Token, err.Err)
}

func (err *ErrDecode) Unwrap() error {
	return err.Err
}

// ErrLoad indicates the program source could not be read.
type ErrLoad struct {
	Path string
	Err  error
}

func (err *ErrLoad) Error() string {
	if len(err.Path) == 0 {
		return f("unable to load program: %v", err.Err)
	}
	return f("unable to load %v: %v", err.Path, err.Err)
}

func (err *ErrLoad) Unwrap() error {
	return err.Err
}

// ErrLoop is returned when a core revisits a PC.
type ErrLoop struct {
	Core int
	Pc   int
}

func (err *ErrLoop) Error() string {
	return f("Infinite loop detected at PC %d on core %d", err.Pc, err.Core)
}

// ErrInstruction is a recoverable fault raised while executing one
// instruction. The core has already moved on to the next PC.
type ErrInstruction struct {
	Core   int
	Pc     int
	LineNo int
	Name   string // Mnemonic as written in the source.
	Err    error
}

func (err *ErrInstruction) Error() string {
	if errors.Is(err.Err, ErrInstructionInvalid) {
		return f("Unknown instruction: %v", err.Name)
	}
	return f("Error processing instruction: %v -> %v", err.Name, err.Err)
}

func (err *ErrInstruction) Unwrap() error {
	return err.Err
}
