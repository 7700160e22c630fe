// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO":         "0",
	"REGISTER_COUNT": fmt.Sprintf("%d", REGISTER_COUNT),
}

const (
	MAX_LINE_SIZE = 1 << 30 // Longest accepted source line, in bytes.
)

var reExpression = regexp.MustCompile(`\$\([^\$]*\)`)

// Assembler is a single pass assembler for the mcsim cores.
type Assembler struct {
	Verbose   bool     // If set, verbosely logs the assembler actions.
	Registers int      // Registers per core. REGISTER_COUNT if zero.
	Opcode    []Opcode // List of generated opcodes.

	predefine map[string]string // Predefines
	Label     map[string]int    // Map of jump labels to opcode indexes.
	Equate    map[string]string // Map of equates.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// registers returns the register count used to decode register names.
func (asm *Assembler) registers() int {
	if asm.Registers <= 0 {
		return REGISTER_COUNT
	}
	return asm.Registers
}

// equate returns the value of word if it is an equate.
func (asm *Assembler) equate(word string) string {
	value, ok := asm.Equate[word]
	if ok {
		return value
	}
	return word
}

// valueOf returns the value of a decimal literal.
func (asm *Assembler) valueOf(word string) (value int32, err error) {
	v64, perr := strconv.ParseInt(word, 10, 32)
	if perr != nil {
		err = ErrParseNumber(word)
		return
	}

	value = int32(v64)
	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		v64, perr := strconv.ParseInt(str, 0, 64)
		if perr != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// expand replaces all $(...) expressions of a line by their decimal value.
func (asm *Assembler) expand(line string) (out string, err error) {
	out = reExpression.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			if err == nil {
				err = _err
			}
			return str
		}
		return fmt.Sprintf("%d", value)
	})

	return
}

// nextWord splits the first whitespace delimited word from text.
func nextWord(text string) (word string, rest string) {
	text = strings.TrimLeft(text, " \t")
	n := strings.IndexAny(text, " \t")
	if n < 0 {
		return text, ""
	}

	return text[:n], text[n:]
}

// splitArgs splits comma separated arguments.
func splitArgs(text string) (args []string) {
	text = strings.TrimSpace(text)
	if len(text) == 0 {
		return
	}

	args = strings.Split(text, ",")
	for n, arg := range args {
		args[n] = strings.TrimSpace(arg)
	}

	return
}

// define applies a '.equ NAME VALUE' directive.
func (asm *Assembler) define(args []string) (err error) {
	if len(args) != 2 {
		err = ErrEquateSyntax
		return
	}

	_, ok := asm.Equate[args[0]]
	if ok {
		err = &ErrDecode{Token: args[0], Err: ErrEquateDuplicate}
		return
	}

	asm.Equate[args[0]] = args[1]
	return
}

// parseLine parses a single comment-stripped line. Lines that cannot be
// decoded become faulted opcodes.
func (asm *Assembler) parseLine(line string, lineno int) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do $() evaluations. A bad expression only faults an instruction.
	line, expr_err := asm.expand(line)

	word, rest := nextWord(line)
	if len(word) == 0 {
		return
	}

	// .equ CONST VALUE
	if word == ".equ" {
		op := Opcode{
			LineNo: lineno,
			Ip:     len(asm.Opcode),
			Name:   word,
			Args:   strings.Fields(rest),
		}

		op.Err = expr_err
		if op.Err == nil {
			op.Err = asm.define(op.Args)
		}
		if op.Err == nil {
			return
		}

		if asm.Verbose {
			log.Printf("%v: %v", lineno, op.Err)
		}
		asm.Opcode = append(asm.Opcode, op)
		return
	}

	for strings.HasSuffix(word, ":") {
		label := word[:len(word)-1]
		ip, ok := asm.Label[label]
		if ok && asm.Verbose {
			log.Printf("%v: label %v redefined (was %v)", lineno, label, ip)
		}
		asm.Label[label] = len(asm.Opcode)
		if asm.Verbose {
			log.Printf("%v: label %v = %v", lineno, label, len(asm.Opcode))
		}

		word, rest = nextWord(rest)
		if len(word) == 0 {
			return
		}
	}

	op := Opcode{
		LineNo: lineno,
		Ip:     len(asm.Opcode),
		Name:   word,
		Args:   splitArgs(rest),
	}

	if expr_err != nil {
		op.Err = expr_err
	} else {
		op.Code, op.LinkLabel, op.Err = asm.decode(op.Name, op.Args)
	}

	asm.Opcode = append(asm.Opcode, op)
}

// decode decodes a mnemonic and its arguments.
func (asm *Assembler) decode(name string, args []string) (code Code, label string, err error) {
	syn, ok := syntaxMap[name]
	if !ok {
		err = ErrInstructionInvalid
		return
	}

	if len(args) < len(syn.Args) {
		err = ErrOpcodeMissing
		return
	}

	if len(args) > len(syn.Args) {
		err = ErrOpcodeExtraArgs
		return
	}

	code.Op = syn.Op

	regs := [](*Register){&code.Rd, &code.Rs1, &code.Rs2}
	if code.Op == OP_BNE {
		regs = regs[1:]
	}

	for n, kind := range syn.Args {
		arg := args[n]
		switch kind {
		case ARG_REG:
			*regs[0], err = ParseRegister(asm.equate(arg), asm.registers())
			regs = regs[1:]
		case ARG_VALUE:
			code.Imm, err = asm.valueOf(asm.equate(arg))
		case ARG_LABEL:
			label = arg
		case ARG_IGNORE:
			// pass
		}
		if err != nil {
			return
		}
	}

	return
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(nil, MAX_LINE_SIZE)

	var lineno int

	asm.Label = make(map[string]int, 16)
	asm.Opcode = asm.Opcode[:0]
	asm.Equate = maps.Clone(sysEquate)
	asm.Equate["REGISTER_COUNT"] = fmt.Sprintf("%d", asm.registers())
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line, _, _ := strings.Cut(text, "#")

		asm.parseLine(line, lineno)
	}

	err = scanner.Err()
	if err != nil {
		err = &ErrLoad{Err: err}
		return
	}

	// Labels past the last instruction do not name an instruction.
	for label, ip := range asm.Label {
		if ip >= len(asm.Opcode) {
			if asm.Verbose {
				log.Printf("label %v has no instruction", label)
			}
			delete(asm.Label, label)
		}
	}

	// Final linking of jump labels. Missing labels fault when the jump is taken.
	for n := range asm.Opcode {
		op := &asm.Opcode[n]

		if op.Err != nil || len(op.LinkLabel) == 0 {
			continue
		}
		ip, ok := asm.Label[op.LinkLabel]
		if !ok {
			ip = -1
		}
		op.Code.Target = ip
	}

	prog = &Program{
		Opcodes: append([]Opcode(nil), asm.Opcode...),
		Label:   maps.Clone(asm.Label),
	}

	return
}
