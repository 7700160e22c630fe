// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator drives a set of cores over one shared program and
// memory.
//
// Cores are run one at a time, in id order, each to completion.
package emulator

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"log"
	"maps"
	"os"

	"github.com/ezrec/mcsim/cpu"
	"github.com/ezrec/mcsim/internal"
	"github.com/ezrec/mcsim/memory"
)

var _emulator_defines = map[string]string{
	"WORD_SIZE": fmt.Sprintf("%d", memory.WORD_SIZE),
}

// Result is how a core halted.
type Result struct {
	Core   int   // Core identifier.
	Halt   error // cpu.ErrPcEnd or *cpu.ErrLoop.
	Steps  int   // Instructions executed.
	Faults int   // Faulted instructions.
}

// Looped returns the loop detection, if the core halted on one.
func (res Result) Looped() (loop *cpu.ErrLoop, ok bool) {
	ok = errors.As(res.Halt, &loop)
	return
}

// String describes the halting condition.
func (res Result) String() string {
	loop, ok := res.Looped()
	if ok {
		return f("loop at PC %d", loop.Pc)
	}
	return f("end of program")
}

// Emulator state. Cores + shared program + shared memory.
type Emulator struct {
	Verbose bool           // If set, enables verbose logging.
	Config  Config         // Machine shape.
	Program *cpu.Program   // Program run by every core.
	Memory  *memory.Shared // Memory shared by every core.
	Cores   []*cpu.Core    // Cores, indexed by id.
	Results []Result       // Halting results of the last Run.

	Output io.Writer // Fault and loop messages.
}

// NewEmulator creates a new emulator.
func NewEmulator(cfg Config) (emu *Emulator, err error) {
	err = cfg.Validate()
	if err != nil {
		return
	}

	emu = &Emulator{
		Config:  cfg,
		Program: &cpu.Program{},
		Memory:  memory.NewShared(cfg.MemorySize, cfg.Cores),
		Output:  os.Stdout,
	}

	for id := range cfg.Cores {
		emu.Cores = append(emu.Cores, cpu.NewCore(id, cfg.Registers))
	}

	return
}

// Defines returns an iterator over all of the assembler predefines.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	cfg := emu.Config
	machine := map[string]string{
		"MEMORY_SIZE":    fmt.Sprintf("%d", cfg.MemorySize),
		"CORE_COUNT":     fmt.Sprintf("%d", cfg.Cores),
		"CORE_MEMORY":    fmt.Sprintf("%d", cfg.CoreMemory()),
		"REGISTER_COUNT": fmt.Sprintf("%d", cfg.Registers),
	}

	return internal.IterSeq2Concat(maps.All(_emulator_defines), maps.All(machine))
}

// Assemble assembles the program source to run.
func (emu *Emulator) Assemble(input io.Reader) (err error) {
	asm := &cpu.Assembler{
		Verbose:   emu.Verbose,
		Registers: emu.Config.Registers,
	}
	for name, value := range emu.Defines() {
		asm.Predefine(name, value)
	}

	prog, err := asm.Parse(input)
	if err != nil {
		return
	}

	if emu.Verbose {
		for pc, op := range prog.Faults() {
			log.Printf("%03d: line %d '%v': %v", pc, op.LineNo, op, op.Err)
		}
	}

	emu.Program = prog
	return
}

// Load assembles the program source file at path.
func (emu *Emulator) Load(path string) (err error) {
	defer func() {
		var load *cpu.ErrLoad
		if errors.As(err, &load) && len(load.Path) == 0 {
			load.Path = path
		}
	}()

	inf, err := os.Open(path)
	if err != nil {
		err = &cpu.ErrLoad{Path: path, Err: err}
		return
	}
	defer inf.Close()

	err = emu.Assemble(inf)
	return
}

// Reset the cores and zero the shared memory.
func (emu *Emulator) Reset() {
	emu.Memory.Reset()
	for _, core := range emu.Cores {
		core.Reset()
	}
	emu.Results = nil
}

// Run runs every core, in id order, until it halts. Faulted instructions
// and loop detections are reported to Output as they happen. Core state
// is reset before each core runs; shared memory is not.
func (emu *Emulator) Run() (err error) {
	if emu.Program == nil {
		err = ErrProgramMissing
		return
	}

	out := emu.Output
	if out == nil {
		out = io.Discard
	}

	emu.Results = emu.Results[:0]

	for _, core := range emu.Cores {
		core.Reset()
		core.Verbose = emu.Verbose

		res := Result{Core: core.Id}
		res.Halt = core.Run(emu.Program, emu.Memory, func(fault error) {
			res.Faults++
			fmt.Fprintln(out, fault)
		})
		res.Steps = core.Steps

		if _, looped := res.Looped(); looped {
			fmt.Fprintf(out, " %v\n", res.Halt)
		}

		if emu.Verbose {
			log.Printf("core %d: %v after %d steps", core.Id, res, res.Steps)
		}

		emu.Results = append(emu.Results, res)
	}

	return
}
