package cpu

import (
	"fmt"
	"strings"
)

// Memory is the word addressed memory bus of a core.
type Memory interface {
	LoadWord(addr int) (value int32, err error)
	StoreWord(addr int, value int32) (err error)
}

// Core is the simulation context for a single core.
type Core struct {
	Verbose bool // Set to enable verbose logging.

	Id       int     // Core identifier.
	Pc       int     // Index of the next instruction.
	Register []int32 // Register bank.
	Steps    int     // Instructions executed since reset.

	visited map[int]struct{} // PCs already executed.
}

// NewCore creates a new core with a specifically sized register bank.
func NewCore(id int, registers int) (core *Core) {
	if registers <= 0 {
		registers = REGISTER_COUNT
	}

	core = &Core{
		Id:       id,
		Register: make([]int32, registers),
		visited:  make(map[int]struct{}),
	}

	return
}

// Reset the core state.
func (core *Core) Reset() {
	clear(core.Register)
	clear(core.visited)
	core.Pc = 0
	core.Steps = 0
}

// Visited returns true if the core has executed the instruction at pc.
func (core *Core) Visited(pc int) bool {
	_, ok := core.visited[pc]
	return ok
}

// String returns the register bank as 'x0=0 x1=0 ...'.
func (core *Core) String() string {
	regs := make([]string, len(core.Register))
	for n, value := range core.Register {
		regs[n] = fmt.Sprintf("%v=%d", Register(n), value)
	}

	return strings.Join(regs, " ")
}

// get reads a register.
func (core *Core) get(reg Register) (value int32, err error) {
	if reg < 0 || int(reg) >= len(core.Register) {
		err = &ErrDecode{Token: reg.String(), Err: ErrRegisterInvalid}
		return
	}

	value = core.Register[reg]
	return
}

// set writes a register.
func (core *Core) set(reg Register, value int32) (err error) {
	if reg < 0 || int(reg) >= len(core.Register) {
		err = &ErrDecode{Token: reg.String(), Err: ErrRegisterInvalid}
		return
	}

	core.Register[reg] = value
	return
}
