// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package memory implements the byte-addressed memory shared by all
// simulated cores.
//
// The buffer is conceptually split into one region per core, but nothing
// prevents a core from reading or writing any other core's region.
package memory

import (
	"encoding/binary"
)

const (
	WORD_SIZE = 4 // Bytes in a memory word.
)

// Shared is a fixed size memory buffer visible to every core.
type Shared struct {
	Data  []byte // Backing store.
	Cores int    // Number of nominal per-core regions.
}

// NewShared creates a zeroed shared memory of size bytes, split into
// cores nominal regions.
func NewShared(size int, cores int) (mem *Shared) {
	mem = &Shared{
		Data:  make([]byte, size),
		Cores: max(cores, 1),
	}

	return
}

// Size returns the size of the memory in bytes.
func (mem *Shared) Size() int {
	return len(mem.Data)
}

// RegionSize returns the size of each core's nominal region.
func (mem *Shared) RegionSize() int {
	return len(mem.Data) / mem.Cores
}

// Region returns the [base, limit) byte range nominally owned by a core.
func (mem *Shared) Region(core int) (base, limit int) {
	size := mem.RegionSize()
	base = core * size
	limit = base + size
	return
}

// Reset zeroes the memory.
func (mem *Shared) Reset() {
	clear(mem.Data)
}

// check validates a size byte access at addr.
func (mem *Shared) check(addr int, size int) (err error) {
	switch {
	case addr < 0 || addr > len(mem.Data)-size:
		err = &ErrAccess{Addr: addr, Size: size, Err: ErrOutOfRange}
	case addr%size != 0:
		err = &ErrAccess{Addr: addr, Size: size, Err: ErrMisaligned}
	}

	return
}

// LoadWord reads the little-endian word at addr.
func (mem *Shared) LoadWord(addr int) (value int32, err error) {
	err = mem.check(addr, WORD_SIZE)
	if err != nil {
		return
	}

	value = int32(binary.LittleEndian.Uint32(mem.Data[addr:]))
	return
}

// StoreWord writes value as a little-endian word at addr.
func (mem *Shared) StoreWord(addr int, value int32) (err error) {
	err = mem.check(addr, WORD_SIZE)
	if err != nil {
		return
	}

	binary.LittleEndian.PutUint32(mem.Data[addr:], uint32(value))
	return
}
