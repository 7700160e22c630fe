// Package cpu implements the cores and the assembler of the mcsim
// multi-core simulator.
//
// Each core has a program counter (PC) indexing the shared instruction
// list, a bank of 32-bit signed registers (x0-x31 by default) and the set
// of PCs it has already executed, used to halt on loops. Cores share one
// Program and one Memory.
//
// The assembler reads a small RISC-V flavoured assembly language with
// labels, `#` comments, .equ equates and compile-time $(...) expression
// evaluation. Every instruction is decoded once at assembly time; decode
// failures are kept on the instruction and reported when it executes.
package cpu
