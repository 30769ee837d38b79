// Package cpu implements the processor core for the tiny8 emulator.
//
// The machine consists of an 8-bit accumulator (A), an 8-bit general
// register (B), a 16-bit program counter (PC), a zero flag (Z), and a flat
// 64 KiB byte-addressable memory. Programs are supplied as mnemonic/operand
// pairs and encoded into memory as fixed-width three-byte instructions: one
// opcode byte followed by a 16-bit little-endian operand, whether or not
// the instruction uses it.
//
// All register and address arithmetic wraps: A and B modulo 256, PC and
// memory addresses modulo 65536. Execution is a synchronous
// fetch-decode-execute loop bounded by a caller-supplied step budget.
package cpu
