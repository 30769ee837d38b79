package cpu

import (
	"iter"
	"strings"
)

// Instruction is a single mnemonic/operand pair as supplied to the loader.
// Instructions whose opcode takes no operand still encode their Operand
// field, so the zero value covers the "operand omitted" case.
type Instruction struct {
	Mnemonic string
	Operand  uint16
}

// Op returns the opcode for the instruction's mnemonic. Mnemonics are
// case-insensitive.
func (insn Instruction) Op() (op Op, ok bool) {
	return OpOf(strings.ToUpper(insn.Mnemonic))
}

// Program is an ordered instruction listing, loaded contiguously starting
// at address zero.
type Program []Instruction

// Size returns the encoded byte length of the program, including the
// trailing halt failsafe byte written by the loader.
func (prog Program) Size() int {
	return len(prog)*CODE_SIZE + 1
}

// Codes iterates the program as (encoded address, instruction) pairs.
func (prog Program) Codes() iter.Seq2[uint16, Instruction] {
	return func(yield func(addr uint16, insn Instruction) bool) {
		for n, insn := range prog {
			if !yield(uint16(n*CODE_SIZE), insn) {
				return
			}
		}
	}
}

// At returns the instruction whose encoding covers addr, for trace and
// error reporting.
func (prog Program) At(addr uint16) (insn Instruction, ok bool) {
	index := int(addr) / CODE_SIZE
	if index < len(prog) {
		insn = prog[index]
		ok = true
	}

	return
}
