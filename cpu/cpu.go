package cpu

import (
	"fmt"
	"log"
)

// Cpu is the simulation context for one tiny8 machine. Each instance owns
// its memory, registers, flag, and output buffer exclusively; instances
// never share state.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Mem Memory // Flat 64 KiB memory.

	A  uint8  // Accumulator.
	B  uint8  // General register.
	PC uint16 // Program counter.
	Z  bool   // Zero flag: last value produced into A or B was zero.

	Running bool // Cleared permanently by HLT.

	Output []uint8 // Values emitted by OUT, in order.
}

// NewCpu creates a new CPU in its reset state.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{
		Running: true,
	}

	return
}

// Reset the CPU state.
// - Clears memory, registers, and the zero flag.
// - Empties the output buffer.
// - Sets PC to zero and marks the CPU running.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Mem[:])
	cpu.A = 0
	cpu.B = 0
	cpu.PC = 0
	cpu.Z = false
	cpu.Running = true
	cpu.Output = nil
}

// Load encodes the program into memory starting at address zero.
// Every instruction occupies CODE_SIZE bytes: the opcode byte followed by
// the 16-bit little-endian operand, whether the opcode uses it or not.
// A single halt opcode byte is written after the last instruction as a
// failsafe for programs that never halt.
func (cpu *Cpu) Load(prog Program) (err error) {
	var addr uint16
	for _, insn := range prog {
		op, ok := insn.Op()
		if !ok {
			err = ErrMnemonic(insn.Mnemonic)
			return
		}
		cpu.Mem.Write(addr, uint8(op))
		cpu.Mem.WriteWord(addr+1, insn.Operand)
		addr += CODE_SIZE
	}
	cpu.Mem.Write(addr, uint8(OP_HLT))

	if cpu.Verbose {
		log.Printf("cpu: loaded %d instructions (%d bytes)", len(prog), prog.Size())
	}

	return
}

// fetchOperand consumes the 16-bit little-endian operand at PC.
func (cpu *Cpu) fetchOperand() (value uint16) {
	value = cpu.Mem.ReadWord(cpu.PC)
	cpu.PC += 2
	return
}

// Step executes a single fetch-decode-execute cycle. A halted CPU does not
// step. Fetching a byte outside the instruction set table is a fatal
// decode failure reporting the byte and the PC it was fetched from.
func (cpu *Cpu) Step() (err error) {
	if !cpu.Running {
		return
	}

	at := cpu.PC
	op := Op(cpu.Mem.Read(cpu.PC))
	cpu.PC += 1

	if cpu.Verbose {
		log.Printf("cpu: %04X: %v", at, op)
	}

	switch op {
	case OP_LDA:
		cpu.A = uint8(cpu.fetchOperand())
		cpu.Z = cpu.A == 0
	case OP_LDB:
		cpu.B = uint8(cpu.fetchOperand())
		cpu.Z = cpu.B == 0
	case OP_LDA_MEM:
		cpu.A = cpu.Mem.Read(cpu.fetchOperand())
		cpu.Z = cpu.A == 0
	case OP_STA:
		cpu.Mem.Write(cpu.fetchOperand(), cpu.A)
	case OP_ADD:
		cpu.A += cpu.B
		cpu.Z = cpu.A == 0
	case OP_SUB:
		cpu.A -= cpu.B
		cpu.Z = cpu.A == 0
	case OP_JMP:
		cpu.PC = cpu.fetchOperand()
	case OP_JZ:
		addr := cpu.fetchOperand()
		if cpu.Z {
			cpu.PC = addr
		}
	case OP_OUT:
		cpu.Output = append(cpu.Output, cpu.A)
	case OP_HLT:
		cpu.Running = false
	default:
		err = ErrOpcode{Op: op, PC: at}
	}

	return
}

// Run steps the CPU until it halts, fails, or exhausts the step budget.
// A non-positive maxSteps selects the default budget of MAX_STEPS.
// Exhausting the budget while still running returns ErrStepLimit.
func (cpu *Cpu) Run(maxSteps int) (err error) {
	if maxSteps <= 0 {
		maxSteps = MAX_STEPS
	}

	for steps := 0; cpu.Running; steps++ {
		if steps >= maxSteps {
			err = ErrStepLimit(maxSteps)
			return
		}
		err = cpu.Step()
		if err != nil {
			return
		}
	}

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{"pc", "a", "b", "z", "run"}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%04X", cpu.PC)
		case "a":
			strval = fmt.Sprintf("%02X", cpu.A)
		case "b":
			strval = fmt.Sprintf("%02X", cpu.B)
		case "z":
			strval = "false"
			if cpu.Z {
				strval = "true"
			}
		case "run":
			strval = "halted"
			if cpu.Running {
				strval = "running"
			}
		}
		text += fmt.Sprintf("% 4s: %v\n", reg, strval)
	}

	return
}
