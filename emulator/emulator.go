// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"io"

	"github.com/ezrec/tiny8/cpu"
)

// Emulator state. CPU + program listing + output sink.
type Emulator struct {
	Verbose  bool        // If set, enables verbose logging.
	*cpu.Cpu             // Reference to the CPU simulation.
	Program  cpu.Program // Program loaded on the next Reset.

	MaxSteps int       // Step budget per run; defaults to cpu.MAX_STEPS.
	Sink     io.Writer // Optional sink for OUT bytes as they are emitted.

	flushed int // Output bytes already written to the sink.
	steps   int // Steps executed since the last reset.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:      cpu.NewCpu(),
		MaxSteps: cpu.MAX_STEPS,
	}

	return
}

// Reset the emulator state and load the program.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
	emu.flushed = 0
	emu.steps = 0

	err = emu.Cpu.Load(emu.Program)

	return
}

// Steps returns the steps executed since the last reset.
func (emu *Emulator) Steps() int {
	return emu.steps
}

// At returns the program instruction covering the current PC, if any.
func (emu *Emulator) At() (insn cpu.Instruction, ok bool) {
	return emu.Program.At(emu.Cpu.PC)
}

// Tick performs a single step of the emulator, streaming any newly emitted
// output to the sink. Failures carry the step index at which they occurred.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	defer func() {
		if err != nil {
			err = &ErrRuntime{Step: emu.steps, Err: err}
		}
	}()

	if !emu.Cpu.Running {
		done = true
		return
	}

	if emu.steps >= emu.MaxSteps {
		err = cpu.ErrStepLimit(emu.MaxSteps)
		return
	}

	err = emu.Cpu.Step()
	if err != nil {
		return
	}
	emu.steps++

	err = emu.flush()
	if err != nil {
		return
	}

	done = !emu.Cpu.Running

	return
}

// Run ticks the emulator until the program halts or fails.
func (emu *Emulator) Run() (err error) {
	for done, err := emu.Tick(); !done; done, err = emu.Tick() {
		if err != nil {
			return err
		}
	}

	return
}

// flush writes output bytes not yet seen by the sink.
func (emu *Emulator) flush() (err error) {
	if emu.Sink == nil {
		emu.flushed = len(emu.Cpu.Output)
		return
	}

	for emu.flushed < len(emu.Cpu.Output) {
		_, err = emu.Sink.Write([]byte{emu.Cpu.Output[emu.flushed]})
		if err != nil {
			return
		}
		emu.flushed++
	}

	return
}
