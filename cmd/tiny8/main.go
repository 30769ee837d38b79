// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/tiny8/cpu"
	"github.com/ezrec/tiny8/emulator"
)

// The classic demo: compute 7+5 and emit the sum.
var demo = cpu.Program{
	{Mnemonic: "LDA", Operand: 7},
	{Mnemonic: "LDB", Operand: 5},
	{Mnemonic: "ADD"},
	{Mnemonic: "OUT"},
	{Mnemonic: "HLT"},
}

func main() {
	var steps int
	var verbose bool

	flag.IntVar(&steps, "m", cpu.MAX_STEPS, "Maximum steps before aborting")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	emu := emulator.NewEmulator()
	emu.Program = demo
	emu.MaxSteps = steps
	emu.Verbose = verbose

	err := emu.Reset()
	if err != nil {
		log.Fatal(err)
	}

	err = emu.Run()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Output bytes: %v\n", emu.Cpu.Output)
	fmt.Printf("Output (ASCII): %v\n", string(emu.Cpu.Output))
}
