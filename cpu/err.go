package cpu

import (
	"github.com/ezrec/tiny8/translate"
)

var f = translate.From

// ErrMnemonic is a loader failure: the mnemonic is not in the instruction
// set table.
type ErrMnemonic string

func (em ErrMnemonic) Error() string {
	return f("unknown mnemonic %q", string(em))
}

func (em ErrMnemonic) Is(err error) (ok bool) {
	_, ok = err.(ErrMnemonic)
	return
}

// ErrOpcode is a decode failure: the byte fetched at PC matches no opcode.
type ErrOpcode struct {
	Op Op
	PC uint16
}

func (eo ErrOpcode) Error() string {
	return f("unknown opcode 0x%02x at pc %04X", uint8(eo.Op), eo.PC)
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrStepLimit is a run failure: the step budget was exhausted while the
// CPU was still running, a probable non-terminating program.
type ErrStepLimit int

func (es ErrStepLimit) Error() string {
	return f("step limit %d reached (possible infinite loop)", int(es))
}

func (es ErrStepLimit) Is(err error) (ok bool) {
	_, ok = err.(ErrStepLimit)
	return
}
