package emulator

import (
	"github.com/ezrec/tiny8/translate"
)

var f = translate.From

// ErrRuntime indicates the step at which a runtime error occurred.
type ErrRuntime struct {
	Step int
	Err  error
}

func (err *ErrRuntime) Error() string {
	return f("step %d %v", err.Step, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
