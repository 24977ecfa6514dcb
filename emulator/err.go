package emulator

import (
	"github.com/ezrec/malbolge/translate"
)

var f = translate.From

// ErrRuntime indicates which cycle a runtime error occurred on.
type ErrRuntime struct {
	Step int
	Err  error
}

func (err *ErrRuntime) Error() string {
	return f("step %d: %v", err.Step, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
