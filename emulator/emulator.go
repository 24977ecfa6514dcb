// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	stdio "io"

	"github.com/ezrec/malbolge/io"
	"github.com/ezrec/malbolge/vm"
)

// Emulator binds the machine to its host streams and drives it to
// completion.
type Emulator struct {
	Verbose bool // If set, enables verbose logging.
	Strict  bool // If set, the loader rejects bytes that are not instructions.

	// MaxSteps, when nonzero, forces a crash once the machine has run that
	// many cycles. The limit is checked only between steps, never inside
	// one, so the address space stays step-consistent.
	MaxSteps int

	*vm.Vm         // The machine, once loaded.
	Tape   io.Tape // Host byte streams.
}

// NewEmulator creates an emulator with no program loaded.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{}

	return
}

// Load validates source text and resets the machine over it. Registers
// start at zero; nothing has executed yet.
func (emu *Emulator) Load(src stdio.Reader) (err error) {
	ld := &vm.Loader{Strict: emu.Strict}

	mem, err := ld.Load(src)
	if err != nil {
		return
	}

	emu.Vm = vm.NewVm(mem, &emu.Tape)
	emu.Vm.Verbose = emu.Verbose

	return
}

// Tick performs a single cycle of the machine.
func (emu *Emulator) Tick() (done bool, err error) {
	defer func() {
		if err != nil {
			err = &ErrRuntime{Step: emu.Vm.Steps, Err: err}
		}
	}()

	err = emu.Vm.Step()
	if errors.Is(err, vm.ErrHalted) {
		return true, nil
	}
	if err != nil {
		return
	}

	if emu.MaxSteps > 0 && emu.Vm.Steps >= emu.MaxSteps {
		err = emu.Vm.Terminate(vm.ErrStepLimit)
	}

	return
}

// Run drives the machine to halt or crash, flushing pending output either
// way so bytes emitted before a crash stay visible.
func (emu *Emulator) Run() (err error) {
	defer func() {
		ferr := emu.Tape.Flush()
		if err == nil && ferr != nil {
			err = &vm.ErrIo{Err: ferr}
		}
	}()

	for {
		done, terr := emu.Tick()
		if done {
			return nil
		}
		if terr != nil {
			return terr
		}
	}
}
