// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package vm

import (
	"errors"
	"log"

	"github.com/ezrec/malbolge/io"
	"github.com/ezrec/malbolge/ternary"
)

// Channel is the byte stream adapter consumed by the input and output
// instructions.
type Channel io.Channel

// EOFWord is the accumulator value an input instruction produces at end of
// stream: the all-2-trits word. Observable, for example, as byte 168 when a
// program immediately outputs what it read.
const EOFWord = ternary.Max

// State of the execution engine.
type State int

const (
	Running = State(iota)
	Halted
	Crashed
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Halted:
		return "halted"
	case Crashed:
		return "crashed"
	}

	return "unknown"
}

// Vm is the execution engine: the three registers and the address space
// they drive. All registers start at zero after a successful load; no other
// component reads or writes them.
type Vm struct {
	Verbose bool // Set to enable verbose logging.

	Mem *Memory // Address space.

	A ternary.Word // Accumulator.
	C int          // Instruction pointer.
	D int          // Data pointer.

	State  State
	Reason error // Crash reason, set once State is Crashed.
	Steps  int   // Completed cycle counter.

	Tape Channel // Host byte streams.
}

// NewVm creates an engine over a loaded address space and a byte stream
// adapter.
func NewVm(mem *Memory, tape Channel) (vm *Vm) {
	vm = &Vm{
		Mem:  mem,
		Tape: tape,
	}

	return
}

// crash transitions to Crashed and records the reason.
func (vm *Vm) crash(reason error) error {
	vm.State = Crashed
	vm.Reason = reason

	return reason
}

// Terminate forces the crashed state between steps, for hosts imposing
// their own execution limit. It never interrupts a cycle in progress, so
// the address space stays step-consistent.
func (vm *Vm) Terminate(reason error) error {
	if vm.State == Running {
		vm.crash(&ErrCrash{Addr: vm.C, Value: vm.Mem.Read(vm.C), Err: reason})
	}

	return vm.Reason
}

// Step runs one fetch, decode, execute, mutate, advance cycle. It returns
// ErrHalted once the machine has halted, and the crash reason once it has
// crashed.
func (vm *Vm) Step() (err error) {
	switch vm.State {
	case Halted:
		return ErrHalted
	case Crashed:
		return vm.Reason
	}

	fetched := vm.C
	v := vm.Mem.Read(fetched)
	if v < CellMin || v > CellMax {
		// The mutation table's closure over [CellMin, CellMax] makes this
		// unreachable from a clean load; report it rather than assume.
		return vm.crash(&ErrCrash{Addr: fetched, Value: v, Err: ErrFetchRange})
	}

	op := Opcode((int(v) + fetched) % OpcodeCount)
	if vm.Verbose {
		log.Printf("%5d: %3d %v a=%d d=%d", fetched, int(v), op, int(vm.A), vm.D)
	}

	jumped := false

	switch op {
	case OpJump:
		vm.C = int(vm.Mem.Read(vm.D))
		jumped = true
	case OpOutput:
		if werr := vm.Tape.WriteByte(byte(vm.A % 256)); werr != nil {
			return vm.crash(&ErrIo{Err: werr})
		}
	case OpInput:
		b, ok, rerr := vm.Tape.ReadByte()
		switch {
		case rerr != nil:
			return vm.crash(&ErrIo{Err: rerr})
		case ok:
			vm.A = ternary.Word(b)
		default:
			vm.A = EOFWord
		}
	case OpRotate:
		w := ternary.RotateRight(vm.Mem.Read(vm.D))
		vm.Mem.Write(vm.D, w)
		vm.A = w
	case OpCrazy:
		w := ternary.Crazy(vm.A, vm.Mem.Read(vm.D))
		vm.Mem.Write(vm.D, w)
		vm.A = w
	case OpDeref:
		vm.D = int(vm.Mem.Read(vm.D))
	case OpHalt:
		vm.State = Halted
		return ErrHalted
	default:
		// No-op; still mutates and advances.
	}

	// The just-fetched cell mutates, never a jump target.
	if err = vm.Mem.Mutate(fetched); err != nil {
		return vm.crash(err)
	}

	// A taken jump already placed C; it is not incremented this cycle.
	if !jumped {
		vm.C = (vm.C + 1) % Size
	}
	vm.D = (vm.D + 1) % Size
	vm.Steps++

	return
}

// Run steps the machine until it halts or crashes. A halt returns nil.
func (vm *Vm) Run() (err error) {
	for {
		err = vm.Step()
		if errors.Is(err, ErrHalted) {
			return nil
		}
		if err != nil {
			return
		}
	}
}
