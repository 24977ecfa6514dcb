package vm

import (
	"errors"

	"github.com/ezrec/malbolge/ternary"
	"github.com/ezrec/malbolge/translate"
)

var f = translate.From

var (
	// Engine sentinels
	ErrHalted      = errors.New(f("halted"))
	ErrFetchRange  = errors.New(f("fetched cell is not an instruction"))
	ErrMutateRange = errors.New(f("mutation of a non-instruction cell"))
	ErrStepLimit   = errors.New(f("terminated by host"))

	// Loader errors
	ErrSourceTooLong  = errors.New(f("source longer than the address space"))
	ErrSourceTooShort = errors.New(f("source shorter than two instructions"))
	ErrByteRange      = errors.New(f("byte outside the source character set"))
	ErrNoInstruction  = errors.New(f("byte does not encode an instruction"))

	// Normalizer errors
	ErrOpcodeRange = errors.New(f("opcode outside [0, 94)"))
)

// ErrCrash reports abnormal termination at a specific cell.
type ErrCrash struct {
	Addr  int
	Value ternary.Word
	Err   error
}

func (err *ErrCrash) Error() string {
	return f("crash at %d (cell value %d): %v", err.Addr, int(err.Value), err.Err)
}

func (err *ErrCrash) Unwrap() error {
	return err.Err
}

// ErrIo reports a failure of the host input or output stream, distinct from
// an ordinary end of stream and from a machine crash.
type ErrIo struct {
	Err error
}

func (err *ErrIo) Error() string {
	return f("stream: %v", err.Err)
}

func (err *ErrIo) Unwrap() error {
	return err.Err
}

// ErrSource reports an illegal byte in program source at its raw offset.
type ErrSource struct {
	Pos  int
	Byte byte
	Err  error
}

func (err *ErrSource) Error() string {
	return f("offset %d: byte %#02x: %v", err.Pos, err.Byte, err.Err)
}

func (err *ErrSource) Unwrap() error {
	return err.Err
}
