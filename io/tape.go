package io

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// Tape provides the sequential byte I/O of the machine. It wraps an
// io.Reader for input and an io.Writer for output. Output is buffered;
// the owner must Flush at termination so every byte written before a crash
// stays visible.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	w *bufio.Writer
}

var _ Channel = (*Tape)(nil)

// ReadByte reads one byte from the input stream, reporting end of stream
// with ok == false.
func (tc *Tape) ReadByte() (b byte, ok bool, err error) {
	var one [1]byte
	_, err = io.ReadFull(tc.Input, one[:])
	if err == io.EOF {
		err = nil
		return
	}
	if err != nil {
		err = errors.Wrap(err, "tape input")
		return
	}

	b = one[0]
	ok = true

	return
}

// WriteByte writes one byte to the output stream.
func (tc *Tape) WriteByte(b byte) (err error) {
	if tc.w == nil {
		tc.w = bufio.NewWriter(tc.Output)
	}

	return errors.Wrap(tc.w.WriteByte(b), "tape output")
}

// Flush forces buffered output to the sink.
func (tc *Tape) Flush() (err error) {
	if tc.w == nil {
		return
	}

	return errors.Wrap(tc.w.Flush(), "tape output")
}

// Rewind is not possible on a tape.
func (tc *Tape) Rewind() {
}
