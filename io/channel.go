// Package io provides the byte stream adapter connecting the machine's
// input and output instructions to the host. The machine consumes and
// produces exactly one byte per executed instruction; byte values pass
// through untranslated, including carriage returns and line feeds.
package io

// Channel is the interface the execution engine reads and writes through.
type Channel interface {
	// ReadByte blocks for the next input byte; ok is false at end of
	// stream, which is distinct from a stream error.
	ReadByte() (b byte, ok bool, err error)
	// WriteByte blocks until the output sink accepts one byte.
	WriteByte(b byte) error
	// Flush forces buffered output to the sink. Called no later than
	// program termination, normal or not.
	Flush() error
	// Rewind resets the channel to its initial state, where possible.
	Rewind()
}
