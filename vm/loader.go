// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package vm

import (
	"io"

	"github.com/ezrec/malbolge/ternary"
)

// Loader validates raw source text and produces an initialized address
// space.
//
// Bytes below CellMin are formatting (space, tab, line terminators) and are
// dropped without counting toward a load position. Every remaining byte must
// lie in [CellMin, CellMax] and is copied in order starting at address 0.
// The rest of memory is then filled deterministically: each cell is the
// crazy combination of its two predecessors. Programs rely on the exact
// values of this fill for memory they never initialize themselves.
type Loader struct {
	// Strict additionally requires the program to hold at least two bytes,
	// each of which decodes to a defined operation at its load position.
	// The default accepts any source in the character set, since undefined
	// effective opcodes execute as no-ops anyway.
	Strict bool
}

// Load reads source text from r and returns the populated address space.
func (ld *Loader) Load(r io.Reader) (mem *Memory, err error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, &ErrIo{Err: err}
	}

	return ld.LoadBytes(src)
}

// LoadBytes validates src and returns the populated address space.
func (ld *Loader) LoadBytes(src []byte) (mem *Memory, err error) {
	mem = &Memory{}

	n := 0
	for pos, b := range src {
		if b < CellMin {
			// Formatting byte.
			continue
		}
		if b > CellMax {
			return nil, &ErrSource{Pos: pos, Byte: b, Err: ErrByteRange}
		}
		if ld.Strict && !Opcode((int(b)+n)%OpcodeCount).Defined() {
			return nil, &ErrSource{Pos: pos, Byte: b, Err: ErrNoInstruction}
		}
		if n >= Size {
			return nil, ErrSourceTooLong
		}

		mem.cell[n] = ternary.Word(b)
		n++
	}

	if ld.Strict && n < 2 {
		return nil, ErrSourceTooShort
	}

	// Deterministic fill. Missing seed neighbors of a short program read
	// as zero.
	for i := n; i < Size; i++ {
		var x, y ternary.Word
		if i >= 1 {
			x = mem.cell[i-1]
		}
		if i >= 2 {
			y = mem.cell[i-2]
		}
		mem.cell[i] = ternary.Crazy(x, y)
	}

	return
}
