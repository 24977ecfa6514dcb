package vm

import (
	"github.com/ezrec/malbolge/ternary"
)

const (
	Size    = ternary.Size // Cells in the address space.
	CellMin = 33           // Lowest value fetchable as an instruction.
	CellMax = 126          // Highest value fetchable as an instruction.
)

// mutation holds, at index value-CellMin, the cell value that value becomes
// after one execution. It is a fixed permutation of [CellMin, CellMax] and
// must be reproduced byte for byte: a single wrong entry changes the
// observable behavior of every program.
const mutation = "5z]&gqtyfr$(we4{WP)H-Zn,[%\\3dL+Q;>U!pJS72FhOA1C" +
	"B6v^=I_0/8|jsb9m<.TVac`uY*MK'X~xDl}REokN:#?G\"i@"

// Memory is the machine's address space: a flat arena of ternary words,
// fully initialized by the loader and never resized.
type Memory struct {
	cell [Size]ternary.Word
}

// Read returns the word at addr.
func (m *Memory) Read(addr int) ternary.Word {
	return m.cell[addr]
}

// Write overwrites the word at addr directly, without mutation.
func (m *Memory) Write(addr int, w ternary.Word) {
	m.cell[addr] = w
}

// Mutate rewrites the cell at addr through the mutation table. Every
// executed cell passes through here once per cycle. The cell must hold a
// value in [CellMin, CellMax]; anything else means an instruction wrote an
// out-of-range word into its own cell, which is a machine crash.
func (m *Memory) Mutate(addr int) error {
	v := m.cell[addr]
	if v < CellMin || v > CellMax {
		return &ErrCrash{Addr: addr, Value: v, Err: ErrMutateRange}
	}

	m.cell[addr] = ternary.Word(mutation[v-CellMin])

	return nil
}
