package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert := assert.New(t)

	ops, err := Normalize([]byte("ubO"))
	assert.NoError(err)
	assert.Equal([]Opcode{OpInput, OpOutput, OpHalt}, ops)

	// Formatting bytes do not count toward a position.
	spaced, err := Normalize([]byte(" u\tb\nO\n"))
	assert.NoError(err)
	assert.Equal(ops, spaced)

	_, err = Normalize([]byte("u\x80"))
	assert.ErrorIs(err, ErrByteRange)
}

func TestAssembleRoundTrip(t *testing.T) {
	assert := assert.New(t)

	ops := []Opcode{
		OpNop, OpJump, OpOutput, OpInput, OpRotate,
		OpCrazy, OpDeref, OpHalt, Opcode(0), Opcode(93),
	}

	src, err := Assemble(ops)
	assert.NoError(err)

	for _, b := range src {
		assert.GreaterOrEqual(b, byte(CellMin))
		assert.LessOrEqual(b, byte(CellMax))
	}

	back, err := Normalize(src)
	assert.NoError(err)
	assert.Equal(ops, back)

	// Assembled source always loads.
	ld := &Loader{}
	_, err = ld.LoadBytes(src)
	assert.NoError(err)
}

func TestAssembleRange(t *testing.T) {
	assert := assert.New(t)

	_, err := Assemble([]Opcode{Opcode(94)})
	assert.ErrorIs(err, ErrOpcodeRange)

	_, err = Assemble([]Opcode{Opcode(-1)})
	assert.ErrorIs(err, ErrOpcodeRange)
}

func TestOpcodeString(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		op   Opcode
		name string
	}){
		{OpJump, "jmp"},
		{OpOutput, "out"},
		{OpInput, "in"},
		{OpRotate, "rotr"},
		{OpCrazy, "crz"},
		{OpDeref, "movd"},
		{OpNop, "nop"},
		{OpHalt, "end"},
		{Opcode(7), "nop"},
	}

	for _, entry := range table {
		assert.Equal(entry.name, entry.op.String())
	}

	assert.True(OpHalt.Defined())
	assert.False(Opcode(7).Defined())
}
