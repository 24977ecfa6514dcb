package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/malbolge/ternary"
)

func TestMutationTable(t *testing.T) {
	assert := assert.New(t)

	assert.Len(mutation, OpcodeCount)

	// Bijective over [CellMin, CellMax].
	var seen [OpcodeCount]bool
	for i := range len(mutation) {
		v := mutation[i]
		assert.GreaterOrEqual(v, byte(CellMin))
		assert.LessOrEqual(v, byte(CellMax))
		assert.False(seen[v-CellMin], "value %d repeated", v)
		seen[v-CellMin] = true
	}
}

func TestMutationCycles(t *testing.T) {
	assert := assert.New(t)

	// Every cell value returns to itself within at most 94 mutations.
	for start := CellMin; start <= CellMax; start++ {
		m := &Memory{}
		m.Write(0, ternary.Word(start))

		length := 0
		for {
			assert.NoError(m.Mutate(0))
			length++
			if int(m.Read(0)) == start || length > OpcodeCount {
				break
			}
		}
		assert.LessOrEqual(length, OpcodeCount, "start %d", start)
	}

	// A known cycle: 'u' comes back to itself in exactly six mutations.
	m := &Memory{}
	m.Write(0, 'u')
	for n := range 6 {
		assert.NoError(m.Mutate(0))
		if n < 5 {
			assert.NotEqual(ternary.Word('u'), m.Read(0))
		}
	}
	assert.Equal(ternary.Word('u'), m.Read(0))
}

func TestMutateRange(t *testing.T) {
	assert := assert.New(t)

	m := &Memory{}

	for _, v := range []ternary.Word{0, CellMin - 1, CellMax + 1, ternary.Max} {
		m.Write(7, v)
		err := m.Mutate(7)
		assert.ErrorIs(err, ErrMutateRange)

		var crash *ErrCrash
		assert.ErrorAs(err, &crash)
		assert.Equal(7, crash.Addr)
		assert.Equal(v, crash.Value)
	}
}

func TestReadWrite(t *testing.T) {
	assert := assert.New(t)

	m := &Memory{}
	m.Write(0, 42)
	m.Write(Size-1, ternary.Max)

	assert.Equal(ternary.Word(42), m.Read(0))
	assert.Equal(ternary.Max, m.Read(Size-1))
	assert.Equal(ternary.Word(0), m.Read(1))
}
