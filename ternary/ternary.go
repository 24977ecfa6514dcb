// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package ternary implements the 10-trit word arithmetic of the machine.
//
// A Word holds ten base-3 digits ("trits"), most significant first, giving
// the range [0, 59049). The two primitive operators are the tritwise crazy
// operation and the right rotation of the trit string. Both are purely
// combinational.
package ternary

// Word is a 10-trit unsigned value in [0, Size).
type Word uint16

// Trit is a base-3 digit, 0, 1 or 2.
type Trit uint8

const (
	Width = 10    // Trits per word.
	Size  = 59049 // 3^10, the number of distinct words.
	Max   = Word(Size - 1)
)

// crz is the crazy-operation table, indexed by y's trit, then x's trit.
var crz = [3][3]Trit{
	{1, 0, 0},
	{1, 0, 2},
	{2, 2, 1},
}

// ToTrits decomposes a word into its ten trits, most significant first.
// Leading zero trits are significant positionally, not dropped.
func ToTrits(w Word) (t [Width]Trit) {
	for i := Width - 1; i >= 0; i-- {
		t[i] = Trit(w % 3)
		w /= 3
	}

	return
}

// FromTrits recomposes a word from its ten trits, most significant first.
func FromTrits(t [Width]Trit) (w Word) {
	for _, d := range t {
		w = w*3 + Word(d)
	}

	return
}

// Crazy combines two words through the crazy-operation table, one trit
// position at a time.
func Crazy(x, y Word) (w Word) {
	place := Word(1)
	for range Width {
		w += Word(crz[y%3][x%3]) * place
		x /= 3
		y /= 3
		place *= 3
	}

	return
}

// RotateRight moves the least significant trit of x to the most significant
// position, shifting the other nine down. Applied ten times it is the
// identity.
func RotateRight(x Word) Word {
	return x/3 + (x%3)*(Size/3)
}
