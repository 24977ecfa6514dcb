// Package vm implements the self-modifying ternary machine: a 59049-cell
// address space of 10-trit words, a loader that validates source text and
// deterministically fills the remainder of memory, and the execution engine
// with its three registers (A accumulator, C instruction pointer, D data
// pointer).
//
// The machine is self-modifying by construction: after every executed cycle
// the cell the instruction was fetched from is rewritten through a fixed
// permutation of the 94 source character codes. The effective operation of a
// cell is (value + C) mod 94, so the same stored byte means different things
// at different addresses.
package vm
