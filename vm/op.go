package vm

// Opcode is an effective operation number, (cell value + C) mod 94.
type Opcode int

// OpcodeCount is the modulus of the effective opcode computation.
const OpcodeCount = 94

// The eight defined operations. Every other effective opcode is a no-op
// that still self-mutates and advances.
const (
	OpJump   = Opcode(4)  // jmp
	OpOutput = Opcode(5)  // out
	OpInput  = Opcode(23) // in
	OpRotate = Opcode(39) // rotr
	OpCrazy  = Opcode(40) // crz
	OpDeref  = Opcode(62) // movd
	OpNop    = Opcode(68) // nop
	OpHalt   = Opcode(81) // end
)

func (op Opcode) String() string {
	switch op {
	case OpJump:
		return "jmp"
	case OpOutput:
		return "out"
	case OpInput:
		return "in"
	case OpRotate:
		return "rotr"
	case OpCrazy:
		return "crz"
	case OpDeref:
		return "movd"
	case OpHalt:
		return "end"
	default:
		return "nop"
	}
}

// Defined reports whether op names one of the eight defined operations.
func (op Opcode) Defined() bool {
	switch op {
	case OpJump, OpOutput, OpInput, OpRotate, OpCrazy, OpDeref, OpNop, OpHalt:
		return true
	}

	return false
}
