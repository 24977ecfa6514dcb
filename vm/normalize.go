package vm

// Normalize returns the mnemonic listing of source text: one effective
// opcode per retained byte, computed at the byte's load position. The
// listing shows what each cell would do the first time it executes.
func Normalize(src []byte) (ops []Opcode, err error) {
	n := 0
	for pos, b := range src {
		if b < CellMin {
			continue
		}
		if b > CellMax {
			return nil, &ErrSource{Pos: pos, Byte: b, Err: ErrByteRange}
		}
		if n >= Size {
			return nil, ErrSourceTooLong
		}

		ops = append(ops, Opcode((int(b)+n)%OpcodeCount))
		n++
	}

	return
}

// Assemble produces source text encoding the given operation sequence: for
// each position, the byte in [CellMin, CellMax] whose effective opcode at
// that position is the requested one. Normalizing the result yields the
// input listing back.
func Assemble(ops []Opcode) (src []byte, err error) {
	if len(ops) > Size {
		return nil, ErrSourceTooLong
	}

	src = make([]byte, len(ops))
	for pos, op := range ops {
		if op < 0 || op >= OpcodeCount {
			return nil, ErrOpcodeRange
		}

		b := (int(op) - pos) % OpcodeCount
		if b < 0 {
			b += OpcodeCount
		}
		if b < CellMin {
			b += OpcodeCount
		}
		src[pos] = byte(b)
	}

	return
}
