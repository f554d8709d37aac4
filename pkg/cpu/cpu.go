// Package cpu models the Hack computer's datapath: the ALU and the
// fetch-decode-execute step function that drives registers, ROM and RAM.
package cpu

import "hackemu.dev/emulator/pkg/bits"

// ALU implements the Hack arithmetic-logic unit. 'ctrl' carries the six
// control bits 'zx nx zy ny f no' at bit positions 5..0 (bits above 5 are
// ignored, so callers may pass either the raw 6-bit slice or a wider word).
// The control bits are applied in the fixed order the architecture specifies:
// zero/negate x, zero/negate y, combine (add if f, else bitwise and),
// negate the result.
func ALU(x, y int16, ctrl uint16) (out int16, zr, ng bool) {
	if bits.Bit(ctrl, 5) { // zx
		x = 0
	}
	if bits.Bit(ctrl, 4) { // nx
		x = ^x
	}
	if bits.Bit(ctrl, 3) { // zy
		y = 0
	}
	if bits.Bit(ctrl, 2) { // ny
		y = ^y
	}
	if bits.Bit(ctrl, 1) { // f
		out = x + y
	} else {
		out = x & y
	}
	if bits.Bit(ctrl, 0) { // no
		out = ^out
	}

	zr = out == 0
	ng = out < 0
	return out, zr, ng
}
