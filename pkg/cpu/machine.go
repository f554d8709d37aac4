package cpu

import (
	"fmt"

	"hackemu.dev/emulator/pkg/bits"
)

// RomSize is the number of 16 bit words the simulated instruction memory can
// hold. It has no architectural significance (the Hack ISA addresses up to
// 2^15 words); it's simply generous enough for anything the assembler
// produces while keeping Rom a plain fixed-size array rather than a slice.
const RomSize = 1000

// RamSize covers the full addressable data space, including the
// memory-mapped screen (16384..24575) and the single keyboard cell (24576).
const RamSize = 24577

// ScreenBase and KeyboardAddress are the memory-mapped I/O region boundaries.
const (
	ScreenBase      = 16384
	KeyboardAddress = 24576
)

// Machine holds the full state of a Hack computer: ROM, RAM, and the three
// registers (A, D, PC). Words are represented as int16, matching the Hack
// architecture's 16 bit two's-complement cells.
//
// Rom is a fixed array plus a high-water mark ('Loaded') rather than a
// slice sized to the program: a fetch past 'Loaded' reads as 0, same as an
// array slot nobody ever wrote, without needing an Option-like wrapper type
// per word.
type Machine struct {
	Rom    [RomSize]uint16
	Loaded int // number of words actually loaded into Rom, from offset 0

	Ram [RamSize]int16

	A, D, PC int16

	// Warning surfaces the most recent runtime anomaly (PC or A resolving
	// out of bounds) for the UI's status line. It's cleared at the start of
	// every Step and only set again if that step hits one.
	Warning string
}

// Load fills ROM from offset 0 and resets registers and PC, exactly as
// loading a new program onto a freshly powered machine would.
func (m *Machine) Load(words []uint16) error {
	if len(words) > len(m.Rom) {
		return fmt.Errorf("program has %d words, exceeds ROM capacity of %d", len(words), len(m.Rom))
	}

	m.Rom = [RomSize]uint16{}
	m.Loaded = copy(m.Rom[:], words)
	m.A, m.D, m.PC = 0, 0, 0
	m.Warning = ""
	return nil
}

// fetch returns the instruction at 'pc', clamping to the ROM bounds and
// treating an empty (never-loaded) slot as 0 per the architecture's lenient
// read semantics. Out-of-range PCs are reported via Warning rather than
// panicking, per the spec's "clamp and continue" runtime error policy.
func (m *Machine) fetch(pc int16) uint16 {
	if pc < 0 || int(pc) >= RomSize {
		m.Warning = fmt.Sprintf("PC %d out of bounds, clamped", pc)
		if pc < 0 {
			pc = 0
		} else {
			pc = RomSize - 1
		}
	}
	if int(pc) >= m.Loaded {
		return 0
	}
	return m.Rom[pc]
}

// ramIndex clamps a signed address to the addressable RAM range, recording a
// Warning when clamping actually changes the address.
func (m *Machine) ramIndex(addr int16) int {
	switch {
	case addr < 0:
		m.Warning = fmt.Sprintf("address %d out of bounds, clamped to 0", addr)
		return 0
	case int(addr) >= RamSize:
		m.Warning = fmt.Sprintf("address %d out of bounds, clamped to %d", addr, RamSize-1)
		return RamSize - 1
	default:
		return int(addr)
	}
}

// ReadRam returns the RAM cell at 'addr', clamping out-of-range addresses.
func (m *Machine) ReadRam(addr int16) int16 {
	return m.Ram[m.ramIndex(addr)]
}

// WriteRam sets the RAM cell at 'addr', clamping out-of-range addresses.
func (m *Machine) WriteRam(addr, value int16) {
	m.Ram[m.ramIndex(addr)] = value
}

// Step executes exactly one fetch-decode-execute cycle and never blocks.
//
// An A-instruction (bit 15 clear) simply loads its 15 bit literal into A and
// advances PC. A C-instruction runs the ALU against D and either A or
// ram[A] (selected by the 'a' bit), writes the result back to any of
// A/D/ram[A] named by the dest bits — in that order, so a destination of
// "AM" stores into ram[the NEW A], not the one the instruction started
// with — then evaluates the jump bits against the ALU's zr/ng flags to
// decide the next PC.
func (m *Machine) Step() {
	m.Warning = ""
	instr := m.fetch(m.PC)

	if !bits.Bit(instr, 15) { // A-instruction
		m.A = int16(instr)
		m.PC++
		return
	}

	// C-instruction
	aBit := bits.Bit(instr, 12)
	compBits := bits.Slice(instr, 6, 12)
	destBits := bits.Slice(instr, 3, 6)
	jumpBits := bits.Slice(instr, 0, 3)

	y := m.A
	if aBit {
		y = m.ReadRam(m.A)
	}
	out, zr, ng := ALU(m.D, y, compBits)

	if bits.Bit(destBits, 2) { // A
		m.A = out
	}
	if bits.Bit(destBits, 1) { // D
		m.D = out
	}
	if bits.Bit(destBits, 0) { // M, using the (possibly just-updated) A
		m.WriteRam(m.A, out)
	}

	taken := jumpTaken(jumpBits, zr, ng)
	if taken {
		m.PC = m.A
	} else {
		m.PC++
	}
}

// jumpTaken evaluates the 3 bit jump condition against the ALU's flags.
func jumpTaken(jumpBits uint16, zr, ng bool) bool {
	switch jumpBits {
	case 0b000:
		return false
	case 0b001: // JGT
		return !zr && !ng
	case 0b010: // JEQ
		return zr
	case 0b011: // JGE
		return !ng
	case 0b100: // JLT
		return ng
	case 0b101: // JNE
		return !zr
	case 0b110: // JLE
		return ng || zr
	case 0b111: // JMP
		return true
	default:
		return false
	}
}
