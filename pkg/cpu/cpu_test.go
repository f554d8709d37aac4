package cpu_test

import (
	"testing"

	"hackemu.dev/emulator/pkg/cpu"
)

func TestALUSpotChecks(t *testing.T) {
	// ctrl bits are zx nx zy ny f no, bits 5..0.
	cases := []struct {
		name        string
		x, y        int16
		ctrl        uint16
		out         int16
		zr, ng      bool
	}{
		{"D-A, D=5 A=3", 5, 3, 0b010011, 2, false, false},
		{"!D, D=0", 0, 0, 0b001101, -1, false, true},
		{"D&M, D=0x00FF M=0x0F0F", 0x00FF, 0x0F0F, 0b000000, 0x000F, false, false},
		{"zero constant", 12, 34, 0b101010, 0, true, false},
		{"one constant", 12, 34, 0b111111, 1, false, false},
		{"D+A", 2, 3, 0b000010, 5, false, false},
	}

	for _, c := range cases {
		out, zr, ng := cpu.ALU(c.x, c.y, c.ctrl)
		if out != c.out || zr != c.zr || ng != c.ng {
			t.Errorf("%s: ALU(%d, %d, %06b) = (%d, %v, %v), want (%d, %v, %v)",
				c.name, c.x, c.y, c.ctrl, out, zr, ng, c.out, c.zr, c.ng)
		}
	}
}

func cInstWord(destBits, compBits, jumpBits uint16) uint16 {
	return (0b111 << 13) | (compBits << 6) | (destBits << 3) | jumpBits
}

func TestStepJumpSemantics(t *testing.T) {
	m := &cpu.Machine{}
	// @5; D;JMP -- comp "D" is 0b001100, dest 000, jump JMP=111
	if err := m.Load([]uint16{5, cInstWord(0, 0b001100, 0b111)}); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	m.Step() // @5 -> A = 5
	m.Step() // D;JMP -> D is 0, so comp out = 0, jumps unconditionally to A
	if m.PC != 5 {
		t.Errorf("PC after D;JMP = %d, want 5", m.PC)
	}

	m2 := &cpu.Machine{}
	// @5; D;JGT -- D is 0 so JGT (not zr and not ng) must not be taken
	if err := m2.Load([]uint16{5, cInstWord(0, 0b001100, 0b001)}); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	m2.Step()
	prevPC := m2.PC
	m2.Step()
	if m2.PC != prevPC+1 {
		t.Errorf("PC after D;JGT with D=0 = %d, want %d", m2.PC, prevPC+1)
	}
}

func TestStepAInstructionLoadsAAndAdvancesPC(t *testing.T) {
	m := &cpu.Machine{}
	if err := m.Load([]uint16{42}); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	m.Step()
	if m.A != 42 || m.PC != 1 {
		t.Errorf("after @42: A=%d PC=%d, want A=42 PC=1", m.A, m.PC)
	}
}

func TestStepWriteBackOrderUsesNewAForM(t *testing.T) {
	m := &cpu.Machine{}
	// @9; AM=0: A := 0, then M is ram[0] (the new A), not ram[9] (the old A).
	// Both cells start at 5 so a write to either one shows up.
	destAM := uint16(0b101) // A and M
	if err := m.Load([]uint16{9, cInstWord(destAM, 0b101010, 0)}); err != nil { // comp "0"
		t.Fatalf("unexpected error: %s", err)
	}
	m.WriteRam(0, 5)
	m.WriteRam(9, 5)
	m.Step()            // @9 -> A = 9
	m.A = 9             // sanity
	m.Step()            // dest AM, comp 0: A := 0, then ram[NEW A = 0] := 0
	if m.A != 0 {
		t.Errorf("A after AM=0 = %d, want 0", m.A)
	}
	if got := m.ReadRam(0); got != 0 {
		t.Errorf("ram[0] after AM=0 = %d, want 0 (written using new A, not old A=9)", got)
	}
	if got := m.ReadRam(9); got != 5 {
		t.Errorf("ram[9] should be untouched (5), got %d", got)
	}
}

func TestLoadRejectsOversizedProgram(t *testing.T) {
	m := &cpu.Machine{}
	if err := m.Load(make([]uint16, cpu.RomSize+1)); err == nil {
		t.Error("expected an error loading a program larger than ROM capacity")
	}
}

func TestRamAccessClampsOutOfBounds(t *testing.T) {
	m := &cpu.Machine{}
	m.WriteRam(-5, 99)
	if got := m.ReadRam(0); got != 99 {
		t.Errorf("negative address should clamp to 0, ram[0] = %d, want 99", got)
	}
	if m.Warning == "" {
		t.Error("expected a Warning to be set after an out-of-bounds access")
	}

	m.WriteRam(cpu.RamSize+10, 7)
	if got := m.ReadRam(cpu.RamSize - 1); got != 7 {
		t.Errorf("oversized address should clamp to the last cell, got %d", got)
	}
}
