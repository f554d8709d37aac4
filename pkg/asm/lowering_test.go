package asm_test

import (
	"testing"

	"hackemu.dev/emulator/pkg/asm"
	"hackemu.dev/emulator/pkg/hack"
)

func TestLowerResolvesLabelsToFollowingPosition(t *testing.T) {
	// (LOOP) binds to the position of the *next* instruction, not its own.
	program := asm.Program{
		asm.LabelDecl{Name: "LOOP", Line: 1},
		asm.AInstruction{Location: "LOOP", Line: 2},
		asm.CInstruction{Comp: "0", Jump: "JMP", Line: 3},
	}

	lowerer := asm.NewLowerer(program)
	converted, table, err := lowerer.Lower()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if table["LOOP"] != 0 {
		t.Errorf("table[LOOP] = %d, want 0", table["LOOP"])
	}
	if len(converted) != 2 {
		t.Fatalf("expected 2 lowered instructions (label decl emits none), got %d", len(converted))
	}

	a := converted[0].(hack.AInstruction)
	if a.LocType != hack.Label || a.LocName != "LOOP" {
		t.Errorf("converted[0] = %+v, want Label 'LOOP'", a)
	}
}

func TestLowerClassifiesLocationTypes(t *testing.T) {
	program := asm.Program{
		asm.AInstruction{Location: "SCREEN", Line: 1},
		asm.AInstruction{Location: "42", Line: 2},
		asm.AInstruction{Location: "counter", Line: 3},
	}

	converted, _, err := asm.NewLowerer(program).Lower()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	want := []hack.LocationType{hack.BuiltIn, hack.Raw, hack.Label}
	for i, inst := range converted {
		if got := inst.(hack.AInstruction).LocType; got != want[i] {
			t.Errorf("converted[%d].LocType = %v, want %v", i, got, want[i])
		}
	}
}

func TestLowerCInstructionWithDestAndJump(t *testing.T) {
	program := asm.Program{asm.CInstruction{Dest: "MD", Comp: "D+1", Jump: "JGT", Line: 1}}

	converted, _, err := asm.NewLowerer(program).Lower()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	c := converted[0].(hack.CInstruction)
	if c.Dest != "MD" || c.Comp != "D+1" || c.Jump != "JGT" {
		t.Errorf("converted[0] = %+v, want dest=MD comp=D+1 jump=JGT", c)
	}
}

func TestLowerRejectsMissingComp(t *testing.T) {
	program := asm.Program{asm.CInstruction{Dest: "D", Line: 1}}

	if _, _, err := asm.NewLowerer(program).Lower(); err == nil {
		t.Error("expected an error for a C instruction with no comp field")
	}
}
