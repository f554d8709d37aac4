package main

import (
	"os"
	"path/filepath"
	"testing"
)

// test assembles 'source' and compares the resulting .hack text against
// 'want', using the real Handler entrypoint end to end (parse, lower,
// codegen, write) rather than poking at the pipeline's internals.
func test(t *testing.T, source, want string) {
	t.Helper()

	dir := t.TempDir()
	input := filepath.Join(dir, "program.asm")
	output := filepath.Join(dir, "program.hack")

	if err := os.WriteFile(input, []byte(source), 0o644); err != nil {
		t.Fatalf("unable to write input fixture: %s", err)
	}

	if status := Handler([]string{input, output}, nil); status != 0 {
		t.Fatalf("unexpected exit status: expected 0 got %d", status)
	}

	got, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("unable to read compiled output: %s", err)
	}
	if string(got) != want {
		t.Errorf("compiled output = %q, want %q", got, want)
	}
}

func TestHackAssemblerAdd(t *testing.T) {
	test(t, "@2\nD=A\n@3\nD=D+A\n@0\nM=D\n",
		"0000000000000010\n"+
			"1110110000010000\n"+
			"0000000000000011\n"+
			"1110000010010000\n"+
			"0000000000000000\n"+
			"1110001100001000\n")
}

func TestHackAssemblerMax(t *testing.T) {
	source := `
		@0
		D=M
		@1
		D=D-M
		@10
		D;JGT
		@1
		D=M
		@12
		0;JMP
		@0
		D=M
		@2
		M=D
	`
	dir := t.TempDir()
	input := filepath.Join(dir, "max.asm")
	output := filepath.Join(dir, "max.hack")
	if err := os.WriteFile(input, []byte(source), 0o644); err != nil {
		t.Fatalf("unable to write input fixture: %s", err)
	}
	if status := Handler([]string{input, output}, nil); status != 0 {
		t.Fatalf("unexpected exit status: expected 0 got %d", status)
	}

	got, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("unable to read compiled output: %s", err)
	}
	if lines := len(bytesSplitLines(got)); lines != 14 {
		t.Errorf("compiled %d lines, want 14", lines)
	}
}

func bytesSplitLines(b []byte) []string {
	lines := []string{}
	start := 0
	for i, c := range b {
		if c == '\n' {
			lines = append(lines, string(b[start:i]))
			start = i + 1
		}
	}
	return lines
}

func TestHackAssemblerRejectsUnknownMnemonic(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "bad.asm")
	output := filepath.Join(dir, "bad.hack")
	if err := os.WriteFile(input, []byte("D=Q+Z\n"), 0o644); err != nil {
		t.Fatalf("unable to write input fixture: %s", err)
	}
	if status := Handler([]string{input, output}, nil); status == 0 {
		t.Error("expected a non-zero exit status for an unassemblable program")
	}
}
