// Package console implements the Core <-> UI boundary: a thin wrapper
// around a *cpu.Machine plus the disassembler, and the only part of the
// core that the cmd/hackemu debugger's UI code (model, keys, view) uses;
// assembling the program beforehand goes through pkg/asm and pkg/hack.
package console

import (
	"fmt"

	"hackemu.dev/emulator/pkg/cpu"
	"hackemu.dev/emulator/pkg/hack"
)

// Console wraps a cpu.Machine and exposes the handful of operations a
// debugger UI needs: loading a program, single-stepping, inspecting/mutating
// RAM, disassembling a word, reading the screen, and injecting keystrokes.
type Console struct {
	machine cpu.Machine
}

// New returns a Console around a freshly zeroed Machine.
func New() *Console {
	return &Console{}
}

// Load fills ROM from offset 0, resetting registers and PC. Fails if the
// program is larger than the simulated ROM.
func (c *Console) Load(words []uint16) error {
	if err := c.machine.Load(words); err != nil {
		return fmt.Errorf("console: %w", err)
	}
	return nil
}

// Step executes exactly one instruction; it never blocks.
func (c *Console) Step() {
	c.machine.Step()
}

// Warning reports the most recent runtime anomaly (an out-of-bounds PC or
// RAM access), or the empty string if the last Step was clean.
func (c *Console) Warning() string {
	return c.machine.Warning
}

// ReadRAM returns the RAM cell at 'addr', clamped to the addressable range.
func (c *Console) ReadRAM(addr uint16) int16 {
	return c.machine.ReadRam(int16(addr))
}

// WriteRAM sets the RAM cell at 'addr', clamped to the addressable range.
func (c *Console) WriteRAM(addr uint16, value int16) {
	c.machine.WriteRam(int16(addr), value)
}

// Registers returns the current A, D and PC register values.
func (c *Console) Registers() (a, d, pc int16) {
	return c.machine.A, c.machine.D, c.machine.PC
}

// ROM returns the instruction word at 'addr', or 0 if 'addr' was never
// loaded — matching the Machine's "empty slot reads as 0" convention.
func (c *Console) ROM(addr uint16) uint16 {
	if int(addr) >= len(c.machine.Rom) {
		return 0
	}
	return c.machine.Rom[addr]
}

// ROMSize reports how many words were actually loaded by the last Load call.
func (c *Console) ROMSize() int {
	return c.machine.Loaded
}

// Disassemble converts a single machine word back to Hack assembly text.
func (c *Console) Disassemble(word uint16) string {
	return hack.Disassemble(word)
}

// Pixel is a single lit screen coordinate, with (0, 0) at the top-left.
type Pixel struct{ X, Y int }

// ScreenPixels returns every lit pixel in the memory-mapped screen region
// (RAM[16384..24575]), scanning each word as 16 horizontally adjacent
// pixels using the LSB-first convention: bit i of a word lights
// (x+i, y), where x = (n mod 512) and y = 255 - (n div 512), with n the
// pixel offset of that word's leftmost pixel (16 pixels per word, 512
// pixels per scanline).
func (c *Console) ScreenPixels() []Pixel {
	pixels := []Pixel{}
	for offset := 0; offset < cpu.KeyboardAddress-cpu.ScreenBase; offset++ {
		word := uint16(c.machine.Ram[cpu.ScreenBase+offset])
		if word == 0 {
			continue
		}
		n := offset * 16
		x0, y := n%512, 255-n/512
		for i := uint(0); i < 16; i++ {
			if word&(1<<i) != 0 {
				pixels = append(pixels, Pixel{X: x0 + int(i), Y: y})
			}
		}
	}
	return pixels
}

// InjectKey writes a key code into the memory-mapped keyboard cell.
func (c *Console) InjectKey(code int16) {
	c.machine.WriteRam(cpu.KeyboardAddress, code)
}

// ClearKey zeroes the memory-mapped keyboard cell.
func (c *Console) ClearKey() {
	c.machine.WriteRam(cpu.KeyboardAddress, 0)
}
