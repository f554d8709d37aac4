package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hackemu.dev/emulator/pkg/console"
)

var (
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().Bold(true)

	cursorStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("63")).
			Foreground(lipgloss.Color("230"))

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

func (m model) View() string {
	if m.quitting {
		return ""
	}
	if m.fullScreen {
		return m.renderScreenPane(true)
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		paneStyle.Render(m.renderROM()),
		paneStyle.Render(m.renderRAM()),
		paneStyle.Render(m.renderRegisters()),
	)
	bottom := paneStyle.Render(m.renderScreenPane(false))
	footer := m.renderStatusBar()

	return lipgloss.JoinVertical(lipgloss.Left, top, bottom, footer)
}

// renderROM feeds the full disassembly into a bubbles/viewport so the pane
// scrolls like a real list instead of always showing address 0 onward; the
// viewport is re-centered on the current instruction every render.
func (m model) renderROM() string {
	var b strings.Builder
	size := m.console.ROMSize()
	if size == 0 {
		size = 1
	}
	for addr := 0; addr < size; addr++ {
		word := m.console.ROM(uint16(addr))
		line := fmt.Sprintf("%4d  %s", addr, m.console.Disassemble(word))
		if addr == m.romCursor {
			line = cursorStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}

	m.rom.SetContent(b.String())
	m.rom.SetYOffset(centerOffset(m.romCursor, m.rom.Height))
	return titleStyle.Render("ROM") + "\n" + m.rom.View()
}

// renderRAM mirrors renderROM for the RAM pane, centered on the selected
// cell. Unlike ROM (bounded by what was loaded) the full address space is
// 24577 cells, far more than useful to ever render at once, so only a
// window around the cursor is materialized.
func (m model) renderRAM() string {
	const window = 512
	start := m.ramCursor - window/2
	if start < 0 {
		start = 0
	}
	end := start + window
	if end > ramAddressMax+1 {
		end = ramAddressMax + 1
	}

	var b strings.Builder
	for addr := start; addr < end; addr++ {
		line := fmt.Sprintf("%5d  %d", addr, m.console.ReadRAM(uint16(addr)))
		if addr == m.ramCursor {
			line = cursorStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}

	m.ram.SetContent(b.String())
	m.ram.SetYOffset(centerOffset(m.ramCursor-start, m.ram.Height))
	return titleStyle.Render("RAM") + "\n" + m.ram.View()
}

// centerOffset picks a scroll offset that keeps 'selected' roughly in the
// middle of a pane 'height' lines tall, never going negative.
func centerOffset(selected, height int) int {
	if height <= 0 {
		return 0
	}
	offset := selected - height/2
	if offset < 0 {
		return 0
	}
	return offset
}

func (m model) renderRegisters() string {
	a, d, pc := m.console.Registers()
	return titleStyle.Render("Registers") + "\n" +
		fmt.Sprintf("A   %d\nD   %d\nPC  %d\n", a, d, pc)
}

// renderScreenPane renders the memory-mapped screen as a monochrome
// half-block grid: two scanlines are packed into each terminal row via
// the ' ', '▀', '▄' and '█' glyphs, doubling the effective vertical
// resolution a terminal can otherwise show (the Rust original renders
// this onto a vector canvas widget; a terminal has no canvas primitive,
// so this is the idiomatic substitution rather than a functional change).
func (m model) renderScreenPane(fullScreen bool) string {
	const width, height = 512, 256

	lit := make(map[console.Pixel]bool)
	for _, p := range m.console.ScreenPixels() {
		lit[p] = true
	}

	var b strings.Builder
	if !fullScreen {
		b.WriteString(titleStyle.Render("Screen") + "\n")
	}
	for y := 0; y < height; y += 2 {
		for x := 0; x < width; x++ {
			top := lit[console.Pixel{X: x, Y: y}]
			bottom := lit[console.Pixel{X: x, Y: y + 1}]
			b.WriteRune(halfBlock(top, bottom))
		}
		b.WriteRune('\n')
	}
	return b.String()
}

func halfBlock(top, bottom bool) rune {
	switch {
	case top && bottom:
		return '█'
	case top:
		return '▀'
	case bottom:
		return '▄'
	default:
		return ' '
	}
}

func (m model) renderStatusBar() string {
	switch m.mode {
	case modeEditing:
		return fmt.Sprintf("EDIT RAM[%d] := %s_  (Enter to commit, Esc to cancel)", m.ramCursor, m.input)
	case modeKeyboard:
		return "KEYBOARD  (any printable key writes RAM[24576], Esc to exit)"
	default:
		line := fmt.Sprintf("%s  |  n:step j/k:ram r:edit b:keyboard f:fullscreen q:quit", m.path)
		if warning := m.console.Warning(); warning != "" {
			line += "  |  " + statusStyle.Render(warning)
		}
		return line
	}
}
