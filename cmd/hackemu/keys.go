package main

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
)

// handleNormalKey implements the Normal-mode key dispatch from the spec's
// external contract: 'n' steps, 'j'/'k' move the RAM cursor, 'r' enters
// edit mode for the selected RAM cell, 'b' enters keyboard-injection mode,
// 'f' toggles full-screen pixel view, 'q' quits.
func (m model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "n":
		m.console.Step()
		_, _, pc := m.console.Registers()
		m.romCursor = int(pc)
	case "j":
		if m.ramCursor < ramAddressMax {
			m.ramCursor++
		}
	case "k":
		if m.ramCursor > 0 {
			m.ramCursor--
		}
	case "r":
		m.mode = modeEditing
		m.input = ""
	case "b":
		m.mode = modeKeyboard
	case "f":
		m.fullScreen = !m.fullScreen
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleEditingKey implements Editing mode: digits and '-' accumulate into
// the edit buffer, Backspace trims it, Enter commits the parsed value to
// the selected RAM cell, Esc cancels back to Normal mode without writing.
func (m model) handleEditingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeNormal
		m.input = ""
	case tea.KeyEnter:
		if value, err := strconv.ParseInt(m.input, 10, 16); err == nil {
			m.console.WriteRAM(uint16(m.ramCursor), int16(value))
		}
		m.mode = modeNormal
		m.input = ""
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	default:
		s := msg.String()
		if s == "-" || (len(s) == 1 && s[0] >= '0' && s[0] <= '9') {
			m.input += s
		}
	}
	return m, nil
}

// handleKeyboardKey implements Keyboard mode: any printable key writes its
// code to the memory-mapped keyboard cell (RAM[24576]); Esc clears it and
// returns to Normal mode.
func (m model) handleKeyboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.console.ClearKey()
		m.mode = modeNormal
	default:
		s := msg.String()
		if len(s) == 1 {
			m.console.InjectKey(int16(s[0]))
		}
	}
	return m, nil
}

// ramAddressMax is the highest RAM address the cursor may reach.
const ramAddressMax = 24576
