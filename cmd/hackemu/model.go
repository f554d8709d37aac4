package main

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"hackemu.dev/emulator/pkg/console"
)

// inputMode mirrors original_source/src/app.rs's InputMode enum: the
// debugger is either watching the program run (Normal), editing the value
// of the currently selected RAM cell (Editing), or capturing raw keystrokes
// to feed to the memory-mapped keyboard (Keyboard).
type inputMode int

const (
	modeNormal inputMode = iota
	modeEditing
	modeKeyboard
)

// model is the bubbletea Elm-architecture state for the whole debugger: one
// loaded program, one simulated machine, and the bits of UI-only state
// (cursors, edit buffer, view toggles) that never touch the core.
type model struct {
	path    string
	console *console.Console

	romCursor int
	ramCursor int

	mode  inputMode
	input string // buffered digits/'-' while in modeEditing

	fullScreen bool
	quitting   bool

	rom viewport.Model
	ram viewport.Model
}

func newModel(path string, term *console.Console) model {
	rom := viewport.New(32, 16)
	ram := viewport.New(32, 16)
	return model{
		path:    path,
		console: term,
		rom:     rom,
		ram:     ram,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.resize(msg), nil
	case tea.KeyMsg:
		switch m.mode {
		case modeNormal:
			return m.handleNormalKey(msg)
		case modeEditing:
			return m.handleEditingKey(msg)
		case modeKeyboard:
			return m.handleKeyboardKey(msg)
		}
	}
	return m, nil
}

// resize gives the ROM/RAM panes as much height as the terminal allows,
// keeping a fixed-width layout for the registers/screen/status panels.
func (m model) resize(msg tea.WindowSizeMsg) model {
	paneHeight := msg.Height - 10
	if paneHeight < 4 {
		paneHeight = 4
	}
	m.rom.Width, m.rom.Height = 34, paneHeight
	m.ram.Width, m.ram.Height = 34, paneHeight
	return m
}
