package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/teris-io/cli"

	"hackemu.dev/emulator/pkg/asm"
	"hackemu.dev/emulator/pkg/console"
	"hackemu.dev/emulator/pkg/hack"
)

var Description = strings.ReplaceAll(`
Hackemu is an interactive debugger for the Hack computer (nand2tetris). It assembles the
given '.asm' program in memory and drops you into a terminal UI to single-step it, inspect
ROM/RAM/registers, poke memory cells, inject keyboard input and watch the memory-mapped screen.
`, "\n", " ")

var Hackemu = cli.New(Description).
	WithArg(cli.NewArg("input", "The assembler (.asm) file to load and debug")).
	WithAction(Handler)

func Handler(args []string, options map[string]string) int {
	source, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Printf("ERROR: Unable to open input file: %s\n", err)
		return -1
	}

	words, err := assemble(source)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return -1
	}

	term := console.New()
	if err := term.Load(words); err != nil {
		fmt.Printf("ERROR: Unable to load program: %s\n", err)
		return -1
	}

	program := tea.NewProgram(newModel(args[0], term), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return -1
	}
	return 0
}

// assemble runs the parse -> lower -> codegen pipeline, exactly as
// cmd/hack_assembler does, but keeps the words in memory instead of
// writing a .hack file.
func assemble(source []byte) ([]uint16, error) {
	parser := asm.NewParser(bytes.NewReader(source))
	asmProgram, err := parser.Parse()
	if err != nil {
		return nil, fmt.Errorf("unable to complete 'parsing' pass: %w", err)
	}

	lowerer := asm.NewLowerer(asmProgram)
	hackProgram, table, err := lowerer.Lower()
	if err != nil {
		return nil, fmt.Errorf("unable to complete 'lowering' pass: %w", err)
	}

	codegen := hack.NewCodeGenerator(hackProgram, table)
	words, err := codegen.GenerateWords()
	if err != nil {
		return nil, fmt.Errorf("unable to complete 'codegen' pass: %w", err)
	}
	return words, nil
}

func main() { os.Exit(Hackemu.Run(os.Args, os.Stdout)) }
