package hack

import (
	"fmt"
	"strconv"
)

// ----------------------------------------------------------------------------
// Code Generator

// Takes a set of 'hack.Instruction' and spits out their binary counterparts.
//
// In order to resolve user defined labels in A instructions, during initialization of
// of the Code Generator a Symbol Table should be provided.
type CodeGenerator struct {
	program    Program     // The set of instructions to convert in Hack binary format
	table      SymbolTable // Mapping to resolve user-defined labels to their underlying address
	nVarOffset uint16      // Internal offset to allocate memory for new variables
}

// Initializes and returns to the caller a brand new 'CodeGenerator' struct.
// Requires both a non-nil Program 'p' (what we want to translate) as well as
// an optionally nullable Symbol Table 'st' used to resolve user defined labels.
func NewCodeGenerator(p Program, st SymbolTable) CodeGenerator {
	if st == nil {
		st = SymbolTable{}
	}
	return CodeGenerator{program: p, table: st}
}

// Translates each instruction in the 'Program' to the Hack binary format, as
// one 16 character '0'/'1' string per instruction (the on-disk .hack format).
func (cg *CodeGenerator) Generate() ([]string, error) {
	words, err := cg.GenerateWords()
	if err != nil {
		return nil, err
	}

	hack := make([]string, 0, len(words))
	for _, word := range words {
		hack = append(hack, fmt.Sprintf("%016b", word))
	}
	return hack, nil
}

// GenerateWords translates each instruction to its raw 16 bit encoding,
// for callers that load the program directly into a simulated ROM rather
// than dumping it to a .hack text file.
func (cg *CodeGenerator) GenerateWords() ([]uint16, error) {
	words := make([]uint16, 0, len(cg.program))

	for _, instruction := range cg.program {
		var word uint16
		var err error

		switch tInstruction := instruction.(type) {
		case AInstruction:
			word, err = cg.generateAInst(tInstruction)
		case CInstruction:
			word, err = cg.generateCInst(tInstruction)
		}

		if err != nil {
			return nil, err
		}
		words = append(words, word)
	}

	return words, nil
}

// GenerateAInst converts a single A Instruction to its textual .hack encoding.
func (cg *CodeGenerator) GenerateAInst(inst AInstruction) (string, error) {
	word, err := cg.generateAInst(inst)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%016b", word), nil
}

// GenerateCInst converts a single C Instruction to its textual .hack encoding.
func (cg *CodeGenerator) GenerateCInst(inst CInstruction) (string, error) {
	word, err := cg.generateCInst(inst)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%016b", word), nil
}

// Specialized function to convert an A Instruction to its binary word.
//
// As part of the conversion (for both built-in and user-defined labels) there's a lookup
// on their respective symbol tables in order to determine the 'real' location address.
// For location not resolved or resolved to an Out-of-Bound address an error is returned.
func (cg *CodeGenerator) generateAInst(inst AInstruction) (uint16, error) {
	found, address := false, uint16(0)

	switch inst.LocType {
	case Raw: // Simply translate the raw address from 'string' to 'int'
		num, err := strconv.ParseInt(inst.LocName, 10, 16)
		address, found = uint16(num), err == nil
	case Label: // Lookup the label name in the provided SymbolTable
		address, found = cg.table[inst.LocName]
		// If not found we treat it as a new variable
		if !found {
			// Assign a new memory location starting from 16 onwards, in
			// first-reference order.
			address, found = 16+cg.nVarOffset, true
			// And update the SymbolTable so that future references
			// gets resolved/points to the same locations in RAM
			cg.table[inst.LocName] = address
			cg.nVarOffset++
		}
	case BuiltIn: // Lookup the registry name in the WellKnow table
		address, found = BuiltInTable[inst.LocName]
	}

	if !found {
		return 0, fmt.Errorf("line %d: unable to resolve address for location '%s'", inst.Line, inst.LocName)
	}
	// An A instruction always has the first bit set to zero (the opcode bit) this also mean
	// that, since each instructions 16 bit there are only 15 bit to address the Hack computer
	// memory this in turn means that an address of 2^15 or above is invalid and out of bound.
	if address >= MaxAddressableMemory {
		return 0, fmt.Errorf("line %d: location '%s' resolved to an address not allowed", inst.Line, inst.LocName)
	}
	return address, nil
}

// Specialized function to convert a C Instruction to its binary word.
//
// The 'comp' mnemonic is looked up directly first; if that fails the mnemonic is
// tried reversed (this recovers the commutative-operand forms such as 'A+D' or
// 'M&D' when the user wrote the operands in the opposite order from the canonical
// table). Subtraction is not commutative, so a reversal is only attempted when the
// mnemonic is exactly 3 characters long and its middle character isn't '-'.
func (cg *CodeGenerator) generateCInst(inst CInstruction) (uint16, error) {
	command := uint16(0b111 << 13) // Puts the initial '111' opcode at the start

	comp, found := CompTable[inst.Comp]
	if !found {
		reversed := reverseMnemonic(inst.Comp)
		if len(inst.Comp) != 3 || inst.Comp[1] == '-' {
			return 0, fmt.Errorf("line %d: invalid comp '%s'", inst.Line, inst.Comp)
		}
		comp, found = CompTable[reversed]
		if !found {
			return 0, fmt.Errorf("line %d: invalid comp '%s'", inst.Line, inst.Comp)
		}
	}
	command |= comp << 6

	dest, found := DestTable[inst.Dest]
	if !found {
		return 0, fmt.Errorf("line %d: invalid dest '%s'", inst.Line, inst.Dest)
	}
	command |= dest << 3

	jump, found := JumpTable[inst.Jump]
	if !found {
		return 0, fmt.Errorf("line %d: invalid jump '%s'", inst.Line, inst.Jump)
	}
	command |= jump

	return command, nil
}

func reverseMnemonic(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// ----------------------------------------------------------------------------
// Disassembler

// Disassemble converts a single 16 bit machine word back to its Hack assembly
// mnemonic. A-instructions format as '@<address>'; C-instructions recover
// 'dest=comp;jump' (omitting 'dest=' and ';jump' when those fields are zero).
// A comp field with no known mnemonic yields a '???' placeholder rather than
// panicking, since the word may simply be malformed user data being inspected
// in the debugger.
func Disassemble(word uint16) string {
	if word>>15 == 0 {
		return fmt.Sprintf("@%d", word)
	}

	comp := (word >> 6) & 0b1111111
	dest := (word >> 3) & 0b111
	jump := word & 0b111

	asm := ""
	if dest != 0 {
		asm += RDest[dest] + "="
	}
	if mnemonic, found := RComp[comp]; found {
		asm += mnemonic
	} else {
		asm += "???"
	}
	if jump != 0 {
		asm += ";" + RJump[jump]
	}
	return asm
}
