package tac

import (
	"fmt"
	"strings"
)

// Opcode is a typed three-address instruction code. Arithmetic and store
// opcodes come in an int (I) and a real (R) flavor; ITOR widens an int
// operand to real.
type Opcode string

const (
	OpLDCI  Opcode = "LDCI"  // load int constant
	OpLDCR  Opcode = "LDCR"  // load real constant
	OpITOR  Opcode = "ITOR"  // int -> real
	OpADDI  Opcode = "ADDI"
	OpADDR  Opcode = "ADDR"
	OpSUBI  Opcode = "SUBI"
	OpSUBR  Opcode = "SUBR"
	OpMULI  Opcode = "MULI"
	OpMULR  Opcode = "MULR"
	OpDIVI  Opcode = "DIVI"
	OpDIVR  Opcode = "DIVR"
	OpSTORI Opcode = "STORI" // store int to variable
	OpSTORR Opcode = "STORR" // store real to variable
)

// Instruction is one three-address instruction: an opcode, up to two source
// operands (temporaries, literal values, or variable names) and a
// destination (a temporary or a variable name). Order within a statement's
// sequence is semantically significant; every temporary is defined before
// use.
type Instruction struct {
	Op   Opcode
	Arg1 string
	Arg2 string
	Dest string
}

// String renders the textual form: "ADDI t1, t4 -> t5" or "LDCI 2 -> t1".
func (in Instruction) String() string {
	if in.Arg2 != "" {
		return fmt.Sprintf("%s %s, %s -> %s", in.Op, in.Arg1, in.Arg2, in.Dest)
	}
	return fmt.Sprintf("%s %s -> %s", in.Op, in.Arg1, in.Dest)
}

// Render joins a statement's instruction sequence one per line.
func Render(code []Instruction) string {
	lines := make([]string, len(code))
	for i, in := range code {
		lines[i] = in.String()
	}
	return strings.Join(lines, "\n")
}
