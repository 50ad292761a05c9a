// Package cpu defines the 6502 register model and provides
// the fetch/decode/execute loop needed to run a program
// against it.
//
// Only immediate addressing and the LDA, TAX, INX and BRK
// instructions exist so far. Programs are read from a
// memory.Reader rather than a full memory map and every
// access is bounds checked.
package cpu

import (
	"fmt"

	"github.com/jmchacon/6502core/memory"
)

// OperandMode is an enumeration of where LDA #i takes its operand from.
type OperandMode int

const (
	OPERAND_UNIMPLEMENTED OperandMode = iota // Start of valid mode enumerations.
	OPERAND_NEXT_BYTE                        // The byte following the opcode. Real 6502 behavior.
	OPERAND_OPCODE                           // The opcode itself with the next byte skipped. Compatibility with older cores only.
	OPERAND_MAX                              // End of mode enumerations.
)

// BRK is the only opcode which returns control to the caller normally.
const BRK = uint8(0x00)

type Processor struct {
	A  uint8  // Accumulator register
	X  uint8  // X register
	S  uint8  // Stack pointer. Nothing uses it yet.
	P  Status // Processor status register
	PC uint16 // Program counter

	operandMode OperandMode // Must be between UNIMPLEMENTED and MAX from above.
}

// A few custom error types to distinguish why a run stopped

// UnimplementedOpcode represents a currently unimplemented opcode in the emulator.
type UnimplementedOpcode struct {
	Opcode uint8
	PC     uint16 // Address the opcode was fetched from.
}

// Error implements the interface for error types.
func (e UnimplementedOpcode) Error() string {
	return fmt.Sprintf("0x%.2X at PC 0x%.4X is an unimplemented opcode", e.Opcode, e.PC)
}

// ProgramTruncated represents a fetch past the end of the program.
type ProgramTruncated struct {
	PC uint16 // Address which couldn't be read.
}

// Error implements the interface for error types.
func (e ProgramTruncated) Error() string {
	return fmt.Sprintf("program truncated: no byte at PC 0x%.4X", e.PC)
}

// InvalidProgram represents a program which can't be run at all.
type InvalidProgram struct {
	Reason string
	Err    error // Underlying cause if there is one (i.e. memory.TooLarge).
}

// Error implements the interface for error types.
func (e InvalidProgram) Error() string {
	return fmt.Sprintf("invalid program: %s", e.Reason)
}

// Unwrap returns the underlying cause.
func (e InvalidProgram) Unwrap() error {
	return e.Err
}

// New returns a processor with every register zero which loads LDA #i
// operands from the byte after the opcode.
func New() *Processor {
	return &Processor{
		operandMode: OPERAND_NEXT_BYTE,
	}
}

// Init will create a new processor with every register zero which takes
// LDA #i operands according to mode.
func Init(mode OperandMode) (*Processor, error) {
	if mode <= OPERAND_UNIMPLEMENTED || mode >= OPERAND_MAX {
		return nil, fmt.Errorf("operand mode %d is invalid", mode)
	}
	p := New()
	p.operandMode = mode
	return p, nil
}

// UpdateZeroFlag sets the Z flag based on the result contents.
func (p *Processor) UpdateZeroFlag(result uint8) {
	p.P.Set(P_ZERO, result == 0)
}

// UpdateNegativeFlag sets the N flag based on the result contents.
func (p *Processor) UpdateNegativeFlag(result uint8) {
	p.P.Set(P_NEGATIVE, result&0x80 == 0x80)
}

// UpdateZeroAndNegativeFlags does Z and N checks against result.
func (p *Processor) UpdateZeroAndNegativeFlags(result uint8) {
	p.UpdateZeroFlag(result)
	p.UpdateNegativeFlag(result)
}

// Run executes program from address 0 until a BRK is executed. PC is always
// reset first so whatever a previous run left there is discarded. Use RunFrom
// to start anywhere else.
// Returns nil on BRK, otherwise the error which stopped execution.
func (p *Processor) Run(program []uint8) error {
	return p.RunFrom(0x0000, program)
}

// RunFrom is Run with the starting PC supplied by the caller.
func (p *Processor) RunFrom(pc uint16, program []uint8) error {
	prog, err := memory.NewProgram(program)
	if err != nil {
		return InvalidProgram{Reason: err.Error(), Err: err}
	}
	p.PC = pc
	for {
		done, err := p.Step(prog)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// Step executes the single instruction at PC. PC is not reset so repeated
// calls walk through the program. True is returned once BRK has executed.
// An error is returned if the opcode isn't implemented or the program ends
// part way through an instruction. True is also returned along with any
// error since execution can't continue.
func (p *Processor) Step(r memory.Reader) (bool, error) {
	pc := p.PC
	op, err := p.fetch(r)
	if err != nil {
		return true, err
	}

	// Opcode descriptions:
	// http://obelisk.me.uk/6502/reference.html
	switch op {
	case BRK:
		return p.iBRK()
	case 0xA9:
		// LDA #i
		return p.iLDA(op, r)
	case 0xAA:
		// TAX
		return p.iTAX()
	case 0xE8:
		// INX
		return p.iINX()
	}
	return true, UnimplementedOpcode{Opcode: op, PC: pc}
}
