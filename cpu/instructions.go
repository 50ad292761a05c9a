package cpu

import "github.com/jmchacon/6502core/memory"

// Every handler returns true if execution should stop (BRK) and an error
// if the instruction couldn't complete.

// fetch returns the byte at PC and moves PC past it.
// PC never wraps. Nothing can follow a byte at 0xFFFF so that address is
// never fetched regardless of what the Reader holds there.
// Returns ProgramTruncated if there's no byte to read.
func (p *Processor) fetch(r memory.Reader) (uint8, error) {
	if p.PC == 0xFFFF {
		return 0x00, ProgramTruncated{p.PC}
	}
	val, ok := r.Read(p.PC)
	if !ok {
		return 0x00, ProgramTruncated{p.PC}
	}
	p.PC++
	return val, nil
}

// addrImmediate implements immediate mode - #i
// returning the byte at PC and moving PC past it.
// Returns ProgramTruncated if the operand is missing.
func (p *Processor) addrImmediate(r memory.Reader) (uint8, error) {
	return p.fetch(r)
}

// loadRegister takes the val and inserts it into the register passed in. It then does
// Z and N checks against the new value.
// Always returns false and no error since nothing here can stop execution.
func (p *Processor) loadRegister(reg *uint8, val uint8) (bool, error) {
	*reg = val
	p.UpdateZeroAndNegativeFlags(*reg)
	return false, nil
}

// iLDA implements LDA #i. Under OPERAND_OPCODE the opcode itself is loaded
// and the operand byte is skipped. It still has to exist.
func (p *Processor) iLDA(op uint8, r memory.Reader) (bool, error) {
	val, err := p.addrImmediate(r)
	if err != nil {
		return true, err
	}
	if p.operandMode == OPERAND_OPCODE {
		val = op
	}
	return p.loadRegister(&p.A, val)
}

// iTAX implements TAX, copying A into X.
func (p *Processor) iTAX() (bool, error) {
	return p.loadRegister(&p.X, p.A)
}

// iINX implements INX. X wraps from 0xFF to 0x00.
func (p *Processor) iINX() (bool, error) {
	return p.loadRegister(&p.X, p.X+1)
}

// iBRK implements BRK. There are no interrupt vectors so this simply
// hands control back to the caller.
func (p *Processor) iBRK() (bool, error) {
	return true, nil
}
