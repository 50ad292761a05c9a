package cpu

import "strings"

// Flag is a single bit in the processor status register.
type Flag uint8

const (
	P_CARRY     = Flag(0x01)
	P_ZERO      = Flag(0x02)
	P_INTERRUPT = Flag(0x04)
	P_DECIMAL   = Flag(0x08)
	P_OVERFLOW  = Flag(0x40)
	P_NEGATIVE  = Flag(0x80)

	// P_DEFINED masks every bit which has a meaning. 0x10 and 0x20 (B and the
	// always-on bit on real silicon) are never stored here.
	P_DEFINED = P_CARRY | P_ZERO | P_INTERRUPT | P_DECIMAL | P_OVERFLOW | P_NEGATIVE
)

// Status is the processor status register. The zero value has every flag
// clear. It can only be changed through Set so the unused bits stay 0.
type Status struct {
	p uint8
}

// Byte returns the raw register value.
func (s Status) Byte() uint8 {
	return s.p
}

// IsSet returns true if every bit of f is set.
// Bits outside P_DEFINED are ignored.
func (s Status) IsSet(f Flag) bool {
	f &= P_DEFINED
	return f != 0 && s.p&uint8(f) == uint8(f)
}

// Set sets or clears the given flag(s). Bits outside P_DEFINED are ignored.
func (s *Status) Set(f Flag, on bool) {
	f &= P_DEFINED
	if on {
		s.p |= uint8(f)
	} else {
		s.p &^= uint8(f)
	}
}

// Carry reports whether C is set.
func (s Status) Carry() bool { return s.IsSet(P_CARRY) }

// Zero reports whether Z is set.
func (s Status) Zero() bool { return s.IsSet(P_ZERO) }

// InterruptDisable reports whether I is set.
func (s Status) InterruptDisable() bool { return s.IsSet(P_INTERRUPT) }

// Decimal reports whether D is set.
func (s Status) Decimal() bool { return s.IsSet(P_DECIMAL) }

// Overflow reports whether V is set.
func (s Status) Overflow() bool { return s.IsSet(P_OVERFLOW) }

// Negative reports whether N is set.
func (s Status) Negative() bool { return s.IsSet(P_NEGATIVE) }

// String renders the register as NV--DIZC with set flags in upper case.
func (s Status) String() string {
	var b strings.Builder
	for _, f := range []struct {
		flag Flag
		name byte
	}{
		{P_NEGATIVE, 'N'},
		{P_OVERFLOW, 'V'},
		{0, '-'},
		{0, '-'},
		{P_DECIMAL, 'D'},
		{P_INTERRUPT, 'I'},
		{P_ZERO, 'Z'},
		{P_CARRY, 'C'},
	} {
		switch {
		case f.flag == 0:
			b.WriteByte(f.name)
		case s.IsSet(f.flag):
			b.WriteByte(f.name)
		default:
			b.WriteByte(f.name + ('a' - 'A'))
		}
	}
	return b.String()
}
