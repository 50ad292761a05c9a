// Package memory defines the basic interfaces for working
// with the byte image a 6502 core executes from. There is no
// bus yet so the only implementation is a read-only program
// image which bounds checks every access instead of wrapping
// or reading past its end.
package memory

import "fmt"

// MaxSize is the largest image a 16 bit program counter can run through.
// PC has to be able to point one past the last byte so 0xFFFF itself is
// never part of an image.
const MaxSize = 0xFFFF

// Reader is the fetch side of memory as seen by the CPU.
type Reader interface {
	// Read returns the data byte stored at addr. The bool is false if addr
	// lies outside the image, in which case the byte is meaningless.
	Read(addr uint16) (uint8, bool)
}

// Program is an immutable program image. Addresses map 1:1 onto offsets
// into the image starting at 0.
type Program struct {
	b []uint8
}

// TooLarge is returned by NewProgram when the image is longer than MaxSize.
type TooLarge struct {
	Len int
}

// Error implements the interface for error types.
func (e TooLarge) Error() string {
	return fmt.Sprintf("program of %d bytes exceeds the %d byte limit", e.Len, MaxSize)
}

// NewProgram copies b into a new Program. The caller is free to reuse b
// afterwards.
func NewProgram(b []uint8) (Program, error) {
	if len(b) > MaxSize {
		return Program{}, TooLarge{len(b)}
	}
	p := Program{b: make([]uint8, len(b))}
	copy(p.b, b)
	return p, nil
}

// Read implements Reader.
func (p Program) Read(addr uint16) (uint8, bool) {
	if int(addr) >= len(p.b) {
		return 0x00, false
	}
	return p.b[addr], true
}

// Len returns the number of bytes in the image.
func (p Program) Len() int {
	return len(p.b)
}
