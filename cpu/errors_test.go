package cpu

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorsSurviveWrapping(t *testing.T) {
	c := New()

	err := fmt.Errorf("running rom: %w", c.Run([]uint8{0xE8, 0xFF}))
	var uo UnimplementedOpcode
	if !errors.As(err, &uo) {
		t.Fatalf("Got %v (%T) and want UnimplementedOpcode", err, err)
	}
	if got, want := uo, (UnimplementedOpcode{Opcode: 0xFF, PC: 0x0001}); got != want {
		t.Errorf("Got %+v and want %+v", got, want)
	}

	err = fmt.Errorf("running rom: %w", c.Run([]uint8{0xAA, 0xA9}))
	var pt ProgramTruncated
	if !errors.As(err, &pt) {
		t.Fatalf("Got %v (%T) and want ProgramTruncated", err, err)
	}
	if got, want := pt.PC, uint16(0x0002); got != want {
		t.Errorf("PC got 0x%.4X and want 0x%.4X", got, want)
	}
	if errors.As(err, &uo) {
		t.Errorf("Truncation reported as unimplemented opcode: %v", err)
	}
}

func TestErrorStrings(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{UnimplementedOpcode{Opcode: 0xFF}, "0xFF at PC 0x0000 is an unimplemented opcode"},
		{ProgramTruncated{PC: 0xAB}, "program truncated: no byte at PC 0x00AB"},
		{InvalidProgram{Reason: "too big"}, "invalid program: too big"},
	}
	for _, test := range tests {
		if got, want := test.err.Error(), test.want; got != want {
			t.Errorf("%T: got %q and want %q", test.err, got, want)
		}
	}
}
