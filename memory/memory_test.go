package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgramRead(t *testing.T) {
	assert := assert.New(t)

	b := []uint8{0xA9, 0x05, 0x00}
	p, err := NewProgram(b)
	require.NoError(t, err)
	assert.Equal(3, p.Len())

	for i, want := range b {
		got, ok := p.Read(uint16(i))
		assert.True(ok, "addr %d", i)
		assert.Equal(want, got, "addr %d", i)
	}
	for _, addr := range []uint16{3, 4, 0xFFFF} {
		_, ok := p.Read(addr)
		assert.False(ok, "addr 0x%.4X should be out of bounds", addr)
	}

	// Mutating the source has no effect on the image.
	b[0] = 0xFF
	got, _ := p.Read(0)
	assert.Equal(uint8(0xA9), got)
}

func TestProgramEmpty(t *testing.T) {
	p, err := NewProgram(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Len())
	_, ok := p.Read(0)
	assert.False(t, ok)
}

func TestProgramSize(t *testing.T) {
	p, err := NewProgram(make([]uint8, MaxSize))
	require.NoError(t, err)
	_, ok := p.Read(0xFFFE)
	assert.True(t, ok, "last byte of a full image must be readable")
	_, ok = p.Read(0xFFFF)
	assert.False(t, ok, "0xFFFF is never part of an image")

	// A whole 64k image would leave PC nowhere to go past its end.
	_, err = NewProgram(make([]uint8, 0x10000))
	assert.Equal(t, TooLarge{Len: 0x10000}, err)
}
