package gfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitAt(t *testing.T) {
	data := []byte{0x96, 0x29}
	want := []uint8{1, 0, 0, 1, 0, 1, 1, 0, 0, 0, 1, 0, 1, 0, 0, 1}
	for i, w := range want {
		assert.Equal(t, w, bitAt(data, 0, i), "bit %d", i)
	}
}

func TestBitAtOffsetAndBounds(t *testing.T) {
	data := []byte{0x00, 0x80}
	assert.Equal(t, uint8(1), bitAt(data, 1, 0))
	assert.Equal(t, uint8(0), bitAt(data, 1, 1))
	assert.Equal(t, uint8(0), bitAt(data, 0, 16), "past the end reads 0")
	assert.Equal(t, uint8(0), bitAt(nil, 0, 0))
}

func TestBitsAt(t *testing.T) {
	data := []byte{0x41, 0x24, 0x05, 0x91}
	want := []uint32{1, 0, 0, 1, 0, 2, 1, 0, 0, 0, 1, 1, 2, 1, 0, 1}
	for i, w := range want {
		assert.Equal(t, w, bitsAt(data, 0, i, 2), "index %d", i)
	}
}

func TestBitsAtCrossesBytes(t *testing.T) {
	// 3-bit groups: 101 110 01|1 ...
	data := []byte{0xB9, 0x80}
	assert.Equal(t, uint32(5), bitsAt(data, 0, 0, 3))
	assert.Equal(t, uint32(6), bitsAt(data, 0, 1, 3))
	assert.Equal(t, uint32(3), bitsAt(data, 0, 2, 3))
}
