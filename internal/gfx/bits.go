package gfx

// Glyph and bitmap data is packed MSB-first, row-major, with no padding at
// row boundaries: pixel (x, y) of a w-wide image lives at bit x + y*w.

// bitAt returns bit index of data counted from byte offset. Bits past the
// end of data read as 0.
func bitAt(data []byte, offset, index int) uint8 {
	i := offset + index>>3
	if i < 0 || i >= len(data) {
		return 0
	}
	return (data[i] >> (7 - uint(index&7))) & 1
}

// bitsAt returns the bpp-bit group holding pixel index, most significant
// bit first.
func bitsAt(data []byte, offset, index, bpp int) uint32 {
	if bpp == 1 {
		return uint32(bitAt(data, offset, index))
	}
	start := index * bpp
	var v uint32
	for k := 0; k < bpp; k++ {
		v = v<<1 | uint32(bitAt(data, offset, start+k))
	}
	return v
}
