package gfx

import "unicode/utf8"

// Glyph describes one character inside Font.Bitmap. Offsets are relative to
// the pen position on the baseline. Text paints only the columns of the
// advance cell, so ink left of the pen (negative XOffset) or past XAdvance
// is not drawn; font builders keep glyphs inside their cell.
type Glyph struct {
	Offset   uint32 // byte offset of the glyph bits in Font.Bitmap
	Width    uint8
	Height   uint8
	XAdvance uint8
	XOffset  int8
	YOffset  int8
}

// Font is an immutable packed bitmap font covering codes First..Last.
type Font struct {
	Name   string
	Bitmap []byte
	Glyphs []Glyph
	First  rune
	Last   rune
	// YAdvance is the line height in pixels.
	YAdvance uint8
	// Descent is the distance from the baseline to the bottom of the line.
	Descent uint8
}

// Glyph returns the descriptor for r. Codes outside the font, and entries
// with no advance, report false.
func (f *Font) Glyph(r rune) (*Glyph, bool) {
	if f == nil || r < f.First || r > f.Last {
		return nil, false
	}
	i := int(r - f.First)
	if i >= len(f.Glyphs) {
		return nil, false
	}
	g := &f.Glyphs[i]
	if g.XAdvance == 0 {
		return nil, false
	}
	return g, true
}

// Baseline returns the baseline row relative to the top of the line.
func (f *Font) Baseline() int {
	return int(f.YAdvance) - int(f.Descent)
}

// Measure returns the width Text covers for s and the line height, both at
// the given scale. Unknown characters take no space.
func (f *Font) Measure(s string, scale int) (width, height int) {
	if f == nil {
		return 0, 0
	}
	if scale < 1 {
		scale = 1
	}
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		if r == 0 {
			break
		}
		if g, ok := f.Glyph(r); ok {
			width += int(g.XAdvance) * scale
		}
	}
	return width, int(f.YAdvance) * scale
}
