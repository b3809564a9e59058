package gfx

import (
	"image"
	"unicode/utf8"
)

// Text draws one line of s with its line band starting at absolute (x, y).
// The band is font.YAdvance*scale rows high; every pixel of the band covered
// by a glyph advance is painted, ink with fg and the rest with bg, so text
// fully replaces what was underneath. Columns are streamed left to right and
// stop at the window's right edge, at the end of s, or at a NUL. Characters
// the font does not cover are skipped.
func (c *Context) Text(x, y int, bg, fg Pixel, font *Font, scale int, s string) {
	if scale < 1 {
		scale = 1
	}
	if font == nil || font.YAdvance == 0 {
		c.Yield()
		return
	}
	lineHeight := int(font.YAdvance) * scale
	right := c.X + c.Width
	if y+lineHeight <= c.Y || y >= c.Y+c.Height || x >= right {
		c.Yield()
		return
	}
	top := max(y, c.Y)
	bottom := min(y+lineHeight, c.Y+c.Height)

	// Skip whole characters left of the window.
	gx := x
	g, pos := nextGlyph(font, s, 0)
	for g != nil && gx+int(g.XAdvance)*scale <= c.X {
		gx += int(g.XAdvance) * scale
		g, pos = nextGlyph(font, s, pos)
	}
	if g == nil {
		c.Yield()
		return
	}

	advance := int(g.XAdvance) * scale
	col := 0
	if gx < c.X {
		// The character straddles the left edge.
		col = c.X - gx
	}
	start := gx + col
	dx := start
	for ; dx < right; dx++ {
		if col >= advance {
			g, pos = nextGlyph(font, s, pos)
			if g == nil {
				break
			}
			advance = int(g.XAdvance) * scale
			col = 0
			c.Yield()
		}
		c.textColumn(dx, y, top, bottom, font, g, col, scale, bg, fg)
		col++
	}
	if dx > start {
		c.markDirty(image.Rect(start, top, dx, bottom))
	}
	c.Yield()
}

// textColumn paints rows [top, bottom) of column dx, which is column col of
// glyph g's advance cell on a line whose band starts at row y.
func (c *Context) textColumn(dx, y, top, bottom int, font *Font, g *Glyph, col, scale int, bg, fg Pixel) {
	sx := col/scale - int(g.XOffset)
	inside := sx >= 0 && sx < int(g.Width)
	glyphTop := font.Baseline() + int(g.YOffset)
	w := int(g.Width)

	i := c.Index(dx-c.X, top-c.Y)
	for py := top; py < bottom; py++ {
		p := bg
		if inside {
			sy := (py-y)/scale - glyphTop
			if sy >= 0 && sy < int(g.Height) && bitAt(font.Bitmap, int(g.Offset), sx+sy*w) != 0 {
				p = fg
			}
		}
		c.Buffer[i] = p
		i += c.Width
	}
}

// nextGlyph decodes characters from s starting at byte pos until one the
// font covers. It returns nil at the end of s or at a NUL.
func nextGlyph(font *Font, s string, pos int) (*Glyph, int) {
	for pos < len(s) {
		r, size := utf8.DecodeRuneInString(s[pos:])
		pos += size
		if r == 0 {
			return nil, len(s)
		}
		if g, ok := font.Glyph(r); ok {
			return g, pos
		}
	}
	return nil, pos
}
