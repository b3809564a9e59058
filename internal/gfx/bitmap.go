package gfx

// Bitmap is a packed 1-bpp image.
type Bitmap struct {
	Width, Height int
	Data          []byte
}

// PaletteBitmap is a packed image of BPP-bit indices into Palette.
type PaletteBitmap struct {
	Width, Height int
	BPP           int
	Palette       []Pixel
	Data          []byte
}

// Bitmap draws a packed 1-bpp image at absolute (x, y): set bits become fg,
// clear bits bg. Each source pixel covers a scale×scale block.
func (c *Context) Bitmap(x, y, width, height int, bg, fg Pixel, data []byte, scale int) {
	if scale < 1 {
		scale = 1
	}
	r, ok := c.clip(x, y, width*scale, height*scale)
	if ok {
		for py := r.Min.Y; py < r.Max.Y; py++ {
			sy := (py - y) / scale
			i := c.Index(r.Min.X-c.X, py-c.Y)
			for px := r.Min.X; px < r.Max.X; px++ {
				sx := (px - x) / scale
				if bitAt(data, 0, sx+sy*width) != 0 {
					c.Buffer[i] = fg
				} else {
					c.Buffer[i] = bg
				}
				i++
			}
		}
		c.markDirty(r)
	}
	c.Yield()
}

// PaletteBitmap draws a packed image of bpp-bit palette indices at absolute
// (x, y). Indices beyond the palette leave the destination pixel unchanged.
func (c *Context) PaletteBitmap(x, y, width, height, bpp int, palette []Pixel, data []byte, scale int) {
	if scale < 1 {
		scale = 1
	}
	if bpp < 1 || bpp > 16 {
		c.Yield()
		return
	}
	r, ok := c.clip(x, y, width*scale, height*scale)
	if ok {
		for py := r.Min.Y; py < r.Max.Y; py++ {
			sy := (py - y) / scale
			i := c.Index(r.Min.X-c.X, py-c.Y)
			for px := r.Min.X; px < r.Max.X; px++ {
				sx := (px - x) / scale
				idx := int(bitsAt(data, 0, sx+sy*width, bpp))
				if idx < len(palette) {
					c.Buffer[i] = palette[idx]
				}
				i++
			}
		}
		c.markDirty(r)
	}
	c.Yield()
}

// DrawBitmap draws b at absolute (x, y).
func (c *Context) DrawBitmap(x, y int, b Bitmap, bg, fg Pixel, scale int) {
	c.Bitmap(x, y, b.Width, b.Height, bg, fg, b.Data, scale)
}

// DrawPaletteBitmap draws b at absolute (x, y).
func (c *Context) DrawPaletteBitmap(x, y int, b PaletteBitmap, scale int) {
	c.PaletteBitmap(x, y, b.Width, b.Height, b.BPP, b.Palette, b.Data, scale)
}
