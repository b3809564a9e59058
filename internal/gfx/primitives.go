package gfx

// Clear fills the whole window with color.
func (c *Context) Clear(color Pixel) {
	for i := range c.Buffer {
		c.Buffer[i] = color
	}
	c.markDirty(c.Bounds())
	c.Yield()
}

// Rect fills the absolute rectangle (x, y, width, height). A rectangle that
// misses the window leaves the buffer and the dirty flag untouched.
func (c *Context) Rect(x, y, width, height int, color Pixel) {
	r, ok := c.clip(x, y, width, height)
	if ok {
		for py := r.Min.Y; py < r.Max.Y; py++ {
			row := c.Index(r.Min.X-c.X, py-c.Y)
			line := c.Buffer[row : row+r.Dx()]
			for i := range line {
				line[i] = color
			}
		}
		c.markDirty(r)
	}
	c.Yield()
}

// Frame fills the absolute rectangle with bg and paints its outer thickness
// pixels on every side with fg. Border distance is measured against the
// unclipped rectangle so a partly visible frame keeps its border in place.
func (c *Context) Frame(x, y, width, height, thickness int, bg, fg Pixel) {
	r, ok := c.clip(x, y, width, height)
	if ok {
		right := x + width - 1
		bottom := y + height - 1
		for py := r.Min.Y; py < r.Max.Y; py++ {
			dy := min(py-y, bottom-py)
			i := c.Index(r.Min.X-c.X, py-c.Y)
			for px := r.Min.X; px < r.Max.X; px++ {
				d := min(dy, px-x, right-px)
				if d < thickness {
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
