// Package gfx renders declarative screens into a display that is too large
// to buffer in RAM. A Driver re-runs a Screen once per row window of its
// render buffer; every primitive clips itself against the current window, so
// content outside the window costs a bounds check. Rendering yields to a
// cooperative scheduler tick at bounded intervals.
package gfx

import (
	"image"
	"sync/atomic"
	"time"
)

// Context is one buffer-sized window of the display currently being painted.
// All coordinates passed to primitives are absolute display coordinates.
type Context struct {
	// X and Y are the absolute origin of the window.
	X, Y int
	// Width and Height are the window extent.
	Width, Height int
	// Buffer holds Width*Height pixels, row-major.
	Buffer []Pixel

	// Dirty is set once any primitive wrote into Buffer during this pass.
	Dirty bool
	// FirstDraw is set when static content must be painted this pass.
	FirstDraw bool
	// LastYield is when the scheduler tick last ran.
	LastYield time.Time

	damage []image.Rectangle
	yield  *yielder
}

type yielder struct {
	now   func() time.Time
	every time.Duration
	tick  func()
	ticks atomic.Uint64
}

// NewContext returns a window at (x, y) of the given size backed by buf. The
// height is reduced when buf cannot hold width*height pixels.
func NewContext(x, y, width, height int, buf []Pixel) *Context {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if width > 0 && width*height > len(buf) {
		height = len(buf) / width
	}
	return &Context{
		X:         x,
		Y:         y,
		Width:     width,
		Height:    height,
		Buffer:    buf[:width*height],
		FirstDraw: true,
	}
}

// Bounds returns the window in absolute display coordinates.
func (c *Context) Bounds() image.Rectangle {
	return image.Rect(c.X, c.Y, c.X+c.Width, c.Y+c.Height)
}

// Index returns the buffer index of window-local pixel (lx, ly).
func (c *Context) Index(lx, ly int) int { return lx + ly*c.Width }

// At returns the pixel at absolute (x, y), or 0 outside the window.
func (c *Context) At(x, y int) Pixel {
	lx, ly := x-c.X, y-c.Y
	if lx < 0 || ly < 0 || lx >= c.Width || ly >= c.Height {
		return 0
	}
	return c.Buffer[c.Index(lx, ly)]
}

// Set writes the pixel at absolute (x, y) if it falls inside the window.
func (c *Context) Set(x, y int, p Pixel) {
	lx, ly := x-c.X, y-c.Y
	if lx < 0 || ly < 0 || lx >= c.Width || ly >= c.Height {
		return
	}
	c.Buffer[c.Index(lx, ly)] = p
	c.markDirty(image.Rect(x, y, x+1, y+1))
}

// Damage returns the absolute rectangles written during this pass.
func (c *Context) Damage() []image.Rectangle { return c.damage }

// markDirty records r as painted. Rectangles already covered by an earlier
// one are not recorded twice.
func (c *Context) markDirty(r image.Rectangle) {
	c.Dirty = true
	for i, d := range c.damage {
		if r.In(d) {
			return
		}
		if d.In(r) {
			c.damage[i] = r
			return
		}
	}
	c.damage = append(c.damage, r)
}

// fullyDamaged reports whether a single write covered the whole window.
func (c *Context) fullyDamaged() bool {
	b := c.Bounds()
	for _, d := range c.damage {
		if b.In(d) {
			return true
		}
	}
	return false
}

// clip intersects the absolute rectangle (x, y, w, h) with the window.
// ok is false when nothing of it is visible.
func (c *Context) clip(x, y, w, h int) (r image.Rectangle, ok bool) {
	if w <= 0 || h <= 0 {
		return image.Rectangle{}, false
	}
	r = image.Rect(x, y, x+w, y+h).Intersect(c.Bounds())
	return r, !r.Empty()
}

// Yield runs the scheduler tick once the yield interval elapsed since the
// last tick. Contexts not created by a Driver never yield.
func (c *Context) Yield() {
	y := c.yield
	if y == nil || y.tick == nil {
		return
	}
	now := y.now()
	if now.Sub(c.LastYield) < y.every {
		return
	}
	y.tick()
	y.ticks.Add(1)
	c.LastYield = now
}
