package gfx

import (
	"image"
	"reflect"
	"sync"
	"sync/atomic"
	"time"
)

// Screen is a declarative screen description. Draw is called once per
// window of a render pass and must issue the same primitives every time;
// state that positions elements is rebuilt inside Draw on every call.
//
// The Screen value identifies the screen for the first-draw cache, so it
// should be a pointer (or another comparable value).
type Screen interface {
	Draw(ctx *Context)
}

type funcScreen struct{ draw func(ctx *Context) }

func (s *funcScreen) Draw(ctx *Context) { s.draw(ctx) }

// NewScreen wraps draw in a Screen with its own identity.
func NewScreen(draw func(ctx *Context)) Screen { return &funcScreen{draw: draw} }

// Blitter copies a row-major block of pixels to the display at absolute
// (x, y). It may block on transport I/O. Blocks are often smaller than the
// render window: a pass sends only the rectangles it painted, and those
// narrower than the window arrive one row at a time.
type Blitter interface {
	Blit(x, y, width, height int, pixels []Pixel) error
}

// BlitterFunc adapts a function to Blitter.
type BlitterFunc func(x, y, width, height int, pixels []Pixel) error

func (f BlitterFunc) Blit(x, y, width, height int, pixels []Pixel) error {
	return f(x, y, width, height, pixels)
}

// Stats counts driver activity since creation.
type Stats struct {
	Renders uint64 // completed passes, full and partial
	Dropped uint64 // requests refused because a pass was running
	Windows uint64 // row windows drawn
	Blits   uint64 // blocks sent to the blitter
	Ticks   uint64 // scheduler ticks issued
}

// Driver renders screens through a single fixed render buffer, one row
// window at a time. Only one pass runs at a time; a request arriving while a
// pass is in flight is dropped.
//
// A partial render re-runs the whole screen description against a smaller
// window, so its cost grows with the number of primitives in the screen, not
// with the number that intersect the region.
type Driver struct {
	opts Options
	buf  []Pixel
	blit Blitter

	busy atomic.Bool

	mu   sync.Mutex
	last Screen

	yield     yielder
	lastYield time.Time
	damage    []image.Rectangle

	renders atomic.Uint64
	dropped atomic.Uint64
	windows atomic.Uint64
	blits   atomic.Uint64
}

// NewDriver allocates the render buffer and returns a driver blitting to b.
func NewDriver(b Blitter, opts Options) (*Driver, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if b == nil {
		b = BlitterFunc(func(int, int, int, int, []Pixel) error { return nil })
	}
	d := &Driver{
		opts: opts,
		buf:  make([]Pixel, opts.BufferPixels),
		blit: b,
		yield: yielder{
			now:   opts.Now,
			every: opts.YieldEvery,
			tick:  opts.Tick,
		},
	}
	d.lastYield = opts.Now()
	return d, nil
}

// Size returns the display size.
func (d *Driver) Size() (width, height int) { return d.opts.Width, d.opts.Height }

// Busy reports whether a pass is running.
func (d *Driver) Busy() bool { return d.busy.Load() }

// RenderFull renders s over the whole display. Static content is painted
// only when s differs from the last fully rendered screen. It returns false
// when the request was dropped because another pass was running.
func (d *Driver) RenderFull(s Screen) bool {
	if !d.busy.CompareAndSwap(false, true) {
		d.dropped.Add(1)
		return false
	}
	defer d.busy.Store(false)

	first := !sameScreen(s, d.lastScreen())
	d.render(s, image.Rect(0, 0, d.opts.Width, d.opts.Height), first)

	d.mu.Lock()
	d.last = s
	d.mu.Unlock()
	return true
}

// RenderPartial renders s restricted to the display region (x, y, width,
// height). Primitives outside the region draw nothing. The last fully
// rendered screen is kept, unless s is a different screen: its content now
// covers part of the display, so the next full render repaints static
// content. It returns false when the request was dropped or the region is
// off the display.
func (d *Driver) RenderPartial(s Screen, x, y, width, height int) bool {
	area := image.Rect(x, y, x+width, y+height).Intersect(image.Rect(0, 0, d.opts.Width, d.opts.Height))
	if area.Empty() || width <= 0 || height <= 0 {
		return false
	}
	if !d.busy.CompareAndSwap(false, true) {
		d.dropped.Add(1)
		return false
	}
	defer d.busy.Store(false)

	first := !sameScreen(s, d.lastScreen())
	d.render(s, area, first)

	if first {
		d.mu.Lock()
		d.last = nil
		d.mu.Unlock()
	}
	return true
}

// Invalidate forgets the last fully rendered screen so the next full render
// repaints static content.
func (d *Driver) Invalidate() {
	d.mu.Lock()
	d.last = nil
	d.mu.Unlock()
}

// Stats returns a snapshot of the activity counters.
func (d *Driver) Stats() Stats {
	return Stats{
		Renders: d.renders.Load(),
		Dropped: d.dropped.Load(),
		Windows: d.windows.Load(),
		Blits:   d.blits.Load(),
		Ticks:   d.yield.ticks.Load(),
	}
}

func (d *Driver) lastScreen() Screen {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.last
}

// render tiles area into windows of as many rows as the buffer holds and
// runs s over each, top to bottom.
func (d *Driver) render(s Screen, area image.Rectangle, first bool) {
	width := area.Dx()
	maxRows := len(d.buf) / width

	for row := area.Min.Y; row < area.Max.Y; {
		rows := min(maxRows, area.Max.Y-row)
		ctx := NewContext(area.Min.X, row, width, rows, d.buf)
		ctx.FirstDraw = first
		ctx.Dirty = false
		ctx.LastYield = d.lastYield
		ctx.yield = &d.yield
		ctx.damage = d.damage[:0]

		if s != nil {
			s.Draw(ctx)
		}
		d.windows.Add(1)
		if ctx.Dirty {
			d.flush(ctx)
		}
		ctx.Yield()
		d.lastYield = ctx.LastYield
		d.damage = ctx.damage
		row += rows
	}
	d.renders.Add(1)
}

// flush sends a painted window to the blitter. A window covered by a single
// write goes out in one block; otherwise only the written rectangles are
// sent, so pixels the pass skipped (static content after the first draw)
// never overwrite what the display already shows. Rectangles narrower than
// the window go out row by row, which keeps every block contiguous in the
// buffer.
func (d *Driver) flush(ctx *Context) {
	if ctx.fullyDamaged() {
		d.send(ctx.X, ctx.Y, ctx.Width, ctx.Height, ctx.Buffer)
		return
	}
	for _, r := range ctx.damage {
		if r.Empty() {
			continue
		}
		if r.Dx() == ctx.Width {
			i := ctx.Index(0, r.Min.Y-ctx.Y)
			d.send(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), ctx.Buffer[i:i+r.Dx()*r.Dy()])
			continue
		}
		for y := r.Min.Y; y < r.Max.Y; y++ {
			i := ctx.Index(r.Min.X-ctx.X, y-ctx.Y)
			d.send(r.Min.X, y, r.Dx(), 1, ctx.Buffer[i:i+r.Dx()])
		}
	}
}

func (d *Driver) send(x, y, width, height int, pixels []Pixel) {
	if err := d.blit.Blit(x, y, width, height, pixels); err != nil {
		d.opts.Logger.Errorf("gfx", "blit %dx%d at (%d,%d) failed: %v", width, height, x, y, err)
		return
	}
	d.blits.Add(1)
}

// sameScreen compares screen identities without panicking on values whose
// dynamic type is not comparable; those never match.
func sameScreen(a, b Screen) bool {
	if a == nil || b == nil {
		return false
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}
