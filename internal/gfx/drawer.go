package gfx

import "image"

// Drawer is what screen descriptions draw through. It offers every
// primitive in two flavours: the view returned by Once paints only when the
// pass is a first draw (static chrome), the view returned by Always paints on
// every pass (values that change). Both views share the layout state (the
// relative origin, the current background and the current font), which is
// updated whether or not pixels are painted, so later elements land in the
// same place on every pass.
type Drawer struct {
	ctx    *Context
	static bool
	st     *penState
}

type penState struct {
	origin image.Point
	bg     Pixel
	font   *Font
	scale  int
}

// NewDrawer returns the Always view over ctx with fresh layout state.
func NewDrawer(ctx *Context) Drawer {
	return Drawer{ctx: ctx, st: &penState{scale: 1}}
}

// Once returns the static view.
func (d Drawer) Once() Drawer {
	d.static = true
	return d
}

// Always returns the dynamic view.
func (d Drawer) Always() Drawer {
	d.static = false
	return d
}

// Context returns the window being painted.
func (d Drawer) Context() *Context { return d.ctx }

// FirstDraw reports whether static content is painted this pass.
func (d Drawer) FirstDraw() bool { return d.ctx.FirstDraw }

func (d Drawer) paint() bool { return !d.static || d.ctx.FirstDraw }

// Origin returns the relative origin set by the last Rect or Frame.
func (d Drawer) Origin() image.Point { return d.st.origin }

// Background returns the current background color.
func (d Drawer) Background() Pixel { return d.st.bg }

// At converts origin-relative coordinates to absolute ones.
func (d Drawer) At(dx, dy int) (x, y int) {
	return d.st.origin.X + dx, d.st.origin.Y + dy
}

// SetFont selects the font used by Label.
func (d Drawer) SetFont(font *Font, scale int) {
	if scale < 1 {
		scale = 1
	}
	d.st.font = font
	d.st.scale = scale
}

// Font returns the current font and scale.
func (d Drawer) Font() (*Font, int) { return d.st.font, d.st.scale }

// Clear fills the window and makes color the current background.
func (d Drawer) Clear(color Pixel) {
	d.st.bg = color
	if d.paint() {
		d.ctx.Clear(color)
	}
}

// Rect fills a rectangle; (x, y) becomes the relative origin and color the
// current background.
func (d Drawer) Rect(x, y, width, height int, color Pixel) {
	d.st.origin = image.Pt(x, y)
	d.st.bg = color
	if d.paint() {
		d.ctx.Rect(x, y, width, height, color)
	}
}

// Frame draws a bordered rectangle; its interior corner becomes the relative
// origin and bg the current background.
func (d Drawer) Frame(x, y, width, height, thickness int, bg, fg Pixel) {
	d.st.origin = image.Pt(x+thickness, y+thickness)
	d.st.bg = bg
	if d.paint() {
		d.ctx.Frame(x, y, width, height, thickness, bg, fg)
	}
}

// Bitmap draws a packed 1-bpp image at absolute (x, y).
func (d Drawer) Bitmap(x, y int, b Bitmap, bg, fg Pixel, scale int) {
	if d.paint() {
		d.ctx.DrawBitmap(x, y, b, bg, fg, scale)
	}
}

// PaletteBitmap draws a packed palette image at absolute (x, y).
func (d Drawer) PaletteBitmap(x, y int, b PaletteBitmap, scale int) {
	if d.paint() {
		d.ctx.DrawPaletteBitmap(x, y, b, scale)
	}
}

// Text draws s with its line band at absolute (x, y).
func (d Drawer) Text(x, y int, bg, fg Pixel, font *Font, scale int, s string) {
	if d.paint() {
		d.ctx.Text(x, y, bg, fg, font, scale, s)
	}
}

// Label draws s at (dx, dy) from the relative origin with the current font
// and background.
func (d Drawer) Label(dx, dy int, fg Pixel, s string) {
	x, y := d.At(dx, dy)
	d.Text(x, y, d.st.bg, fg, d.st.font, d.st.scale, s)
}

// Icon draws b at (dx, dy) from the relative origin on the current
// background.
func (d Drawer) Icon(dx, dy int, b Bitmap, fg Pixel, scale int) {
	x, y := d.At(dx, dy)
	d.Bitmap(x, y, b, d.st.bg, fg, scale)
}
