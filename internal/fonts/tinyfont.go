package fonts

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/Paciente8159/uCNC-modules-sub000/internal/gfx"
)

// glyphCanvas is a drivers.Displayer that records the pixels a tinyfont
// glyph draws into a width x height cell.
type glyphCanvas struct {
	width, height int
	ink           []bool
}

var _ drivers.Displayer = (*glyphCanvas)(nil)

func newGlyphCanvas(width, height int) *glyphCanvas {
	return &glyphCanvas{width: width, height: height, ink: make([]bool, width*height)}
}

func (c *glyphCanvas) Size() (x, y int16) { return int16(c.width), int16(c.height) }

func (c *glyphCanvas) SetPixel(x, y int16, col color.RGBA) {
	ix, iy := int(x), int(y)
	if ix < 0 || iy < 0 || ix >= c.width || iy >= c.height {
		return
	}
	// Multi-bit fonts draw dimmed pixels for anti-aliasing.
	c.ink[ix+iy*c.width] = col.R >= 0x80
}

func (c *glyphCanvas) Display() error { return nil }

func (c *glyphCanvas) at(x, y int) bool { return c.ink[x+y*c.width] }

// FromFonter converts runes first..last of a tinyfont font.
func FromFonter(name string, f tinyfont.Fonter, first, last rune) (*gfx.Font, error) {
	b, err := newBuilder(name, first, last)
	if err != nil {
		return nil, err
	}
	descent := 0
	for r := first; r <= last; r++ {
		g := f.GetGlyph(r)
		if g == nil {
			continue
		}
		info := g.Info()
		w, h := int(info.Width), int(info.Height)
		cv := newGlyphCanvas(w, h)
		// Place the pen so the glyph's top-left lands on (0, 0).
		g.Draw(cv, -int16(info.XOffset), -int16(info.YOffset), color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
		err := b.add(r, w, h, int(info.XAdvance), int(info.XOffset), int(info.YOffset), cv.at)
		if err != nil {
			return nil, err
		}
		descent = max(descent, int(info.YOffset)+h)
	}
	return b.finish(int(f.GetYAdvance()), descent)
}

// Proggy returns proggy TinySZ 8pt, a compact font for dense readouts.
func Proggy() (*gfx.Font, error) {
	return FromFonter("proggy-tinysz8", &proggy.TinySZ8pt7b, FirstASCII, LastASCII)
}
