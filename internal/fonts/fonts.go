// Package fonts builds packed gfx fonts from standard font sources:
// golang.org/x/image faces, TrueType and OpenType data, and tinyfont fonts.
// Glyphs are thresholded to one bit per pixel.
package fonts

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/Paciente8159/uCNC-modules-sub000/internal/gfx"
)

var (
	ErrNoGlyphs      = errors.New("fonts: no glyphs in range")
	ErrGlyphTooLarge = errors.New("fonts: glyph does not fit the packed format")
)

// Printable ASCII, the range the firmware fonts carry.
const (
	FirstASCII rune = 0x20
	LastASCII  rune = 0x7e
)

// inkThreshold is the mask alpha from which a pixel counts as ink.
const inkThreshold = 0x8000

// builder packs glyph bitmaps back to back, each starting on a byte boundary.
type builder struct {
	font *gfx.Font
	any  bool
}

func newBuilder(name string, first, last rune) (*builder, error) {
	if last < first {
		return nil, fmt.Errorf("fonts: range %U..%U: %w", first, last, ErrNoGlyphs)
	}
	return &builder{font: &gfx.Font{
		Name:   name,
		First:  first,
		Last:   last,
		Glyphs: make([]gfx.Glyph, last-first+1),
	}}, nil
}

// add packs a width x height glyph whose pixels are reported by ink. Ink
// left of the pen is shifted right and the advance widened to cover the ink.
func (b *builder) add(r rune, width, height, advance, xOffset, yOffset int, ink func(x, y int) bool) error {
	if advance > 0 && width > 0 {
		xOffset = max(xOffset, 0)
		advance = max(advance, xOffset+width)
	}
	if width < 0 || width > 255 || height < 0 || height > 255 || advance < 0 || advance > 255 ||
		xOffset < -128 || xOffset > 127 || yOffset < -128 || yOffset > 127 {
		return fmt.Errorf("fonts: %q is %dx%d advancing %d: %w", r, width, height, advance, ErrGlyphTooLarge)
	}
	g := gfx.Glyph{
		Offset:   uint32(len(b.font.Bitmap)),
		Width:    uint8(width),
		Height:   uint8(height),
		XAdvance: uint8(advance),
		XOffset:  int8(xOffset),
		YOffset:  int8(yOffset),
	}
	packed := make([]byte, (width*height+7)/8)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if ink(x, y) {
				i := x + y*width
				packed[i/8] |= 0x80 >> (i % 8)
			}
		}
	}
	b.font.Bitmap = append(b.font.Bitmap, packed...)
	b.font.Glyphs[r-b.font.First] = g
	if advance > 0 {
		b.any = true
	}
	return nil
}

func (b *builder) finish(yAdvance, descent int) (*gfx.Font, error) {
	if !b.any {
		return nil, fmt.Errorf("fonts: %s %U..%U: %w", b.font.Name, b.font.First, b.font.Last, ErrNoGlyphs)
	}
	if yAdvance <= 0 || yAdvance > 255 {
		return nil, fmt.Errorf("fonts: %s line height %d: %w", b.font.Name, yAdvance, ErrGlyphTooLarge)
	}
	b.font.YAdvance = uint8(yAdvance)
	b.font.Descent = uint8(max(0, min(descent, yAdvance)))
	return b.font, nil
}

// FromFace rasterizes runes first..last of face. Runes the face does not
// cover get an empty entry and are skipped when drawing text.
func FromFace(name string, face font.Face, first, last rune) (*gfx.Font, error) {
	b, err := newBuilder(name, first, last)
	if err != nil {
		return nil, err
	}
	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	descent := m.Descent.Ceil()
	lineHeight := max(m.Height.Ceil(), ascent+descent)

	for r := first; r <= last; r++ {
		dr, mask, maskp, advance, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok || mask == nil {
			continue
		}
		ink := func(x, y int) bool {
			_, _, _, a := mask.At(maskp.X+x, maskp.Y+y).RGBA()
			return a >= inkThreshold
		}
		if err := b.add(r, dr.Dx(), dr.Dy(), advance.Round(), dr.Min.X, dr.Min.Y, ink); err != nil {
			return nil, err
		}
	}
	return b.finish(lineHeight, lineHeight-ascent)
}

// FromOpenType parses OpenType or TrueType data with x/image and
// rasterizes it at size points (72 DPI, so points are pixels).
func FromOpenType(name string, data []byte, size float64, first, last rune) (*gfx.Font, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fonts: parse %s: %w", name, err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("fonts: face %s at %.1fpt: %w", name, size, err)
	}
	defer face.Close()
	return FromFace(name, face, first, last)
}

// FromTrueType parses TrueType data with freetype and rasterizes it at size
// points.
func FromTrueType(name string, data []byte, size float64, first, last rune) (*gfx.Font, error) {
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fonts: parse %s: %w", name, err)
	}
	face := truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull})
	defer face.Close()
	return FromFace(name, face, first, last)
}

// Mono returns Go Mono rasterized at size pixels, printable ASCII only.
func Mono(size float64) (*gfx.Font, error) {
	return FromTrueType(fmt.Sprintf("gomono-%g", size), gomono.TTF, size, FirstASCII, LastASCII)
}

var basic = sync.OnceValue(func() *gfx.Font {
	f, err := FromFace("basic7x13", basicfont.Face7x13, FirstASCII, LastASCII)
	if err != nil {
		panic(err)
	}
	return f
})

// Basic returns the built-in 7x13 font.
func Basic() *gfx.Font { return basic() }

// Sample renders s with f into an image of the text's extent, ink in black
// on white. It is used for previews and by tests.
func Sample(f *gfx.Font, scale int, s string) *image.RGBA {
	w, h := f.Measure(s, scale)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 {
		return img
	}
	buf := make([]gfx.Pixel, w*h)
	ctx := gfx.NewContext(0, 0, w, h, buf)
	ctx.Text(0, 0, gfx.White, gfx.Black, f, scale, s)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, ctx.At(x, y).RGBA())
		}
	}
	return img
}
