package gfx

import (
	"strings"
	"testing"
)

// grid parses rows of single-digit pixel values.
func grid(t *testing.T, rows ...string) []Pixel {
	t.Helper()
	var out []Pixel
	for _, row := range rows {
		for _, ch := range strings.ReplaceAll(row, " ", "") {
			if ch < '0' || ch > '9' {
				t.Fatalf("bad grid cell %q", ch)
			}
			out = append(out, Pixel(ch-'0'))
		}
	}
	return out
}

func newWindow(x, y, width, height int, fill Pixel) *Context {
	buf := make([]Pixel, width*height)
	for i := range buf {
		buf[i] = fill
	}
	return NewContext(x, y, width, height, buf)
}

// testFont covers 'A' only: a 4x4 glyph with bits {0x96, 0x29} and one
// column of spacing.
func testFont() *Font {
	return &Font{
		Name:   "test",
		Bitmap: []byte{0x96, 0x29},
		Glyphs: []Glyph{
			{Offset: 0, Width: 4, Height: 4, XAdvance: 5, XOffset: 0, YOffset: -4},
		},
		First:    'A',
		Last:     'A',
		YAdvance: 4,
	}
}
