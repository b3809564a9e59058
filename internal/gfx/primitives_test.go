package gfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClearFillsWindow(t *testing.T) {
	ctx := newWindow(10, 20, 5, 3, 0)
	ctx.Clear(Red)

	assert.True(t, ctx.Dirty)
	for y := 20; y < 23; y++ {
		for x := 10; x < 15; x++ {
			assert.Equal(t, Red, ctx.At(x, y))
		}
	}
}

func TestRectFixture(t *testing.T) {
	ctx := newWindow(0, 0, 4, 4, 0)
	ctx.Rect(1, 1, 2, 2, 1)

	assert.Equal(t, grid(t,
		"0000",
		"0110",
		"0110",
		"0000",
	), ctx.Buffer)
	assert.True(t, ctx.Dirty)
}

func TestRectClipsToWindow(t *testing.T) {
	ctx := newWindow(2, 2, 4, 4, 0)
	ctx.Rect(0, 0, 4, 4, 1)

	assert.Equal(t, grid(t,
		"1100",
		"1100",
		"0000",
		"0000",
	), ctx.Buffer)
}

func TestFrameFixture(t *testing.T) {
	ctx := newWindow(0, 0, 4, 4, 0)
	ctx.Frame(1, 1, 3, 3, 1, 0, 1)

	assert.Equal(t, grid(t,
		"0000",
		"0111",
		"0101",
		"0111",
	), ctx.Buffer)
}

func TestFrameBorderStaysPutWhenClipped(t *testing.T) {
	// The frame spans rows 0..5; only rows 2..3 are in the window, so only
	// the side borders are visible.
	ctx := newWindow(0, 2, 6, 2, 9)
	ctx.Frame(0, 0, 6, 6, 1, 0, 1)

	assert.Equal(t, grid(t,
		"100001",
		"100001",
	), ctx.Buffer)
}

func TestFrameThickness(t *testing.T) {
	ctx := newWindow(0, 0, 6, 6, 9)
	ctx.Frame(0, 0, 6, 6, 2, 0, 1)

	assert.Equal(t, grid(t,
		"111111",
		"111111",
		"110011",
		"110011",
		"111111",
		"111111",
	), ctx.Buffer)
}

func TestPrimitivesOutsideWindowAreNoOps(t *testing.T) {
	font := testFont()
	cases := map[string]func(ctx *Context){
		"rect left":    func(ctx *Context) { ctx.Rect(0, 10, 10, 4, 1) },
		"rect below":   func(ctx *Context) { ctx.Rect(10, 14, 4, 4, 1) },
		"rect empty":   func(ctx *Context) { ctx.Rect(10, 10, 0, 4, 1) },
		"frame above":  func(ctx *Context) { ctx.Frame(10, 0, 4, 10, 1, 0, 1) },
		"bitmap right": func(ctx *Context) { ctx.Bitmap(14, 10, 4, 4, 0, 1, []byte{0xFF, 0xFF}, 1) },
		"palette left": func(ctx *Context) {
			ctx.PaletteBitmap(2, 10, 4, 4, 2, []Pixel{1, 2, 3, 4}, []byte{0xFF, 0xFF, 0xFF, 0xFF}, 2)
		},
		"text above": func(ctx *Context) { ctx.Text(10, 6, 0, 1, font, 1, "A") },
		"text right": func(ctx *Context) { ctx.Text(14, 10, 0, 1, font, 1, "A") },
		"text left":  func(ctx *Context) { ctx.Text(0, 10, 0, 1, font, 1, "AA") },
	}
	for name, draw := range cases {
		t.Run(name, func(t *testing.T) {
			ctx := newWindow(10, 10, 4, 4, 7)
			before := append([]Pixel(nil), ctx.Buffer...)
			draw(ctx)
			assert.Equal(t, before, ctx.Buffer)
			assert.False(t, ctx.Dirty)
			assert.Empty(t, ctx.Damage())
		})
	}
}

func TestNewContextShrinksToBuffer(t *testing.T) {
	buf := make([]Pixel, 10)
	ctx := NewContext(0, 0, 4, 4, buf)
	require.Equal(t, 2, ctx.Height)
	assert.Len(t, ctx.Buffer, 8)
}

func TestSetAndAtClip(t *testing.T) {
	ctx := newWindow(5, 5, 2, 2, 0)
	ctx.Set(4, 5, 1)
	ctx.Set(7, 5, 1)
	assert.False(t, ctx.Dirty)

	ctx.Set(6, 6, 3)
	assert.True(t, ctx.Dirty)
	assert.Equal(t, Pixel(3), ctx.At(6, 6))
	assert.Equal(t, Pixel(0), ctx.At(100, 100))
}

func TestDamageSkipsCoveredRects(t *testing.T) {
	ctx := newWindow(0, 0, 8, 8, 0)
	ctx.Rect(1, 1, 2, 2, 1)
	ctx.Rect(1, 1, 1, 1, 2)
	ctx.Rect(0, 0, 4, 4, 3)
	ctx.Rect(6, 6, 1, 1, 4)

	assert.Len(t, ctx.Damage(), 2)
	assert.False(t, ctx.fullyDamaged())

	ctx.Clear(0)
	assert.True(t, ctx.fullyDamaged())
}
