package assets

import (
	"image"
	"image/color"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Paciente8159/uCNC-modules-sub000/internal/gfx"
)

func set(b gfx.Bitmap, x, y int) bool {
	i := x + y*b.Width
	return b.Data[i/8]&(0x80>>(i%8)) != 0
}

func TestBitmapsAreComplete(t *testing.T) {
	for name, b := range map[string]gfx.Bitmap{"logo": Logo, "warning": Warning, "home": Home} {
		assert.Equal(t, (b.Width*b.Height+7)/8, len(b.Data), name)
	}
}

func TestWebUI(t *testing.T) {
	data, err := fs.ReadFile(WebUI, "index.html")
	require.NoError(t, err)
	assert.Contains(t, string(data), "/api/v1/frame.png")
}

func TestQRCode(t *testing.T) {
	b, err := QRCode("http://ucnc.local", false)
	require.NoError(t, err)

	assert.Equal(t, b.Width, b.Height)
	assert.GreaterOrEqual(t, b.Width, 21)
	assert.Equal(t, 0, (b.Width-17)%4, "a QR symbol is 4v+17 modules wide")
	assert.Len(t, b.Data, (b.Width*b.Height+7)/8)
	// Finder pattern corners.
	assert.True(t, set(b, 0, 0))
	assert.True(t, set(b, b.Width-1, 0))
	assert.True(t, set(b, 0, b.Height-1))
	assert.False(t, set(b, 1, 1))

	framed, err := QRCode("http://ucnc.local", true)
	require.NoError(t, err)
	assert.Equal(t, b.Width+8, framed.Width)
	assert.False(t, set(framed, 0, 0))
	assert.True(t, set(framed, 4, 4))

	_, err = QRCode("", false)
	assert.ErrorIs(t, err, ErrEmptyPayload)
}

func TestPack(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.Set(0, 0, color.Black)
	img.Set(1, 0, color.White)
	img.Set(2, 0, color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff})
	img.Set(0, 1, color.RGBA{}) // transparent
	img.Set(1, 1, color.Gray{Y: 0xc0})
	img.Set(2, 1, color.Black)

	b := Pack(img)
	assert.Equal(t, gfx.Bitmap{Width: 3, Height: 2, Data: []byte{0xa4}}, b)
}

func TestFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			c := color.White
			if x >= 2 && x < 6 && y >= 2 && y < 6 {
				c = color.Black
			}
			img.Set(x, y, c)
		}
	}

	b := FromImage(img, 4, 4)
	assert.Equal(t, 4, b.Width)
	assert.Equal(t, 4, b.Height)
	assert.True(t, set(b, 1, 1))
	assert.True(t, set(b, 2, 2))
	assert.False(t, set(b, 0, 0))
	assert.False(t, set(b, 3, 3))
}

func TestPackPalette(t *testing.T) {
	palette := []gfx.Pixel{gfx.Black, gfx.Red, gfx.Green}
	img := image.NewRGBA(image.Rect(0, 0, 3, 1))
	img.Set(0, 0, color.RGBA{R: 0xf0, A: 0xff})
	img.Set(1, 0, color.RGBA{G: 0xff, A: 0xff})
	img.Set(2, 0, color.RGBA{A: 0xff})

	pb, err := PackPalette(img, palette)
	require.NoError(t, err)
	assert.Equal(t, 2, pb.BPP)
	// Indices 1, 2, 0.
	assert.Equal(t, []byte{0x60}, pb.Data)

	ctx := gfx.NewContext(0, 0, 3, 1, make([]gfx.Pixel, 3))
	ctx.DrawPaletteBitmap(0, 0, pb, 1)
	assert.Equal(t, []gfx.Pixel{gfx.Red, gfx.Green, gfx.Black}, ctx.Buffer)

	_, err = PackPalette(img, nil)
	assert.ErrorIs(t, err, ErrPalette)
}

func TestLogoFor(t *testing.T) {
	b, err := LogoFor(240, 60)
	require.NoError(t, err)
	assert.Equal(t, 240, b.Width)
	assert.Equal(t, 60, b.Height)
	ink := 0
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if set(b, x, y) {
				ink++
			}
		}
	}
	assert.Greater(t, ink, 500)
	assert.False(t, set(b, 0, 0), "background stays clear")

	_, err = LogoFor(0, 10)
	assert.Error(t, err)
}

func TestLamp(t *testing.T) {
	l := Lamp(10)
	assert.Equal(t, 10, l.Width)
	assert.Equal(t, 2, l.BPP)

	l.Palette = []gfx.Pixel{gfx.Blue, gfx.Gray, gfx.Red}
	ctx := gfx.NewContext(0, 0, 10, 10, make([]gfx.Pixel, 100))
	ctx.DrawPaletteBitmap(0, 0, l, 1)
	assert.Equal(t, gfx.Blue, ctx.At(0, 0))
	assert.Equal(t, gfx.Gray, ctx.At(0, 5))
	assert.Equal(t, gfx.Red, ctx.At(5, 5))
}
