package assets

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"math/bits"

	"github.com/disintegration/gift"
	"github.com/skip2/go-qrcode"

	"github.com/Paciente8159/uCNC-modules-sub000/internal/gfx"
)

var (
	ErrEmptyPayload = errors.New("assets: empty qr payload")
	ErrPalette      = errors.New("assets: palette must hold 1 to 65536 colors")
)

// packBits packs a width x height 1-bpp image, MSB first, no row padding.
func packBits(width, height int, ink func(x, y int) bool) gfx.Bitmap {
	data := make([]byte, (width*height+7)/8)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if ink(x, y) {
				i := x + y*width
				data[i/8] |= 0x80 >> (i % 8)
			}
		}
	}
	return gfx.Bitmap{Width: width, Height: height, Data: data}
}

// QRCode encodes payload at medium recovery, one bitmap pixel per module.
// Dark modules are set bits. With border the quiet zone is included.
func QRCode(payload string, border bool) (gfx.Bitmap, error) {
	if payload == "" {
		return gfx.Bitmap{}, ErrEmptyPayload
	}
	q, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return gfx.Bitmap{}, fmt.Errorf("assets: qr code for %q: %w", payload, err)
	}
	q.DisableBorder = !border
	modules := q.Bitmap()
	size := len(modules)
	return packBits(size, size, func(x, y int) bool { return modules[y][x] }), nil
}

// Pack converts img to a 1-bpp bitmap. Opaque pixels darker than mid gray
// are set bits.
func Pack(img image.Image) gfx.Bitmap {
	b := img.Bounds()
	return packBits(b.Dx(), b.Dy(), func(x, y int) bool {
		c := img.At(b.Min.X+x, b.Min.Y+y)
		if _, _, _, a := c.RGBA(); a < 0x8000 {
			return false
		}
		return color.GrayModel.Convert(c).(color.Gray).Y < 0x80
	})
}

// FromImage scales img to fit width x height, thresholds it to black and
// white and packs it.
func FromImage(img image.Image, width, height int) gfx.Bitmap {
	g := gift.New(
		gift.ResizeToFit(width, height, gift.LanczosResampling),
		gift.Grayscale(),
		gift.Threshold(50),
	)
	dst := image.NewNRGBA(g.Bounds(img.Bounds()))
	g.Draw(dst, img)
	return Pack(dst)
}

// PackPalette converts img to palette indices, each pixel mapped to the
// nearest palette color. The bit depth is the smallest that addresses the
// whole palette.
func PackPalette(img image.Image, palette []gfx.Pixel) (gfx.PaletteBitmap, error) {
	if len(palette) == 0 || len(palette) > 1<<16 {
		return gfx.PaletteBitmap{}, ErrPalette
	}
	bpp := max(bits.Len(uint(len(palette)-1)), 1)
	pal := make(color.Palette, len(palette))
	for i, p := range palette {
		pal[i] = p.RGBA()
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	data := make([]byte, (w*h*bpp+7)/8)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := pal.Index(img.At(b.Min.X+x, b.Min.Y+y))
			start := (x + y*w) * bpp
			for k := 0; k < bpp; k++ {
				if idx&(1<<(bpp-1-k)) != 0 {
					bit := start + k
					data[bit/8] |= 0x80 >> (bit % 8)
				}
			}
		}
	}
	return gfx.PaletteBitmap{Width: w, Height: h, BPP: bpp, Palette: palette, Data: data}, nil
}

// Lamp indices.
const (
	LampOutside = iota
	LampRim
	LampFill
)

var lampPalette = []gfx.Pixel{gfx.Black, gfx.Gray, gfx.White}

// Lamp returns a round size x size indicator packed at 2 bpp. Its palette
// is a placeholder: callers swap in their own colors for LampOutside,
// LampRim and LampFill.
func Lamp(size int) gfx.PaletteBitmap {
	size = max(size, 1)
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	r := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := float64(x)+0.5-r, float64(y)+0.5-r
			d := math.Sqrt(dx*dx + dy*dy)
			p := lampPalette[LampOutside]
			switch {
			case d <= r-1.5:
				p = lampPalette[LampFill]
			case d <= r:
				p = lampPalette[LampRim]
			}
			img.Set(x, y, p.RGBA())
		}
	}
	// Three colors always fit.
	b, _ := PackPalette(img, lampPalette)
	return b
}
