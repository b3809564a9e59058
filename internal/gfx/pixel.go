package gfx

import "image/color"

// Pixel is a display pixel in RGB565 (rrrrrggggggbbbbb), the native format of
// the SPI TFT panels the renderer streams to.
type Pixel uint16

// Common colors.
const (
	Black   Pixel = 0x0000
	White   Pixel = 0xFFFF
	Red     Pixel = 0xF800
	Green   Pixel = 0x07E0
	Blue    Pixel = 0x001F
	Yellow  Pixel = 0xFFE0
	Cyan    Pixel = 0x07FF
	Magenta Pixel = 0xF81F
	Gray    Pixel = 0x8410
)

// RGB packs 8-bit channels into a Pixel.
func RGB(r, g, b uint8) Pixel {
	rr := Pixel(r>>3) & 0x1F
	gg := Pixel(g>>2) & 0x3F
	bb := Pixel(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

// FromColor converts any color to the nearest Pixel, ignoring alpha.
func FromColor(c color.Color) Pixel {
	r, g, b, _ := c.RGBA()
	return RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// RGB888 expands the pixel to 8-bit channels.
func (p Pixel) RGB888() (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((uint32(rr) * 255) / 31)
	g = uint8((uint32(gg) * 255) / 63)
	b = uint8((uint32(bb) * 255) / 31)
	return r, g, b
}

// RGBA returns the pixel as an opaque color.RGBA.
func (p Pixel) RGBA() color.RGBA {
	r, g, b := p.RGB888()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}
