package transport

import (
	"image/draw"

	"github.com/Paciente8159/uCNC-modules-sub000/internal/gfx"
)

// Scaled blits into a draw.Image of any size, such as a framebuffer device,
// stretching the logical display over it with nearest-neighbour sampling.
// A shadow canvas keeps the logical display so every device pixel can be
// sampled.
type Scaled struct {
	dst    draw.Image
	shadow *Canvas
	width  int
	height int
	close  func()
}

// NewScaled returns a blitter for a width x height display shown on dst.
func NewScaled(dst draw.Image, width, height int) *Scaled {
	return &Scaled{dst: dst, shadow: NewCanvas(width, height), width: width, height: height}
}

// Canvas returns the logical display.
func (s *Scaled) Canvas() *Canvas { return s.shadow }

func ceilDiv(a, b int) int { return (a + b - 1) / b }

// span returns the device range [lo, hi) whose samples fall in the logical
// range [v, v+n) when size logical pixels map onto device pixels.
func span(v, n, size, device int) (lo, hi int) {
	lo = ceilDiv(max(v, 0)*device, size)
	hi = ceilDiv(min(v+n, size)*device, size)
	return lo, hi
}

func (s *Scaled) Blit(x, y, width, height int, pixels []gfx.Pixel) error {
	if err := s.shadow.Blit(x, y, width, height, pixels); err != nil {
		return err
	}
	b := s.dst.Bounds()
	x0, x1 := span(x, width, s.width, b.Dx())
	y0, y1 := span(y, height, s.height, b.Dy())

	s.shadow.mu.RLock()
	defer s.shadow.mu.RUnlock()
	for fy := y0; fy < y1; fy++ {
		sy := fy * s.height / b.Dy()
		for fx := x0; fx < x1; fx++ {
			sx := fx * s.width / b.Dx()
			s.dst.Set(b.Min.X+fx, b.Min.Y+fy, s.shadow.img.RGBAAt(sx, sy))
		}
	}
	return nil
}

// Close releases the device, if any.
func (s *Scaled) Close() error {
	if s.close != nil {
		s.close()
	}
	return nil
}
