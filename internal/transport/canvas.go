// Package transport implements gfx.Blitter for the displays the renderer
// drives: an in-memory canvas and scaled framebuffers.
package transport

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"sync"
	"sync/atomic"

	xdraw "golang.org/x/image/draw"

	"github.com/Paciente8159/uCNC-modules-sub000/internal/gfx"
)

var ErrShortBlit = errors.New("transport: fewer pixels than the block needs")

// Canvas is an in-memory display. Blits and reads may come from different
// goroutines.
type Canvas struct {
	mu      sync.RWMutex
	img     *image.RGBA
	version atomic.Uint64
}

func NewCanvas(width, height int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Size returns the canvas size.
func (c *Canvas) Size() (width, height int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Blit copies a row-major block to (x, y). The part outside the canvas is
// dropped.
func (c *Canvas) Blit(x, y, width, height int, pixels []gfx.Pixel) error {
	if len(pixels) < width*height {
		return fmt.Errorf("%w: %d for %dx%d", ErrShortBlit, len(pixels), width, height)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	bounds := c.img.Bounds()
	for row := 0; row < height; row++ {
		py := y + row
		if py < bounds.Min.Y || py >= bounds.Max.Y {
			continue
		}
		for col := 0; col < width; col++ {
			px := x + col
			if px < bounds.Min.X || px >= bounds.Max.X {
				continue
			}
			c.img.SetRGBA(px, py, pixels[row*width+col].RGBA())
		}
	}
	c.version.Add(1)
	return nil
}

// At returns the pixel at (x, y).
func (c *Canvas) At(x, y int) gfx.Pixel {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return gfx.FromColor(c.img.RGBAAt(x, y))
}

// Version increases with every blit.
func (c *Canvas) Version() uint64 { return c.version.Load() }

// Snapshot returns a copy of the canvas.
func (c *Canvas) Snapshot() *image.RGBA {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := image.NewRGBA(c.img.Bounds())
	copy(out.Pix, c.img.Pix)
	return out
}

// CopyPixels copies the RGBA bytes of the canvas into dst, which must hold
// 4*width*height bytes.
func (c *Canvas) CopyPixels(dst []byte) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	copy(dst, c.img.Pix)
}

// Scaled returns a copy of the canvas enlarged scale times.
func (c *Canvas) Scaled(scale int) *image.RGBA {
	snap := c.Snapshot()
	if scale <= 1 {
		return snap
	}
	b := snap.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	xdraw.NearestNeighbor.Scale(out, out.Bounds(), snap, b, xdraw.Src, nil)
	return out
}

// WritePNG encodes the canvas, enlarged scale times, as PNG.
func (c *Canvas) WritePNG(w io.Writer, scale int) error {
	if err := png.Encode(w, c.Scaled(scale)); err != nil {
		return fmt.Errorf("transport: encode png: %w", err)
	}
	return nil
}
