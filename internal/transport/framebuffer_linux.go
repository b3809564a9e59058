//go:build linux && cgo

package transport

import (
	"fmt"

	fb "github.com/gonutz/framebuffer"
)

// OpenFramebuffer opens a Linux framebuffer device such as /dev/fb0 and
// returns a blitter stretching a width x height display over it.
func OpenFramebuffer(path string, width, height int) (*Scaled, error) {
	dev, err := fb.Open(path)
	if err != nil {
		return nil, fmt.Errorf("transport: open %s: %w", path, err)
	}
	s := NewScaled(dev, width, height)
	s.close = func() { dev.Close() }
	return s, nil
}
