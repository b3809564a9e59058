//go:build !linux || !cgo

package transport

import (
	"errors"
	"fmt"
)

var errNoFramebuffer = errors.New("framebuffer devices need linux")

// OpenFramebuffer is only available on linux.
func OpenFramebuffer(path string, width, height int) (*Scaled, error) {
	return nil, fmt.Errorf("transport: open %s: %w", path, errNoFramebuffer)
}
