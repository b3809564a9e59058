package gfx

import (
	"errors"
	"fmt"
	"time"
)

// Default driver configuration: a 320x240 ILI9341-class panel with a render
// buffer of 24 display rows.
var (
	DefaultWidth        = 320
	DefaultHeight       = 240
	DefaultBufferPixels = 320 * 24
	DefaultYieldEvery   = 10 * time.Millisecond
)

var ErrInvalidOptions = errors.New("gfx: invalid options")

// Options configures a Driver.
type Options struct {
	// Width and Height are the display size in pixels.
	Width, Height int
	// BufferPixels is the render buffer capacity. It must hold at least one
	// display row.
	BufferPixels int

	// YieldEvery is the longest stretch the renderer runs without calling Tick.
	YieldEvery time.Duration
	// Tick is the cooperative scheduler hook. It must not render.
	Tick func()
	// Now is the time source; time.Now when nil.
	Now func() time.Time

	Logger Logger
}

func (o Options) withDefaults() Options {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.BufferPixels == 0 {
		o.BufferPixels = DefaultBufferPixels
	}
	if o.YieldEvery == 0 {
		o.YieldEvery = DefaultYieldEvery
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Logger == nil {
		o.Logger = NoopLogger{}
	}
	return o
}

func (o Options) validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: display size %dx%d", ErrInvalidOptions, o.Width, o.Height)
	}
	if o.BufferPixels < o.Width {
		return fmt.Errorf("%w: buffer of %d pixels cannot hold a %d pixel row", ErrInvalidOptions, o.BufferPixels, o.Width)
	}
	if o.YieldEvery < 0 {
		return fmt.Errorf("%w: negative yield interval %v", ErrInvalidOptions, o.YieldEvery)
	}
	return nil
}

// Logger is the component logger the driver reports transport failures to.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}
