package app

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Paciente8159/uCNC-modules-sub000/internal/gfx"
)

const (
	EnvWidth      = "UCNC_GFX_WIDTH"
	EnvHeight     = "UCNC_GFX_HEIGHT"
	EnvBufferRows = "UCNC_GFX_BUFFER_ROWS"
	EnvFPS        = "UCNC_GFX_FPS"
	EnvYieldMS    = "UCNC_GFX_YIELD_MS"
	EnvVersion    = "UCNC_GFX_VERSION"
	EnvReadout    = "UCNC_GFX_READOUT_FONT"
)

// ReadoutSize is the pixel size readout fonts are rasterized at.
const ReadoutSize = 22

// Config sizes the display and paces the refresh loop.
type Config struct {
	Width, Height int
	// BufferRows is the render buffer height in display rows.
	BufferRows int
	// FPS is the refresh rate of the screen loop.
	FPS int
	// YieldEvery bounds how long a render pass runs without servicing input.
	YieldEvery time.Duration
	Version    string
	// ReadoutFont is an optional OpenType or TrueType file for the large
	// readouts. Empty keeps the built-in Go Mono.
	ReadoutFont string
}

func DefaultConfig() Config {
	return Config{
		Width:      gfx.DefaultWidth,
		Height:     gfx.DefaultHeight,
		BufferRows: gfx.DefaultBufferPixels / gfx.DefaultWidth,
		FPS:        10,
		YieldEvery: gfx.DefaultYieldEvery,
		Version:    "uCNC 1.x",
	}
}

// DefaultConfigFromEnv starts from DefaultConfig and applies the UCNC_*
// environment overrides.
func DefaultConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	yieldMS := int(cfg.YieldEvery / time.Millisecond)
	ints := []struct {
		env string
		dst *int
	}{
		{EnvWidth, &cfg.Width},
		{EnvHeight, &cfg.Height},
		{EnvBufferRows, &cfg.BufferRows},
		{EnvFPS, &cfg.FPS},
		{EnvYieldMS, &yieldMS},
	}
	for _, v := range ints {
		raw := os.Getenv(v.env)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be an integer (got %q): %w", v.env, raw, err)
		}
		*v.dst = n
	}
	cfg.YieldEvery = time.Duration(yieldMS) * time.Millisecond
	if raw := os.Getenv(EnvVersion); raw != "" {
		cfg.Version = raw
	}
	cfg.ReadoutFont = os.Getenv(EnvReadout)
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("display size must be positive (got %dx%d)", c.Width, c.Height)
	}
	if c.BufferRows < 1 {
		return fmt.Errorf("%s must be at least 1 (got %d)", EnvBufferRows, c.BufferRows)
	}
	if c.FPS < 1 || c.FPS > 100 {
		return fmt.Errorf("%s must be between 1 and 100 (got %d)", EnvFPS, c.FPS)
	}
	if c.YieldEvery < 0 {
		return fmt.Errorf("%s must not be negative (got %v)", EnvYieldMS, c.YieldEvery)
	}
	return nil
}

func (c Config) options(logger Logger, tick func()) gfx.Options {
	return gfx.Options{
		Width:        c.Width,
		Height:       c.Height,
		BufferPixels: c.Width * c.BufferRows,
		YieldEvery:   c.YieldEvery,
		Tick:         tick,
		Logger:       logger,
	}
}
