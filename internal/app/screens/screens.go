package screens

import (
	"github.com/Paciente8159/uCNC-modules-sub000/internal/fonts"
	"github.com/Paciente8159/uCNC-modules-sub000/internal/gfx"
	"github.com/Paciente8159/uCNC-modules-sub000/internal/state"
)

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Screen is an on-device screen. The app hands it a fresh snapshot with
// Update before every render pass, so all windows of a pass draw the same
// values.
type Screen interface {
	gfx.Screen
	Name() string
	Update(st state.State)
}

// Theme holds the fonts and colors every screen draws with.
type Theme struct {
	Text    *gfx.Font // labels and messages
	Readout *gfx.Font // large values
	Small   *gfx.Font

	Background gfx.Pixel
	Header     gfx.Pixel
	Panel      gfx.Pixel
	Border     gfx.Pixel
	Accent     gfx.Pixel
	Label      gfx.Pixel
	Value      gfx.Pixel
	Good       gfx.Pixel
	Warn       gfx.Pixel
}

// DefaultTheme loads the built-in fonts. A font that fails to load falls
// back to the 7x13 face.
func DefaultTheme(logger Logger) Theme {
	t := Theme{
		Text:       fonts.Basic(),
		Readout:    fonts.Basic(),
		Small:      fonts.Basic(),
		Background: gfx.Black,
		Header:     gfx.RGB(0x10, 0x30, 0x60),
		Panel:      gfx.RGB(0x18, 0x18, 0x18),
		Border:     gfx.Gray,
		Accent:     gfx.Cyan,
		Label:      gfx.White,
		Value:      gfx.RGB(0x60, 0xff, 0x60),
		Good:       gfx.Green,
		Warn:       gfx.RGB(0xc0, 0x10, 0x10),
	}
	if f, err := fonts.Mono(22); err != nil {
		logger.Errorf("screens", "value font failed, using basic: %v", err)
	} else {
		t.Readout = f
	}
	if f, err := fonts.Proggy(); err != nil {
		logger.Errorf("screens", "small font failed, using basic: %v", err)
	} else {
		t.Small = f
	}
	return t
}

// centerX returns the x that centers s in [x, x+width).
func centerX(x, width int, font *gfx.Font, scale int, s string) int {
	w, _ := font.Measure(s, scale)
	return x + (width-w)/2
}

// lineHeight returns the height of a text line at scale.
func lineHeight(font *gfx.Font, scale int) int {
	_, h := font.Measure("", scale)
	return h
}
