package screens

import (
	"fmt"
	"image"

	"github.com/Paciente8159/uCNC-modules-sub000/internal/assets"
	"github.com/Paciente8159/uCNC-modules-sub000/internal/gfx"
	"github.com/Paciente8159/uCNC-modules-sub000/internal/gfx/layout"
	"github.com/Paciente8159/uCNC-modules-sub000/internal/state"
)

const (
	headerHeight = 24
	footerHeight = 32
	panelBorder  = 2
)

var axisNames = [3]string{"X", "Y", "Z"}

// Readouts use fixed-width formats: every pass paints the same columns, so
// a shorter value never leaves digits of a longer one behind. Values are
// clamped to what each format holds.
const (
	positionFormat = "%10.3f"
	machineFormat  = "%-5s"
	feedFormat     = "F %6.0f mm/min"
	spindleFormat  = "S %5d rpm"

	minPosition = -99999.999
	maxPosition = 999999.999
	minFeed     = -99999
	maxFeed     = 999999
	minSpindle  = -9999
	maxSpindle  = 99999
	lampSize    = 10
)

// DRO is the digital readout: machine state, tool position, feed and
// spindle speed. Panels and captions are static; readouts are redrawn on
// every pass.
type DRO struct {
	theme  Theme
	header image.Rectangle
	footer image.Rectangle
	axes   []image.Rectangle
	lamp   gfx.PaletteBitmap
	// cell is the widest a position readout can get in the readout font.
	cell int

	st state.State
}

func NewDRO(width, height int, theme Theme) *DRO {
	full := image.Rect(0, 0, width, height)
	header, rest := layout.SplitTop(full, headerHeight)
	body, footer := layout.SplitBottom(rest, footerHeight)
	return &DRO{
		theme:  theme,
		header: header,
		footer: footer,
		axes:   layout.Rows(layout.Inset(body, 4), 3, 4),
		lamp:   assets.Lamp(lampSize),
		cell:   readoutWidth(theme.Readout),
	}
}

// readoutWidth returns the width of a full position readout set in its
// widest characters, so proportional fonts get a fixed cell too.
func readoutWidth(font *gfx.Font) int {
	widest := 0
	for _, c := range "0123456789.-" {
		w, _ := font.Measure(string(c), 1)
		widest = max(widest, w)
	}
	n := len(fmt.Sprintf(positionFormat, maxPosition))
	return widest * n
}

func (s *DRO) Name() string { return "dro" }

func (s *DRO) Update(st state.State) { s.st = st }

// Region returns the display area holding the position and motion
// readouts.
func (s *DRO) Region() image.Rectangle {
	r := s.footer
	for _, a := range s.axes {
		r = r.Union(a)
	}
	return r
}

func (s *DRO) stateColor() gfx.Pixel {
	switch s.st.Machine {
	case state.ALARM, state.DOOR:
		return s.theme.Warn
	case state.RUN, state.JOG, state.HOME:
		return s.theme.Good
	}
	return s.theme.Label
}

func (s *DRO) Draw(ctx *gfx.Context) {
	t := s.theme
	d := gfx.NewDrawer(ctx)
	d.Once().Clear(t.Background)

	// Header: title and machine state.
	h := s.header
	d.Once().Rect(h.Min.X, h.Min.Y, h.Dx(), h.Dy(), t.Header)
	d.SetFont(t.Text, 1)
	pad := (h.Dy() - lineHeight(t.Text, 1)) / 2
	homing := t.Header
	if s.st.Machine == state.HOME {
		homing = t.Accent
	}
	d.Always().Icon(6, (h.Dy()-assets.Home.Height)/2, assets.Home, homing, 1)
	d.Once().Label(6+assets.Home.Width+4, pad, t.Label, "uCNC")
	word := fmt.Sprintf(machineFormat, s.st.Machine)
	w, _ := t.Text.Measure(word, 1)
	d.Always().Label(h.Dx()-6-w, pad, s.stateColor(), word)

	lamp := s.lamp
	lamp.Palette = []gfx.Pixel{t.Header, t.Border, s.stateColor()}
	lx, ly := d.At(h.Dx()-6-w-6-lampSize, (h.Dy()-lampSize)/2)
	d.Always().PaletteBitmap(lx, ly, lamp, 1)

	// Axis panels.
	pos := [3]float64{s.st.Position.X, s.st.Position.Y, s.st.Position.Z}
	for i, r := range s.axes {
		inner := r.Dy() - 2*panelBorder
		d.Once().Frame(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), panelBorder, t.Panel, t.Border)
		d.SetFont(t.Text, 2)
		d.Once().Label(8, (inner-lineHeight(t.Text, 2))/2, t.Accent, axisNames[i])

		value := fmt.Sprintf(positionFormat, clamp(pos[i], minPosition, maxPosition))
		vw, _ := t.Readout.Measure(value, 1)
		right := r.Dx() - 2*panelBorder - 8
		cx, vy := d.At(right-s.cell, (inner-lineHeight(t.Readout, 1))/2)
		vx, _ := d.At(right-vw, 0)
		// Blank the part of the cell left of a narrower value.
		d.Always().Rect(cx, vy, vx-cx, lineHeight(t.Readout, 1), t.Panel)
		d.Always().Text(vx, vy, t.Panel, t.Value, t.Readout, 1, value)
	}

	// Footer: feed and spindle.
	f := s.footer
	d.Once().Rect(f.Min.X, f.Min.Y, f.Dx(), f.Dy(), t.Panel)
	d.SetFont(t.Text, 1)
	pad = (f.Dy() - lineHeight(t.Text, 1)) / 2
	d.Always().Label(8, pad, t.Label, fmt.Sprintf(feedFormat, clamp(s.st.Feed, minFeed, maxFeed)))
	d.Always().Label(f.Dx()/2+8, pad, t.Label, fmt.Sprintf(spindleFormat, clamp(s.st.Spindle, minSpindle, maxSpindle)))
}

func clamp[T int | float64](v, lo, hi T) T {
	return max(lo, min(hi, v))
}
