package screens

import (
	"fmt"
	"image"

	"github.com/Paciente8159/uCNC-modules-sub000/internal/assets"
	"github.com/Paciente8159/uCNC-modules-sub000/internal/gfx"
	"github.com/Paciente8159/uCNC-modules-sub000/internal/state"
)

const messageWidth = 40

// Alarm takes over the display while the controller is in alarm.
type Alarm struct {
	theme  Theme
	bounds image.Rectangle

	st state.State
}

func NewAlarm(width, height int, theme Theme) *Alarm {
	return &Alarm{theme: theme, bounds: image.Rect(0, 0, width, height)}
}

func (s *Alarm) Name() string { return "alarm" }

func (s *Alarm) Update(st state.State) { s.st = st }

func (s *Alarm) Draw(ctx *gfx.Context) {
	t := s.theme
	b := s.bounds
	d := gfx.NewDrawer(ctx)
	d.Once().Clear(t.Warn)

	const iconScale = 4
	iconX := b.Min.X + (b.Dx()-assets.Warning.Width*iconScale)/2
	d.Once().Icon(iconX, 24, assets.Warning, t.Label, iconScale)

	y := 24 + assets.Warning.Height*iconScale + 12
	d.Once().Text(centerX(b.Min.X, b.Dx(), t.Text, 3, "ALARM"), y, t.Warn, t.Label, t.Text, 3, "ALARM")
	y += lineHeight(t.Text, 3) + 8

	code := fmt.Sprintf("code %3d", clamp(s.st.Alarm.Code, -99, 999))
	d.Always().Text(centerX(b.Min.X, b.Dx(), t.Text, 1, code), y, t.Warn, t.Label, t.Text, 1, code)
	y += lineHeight(t.Text, 1) + 4

	msg := fmt.Sprintf("%-*.*s", messageWidth, messageWidth, s.st.Alarm.Message)
	d.Always().Text(centerX(b.Min.X, b.Dx(), t.Text, 1, msg), y, t.Warn, t.Label, t.Text, 1, msg)

	hint := "press reset to unlock"
	d.Once().Text(centerX(b.Min.X, b.Dx(), t.Small, 1, hint), b.Max.Y-lineHeight(t.Small, 1)-8, t.Warn, t.Label, t.Small, 1, hint)
}
