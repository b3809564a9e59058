package screens

import (
	"fmt"
	"image"

	"github.com/Paciente8159/uCNC-modules-sub000/internal/assets"
	"github.com/Paciente8159/uCNC-modules-sub000/internal/gfx"
	"github.com/Paciente8159/uCNC-modules-sub000/internal/gfx/layout"
	"github.com/Paciente8159/uCNC-modules-sub000/internal/state"
)

const versionWidth = 24

// Boot is the splash screen: logo, a QR code of the controller URL and the
// firmware version.
type Boot struct {
	theme  Theme
	logger Logger
	full   image.Rectangle
	logo   image.Rectangle
	mark   gfx.Bitmap
	code   image.Rectangle
	footer image.Rectangle

	st  state.State
	url string
	qr  gfx.Bitmap
}

func NewBoot(width, height int, theme Theme, logger Logger) *Boot {
	full := image.Rect(0, 0, width, height)
	top, rest := layout.SplitTop(layout.Inset(full, 8), height/4)
	area, footer := layout.SplitBottom(rest, 32)
	mark, err := assets.LogoFor(top.Dx(), top.Dy())
	if err != nil {
		logger.Errorf("screens", "logo: %v, using built-in wordmark", err)
		mark = assets.Logo
	}
	return &Boot{
		theme:  theme,
		logger: logger,
		full:   full,
		logo:   top,
		mark:   mark,
		code:   layout.FitSquare(area),
		footer: footer,
	}
}

func (s *Boot) Name() string { return "boot" }

// Update takes the snapshot and re-encodes the QR code when the URL changed.
func (s *Boot) Update(st state.State) {
	s.st = st
	if st.Network.URL == s.url {
		return
	}
	s.url = st.Network.URL
	s.qr = gfx.Bitmap{}
	if s.url == "" {
		return
	}
	qr, err := assets.QRCode(s.url, true)
	if err != nil {
		s.logger.Errorf("screens", "qr code for %q: %v", s.url, err)
		return
	}
	s.qr = qr
}

func (s *Boot) Draw(ctx *gfx.Context) {
	t := s.theme
	d := gfx.NewDrawer(ctx)
	d.Once().Clear(t.Background)

	scale := layout.Scale(s.logo, s.mark.Width, s.mark.Height)
	logo := layout.Center(s.logo, s.mark.Width*scale, s.mark.Height*scale)
	d.Once().Bitmap(logo.Min.X, logo.Min.Y, s.mark, t.Background, t.Accent, scale)

	// The code changes size with the URL, so its whole area is repainted.
	c := s.code
	d.Always().Rect(c.Min.X, c.Min.Y, c.Dx(), c.Dy(), t.Background)
	if s.qr.Width > 0 {
		qs := layout.Scale(c, s.qr.Width, s.qr.Height)
		q := layout.Center(c, s.qr.Width*qs, s.qr.Height*qs)
		d.Always().Bitmap(q.Min.X, q.Min.Y, s.qr, gfx.White, gfx.Black, qs)
	}

	version := fmt.Sprintf("%-*.*s", versionWidth, versionWidth, "version "+s.st.Version)
	f := s.footer
	d.Always().Text(centerX(s.full.Min.X, s.full.Dx(), t.Text, 1, version), f.Min.Y+(f.Dy()-lineHeight(t.Text, 1))/2,
		t.Background, t.Label, t.Text, 1, version)
}
