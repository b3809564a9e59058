package web

import (
	"errors"
	"io"

	"github.com/Paciente8159/uCNC-modules-sub000/internal/buttons"
	"github.com/Paciente8159/uCNC-modules-sub000/internal/gfx"
	"github.com/Paciente8159/uCNC-modules-sub000/internal/state"
)

// StatusStore abstracts the machine state used by the API.
//
// The concrete implementation is *state.Store.
type StatusStore interface {
	Snapshot() state.State
	Apply(p state.Patch) error
}

// ButtonSink receives presses from the web UI. *buttons.Chan implements it.
type ButtonSink interface {
	Push(ev buttons.Event) bool
}

// FrameSource renders the current display contents as PNG.
// *transport.Canvas implements it.
type FrameSource interface {
	WritePNG(w io.Writer, scale int) error
}

// StatsSource reports renderer activity. *gfx.Driver implements it.
type StatsSource interface {
	Stats() gfx.Stats
}

type APIV1Deps struct {
	Status  StatusStore
	Buttons ButtonSink
	Frames  FrameSource
	Stats   StatsSource
}

var errNotConfigured = errors.New("not configured")

func (d APIV1Deps) withDefaults() APIV1Deps {
	out := d
	if out.Status == nil {
		out.Status = state.NewStore()
	}
	if out.Buttons == nil {
		out.Buttons = NoopButtonSink{}
	}
	if out.Frames == nil {
		out.Frames = NoopFrameSource{Err: errNotConfigured}
	}
	return out
}

// NoopButtonSink refuses every press.
type NoopButtonSink struct{}

func (NoopButtonSink) Push(buttons.Event) bool { return false }

type NoopFrameSource struct{ Err error }

func (s NoopFrameSource) WritePNG(io.Writer, int) error {
	if s.Err != nil {
		return s.Err
	}
	return errNotConfigured
}
