//go:build cgo

package main

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Paciente8159/uCNC-modules-sub000/internal/buttons"
	"github.com/Paciente8159/uCNC-modules-sub000/internal/transport"
)

var windowKeys = map[ebiten.Key]buttons.Event{
	ebiten.KeyN:      buttons.Next,
	ebiten.KeyF1:     buttons.Next,
	ebiten.KeyA:      buttons.Alarm,
	ebiten.KeyF2:     buttons.Alarm,
	ebiten.KeyR:      buttons.Reset,
	ebiten.KeyF3:     buttons.Reset,
	ebiten.KeyEscape: buttons.Exit,
	ebiten.KeyF4:     buttons.Exit,
}

// runWindow shows the canvas in a desktop window and turns key presses
// into button events. It blocks until the window closes or ctx ends.
func runWindow(ctx context.Context, canvas *transport.Canvas, keys *buttons.Chan, zoom int) error {
	if zoom < 1 {
		zoom = 1
	}
	w, h := canvas.Size()
	g := &window{ctx: ctx, canvas: canvas, keys: keys, pix: make([]byte, w*h*4)}
	ebiten.SetWindowTitle("uCNC display simulator")
	ebiten.SetWindowSize(w*zoom, h*zoom)
	ebiten.SetTPS(30)
	err := ebiten.RunGame(g)
	if err == ebiten.Termination {
		return nil
	}
	return err
}

type window struct {
	ctx     context.Context
	canvas  *transport.Canvas
	keys    *buttons.Chan
	img     *ebiten.Image
	pix     []byte
	version uint64
}

func (g *window) Update() error {
	select {
	case <-g.ctx.Done():
		return ebiten.Termination
	default:
	}
	for key, ev := range windowKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.keys.Push(ev)
		}
	}
	return nil
}

func (g *window) Draw(screen *ebiten.Image) {
	w, h := g.canvas.Size()
	if g.img == nil {
		g.img = ebiten.NewImage(w, h)
	}
	// Only re-upload when the app blitted something.
	if v := g.canvas.Version(); v != g.version {
		g.version = v
		g.canvas.CopyPixels(g.pix)
		g.img.WritePixels(g.pix)
	}
	screen.DrawImage(g.img, nil)
}

func (g *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.canvas.Size()
}
