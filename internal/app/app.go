package app

import (
	"context"
	"image"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/Paciente8159/uCNC-modules-sub000/internal/app/screens"
	"github.com/Paciente8159/uCNC-modules-sub000/internal/buttons"
	"github.com/Paciente8159/uCNC-modules-sub000/internal/fonts"
	"github.com/Paciente8159/uCNC-modules-sub000/internal/gfx"
	"github.com/Paciente8159/uCNC-modules-sub000/internal/state"
	"github.com/Paciente8159/uCNC-modules-sub000/internal/web"
)

// Alarm raised by the alarm button.
const (
	TestAlarmCode    = 1
	TestAlarmMessage = "alarm button pressed"
)

// Partial passes between full repaints while only readouts change.
const fullRefreshEvery = 50

type regioner interface {
	Region() image.Rectangle
}

type App struct {
	Store   *state.Store
	Driver  *gfx.Driver
	Web     web.Server
	Buttons buttons.Buttons
	Logger  Logger
	Config  Config

	cycle   []screens.Screen
	alarm   *screens.Alarm
	current int
	shown   screens.Screen
	last    state.State
	partial int

	events   <-chan buttons.Event
	exitOnce atomic.Bool
	exitCh   chan error
}

// New builds the driver over blit and the screen set. The driver's
// scheduler tick is the app's input poll, so button presses are serviced
// while long passes run.
func New(cfg Config, blit gfx.Blitter, store *state.Store, btns buttons.Buttons, logger Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = NoopLogger{}
	}
	if btns == nil {
		btns = buttons.NewNoopButtons()
	}
	app := &App{
		Store:   store,
		Web:     &web.NoopServer{},
		Buttons: btns,
		Logger:  logger,
		Config:  cfg,
		exitCh:  make(chan error, 1),
	}
	driver, err := gfx.NewDriver(blit, cfg.options(logger, app.Poll))
	if err != nil {
		return nil, err
	}
	app.Driver = driver

	theme := loadTheme(cfg, logger)
	app.cycle = []screens.Screen{
		screens.NewBoot(cfg.Width, cfg.Height, theme, logger),
		screens.NewDRO(cfg.Width, cfg.Height, theme),
	}
	app.alarm = screens.NewAlarm(cfg.Width, cfg.Height, theme)
	app.events = btns.Events()

	if store.Snapshot().Version == "" {
		store.SetVersion(cfg.Version)
	}
	return app, nil
}

// loadTheme builds the default theme and swaps in the configured readout
// font. A font that cannot be loaded keeps the default.
func loadTheme(cfg Config, logger Logger) screens.Theme {
	theme := screens.DefaultTheme(logger)
	if cfg.ReadoutFont == "" {
		return theme
	}
	data, err := os.ReadFile(cfg.ReadoutFont)
	if err != nil {
		logger.Errorf("app", "readout font: %v", err)
		return theme
	}
	f, err := fonts.FromOpenType(filepath.Base(cfg.ReadoutFont), data, ReadoutSize, fonts.FirstASCII, fonts.LastASCII)
	if err != nil {
		logger.Errorf("app", "readout font: %v", err)
		return theme
	}
	logger.Infof("app", "readout font %s", f.Name)
	theme.Readout = f
	return theme
}

// Exit requests the app to stop running.
func (app *App) Exit(err error) {
	if !app.exitOnce.CompareAndSwap(false, true) {
		return
	}
	select {
	case app.exitCh <- err:
	default:
	}
}

// Start runs the refresh loop until ctx ends or Exit is called.
func (app *App) Start(ctx context.Context) error {
	if err := app.Buttons.Start(ctx); err != nil {
		app.Logger.Errorf("app", "buttons start error: %v", err)
	}
	defer func() { _ = app.Buttons.Stop() }()

	if err := app.Web.Start(ctx); err != nil {
		app.Logger.Errorf("app", "web start error: %v", err)
		return err
	}
	defer func() { _ = app.Web.Stop() }()

	interval := time.Second / time.Duration(app.Config.FPS)
	app.Logger.Infof("app", "refresh every %v, %dx%d display", interval, app.Config.Width, app.Config.Height)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	app.Frame()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-app.exitCh:
			stats := app.Driver.Stats()
			app.Logger.Infof("app", "exit after %d renders (%d dropped)", stats.Renders, stats.Dropped)
			return err
		case <-ticker.C:
			app.Frame()
		}
	}
}

// Frame services input and brings the display up to date.
func (app *App) Frame() {
	app.Poll()
	app.refresh()
}

// Current returns the screen the next frame shows.
func (app *App) Current() screens.Screen {
	if app.Store.Snapshot().Machine == state.ALARM {
		return app.alarm
	}
	return app.cycle[app.current]
}

// Poll drains pending button events without blocking. It runs as the
// driver's scheduler tick, so it must never render.
func (app *App) Poll() {
	for {
		select {
		case ev, ok := <-app.events:
			if !ok {
				app.events = nil
				return
			}
			app.handle(ev)
		default:
			return
		}
	}
}

func (app *App) handle(ev buttons.Event) {
	app.Logger.Infof("buttons", "%s pressed", ev)
	switch ev {
	case buttons.Next:
		app.current = (app.current + 1) % len(app.cycle)
	case buttons.Alarm:
		app.Store.RaiseAlarm(TestAlarmCode, TestAlarmMessage)
	case buttons.Reset:
		app.Store.ClearAlarm()
	case buttons.Exit:
		app.Exit(nil)
	}
}

// refresh renders the current screen: a full pass when the screen changed
// or every fullRefreshEvery updates, a partial pass over the readout region
// otherwise, nothing when the state did not change.
func (app *App) refresh() {
	snap := app.Store.Snapshot()
	target := app.Current()
	if target == app.shown && snap.Seq == app.last.Seq {
		return
	}
	target.Update(snap)

	r, ok := target.(regioner)
	if ok && target == app.shown && onlyMotion(app.last, snap) && app.partial < fullRefreshEvery {
		region := r.Region()
		if app.Driver.RenderPartial(target, region.Min.X, region.Min.Y, region.Dx(), region.Dy()) {
			app.partial++
			app.last = snap
		}
		return
	}
	if !app.Driver.RenderFull(target) {
		return
	}
	if target != app.shown {
		app.Logger.Infof("app", "showing %s", target.Name())
	}
	app.shown = target
	app.last = snap
	app.partial = 0
}

// onlyMotion reports whether b differs from a in position, feed or
// spindle only, the values a readout region covers.
func onlyMotion(a, b state.State) bool {
	return a.Machine == b.Machine && a.Alarm == b.Alarm && a.Network == b.Network && a.Version == b.Version
}
