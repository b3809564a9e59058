package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Paciente8159/uCNC-modules-sub000/internal/app"
	"github.com/Paciente8159/uCNC-modules-sub000/internal/buttons"
	"github.com/Paciente8159/uCNC-modules-sub000/internal/state"
	"github.com/Paciente8159/uCNC-modules-sub000/internal/transport"
	"github.com/Paciente8159/uCNC-modules-sub000/internal/web"
)

func main() {
	cfg, err := app.DefaultConfigFromEnv()
	if err != nil {
		fmt.Println("config error:", err)
		os.Exit(2)
	}
	defaults, err := web.DefaultServerConfigFromEnv(":8080")
	if err != nil {
		fmt.Println("server config error:", err)
		os.Exit(2)
	}

	listenAddr := flag.String("listen", defaults.ListenAddr, "http listen address; also configurable via "+web.EnvListenAddr)
	devMode := flag.Bool("dev", defaults.DevMode, "enable dev mode; also configurable via "+web.EnvDevMode)
	staticDir := flag.String("static-dir", "", "serve static UI from this directory (optional); when empty, embedded web UI assets are served")
	headless := flag.Bool("headless", false, "run without a window; the display is only visible through the web UI")
	zoom := flag.Int("zoom", 2, "window zoom factor")
	demo := flag.Bool("demo", true, "move the simulated machine around")
	snapshot := flag.String("snapshot", "", "write the last frame as PNG to this file on exit")
	debug := flag.Bool("debug", false, "log to stderr")
	flag.Parse()

	var logger app.Logger = app.NoopLogger{}
	if *debug {
		logger = app.NewFileLogger(os.Stderr)
	}

	processCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	canvas := transport.NewCanvas(cfg.Width, cfg.Height)
	store := state.NewStore()
	store.UpdateNetwork(state.NetworkInfo{URL: web.AdvertisedURL(*listenAddr)})

	webButtons := buttons.NewChan(8)
	keys := buttons.NewChan(8)
	a, err := app.New(cfg, canvas, store, buttons.NewMulti(webButtons, keys), logger)
	if err != nil {
		fmt.Println("app error:", err)
		os.Exit(1)
	}

	server := web.NewHTTPServer(web.ServerConfig{ListenAddr: *listenAddr, DevMode: *devMode},
		web.NewDefaultMux(*staticDir, web.APIV1Config{Deps: web.APIV1Deps{
			Status:  store,
			Buttons: webButtons,
			Frames:  canvas,
			Stats:   a.Driver,
		}}))
	server.Logger = logger
	a.Web = server

	if *demo {
		go runDemo(processCtx, store, 100*time.Millisecond)
	}

	ctx, cancel := context.WithCancel(processCtx)
	done := make(chan error, 1)
	go func() {
		done <- a.Start(ctx)
		cancel()
	}()

	fmt.Println("uCNC display simulator", cfg.Width, "x", cfg.Height)
	fmt.Println("Web UI:", store.Snapshot().Network.URL)
	fmt.Println("Keys: N/F1 next screen, A/F2 alarm, R/F3 reset, Esc/F4 exit")

	if *headless {
		<-ctx.Done()
	} else if err := runWindow(ctx, canvas, keys, *zoom); err != nil {
		fmt.Println("window error:", err)
	}
	cancel()
	err = <-done

	if *snapshot != "" {
		if werr := writeSnapshot(canvas, *snapshot); werr != nil {
			fmt.Println("snapshot error:", werr)
		}
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Println("app error:", err)
		os.Exit(1)
	}
}

func writeSnapshot(canvas *transport.Canvas, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := canvas.WritePNG(f, 1); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
