package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Paciente8159/uCNC-modules-sub000/internal/app"
	"github.com/Paciente8159/uCNC-modules-sub000/internal/buttons"
	"github.com/Paciente8159/uCNC-modules-sub000/internal/state"
	"github.com/Paciente8159/uCNC-modules-sub000/internal/system"
	"github.com/Paciente8159/uCNC-modules-sub000/internal/transport"
	"github.com/Paciente8159/uCNC-modules-sub000/internal/web"
)

const (
	envFramebuffer = "UCNC_GFX_FBDEV"
	envStdioLog    = "UCNC_GFX_STDIO_LOG"
)

func main() {
	if err := run(); err != nil {
		fmt.Println("ucnc-gfx:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := app.DefaultConfigFromEnv()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	serverDefaults, err := web.DefaultServerConfigFromEnv(":80")
	if err != nil {
		return fmt.Errorf("server config: %w", err)
	}

	fbdev := os.Getenv(envFramebuffer)
	if fbdev == "" {
		fbdev = "/dev/fb0"
	}

	// Flags
	debug := flag.Bool("debug", false, "enable debug logging to ./ucnc-gfx-debug.log")
	device := flag.String("fb", fbdev, "framebuffer device; also configurable via "+envFramebuffer)
	listenAddr := flag.String("listen", serverDefaults.ListenAddr, "http listen address; also configurable via "+web.EnvListenAddr)
	devMode := flag.Bool("dev", serverDefaults.DevMode, "enable dev mode (permissive CORS); also configurable via "+web.EnvDevMode)
	staticDir := flag.String("static-dir", "", "serve static UI from this directory (optional); when empty, embedded web UI assets are served")
	stdioLog := flag.String("stdio-log", os.Getenv(envStdioLog), "redirect stdout+stderr (including panics) to this file; also configurable via "+envStdioLog)
	flag.Parse()

	// Best-effort: the console is left in graphics mode while running, so
	// crashes are only diagnosable from a file.
	if *stdioLog != "" {
		if err := redirectStdIO(*stdioLog); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	var logger app.Logger = app.NoopLogger{}
	if *debug {
		f, err := os.OpenFile("./ucnc-gfx-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			fmt.Println("debug log open error:", err)
		} else {
			defer f.Close()
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		}
	}

	display, err := transport.OpenFramebuffer(*device, cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	defer display.Close()

	console := system.NewConsole(logger)
	console.Acquire()
	defer console.Release()

	store := state.NewStore()

	webButtons := buttons.NewChan(8)
	btns := buttons.NewMulti(webButtons, buttons.NewEvdev(logger))

	a, err := app.New(cfg, display, store, btns, logger)
	if err != nil {
		return err
	}

	// An empty listen address keeps the app's no-op server.
	if *listenAddr != "" {
		server := web.NewHTTPServer(web.ServerConfig{ListenAddr: *listenAddr, DevMode: *devMode},
			web.NewDefaultMux(*staticDir, web.APIV1Config{Deps: web.APIV1Deps{
				Status:  store,
				Buttons: webButtons,
				Frames:  display.Canvas(),
				Stats:   a.Driver,
			}}))
		server.Logger = logger
		a.Web = server
		store.UpdateNetwork(state.NetworkInfo{URL: web.AdvertisedURL(*listenAddr)})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Infof("main", "display %dx%d on %s, web UI at %s", cfg.Width, cfg.Height, *device, store.Snapshot().Network.URL)
	if err := a.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
