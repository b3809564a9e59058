//go:build linux

package buttons

import (
	"context"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sys/unix"
)

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Evdev reads key presses from Linux input devices matching Pattern
// (/dev/input/event* by default) and maps them through Keymap.
type Evdev struct {
	Pattern string
	Keymap  map[uint16]Event
	Logger  Logger

	ch     chan Event
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewEvdev(logger Logger) *Evdev {
	return &Evdev{
		Pattern: "/dev/input/event*",
		Keymap:  DefaultKeymap,
		Logger:  logger,
		ch:      make(chan Event, 8),
	}
}

func (e *Evdev) Events() <-chan Event { return e.ch }

// Start spawns one reader per device. It is best-effort: a missing device
// set is logged, not fatal.
func (e *Evdev) Start(ctx context.Context) error {
	paths, err := filepath.Glob(e.Pattern)
	if err != nil {
		return fmt.Errorf("buttons: bad device pattern %q: %w", e.Pattern, err)
	}
	if len(paths) == 0 {
		e.Logger.Infof("buttons", "no evdev devices match %s", e.Pattern)
		return nil
	}
	ctx, e.cancel = context.WithCancel(ctx)
	for _, p := range paths {
		p := p
		e.wg.Add(1)
		go func() {
			defer e.wg.Done()
			e.read(ctx, p)
		}()
	}
	e.Logger.Infof("buttons", "watching %d input devices", len(paths))
	return nil
}

func (e *Evdev) Stop() error {
	if e.cancel != nil {
		e.cancel()
	}
	e.wg.Wait()
	close(e.ch)
	return nil
}

func (e *Evdev) read(ctx context.Context, path string) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return
	}
	f := os.NewFile(uintptr(fd), path)
	defer func() {
		_ = f.Close()
	}()

	tvSize := binary.Size(unix.Timeval{})
	buf := make([]byte, 4096)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		pollFds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		if _, err := unix.Poll(pollFds, 250); err != nil {
			if err == unix.EINTR {
				continue
			}
			return
		}
		if pollFds[0].Revents&unix.POLLIN == 0 {
			continue
		}
		n, err := unix.Read(fd, buf)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			e.Logger.Errorf("buttons", "%s: %v", path, err)
			return
		}
		for _, ev := range decodeKeys(buf[:n], tvSize, e.Keymap) {
			select {
			case e.ch <- ev:
			default:
				e.Logger.Infof("buttons", "dropped %s press", ev)
			}
		}
	}
}
