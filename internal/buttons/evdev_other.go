//go:build !linux

package buttons

import (
	"context"
	"errors"
)

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Evdev is only available on Linux; elsewhere it never produces events.
type Evdev struct {
	Pattern string
	Keymap  map[uint16]Event
	Logger  Logger

	ch chan Event
}

func NewEvdev(logger Logger) *Evdev {
	return &Evdev{Keymap: DefaultKeymap, Logger: logger, ch: make(chan Event)}
}

func (e *Evdev) Start(ctx context.Context) error {
	return errors.New("buttons: evdev input requires linux")
}

func (e *Evdev) Stop() error          { close(e.ch); return nil }
func (e *Evdev) Events() <-chan Event { return e.ch }
