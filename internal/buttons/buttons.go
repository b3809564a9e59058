package buttons

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

type Event string

const (
	Next  Event = "next"  // cycle to the next screen
	Alarm Event = "alarm" // raise a test alarm
	Reset Event = "reset" // clear the alarm
	Exit  Event = "exit"
)

var events = []Event{Next, Alarm, Reset, Exit}

// ParseEvent maps a button name to its event.
func ParseEvent(name string) (Event, error) {
	for _, ev := range events {
		if string(ev) == name {
			return ev, nil
		}
	}
	return "", fmt.Errorf("buttons: unknown button %q", name)
}

type Buttons interface {
	Start(ctx context.Context) error
	Stop() error
	Events() <-chan Event
}

type NoopButtons struct{ ch chan Event }

func NewNoopButtons() *NoopButtons { return &NoopButtons{ch: make(chan Event)} }

func (n *NoopButtons) Start(ctx context.Context) error { return nil }
func (n *NoopButtons) Stop() error                     { close(n.ch); return nil }
func (n *NoopButtons) Events() <-chan Event            { return n.ch }

// Chan is a button source fed by Push, used by the web API and the
// simulator window. Presses arriving while the queue is full are dropped.
type Chan struct {
	mu     sync.Mutex
	ch     chan Event
	closed bool
}

func NewChan(queue int) *Chan {
	if queue < 1 {
		queue = 1
	}
	return &Chan{ch: make(chan Event, queue)}
}

func (c *Chan) Start(ctx context.Context) error { return nil }

func (c *Chan) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.ch)
	}
	return nil
}

func (c *Chan) Events() <-chan Event { return c.ch }

// Push queues ev and reports whether it was accepted.
func (c *Chan) Push(ev Event) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.ch <- ev:
		return true
	default:
		return false
	}
}

// Multi combines several sources into one. Its channel closes once every
// source has closed.
type Multi struct {
	sources []Buttons
	out     chan Event
}

func NewMulti(sources ...Buttons) *Multi {
	m := &Multi{sources: sources, out: make(chan Event, len(sources))}
	var wg sync.WaitGroup
	for _, src := range sources {
		wg.Add(1)
		go func(ch <-chan Event) {
			defer wg.Done()
			for ev := range ch {
				m.out <- ev
			}
		}(src.Events())
	}
	go func() {
		wg.Wait()
		close(m.out)
	}()
	return m
}

func (m *Multi) Start(ctx context.Context) error {
	var errs []error
	for _, src := range m.sources {
		if err := src.Start(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *Multi) Stop() error {
	var errs []error
	for _, src := range m.sources {
		if err := src.Stop(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *Multi) Events() <-chan Event { return m.out }
