package main

import (
	"context"
	"math"
	"time"

	"github.com/Paciente8159/uCNC-modules-sub000/internal/state"
)

// Demo program timing.
const (
	demoPeriod = 20 * time.Second // one lap of the circle
	demoIdle   = 4 * time.Second  // idle pause at the start of every lap
	demoRadius = 25.0
	demoFeed   = 1500.0
	demoRPM    = 12000
)

// demoAt returns the simulated machine at time t into the demo program: a
// pause, then a circular pass with the spindle on.
func demoAt(t time.Duration) (state.Machine, state.Position, float64, int) {
	lap := t % demoPeriod
	if lap < demoIdle {
		return state.IDLE, state.Position{X: demoRadius}, 0, 0
	}
	angle := 2 * math.Pi * float64(lap-demoIdle) / float64(demoPeriod-demoIdle)
	pos := state.Position{
		X: demoRadius * math.Cos(angle),
		Y: demoRadius * math.Sin(angle),
		Z: -1.5,
	}
	return state.RUN, pos, demoFeed, demoRPM
}

// runDemo drives store with the demo program until ctx ends. It leaves the
// store alone while an alarm is active.
func runDemo(ctx context.Context, store *state.Store, every time.Duration) {
	start := time.Now()
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		if store.Snapshot().Machine == state.ALARM {
			continue
		}
		m, pos, feed, rpm := demoAt(time.Since(start))
		store.SetMachine(m)
		store.UpdatePosition(pos)
		store.UpdateMotion(feed, rpm)
	}
}
