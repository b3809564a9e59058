package state

import (
	"fmt"
	"strings"
	"sync"
)

// Machine is the controller's run state as reported in status lines.
type Machine int

const (
	BOOTING Machine = iota
	IDLE
	RUN
	HOLD
	JOG
	HOME
	ALARM
	DOOR
	CHECK
)

var machineNames = [...]string{"Boot", "Idle", "Run", "Hold", "Jog", "Home", "Alarm", "Door", "Check"}

func (m Machine) String() string {
	if m < 0 || int(m) >= len(machineNames) {
		return fmt.Sprintf("Machine(%d)", int(m))
	}
	return machineNames[m]
}

// ParseMachine accepts the names String returns, ignoring case.
func ParseMachine(s string) (Machine, error) {
	for i, name := range machineNames {
		if strings.EqualFold(name, s) {
			return Machine(i), nil
		}
	}
	return 0, fmt.Errorf("state: unknown machine state %q", s)
}

// Position is a tool position in millimetres.
type Position struct {
	X, Y, Z float64
}

type AlarmInfo struct {
	Code    int
	Message string
}

type NetworkInfo struct {
	URL string
}

type State struct {
	Machine  Machine
	Position Position
	Feed     float64 // mm/min
	Spindle  int     // rpm
	Alarm    AlarmInfo
	Network  NetworkInfo
	Version  string
	// Seq increases with every change.
	Seq uint64
}

// Patch is a partial update; nil fields are left alone.
type Patch struct {
	Machine  *Machine `json:"-"`
	State    *string  `json:"state,omitempty"`
	X        *float64 `json:"x,omitempty"`
	Y        *float64 `json:"y,omitempty"`
	Z        *float64 `json:"z,omitempty"`
	Feed     *float64 `json:"feed,omitempty"`
	Spindle  *int     `json:"spindle,omitempty"`
	Alarm    *int     `json:"alarm,omitempty"`
	AlarmMsg *string  `json:"alarm_message,omitempty"`
}

type Store struct {
	mu    sync.RWMutex
	state State
}

func NewStore() *Store {
	return &Store{state: State{Machine: BOOTING}}
}

func (store *Store) Snapshot() State {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.state
}

func (store *Store) update(fn func(s *State)) {
	store.mu.Lock()
	fn(&store.state)
	store.state.Seq++
	store.mu.Unlock()
}

func (store *Store) SetMachine(m Machine) {
	store.update(func(s *State) { s.Machine = m })
}

func (store *Store) UpdatePosition(p Position) {
	store.update(func(s *State) { s.Position = p })
}

func (store *Store) UpdateMotion(feed float64, spindle int) {
	store.update(func(s *State) {
		s.Feed = feed
		s.Spindle = spindle
	})
}

func (store *Store) UpdateNetwork(network NetworkInfo) {
	store.update(func(s *State) { s.Network = network })
}

func (store *Store) SetVersion(v string) {
	store.update(func(s *State) { s.Version = v })
}

// RaiseAlarm records an alarm and puts the machine in ALARM.
func (store *Store) RaiseAlarm(code int, message string) {
	store.update(func(s *State) {
		s.Machine = ALARM
		s.Alarm = AlarmInfo{Code: code, Message: message}
	})
}

// ClearAlarm resets the alarm and returns the machine to IDLE.
func (store *Store) ClearAlarm() {
	store.update(func(s *State) {
		s.Alarm = AlarmInfo{}
		if s.Machine == ALARM {
			s.Machine = IDLE
		}
	})
}

// Apply validates and applies p atomically.
func (store *Store) Apply(p Patch) error {
	machine := p.Machine
	if p.State != nil {
		m, err := ParseMachine(*p.State)
		if err != nil {
			return err
		}
		machine = &m
	}
	if p.Spindle != nil && *p.Spindle < 0 {
		return fmt.Errorf("state: spindle must not be negative (got %d)", *p.Spindle)
	}
	if p.Feed != nil && *p.Feed < 0 {
		return fmt.Errorf("state: feed must not be negative (got %g)", *p.Feed)
	}
	store.update(func(s *State) {
		if machine != nil {
			s.Machine = *machine
		}
		if p.X != nil {
			s.Position.X = *p.X
		}
		if p.Y != nil {
			s.Position.Y = *p.Y
		}
		if p.Z != nil {
			s.Position.Z = *p.Z
		}
		if p.Feed != nil {
			s.Feed = *p.Feed
		}
		if p.Spindle != nil {
			s.Spindle = *p.Spindle
		}
		if p.Alarm != nil {
			s.Alarm.Code = *p.Alarm
			if *p.Alarm != 0 {
				s.Machine = ALARM
			}
		}
		if p.AlarmMsg != nil {
			s.Alarm.Message = *p.AlarmMsg
		}
	})
	return nil
}
