package tickfsm

import (
	"fmt"
	"log/slog"
)

// Machine is a fixed-capacity state machine instance. It is an inert value
// owned by the caller's enclosing context: declare it where the control
// loop lives and call Init before the first Step.
//
// A Machine performs no internal locking. Each instance must be ticked by
// exactly one caller context; sharing one instance between, say, an
// interrupt handler and a background task requires external mutual
// exclusion.
type Machine struct {
	table   [Capacity]slot
	current StateID

	logger       *slog.Logger
	onTransition func(from, to StateID)
}

// Init clears every slot to unregistered and sets the active state. It
// returns ErrStateOutOfRange if initial is not below Capacity; the active
// state then falls back to 0 and the machine remains usable.
//
// Init is a full reset: registrations, the logger, and the transition hook
// from any earlier Init are wiped, so Register must be called after the
// Init it belongs to.
func (m *Machine) Init(initial StateID, opts ...Option) error {
	m.table = [Capacity]slot{}
	m.logger = Logger
	m.onTransition = nil

	for _, opt := range opts {
		opt(m)
	}

	if initial >= Capacity {
		m.current = 0
		return fmt.Errorf("init state %d: %w", initial, ErrStateOutOfRange)
	}
	m.current = initial
	return nil
}

// Register binds a poll function and optional entry/exit callbacks to the
// slot at id, replacing any prior registration there. It returns
// ErrStateOutOfRange if id is not below Capacity and ErrNilPollFunc if poll
// is nil; on failure no slot is altered.
//
// States may be registered in any order, before or between steps. A slot
// that is never registered is simply never dispatched.
func (m *Machine) Register(id StateID, poll PollFunc, opts ...StateOption) error {
	if id >= Capacity {
		return fmt.Errorf("register state %d: %w", id, ErrStateOutOfRange)
	}
	if poll == nil {
		return fmt.Errorf("register state %d: %w", id, ErrNilPollFunc)
	}

	s := slot{poll: poll}
	for _, opt := range opts {
		opt(&s)
	}
	m.table[id] = s
	return nil
}

// Step executes one dispatch cycle. If the active slot is unregistered the
// step is a no-op. Otherwise the slot's poll function runs; when it returns
// a different identifier, the exiting state's exit callback fires, then the
// entering state's entry callback, then the active state is updated and the
// transition hook (if set) runs.
//
// An out-of-range identifier returned by a poll function is a caller
// contract violation; Step logs it and keeps the current state active.
func (m *Machine) Step() {
	active := &m.table[m.current]
	if active.poll == nil {
		return
	}

	next := active.poll()
	if next == m.current {
		return
	}
	if next >= Capacity {
		m.log().Warn("poll returned out-of-range state, staying", "state", m.current, "next", next)
		return
	}

	if active.onExit != nil {
		active.onExit()
	}
	if entering := &m.table[next]; entering.onEntry != nil {
		entering.onEntry()
	}

	from := m.current
	m.current = next
	m.log().Debug("state changed", "from", from, "to", next)

	if m.onTransition != nil {
		m.onTransition(from, next)
	}
}

// Current returns the active state identifier.
func (m *Machine) Current() StateID {
	return m.current
}

// Registered reports whether the slot at id holds a poll function.
func (m *Machine) Registered(id StateID) bool {
	return id < Capacity && m.table[id].poll != nil
}

// OnTransition sets a callback invoked after each completed transition.
// It may be called any time between steps.
func (m *Machine) OnTransition(fn func(from, to StateID)) {
	m.onTransition = fn
}

func (m *Machine) log() *slog.Logger {
	if m.logger != nil {
		return m.logger
	}
	return Logger
}
