// Package tickfsm implements a fixed-capacity, allocation-free state
// machine dispatcher for control loops. A Machine holds a fixed table of
// state slots; the caller registers a poll function (and optional entry and
// exit callbacks) per slot and ticks the machine with Step from its own
// loop. The dispatch path performs no allocation and no locking.
package tickfsm

import (
	"errors"
	"log/slog"
)

// StateID identifies a state slot. Valid identifiers are dense integers
// in [0, Capacity), chosen by the caller (typically an enumeration).
type StateID uint8

// Capacity is the fixed number of state slots per Machine. Callers needing
// more states must raise it and rebuild.
const Capacity = 10

// PollFunc is invoked on every tick while its state is active. It returns
// the identifier of the state to be active next; returning its own
// identifier keeps the state active.
type PollFunc func() StateID

// ActionFunc is an optional callback invoked exactly once on transition
// into or out of a state.
type ActionFunc func()

var (
	// ErrStateOutOfRange is returned when a state identifier is not
	// within [0, Capacity).
	ErrStateOutOfRange = errors.New("state identifier out of range")
	// ErrNilPollFunc is returned when a registration has no poll function.
	ErrNilPollFunc = errors.New("poll function is required")
)

// Logger is the default logger used when none is provided
var Logger = slog.Default()
