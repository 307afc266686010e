package tickfsm

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Layout declares a machine's state table by name, so slot numbering can
// live in configuration while the handlers stay in code:
//
//	id: blinker
//	initial: idle
//	states:
//	  idle: 0
//	  blink: 1
//	  fault: 2
type Layout struct {
	ID      string             `json:"id" yaml:"id"`
	Initial string             `json:"initial" yaml:"initial"`
	States  map[string]StateID `json:"states" yaml:"states"`
}

// Handlers binds the callables for one named state in a layout. Poll is
// mandatory; OnEntry and OnExit may be nil.
type Handlers struct {
	Poll    PollFunc
	OnEntry ActionFunc
	OnExit  ActionFunc
}

// ParseLayout decodes and validates a YAML layout.
func ParseLayout(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// LoadLayout reads and parses a layout file.
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return ParseLayout(data)
}

// Validate checks the layout:
// - Non-empty ID and Initial
// - Initial named in States
// - Every identifier below Capacity
// - No two names sharing an identifier
func (l *Layout) Validate() error {
	if l.ID == "" {
		return errors.New("layout ID is required")
	}
	if l.Initial == "" {
		return errors.New("initial state name is required")
	}
	if len(l.States) == 0 {
		return errors.New("states map is required and cannot be empty")
	}
	if _, ok := l.States[l.Initial]; !ok {
		return fmt.Errorf("initial state %q not found in states", l.Initial)
	}

	seen := make(map[StateID]string, len(l.States))
	for name, id := range l.States {
		if id >= Capacity {
			return fmt.Errorf("state %q has id %d: %w", name, id, ErrStateOutOfRange)
		}
		if other, dup := seen[id]; dup {
			return fmt.Errorf("states %q and %q share id %d", other, name, id)
		}
		seen[id] = name
	}

	return nil
}

// StateID resolves a state name to its slot identifier.
func (l *Layout) StateID(name string) (StateID, bool) {
	id, ok := l.States[name]
	return id, ok
}

// Build initializes a Machine from the layout, binding handlers by state
// name. Every named state must have a handler set with a poll function.
func (l *Layout) Build(handlers map[string]Handlers, opts ...Option) (*Machine, error) {
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("invalid layout: %w", err)
	}

	m := &Machine{}
	if err := m.Init(l.States[l.Initial], opts...); err != nil {
		return nil, err
	}

	for name, id := range l.States {
		h, ok := handlers[name]
		if !ok {
			return nil, fmt.Errorf("state %q has no handlers", name)
		}
		stateOpts := make([]StateOption, 0, 2)
		if h.OnEntry != nil {
			stateOpts = append(stateOpts, WithOnEntry(h.OnEntry))
		}
		if h.OnExit != nil {
			stateOpts = append(stateOpts, WithOnExit(h.OnExit))
		}
		if err := m.Register(id, h.Poll, stateOpts...); err != nil {
			return nil, fmt.Errorf("state %q: %w", name, err)
		}
	}

	return m, nil
}
