package tickfsm

import (
	"fmt"
)

// Definition accumulates a state table before building a Machine
type Definition struct {
	states     []definedState
	initial    StateID
	initialSet bool
}

type definedState struct {
	id   StateID
	poll PollFunc
	opts []StateOption
}

// NewDefinition creates a new state table builder
func NewDefinition() *Definition {
	return &Definition{
		states: make([]definedState, 0),
	}
}

// State adds a state registration to the definition
func (d *Definition) State(id StateID, poll PollFunc, opts ...StateOption) *Definition {
	d.states = append(d.states, definedState{
		id:   id,
		poll: poll,
		opts: opts,
	})
	return d
}

// Initial sets the initial state
func (d *Definition) Initial(id StateID) *Definition {
	d.initial = id
	d.initialSet = true
	return d
}

// Validate checks the definition for errors
func (d *Definition) Validate() error {
	if !d.initialSet {
		return fmt.Errorf("no initial state defined")
	}
	if d.initial >= Capacity {
		return fmt.Errorf("initial state %d: %w", d.initial, ErrStateOutOfRange)
	}

	seen := make(map[StateID]bool, len(d.states))
	for _, s := range d.states {
		if s.id >= Capacity {
			return fmt.Errorf("state %d: %w", s.id, ErrStateOutOfRange)
		}
		if s.poll == nil {
			return fmt.Errorf("state %d: %w", s.id, ErrNilPollFunc)
		}
		if seen[s.id] {
			return fmt.Errorf("state %d defined more than once", s.id)
		}
		seen[s.id] = true
	}

	return nil
}

// Build creates a Machine from the definition
func (d *Definition) Build(opts ...Option) (*Machine, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("invalid definition: %w", err)
	}

	m := &Machine{}
	if err := m.Init(d.initial, opts...); err != nil {
		return nil, err
	}
	for _, s := range d.states {
		if err := m.Register(s.id, s.poll, s.opts...); err != nil {
			return nil, err
		}
	}

	return m, nil
}
