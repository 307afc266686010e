package tickfsm

import "log/slog"

// Option is a functional option for configuring a Machine at Init time
type Option func(*Machine)

// WithLogger sets the logger for the machine
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		m.logger = logger
	}
}

// WithTransitionHook sets a callback invoked after each completed
// transition, once the new state is active.
func WithTransitionHook(fn func(from, to StateID)) Option {
	return func(m *Machine) {
		m.onTransition = fn
	}
}
