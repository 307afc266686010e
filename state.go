package tickfsm

// slot holds the bindings of one registered state. A slot with no poll
// function is unregistered.
type slot struct {
	poll    PollFunc
	onEntry ActionFunc
	onExit  ActionFunc
}

// StateOption is a functional option for configuring a state registration
type StateOption func(*slot)

// WithOnEntry sets the callback invoked once when the state becomes active
// from a different state.
func WithOnEntry(fn ActionFunc) StateOption {
	return func(s *slot) {
		s.onEntry = fn
	}
}

// WithOnExit sets the callback invoked once when the state stops being
// active in favor of a different state.
func WithOnExit(fn ActionFunc) StateOption {
	return func(s *slot) {
		s.onExit = fn
	}
}
