package tickfsm

import (
	"context"
	"sync/atomic"
	"time"
)

// DefaultTickInterval is used when a Runner is created with interval zero.
const DefaultTickInterval = 10 * time.Millisecond

// Runner drives a Machine from a fixed-interval ticker. It is optional
// glue for hosted environments; superloop-style callers keep invoking
// Step from their own loop instead.
type Runner struct {
	machine  *Machine
	interval time.Duration
	ticks    atomic.Uint64
}

// NewRunner creates a runner that steps m every interval. A non-positive
// interval falls back to DefaultTickInterval.
func NewRunner(m *Machine, interval time.Duration) *Runner {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Runner{machine: m, interval: interval}
}

// Run steps the machine on every tick until ctx is done, then returns
// ctx.Err(). Each step runs to completion on the calling goroutine.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			r.machine.Step()
			r.ticks.Add(1)
		}
	}
}

// Ticks returns the number of completed ticks. Safe to call while Run is
// executing on another goroutine.
func (r *Runner) Ticks() uint64 {
	return r.ticks.Load()
}
