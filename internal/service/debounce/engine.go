package debounce

import (
	"fmt"
	"time"

	"github.com/oshokin/mouse-sentry/internal/domain/activity"
)

// Clock supplies the current time. Injected so tests can drive the engine
// with a synthetic clock.
type Clock func() time.Time

// Sink receives exactly one notification per activity change.
type Sink interface {
	Notify(state activity.State) error
}

// pollDivisor derives the wake-up period from the movement gap. The period
// must stay below the gap, otherwise the Inactive transition could be
// delayed by a full extra period beyond the configured gap.
const pollDivisor = 4

// Engine is the debounce state machine. It must be driven from a single
// goroutine; it performs no internal synchronization.
type Engine struct {
	sink Sink
	now  Clock
	gap  time.Duration

	// lastMove is the arrival time of the most recent motion pulse.
	lastMove time.Time
	// lastActive is the classification reported by the previous stimulus.
	lastActive bool
}

// New creates an engine that reports transitions to sink. The engine starts
// in the Inactive state. A nil clock defaults to time.Now.
func New(sink Sink, clock Clock, gap time.Duration) *Engine {
	if clock == nil {
		clock = time.Now
	}

	return &Engine{
		sink: sink,
		now:  clock,
		gap:  gap,
	}
}

// PollInterval returns the maximum wait before the engine must be
// re-evaluated even when no motion arrives.
func PollInterval(gap time.Duration) time.Duration {
	return gap / pollDivisor
}

// Handle processes a single stimulus and invokes the sink when, and only
// when, the classification changes.
//
// The engine flips its internal state before notifying: a transition is
// considered to have happened even if reporting it failed. Every sink
// failure is fatal to the whole pipeline, so no consumer can observe a
// divergent engine afterward.
func (e *Engine) Handle(ev activity.Event) error {
	isActive := false

	switch ev {
	case activity.EventMotion:
		isActive = true
		e.lastMove = e.now()
	case activity.EventTick:
		if !e.lastActive {
			// Already inactive and no motion arrived; nothing can change.
			return nil
		}

		if e.now().Sub(e.lastMove) < e.gap {
			// Premature wake-up, check again on the next tick.
			return nil
		}
	}

	if isActive == e.lastActive {
		return nil
	}

	e.lastActive = isActive

	state := activity.Inactive
	if isActive {
		state = activity.Active
	}

	if err := e.sink.Notify(state); err != nil {
		return fmt.Errorf("notify %s: %w", state, err)
	}

	return nil
}
