package dispatch

import (
	"github.com/oshokin/mouse-sentry/internal/domain/activity"
)

// Sink consumes debounced activity transitions. Implementations must not
// block on slow downstream consumers.
type Sink interface {
	Notify(state activity.State) error
}

// Dispatcher fans a transition out to its sinks in registration order and
// stops at the first failure. Sinks are independent: a sink only sees a
// transition if every sink before it accepted it, which keeps the fatal
// error deterministic.
type Dispatcher struct {
	sinks []Sink
}

// NewDispatcher creates a dispatcher over the provided sinks.
func NewDispatcher(sinks ...Sink) *Dispatcher {
	return &Dispatcher{sinks: sinks}
}

// Notify forwards the transition to every sink, returning the first error.
func (d *Dispatcher) Notify(state activity.State) error {
	for _, sink := range d.sinks {
		if err := sink.Notify(state); err != nil {
			return err
		}
	}

	return nil
}
