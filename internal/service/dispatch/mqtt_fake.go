package dispatch

import (
	"sync"
	"time"

	"github.com/oshokin/mouse-sentry/internal/domain/activity"
)

// FakePublisher records published messages for tests.
type FakePublisher struct {
	mu sync.Mutex

	// Transitions holds every published activity transition in order.
	Transitions []activity.State
	// SystemEvents holds every published lifecycle event in order.
	SystemEvents []SystemEvent
	// Err, when set, is returned from every publish call.
	Err error
	// Closed reports whether Close was called.
	Closed bool
}

// Publish records the transition.
func (f *FakePublisher) Publish(state activity.State, _ time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Transitions = append(f.Transitions, state)

	return f.Err
}

// PublishSystem records the lifecycle event.
func (f *FakePublisher) PublishSystem(event SystemEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.SystemEvents = append(f.SystemEvents, event)

	return f.Err
}

// Close marks the publisher closed.
func (f *FakePublisher) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Closed = true

	return nil
}
