package monitor

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/mouse-sentry/internal/domain/activity"
	"github.com/oshokin/mouse-sentry/internal/service/debounce"
)

// recorder collects every notification, safely across goroutines.
type recorder struct {
	mu     sync.Mutex
	states []activity.State
	err    error
}

func (r *recorder) Notify(state activity.State) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.states = append(r.states, state)

	return r.err
}

func (r *recorder) recorded() []activity.State {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]activity.State(nil), r.states...)
}

// TestRunLoopReportsActiveThenInactive drives the loop with a real burst of
// pulses followed by silence and expects exactly one transition each way.
func TestRunLoopReportsActiveThenInactive(t *testing.T) {
	t.Parallel()

	const gap = 80 * time.Millisecond

	sink := &recorder{}
	engine := debounce.New(sink, nil, gap)
	pulses := make(chan activity.Pulse, pulseBufferSize)
	fatals := make(chan error, 1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		// A burst well shorter than the gap, then silence.
		for i := 0; i < 8; i++ {
			pulses <- activity.Pulse{}
			time.Sleep(5 * time.Millisecond)
		}

		// Wait out the gap plus a poll interval, then stop the loop.
		time.Sleep(gap + 2*debounce.PollInterval(gap))
		cancel()
	}()

	err := runLoop(ctx, engine, pulses, debounce.PollInterval(gap), fatals)
	require.NoError(t, err)

	require.Equal(t, []activity.State{activity.Active, activity.Inactive}, sink.recorded())
}

// TestRunLoopReturnsWorkerError verifies a fatal worker error stops the loop.
func TestRunLoopReturnsWorkerError(t *testing.T) {
	t.Parallel()

	sink := &recorder{}
	engine := debounce.New(sink, nil, time.Second)
	pulses := make(chan activity.Pulse, 1)

	fatals := make(chan error, 1)
	wantErr := errors.New("device unplugged")
	fatals <- wantErr

	err := runLoop(context.Background(), engine, pulses, time.Second, fatals)
	require.ErrorIs(t, err, wantErr)
}

// TestRunLoopCleanWorkerExit verifies a nil worker result means a clean stop.
func TestRunLoopCleanWorkerExit(t *testing.T) {
	t.Parallel()

	sink := &recorder{}
	engine := debounce.New(sink, nil, time.Second)
	pulses := make(chan activity.Pulse, 1)

	fatals := make(chan error, 1)
	fatals <- nil

	err := runLoop(context.Background(), engine, pulses, time.Second, fatals)
	require.NoError(t, err)
}

// TestRunLoopCancelledWorkerIsClean verifies context.Canceled from a worker
// is not reported as a failure.
func TestRunLoopCancelledWorkerIsClean(t *testing.T) {
	t.Parallel()

	sink := &recorder{}
	engine := debounce.New(sink, nil, time.Second)
	pulses := make(chan activity.Pulse, 1)

	fatals := make(chan error, 1)
	fatals <- context.Canceled

	err := runLoop(context.Background(), engine, pulses, time.Second, fatals)
	require.NoError(t, err)
}

// TestRunLoopSinkFailureIsFatal verifies the first sink error ends the loop.
func TestRunLoopSinkFailureIsFatal(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("pipe closed")
	sink := &recorder{err: wantErr}
	engine := debounce.New(sink, nil, time.Second)

	pulses := make(chan activity.Pulse, 1)
	pulses <- activity.Pulse{}

	fatals := make(chan error, 1)

	err := runLoop(context.Background(), engine, pulses, time.Second, fatals)
	require.ErrorIs(t, err, wantErr)
	require.Equal(t, []activity.State{activity.Active}, sink.recorded())
}

// TestRunLoopQueuedPulseBeatsTimer verifies a pulse that was already queued
// when the timer fired is handled as motion, not as a tick.
func TestRunLoopQueuedPulseBeatsTimer(t *testing.T) {
	t.Parallel()

	sink := &recorder{}
	// A generous gap so no tick can ever report Inactive during the test.
	engine := debounce.New(sink, nil, time.Hour)

	pulses := make(chan activity.Pulse, 2)
	pulses <- activity.Pulse{}
	pulses <- activity.Pulse{}

	ctx, cancel := context.WithCancel(context.Background())
	fatals := make(chan error, 1)

	go func() {
		// Let the loop consume both pulses and at least one timer fire.
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	err := runLoop(ctx, engine, pulses, time.Millisecond, fatals)
	require.NoError(t, err)

	require.Equal(t, []activity.State{activity.Active}, sink.recorded())
}
