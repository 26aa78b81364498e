package dispatch

import (
	"errors"
	"fmt"

	"github.com/oshokin/mouse-sentry/internal/domain/activity"
)

// ErrChartClosed indicates the chart consumer has terminated. Once any
// configured consumer is dead the whole pipeline stops rather than running
// with silently degraded behavior.
var ErrChartClosed = errors.New("chart consumer is gone")

// ChartSink hands transitions to the chart on a single-slot channel. The
// send never blocks: if the chart has not consumed the previous transition
// yet, the newer one replaces it, since only the latest classification
// matters for rendering.
type ChartSink struct {
	updates chan activity.State
	done    <-chan struct{}
}

// NewChartSink creates a chart sink. The done channel is closed by the
// chart's owner when the consumer exits.
func NewChartSink(done <-chan struct{}) *ChartSink {
	return &ChartSink{
		updates: make(chan activity.State, 1),
		done:    done,
	}
}

// Updates returns the channel the chart consumes transitions from.
func (c *ChartSink) Updates() <-chan activity.State {
	return c.updates
}

// Notify hands the transition to the chart without blocking.
func (c *ChartSink) Notify(state activity.State) error {
	select {
	case <-c.done:
		return fmt.Errorf("forward %s: %w", state, ErrChartClosed)
	default:
	}

	select {
	case c.updates <- state:
		return nil
	default:
	}

	// Slot occupied: evict the stale transition and retry once. The chart
	// may race us on the eviction, so the retry is non-blocking too.
	select {
	case <-c.updates:
	default:
	}

	select {
	case c.updates <- state:
	default:
	}

	return nil
}
