package monitor

import (
	"context"
	"errors"
	"time"

	"github.com/oshokin/mouse-sentry/internal/domain/activity"
	"github.com/oshokin/mouse-sentry/internal/logger"
	"github.com/oshokin/mouse-sentry/internal/service/debounce"
)

// runLoop feeds the engine one stimulus at a time: a motion pulse when one
// arrives within the poll interval, a tick otherwise. The deadline restarts
// after every stimulus, so ticks measure silence rather than wall time.
func runLoop(
	ctx context.Context,
	engine *debounce.Engine,
	pulses <-chan activity.Pulse,
	poll time.Duration,
	fatals <-chan error,
) error {
	timer := time.NewTimer(poll)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Context canceled, exiting")
			return nil
		case err := <-fatals:
			if err != nil && !errors.Is(err, context.Canceled) {
				return err
			}

			// A worker finished cleanly (chart quit by keypress); the
			// pipeline has nothing left to report to.
			logger.Info(ctx, "Consumer finished, exiting")

			return nil
		case <-pulses:
			if err := engine.Handle(activity.EventMotion); err != nil {
				return err
			}
		case <-timer.C:
			// The timer firing does not prove silence: select picks
			// randomly among ready cases, so a pulse may already be
			// queued. That pulse happened first and must win, otherwise
			// a spurious Inactive could interleave a motion burst.
			event := activity.EventTick

			select {
			case <-pulses:
				event = activity.EventMotion
			default:
			}

			if err := engine.Handle(event); err != nil {
				return err
			}
		}

		// Restart the deadline after every stimulus.
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}

		timer.Reset(poll)
	}
}
