package input

import (
	"context"
	"errors"
	"fmt"

	hook "github.com/robotn/gohook"

	"github.com/oshokin/mouse-sentry/internal/domain/activity"
)

// errHookClosed indicates the global hook stream terminated. There is no
// useful fallback once the pointer-event feed is dead.
var errHookClosed = errors.New("global pointer-event stream closed")

// GlobalListener observes all pointer devices system-wide without grabbing
// any of them; other applications keep receiving the same events.
type GlobalListener struct{}

// NewGlobalListener creates the global listener variant.
func NewGlobalListener() *GlobalListener {
	return &GlobalListener{}
}

// Run subscribes to the system-wide hook and forwards a pulse per pointer
// motion until the context is cancelled or the stream fails.
func (g *GlobalListener) Run(ctx context.Context, sink chan<- activity.Pulse) error {
	events := hook.Start()
	defer hook.End()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return fmt.Errorf("listen for pointer events: %w", errHookClosed)
			}

			if ev.Kind != hook.MouseMove && ev.Kind != hook.MouseDrag {
				continue
			}

			select {
			case sink <- activity.Pulse{}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}
