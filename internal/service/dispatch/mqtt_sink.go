package dispatch

import (
	"context"
	"time"

	"github.com/oshokin/mouse-sentry/internal/domain/activity"
	"github.com/oshokin/mouse-sentry/internal/logger"
)

// MQTTSink forwards transitions to a broker. Publish failures are logged
// rather than propagated: the broker is a remote peer with its own
// availability and the paho client reconnects on its own, unlike the local
// consumers whose death leaves the pipeline pointless.
type MQTTSink struct {
	ctx context.Context
	pub Publisher
	now func() time.Time
}

// NewMQTTSink creates a sink publishing through pub. The context is used
// for scoped logging only. A nil clock defaults to time.Now.
func NewMQTTSink(ctx context.Context, pub Publisher, now func() time.Time) *MQTTSink {
	if now == nil {
		now = time.Now
	}

	return &MQTTSink{
		ctx: ctx,
		pub: pub,
		now: now,
	}
}

// Notify publishes the transition, swallowing broker errors.
func (s *MQTTSink) Notify(state activity.State) error {
	if err := s.pub.Publish(state, s.now()); err != nil {
		logger.ErrorKV(s.ctx, "MQTT publish failed", "state", state.String(), "error", err)
	}

	return nil
}
