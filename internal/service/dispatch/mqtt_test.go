package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/mouse-sentry/internal/domain/activity"
)

// TestFormatPayload verifies the JSON shape of an activity message.
func TestFormatPayload(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, time.March, 14, 15, 9, 26, 0, time.UTC)

	data, err := FormatPayload(activity.Active, at)
	require.NoError(t, err)

	var payload Payload
	require.NoError(t, json.Unmarshal(data, &payload))
	require.Equal(t, "ACTIVE", payload.Activity.State)
	require.Equal(t, "2025-03-14T15:09:26Z", payload.Activity.Timestamp)
}

// TestFormatSystemPayload verifies the lifecycle message shape, including
// reason omission when empty.
func TestFormatSystemPayload(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, time.March, 14, 15, 9, 26, 0, time.UTC)

	data, err := FormatSystemPayload(SystemEvent{
		Timestamp: at,
		Event:     "SHUTDOWN",
		Reason:    "SIGTERM",
	})
	require.NoError(t, err)

	var payload SystemPayload
	require.NoError(t, json.Unmarshal(data, &payload))
	require.Equal(t, "SHUTDOWN", payload.System.Event)
	require.Equal(t, "SIGTERM", payload.System.Reason)

	data, err = FormatSystemPayload(SystemEvent{Timestamp: at, Event: "STARTUP"})
	require.NoError(t, err)
	require.NotContains(t, string(data), "reason")
}

// TestMQTTSinkPublishesTransitions verifies transitions reach the publisher.
func TestMQTTSinkPublishesTransitions(t *testing.T) {
	t.Parallel()

	pub := &FakePublisher{}
	sink := NewMQTTSink(context.Background(), pub, nil)

	require.NoError(t, sink.Notify(activity.Active))
	require.NoError(t, sink.Notify(activity.Inactive))

	require.Equal(t, []activity.State{activity.Active, activity.Inactive}, pub.Transitions)
}

// TestMQTTSinkSwallowsBrokerErrors verifies a failing broker does not take
// down the pipeline: the sink logs and reports success.
func TestMQTTSinkSwallowsBrokerErrors(t *testing.T) {
	t.Parallel()

	pub := &FakePublisher{Err: errors.New("broker unreachable")}
	sink := NewMQTTSink(context.Background(), pub, nil)

	require.NoError(t, sink.Notify(activity.Active))
	require.Len(t, pub.Transitions, 1)
}
