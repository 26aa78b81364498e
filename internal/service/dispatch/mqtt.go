package dispatch

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/oshokin/mouse-sentry/internal/domain/activity"
)

// MQTT topics for activity transitions and process lifecycle events.
const (
	// TopicActivity carries one message per activity transition.
	TopicActivity = "sentry/mouse/activity"
	// TopicSystem carries retained STARTUP and SHUTDOWN lifecycle messages.
	TopicSystem = "sentry/mouse/system"
)

// Publisher publishes activity messages to a broker. The real
// implementation talks to MQTT; the fake records messages for tests.
type Publisher interface {
	// Publish sends one activity transition.
	Publish(state activity.State, at time.Time) error

	// PublishSystem sends a process lifecycle event.
	PublishSystem(event SystemEvent) error

	// Close disconnects from the broker.
	Close() error
}

// SystemEvent is a process lifecycle event (startup, shutdown).
type SystemEvent struct {
	// Timestamp is when the event occurred.
	Timestamp time.Time
	// Event names the lifecycle stage, e.g. "STARTUP" or "SHUTDOWN".
	Event string
	// Reason carries extra context, e.g. the signal name on shutdown.
	Reason string
}

// Payload is the JSON shape of an activity transition message.
type Payload struct {
	Activity ActivityPayload `json:"activity"`
}

// ActivityPayload contains the transition details.
type ActivityPayload struct {
	Timestamp string `json:"timestamp"`
	State     string `json:"state"`
}

// SystemPayload is the JSON shape of a lifecycle message.
type SystemPayload struct {
	System SystemPayloadInner `json:"system"`
}

// SystemPayloadInner contains the lifecycle event details.
type SystemPayloadInner struct {
	Timestamp string `json:"timestamp"`
	Event     string `json:"event"`
	Reason    string `json:"reason,omitempty"`
}

// FormatPayload creates the JSON payload for an activity transition.
func FormatPayload(state activity.State, at time.Time) ([]byte, error) {
	payload := Payload{
		Activity: ActivityPayload{
			Timestamp: at.UTC().Format(time.RFC3339),
			State:     state.String(),
		},
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal activity payload: %w", err)
	}

	return data, nil
}

// FormatSystemPayload creates the JSON payload for a lifecycle event.
func FormatSystemPayload(event SystemEvent) ([]byte, error) {
	payload := SystemPayload{
		System: SystemPayloadInner{
			Timestamp: event.Timestamp.UTC().Format(time.RFC3339),
			Event:     event.Event,
			Reason:    event.Reason,
		},
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal system payload: %w", err)
	}

	return data, nil
}
