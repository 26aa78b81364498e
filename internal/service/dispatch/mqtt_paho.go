package dispatch

import (
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/oshokin/mouse-sentry/internal/domain/activity"
)

const (
	// mqttClientID identifies this process to the broker.
	mqttClientID = "mouse-sentry"

	// mqttConnectTimeout bounds the initial connection attempt; a broker
	// that cannot be reached at startup is a configuration error.
	mqttConnectTimeout = 10 * time.Second

	// mqttPublishTimeout bounds each publish; later delivery is handled by
	// the client's reconnect machinery.
	mqttPublishTimeout = 5 * time.Second

	// mqttConnectRetryInterval is the delay between reconnection attempts.
	mqttConnectRetryInterval = 5 * time.Second

	// mqttDisconnectQuiesceMS is how long Disconnect waits for in-flight
	// messages, in milliseconds as the paho API requires.
	mqttDisconnectQuiesceMS = 1000
)

// PahoPublisher publishes to an actual MQTT broker.
type PahoPublisher struct {
	client paho.Client
}

// NewPahoPublisher connects to the broker at the given address
// (e.g. tcp://host:1883) and returns a publisher.
func NewPahoPublisher(broker string) (*PahoPublisher, error) {
	opts := paho.NewClientOptions().
		AddBroker(broker).
		SetClientID(mqttClientID).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(mqttConnectRetryInterval)

	client := paho.NewClient(opts)

	token := client.Connect()
	if !token.WaitTimeout(mqttConnectTimeout) {
		return nil, fmt.Errorf("connect to %s: connection timeout", broker)
	}

	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("connect to %s: %w", broker, err)
	}

	return &PahoPublisher{client: client}, nil
}

// Publish sends an activity transition with QoS 0: transitions supersede
// each other, so losing one to a broker blip is acceptable.
func (p *PahoPublisher) Publish(state activity.State, at time.Time) error {
	payload, err := FormatPayload(state, at)
	if err != nil {
		return err
	}

	token := p.client.Publish(TopicActivity, 0, false, payload)
	if !token.WaitTimeout(mqttPublishTimeout) {
		return fmt.Errorf("publish %s: timeout", state)
	}

	if err := token.Error(); err != nil {
		return fmt.Errorf("publish %s: %w", state, err)
	}

	return nil
}

// PublishSystem sends a retained lifecycle event with QoS 1 so subscribers
// always see the latest process state.
func (p *PahoPublisher) PublishSystem(event SystemEvent) error {
	payload, err := FormatSystemPayload(event)
	if err != nil {
		return err
	}

	token := p.client.Publish(TopicSystem, 1, true, payload)
	if !token.WaitTimeout(mqttPublishTimeout) {
		return fmt.Errorf("publish system event %s: timeout", event.Event)
	}

	if err := token.Error(); err != nil {
		return fmt.Errorf("publish system event %s: %w", event.Event, err)
	}

	return nil
}

// Close disconnects from the broker, allowing in-flight messages to drain.
func (p *PahoPublisher) Close() error {
	p.client.Disconnect(mqttDisconnectQuiesceMS)

	return nil
}
