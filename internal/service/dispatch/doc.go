// Package dispatch turns activity transitions into observable effects.
//
// The Dispatcher fans each transition out to independent sinks: an external
// program launcher, an operator-facing status printer, a single-slot chart
// handoff and an optional MQTT publisher. A failing launcher or a dead chart
// consumer is fatal to the pipeline; MQTT publish failures are logged and
// tolerated because the broker is a remote peer with its own availability.
package dispatch
