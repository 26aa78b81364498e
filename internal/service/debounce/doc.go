// Package debounce implements the activity-classification state machine.
//
// The Engine consumes motion pulses and periodic ticks and notifies its sink
// exactly once per actual state change: a burst of motion produces a single
// Active notification, and a long idle period produces a single Inactive
// notification at the first tick past the movement gap. The engine is pure
// and deterministic; the clock is injected so timing logic is testable.
package debounce
