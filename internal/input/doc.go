// Package input produces motion pulses from a pointer device.
//
// Two variants exist, selected at construction: a global, non-exclusive
// listener observing every pointer device system-wide, and an exclusive
// grab of one named evdev device that hides its events from all other
// consumers while held. The grab variant is Linux-only; selecting it
// elsewhere fails with ErrUnsupportedPlatform instead of silently falling
// back to the global listener.
package input
