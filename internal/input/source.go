package input

import (
	"context"
	"errors"

	"github.com/oshokin/mouse-sentry/internal/domain/activity"
)

var (
	// ErrDeviceNotFound indicates no input device matches the configured name.
	ErrDeviceNotFound = errors.New("input device not found")

	// ErrUnsupportedPlatform indicates the exclusive-grab variant was
	// selected on a platform without evdev support.
	ErrUnsupportedPlatform = errors.New("exclusive device grab is not supported on this platform")
)

// Source delivers motion pulses into a sink until cancelled or fatally
// failing. Run blocks for the lifetime of the process on the success path.
type Source interface {
	Run(ctx context.Context, sink chan<- activity.Pulse) error
}

// Config selects the input source variant.
type Config struct {
	// GrabDeviceName selects the exclusive-grab variant when non-empty.
	// The name must match an enumerated device exactly.
	GrabDeviceName string
}

// New selects the source variant from the configuration. Exactly one
// variant is active per run; they are never combined.
//
//nolint:ireturn // Factory over source variants intentionally returns the interface.
func New(cfg Config) (Source, error) {
	if cfg.GrabDeviceName == "" {
		return NewGlobalListener(), nil
	}

	return NewExclusiveGrab(cfg.GrabDeviceName)
}
