//go:build linux

package input

import (
	"context"
	"fmt"

	"github.com/holoplot/go-evdev"

	"github.com/oshokin/mouse-sentry/internal/domain/activity"
)

// grabbedDevice is the subset of *evdev.InputDevice the grab loop needs,
// extracted so device lookup and event filtering are testable without
// hardware.
type grabbedDevice interface {
	Grab() error
	Ungrab() error
	ReadOne() (*evdev.InputEvent, error)
	Close() error
}

// ExclusiveGrab owns a single named evdev device. While the grab is held,
// the device's events are delivered only to this process and hidden from
// every other consumer of the kernel input pipeline. Users rely on this to
// keep other applications from reacting to the grabbed mouse.
type ExclusiveGrab struct {
	deviceName string

	listDevices func() ([]evdev.InputPath, error)
	openDevice  func(path string) (grabbedDevice, error)
}

// NewExclusiveGrab creates the exclusive-grab variant for the exactly
// matching device name.
//
//nolint:ireturn // Signature is shared with the non-Linux stub.
func NewExclusiveGrab(name string) (Source, error) {
	return &ExclusiveGrab{
		deviceName:  name,
		listDevices: evdev.ListDevicePaths,
		openDevice:  openEvdev,
	}, nil
}

func openEvdev(path string) (grabbedDevice, error) {
	return evdev.Open(path)
}

// Run grabs the device and forwards a pulse per vertical relative-motion
// event. Lookup and grab failures are fatal and carry actionable text;
// they are never retried.
func (g *ExclusiveGrab) Run(ctx context.Context, sink chan<- activity.Pulse) error {
	path, err := g.findDevice()
	if err != nil {
		return err
	}

	dev, err := g.openDevice(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}

	defer func() {
		_ = dev.Close()
	}()

	if err = dev.Grab(); err != nil {
		return fmt.Errorf(
			"grab %q (add yourself to the input group or run as root): %w",
			g.deviceName, err)
	}

	defer func() {
		_ = dev.Ungrab()
	}()

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		ev, err := dev.ReadOne()
		if err != nil {
			return fmt.Errorf("read %q: %w", g.deviceName, err)
		}

		// Only vertical relative motion qualifies as a pulse; button
		// presses, wheel ticks and horizontal motion are ignored.
		if ev.Type != evdev.EV_REL || ev.Code != evdev.REL_Y {
			continue
		}

		select {
		case sink <- activity.Pulse{}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// findDevice resolves the configured name against the enumerated devices.
func (g *ExclusiveGrab) findDevice() (string, error) {
	paths, err := g.listDevices()
	if err != nil {
		return "", fmt.Errorf("enumerate input devices: %w", err)
	}

	for _, p := range paths {
		if p.Name == g.deviceName {
			return p.Path, nil
		}
	}

	return "", fmt.Errorf("%q: %w", g.deviceName, ErrDeviceNotFound)
}
