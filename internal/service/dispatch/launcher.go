package dispatch

import (
	"fmt"
	"os/exec"

	"github.com/oshokin/mouse-sentry/internal/domain/activity"
)

// Launcher starts a configured executable per transition direction. The
// child runs detached with its output discarded and is never waited on for
// completion; only a failure to start is reported, and the caller treats
// that as unrecoverable.
type Launcher struct {
	onActive   string
	onInactive string
}

// NewLauncher creates a launcher. Either path may be empty, in which case
// the corresponding direction launches nothing.
func NewLauncher(onActive, onInactive string) *Launcher {
	return &Launcher{
		onActive:   onActive,
		onInactive: onInactive,
	}
}

// Notify launches the executable configured for the transition direction.
func (l *Launcher) Notify(state activity.State) error {
	path := l.onInactive
	if state == activity.Active {
		path = l.onActive
	}

	if path == "" {
		return nil
	}

	// Stdout and Stderr stay nil so the child's output goes to the null
	// device, keeping the operator stream clean for the status printer.
	cmd := exec.Command(path)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch %s: %w", path, err)
	}

	// Reap the child in the background so it does not linger as a zombie.
	go func() {
		_ = cmd.Wait()
	}()

	return nil
}
