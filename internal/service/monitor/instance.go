package monitor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	ps "github.com/mitchellh/go-ps"
)

// ErrAlreadyRunning indicates another monitor process owns the input
// devices. Two concurrent instances would race for the global hook and
// double-fire the configured executables.
var ErrAlreadyRunning = errors.New("another mouse-sentry instance is already running")

// processLister enumerates running processes. Injected so tests can fake
// the process table.
type processLister func() ([]ps.Process, error)

// ensureSingleInstance fails when a process with our executable name is
// already running.
func ensureSingleInstance() error {
	executable, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable: %w", err)
	}

	return checkSingleInstance(filepath.Base(executable), os.Getpid(), ps.Processes)
}

// checkSingleInstance scans the process table for a namesake that is not us.
func checkSingleInstance(executable string, selfPID int, list processLister) error {
	processes, err := list()
	if err != nil {
		return fmt.Errorf("enumerate processes: %w", err)
	}

	for _, process := range processes {
		if process.Pid() == selfPID {
			continue
		}

		if process.Executable() != executable {
			continue
		}

		return fmt.Errorf("pid %d: %w", process.Pid(), ErrAlreadyRunning)
	}

	return nil
}
