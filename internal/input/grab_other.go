//go:build !linux

package input

import "fmt"

// NewExclusiveGrab reports that exclusive device grabs are unavailable on
// this platform. The error-producing variant keeps the interface uniform
// instead of compiling the option away.
//
//nolint:ireturn // Signature is shared with the Linux implementation.
func NewExclusiveGrab(name string) (Source, error) {
	return nil, fmt.Errorf("grab %q: %w", name, ErrUnsupportedPlatform)
}
