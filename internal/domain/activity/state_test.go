package activity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestStateString verifies the operator-facing names of both states.
func TestStateString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "ACTIVE", Active.String())
	require.Equal(t, "INACTIVE", Inactive.String())
}

// TestStateZeroValue verifies that the zero value classifies as inactive,
// matching the initial state of a freshly constructed engine.
func TestStateZeroValue(t *testing.T) {
	t.Parallel()

	var s State
	require.Equal(t, Inactive, s)
}
