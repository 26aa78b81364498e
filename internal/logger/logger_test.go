package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

// TestParseLogLevel verifies mapping from strings to zapcore.Level and handling of unknown values.
func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"info":  zapcore.InfoLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
		"fatal": zapcore.FatalLevel,
	}
	for s, lvl := range cases {
		got, ok := ParseLogLevel(s)
		require.True(t, ok)
		require.Equal(t, lvl, got)
	}

	_, ok := ParseLogLevel("unknown")
	require.False(t, ok)
}

// TestFromContextFallsBackToGlobal verifies a bare context yields the
// global logger and a scoped one round-trips.
func TestFromContextFallsBackToGlobal(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	require.Same(t, Logger(), FromContext(ctx))

	scoped := Logger().Named("scoped")
	ctx = ToContext(ctx, scoped)
	require.Same(t, scoped, FromContext(ctx))
}

// TestWithName attaches a named logger without touching the parent context.
func TestWithName(t *testing.T) {
	t.Parallel()

	parent := context.Background()
	child := WithName(parent, "monitor")

	require.Same(t, Logger(), FromContext(parent))
	require.NotSame(t, FromContext(parent), FromContext(child))
}
