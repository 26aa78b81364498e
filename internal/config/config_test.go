package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestLoadEmptyPathReturnsDefaults verifies the settings file is optional.
func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, uint64(DefaultMinMovementGapMS), cfg.MinMovementGapMS)
	require.Equal(t, time.Second, cfg.MovementGap())
	require.False(t, cfg.Quiet)
	require.False(t, cfg.Chart)
}

// TestLoadMissingExplicitFileFails verifies a configured but absent
// settings file is an error rather than a silent fallback.
func TestLoadMissingExplicitFileFails(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

// TestValidateDefaultsGap verifies a zero gap falls back to one second.
func TestValidateDefaultsGap(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	require.NoError(t, Validate(cfg))
	require.Equal(t, uint64(DefaultMinMovementGapMS), cfg.MinMovementGapMS)

	require.Error(t, Validate(nil))
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back
// correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")

	cfg := &Config{
		OnActive:         "/usr/local/bin/pause-music",
		OnInactive:       "/usr/local/bin/resume-music",
		Quiet:            true,
		MinMovementGapMS: 2500,
		GrabDevice:       "Logitech M570",
		MQTTBroker:       "tcp://broker.local:1883",
		LogLevel:         "debug",
	}

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
	require.Equal(t, 2500*time.Millisecond, loaded.MovementGap())
}
