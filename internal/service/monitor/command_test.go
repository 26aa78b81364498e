package monitor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/mouse-sentry/internal/config"
)

// TestResolveConfigDefaults verifies empty options yield pure defaults.
func TestResolveConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := resolveConfig(&Options{})
	require.NoError(t, err)

	require.Equal(t, config.Default(), cfg)
	require.EqualValues(t, config.DefaultMinMovementGapMS, cfg.MinMovementGapMS)
}

// TestResolveConfigOverridesFile verifies command-line values win over the
// settings file, while unset ones fall through to it.
func TestResolveConfigOverridesFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), config.DefaultConfigFilename)
	contents := []byte("on_active: /usr/bin/beep\nmin_movement_gap_ms: 2000\nlog_level: debug\n")
	require.NoError(t, os.WriteFile(path, contents, config.DefaultFilePermissions))

	opts := &Options{
		ConfigPath:       path,
		OnActive:         "/usr/bin/chirp",
		Quiet:            true,
		MinMovementGapMS: 500,
	}

	cfg, err := resolveConfig(opts)
	require.NoError(t, err)

	require.Equal(t, "/usr/bin/chirp", cfg.OnActive)
	require.True(t, cfg.Quiet)
	require.EqualValues(t, 500, cfg.MinMovementGapMS)
	// Values not overridden keep what the file said.
	require.Equal(t, "debug", cfg.LogLevel)
}

// TestResolveConfigMissingFile verifies a bad path is a hard error rather
// than a silent fallback to defaults.
func TestResolveConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := resolveConfig(&Options{ConfigPath: filepath.Join(t.TempDir(), "absent.yaml")})
	require.Error(t, err)
}
