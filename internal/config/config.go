package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the monitor settings.
type Config struct {
	// OnActive is the executable launched when the user becomes active.
	OnActive string `yaml:"on_active"`
	// OnInactive is the executable launched when the user becomes inactive.
	OnInactive string `yaml:"on_inactive"`
	// Quiet suppresses the ACTIVE/INACTIVE status lines on stdout.
	Quiet bool `yaml:"quiet"`
	// Chart replaces status printing with the live terminal chart.
	Chart bool `yaml:"chart"`
	// MinMovementGapMS is the minimum elapsed time since the last motion
	// pulse, in milliseconds, before the user is declared inactive.
	MinMovementGapMS uint64 `yaml:"min_movement_gap_ms"`
	// GrabDevice selects the exclusive-grab input variant when non-empty.
	GrabDevice string `yaml:"grab_device"`
	// MQTTBroker enables transition publishing when non-empty,
	// e.g. tcp://broker.local:1883.
	MQTTBroker string `yaml:"mqtt_broker"`
	// LogLevel is the diagnostic log level (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
}

const (
	// DefaultConfigFilename is the default filename for monitor settings.
	DefaultConfigFilename = "mouse-sentry-settings.yaml"

	// DefaultMinMovementGapMS is the default debounce gap in milliseconds.
	DefaultMinMovementGapMS = 1000

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

// errConfigIsNotSet is returned when a nil configuration is provided.
var errConfigIsNotSet = errors.New("configuration is not set")

// Default returns a configuration with every default applied.
func Default() *Config {
	return &Config{
		MinMovementGapMS: DefaultMinMovementGapMS,
	}
}

// Load reads configuration from the provided path and validates it. An
// empty path returns the defaults without touching the filesystem, since
// the settings file is optional.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate applies defaults to unset fields and checks the rest.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	// A zero gap means unset; fall back to the default rather than failing,
	// so a settings file may omit it.
	if cfg.MinMovementGapMS == 0 {
		cfg.MinMovementGapMS = DefaultMinMovementGapMS
	}

	return nil
}

// MovementGap returns the debounce gap as a duration.
func (c *Config) MovementGap() time.Duration {
	return time.Duration(c.MinMovementGapMS) * time.Millisecond
}
