package monitor

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/oshokin/mouse-sentry/internal/chart"
	"github.com/oshokin/mouse-sentry/internal/config"
	"github.com/oshokin/mouse-sentry/internal/domain/activity"
	"github.com/oshokin/mouse-sentry/internal/input"
	"github.com/oshokin/mouse-sentry/internal/logger"
	"github.com/oshokin/mouse-sentry/internal/service/debounce"
	"github.com/oshokin/mouse-sentry/internal/service/dispatch"
)

// Options mirrors the command-line surface of the monitor. Every field
// overrides the corresponding settings-file value when set.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// OnActive is the executable launched on the Inactive -> Active transition.
	OnActive string
	// OnInactive is the executable launched on the Active -> Inactive transition.
	OnInactive string
	// Quiet suppresses the ACTIVE/INACTIVE status lines on stdout.
	Quiet bool
	// Chart replaces status printing with the live terminal chart.
	Chart bool
	// MinMovementGapMS overrides the debounce gap in milliseconds; zero means unset.
	MinMovementGapMS uint64
	// GrabDevice selects the exclusive-grab input variant when non-empty.
	GrabDevice string
	// MQTTBroker enables transition publishing when non-empty.
	MQTTBroker string
	// LogLevel overrides the diagnostic log level when non-empty.
	LogLevel string
}

const (
	// pulseBufferSize absorbs motion bursts between engine iterations. Lost
	// pulses would only delay the Active transition by one event, but a
	// blocked sender would stall the OS hook callback.
	pulseBufferSize = 64

	// fatalBufferSize leaves room for every worker goroutine to report
	// without blocking, even after the loop has already returned.
	fatalBufferSize = 4
)

// Run drives the monitoring pipeline until the context is cancelled or a
// fatal error occurs. It returns nil on clean shutdown (signal, chart quit).
//
//nolint:cyclop,funlen // Wiring is sequential and splitting it would obscure the setup order.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "mouse-sentry")

	// Merge settings file and command-line overrides.
	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	// Raise or lower diagnostics before anything else logs.
	if cfg.LogLevel != "" {
		if level, ok := logger.ParseLogLevel(cfg.LogLevel); ok {
			logger.SetLevel(level)
		}
	}

	// Refuse to race another instance for the input devices.
	if err = ensureSingleInstance(); err != nil {
		return err
	}

	// Select the input source variant before spawning anything.
	source, err := input.New(input.Config{GrabDeviceName: cfg.GrabDevice})
	if err != nil {
		return fmt.Errorf("select input source: %w", err)
	}

	// Every worker goroutine reports its terminal error here; the loop
	// returns on the first one.
	fatals := make(chan error, fatalBufferSize)

	// The launcher always comes first so executables fire before any
	// status output for the same transition.
	var sinks []dispatch.Sink
	if cfg.OnActive != "" || cfg.OnInactive != "" {
		sinks = append(sinks, dispatch.NewLauncher(cfg.OnActive, cfg.OnInactive))
	}

	// Chart mode owns the terminal, so it replaces the status printer.
	switch {
	case cfg.Chart:
		done := make(chan struct{})
		chartSink := dispatch.NewChartSink(done)
		program := chart.NewProgram(chartSink.Updates())

		go func() {
			defer close(done)
			fatals <- program.Run()
		}()

		sinks = append(sinks, chartSink)
	case !cfg.Quiet:
		sinks = append(sinks, dispatch.NewPrinter(os.Stdout))
	}

	// MQTT publishing is additive to whichever local consumers are active.
	if cfg.MQTTBroker != "" {
		var publisher *dispatch.PahoPublisher

		publisher, err = dispatch.NewPahoPublisher(cfg.MQTTBroker)
		if err != nil {
			return fmt.Errorf("connect to MQTT broker: %w", err)
		}

		defer func() {
			_ = publisher.Close()
		}()

		// Lifecycle messages are retained so late subscribers learn the
		// last known process state.
		announceStartup(ctx, publisher)
		defer announceShutdown(ctx, publisher)

		sinks = append(sinks, dispatch.NewMQTTSink(ctx, publisher, time.Now))
	}

	engine := debounce.New(dispatch.NewDispatcher(sinks...), nil, cfg.MovementGap())
	pulses := make(chan activity.Pulse, pulseBufferSize)

	// The source blocks for the process lifetime on the success path.
	go func() {
		fatals <- source.Run(ctx, pulses)
	}()

	logger.InfoKV(ctx, "Monitoring started",
		"movement_gap", cfg.MovementGap().String(),
		"grab_device", cfg.GrabDevice,
		"chart", cfg.Chart,
		"quiet", cfg.Quiet,
		"mqtt_broker", cfg.MQTTBroker)

	return runLoop(ctx, engine, pulses, debounce.PollInterval(cfg.MovementGap()), fatals)
}

// resolveConfig loads the settings file and applies command-line overrides
// on top. String overrides apply when non-empty, boolean ones when true,
// and the gap when non-zero.
func resolveConfig(opts *Options) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	if opts.OnActive != "" {
		cfg.OnActive = opts.OnActive
	}

	if opts.OnInactive != "" {
		cfg.OnInactive = opts.OnInactive
	}

	if opts.Quiet {
		cfg.Quiet = true
	}

	if opts.Chart {
		cfg.Chart = true
	}

	if opts.MinMovementGapMS != 0 {
		cfg.MinMovementGapMS = opts.MinMovementGapMS
	}

	if opts.GrabDevice != "" {
		cfg.GrabDevice = opts.GrabDevice
	}

	if opts.MQTTBroker != "" {
		cfg.MQTTBroker = opts.MQTTBroker
	}

	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}

	if err = config.Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// announceStartup publishes the retained STARTUP lifecycle message.
func announceStartup(ctx context.Context, publisher dispatch.Publisher) {
	event := dispatch.SystemEvent{
		Timestamp: time.Now(),
		Event:     "STARTUP",
	}

	if err := publisher.PublishSystem(event); err != nil {
		logger.ErrorKV(ctx, "Publish startup event failed", "error", err)
	}
}

// announceShutdown publishes the retained SHUTDOWN lifecycle message.
func announceShutdown(ctx context.Context, publisher dispatch.Publisher) {
	event := dispatch.SystemEvent{
		Timestamp: time.Now(),
		Event:     "SHUTDOWN",
		Reason:    "process exit",
	}

	if err := publisher.PublishSystem(event); err != nil {
		logger.ErrorKV(ctx, "Publish shutdown event failed", "error", err)
	}
}
