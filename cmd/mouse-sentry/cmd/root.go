package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/mouse-sentry/internal/service/monitor"
	"github.com/oshokin/mouse-sentry/internal/version"
)

var (
	// monitorOptions collects every command-line override for the monitor.
	monitorOptions monitor.Options

	// rootCmd represents the base command that watches pointer activity.
	rootCmd = &cobra.Command{
		Use:   "mouse-sentry",
		Short: "Watch mouse activity and react to transitions.",
		Long: `Watches pointer motion and reports when the user turns active or inactive.

A debounced state machine classifies the user as ACTIVE on the first motion
pulse and as INACTIVE once no motion has arrived for the configured gap.
Each transition can print a status line, launch an executable, feed a live
terminal chart, or be published to an MQTT broker.

By default every pointer motion on the system is observed without consuming
it. With --grab-device the named device is grabbed exclusively instead and
only its vertical movement counts, which is useful for dedicated sensors.

Settings may come from an optional YAML file; command-line flags win.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return monitor.Run(ctx, &monitorOptions)
		},
	}
)

// Execute runs the mouse-sentry CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	flags := rootCmd.Flags()

	flags.StringVarP(&monitorOptions.ConfigPath, "config", "c", "",
		"path to optional settings file (YAML)")
	flags.StringVar(&monitorOptions.OnActive, "on-active", "",
		"executable to launch when the user becomes active")
	flags.StringVar(&monitorOptions.OnInactive, "on-inactive", "",
		"executable to launch when the user becomes inactive")
	flags.BoolVarP(&monitorOptions.Quiet, "quiet", "q", false,
		"suppress ACTIVE/INACTIVE status lines")
	flags.BoolVar(&monitorOptions.Chart, "chart", false,
		"render a live activity chart instead of status lines")
	flags.Uint64Var(&monitorOptions.MinMovementGapMS, "min-movement-gap", 0,
		"inactivity gap in milliseconds (0 uses the configured or default value)")
	flags.StringVar(&monitorOptions.GrabDevice, "grab-device", "",
		"grab this input device exclusively and watch only its vertical motion")
	flags.StringVar(&monitorOptions.MQTTBroker, "mqtt-broker", "",
		"publish transitions to this MQTT broker, e.g. tcp://host:1883")
	flags.StringVar(&monitorOptions.LogLevel, "log-level", "",
		"diagnostic log level (debug, info, warn, error)")
}
