// Command sirta reads SIRTA anemometer and Doppler lidar wind logs and plots
// lidar wind profiles and single-day wind series.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/banshee-data/sirta/internal/config"
	"github.com/banshee-data/sirta/internal/fsutil"
	"github.com/banshee-data/sirta/internal/monitoring"
	"github.com/banshee-data/sirta/internal/timeutil"
	"github.com/banshee-data/sirta/internal/version"
)

// app carries the dependencies and global flags shared by every command.
type app struct {
	fs    fsutil.FileSystem
	clock timeutil.Clock
	out   io.Writer

	logger *zap.Logger
	log    *zap.SugaredLogger
	cfg    *config.AnalysisConfig

	configPath string
	verbose    bool
	outDir     string
}

func main() {
	a := &app{fs: fsutil.OSFileSystem{}, clock: timeutil.RealClock{}, out: os.Stdout}
	if err := newRootCmd(a).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "sirta",
		Short: "Read and plot SIRTA anemometer and Doppler lidar wind logs",
		Long: `sirta reads the SIRTA observatory wind logs.

The anemometer log is a CSV of timestamp,u,v rows. The Doppler lidar export
carries one record every 10 minutes with wind speeds at eleven heights from
40 m to 250 m. Records are looked up by date-time, extracted as single-height
series, and plotted as vertical profiles or single-day curves.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setupLogger(); err != nil {
				return err
			}
			return a.loadConfig(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.out)

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Analysis config file (.json, .yaml or .yml); defaults to "+config.DefaultConfigPath+" when present")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&a.outDir, "out-dir", "", "Base directory for plots (overrides config)")

	root.AddCommand(
		newAnemoCmd(a),
		newSeriesCmd(a),
		newProfileCmd(a),
		newDayCmd(a),
		newLocateCmd(a),
		newVersionCmd(a),
	)
	return root
}

func (a *app) setupLogger() error {
	if a.logger == nil {
		cfg := zap.NewProductionConfig()
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		if a.verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err := cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		a.logger = logger
	}
	a.log = a.logger.Sugar()
	monitoring.SetLogger(a.log.Warnf)
	monitoring.SetDebugLogger(a.log.Debugf)
	return nil
}

// loadConfig reads the config file, overlays SIRTA_* variables and then the
// global flags.
func (a *app) loadConfig(cmd *cobra.Command) error {
	path := a.configPath
	if path == "" && a.fs.Exists(config.DefaultConfigPath) {
		path = config.DefaultConfigPath
	}

	a.cfg = config.EmptyAnalysisConfig()
	if path != "" {
		cfg, err := config.LoadAnalysisConfig(path)
		if err != nil {
			return err
		}
		a.cfg = cfg
		a.log.Debugw("loaded config", "path", path)
	}

	if err := a.cfg.ApplyEnv(config.EnvPrefix); err != nil {
		return err
	}
	if cmd.Flags().Changed("out-dir") {
		a.cfg.OutputDir = &a.outDir
	}
	return nil
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "sirta %s\n", version.String())
			return nil
		},
	}
}

// dateLayouts are the accepted forms of a date argument, in UTC.
var dateLayouts = []string{"2006-01-02T15:04", "2006-01-02 15:04", "2006-01-02"}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD or YYYY-MM-DDTHH:MM", s)
}

func parseDates(args []string) ([]time.Time, error) {
	dates := make([]time.Time, len(args))
	for i, s := range args {
		t, err := parseDate(s)
		if err != nil {
			return nil, err
		}
		dates[i] = t
	}
	return dates, nil
}
