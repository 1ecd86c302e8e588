package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type app struct {
	configFile string
	logLevel   string

	config *Config
	logger *log.Logger
}

func newApp() *app {
	return &app{logger: log.New()}
}

func newRootCmd() *cobra.Command {
	return newApp().rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "extkit",
		Short:         "Relative times, sequence helpers and text transforms",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(
		a.agoCmd(),
		a.betweenCmd(),
		a.weekdayCmd(),
		a.stripCmd(),
		a.reduceCmd(),
		a.digitsCmd(),
		a.countCmd(),
		a.distinctCmd(),
		a.shuffleCmd(),
		a.takeUntilCmd(),
		a.enumCmd(),
	)

	return root
}

// execute runs root and reports a failure through the app logger. It returns
// the process exit code.
func (a *app) execute(root *cobra.Command) int {
	if err := root.Execute(); err != nil {
		a.logger.WithError(err).Error("command failed")
		return 1
	}
	return 0
}

func (a *app) setup(cmd *cobra.Command) error {
	a.logger.SetOutput(cmd.ErrOrStderr())
	a.logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	config, err := LoadConfig(a.configFile)
	if err != nil {
		return err
	}
	a.config = config

	level := config.LogLevel
	if a.logLevel != "" {
		level = a.logLevel
	}
	parsed, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	a.logger.SetLevel(parsed)

	a.logger.WithFields(log.Fields{
		"command": cmd.Name(),
		"config":  a.configFile,
	}).Debug("configuration loaded")

	return nil
}

// input returns the joined args, or stdin when no args were given.
func input(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

var timeLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", time.DateOnly}

func parseTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as a time (want RFC3339 or YYYY-MM-DD)", s)
}
