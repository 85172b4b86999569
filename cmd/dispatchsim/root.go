package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dispatchsim/config"
	"github.com/katalvlaran/dispatchsim/console"
)

// newRootCmd builds the command. Streams come from cmd.InOrStdin,
// cmd.OutOrStdout and cmd.ErrOrStderr so tests can swap them.
func newRootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:           "dispatchsim",
		Short:         "Emergency services dispatch simulator",
		Long:          "An interactive console for routing ambulances across a small city network and tracking people at a scene.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configPath)
			if err == nil && cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
				err = cfg.Validate()
			}
			if err != nil {
				return fail(cmd.ErrOrStderr(), slog.LevelWarn, err)
			}

			logger := newLogger(cmd.ErrOrStderr(), cfg.Level())
			g, err := cfg.Build()
			if err != nil {
				logger.Error("building network failed", "error", err)
				return err
			}
			logger.Info("network loaded", "locations", g.VertexCount(), "edges", g.EdgeCount(), "config", configPath)

			menu := console.NewMenu(g, cmd.InOrStdin(), cmd.OutOrStdout(), console.WithLogger(logger))
			runErr := menu.Run(cmd.Context())

			if s, err := menu.Recorder().Summary(); err == nil {
				logger.Info("session finished", "actions", s.Total(), "soft_failures", s.SoftFailures)
			}
			if runErr != nil {
				logger.Error("session aborted", "error", runErr)
			}

			return runErr
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "YAML file with log_level and edges (default: built-in network)")
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "diagnostics level: debug, info, warn or error")

	return cmd
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}

	return config.Load(path)
}

// newLogger returns a text logger on w tagged with a fresh session ID.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})

	return slog.New(h).With("session", uuid.NewString())
}

// fail logs a startup error before any configured logger exists.
func fail(w io.Writer, level slog.Level, err error) error {
	newLogger(w, level).Error("startup failed", "error", err)

	return fmt.Errorf("dispatchsim: %w", err)
}
