// Package main provides the CLI entrypoint for the generic URL tool.
// It wires subcommands (copy, normalize, watch, serve), loads configuration, and initializes logging.
package main

import (
	"context"
	"errors"
	"fmt"
	"genericurl/internal/config"
	"genericurl/internal/normalizer"
	"genericurl/internal/output"
	"genericurl/pkg/logger"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// errReported is returned by commands that already told the user what went wrong.
var errReported = errors.New("reported")

// annotationLongRunning marks commands that keep the configured log level;
// the others only log errors unless a level is configured.
const annotationLongRunning = "long-running"

// app holds what every subcommand needs once configuration is loaded.
type app struct {
	cfg        *config.Config
	normalizer *normalizer.Normalizer
	printer    *output.Printer
}

// init loads the config file, sets up logging and builds the normalizer.
func (a *app) init(cmd *cobra.Command, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("could not load config file: %w", err)
	}

	level := cfg.LogLevel
	if _, ok := cmd.Annotations[annotationLongRunning]; !ok && level == "" {
		level = "error"
	}
	if err := logger.Setup(cfg.Environment, level); err != nil {
		return fmt.Errorf("could not setup logger: %w", err)
	}

	opts, err := normalizer.NewOptions(cfg)
	if err != nil {
		return err //nolint: wrapcheck
	}

	a.cfg = cfg
	a.normalizer = normalizer.New(opts)
	a.printer = output.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), !color.NoColor)

	return nil
}

// newRootCommand sets up the root Cobra command and registers subcommands.
func newRootCommand() *cobra.Command {
	a := &app{}
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "genericurl",
		Short:         "Copies clean, generic URLs without tracking parameters",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd, configPath)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yml", "Config File Path")

	rootCmd.AddCommand(
		copyCommand(a),
		normalizeCommand(a),
		watchCommand(a),
		serveCommand(a),
	)

	return rootCmd
}

func main() {
	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync()

			panic(p)
		}
	}()

	err := newRootCommand().ExecuteContext(ctx)
	logger.Sync()
	if err != nil {
		if !errors.Is(err, errReported) {
			output.NewStdPrinter().Error("%v", err)
		}
		os.Exit(1) //nolint: gocritic
	}
}
