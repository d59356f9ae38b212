package main

import (
	"genericurl/internal/copier"
	"genericurl/pkg/clipboard"
	"genericurl/pkg/logger"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// watchCommand constructs the 'watch' subcommand that keeps the clipboard
// clean until interrupted.
func watchCommand(a *app) *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:         "watch",
		Short:       "Replaces URLs copied to the clipboard with their generic form",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationLongRunning: ""},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if !cmd.Flags().Changed("interval") {
				interval = a.cfg.Watch.Interval
			}

			system := clipboard.New()
			logger.Info(ctx, "watching clipboard...", zap.Duration("interval", interval))

			return copier.New(copier.Deps{ //nolint: wrapcheck
				Provider:   system,
				Writer:     system,
				Normalizer: a.normalizer,
			}).Watch(ctx, interval)
		},
	}

	cmd.Flags().DurationVarP(&interval, "interval", "i", 0, "Clipboard polling interval (defaults to watch.interval)")

	return cmd
}
