package main

import (
	"context"
	"errors"
	"fmt"
	"genericurl/internal/api"
	"genericurl/pkg/logger"
	"genericurl/pkg/metrics"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// serveCommand constructs the 'serve' subcommand that runs the HTTP API until
// interrupted, then shuts it down gracefully.
func serveCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "serve",
		Short:       "Starts the normalizer HTTP API",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationLongRunning: ""},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			reg := prometheus.NewRegistry()
			reg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)

			server, err := api.NewServer(ctx, api.Deps{
				Normalizer: a.normalizer,
				Metrics:    metrics.New(reg),
				Registry:   reg,
			}, api.NewOptions(a.cfg))
			if err != nil {
				return fmt.Errorf("could not create webserver: %w", err)
			}

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("could not start webserver: %w", err)
				}

				return nil
			})
			g.Go(func() error {
				// wait for interrupt or a failed start
				<-gctx.Done()

				shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.cfg.GracefulShutdownTimeout)
				defer cancel()

				logger.Info(ctx, "stopping webserver...")
				if err := server.Shutdown(shutdownCtx); err != nil {
					return fmt.Errorf("could not stop webserver: %w", err)
				}

				return nil
			})

			return g.Wait() //nolint: wrapcheck
		},
	}

	return cmd
}
