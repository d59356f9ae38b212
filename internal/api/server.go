// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the URL normalizer service.
package api

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"genericurl/internal/api/handler/v1handler"
	"genericurl/internal/config"
	"genericurl/pkg/controller"
	"genericurl/pkg/logger"
	"genericurl/pkg/metrics"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
// All durations are used to configure server timeouts, and zero values
// should be considered as using the defaults provided by net/http where applicable.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// AllowedOrigins lists the CORS origins allowed to call the API.
	AllowedOrigins []string
	// EnablePprof mounts the profiling endpoints.
	EnablePprof bool
	// V1 configures the v1 handlers.
	V1 v1handler.Options
}

// NewOptions constructs an Options value from the provided application configuration.
// It maps HTTP server-related settings from config.Config to the Options used by the API server.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		AllowedOrigins:    cfg.HTTP.AllowedOrigins,
		EnablePprof:       cfg.HTTP.EnablePprof,
		V1:                v1handler.Options{MaxBatchSize: cfg.HTTP.MaxBatchSize},
	}
}

// Deps are the collaborators of the server.
type Deps struct {
	Normalizer v1handler.Normalizer
	Metrics    *metrics.Metrics
	// Registry backs the metrics endpoint and the otel exporter.
	Registry *prometheus.Registry
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - Prometheus metrics endpoint (MetricsPath)
// - OpenTelemetry metrics exporter (Prometheus)
// - Embedded OpenAPI v1 spec and Swagger UI
// - v1 API routes and a health check
// - pprof endpoints for profiling, when enabled
// It also wraps the mux with CORS and logging middlewares and applies a request timeout.
// Server errors are logged through the logger carried by ctx.
func NewServer(ctx context.Context, deps Deps, opts Options) (*http.Server, error) {
	if deps.Registry == nil {
		return nil, errors.New("missing prometheus registry")
	}
	if opts.MetricsPath == "" {
		opts.MetricsPath = "/metrics"
	}

	mux := http.NewServeMux()

	// prometheus metrics server
	mux.Handle("GET "+opts.MetricsPath, promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{
		Registry: deps.Registry,
	}))

	// otel
	exp, err := otelprom.New(otelprom.WithRegisterer(deps.Registry))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))

	// v1 specs file
	mux.HandleFunc("GET /specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	mux.Handle("GET /v1/docs/", v5emb.New(
		"Generic URL Service",
		"/specs/v1.yaml",
		"/v1/docs/",
	))
	// v1 api
	v1handler.New(v1handler.Deps{
		Normalizer:    deps.Normalizer,
		Metrics:       deps.Metrics,
		MeterProvider: mp,
	}, opts.V1).Register(mux)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	// pprof
	if opts.EnablePprof {
		controller.RegisterPprof(mux)
	}

	// cors
	handler := controller.WithCORS(opts.AllowedOrigins)(mux)

	// logger
	handler = controller.WithLogger(deps.Metrics)(handler)

	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, opts.RequestTimeout, "request timed out")
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
		ErrorLog:          slog.NewLogLogger(logger.Slog(ctx).Handler(), slog.LevelError),
	}, nil
}
