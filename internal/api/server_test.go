package api_test

import (
	"context"
	"genericurl/internal/api"
	"genericurl/internal/config"
	"genericurl/internal/normalizer"
	"genericurl/pkg/metrics"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

const extensionOrigin = "chrome-extension://abcdefghijklmnop"

func newTestHandler(t *testing.T, mutate func(*api.Options)) http.Handler {
	t.Helper()

	reg := prometheus.NewRegistry()
	opts := api.Options{
		Addr:           "127.0.0.1:0",
		RequestTimeout: 5 * time.Second,
		MetricsPath:    "/metrics",
		AllowedOrigins: []string{extensionOrigin},
	}
	if mutate != nil {
		mutate(&opts)
	}

	srv, err := api.NewServer(context.Background(), api.Deps{
		Normalizer: normalizer.New(normalizer.Options{HostMatch: normalizer.HostMatchBroad}),
		Metrics:    metrics.New(reg),
		Registry:   reg,
	}, opts)
	require.NoError(t, err)
	require.NotNil(t, srv.ErrorLog)

	return srv.Handler
}

func get(t *testing.T, h http.Handler, target string) (*http.Response, string) {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	res := rec.Result()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return res, string(body)
}

func TestNewServer_RequiresRegistry(t *testing.T) {
	_, err := api.NewServer(context.Background(), api.Deps{}, api.Options{})
	require.Error(t, err)
}

func TestNewOptions(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	opts := api.NewOptions(cfg)
	require.Equal(t, cfg.HTTP.Addr, opts.Addr)
	require.Equal(t, cfg.HTTP.RequestTimeout, opts.RequestTimeout)
	require.Equal(t, cfg.HTTP.AllowedOrigins, opts.AllowedOrigins)
	require.Equal(t, cfg.HTTP.MaxBatchSize, opts.V1.MaxBatchSize)
}

func TestServer_Health(t *testing.T) {
	res, body := get(t, newTestHandler(t, nil), "/healthz")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "ok", body)
	require.NotEmpty(t, res.Header.Get("X-Request-Id"))
}

func TestServer_NormalizeThenMetrics(t *testing.T) {
	h := newTestHandler(t, nil)

	res, body := get(t, h, "/v1/normalize?url="+url.QueryEscape("https://m.aliexpress.com/i/1005005952528890?x=1"))
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Contains(t, body, `"url":"https://www.aliexpress.com/item/1005005952528890.html"`)

	res, body = get(t, h, "/metrics")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Contains(t, body, `genericurl_normalized_total{rule="ITEM_ID"} 1`)
	require.Contains(t, body, `genericurl_http_request_duration_seconds_count{code="200",route="GET /v1/normalize"} 1`)
	require.Contains(t, body, "genericurl_v1_requests")
}

func TestServer_Docs(t *testing.T) {
	h := newTestHandler(t, nil)

	res, body := get(t, h, "/specs/v1.yaml")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "application/yaml", res.Header.Get("Content-Type"))
	require.Contains(t, body, "openapi: 3.0.3")
	require.Contains(t, body, "/normalize:")

	res, _ = get(t, h, "/v1/docs/")
	require.Equal(t, http.StatusOK, res.StatusCode)
}

func TestServer_Pprof(t *testing.T) {
	res, _ := get(t, newTestHandler(t, nil), "/debug/pprof/")
	require.Equal(t, http.StatusNotFound, res.StatusCode)

	res, _ = get(t, newTestHandler(t, func(o *api.Options) { o.EnablePprof = true }), "/debug/pprof/")
	require.Equal(t, http.StatusOK, res.StatusCode)
}

func TestServer_CORS(t *testing.T) {
	h := newTestHandler(t, nil)

	preflight := func(origin string) int {
		req := httptest.NewRequest(http.MethodOptions, "/v1/normalize", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		return rec.Code
	}

	require.Equal(t, http.StatusNoContent, preflight(extensionOrigin))
	require.Equal(t, http.StatusForbidden, preflight("https://evil.example"))
}

func TestServer_RequestTimeout(t *testing.T) {
	h := newTestHandler(t, func(o *api.Options) {
		o.EnablePprof = true
		o.RequestTimeout = 50 * time.Millisecond
	})

	// a CPU profile blocks for the requested number of seconds
	res, body := get(t, h, "/debug/pprof/profile?seconds=1")
	require.Equal(t, http.StatusServiceUnavailable, res.StatusCode)
	require.Equal(t, "request timed out", body)
}
