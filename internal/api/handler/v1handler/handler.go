// Package v1handler implements the v1 HTTP API of the URL normalizer.
package v1handler

import (
	"context"
	"errors"
	"genericurl/pkg/domain"
	"genericurl/pkg/logger"
	"genericurl/pkg/metrics"
	"genericurl/pkg/serrors"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
)

// DefaultMaxBatchSize is used when Options.MaxBatchSize is not positive.
const DefaultMaxBatchSize = 500

// Normalizer canonicalizes a raw URL.
type Normalizer interface {
	Canonicalize(raw string) domain.Canonical
}

// Deps are the collaborators of the v1 handlers.
type Deps struct {
	Normalizer Normalizer
	// Metrics is optional.
	Metrics *metrics.Metrics
	// MeterProvider defaults to the global otel provider.
	MeterProvider metric.MeterProvider
}

// Options tune the v1 handlers.
type Options struct {
	// MaxBatchSize caps the number of URLs in one batch request.
	MaxBatchSize int
}

type Handler struct {
	deps     Deps
	opts     Options
	requests metric.Int64Counter
}

func New(deps Deps, opts Options) *Handler {
	if opts.MaxBatchSize <= 0 {
		opts.MaxBatchSize = DefaultMaxBatchSize
	}
	mp := deps.MeterProvider
	if mp == nil {
		mp = otel.GetMeterProvider()
	}

	var requests metric.Int64Counter = noop.Int64Counter{}
	counter, err := mp.Meter("genericurl/v1").Int64Counter("genericurl.v1.requests",
		metric.WithDescription("Number of v1 API operations by name and outcome."))
	if err == nil {
		requests = counter
	} else {
		otel.Handle(err)
	}

	return &Handler{deps: deps, opts: opts, requests: requests}
}

// Register mounts the v1 routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/normalize", h.NormalizeOne)
	mux.HandleFunc("POST /v1/normalize", h.NormalizeBatch)
}

// ErrorBody is the JSON body of every error response.
type ErrorBody struct {
	Code    string
	Message string
}

// ErrorResponse pairs an ErrorBody with its HTTP status code.
type ErrorResponse struct {
	StatusCode int
	Response   ErrorBody
}

// NewError maps err onto an API error. Semantic kinds keep their message;
// anything else is logged and reported as an internal error.
func (h Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	var (
		status int
		msg    string
	)

	kind := serrors.KindOf(err)
	switch kind {
	case serrors.ErrBadRequest:
		status, msg = http.StatusBadRequest, "bad request"
	case serrors.ErrNotFound:
		status, msg = http.StatusNotFound, "resource not found"
	case serrors.ErrUnavailable:
		status, msg = http.StatusServiceUnavailable, "service unavailable"
	default:
		logger.Error(ctx, "internal error", zap.Error(err))

		return &ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Response:   ErrorBody{Code: serrors.ErrInternal.Error(), Message: "internal error"},
		}
	}

	var serr *serrors.Error
	if errors.As(err, &serr) && serr.Message() != "" {
		msg = serr.Message()
	}

	return &ErrorResponse{
		StatusCode: status,
		Response:   ErrorBody{Code: kind.Error(), Message: msg},
	}
}
