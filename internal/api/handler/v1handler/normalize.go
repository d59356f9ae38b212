package v1handler

import (
	"context"
	"genericurl/pkg/domain"
	"genericurl/pkg/serrors"
	"net/http"

	"github.com/go-faster/jx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// maxBodyBytes bounds the body of a batch request.
const maxBodyBytes = 1 << 20

// NormalizeOne handles GET /v1/normalize?url=<raw>.
func (h *Handler) NormalizeOne(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q := r.URL.Query()
	if !q.Has("url") {
		h.fail(ctx, w, "normalize", serrors.With(serrors.ErrBadRequest, "missing url query parameter"))

		return
	}

	c := h.canonicalize(q.Get("url"))
	h.count(ctx, "normalize", "ok")
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeCanonical(e, c) })
}

// NormalizeBatch handles POST /v1/normalize with {"urls": [...]}. Items are
// returned in request order.
func (h *Handler) NormalizeBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	urls, err := decodeBatchRequest(jx.Decode(http.MaxBytesReader(w, r.Body, maxBodyBytes), 4096))
	if err != nil {
		h.fail(ctx, w, "normalizeBatch", serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body"))

		return
	}
	if len(urls) > h.opts.MaxBatchSize {
		h.fail(ctx, w, "normalizeBatch", serrors.With(serrors.ErrBadRequest,
			"too many urls: %d, at most %d are allowed", len(urls), h.opts.MaxBatchSize))

		return
	}

	items := make([]domain.Canonical, 0, len(urls))
	for _, raw := range urls {
		items = append(items, h.canonicalize(raw))
	}

	h.count(ctx, "normalizeBatch", "ok")
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeBatch(e, items) })
}

func (h *Handler) canonicalize(raw string) domain.Canonical {
	c := h.deps.Normalizer.Canonicalize(raw)
	h.deps.Metrics.ObserveCanonical(c)

	return c
}

func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, operation string, err error) {
	res := h.NewError(ctx, err)
	h.count(ctx, operation, res.Response.Code)
	writeJSON(w, res.StatusCode, func(e *jx.Encoder) { encodeError(e, res.Response) })
}

func (h *Handler) count(ctx context.Context, operation, outcome string) {
	h.requests.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("outcome", outcome),
	))
}
