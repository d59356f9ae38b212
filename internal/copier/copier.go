// Package copier implements the copy command: it takes the URL of the active
// tab, canonicalizes it and writes the result to the clipboard.
package copier

import (
	"context"
	"errors"
	"fmt"
	"genericurl/pkg/domain"
	"genericurl/pkg/logger"
	"genericurl/pkg/metrics"
	"genericurl/pkg/serrors"
	"time"

	"go.uber.org/zap"
)

// Deps are the collaborators of the copy command.
type Deps struct {
	// Provider yields the URL to copy.
	Provider URLProvider
	// Writer receives the canonical URL.
	Writer ClipboardWriter
	// Normalizer computes the canonical URL.
	Normalizer Normalizer
	// Metrics is optional.
	Metrics *metrics.Metrics
}

type copier struct {
	deps Deps
}

// New creates a Copier over deps.
func New(deps Deps) Copier {
	return copier{deps: deps}
}

// Copy never retries. A missing URL fails with ErrNoActiveTab and a rejected
// write with ErrClipboardDenied; an unparsable URL is copied verbatim.
func (c copier) Copy(ctx context.Context) domain.CopyResult {
	raw, err := c.deps.Provider.ActiveURL(ctx)
	if err != nil {
		return c.fail(ctx, asKind(serrors.ErrNoActiveTab, err, "could not get active URL"))
	}

	canonical := c.deps.Normalizer.Canonicalize(raw)
	c.deps.Metrics.ObserveCanonical(canonical)

	if err := c.deps.Writer.WriteText(ctx, canonical.URL); err != nil {
		return c.fail(ctx, asKind(serrors.ErrClipboardDenied, err, "could not write clipboard"))
	}

	res := domain.Copied(canonical.URL)
	c.deps.Metrics.ObserveCopy(res)
	logger.Debug(ctx, "copied canonical URL",
		zap.String("input", canonical.Input),
		zap.String("url", canonical.URL),
		zap.String("rule", string(canonical.Rule)))

	return res
}

func (c copier) fail(ctx context.Context, err error) domain.CopyResult {
	res := domain.CopyFailed(err)
	c.deps.Metrics.ObserveCopy(res)
	logger.Warn(ctx, "copy failed", zap.Error(err))

	return res
}

// asKind wraps err with k unless it already carries it.
func asKind(k serrors.Kind, err error, msg string) error {
	if errors.Is(err, k) {
		return err
	}

	return serrors.Wrap(k, err, msg)
}

// Watch polls the provider every interval. When the URL differs from the last
// one seen and canonicalizes to something new, the canonical form is written
// back. The URL written is remembered so it does not trigger another round.
// Provider and writer failures are logged and polling goes on. Watch returns
// nil once ctx is done.
func (c copier) Watch(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return serrors.With(serrors.ErrBadRequest, "invalid watch interval %s", interval)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var last string
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		raw, err := c.deps.Provider.ActiveURL(ctx)
		if err != nil {
			logger.Debug(ctx, "no URL to watch", zap.Error(err))

			continue
		}
		if raw == last {
			continue
		}

		canonical := c.deps.Normalizer.Canonicalize(raw)
		c.deps.Metrics.ObserveCanonical(canonical)
		last = canonical.URL
		if !canonical.Changed() {
			continue
		}

		if err := c.deps.Writer.WriteText(ctx, canonical.URL); err != nil {
			err = fmt.Errorf("could not write clipboard: %w", err)
			c.deps.Metrics.ObserveCopy(domain.CopyFailed(err))
			logger.Warn(ctx, "watch write failed", zap.Error(err))
			// retry on the next tick
			last = ""

			continue
		}

		c.deps.Metrics.ObserveCopy(domain.Copied(canonical.URL))
		logger.Info(ctx, "clipboard URL replaced",
			zap.String("input", canonical.Input),
			zap.String("url", canonical.URL),
			zap.String("rule", string(canonical.Rule)))
	}
}
