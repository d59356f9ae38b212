package copier

import (
	"context"
	"genericurl/pkg/domain"
	"time"
)

//go:generate mockgen -package mockcopier -source=interface.go -destination=mock/mockcopier.go *
type Copier interface {
	// Copy runs one copy gesture: read the active URL, canonicalize it and
	// write the result to the clipboard.
	Copy(ctx context.Context) domain.CopyResult
	// Watch repeats the gesture every interval whenever the active URL changes,
	// until ctx is done.
	Watch(ctx context.Context, interval time.Duration) error
}

// URLProvider yields the URL of the active tab (or whatever stands in for it).
type URLProvider interface {
	ActiveURL(ctx context.Context) (string, error)
}

// ClipboardWriter replaces the clipboard content.
type ClipboardWriter interface {
	WriteText(ctx context.Context, text string) error
}

// Normalizer canonicalizes a raw URL.
type Normalizer interface {
	Canonicalize(raw string) domain.Canonical
}
