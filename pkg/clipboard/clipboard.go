// Package clipboard adapts the system clipboard to the copy command: it is
// the output collaborator (clipboard writer) and, when the tool runs outside
// a browser, the input collaborator too (the URL to clean is what was copied).
package clipboard

import (
	"context"
	"genericurl/pkg/serrors"
	"strings"

	"github.com/atotto/clipboard"
)

// System talks to the operating system clipboard. It is safe for concurrent use
// as far as the platform clipboard tools are.
type System struct {
	unsupported bool
	readAll     func() (string, error)
	writeAll    func(text string) error
}

// New returns a System bound to the platform clipboard.
func New() *System {
	return &System{
		unsupported: clipboard.Unsupported,
		readAll:     clipboard.ReadAll,
		writeAll:    clipboard.WriteAll,
	}
}

// ReadText returns the raw clipboard content.
func (s *System) ReadText(_ context.Context) (string, error) {
	if s.unsupported {
		return "", serrors.With(serrors.ErrUnavailable, "clipboard is not supported on this platform")
	}

	text, err := s.readAll()
	if err != nil {
		return "", serrors.Wrap(serrors.ErrUnavailable, err, "could not read clipboard")
	}

	return text, nil
}

// ActiveURL returns the trimmed clipboard content as the URL to work on.
// An empty clipboard, or one that cannot be read, means there is no URL.
func (s *System) ActiveURL(ctx context.Context) (string, error) {
	text, err := s.ReadText(ctx)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrNoActiveTab, err, "no URL available")
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", serrors.With(serrors.ErrNoActiveTab, "clipboard is empty")
	}

	return text, nil
}

// WriteText replaces the clipboard content with text.
func (s *System) WriteText(_ context.Context, text string) error {
	if s.unsupported {
		return serrors.With(serrors.ErrClipboardDenied, "clipboard is not supported on this platform")
	}

	if err := s.writeAll(text); err != nil {
		return serrors.Wrap(serrors.ErrClipboardDenied, err, "could not write clipboard")
	}

	return nil
}
