// Package urlsource provides URL providers for the copy command other than
// the clipboard: a URL given on the command line and the first line of a reader.
package urlsource

import (
	"bufio"
	"context"
	"fmt"
	"genericurl/pkg/serrors"
	"io"
	"strings"
)

// Static provides a fixed URL, typically a command-line argument.
type Static string

// ActiveURL returns the URL, or ErrNoActiveTab when it is blank.
func (s Static) ActiveURL(_ context.Context) (string, error) {
	url := strings.TrimSpace(string(s))
	if url == "" {
		return "", serrors.With(serrors.ErrNoActiveTab, "no URL given")
	}

	return url, nil
}

// Reader provides the first non-blank line read from r.
type Reader struct {
	r io.Reader
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// ActiveURL reads up to the first non-blank line. Reaching EOF without one
// is ErrNoActiveTab.
func (r *Reader) ActiveURL(ctx context.Context) (string, error) {
	sc := bufio.NewScanner(r.r)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("could not read URL: %w", err)
		}
		if line := strings.TrimSpace(sc.Text()); line != "" {
			return line, nil
		}
	}
	if err := sc.Err(); err != nil {
		return "", serrors.Wrap(serrors.ErrNoActiveTab, err, "could not read URL")
	}

	return "", serrors.With(serrors.ErrNoActiveTab, "no URL in input")
}
