// Package normalizer turns an arbitrary URL string into its "generic" canonical
// form: tracking parameters and anchors are dropped from every URL, and
// marketplace links are collapsed onto a stable item URL on the canonical host.
package normalizer

import (
	"fmt"
	"genericurl/internal/config"
	"genericurl/pkg/domain"
	"net/url"
	"strings"
)

// Options configure the normalizer.
type Options struct {
	// HostMatch selects the marketplace host predicate.
	HostMatch HostMatch
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) (Options, error) {
	hm, err := ParseHostMatch(cfg.Normalizer.HostMatch)
	if err != nil {
		return Options{}, fmt.Errorf("invalid normalizer config: %w", err)
	}

	return Options{HostMatch: hm}, nil
}

// Normalizer canonicalizes URLs. It holds no mutable state and is safe for
// concurrent use.
type Normalizer struct {
	isMarketplace hostPredicate
}

// New creates a Normalizer configured with the given options.
func New(options Options) *Normalizer {
	return &Normalizer{isMarketplace: options.HostMatch.predicate()}
}

// defaultNormalizer backs the package-level Normalize.
var defaultNormalizer = New(Options{HostMatch: HostMatchBroad}) //nolint: gochecknoglobals

// Normalize canonicalizes raw with the default (broad) host matching.
func Normalize(raw string) string {
	return defaultNormalizer.Normalize(raw)
}

// Canonicalize canonicalizes raw with the default (broad) host matching and
// reports the rule that was applied.
func Canonicalize(raw string) domain.Canonical {
	return defaultNormalizer.Canonicalize(raw)
}

// Normalize returns the canonical form of raw, or raw itself when it is not an
// absolute URL. It never fails.
func (n *Normalizer) Normalize(raw string) string {
	return n.Canonicalize(raw).URL
}

// Canonicalize returns the canonical form of raw together with the rule that
// produced it.
//
// The rules are applied in order:
//   - If raw does not parse as an absolute URL, it is returned verbatim.
//   - Query and fragment are removed from every URL.
//   - URLs outside the marketplace family are returned as is from there.
//   - Marketplace URLs are moved to CanonicalHost (port and userinfo are
//     dropped with the regional host) and to https, unless their scheme is
//     one a browser would not switch (e.g. a custom app scheme).
//   - A path containing ".html" is cut right after its first occurrence.
//   - Otherwise an item identifier of 8 or more digits is looked up in the
//     path, then in the raw input, and the path becomes /item/<id>.html.
//   - Without an identifier the path is left untouched.
func (n *Normalizer) Canonicalize(raw string) domain.Canonical {
	res := domain.Canonical{Input: raw, URL: raw, Rule: domain.RuleUnparsed}

	u, ok := parse(raw)
	if !ok {
		return res
	}

	// query and fragment never carry identity
	u.RawQuery = ""
	u.ForceQuery = false
	u.Fragment = ""
	u.RawFragment = ""

	if !n.isMarketplace(strings.ToLower(u.Hostname())) {
		res.URL, res.Rule = render(u), domain.RuleStripped

		return res
	}

	if isSpecialScheme(u.Scheme) {
		u.Scheme = "https"
	}
	u.Host = CanonicalHost
	u.User = nil

	path := u.EscapedPath()
	if truncated, ok := truncateAfterHTML(path); ok {
		setEscapedPath(u, truncated)
		res.URL, res.Rule = render(u), domain.RuleItemPage

		return res
	}

	if id, ok := extractItemID(subject{raw: raw, path: path}); ok {
		setEscapedPath(u, "/item/"+id+".html")
		res.URL, res.Rule, res.ItemID = render(u), domain.RuleItemID, id

		return res
	}

	res.URL, res.Rule = render(u), domain.RuleMarketplace

	return res
}

// parse accepts only absolute URLs; http and https additionally need a host.
// Surrounding whitespace is ignored.
func parse(raw string) (*url.URL, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Scheme == "" {
		return nil, false
	}
	if isWebScheme(u.Scheme) && u.Host == "" {
		return nil, false
	}

	return u, true
}

func isWebScheme(scheme string) bool {
	return scheme == "http" || scheme == "https"
}

// isSpecialScheme reports whether a browser lets the scheme be switched to
// https. Other schemes keep their own.
func isSpecialScheme(scheme string) bool {
	switch scheme {
	case "http", "https", "ftp", "ws", "wss", "file":
		return true
	default:
		return false
	}
}

// render returns the standard string form of u; web URLs always carry at least "/".
// Whitespace left in front of a removed query or fragment is trimmed.
func render(u *url.URL) string {
	if isWebScheme(u.Scheme) && u.Opaque == "" && u.Path == "" {
		u.Path = "/"
		u.RawPath = ""
	}

	return strings.TrimSpace(u.String())
}

// setEscapedPath replaces the path of u with an already percent-encoded path.
func setEscapedPath(u *url.URL, escaped string) {
	unescaped, err := url.PathUnescape(escaped)
	if err != nil {
		u.Path, u.RawPath = escaped, ""

		return
	}
	u.Path, u.RawPath = unescaped, escaped
}
