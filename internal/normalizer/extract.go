package normalizer

import "regexp"

// itemID captures a marketplace item identifier. Runs shorter than 8 digits
// are pagination, category or sku ids and must never be picked up.
const itemID = `(\d{8,})`

var (
	htmlMarker       = regexp.MustCompile(`(?i)\.html`)
	itemPathPattern  = regexp.MustCompile(`(?i)/item/` + itemID)
	shortPathPattern = regexp.MustCompile(`(?i)/i/` + itemID)
	itemRefPattern   = regexp.MustCompile(`(?i)(?:item/|/i/)` + itemID)
	digitRunPattern  = regexp.MustCompile(itemID)
)

// subject is what the extractors look at: the caller's raw input and the
// percent-encoded path of the parsed URL.
type subject struct {
	raw  string
	path string
}

func rawInput(s subject) string    { return s.raw }
func encodedPath(s subject) string { return s.path }

// extractor pairs a pattern with the part of the subject it is applied to.
type extractor struct {
	name    string
	pattern *regexp.Regexp
	source  func(subject) string
}

func (e extractor) extract(s subject) (string, bool) {
	m := e.pattern.FindStringSubmatch(e.source(s))
	if m == nil {
		return "", false
	}

	return m[1], true
}

// itemIDExtractors are tried in order; the first match wins. The last entry
// only fires when percent-encoding produced a digit run the raw input did not
// contain, which keeps normalization idempotent.
var itemIDExtractors = []extractor{ //nolint: gochecknoglobals
	{name: "item path", pattern: itemPathPattern, source: encodedPath},
	{name: "short item path", pattern: shortPathPattern, source: encodedPath},
	{name: "item reference", pattern: itemRefPattern, source: rawInput},
	{name: "digit run", pattern: digitRunPattern, source: rawInput},
	{name: "encoded path digit run", pattern: digitRunPattern, source: encodedPath},
}

// extractItemID returns the first item identifier found by itemIDExtractors.
func extractItemID(s subject) (string, bool) {
	for _, e := range itemIDExtractors {
		if id, ok := e.extract(s); ok {
			return id, true
		}
	}

	return "", false
}

// truncateAfterHTML cuts path right after its first case-insensitive ".html".
func truncateAfterHTML(path string) (string, bool) {
	loc := htmlMarker.FindStringIndex(path)
	if loc == nil {
		return path, false
	}

	return path[:loc[1]], true
}
