package domain

// Rule names the normalization branch that produced a canonical URL.
type Rule string

const (
	// RuleUnparsed means the input could not be parsed as an absolute URL and was returned verbatim.
	RuleUnparsed Rule = "UNPARSED"
	// RuleStripped means the URL is outside the marketplace family; only query and fragment were removed.
	RuleStripped Rule = "STRIPPED"
	// RuleItemPage means a marketplace path was truncated right after its first ".html".
	RuleItemPage Rule = "ITEM_PAGE"
	// RuleItemID means an item identifier was extracted and the path rebuilt as /item/<id>.html.
	RuleItemID Rule = "ITEM_ID"
	// RuleMarketplace means the marketplace host was normalized but no item reference was found.
	RuleMarketplace Rule = "MARKETPLACE"
)

// Rules lists every rule, in the order the normalizer may report them.
func Rules() []Rule {
	return []Rule{RuleUnparsed, RuleStripped, RuleItemPage, RuleItemID, RuleMarketplace}
}

// Canonical is the result of normalizing a single raw URL.
type Canonical struct {
	// Input is the raw string as supplied by the caller.
	Input string `json:"input"`
	// URL is the canonical form, or Input itself when Rule is RuleUnparsed.
	URL string `json:"url"`
	// Rule is the branch that produced URL.
	Rule Rule `json:"rule"`
	// ItemID is the extracted marketplace item identifier, set only for RuleItemID.
	ItemID string `json:"itemId,omitempty"`
}

// Changed reports whether normalization altered the input.
func (c Canonical) Changed() bool { return c.URL != c.Input }
