package normalizer

import (
	"fmt"
	"strings"

	"golang.org/x/net/publicsuffix"
)

const (
	// CanonicalHost is the public hostname every marketplace URL is rewritten to.
	CanonicalHost = "www.aliexpress.com"

	// marketplaceLabel is the registrable label shared by all regional marketplace domains.
	marketplaceLabel = "aliexpress"
)

// HostMatch selects the predicate used to decide whether a hostname belongs to
// the marketplace family.
type HostMatch string

const (
	// HostMatchBroad matches any hostname containing "aliexpress.". It also
	// accepts look-alikes such as notaliexpress.com.evil.com.
	HostMatchBroad HostMatch = "broad"
	// HostMatchStrict matches only hostnames whose registrable domain (eTLD+1)
	// is aliexpress.<public suffix>, e.g. aliexpress.com, aliexpress.us, aliexpress.co.uk.
	HostMatchStrict HostMatch = "strict"
)

// ParseHostMatch converts a configuration value into a HostMatch. The empty
// string selects HostMatchBroad.
func ParseHostMatch(s string) (HostMatch, error) {
	switch HostMatch(strings.ToLower(strings.TrimSpace(s))) {
	case "", HostMatchBroad:
		return HostMatchBroad, nil
	case HostMatchStrict:
		return HostMatchStrict, nil
	default:
		return "", fmt.Errorf("unknown host match %q: must be %q or %q", s, HostMatchBroad, HostMatchStrict)
	}
}

// hostPredicate reports whether a lowercased hostname is a marketplace host.
type hostPredicate func(host string) bool

func (m HostMatch) predicate() hostPredicate {
	if m == HostMatchStrict {
		return isRegistrableMarketplace
	}

	return containsMarketplace
}

func containsMarketplace(host string) bool {
	return strings.Contains(host, marketplaceLabel+".")
}

func isRegistrableMarketplace(host string) bool {
	etld1, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return false
	}
	label, _, _ := strings.Cut(etld1, ".")

	return label == marketplaceLabel
}
