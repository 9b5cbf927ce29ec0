// SPDX-FileCopyrightText: 2026 European Alternatives Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import "strings"

// Severity classifies how serious a reservation is. Unrecognized values
// degrade to the minor weight at scoring time; the validator still flags
// them so they get fixed in the data.
type Severity string

const (
	SeverityMinor    Severity = "minor"
	SeverityModerate Severity = "moderate"
	SeverityMajor    Severity = "major"
)

// KnownSeverity reports whether s is one of the three enumerated severities.
func KnownSeverity(s Severity) bool {
	switch s {
	case SeverityMinor, SeverityModerate, SeverityMajor:
		return true
	}
	return false
}

// Reservation is a documented concern attached to an entry or a vendor
// comparison.
type Reservation struct {
	Severity Severity `json:"severity"`
	Note     string   `json:"note,omitempty"`
}

// ComparisonStatus is the lifecycle state of a vendor comparison.
type ComparisonStatus string

const (
	ComparisonPending ComparisonStatus = "pending"
	ComparisonReady   ComparisonStatus = "ready"
)

// VendorComparison compares an alternative against the specific US product
// it replaces. A ready comparison carries a score and at least one
// reservation; a pending one carries neither. Those invariants are enforced
// by the validate package, not at decode time.
type VendorComparison struct {
	ID           string           `json:"id"`
	Vendor       string           `json:"vendor"`
	Status       ComparisonStatus `json:"status"`
	Score        *float64         `json:"score,omitempty"`
	Reservations []Reservation    `json:"reservations,omitempty"`
	Summary      string           `json:"summary,omitempty"`
}

// Entry is one catalogue item describing an alternative product or service.
type Entry struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Jurisdiction string `json:"jurisdiction"`
	Pricing      string `json:"pricing"`
	OpenSource   bool   `json:"openSource"`
	// Openness is the explicit openness level ("none", "partial", "full").
	// When empty or unrecognized, scoring falls back to the OpenSource flag.
	Openness     string        `json:"openness,omitempty"`
	Tags         []string      `json:"tags,omitempty"`
	SelfHostable bool          `json:"selfHostable"`
	Replaces     []string      `json:"replaces,omitempty"`
	Reservations []Reservation `json:"reservations,omitempty"`
	// TrustScore is an optional curated score. When set it is authoritative
	// and the derivation is skipped entirely.
	TrustScore        *int               `json:"trustScore,omitempty"`
	VendorComparisons []VendorComparison `json:"vendorComparisons,omitempty"`
	Website           string             `json:"website,omitempty"`
}

// euMembers is the closed set of EU member state codes. New jurisdictions
// must be classified here explicitly, never inferred.
var euMembers = codeSet(
	"at", "be", "bg", "hr", "cy", "cz", "dk", "ee", "fi", "fr",
	"de", "gr", "hu", "ie", "it", "lv", "lt", "lu", "mt", "nl",
	"pl", "pt", "ro", "sk", "si", "es", "se",
)

// europeanNonEU covers EFTA states plus the UK.
var europeanNonEU = codeSet("ch", "no", "is", "li", "gb")

// otherKnown lists non-European jurisdictions that appear in the catalogue.
// They score the default tier but are still enumerated so the validator can
// catch typos.
var otherKnown = codeSet("ca", "jp", "au", "nz", "kr", "il", "in", "br", "sg")

func codeSet(codes ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		s[c] = struct{}{}
	}
	return s
}

// NormalizeJurisdiction lower-cases a jurisdiction code for lookups.
func NormalizeJurisdiction(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// IsEUMember reports whether code is an EU member state.
func IsEUMember(code string) bool {
	_, ok := euMembers[NormalizeJurisdiction(code)]
	return ok
}

// IsEuropeanNonEU reports whether code is a European non-EU jurisdiction.
func IsEuropeanNonEU(code string) bool {
	_, ok := europeanNonEU[NormalizeJurisdiction(code)]
	return ok
}

// KnownJurisdiction reports whether code is an enumerated jurisdiction:
// an EU member, a European non-EU state, an enumerated other jurisdiction,
// the meta "eu" code, or "us".
func KnownJurisdiction(code string) bool {
	c := NormalizeJurisdiction(code)
	if c == "eu" || c == "us" {
		return true
	}
	if _, ok := euMembers[c]; ok {
		return true
	}
	if _, ok := europeanNonEU[c]; ok {
		return true
	}
	_, ok := otherKnown[c]
	return ok
}
