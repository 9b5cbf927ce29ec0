// SPDX-FileCopyrightText: 2026 European Alternatives Authors
// SPDX-License-Identifier: Apache-2.0

// Trust score calculation. Pure integer arithmetic over fixed lookup
// tables; no I/O and no state, so recomputing from the same entry always
// yields the same result.

package score

import (
	"strings"

	"github.com/AlbertUnruh/european-alternatives/internal/catalog"
)

// Score bounds and the US ceiling.
const (
	MinScore  = 1
	MaxScore  = 10
	usCeiling = 4
)

// Breakdown holds the five components of a trust score plus whether the
// US ceiling rule capped the result.
type Breakdown struct {
	Jurisdiction       int  `json:"jurisdiction"`
	Openness           int  `json:"openness"`
	PrivacySignals     int  `json:"privacySignals"`
	SovereigntyBonus   int  `json:"sovereigntyBonus"`
	ReservationPenalty int  `json:"reservationPenalty"`
	CeilingApplied     bool `json:"ceilingApplied"`
}

// primarySignalTags are privacy signals worth +1 if any tag matches.
var primarySignalTags = tagSet("privacy", "gdpr", "encryption", "zero-knowledge", "no-logs")

// secondarySignalTags are sovereignty-adjacent signals worth a further +1.
var secondarySignalTags = tagSet("offline", "federated", "local")

func tagSet(tags ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		s[t] = struct{}{}
	}
	return s
}

// ComputeTrustScore derives the trust score for an entry from its static
// attributes, ignoring any curated TrustScore override.
//
// raw = jurisdiction + openness + privacySignals + sovereigntyBonus - penalty,
// clamped to [1, 10]. A US entry that cannot be self-hosted is then capped
// at 4; the cap is recorded in the breakdown only when it actually lowered
// the clamped score.
func ComputeTrustScore(e *catalog.Entry) (int, Breakdown) {
	b := Breakdown{
		Jurisdiction:       jurisdictionScore(e.Jurisdiction),
		Openness:           opennessScore(e),
		PrivacySignals:     privacySignalScore(e.Tags),
		SovereigntyBonus:   sovereigntyBonus(e.SelfHostable),
		ReservationPenalty: reservationPenalty(e.Reservations),
	}

	raw := b.Jurisdiction + b.Openness + b.PrivacySignals + b.SovereigntyBonus - b.ReservationPenalty
	final := clamp(raw)

	if isUS(e.Jurisdiction) && !e.SelfHostable && final > usCeiling {
		final = usCeiling
		b.CeilingApplied = true
	}

	return final, b
}

// EffectiveScore returns the curated TrustScore when the entry carries one,
// bypassing the derivation entirely, and the derived score otherwise.
func EffectiveScore(e *catalog.Entry) int {
	if e.TrustScore != nil {
		return *e.TrustScore
	}
	s, _ := ComputeTrustScore(e)
	return s
}

func isUS(code string) bool {
	return catalog.NormalizeJurisdiction(code) == "us"
}

// jurisdictionScore is a fixed lookup: EU member 4, European non-EU 3,
// the meta "eu" code 3, US 1, everything else 2.
func jurisdictionScore(code string) int {
	c := catalog.NormalizeJurisdiction(code)
	switch {
	case c == "us":
		return 1
	case c == "eu":
		return 3
	case catalog.IsEUMember(c):
		return 4
	case catalog.IsEuropeanNonEU(c):
		return 3
	default:
		return 2
	}
}

// opennessScore prefers the explicit openness level and falls back to the
// boolean open-source flag when the level is absent or unrecognized.
func opennessScore(e *catalog.Entry) int {
	switch strings.ToLower(e.Openness) {
	case "full":
		return 3
	case "partial":
		return 2
	case "none":
		return 1
	}
	if e.OpenSource {
		return 2
	}
	return 1
}

// privacySignalScore contributes +1 per matched vocabulary, max 2.
// Multiple matches within the same vocabulary do not add more.
func privacySignalScore(tags []string) int {
	score := 0
	primary, secondary := false, false
	for _, t := range tags {
		lt := strings.ToLower(t)
		if _, ok := primarySignalTags[lt]; ok {
			primary = true
		}
		if _, ok := secondarySignalTags[lt]; ok {
			secondary = true
		}
	}
	if primary {
		score++
	}
	if secondary {
		score++
	}
	return score
}

func sovereigntyBonus(selfHostable bool) int {
	if selfHostable {
		return 2
	}
	return 0
}

// reservationPenalty sums severity weights with no cap beyond the final
// clamp. Unrecognized severities weigh as minor.
func reservationPenalty(reservations []catalog.Reservation) int {
	penalty := 0
	for _, r := range reservations {
		penalty += severityWeight(r.Severity)
	}
	return penalty
}

func severityWeight(s catalog.Severity) int {
	switch catalog.Severity(strings.ToLower(string(s))) {
	case catalog.SeverityMajor:
		return 3
	case catalog.SeverityModerate:
		return 2
	default:
		return 1
	}
}

func clamp(raw int) int {
	if raw < MinScore {
		return MinScore
	}
	if raw > MaxScore {
		return MaxScore
	}
	return raw
}
