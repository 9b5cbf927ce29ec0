// SPDX-FileCopyrightText: 2026 European Alternatives Authors
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/AlbertUnruh/european-alternatives/internal/catalog"
	"github.com/AlbertUnruh/european-alternatives/internal/score"
)

// ScoredEntry is the JSON output shape: the catalogue entry plus its
// effective trust score. The breakdown is included only for derived
// scores; a curated override carries no breakdown because the formula
// was never run.
type ScoredEntry struct {
	catalog.Entry
	EffectiveScore int              `json:"effectiveScore"`
	Curated        bool             `json:"curated,omitempty"`
	Breakdown      *score.Breakdown `json:"breakdown,omitempty"`
}

// Scored attaches effective scores and breakdowns to a result set.
func Scored(entries []catalog.Entry) []ScoredEntry {
	out := make([]ScoredEntry, len(entries))
	for i := range entries {
		e := entries[i]
		se := ScoredEntry{Entry: e, EffectiveScore: score.EffectiveScore(&e)}
		if e.TrustScore != nil {
			se.Curated = true
		} else {
			_, b := score.ComputeTrustScore(&e)
			se.Breakdown = &b
		}
		out[i] = se
	}
	return out
}

// WriteJSON writes data as indented JSON without HTML escaping.
func WriteJSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}
	return nil
}
