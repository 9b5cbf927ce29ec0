// SPDX-FileCopyrightText: 2026 European Alternatives Authors
// SPDX-License-Identifier: Apache-2.0

// Package validate is the batch integrity gate for the catalogue. It
// accumulates every failure instead of stopping at the first so a whole
// batch of data problems surfaces in one pass.
package validate

import (
	"fmt"

	"github.com/AlbertUnruh/european-alternatives/internal/catalog"
)

// Check verifies the catalogue's cross-field invariants and returns one
// human-readable failure per violation. An empty result means the
// catalogue is sound.
//
// Rules:
//   - an entry that declares replaced US products has at least one vendor
//     comparison
//   - vendor comparison ids are unique within their entry
//   - a ready comparison carries a numeric score and at least one reservation
//   - a pending comparison carries no score
//   - jurisdiction codes are enumerated
//   - reservation severities are recognized (scoring would degrade them to
//     minor, but the data should not rely on that)
func Check(entries []catalog.Entry) []string {
	var failures []string
	for i := range entries {
		failures = append(failures, checkEntry(&entries[i])...)
	}
	return failures
}

func checkEntry(e *catalog.Entry) []string {
	var failures []string

	if !catalog.KnownJurisdiction(e.Jurisdiction) {
		failures = append(failures, fmt.Sprintf("entry %q: unknown jurisdiction code %q", e.ID, e.Jurisdiction))
	}

	if len(e.Replaces) > 0 && len(e.VendorComparisons) == 0 {
		failures = append(failures, fmt.Sprintf("entry %q: replaces %d US product(s) but declares no vendor comparison", e.ID, len(e.Replaces)))
	}

	for j, r := range e.Reservations {
		if !catalog.KnownSeverity(r.Severity) {
			failures = append(failures, fmt.Sprintf("entry %q: reservation %d has unrecognized severity %q", e.ID, j, r.Severity))
		}
	}

	seen := make(map[string]bool, len(e.VendorComparisons))
	for i := range e.VendorComparisons {
		c := &e.VendorComparisons[i]
		if seen[c.ID] {
			failures = append(failures, fmt.Sprintf("entry %q: duplicate vendor comparison id %q", e.ID, c.ID))
		}
		seen[c.ID] = true
		failures = append(failures, checkComparison(e.ID, c)...)
	}

	return failures
}

func checkComparison(entryID string, c *catalog.VendorComparison) []string {
	var failures []string
	switch c.Status {
	case catalog.ComparisonReady:
		if c.Score == nil {
			failures = append(failures, fmt.Sprintf("entry %q: comparison %q is ready but has no score", entryID, c.ID))
		}
		if len(c.Reservations) == 0 {
			failures = append(failures, fmt.Sprintf("entry %q: comparison %q is ready but lists no reservations", entryID, c.ID))
		}
	case catalog.ComparisonPending:
		if c.Score != nil {
			failures = append(failures, fmt.Sprintf("entry %q: comparison %q is pending but carries a score", entryID, c.ID))
		}
	default:
		failures = append(failures, fmt.Sprintf("entry %q: comparison %q has unrecognized status %q", entryID, c.ID, c.Status))
	}
	for j, r := range c.Reservations {
		if !catalog.KnownSeverity(r.Severity) {
			failures = append(failures, fmt.Sprintf("entry %q: comparison %q reservation %d has unrecognized severity %q", entryID, c.ID, j, r.Severity))
		}
	}
	return failures
}
