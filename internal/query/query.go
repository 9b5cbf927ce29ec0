// SPDX-FileCopyrightText: 2026 European Alternatives Authors
// SPDX-License-Identifier: Apache-2.0

// Package query filters, searches and sorts the in-memory catalogue.
// All predicates are conjunctive and the input slice is never mutated.
package query

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/AlbertUnruh/european-alternatives/internal/catalog"
)

// ScoreFunc resolves the effective trust score of an entry for sorting.
// Injected so the query engine stays independent of the score engine.
type ScoreFunc func(*catalog.Entry) int

// Criteria describes one query over the catalogue. The zero value is the
// identity query: every entry passes and order is preserved.
type Criteria struct {
	// Search is a free-text term matched case-insensitively as a substring
	// of name, description, replaced US products, and tags. A term that is
	// empty after trimming disables the search predicate.
	Search         string
	Categories     []string
	Jurisdictions  []string
	Pricing        []string
	OpenSourceOnly bool
	// SortBy is one of "name", "jurisdiction", "category", "trustscore".
	// Anything else leaves the relative order unchanged.
	SortBy string
}

// Engine runs queries with a fixed locale collation and score resolver.
type Engine struct {
	collator *collate.Collator
	score    ScoreFunc
}

// New creates a query engine. When score is nil, the trustscore sort key
// falls back to the entry's curated score field (0 when absent).
func New(locale language.Tag, score ScoreFunc) *Engine {
	if score == nil {
		score = curatedScore
	}
	return &Engine{collator: collate.New(locale), score: score}
}

func curatedScore(e *catalog.Entry) int {
	if e.TrustScore != nil {
		return *e.TrustScore
	}
	return 0
}

// Run applies the filter pipeline and then sorts the surviving entries.
// The result is always a fresh slice; with default criteria it has the
// same content and order as the input.
func (e *Engine) Run(entries []catalog.Entry, c Criteria) []catalog.Entry {
	term := strings.ToLower(strings.TrimSpace(c.Search))
	categories := lowerSet(c.Categories)
	jurisdictions := lowerSet(c.Jurisdictions)
	pricing := lowerSet(c.Pricing)

	out := make([]catalog.Entry, 0, len(entries))
	for i := range entries {
		entry := &entries[i]
		if term != "" && !matchesSearch(entry, term) {
			continue
		}
		if len(categories) > 0 && !member(categories, entry.Category) {
			continue
		}
		if len(jurisdictions) > 0 && !member(jurisdictions, entry.Jurisdiction) {
			continue
		}
		if len(pricing) > 0 && !member(pricing, entry.Pricing) {
			continue
		}
		if c.OpenSourceOnly && !entry.OpenSource {
			continue
		}
		out = append(out, *entry)
	}

	e.sortEntries(out, c.SortBy)
	return out
}

// matchesSearch reports whether any searchable field contains term.
func matchesSearch(entry *catalog.Entry, term string) bool {
	if strings.Contains(strings.ToLower(entry.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(entry.Description), term) {
		return true
	}
	for _, r := range entry.Replaces {
		if strings.Contains(strings.ToLower(r), term) {
			return true
		}
	}
	for _, t := range entry.Tags {
		if strings.Contains(strings.ToLower(t), term) {
			return true
		}
	}
	return false
}

// sortEntries sorts in place, stably, by the given key. String keys use
// locale collation ascending; trustscore sorts descending so the most
// trusted entries come first.
func (e *Engine) sortEntries(entries []catalog.Entry, sortBy string) {
	switch strings.ToLower(sortBy) {
	case "name":
		sort.SliceStable(entries, func(i, j int) bool {
			return e.collator.CompareString(entries[i].Name, entries[j].Name) < 0
		})
	case "jurisdiction":
		sort.SliceStable(entries, func(i, j int) bool {
			return e.collator.CompareString(entries[i].Jurisdiction, entries[j].Jurisdiction) < 0
		})
	case "category":
		sort.SliceStable(entries, func(i, j int) bool {
			return e.collator.CompareString(entries[i].Category, entries[j].Category) < 0
		})
	case "trustscore":
		sort.SliceStable(entries, func(i, j int) bool {
			return e.score(&entries[i]) > e.score(&entries[j])
		})
	default:
		// preserve original order
	}
}

func lowerSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	s := make(map[string]struct{}, len(values))
	for _, v := range values {
		s[strings.ToLower(strings.TrimSpace(v))] = struct{}{}
	}
	return s
}

func member(set map[string]struct{}, value string) bool {
	_, ok := set[strings.ToLower(value)]
	return ok
}
