// SPDX-FileCopyrightText: 2026 European Alternatives Authors
// SPDX-License-Identifier: Apache-2.0

package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/AlbertUnruh/european-alternatives/internal/catalog"
)

// Helper to create an int pointer.
func intPtr(v int) *int {
	return &v
}

// makeTestEntries builds a small catalogue in a deliberate, non-sorted
// order so order-preservation tests mean something.
func makeTestEntries() []catalog.Entry {
	return []catalog.Entry{
		{
			ID:           "posteo",
			Name:         "Posteo",
			Description:  "Green Email provider from Berlin.",
			Category:     "email",
			Jurisdiction: "de",
			Pricing:      "paid",
			OpenSource:   false,
			Tags:         []string{"privacy"},
			TrustScore:   intPtr(7),
		},
		{
			ID:           "nextcloud",
			Name:         "Nextcloud",
			Description:  "Self-hosted file sync and share.",
			Category:     "storage",
			Jurisdiction: "de",
			Pricing:      "freemium",
			OpenSource:   true,
			Tags:         []string{"gdpr", "federated"},
			Replaces:     []string{"Google Drive"},
			TrustScore:   intPtr(9),
		},
		{
			ID:           "qwant",
			Name:         "Qwant",
			Description:  "Search engine that does not track you.",
			Category:     "search",
			Jurisdiction: "fr",
			Pricing:      "free",
			OpenSource:   false,
			TrustScore:   intPtr(6),
		},
		{
			ID:           "element",
			Name:         "Element",
			Description:  "Matrix messenger with encrypted rooms.",
			Category:     "messaging",
			Jurisdiction: "gb",
			Pricing:      "freemium",
			OpenSource:   true,
			Tags:         []string{"federated", "encryption"},
			Replaces:     []string{"Slack"},
			TrustScore:   intPtr(8),
		},
	}
}

func ids(entries []catalog.Entry) []string {
	out := make([]string, len(entries))
	for i := range entries {
		out[i] = entries[i].ID
	}
	return out
}

func TestRun_EmptyCriteriaReturnsAll(t *testing.T) {
	entries := makeTestEntries()
	e := New(language.Und, nil)

	got := e.Run(entries, Criteria{})

	require.Len(t, got, len(entries))
	assert.Equal(t, entries, got)
}

func TestRun_OpenSourceOnly(t *testing.T) {
	entries := makeTestEntries()
	e := New(language.Und, nil)

	got := e.Run(entries, Criteria{OpenSourceOnly: true})

	// Closed-source entries are gone, catalogue order preserved.
	assert.Equal(t, []string{"nextcloud", "element"}, ids(got))
	for i := range got {
		assert.True(t, got[i].OpenSource)
	}
}

func TestRun_SearchMatchesDescriptionCaseInsensitive(t *testing.T) {
	entries := makeTestEntries()
	e := New(language.Und, nil)

	// "mail" is a substring of "Email" in Posteo's description.
	got := e.Run(entries, Criteria{Search: "mail"})

	assert.Equal(t, []string{"posteo"}, ids(got))
}

func TestRun_SearchMatchesReplacesAndTags(t *testing.T) {
	entries := makeTestEntries()
	e := New(language.Und, nil)

	// Matches the replaced product list.
	got := e.Run(entries, Criteria{Search: "google drive"})
	assert.Equal(t, []string{"nextcloud"}, ids(got))

	// Matches a tag.
	got = e.Run(entries, Criteria{Search: "GDPR"})
	assert.Equal(t, []string{"nextcloud"}, ids(got))
}

func TestRun_WhitespaceSearchDisablesFilter(t *testing.T) {
	entries := makeTestEntries()
	e := New(language.Und, nil)

	got := e.Run(entries, Criteria{Search: "   "})

	assert.Len(t, got, len(entries))
}

func TestRun_CategoryFilter(t *testing.T) {
	entries := makeTestEntries()
	e := New(language.Und, nil)

	got := e.Run(entries, Criteria{Categories: []string{"email", "search"}})

	assert.Equal(t, []string{"posteo", "qwant"}, ids(got))
}

func TestRun_JurisdictionFilterCaseInsensitive(t *testing.T) {
	entries := makeTestEntries()
	e := New(language.Und, nil)

	got := e.Run(entries, Criteria{Jurisdictions: []string{"DE"}})

	assert.Equal(t, []string{"posteo", "nextcloud"}, ids(got))
}

func TestRun_PricingFilter(t *testing.T) {
	entries := makeTestEntries()
	e := New(language.Und, nil)

	got := e.Run(entries, Criteria{Pricing: []string{"freemium"}})

	assert.Equal(t, []string{"nextcloud", "element"}, ids(got))
}

func TestRun_FiltersAreConjunctive(t *testing.T) {
	entries := makeTestEntries()
	e := New(language.Und, nil)

	// freemium AND open source AND jurisdiction de leaves only Nextcloud.
	got := e.Run(entries, Criteria{
		Pricing:        []string{"freemium"},
		OpenSourceOnly: true,
		Jurisdictions:  []string{"de"},
	})

	assert.Equal(t, []string{"nextcloud"}, ids(got))
}

func TestRun_SortByName(t *testing.T) {
	entries := makeTestEntries()
	e := New(language.Und, nil)

	got := e.Run(entries, Criteria{SortBy: "name"})

	assert.Equal(t, []string{"element", "nextcloud", "posteo", "qwant"}, ids(got))
}

func TestRun_SortByTrustScoreDescending(t *testing.T) {
	entries := makeTestEntries()
	e := New(language.Und, nil)

	// Curated scores: nextcloud 9, element 8, posteo 7, qwant 6.
	got := e.Run(entries, Criteria{SortBy: "trustScore"})

	assert.Equal(t, []string{"nextcloud", "element", "posteo", "qwant"}, ids(got))
}

func TestRun_TrustScoreUsesInjectedScoreFunc(t *testing.T) {
	entries := makeTestEntries()
	// Reverse the curated ranking to prove the injected resolver wins.
	e := New(language.Und, func(entry *catalog.Entry) int {
		return 10 - *entry.TrustScore
	})

	got := e.Run(entries, Criteria{SortBy: "trustscore"})

	assert.Equal(t, []string{"qwant", "posteo", "element", "nextcloud"}, ids(got))
}

func TestRun_UnknownSortKeyPreservesOrder(t *testing.T) {
	entries := makeTestEntries()
	e := New(language.Und, nil)

	got := e.Run(entries, Criteria{SortBy: "popularity"})

	assert.Equal(t, ids(entries), ids(got))
}

func TestRun_DoesNotMutateInput(t *testing.T) {
	entries := makeTestEntries()
	want := ids(entries)
	e := New(language.Und, nil)

	_ = e.Run(entries, Criteria{SortBy: "name", OpenSourceOnly: true})

	assert.Equal(t, want, ids(entries))
}

func TestRun_LocaleAwareNameSort(t *testing.T) {
	entries := []catalog.Entry{
		{ID: "o", Name: "Otter"},
		{ID: "oe", Name: "Öko"},
		{ID: "a", Name: "Amsel"},
	}
	e := New(language.German, nil)

	got := e.Run(entries, Criteria{SortBy: "name"})

	// German collation sorts Ö with O, not after Z.
	assert.Equal(t, []string{"a", "oe", "o"}, ids(got))
}
