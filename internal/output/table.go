// SPDX-FileCopyrightText: 2026 European Alternatives Authors
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	aqtable "github.com/aquasecurity/table"
	"github.com/aquasecurity/tml"
	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/AlbertUnruh/european-alternatives/internal/catalog"
	"github.com/AlbertUnruh/european-alternatives/internal/score"
)

const maxDescriptionWords = 12

// TableConfig controls which columns are displayed and terminal styling.
type TableConfig struct {
	ShowReplaces bool
	ShowTags     bool
	IsTerminal   bool // true when output goes to a terminal (enables ANSI styling)
}

// IsOutputToTerminal returns true if the writer is stdout connected to a
// character device (TTY).
func IsOutputToTerminal(output io.Writer) bool {
	return output == os.Stdout && term.IsTerminal(int(os.Stdout.Fd()))
}

// WriteTable renders the entries as a table preceded by a jurisdiction
// tier summary line.
func WriteTable(w io.Writer, entries []catalog.Entry, cfg TableConfig) error {
	writeHeader(w, "European alternatives", cfg.IsTerminal)
	fmt.Fprintln(w, tierSummary(entries))
	fmt.Fprintln(w)

	tw := newTableWriter(w, cfg.IsTerminal)
	tw.SetHeaders(headerNames(cfg)...)
	for i := range entries {
		tw.AddRow(rowCells(&entries[i], cfg)...)
	}
	tw.Render()
	return nil
}

// WriteBreakdown renders one entry with its trust score components.
func WriteBreakdown(w io.Writer, e *catalog.Entry, cfg TableConfig) error {
	writeHeader(w, fmt.Sprintf("%s (%s)", e.Name, e.ID), cfg.IsTerminal)
	fmt.Fprintln(w, e.Description)
	if e.Website != "" {
		if cfg.IsTerminal {
			_ = tml.Fprintf(w, "<blue>%s</blue>\n", e.Website)
		} else {
			fmt.Fprintln(w, e.Website)
		}
	}
	fmt.Fprintln(w)

	if e.TrustScore != nil {
		fmt.Fprintf(w, "Trust score: %s (curated, formula bypassed)\n", formatScore(*e.TrustScore, cfg.IsTerminal))
		return nil
	}

	final, b := score.ComputeTrustScore(e)
	tw := newTableWriter(w, cfg.IsTerminal)
	tw.SetHeaders("Component", "Points")
	tw.AddRow("Jurisdiction", fmt.Sprintf("%d", b.Jurisdiction))
	tw.AddRow("Openness", fmt.Sprintf("%d", b.Openness))
	tw.AddRow("Privacy signals", fmt.Sprintf("%d", b.PrivacySignals))
	tw.AddRow("Sovereignty bonus", fmt.Sprintf("%d", b.SovereigntyBonus))
	tw.AddRow("Reservation penalty", fmt.Sprintf("-%d", b.ReservationPenalty))
	tw.Render()

	fmt.Fprintf(w, "Trust score: %s\n", formatScore(final, cfg.IsTerminal))
	if b.CeilingApplied {
		fmt.Fprintln(w, "Capped at 4: US jurisdiction without a self-hosting option.")
	}
	return nil
}

// writeHeader writes a section title, underlined when piped and styled on
// a terminal.
func writeHeader(w io.Writer, title string, isTerminal bool) {
	if isTerminal {
		_ = tml.Fprintf(w, "<underline><bold>%s</bold></underline>\n", title)
	} else {
		fmt.Fprintln(w, title)
		fmt.Fprintln(w, strings.Repeat("=", utf8.RuneCountInString(title)))
	}
}

// newTableWriter creates a table writer with borders, auto-merge and row
// separators; header and line styles use ANSI formatting on a terminal.
func newTableWriter(w io.Writer, isTerminal bool) *aqtable.Table {
	tw := aqtable.New(w)
	if isTerminal {
		tw.SetHeaderStyle(aqtable.StyleBold)
		tw.SetLineStyle(aqtable.StyleDim)
	}
	tw.SetBorders(true)
	tw.SetAutoMerge(true)
	tw.SetRowLines(true)
	return tw
}

// headerNames returns column header names based on config.
func headerNames(cfg TableConfig) []string {
	cols := []string{"Name", "Category", "Jurisdiction", "Pricing", "Open Source", "Trust"}
	if cfg.ShowReplaces {
		cols = append(cols, "Replaces")
	}
	if cfg.ShowTags {
		cols = append(cols, "Tags")
	}
	return cols
}

// rowCells returns the cell values for a single entry row.
func rowCells(e *catalog.Entry, cfg TableConfig) []string {
	cols := []string{
		nameWithDescription(e, cfg.IsTerminal),
		e.Category,
		strings.ToUpper(e.Jurisdiction),
		e.Pricing,
		formatBool(e.OpenSource),
		formatScore(score.EffectiveScore(e), cfg.IsTerminal),
	}
	if cfg.ShowReplaces {
		cols = append(cols, strings.Join(e.Replaces, "\n"))
	}
	if cfg.ShowTags {
		cols = append(cols, strings.Join(e.Tags, ", "))
	}
	return cols
}

// tierSummary returns a line like:
// Total: 16 (EU: 9, EUROPE: 4, OTHER: 1, US: 2)
func tierSummary(entries []catalog.Entry) string {
	counts := map[string]int{"EU": 0, "EUROPE": 0, "OTHER": 0, "US": 0}
	for i := range entries {
		counts[tierName(entries[i].Jurisdiction)]++
	}
	return fmt.Sprintf("Total: %d (EU: %d, EUROPE: %d, OTHER: %d, US: %d)",
		len(entries), counts["EU"], counts["EUROPE"], counts["OTHER"], counts["US"])
}

// tierName maps a jurisdiction code to its display tier.
func tierName(code string) string {
	c := catalog.NormalizeJurisdiction(code)
	switch {
	case c == "us":
		return "US"
	case c == "eu" || catalog.IsEUMember(c):
		return "EU"
	case catalog.IsEuropeanNonEU(c):
		return "EUROPE"
	default:
		return "OTHER"
	}
}

// scoreColors maps trust tiers to color functions.
var scoreColors = map[string]func(a ...any) string{
	"high": color.New(color.FgGreen).SprintFunc(),
	"mid":  color.New(color.FgYellow).SprintFunc(),
	"low":  color.New(color.FgRed).SprintFunc(),
}

// formatScore renders "<n>/10", colored by tier when on a terminal.
func formatScore(s int, isTerminal bool) string {
	text := fmt.Sprintf("%d/10", s)
	if !isTerminal {
		return text
	}
	switch {
	case s >= 8:
		return scoreColors["high"](text)
	case s >= 5:
		return scoreColors["mid"](text)
	default:
		return scoreColors["low"](text)
	}
}

func formatBool(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// nameWithDescription builds the Name cell: the entry name with a word-
// truncated description on the next line.
func nameWithDescription(e *catalog.Entry, isTerminal bool) string {
	desc := truncateWords(e.Description, maxDescriptionWords)
	if desc == "" {
		return e.Name
	}
	if isTerminal {
		return e.Name + "\n" + tml.Sprintf("<dim>%s</dim>", desc)
	}
	return e.Name + "\n" + desc
}

// truncateWords limits text to maxWords words, appending "..." if truncated.
func truncateWords(text string, maxWords int) string {
	words := strings.Fields(text)
	if len(words) <= maxWords {
		return text
	}
	return strings.Join(words[:maxWords], " ") + "..."
}
