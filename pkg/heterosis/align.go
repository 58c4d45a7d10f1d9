package heterosis

import (
	"fmt"

	"github.com/andydoubleu/cannabis-heterosis/pkg/marker"
)

// Align joins two parents' marker sequences by marker id.
//
// Matched pairs follow Parent A's original row order; unmatched markers keep
// their own file's order. Duplicate marker ids within one file are flagged as
// diagnostics and resolved last-occurrence-wins. A chromosome disagreement
// inside a matched pair is flagged on the pair and as a diagnostic, but the
// pair is still returned for classification.
func Align(parentA, parentB []marker.Record) Alignment {
	var alignment Alignment

	uniqueA, diagsA := dedupe(parentA, "parent A")
	uniqueB, diagsB := dedupe(parentB, "parent B")
	alignment.Diagnostics = append(alignment.Diagnostics, diagsA...)
	alignment.Diagnostics = append(alignment.Diagnostics, diagsB...)

	byID := make(map[string]marker.Record, len(uniqueB))
	for _, rec := range uniqueB {
		byID[rec.MarkerID] = rec
	}

	matchedIDs := make(map[string]bool, len(uniqueA))
	for _, a := range uniqueA {
		b, ok := byID[a.MarkerID]
		if !ok {
			alignment.UnmatchedA = append(alignment.UnmatchedA, a)
			continue
		}

		pair := MatchedPair{A: a, B: b}
		if a.Chromosome != b.Chromosome {
			pair.ChromosomeMismatch = true
			alignment.Diagnostics = append(alignment.Diagnostics, marker.Diagnostic{
				Kind:     marker.ChromosomeMismatch,
				MarkerID: a.MarkerID,
				Detail:   fmt.Sprintf("parent A on %s, parent B on %s", a.Chromosome, b.Chromosome),
			})
		}
		alignment.Matched = append(alignment.Matched, pair)
		matchedIDs[a.MarkerID] = true
	}

	for _, b := range uniqueB {
		if !matchedIDs[b.MarkerID] {
			alignment.UnmatchedB = append(alignment.UnmatchedB, b)
		}
	}

	return alignment
}

// dedupe collapses repeated marker ids, keeping the last occurrence in the
// first occurrence's position so row order is preserved.
func dedupe(records []marker.Record, role string) ([]marker.Record, []marker.Diagnostic) {
	slot := make(map[string]int, len(records))
	out := make([]marker.Record, 0, len(records))
	var diags []marker.Diagnostic

	for i, rec := range records {
		if j, seen := slot[rec.MarkerID]; seen {
			diags = append(diags, marker.Diagnostic{
				Kind:     marker.DuplicateMarkerID,
				Row:      i + 1,
				MarkerID: rec.MarkerID,
				Detail:   fmt.Sprintf("duplicate marker id in %s, last occurrence used", role),
			})
			out[j] = rec
			continue
		}
		slot[rec.MarkerID] = len(out)
		out = append(out, rec)
	}

	return out, diags
}
