package heterosis

import "time"

// Vigor score thresholds on the heterozygous share of resolved markers
const (
	vigorHighThreshold   = 75.0
	vigorMediumThreshold = 40.0
)

// BuildReport assembles the complete comparison result from an alignment and
// the caller-supplied strain labels. The caller provides the timestamp so the
// report is deterministic given identical inputs.
func BuildReport(strainA, strainB string, alignment Alignment, generatedAt time.Time) *Report {
	pairs := ClassifyAll(alignment.Matched)
	counts, chromosomes := Aggregate(pairs)

	return &Report{
		StrainA:     strainA,
		StrainB:     strainB,
		GeneratedAt: generatedAt,
		Totals: Totals{
			Matched:    len(pairs),
			UnmatchedA: len(alignment.UnmatchedA),
			UnmatchedB: len(alignment.UnmatchedB),
		},
		Counts:      counts,
		VigorScore:  scoreVigor(counts),
		Chromosomes: chromosomes,
		Pairs:       pairs,
		UnmatchedA:  alignment.UnmatchedA,
		UnmatchedB:  alignment.UnmatchedB,
		Diagnostics: alignment.Diagnostics,
	}
}

// scoreVigor grades the cross by the heterozygous share of resolved matched
// markers: High above 75%, Medium above 40%, otherwise Low.
func scoreVigor(counts Counts) VigorScore {
	resolved := counts.Heterozygous + counts.Homozygous
	if resolved == 0 {
		return VigorLow
	}

	percent := float64(counts.Heterozygous) / float64(resolved) * 100
	switch {
	case percent > vigorHighThreshold:
		return VigorHigh
	case percent > vigorMediumThreshold:
		return VigorMedium
	default:
		return VigorLow
	}
}

// HeterozygousPercent returns the heterozygous share of resolved matched
// markers, 0 when nothing resolved
func (r *Report) HeterozygousPercent() float64 {
	resolved := r.Counts.Heterozygous + r.Counts.Homozygous
	if resolved == 0 {
		return 0
	}
	return float64(r.Counts.Heterozygous) / float64(resolved) * 100
}

// ChartSlice is one labeled share of the overall classification breakdown,
// sized for a pie chart
type ChartSlice struct {
	Label   string  `json:"label"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// ProportionSlices returns the overall classification proportions in a form
// renderers can feed straight into a pie chart. Slices with zero count are
// omitted.
func (r *Report) ProportionSlices() []ChartSlice {
	total := r.Counts.Total()
	if total == 0 {
		return nil
	}

	slices := make([]ChartSlice, 0, 3)
	for _, entry := range []struct {
		label string
		count int
	}{
		{"Heterozygous Potential", r.Counts.Heterozygous},
		{"Homozygous Stable", r.Counts.Homozygous},
		{"Unresolved", r.Counts.Unresolved},
	} {
		if entry.count == 0 {
			continue
		}
		slices = append(slices, ChartSlice{
			Label:   entry.label,
			Count:   entry.count,
			Percent: float64(entry.count) / float64(total) * 100,
		})
	}
	return slices
}

// ChromosomeBars returns the per-chromosome classification distribution, in
// first-seen chromosome order, for a stacked bar chart
func (r *Report) ChromosomeBars() []ChromosomeSummary {
	return r.Chromosomes
}
