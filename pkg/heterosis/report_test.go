package heterosis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andydoubleu/cannabis-heterosis/pkg/marker"
)

func TestBuildReport(t *testing.T) {
	parentA := []marker.Record{
		rec("M1", "chr1", 100, "AA"),
		rec("M2", "chr2", 200, "CC"),
		rec("M3", "chr1", 300, "AT"), // unmatched
	}
	parentB := []marker.Record{
		rec("M1", "chr1", 100, "TT"),
		rec("M2", "chr2", 200, "CC"),
		rec("M4", "chr2", 400, "GG"), // unmatched
	}
	generatedAt := time.Date(2026, 8, 23, 10, 15, 0, 0, time.UTC)

	report := BuildReport("Blue Dream", "OG Kush", Align(parentA, parentB), generatedAt)

	assert.Equal(t, "Blue Dream", report.StrainA)
	assert.Equal(t, "OG Kush", report.StrainB)
	assert.Equal(t, generatedAt, report.GeneratedAt)
	assert.Equal(t, Totals{Matched: 2, UnmatchedA: 1, UnmatchedB: 1}, report.Totals)
	assert.Equal(t, Counts{Heterozygous: 1, Homozygous: 1}, report.Counts)

	require.Len(t, report.Pairs, 2)
	assert.Equal(t, HeterozygousPotential, report.Pairs[0].Class)
	assert.Equal(t, HomozygousStable, report.Pairs[1].Class)

	// Deterministic given identical inputs and a fixed timestamp
	again := BuildReport("Blue Dream", "OG Kush", Align(parentA, parentB), generatedAt)
	assert.Equal(t, report, again)
}

func TestScoreVigor(t *testing.T) {
	tests := []struct {
		name   string
		counts Counts
		want   VigorScore
	}{
		{"above high threshold", Counts{Heterozygous: 76, Homozygous: 24}, VigorHigh},
		{"at high threshold stays medium", Counts{Heterozygous: 75, Homozygous: 25}, VigorMedium},
		{"above medium threshold", Counts{Heterozygous: 41, Homozygous: 59}, VigorMedium},
		{"at medium threshold stays low", Counts{Heterozygous: 40, Homozygous: 60}, VigorLow},
		{"all homozygous", Counts{Homozygous: 10}, VigorLow},
		{"all heterozygous", Counts{Heterozygous: 10}, VigorHigh},
		{"nothing resolved", Counts{Unresolved: 5}, VigorLow},
		{"empty", Counts{}, VigorLow},
		{"unresolved excluded from denominator", Counts{Heterozygous: 8, Homozygous: 2, Unresolved: 90}, VigorHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scoreVigor(tt.counts))
		})
	}
}

func TestReport_ProportionSlices(t *testing.T) {
	report := &Report{Counts: Counts{Heterozygous: 3, Homozygous: 1}}

	slices := report.ProportionSlices()
	require.Len(t, slices, 2) // zero-count unresolved slice omitted

	assert.Equal(t, "Heterozygous Potential", slices[0].Label)
	assert.Equal(t, 3, slices[0].Count)
	assert.InDelta(t, 75.0, slices[0].Percent, 0.001)
	assert.Equal(t, "Homozygous Stable", slices[1].Label)
	assert.InDelta(t, 25.0, slices[1].Percent, 0.001)

	var total float64
	for _, s := range slices {
		total += s.Percent
	}
	assert.InDelta(t, 100.0, total, 0.001)
}

func TestReport_ProportionSlices_Empty(t *testing.T) {
	report := &Report{}
	assert.Nil(t, report.ProportionSlices())
}

func TestReport_HeterozygousPercent(t *testing.T) {
	report := &Report{Counts: Counts{Heterozygous: 1, Homozygous: 3, Unresolved: 6}}
	assert.InDelta(t, 25.0, report.HeterozygousPercent(), 0.001)

	empty := &Report{}
	assert.Zero(t, empty.HeterozygousPercent())
}
