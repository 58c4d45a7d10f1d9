package heterosis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andydoubleu/cannabis-heterosis/pkg/marker"
)

func TestAlign_MatchedAndUnmatched(t *testing.T) {
	parentA := []marker.Record{
		rec("M1", "chr1", 100, "AA"),
		rec("M3", "chr1", 300, "AT"), // only in A
		rec("M2", "chr2", 200, "CC"),
	}
	parentB := []marker.Record{
		rec("M2", "chr2", 200, "CC"),
		rec("M1", "chr1", 100, "TT"),
		rec("M4", "chr3", 400, "GG"), // only in B
	}

	alignment := Align(parentA, parentB)

	// Matched pairs follow A's row order
	require.Len(t, alignment.Matched, 2)
	assert.Equal(t, "M1", alignment.Matched[0].A.MarkerID)
	assert.Equal(t, "TT", alignment.Matched[0].B.Genotype)
	assert.Equal(t, "M2", alignment.Matched[1].A.MarkerID)

	require.Len(t, alignment.UnmatchedA, 1)
	assert.Equal(t, "M3", alignment.UnmatchedA[0].MarkerID)

	require.Len(t, alignment.UnmatchedB, 1)
	assert.Equal(t, "M4", alignment.UnmatchedB[0].MarkerID)

	assert.Empty(t, alignment.Diagnostics)

	// matched + unmatchedA accounts for every valid A row
	assert.Equal(t, len(parentA), len(alignment.Matched)+len(alignment.UnmatchedA))
	assert.Equal(t, len(parentB), len(alignment.Matched)+len(alignment.UnmatchedB))
}

func TestAlign_DuplicateMarkerIDLastWins(t *testing.T) {
	parentA := []marker.Record{
		rec("M1", "chr1", 100, "AA"),
	}
	parentB := []marker.Record{
		rec("M1", "chr1", 100, "AA"),
		rec("M1", "chr1", 100, "TT"), // last occurrence wins
	}

	alignment := Align(parentA, parentB)

	require.Len(t, alignment.Matched, 1)
	assert.Equal(t, "TT", alignment.Matched[0].B.Genotype)

	require.Len(t, alignment.Diagnostics, 1)
	assert.Equal(t, marker.DuplicateMarkerID, alignment.Diagnostics[0].Kind)
	assert.Equal(t, "M1", alignment.Diagnostics[0].MarkerID)
}

func TestAlign_DuplicateInParentA(t *testing.T) {
	parentA := []marker.Record{
		rec("M1", "chr1", 100, "AA"),
		rec("M2", "chr1", 200, "CC"),
		rec("M1", "chr1", 100, "GG"),
	}
	parentB := []marker.Record{
		rec("M1", "chr1", 100, "GG"),
		rec("M2", "chr1", 200, "CC"),
	}

	alignment := Align(parentA, parentB)

	// M1 keeps its first-row slot but carries the last occurrence's genotype
	require.Len(t, alignment.Matched, 2)
	assert.Equal(t, "M1", alignment.Matched[0].A.MarkerID)
	assert.Equal(t, "GG", alignment.Matched[0].A.Genotype)

	require.Len(t, alignment.Diagnostics, 1)
	assert.Equal(t, marker.DuplicateMarkerID, alignment.Diagnostics[0].Kind)
}

func TestAlign_ChromosomeMismatchFlagged(t *testing.T) {
	parentA := []marker.Record{rec("M1", "chr1", 100, "AA")}
	parentB := []marker.Record{rec("M1", "chr2", 100, "TT")}

	alignment := Align(parentA, parentB)

	// Pair is still matched and classifiable
	require.Len(t, alignment.Matched, 1)
	assert.True(t, alignment.Matched[0].ChromosomeMismatch)
	assert.Equal(t, HeterozygousPotential, Classify(alignment.Matched[0]))

	require.Len(t, alignment.Diagnostics, 1)
	assert.Equal(t, marker.ChromosomeMismatch, alignment.Diagnostics[0].Kind)
	assert.Contains(t, alignment.Diagnostics[0].Detail, "chr1")
	assert.Contains(t, alignment.Diagnostics[0].Detail, "chr2")
}

func TestAlign_Empty(t *testing.T) {
	alignment := Align(nil, nil)
	assert.Empty(t, alignment.Matched)
	assert.Empty(t, alignment.UnmatchedA)
	assert.Empty(t, alignment.UnmatchedB)
}
