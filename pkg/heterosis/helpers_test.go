package heterosis

import "github.com/andydoubleu/cannabis-heterosis/pkg/marker"

// rec builds a marker record with plausible alleles for tests
func rec(id, chrom string, position int, genotype string) marker.Record {
	return marker.Record{
		MarkerID:        id,
		Chromosome:      chrom,
		Position:        position,
		ReferenceAllele: "A",
		AlternateAllele: "T",
		Genotype:        genotype,
	}
}

// pair builds a matched pair whose parents sit on the same chromosome
func pair(id, chrom string, position int, genotypeA, genotypeB string) MatchedPair {
	return MatchedPair{
		A: rec(id, chrom, position, genotypeA),
		B: rec(id, chrom, position, genotypeB),
	}
}
