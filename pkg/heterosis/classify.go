package heterosis

import "strings"

// Genotype values treated as missing data
var missingGenotypes = map[string]bool{
	"NA":  true,
	"N/A": true,
	".":   true,
	"./.": true,
	"-":   true,
}

// ClassifyGenotypes determines the predicted progeny zygosity from the two
// parents' genotype strings. It is a total, deterministic function: either
// genotype missing or unrecognized yields Unresolved, equal genotypes yield
// HomozygousStable, and differing genotypes yield HeterozygousPotential.
//
// This string-equality heuristic deliberately stands in for true
// cross-prediction; it models no inheritance.
func ClassifyGenotypes(genotypeA, genotypeB string) Zygosity {
	a := strings.TrimSpace(genotypeA)
	b := strings.TrimSpace(genotypeB)

	if !recognized(a) || !recognized(b) {
		return Unresolved
	}
	if a == b {
		return HomozygousStable
	}
	return HeterozygousPotential
}

// recognized reports whether a genotype string carries usable allele data:
// non-empty, not a missing-data token, and only allele characters or the
// "/" separator.
func recognized(genotype string) bool {
	if genotype == "" || missingGenotypes[strings.ToUpper(genotype)] {
		return false
	}
	for _, r := range genotype {
		switch {
		case r >= 'A' && r <= 'Z':
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '/':
		default:
			return false
		}
	}
	return true
}

// Classify returns the zygosity classification for one matched pair
func Classify(pair MatchedPair) Zygosity {
	return ClassifyGenotypes(pair.A.Genotype, pair.B.Genotype)
}

// ClassifyAll classifies every matched pair, preserving order
func ClassifyAll(pairs []MatchedPair) []ClassifiedPair {
	classified := make([]ClassifiedPair, len(pairs))
	for i, pair := range pairs {
		classified[i] = ClassifiedPair{
			MatchedPair: pair,
			Class:       Classify(pair),
		}
	}
	return classified
}
