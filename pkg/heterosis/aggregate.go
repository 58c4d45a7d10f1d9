package heterosis

// Aggregate folds classified pairs into overall counts and a per-chromosome
// breakdown. Parent A's chromosome value is canonical for grouping, and
// chromosomes appear in first-seen order of the matched sequence. The
// per-chromosome counts always sum to the overall counts.
func Aggregate(pairs []ClassifiedPair) (Counts, []ChromosomeSummary) {
	var overall Counts
	var chromosomes []ChromosomeSummary
	index := make(map[string]int)

	for _, pair := range pairs {
		overall.add(pair.Class)

		chrom := pair.A.Chromosome
		i, seen := index[chrom]
		if !seen {
			i = len(chromosomes)
			index[chrom] = i
			chromosomes = append(chromosomes, ChromosomeSummary{Chromosome: chrom})
		}
		chromosomes[i].add(pair.Class)
	}

	return overall, chromosomes
}
