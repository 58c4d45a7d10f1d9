package heterosis

import (
	"time"

	"github.com/andydoubleu/cannabis-heterosis/pkg/marker"
)

// Zygosity classifies the predicted progeny outcome at one matched marker
type Zygosity string

const (
	// HeterozygousPotential means the parents carry different genotypes
	HeterozygousPotential Zygosity = "HETEROZYGOUS_POTENTIAL"
	// HomozygousStable means the parents share the same genotype
	HomozygousStable Zygosity = "HOMOZYGOUS_STABLE"
	// Unresolved means at least one genotype is missing or unrecognized
	Unresolved Zygosity = "UNRESOLVED"
)

// MatchedPair joins one Parent A marker and one Parent B marker sharing a
// marker id
type MatchedPair struct {
	A marker.Record `json:"a"`
	B marker.Record `json:"b"`

	// ChromosomeMismatch is set when the parents disagree on the marker's
	// chromosome. The pair is still classified; A's chromosome is canonical.
	ChromosomeMismatch bool `json:"chromosome_mismatch,omitempty"`
}

// ClassifiedPair is a matched pair with its zygosity classification
type ClassifiedPair struct {
	MatchedPair
	Class Zygosity `json:"class"`
}

// Alignment is the result of joining two parents' marker sets by marker id
type Alignment struct {
	Matched     []MatchedPair       `json:"matched"`
	UnmatchedA  []marker.Record     `json:"unmatched_a,omitempty"`
	UnmatchedB  []marker.Record     `json:"unmatched_b,omitempty"`
	Diagnostics []marker.Diagnostic `json:"diagnostics,omitempty"`
}

// Counts holds totals for each zygosity classification
type Counts struct {
	Heterozygous int `json:"heterozygous_potential"`
	Homozygous   int `json:"homozygous_stable"`
	Unresolved   int `json:"unresolved"`
}

// Total returns the number of classified pairs
func (c Counts) Total() int {
	return c.Heterozygous + c.Homozygous + c.Unresolved
}

func (c *Counts) add(z Zygosity) {
	switch z {
	case HeterozygousPotential:
		c.Heterozygous++
	case HomozygousStable:
		c.Homozygous++
	default:
		c.Unresolved++
	}
}

// ChromosomeSummary aggregates classification counts for one chromosome
type ChromosomeSummary struct {
	Chromosome string `json:"chromosome"`
	Counts
}

// Totals counts matched and unmatched markers across both parents
type Totals struct {
	Matched    int `json:"matched"`
	UnmatchedA int `json:"unmatched_a"`
	UnmatchedB int `json:"unmatched_b"`
}

// VigorScore is the coarse hybrid vigor prediction for the cross
type VigorScore string

const (
	VigorHigh   VigorScore = "High"
	VigorMedium VigorScore = "Medium"
	VigorLow    VigorScore = "Low"
)

// Report is the complete result of one comparison request
type Report struct {
	StrainA     string              `json:"strain_a"`
	StrainB     string              `json:"strain_b"`
	GeneratedAt time.Time           `json:"generated_at"`
	Totals      Totals              `json:"totals"`
	Counts      Counts              `json:"counts"`
	VigorScore  VigorScore          `json:"vigor_score"`
	Chromosomes []ChromosomeSummary `json:"chromosomes,omitempty"`
	Pairs       []ClassifiedPair    `json:"pairs,omitempty"`
	UnmatchedA  []marker.Record     `json:"unmatched_a,omitempty"`
	UnmatchedB  []marker.Record     `json:"unmatched_b,omitempty"`
	Diagnostics []marker.Diagnostic `json:"diagnostics,omitempty"`
}
