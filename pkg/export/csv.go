// Package export writes comparison reports as timestamped CSV artifacts and
// reads them back.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/andydoubleu/cannabis-heterosis/pkg/heterosis"
	"github.com/andydoubleu/cannabis-heterosis/pkg/marker"
)

// FormatVersion identifies the report CSV layout
const FormatVersion = "1"

// Status values for unmatched markers in the detail table. Matched markers
// carry their zygosity classification as the status.
const (
	StatusUnmatchedA = "UNMATCHED_A"
	StatusUnmatchedB = "UNMATCHED_B"
)

// Detail table columns
var detailHeader = []string{
	"Marker ID",
	"Chromosome",
	"Position",
	"Reference Allele",
	"Alternate Allele",
	"Genotype A",
	"Genotype B",
	"Status",
	"Note",
}

const timestampLayout = "20060102T150405"

// Filename builds the export filename for a report:
// <strainA>_vs_<strainB>_<timestamp>.csv, labels sanitized for filesystem and
// S3 key safety.
func Filename(report *heterosis.Report) string {
	return fmt.Sprintf("%s_vs_%s_%s.csv",
		sanitizeLabel(report.StrainA),
		sanitizeLabel(report.StrainB),
		report.GeneratedAt.UTC().Format(timestampLayout))
}

// sanitizeLabel keeps letters, digits, dot, dash and underscore; every other
// run of characters collapses to a single dash.
func sanitizeLabel(label string) string {
	var b strings.Builder
	lastDash := false
	for _, r := range label {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		return "strain"
	}
	return out
}

// WriteReport writes the full report to w: '#'-prefixed metadata lines, then
// the detail table with one row per matched and unmatched marker. Output is
// deterministic given an identical report.
func WriteReport(w io.Writer, report *heterosis.Report) error {
	meta := []struct {
		key   string
		value string
	}{
		{"Heterosis Comparison Report", "v" + FormatVersion},
		{"Strain A", report.StrainA},
		{"Strain B", report.StrainB},
		{"Generated", report.GeneratedAt.UTC().Format(time.RFC3339)},
		{"Matched", strconv.Itoa(report.Totals.Matched)},
		{"Unmatched A", strconv.Itoa(report.Totals.UnmatchedA)},
		{"Unmatched B", strconv.Itoa(report.Totals.UnmatchedB)},
		{"Heterozygous Potential", strconv.Itoa(report.Counts.Heterozygous)},
		{"Homozygous Stable", strconv.Itoa(report.Counts.Homozygous)},
		{"Unresolved", strconv.Itoa(report.Counts.Unresolved)},
		{"Hybrid Vigor", string(report.VigorScore)},
	}
	for _, m := range meta {
		if _, err := fmt.Fprintf(w, "# %s: %s\n", m.key, m.value); err != nil {
			return err
		}
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(detailHeader); err != nil {
		return err
	}

	for _, pair := range report.Pairs {
		note := ""
		if pair.ChromosomeMismatch {
			note = fmt.Sprintf("chromosome mismatch (parent B: %s)", pair.B.Chromosome)
		}
		if err := cw.Write(detailRow(pair.A, pair.A.Genotype, pair.B.Genotype, string(pair.Class), note)); err != nil {
			return err
		}
	}
	for _, rec := range report.UnmatchedA {
		if err := cw.Write(detailRow(rec, rec.Genotype, "", StatusUnmatchedA, "")); err != nil {
			return err
		}
	}
	for _, rec := range report.UnmatchedB {
		if err := cw.Write(detailRow(rec, "", rec.Genotype, StatusUnmatchedB, "")); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func detailRow(rec marker.Record, genotypeA, genotypeB, status, note string) []string {
	return []string{
		rec.MarkerID,
		rec.Chromosome,
		strconv.Itoa(rec.Position),
		rec.ReferenceAllele,
		rec.AlternateAllele,
		genotypeA,
		genotypeB,
		status,
		note,
	}
}

// EncodeReport renders the report CSV into memory
func EncodeReport(report *heterosis.Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteReport(&buf, report); err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}
	return buf.Bytes(), nil
}
