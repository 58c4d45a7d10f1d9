package main

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/andydoubleu/cannabis-heterosis/pkg/export"
	"github.com/andydoubleu/cannabis-heterosis/pkg/heterosis"
	"github.com/andydoubleu/cannabis-heterosis/pkg/marker"
	"github.com/andydoubleu/cannabis-heterosis/pkg/storage"
)

var (
	strainA     string
	strainB     string
	exportDest  string
	compression string
	outFormat   string
	showRows    int
	awsRegion   string
)

var compareCmd = &cobra.Command{
	Use:   "compare <parentA.csv> <parentB.csv>",
	Short: "Compare two parent marker tables and predict progeny zygosity",
	Long: `Compare two parent strains' genome marker tables.

Markers are joined by Marker ID. Each matched marker is classified as
heterozygous potential (parents differ), homozygous stable (parents share
the genotype), or unresolved (missing genotype data). Counts are aggregated
overall and per chromosome, and a hybrid vigor score is derived from the
heterozygous share.

Inputs may be plain CSV, bgzip-compressed (.gz/.bgz), or zstd-compressed
(.zst), and may live on S3 (s3://bucket/key).

Export:
  With --export, a timestamped report CSV named
  <strainA>_vs_<strainB>_<timestamp>.csv is written under the given
  directory or S3 prefix. Re-running the comparison never overwrites an
  earlier export.

Examples:
  heterosis compare blue_dream.csv og_kush.csv
  heterosis compare blue_dream.csv og_kush.csv --strain-a "Blue Dream" --strain-b "OG Kush"
  heterosis compare a.csv.gz b.csv.zst --export reports/
  heterosis compare a.csv b.csv --export s3://genomics/reports --compression zstd
  heterosis compare a.csv b.csv --format json
  heterosis compare a.csv b.csv --show 20`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		pathA, pathB := args[0], args[1]

		if strainA == "" {
			strainA = strainLabel(pathA)
		}
		if strainB == "" {
			strainB = strainLabel(pathB)
		}
		if compression != storage.CompressionNone && compression != storage.CompressionZstd {
			return fmt.Errorf("unsupported compression %q (use zstd or none)", compression)
		}

		parsedA, err := loadMarkers(ctx, pathA)
		if err != nil {
			return fmt.Errorf("parent A (%s): %w", pathA, err)
		}
		parsedB, err := loadMarkers(ctx, pathB)
		if err != nil {
			return fmt.Errorf("parent B (%s): %w", pathB, err)
		}

		alignment := heterosis.Align(parsedA.Records, parsedB.Records)
		report := heterosis.BuildReport(strainA, strainB, alignment, time.Now())

		switch outFormat {
		case "json":
			if err := printJSON(report, parsedA, parsedB); err != nil {
				return err
			}
		case "text":
			printReport(report, parsedA, parsedB)
		default:
			return fmt.Errorf("unsupported output format %q (use text or json)", outFormat)
		}

		if exportDest != "" {
			location, err := exportReport(ctx, report)
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}
			fmt.Printf("\nReport written to %s\n", location)
		}

		return nil
	},
}

func init() {
	compareCmd.Flags().StringVar(&strainA, "strain-a", "",
		"Label for parent strain A (default: input file basename)")
	compareCmd.Flags().StringVar(&strainB, "strain-b", "",
		"Label for parent strain B (default: input file basename)")
	compareCmd.Flags().StringVar(&exportDest, "export", "",
		"Directory or s3://bucket/prefix for the timestamped report CSV")
	compareCmd.Flags().StringVar(&compression, "compression", "none",
		"Report compression: none, zstd")
	compareCmd.Flags().StringVar(&outFormat, "format", "text",
		"Output format: text, json")
	compareCmd.Flags().IntVar(&showRows, "show", 0,
		"Number of detail rows to display (0 for none)")
	compareCmd.Flags().StringVar(&awsRegion, "region", "",
		"AWS region for S3 paths (default: from AWS config)")
}

// strainLabel derives a default strain label from an input path
func strainLabel(path string) string {
	base := filepath.Base(path)
	for _, suffix := range []string{".zst", ".gz", ".bgz", ".csv"} {
		base = strings.TrimSuffix(base, suffix)
	}
	return base
}

// loadMarkers reads one parent marker table from local disk or S3,
// decompressing by extension, and parses it
func loadMarkers(ctx context.Context, path string) (*marker.ParseResult, error) {
	data, err := storage.Read(ctx, path, awsRegion)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	data, err = storage.Decompress(path, data)
	if err != nil {
		return nil, err
	}

	return marker.Parse(strings.NewReader(string(data)))
}

// exportReport encodes, optionally compresses, and writes the report to the
// export destination, returning the artifact's full location
func exportReport(ctx context.Context, report *heterosis.Report) (string, error) {
	data, err := export.EncodeReport(report)
	if err != nil {
		return "", err
	}

	data, err = storage.Compress(data, compression)
	if err != nil {
		return "", err
	}
	filename := export.Filename(report) + storage.Suffix(compression)

	backend, err := storage.New(ctx, exportDest, awsRegion)
	if err != nil {
		return "", err
	}
	if err := backend.WriteFile(ctx, filename, data); err != nil {
		return "", err
	}

	if backend.IsS3() {
		return backend.BasePath() + "/" + filename, nil
	}
	return filepath.Join(backend.BasePath(), filename), nil
}

// compareOutput is the JSON rendering of one comparison, including per-file
// parse diagnostics alongside the report
type compareOutput struct {
	*heterosis.Report
	ParseDiagnosticsA []marker.Diagnostic `json:"parse_diagnostics_a,omitempty"`
	ParseDiagnosticsB []marker.Diagnostic `json:"parse_diagnostics_b,omitempty"`
}

func printJSON(report *heterosis.Report, parsedA, parsedB *marker.ParseResult) error {
	out, err := json.MarshalIndent(compareOutput{
		Report:            report,
		ParseDiagnosticsA: parsedA.Diagnostics,
		ParseDiagnosticsB: parsedB.Diagnostics,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func printReport(report *heterosis.Report, parsedA, parsedB *marker.ParseResult) {
	fmt.Println("===========================================")
	fmt.Println("Heterosis Comparison Report")
	fmt.Println("===========================================")
	fmt.Println()

	fmt.Printf("Strain A: %s (%d markers, %d rows skipped)\n",
		report.StrainA, len(parsedA.Records), len(parsedA.Diagnostics))
	fmt.Printf("Strain B: %s (%d markers, %d rows skipped)\n",
		report.StrainB, len(parsedB.Records), len(parsedB.Diagnostics))
	fmt.Printf("Generated: %s\n", report.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Println()

	fmt.Println("Markers:")
	fmt.Printf("  Matched: %d\n", report.Totals.Matched)
	fmt.Printf("  Only in A: %d\n", report.Totals.UnmatchedA)
	fmt.Printf("  Only in B: %d\n", report.Totals.UnmatchedB)
	fmt.Println()

	fmt.Println("Predicted progeny zygosity:")
	for _, slice := range report.ProportionSlices() {
		fmt.Printf("  %s: %d (%.1f%%)\n", slice.Label, slice.Count, slice.Percent)
	}
	fmt.Printf("  Hybrid vigor score: %s\n", report.VigorScore)
	fmt.Println()

	if len(report.Chromosomes) > 0 {
		fmt.Println("Per chromosome:")
		for _, chrom := range report.ChromosomeBars() {
			fmt.Printf("  %-12s %4d het / %4d hom / %4d unresolved\n",
				chrom.Chromosome, chrom.Heterozygous, chrom.Homozygous, chrom.Unresolved)
		}
		fmt.Println()
	}

	if showRows > 0 {
		printDetail(report)
	}

	printDiagnostics("Parent A diagnostics", parsedA.Diagnostics)
	printDiagnostics("Parent B diagnostics", parsedB.Diagnostics)
	printDiagnostics("Alignment diagnostics", report.Diagnostics)
}

func printDetail(report *heterosis.Report) {
	numToShow := showRows
	if numToShow > len(report.Pairs) {
		numToShow = len(report.Pairs)
	}

	fmt.Printf("%-16s %-10s %10s %-8s %-8s %s\n",
		"Marker ID", "Chrom", "Position", "Geno A", "Geno B", "Class")
	fmt.Println("------------------------------------------------------------------------")
	for i := 0; i < numToShow; i++ {
		pair := report.Pairs[i]
		fmt.Printf("%-16s %-10s %10d %-8s %-8s %s\n",
			pair.A.MarkerID,
			pair.A.Chromosome,
			pair.A.Position,
			pair.A.Genotype,
			pair.B.Genotype,
			pair.Class)
	}
	fmt.Println()
}

func printDiagnostics(title string, diags []marker.Diagnostic) {
	if len(diags) == 0 {
		return
	}
	fmt.Printf("%s (%d):\n", title, len(diags))
	for _, d := range diags {
		fmt.Printf("  %s\n", d)
	}
	fmt.Println()
}
