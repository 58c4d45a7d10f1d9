package main

import (
	"bytes"
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andydoubleu/cannabis-heterosis/pkg/export"
	"github.com/andydoubleu/cannabis-heterosis/pkg/storage"
)

var summaryCmd = &cobra.Command{
	Use:   "summary <report.csv>",
	Short: "Show the summary block of an exported report",
	Long: `Re-read an exported comparison report and print its summary.

The summary is recovered from the report's metadata block and cross-checked
against a recount of the detail rows. Reports may be local or on S3, plain
or compressed (.zst, .gz).

Examples:
  heterosis summary Blue-Dream_vs_OG-Kush_20260823T101500.csv
  heterosis summary s3://genomics/reports/Blue-Dream_vs_OG-Kush_20260823T101500.csv.zst`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		path := args[0]

		data, err := storage.Read(ctx, path, awsRegion)
		if err != nil {
			return fmt.Errorf("failed to read report: %w", err)
		}
		data, err = storage.Decompress(path, data)
		if err != nil {
			return err
		}

		summary, err := export.ReadReport(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("failed to parse report %s: %w", path, err)
		}

		fmt.Println("===========================================")
		fmt.Println("Exported Report Summary")
		fmt.Println("===========================================")
		fmt.Println()
		fmt.Printf("Strain A: %s\n", summary.StrainA)
		fmt.Printf("Strain B: %s\n", summary.StrainB)
		fmt.Printf("Generated: %s\n", summary.GeneratedAt.Format("2006-01-02 15:04:05"))
		fmt.Println()
		fmt.Println("Markers:")
		fmt.Printf("  Matched: %d\n", summary.Totals.Matched)
		fmt.Printf("  Only in A: %d\n", summary.Totals.UnmatchedA)
		fmt.Printf("  Only in B: %d\n", summary.Totals.UnmatchedB)
		fmt.Println()
		fmt.Println("Predicted progeny zygosity:")
		fmt.Printf("  Heterozygous potential: %d\n", summary.Counts.Heterozygous)
		fmt.Printf("  Homozygous stable: %d\n", summary.Counts.Homozygous)
		fmt.Printf("  Unresolved: %d\n", summary.Counts.Unresolved)
		fmt.Printf("  Hybrid vigor score: %s\n", summary.VigorScore)

		if !summary.Consistent() {
			fmt.Println()
			fmt.Println("WARNING: detail rows disagree with the metadata block:")
			fmt.Printf("  rows: matched %d, only in A %d, only in B %d\n",
				summary.RowTotals.Matched, summary.RowTotals.UnmatchedA, summary.RowTotals.UnmatchedB)
			fmt.Printf("  rows: het %d, hom %d, unresolved %d\n",
				summary.RowCounts.Heterozygous, summary.RowCounts.Homozygous, summary.RowCounts.Unresolved)
		}

		return nil
	},
}

func init() {
	summaryCmd.Flags().StringVar(&awsRegion, "region", "",
		"AWS region for S3 paths (default: from AWS config)")
}
