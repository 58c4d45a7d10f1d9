package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andydoubleu/cannabis-heterosis/pkg/marker"
)

var validateCmd = &cobra.Command{
	Use:   "validate <parent.csv>",
	Short: "Validate a single parent marker table",
	Long: `Validate one parent strain's marker table without running a comparison.

Checks that the header carries every required column and reports each
malformed data row. A missing column is fatal; malformed rows are only
diagnostics.

Required columns:
  Marker ID, Chromosome, Position, Reference Allele, Alternate Allele, Genotype

Examples:
  heterosis validate blue_dream.csv
  heterosis validate s3://genomics/markers/og_kush.csv.gz`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		parsed, err := loadMarkers(context.Background(), path)
		var schemaErr *marker.SchemaError
		if errors.As(err, &schemaErr) {
			return fmt.Errorf("%s failed schema validation: %w", path, schemaErr)
		}
		if err != nil {
			return fmt.Errorf("failed to validate %s: %w", path, err)
		}

		fmt.Printf("%s: %d valid markers, %d rows skipped\n",
			path, len(parsed.Records), len(parsed.Diagnostics))
		for _, d := range parsed.Diagnostics {
			fmt.Printf("  %s\n", d)
		}

		return nil
	},
}

func init() {
	validateCmd.Flags().StringVar(&awsRegion, "region", "",
		"AWS region for S3 paths (default: from AWS config)")
}
