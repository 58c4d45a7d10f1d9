package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "heterosis",
	Short: "Heterosis - hybrid vigor prediction from marker tables",
	Long: `Heterosis compares two parent strains' genome marker tables (CSV)
and predicts heterozygosity/homozygosity patterns in their progeny.

This tool provides commands for comparing two parent marker files,
validating a single marker file, and summarizing exported reports.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("heterosis version 0.1.0")
		fmt.Println("Hybrid vigor prediction for cannabis strain crosses")
	},
}
