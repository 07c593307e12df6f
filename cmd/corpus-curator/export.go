// Copyright OpenLit Labs, 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/openlit/corpus-curator/internal/analyze"
	"github.com/openlit/corpus-curator/internal/export"
	"github.com/openlit/corpus-curator/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Materialize the labeled corpus as CSV, per-era JSON, and reports",
	Long: `Export reads the labeled corpus JSON and writes the interchange files:
an analysis CSV (flattened, one row per record), one JSON file per era,
and a comprehensive analysis report. With --csl it also writes a CSL-YAML
bibliography for Pandoc and reference managers.`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	corpusFile, _ := cmd.Flags().GetString("corpus")
	withCSL, _ := cmd.Flags().GetBool("csl")

	outDir, _ := cmd.Flags().GetString("out-dir")
	if outDir == "" {
		outDir = viper.GetString("export.output_dir")
	}

	records, err := export.ReadCorpusJSON(corpusFile)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	written := []string{}

	csvPath := filepath.Join(outDir, "corpus.csv")
	if err := export.WriteCSVFile(csvPath, records); err != nil {
		return err
	}
	written = append(written, csvPath)

	eraPaths, err := export.WriteEraFiles(outDir, records)
	if err != nil {
		return err
	}
	written = append(written, eraPaths...)

	src := types.SourceConfig{
		Database: viper.GetString("source.database"),
		Query:    viper.GetString("source.query"),
	}
	report := analyze.BuildReport(records, src, time.Now().UTC())
	reportPath := filepath.Join(outDir, "analysis.json")
	if err := analyze.WriteReport(reportPath, report); err != nil {
		return err
	}
	written = append(written, reportPath)

	if withCSL {
		cslPath := filepath.Join(outDir, "corpus.csl.yaml")
		if err := export.WriteCSLFile(cslPath, records); err != nil {
			return err
		}
		written = append(written, cslPath)
	}

	fmt.Fprintf(os.Stdout, "Exported %d records:\n", len(records))
	for _, p := range written {
		fmt.Fprintf(os.Stdout, "  %s\n", p)
	}
	return nil
}

func init() {
	exportCmd.Flags().String("corpus", "corpus.json", "labeled corpus file")
	exportCmd.Flags().String("out-dir", "", "output directory (default from config: exports)")
	exportCmd.Flags().Bool("csl", false, "also write a CSL-YAML bibliography")

	rootCmd.AddCommand(exportCmd)
}
