// Copyright OpenLit Labs, 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openlit/corpus-curator/internal/analyze"
	"github.com/openlit/corpus-curator/internal/classify"
	"github.com/openlit/corpus-curator/internal/doaj"
	"github.com/openlit/corpus-curator/internal/export"
	"github.com/openlit/corpus-curator/pkg/types"
)

var labelCmd = &cobra.Command{
	Use:   "label",
	Short: "Classify a raw directory response into a labeled corpus",
	Long: `Label reads a raw DOAJ search response file, assigns each record an era
(from its publication year) and a publication medium (from its journal and
publisher metadata), and writes the labeled corpus as a JSON array.

Classification is total: records without a year or a recognizable venue
fall into the general categories rather than being dropped.`,
	RunE: runLabel,
}

func runLabel(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")

	resp, err := doaj.ReadFile(input)
	if err != nil {
		return err
	}

	labeled := classify.LabelAll(resp.Records())
	if err := export.WriteCorpusJSON(output, labeled); err != nil {
		return err
	}

	summary := analyze.Summarize(labeled)
	fmt.Fprintf(os.Stdout, "Labeled %d records (directory reported %d)\n", len(labeled), resp.Total)
	for _, era := range types.Eras() {
		fmt.Fprintf(os.Stdout, "  %-40s %d\n", era, summary.EraDistribution[era])
	}
	fmt.Fprintf(os.Stdout, "Wrote %s\n", output)
	return nil
}

func init() {
	labelCmd.Flags().String("input", "modernism_search.json", "raw directory response file")
	labelCmd.Flags().String("output", "corpus.json", "labeled corpus output file")

	rootCmd.AddCommand(labelCmd)
}
