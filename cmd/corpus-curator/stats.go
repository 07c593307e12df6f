// Copyright OpenLit Labs, 2026. All rights reserved.

package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/openlit/corpus-curator/internal/analyze"
	"github.com/openlit/corpus-curator/internal/export"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print summary statistics for the labeled corpus",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	corpusFile, _ := cmd.Flags().GetString("corpus")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	records, err := export.ReadCorpusJSON(corpusFile)
	if err != nil {
		return err
	}

	summary := analyze.Summarize(records)
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}

	analyze.FormatTable(summary, os.Stdout)
	return nil
}

func init() {
	statsCmd.Flags().String("corpus", "corpus.json", "labeled corpus file")
	statsCmd.Flags().Bool("json", false, "output statistics as JSON")

	rootCmd.AddCommand(statsCmd)
}
