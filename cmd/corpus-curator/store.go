// Copyright OpenLit Labs, 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/openlit/corpus-curator/internal/export"
	"github.com/openlit/corpus-curator/internal/store"
	"github.com/openlit/corpus-curator/pkg/types"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the SQLite corpus store (ingest, query)",
}

// --- ingest subcommand ---

var storeIngestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Load the labeled corpus into the SQLite store",
	Long: `Ingest upserts every record of the labeled corpus into a local SQLite
database with full-text indexing over titles, abstracts, and keywords.
Re-running ingest replaces records that already exist.`,
	RunE: runStoreIngest,
}

func runStoreIngest(cmd *cobra.Command, args []string) error {
	corpusFile, _ := cmd.Flags().GetString("corpus")

	records, err := export.ReadCorpusJSON(corpusFile)
	if err != nil {
		return err
	}

	s, err := store.Open(storeConfig(cmd))
	if err != nil {
		return err
	}
	defer s.Close()

	summary, err := s.Ingest(context.Background(), records)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "inserted: %d, updated: %d\n", summary.Inserted, summary.Updated)
	return nil
}

// --- query subcommand ---

var storeQueryCmd = &cobra.Command{
	Use:   "query [text]",
	Short: "Query the corpus store with filters and full-text search",
	Long: `Query searches the corpus store. Provide free text for FTS5 full-text
search over titles, abstracts, and keywords, and/or restrict results with
--era and --medium. Results come back in corpus order.`,
	RunE: runStoreQuery,
}

func runStoreQuery(cmd *cobra.Command, args []string) error {
	s, err := store.Open(storeConfig(cmd))
	if err != nil {
		return err
	}
	defer s.Close()

	opts := store.QueryOptions{
		Era:    types.Era(stringFlag(cmd, "era")),
		Medium: types.Medium(stringFlag(cmd, "medium")),
	}
	if len(args) > 0 {
		opts.Text = strings.Join(args, " ")
	}
	opts.MaxResults, _ = cmd.Flags().GetInt("max-results")

	if opts.IsEmpty() {
		return fmt.Errorf("query or filter required: provide search text, --era, or --medium")
	}

	records, err := s.Retrieve(context.Background(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(records) == 0 {
		fmt.Println("No records found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-60s  %-6s  %-38s  %s\n",
		"Rank", "Title", "Year", "Era", "Medium")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 120))
	for i, r := range records {
		title := r.Title
		if len(title) > 60 {
			title = title[:57] + "..."
		}
		year := ""
		if r.Year != nil {
			year = fmt.Sprintf("%d", *r.Year)
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-60s  %-6s  %-38s  %s\n",
			i+1, title, year, r.Era, r.Medium)
	}
	fmt.Fprintf(os.Stdout, "\n%d records\n", len(records))
	return nil
}

func storeConfig(cmd *cobra.Command) types.StoreConfig {
	corpusDir, _ := cmd.Flags().GetString("corpus-dir")
	if corpusDir == "" {
		corpusDir = viper.GetString("store.corpus_dir")
	}
	return types.StoreConfig{
		CorpusDir:  corpusDir,
		MaxResults: viper.GetInt("store.max_results"),
	}
}

func stringFlag(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

func init() {
	storeIngestCmd.Flags().String("corpus", "corpus.json", "labeled corpus file")
	storeIngestCmd.Flags().String("corpus-dir", "", "store directory (default from config: corpus)")

	storeQueryCmd.Flags().String("era", "", "filter by era category")
	storeQueryCmd.Flags().String("medium", "", "filter by medium category")
	storeQueryCmd.Flags().Int("max-results", 0, "maximum number of results (default from config)")
	storeQueryCmd.Flags().Bool("json", false, "output results as JSON")
	storeQueryCmd.Flags().String("corpus-dir", "", "store directory (default from config: corpus)")

	storeCmd.AddCommand(storeIngestCmd)
	storeCmd.AddCommand(storeQueryCmd)
	rootCmd.AddCommand(storeCmd)
}
