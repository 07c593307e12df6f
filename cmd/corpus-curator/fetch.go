// Copyright OpenLit Labs, 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/openlit/corpus-curator/internal/export"
	"github.com/openlit/corpus-curator/internal/fulltext"
	"github.com/openlit/corpus-curator/pkg/types"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download full texts for records that provide links",
	Long: `Fetch downloads every record's full-text links into a local directory,
skipping files that already exist. Individual download failures do not
abort the batch; a summary is printed at the end.`,
	RunE: runFetch,
}

func runFetch(cmd *cobra.Command, args []string) error {
	corpusFile, _ := cmd.Flags().GetString("corpus")

	records, err := export.ReadCorpusJSON(corpusFile)
	if err != nil {
		return err
	}

	cfg := fetchConfig(cmd)
	client := &http.Client{Timeout: cfg.Timeout}

	result := fulltext.FetchBatch(client, records, cfg, os.Stdout)
	if result.HasFailures() {
		return fmt.Errorf("%d download(s) and %d record(s) failed", result.Failed, result.Errors)
	}
	return nil
}

func fetchConfig(cmd *cobra.Command) types.FetchConfig {
	dir, _ := cmd.Flags().GetString("dir")
	if dir == "" {
		dir = viper.GetString("fetch.fulltext_dir")
	}
	return types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("fetch.timeout"),
			UserAgent: viper.GetString("fetch.user_agent"),
		},
		FulltextDir:   dir,
		DownloadDelay: viper.GetDuration("fetch.download_delay"),
	}
}

func init() {
	fetchCmd.Flags().String("corpus", "corpus.json", "labeled corpus file")
	fetchCmd.Flags().String("dir", "", "download directory (default from config: fulltext)")

	rootCmd.AddCommand(fetchCmd)
}
