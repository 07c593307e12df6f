// Copyright OpenLit Labs, 2026. All rights reserved.

// Package main is the entry point for the corpus-curator CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the corpus-curator CLI.
var rootCmd = &cobra.Command{
	Use:   "corpus-curator",
	Short: "Curate a labeled open-access bibliographic corpus",
	Long: `corpus-curator turns a raw search response exported from an open-access
directory (DOAJ) into a labeled, analysis-ready corpus. Each record is
classified by modernist era and publication medium, then materialized as
JSON, CSV, and CSL-YAML exports, persisted in a local SQLite store, and
optionally enriched with downloaded full texts.

Each stage is a subcommand: label, export, stats, store, and fetch.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./corpus-curator.yaml or ~/.config/corpus-curator/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("corpus-curator")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "corpus-curator"))
		}
	}

	viper.SetEnvPrefix("CORPUS_CURATOR")
	viper.AutomaticEnv()

	viper.SetDefault("source.database", "DOAJ (Directory of Open Access Journals)")
	viper.SetDefault("source.query", "modernism British")
	viper.SetDefault("export.output_dir", "exports")
	viper.SetDefault("store.corpus_dir", "corpus")
	viper.SetDefault("store.max_results", 20)
	viper.SetDefault("fetch.fulltext_dir", "fulltext")
	viper.SetDefault("fetch.download_delay", "1s")
	viper.SetDefault("fetch.timeout", "60s")
	viper.SetDefault("fetch.user_agent", "corpus-curator/0.1")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
