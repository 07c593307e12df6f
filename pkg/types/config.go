// Copyright OpenLit Labs, 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "corpus-curator/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SourceConfig describes the provenance of the raw directory response.
// The values appear in the metadata envelope of the analysis report.
type SourceConfig struct {
	// Database is the human-readable name of the source directory
	// (default "DOAJ (Directory of Open Access Journals)").
	Database string `json:"database" yaml:"database"`

	// Query is the search query that produced the raw response.
	Query string `json:"query" yaml:"query"`
}

// ExportConfig holds settings for the export stage.
type ExportConfig struct {
	// OutputDir is the directory export files are written to.
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// StoreConfig holds settings for the SQLite corpus store.
type StoreConfig struct {
	// CorpusDir is the base directory for the store (contains corpus.db).
	CorpusDir string `json:"corpus_dir" yaml:"corpus_dir"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// FetchConfig holds settings for the full-text acquisition stage.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// FulltextDir is the directory downloaded full texts are written to.
	FulltextDir string `json:"fulltext_dir" yaml:"fulltext_dir"`

	// DownloadDelay is the delay between consecutive downloads (default 1s).
	DownloadDelay time.Duration `json:"download_delay" yaml:"download_delay"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Source SourceConfig `json:"source" yaml:"source"`
	Export ExportConfig `json:"export" yaml:"export"`
	Store  StoreConfig  `json:"store" yaml:"store"`
	Fetch  FetchConfig  `json:"fetch" yaml:"fetch"`
}
