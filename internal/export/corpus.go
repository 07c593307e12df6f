// Copyright OpenLit Labs, 2026. All rights reserved.

// Package export materializes a labeled corpus into interchange formats:
// the round-trippable corpus JSON, per-era JSON files, an analysis CSV,
// and a CSL-YAML bibliography.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/openlit/corpus-curator/pkg/types"
)

// WriteCorpusJSON writes the labeled records as an indented JSON array.
// The output is exactly invertible: ReadCorpusJSON on the written file
// yields a deep-equal record sequence.
func WriteCorpusJSON(path string, records []types.LabeledRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling corpus: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// ReadCorpusJSON loads a labeled corpus written by WriteCorpusJSON.
func ReadCorpusJSON(path string) ([]types.LabeledRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading corpus file: %w", err)
	}
	var records []types.LabeledRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing corpus file %s: %w", path, err)
	}
	return records, nil
}

// EraFile is the envelope for a per-era export file.
type EraFile struct {
	Era         types.Era             `json:"era"`
	RecordCount int                   `json:"record_count"`
	Records     []types.LabeledRecord `json:"records"`
}

// WriteEraFiles writes one JSON file per era into dir, named
// era_<slug>.json. Every era gets a file even when empty, and since
// classification is total the four files partition the corpus. Returns
// the written paths in canonical era order.
func WriteEraFiles(dir string, records []types.LabeledRecord) ([]string, error) {
	byEra := make(map[types.Era][]types.LabeledRecord, len(types.Eras()))
	for _, era := range types.Eras() {
		byEra[era] = []types.LabeledRecord{}
	}
	for _, r := range records {
		byEra[r.Era] = append(byEra[r.Era], r)
	}

	var paths []string
	for _, era := range types.Eras() {
		ef := EraFile{
			Era:         era,
			RecordCount: len(byEra[era]),
			Records:     byEra[era],
		}
		data, err := json.MarshalIndent(ef, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling era file for %s: %w", era, err)
		}
		path := filepath.Join(dir, "era_"+era.Slug()+".json")
		if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
