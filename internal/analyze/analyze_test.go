// Copyright OpenLit Labs, 2026. All rights reserved.

package analyze

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/openlit/corpus-curator/pkg/types"
)

func yearPtr(y int) *int { return &y }

func strPtr(s string) *string { return &s }

func sampleCorpus() []types.LabeledRecord {
	return []types.LabeledRecord{
		{
			Record: types.Record{
				ID: "r1", Year: yearPtr(1895),
				Journal: strPtr("Journal A"), Country: strPtr("United Kingdom"),
				DOI: strPtr("10.1/1"), FulltextLinks: []string{"https://example.org/1.pdf"},
				Keywords: []string{"wilde"},
			},
			Era: types.EraEarly, Medium: types.MediumAcademicJournal,
		},
		{
			Record: types.Record{
				ID: "r2", Year: yearPtr(1922),
				Journal: strPtr("Journal A"), Country: strPtr("United States"),
				Keywords: []string{},
			},
			Era: types.EraHigh, Medium: types.MediumAcademicJournal,
		},
		{
			Record: types.Record{
				ID: "r3", Year: yearPtr(1948),
				Journal: strPtr("Journal B"), Country: strPtr("United Kingdom"),
				DOI: strPtr("10.1/3"), Keywords: []string{},
			},
			Era: types.EraLate, Medium: types.MediumOther,
		},
		{
			Record: types.Record{ID: "r4", Keywords: []string{}},
			Era:    types.EraGeneral, Medium: types.MediumOther,
		},
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleCorpus())

	if s.TotalRecords != 4 {
		t.Errorf("TotalRecords = %d, want 4", s.TotalRecords)
	}
	if s.EraDistribution[types.EraEarly] != 1 || s.EraDistribution[types.EraGeneral] != 1 {
		t.Errorf("era distribution = %v", s.EraDistribution)
	}
	if s.MediumDistribution[types.MediumAcademicJournal] != 2 || s.MediumDistribution[types.MediumOther] != 2 {
		t.Errorf("medium distribution = %v", s.MediumDistribution)
	}
	if s.YearRange == nil || s.YearRange.Earliest != 1895 || s.YearRange.Latest != 1948 {
		t.Errorf("year range = %+v, want 1895-1948", s.YearRange)
	}
	if s.CountriesRepresented != 2 {
		t.Errorf("countries = %d, want 2", s.CountriesRepresented)
	}
	if s.JournalsRepresented != 2 {
		t.Errorf("journals = %d, want 2", s.JournalsRepresented)
	}
	if s.RecordsWithDOI != 2 {
		t.Errorf("with DOI = %d, want 2", s.RecordsWithDOI)
	}
	if s.RecordsWithFullText != 1 {
		t.Errorf("with full text = %d, want 1", s.RecordsWithFullText)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.TotalRecords != 0 {
		t.Errorf("TotalRecords = %d, want 0", s.TotalRecords)
	}
	if s.YearRange != nil {
		t.Errorf("YearRange = %+v, want nil", s.YearRange)
	}
}

func TestBuildReport(t *testing.T) {
	corpus := sampleCorpus()
	src := types.SourceConfig{Database: "DOAJ (Directory of Open Access Journals)", Query: "modernism British"}
	at := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)

	rep := BuildReport(corpus, src, at)

	if rep.Metadata.Database != src.Database || rep.Metadata.SearchQuery != src.Query {
		t.Errorf("metadata provenance = %+v", rep.Metadata)
	}
	if !rep.Metadata.ExtractionDate.Equal(at) {
		t.Errorf("extraction date = %v, want %v", rep.Metadata.ExtractionDate, at)
	}
	if rep.Metadata.RecordsAnalyzed != 4 {
		t.Errorf("records analyzed = %d, want 4", rep.Metadata.RecordsAnalyzed)
	}

	// Grouping partitions the corpus.
	groupTotal := 0
	for _, recs := range rep.ByEra {
		groupTotal += len(recs)
	}
	if groupTotal != len(corpus) {
		t.Errorf("by-era total = %d, want %d", groupTotal, len(corpus))
	}

	if len(rep.TextAnalysis.Abstracts) != 4 || len(rep.TextAnalysis.Keywords) != 4 {
		t.Errorf("text views = %d abstracts, %d keywords, want 4 each",
			len(rep.TextAnalysis.Abstracts), len(rep.TextAnalysis.Keywords))
	}
	if len(rep.TextAnalysis.FullTextAvailable) != 1 {
		t.Errorf("full text available = %d, want 1", len(rep.TextAnalysis.FullTextAvailable))
	}
}

func TestWriteReport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "analysis.json")

	rep := BuildReport(sampleCorpus(), types.SourceConfig{Database: "DOAJ"}, time.Now().UTC())
	if err := WriteReport(path, rep); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var parsed map[string]json.RawMessage
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}
	for _, key := range []string{"metadata", "summary_statistics", "organized_by_era", "organized_by_medium", "text_analysis_ready"} {
		if _, ok := parsed[key]; !ok {
			t.Errorf("report missing top-level key %q", key)
		}
	}
}

func TestFormatTable(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(Summarize(sampleCorpus()), &buf)

	out := buf.String()
	for _, want := range []string{
		"Total records: 4",
		string(types.EraEarly),
		string(types.MediumAcademicJournal),
		"1895-1948",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
