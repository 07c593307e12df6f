// Copyright OpenLit Labs, 2026. All rights reserved.

// Package analyze computes summary statistics over a labeled corpus and
// builds the comprehensive analysis report. The report is a one-way
// artifact for downstream tooling; the round-trippable representation of
// the corpus is the export package's corpus JSON.
package analyze

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/openlit/corpus-curator/pkg/types"
)

// YearRange holds the earliest and latest parseable publication years.
type YearRange struct {
	Earliest int `json:"earliest"`
	Latest   int `json:"latest"`
}

// Summary holds corpus-level distribution statistics.
type Summary struct {
	TotalRecords       int                  `json:"total_records"`
	EraDistribution    map[types.Era]int    `json:"era_distribution"`
	MediumDistribution map[types.Medium]int `json:"medium_distribution"`

	// YearRange is nil when no record carries a parseable year.
	YearRange *YearRange `json:"year_range"`

	CountriesRepresented int `json:"countries_represented"`
	JournalsRepresented  int `json:"journals_represented"`
	RecordsWithFullText  int `json:"records_with_full_text"`
	RecordsWithDOI       int `json:"records_with_doi"`
}

// Summarize computes the summary statistics for a labeled corpus.
func Summarize(records []types.LabeledRecord) Summary {
	s := Summary{
		TotalRecords:       len(records),
		EraDistribution:    make(map[types.Era]int),
		MediumDistribution: make(map[types.Medium]int),
	}

	countries := make(map[string]struct{})
	journals := make(map[string]struct{})

	for _, r := range records {
		s.EraDistribution[r.Era]++
		s.MediumDistribution[r.Medium]++

		if r.Year != nil {
			y := *r.Year
			if s.YearRange == nil {
				s.YearRange = &YearRange{Earliest: y, Latest: y}
			} else {
				if y < s.YearRange.Earliest {
					s.YearRange.Earliest = y
				}
				if y > s.YearRange.Latest {
					s.YearRange.Latest = y
				}
			}
		}

		if r.Country != nil {
			countries[*r.Country] = struct{}{}
		}
		if r.Journal != nil {
			journals[*r.Journal] = struct{}{}
		}
		if len(r.FulltextLinks) > 0 {
			s.RecordsWithFullText++
		}
		if r.DOI != nil {
			s.RecordsWithDOI++
		}
	}

	s.CountriesRepresented = len(countries)
	s.JournalsRepresented = len(journals)
	return s
}

// Metadata is the provenance envelope of the analysis report.
type Metadata struct {
	ExtractionDate  time.Time `json:"extraction_date"`
	Database        string    `json:"database"`
	SearchQuery     string    `json:"search_query"`
	RecordsAnalyzed int       `json:"records_analyzed"`
	Categories      struct {
		ByEra    []types.Era    `json:"by_era"`
		ByMedium []types.Medium `json:"by_medium"`
	} `json:"categories"`
}

// AbstractEntry is a text-analysis view of one record's abstract.
type AbstractEntry struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Abstract string    `json:"abstract"`
	Era      types.Era `json:"era"`
	Year     *int      `json:"year"`
}

// KeywordEntry is a text-analysis view of one record's keywords.
type KeywordEntry struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Keywords []string  `json:"keywords"`
	Era      types.Era `json:"era"`
	Year     *int      `json:"year"`
}

// TextAnalysisViews groups the pre-sliced inputs for downstream text tools.
type TextAnalysisViews struct {
	Abstracts         []AbstractEntry       `json:"all_abstracts"`
	Keywords          []KeywordEntry        `json:"all_keywords"`
	FullTextAvailable []types.LabeledRecord `json:"full_text_available"`
}

// Report is the comprehensive analysis document.
type Report struct {
	Metadata          Metadata                               `json:"metadata"`
	SummaryStatistics Summary                                `json:"summary_statistics"`
	ByEra             map[types.Era][]types.LabeledRecord    `json:"organized_by_era"`
	ByMedium          map[types.Medium][]types.LabeledRecord `json:"organized_by_medium"`
	TextAnalysis      TextAnalysisViews                      `json:"text_analysis_ready"`
}

// BuildReport assembles the analysis report for a labeled corpus. The
// extraction timestamp is a parameter so callers (and tests) control it.
func BuildReport(records []types.LabeledRecord, src types.SourceConfig, extractedAt time.Time) Report {
	rep := Report{
		SummaryStatistics: Summarize(records),
		ByEra:             make(map[types.Era][]types.LabeledRecord),
		ByMedium:          make(map[types.Medium][]types.LabeledRecord),
	}

	rep.Metadata = Metadata{
		ExtractionDate:  extractedAt,
		Database:        src.Database,
		SearchQuery:     src.Query,
		RecordsAnalyzed: len(records),
	}
	rep.Metadata.Categories.ByEra = types.Eras()
	rep.Metadata.Categories.ByMedium = types.Mediums()

	views := TextAnalysisViews{
		Abstracts:         make([]AbstractEntry, 0, len(records)),
		Keywords:          make([]KeywordEntry, 0, len(records)),
		FullTextAvailable: []types.LabeledRecord{},
	}

	for _, r := range records {
		rep.ByEra[r.Era] = append(rep.ByEra[r.Era], r)
		rep.ByMedium[r.Medium] = append(rep.ByMedium[r.Medium], r)

		views.Abstracts = append(views.Abstracts, AbstractEntry{
			ID: r.ID, Title: r.Title, Abstract: r.AbstractText(), Era: r.Era, Year: r.Year,
		})
		views.Keywords = append(views.Keywords, KeywordEntry{
			ID: r.ID, Title: r.Title, Keywords: r.Keywords, Era: r.Era, Year: r.Year,
		})
		if len(r.FulltextLinks) > 0 {
			views.FullTextAvailable = append(views.FullTextAvailable, r)
		}
	}

	rep.TextAnalysis = views
	return rep
}

// WriteReport writes the analysis report as indented JSON to path.
func WriteReport(path string, rep Report) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling analysis report: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// FormatTable writes the summary statistics as a human-readable table to w.
func FormatTable(s Summary, w io.Writer) {
	fmt.Fprintf(w, "Total records: %d\n", s.TotalRecords)

	fmt.Fprintf(w, "\n%-40s  %s\n", "Era", "Records")
	fmt.Fprintln(w, strings.Repeat("-", 50))
	for _, era := range types.Eras() {
		fmt.Fprintf(w, "%-40s  %d\n", era, s.EraDistribution[era])
	}

	fmt.Fprintf(w, "\n%-40s  %s\n", "Medium", "Records")
	fmt.Fprintln(w, strings.Repeat("-", 50))
	for _, medium := range types.Mediums() {
		fmt.Fprintf(w, "%-40s  %d\n", medium, s.MediumDistribution[medium])
	}

	fmt.Fprintln(w)
	if s.YearRange != nil {
		fmt.Fprintf(w, "Year range:            %d-%d\n", s.YearRange.Earliest, s.YearRange.Latest)
	} else {
		fmt.Fprintln(w, "Year range:            (no parseable years)")
	}
	fmt.Fprintf(w, "Countries represented: %d\n", s.CountriesRepresented)
	fmt.Fprintf(w, "Journals represented:  %d\n", s.JournalsRepresented)
	fmt.Fprintf(w, "Records with DOI:      %d\n", s.RecordsWithDOI)
	fmt.Fprintf(w, "Records with fulltext: %d\n", s.RecordsWithFullText)
}
