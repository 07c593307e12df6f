// Copyright OpenLit Labs, 2026. All rights reserved.

package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/openlit/corpus-curator/pkg/types"
)

// listSep joins list-valued fields into a single CSV cell. CSV has no
// nested structure, so this collapse is a documented, accepted loss.
const listSep = "; "

// csvHeader is the fixed column order of the analysis CSV. The trailing
// columns are derived conveniences for statistical tools.
var csvHeader = []string{
	"id",
	"title",
	"authors",
	"year",
	"era",
	"journal",
	"publisher",
	"country",
	"medium",
	"keywords",
	"abstract",
	"doi",
	"full_text_links",
	"subjects",
	"abstract_length",
	"has_doi",
	"has_full_text",
	"keyword_count",
}

// WriteCSV writes the header row plus one row per record, in input order.
// Quoting and escaping follow RFC 4180 via encoding/csv.
func WriteCSV(w io.Writer, records []types.LabeledRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, r := range records {
		if err := cw.Write(csvRow(r)); err != nil {
			return fmt.Errorf("writing CSV row for %s: %w", r.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the analysis CSV to path.
func WriteCSVFile(path string, records []types.LabeledRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating CSV file: %w", err)
	}
	if err := WriteCSV(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func csvRow(r types.LabeledRecord) []string {
	abstract := flattenText(r.AbstractText())
	return []string{
		r.ID,
		r.Title,
		strings.Join(r.Authors, listSep),
		yearCell(r.Year),
		string(r.Era),
		r.JournalText(),
		r.PublisherText(),
		optionalCell(r.Country),
		string(r.Medium),
		strings.Join(r.Keywords, listSep),
		abstract,
		optionalCell(r.DOI),
		strings.Join(r.FulltextLinks, listSep),
		strings.Join(r.Subjects, listSep),
		strconv.Itoa(len(abstract)),
		yesNo(r.DOI != nil),
		yesNo(len(r.FulltextLinks) > 0),
		strconv.Itoa(len(r.Keywords)),
	}
}

// flattenText replaces newlines with spaces so abstracts stay on one
// visual line in spreadsheet tools.
func flattenText(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}

func yearCell(y *int) string {
	if y == nil {
		return ""
	}
	return strconv.Itoa(*y)
}

func optionalCell(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
