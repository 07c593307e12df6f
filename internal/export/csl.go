// Copyright OpenLit Labs, 2026. All rights reserved.

package export

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/openlit/corpus-curator/pkg/types"
)

// CSLItem represents one bibliographic entry in CSL (Citation Style
// Language) format. Field names follow the CSL-JSON/CSL-YAML schema so the
// output is consumable by Pandoc and reference managers.
type CSLItem struct {
	ID             string    `yaml:"id"`
	Type           string    `yaml:"type"`
	Title          string    `yaml:"title"`
	Author         []CSLName `yaml:"author,omitempty"`
	ContainerTitle string    `yaml:"container-title,omitempty"`
	Publisher      string    `yaml:"publisher,omitempty"`
	Abstract       string    `yaml:"abstract,omitempty"`
	Issued         *CSLDate  `yaml:"issued,omitempty"`
	DOI            string    `yaml:"DOI,omitempty"`
	URL            string    `yaml:"URL,omitempty"`
}

// CSLName represents a person's name in CSL format.
type CSLName struct {
	Family  string `yaml:"family,omitempty"`
	Given   string `yaml:"given,omitempty"`
	Literal string `yaml:"literal,omitempty"`
}

// CSLDate represents a date in CSL format using date-parts.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts"`
}

// WriteCSLBibliography writes the corpus as a CSL-YAML list to w.
func WriteCSLBibliography(w io.Writer, records []types.LabeledRecord) error {
	items := make([]CSLItem, len(records))
	for i, r := range records {
		items[i] = toCSLItem(r)
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(items)
}

// WriteCSLFile writes the CSL-YAML bibliography to path.
func WriteCSLFile(path string, records []types.LabeledRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating CSL file: %w", err)
	}
	if err := WriteCSLBibliography(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// toCSLItem converts a labeled record to a CSLItem.
func toCSLItem(r types.LabeledRecord) CSLItem {
	item := CSLItem{
		ID:             r.ID,
		Type:           "article-journal",
		Title:          r.Title,
		ContainerTitle: r.JournalText(),
		Abstract:       r.AbstractText(),
	}

	for _, a := range r.Authors {
		item.Author = append(item.Author, parseAuthorName(a))
	}

	if r.Year != nil {
		item.Issued = &CSLDate{DateParts: [][]int{{*r.Year}}}
	}
	if r.DOI != nil {
		item.DOI = *r.DOI
	}
	if r.Journal == nil && r.Publisher != nil {
		// Book or series: publisher stands in for the container.
		item.Publisher = *r.Publisher
	}
	if len(r.FulltextLinks) > 0 {
		item.URL = r.FulltextLinks[0]
	}

	return item
}

// parseAuthorName splits a full name string into CSL family/given parts.
// It splits on the last space: everything before is given, the last token
// is family. Single-token names use the literal field.
func parseAuthorName(name string) CSLName {
	name = strings.TrimSpace(name)
	if name == "" {
		return CSLName{}
	}
	idx := strings.LastIndex(name, " ")
	if idx < 0 {
		return CSLName{Literal: name}
	}
	return CSLName{
		Given:  name[:idx],
		Family: name[idx+1:],
	}
}
