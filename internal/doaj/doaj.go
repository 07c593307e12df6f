// Copyright OpenLit Labs, 2026. All rights reserved.

// Package doaj parses search responses exported from the DOAJ (Directory of
// Open Access Journals) API into bibliographic records. The retrieval call
// itself is out of scope; this package works from the raw response document
// saved to disk.
package doaj

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/openlit/corpus-curator/pkg/types"
)

// Response is the DOAJ search response envelope.
type Response struct {
	Total   int       `json:"total"`
	Results []Article `json:"results"`
}

// Article is one result entry. All bibliographic detail lives under bibjson.
type Article struct {
	ID      string  `json:"id"`
	Bibjson Bibjson `json:"bibjson"`
}

// Bibjson holds the bibliographic fields of a DOAJ article.
type Bibjson struct {
	Title      string       `json:"title"`
	Author     []Author     `json:"author"`
	Year       string       `json:"year"`
	Journal    Journal      `json:"journal"`
	Keywords   []string     `json:"keywords"`
	Abstract   string       `json:"abstract"`
	Identifier []Identifier `json:"identifier"`
	Link       []Link       `json:"link"`
	Subject    []Subject    `json:"subject"`
}

// Author is a single author entry.
type Author struct {
	Name string `json:"name"`
}

// Journal describes the container journal.
type Journal struct {
	Title     string `json:"title"`
	Publisher string `json:"publisher"`
	Country   string `json:"country"`
}

// Identifier is a typed identifier entry (e.g. type "doi").
type Identifier struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// Link is a typed link entry (e.g. type "fulltext").
type Link struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// Subject is a subject classification entry.
type Subject struct {
	Term string `json:"term"`
}

// Parse decodes a DOAJ search response from r.
func Parse(r io.Reader) (*Response, error) {
	var resp Response
	if err := json.NewDecoder(r).Decode(&resp); err != nil {
		return nil, fmt.Errorf("parsing DOAJ response: %w", err)
	}
	return &resp, nil
}

// ReadFile loads a DOAJ search response from a JSON file on disk.
func ReadFile(path string) (*Response, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading response file: %w", err)
	}
	defer f.Close()

	resp, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return resp, nil
}

// Records converts every article in the response to a Record, preserving
// result order.
func (r *Response) Records() []types.Record {
	records := make([]types.Record, len(r.Results))
	for i, a := range r.Results {
		records[i] = a.Record()
	}
	return records
}

// Record maps one article onto the flat Record shape. Missing optional
// fields become nil; list fields are always non-nil so that exports
// serialize them as arrays.
func (a Article) Record() types.Record {
	b := a.Bibjson

	rec := types.Record{
		ID:            a.ID,
		Title:         b.Title,
		Authors:       make([]string, 0, len(b.Author)),
		Keywords:      append([]string{}, b.Keywords...),
		Subjects:      make([]string, 0, len(b.Subject)),
		FulltextLinks: make([]string, 0, len(b.Link)),
	}

	for _, author := range b.Author {
		rec.Authors = append(rec.Authors, author.Name)
	}

	rec.Year = parseYear(b.Year)
	rec.Journal = optional(b.Journal.Title)
	rec.Publisher = optional(b.Journal.Publisher)
	rec.Country = optional(b.Journal.Country)
	rec.Abstract = optional(b.Abstract)

	for _, id := range b.Identifier {
		if strings.EqualFold(id.Type, "doi") && id.ID != "" {
			doi := strings.TrimPrefix(id.ID, "https://doi.org/")
			rec.DOI = &doi
			break
		}
	}

	for _, link := range b.Link {
		if strings.EqualFold(link.Type, "fulltext") && link.URL != "" {
			rec.FulltextLinks = append(rec.FulltextLinks, link.URL)
		}
	}

	for _, subj := range b.Subject {
		if subj.Term != "" {
			rec.Subjects = append(rec.Subjects, subj.Term)
		}
	}

	return rec
}

// parseYear converts the directory's year string to an int. DOAJ sends the
// year as a string that may be empty or non-numeric; either degrades to nil
// rather than failing.
func parseYear(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	y, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &y
}

// optional returns a pointer to s, or nil when s is empty.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
