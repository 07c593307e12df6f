// Copyright OpenLit Labs, 2026. All rights reserved.

// Package types defines the shared data structures for the corpus-curator
// pipeline: bibliographic records as returned by the open-access directory,
// their labeled form, and the era and medium category vocabularies.
package types

import "strings"

// Era is a coarse historical period assigned to a record from its
// publication year. The string values match the category names used in
// the exported dataset files.
type Era string

const (
	EraEarly   Era = "Early Modernism (1890s-1910s)"
	EraHigh    Era = "High Modernism (1910s-1920s)"
	EraLate    Era = "Late Modernism (1930s-1950s)"
	EraGeneral Era = "General Modernism"
)

// Eras lists all era categories in their canonical order. Per-era export
// files and distribution tables iterate in this order.
func Eras() []Era {
	return []Era{EraEarly, EraHigh, EraLate, EraGeneral}
}

// Slug returns a filesystem-safe identifier for the era, used in per-era
// export filenames (e.g. "early_modernism_1890s_1910s").
func (e Era) Slug() string {
	s := strings.ToLower(string(e))
	s = strings.NewReplacer("(", "", ")", "", "-", "_", " ", "_").Replace(s)
	return s
}

// Medium is a coarse publication-venue category assigned to a record from
// its journal and publisher metadata.
type Medium string

const (
	MediumAcademicJournal  Medium = "Academic Journal"
	MediumLiteraryMagazine Medium = "Literary Magazine"
	MediumOther            Medium = "Other Publication"
)

// Mediums lists all medium categories in their canonical order.
func Mediums() []Medium {
	return []Medium{MediumAcademicJournal, MediumLiteraryMagazine, MediumOther}
}

// Record is one bibliographic entry from the open-access directory.
// Optional scalar fields are pointers so that absent values serialize as
// explicit JSON null; list fields are always non-nil (possibly empty) so
// they serialize as arrays.
type Record struct {
	// ID is the directory-assigned record identifier.
	ID string `json:"id" yaml:"id"`

	// Title is the article title as returned by the directory.
	Title string `json:"title" yaml:"title"`

	// Authors lists author names in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// Year is the publication year, nil when the directory supplied none
	// or the value was not parseable.
	Year *int `json:"year" yaml:"year"`

	// Journal is the container journal title.
	Journal *string `json:"journal" yaml:"journal"`

	// Publisher is the journal's publisher.
	Publisher *string `json:"publisher" yaml:"publisher"`

	// Country is the journal's country of publication.
	Country *string `json:"country" yaml:"country"`

	// Abstract is the article abstract.
	Abstract *string `json:"abstract" yaml:"abstract"`

	// Keywords are the author-supplied keywords.
	Keywords []string `json:"keywords" yaml:"keywords"`

	// Subjects are the directory's subject classification terms.
	Subjects []string `json:"subjects" yaml:"subjects"`

	// DOI is the bare DOI (no https://doi.org/ prefix), nil when absent.
	DOI *string `json:"doi" yaml:"doi"`

	// FulltextLinks are the full-text URLs in source order.
	FulltextLinks []string `json:"full_text_links" yaml:"full_text_links"`
}

// JournalText returns the journal title or "" when absent.
func (r Record) JournalText() string {
	if r.Journal == nil {
		return ""
	}
	return *r.Journal
}

// PublisherText returns the publisher or "" when absent.
func (r Record) PublisherText() string {
	if r.Publisher == nil {
		return ""
	}
	return *r.Publisher
}

// AbstractText returns the abstract or "" when absent.
func (r Record) AbstractText() string {
	if r.Abstract == nil {
		return ""
	}
	return *r.Abstract
}

// LabeledRecord is a Record plus the two derived category fields. Every
// record carries exactly one era and one medium; classification is total,
// so no labeled record is ever missing either field.
type LabeledRecord struct {
	Record `yaml:",inline"`

	Era    Era    `json:"era" yaml:"era"`
	Medium Medium `json:"medium" yaml:"medium"`
}
