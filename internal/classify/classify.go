// Copyright OpenLit Labs, 2026. All rights reserved.

// Package classify assigns era and medium categories to bibliographic
// records. Classification is a total, deterministic function of the record:
// every record receives exactly one era and one medium, and missing or
// malformed fields degrade to the general categories instead of failing.
package classify

import (
	"strings"

	"github.com/openlit/corpus-curator/pkg/types"
)

// Era boundaries. The early and high windows overlap for 1910-1919; rules
// apply in listed order and the first match wins, so those years classify
// as early modernism.
const (
	earlyFrom, earlyTo = 1890, 1919
	highFrom, highTo   = 1910, 1929
	lateFrom, lateTo   = 1930, 1959
)

// Venue-description terms that mark a container as a scholarly journal or
// a literary magazine. Matched case-insensitively against the journal
// title and publisher; the academic list is checked first.
var (
	academicTerms = []string{"journal", "review", "studies", "quarterly", "university", "research"}
	literaryTerms = []string{"magazine", "letters", "writing", "poetry", "literature", "arts"}
)

// littleMagazines names the canonical modernist little magazines. Checked
// before the term lists: "The Little Review" would otherwise match the
// academic "review" term, and "The Egoist" matches no term at all.
var littleMagazines = []string{
	"the egoist",
	"the little review",
	"the dial",
	"the criterion",
	"blast",
	"the yellow book",
	"the savoy",
	"rhythm",
}

// academicJournals names scholarly venues in the field whose titles carry
// no scholarly term. "Modernism/modernity" is the flagship case.
var academicJournals = []string{
	"modernism/modernity",
	"modernist cultures",
	"english literature in transition",
}

// EraForYear returns the era for a publication year. A nil year or a year
// outside every window yields the general category.
func EraForYear(year *int) types.Era {
	if year == nil {
		return types.EraGeneral
	}
	switch y := *year; {
	case y >= earlyFrom && y <= earlyTo:
		return types.EraEarly
	case y >= highFrom && y <= highTo:
		return types.EraHigh
	case y >= lateFrom && y <= lateTo:
		return types.EraLate
	default:
		return types.EraGeneral
	}
}

// MediumForVenue returns the medium for a journal title and publisher.
// Known venues match by name before the term lists; a venue matching
// nothing falls into the other category, which also covers books and
// series.
func MediumForVenue(journal, publisher string) types.Medium {
	content := strings.ToLower(journal + " " + publisher)
	for _, name := range littleMagazines {
		if strings.Contains(content, name) {
			return types.MediumLiteraryMagazine
		}
	}
	for _, name := range academicJournals {
		if strings.Contains(content, name) {
			return types.MediumAcademicJournal
		}
	}
	for _, term := range academicTerms {
		if strings.Contains(content, term) {
			return types.MediumAcademicJournal
		}
	}
	for _, term := range literaryTerms {
		if strings.Contains(content, term) {
			return types.MediumLiteraryMagazine
		}
	}
	return types.MediumOther
}

// Classify returns the era and medium for a record.
func Classify(r types.Record) (types.Era, types.Medium) {
	return EraForYear(r.Year), MediumForVenue(r.JournalText(), r.PublisherText())
}

// Label returns the record with its derived category fields attached.
func Label(r types.Record) types.LabeledRecord {
	era, medium := Classify(r)
	return types.LabeledRecord{Record: r, Era: era, Medium: medium}
}

// LabelAll labels every record, preserving input order.
func LabelAll(records []types.Record) []types.LabeledRecord {
	labeled := make([]types.LabeledRecord, len(records))
	for i, r := range records {
		labeled[i] = Label(r)
	}
	return labeled
}
