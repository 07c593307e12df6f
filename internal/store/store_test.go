// Copyright OpenLit Labs, 2026. All rights reserved.

package store

import (
	"context"
	"reflect"
	"testing"

	"github.com/openlit/corpus-curator/pkg/types"
)

func yearPtr(y int) *int { return &y }

func strPtr(s string) *string { return &s }

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(types.StoreConfig{CorpusDir: t.TempDir(), MaxResults: 20})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testRecords() []types.LabeledRecord {
	return []types.LabeledRecord{
		{
			Record: types.Record{
				ID:            "r1",
				Title:         "Wilde and the Nineties",
				Authors:       []string{"A. Reader"},
				Year:          yearPtr(1896),
				Journal:       strPtr("Journal of Decadence"),
				Abstract:      strPtr("Aestheticism and decadence at the fin de siecle."),
				Keywords:      []string{"wilde", "decadence"},
				Subjects:      []string{"English literature"},
				DOI:           strPtr("10.1/1"),
				FulltextLinks: []string{"https://example.org/r1.pdf"},
			},
			Era:    types.EraEarly,
			Medium: types.MediumAcademicJournal,
		},
		{
			Record: types.Record{
				ID:            "r2",
				Title:         "Ulysses and the City",
				Authors:       []string{},
				Year:          yearPtr(1922),
				Journal:       strPtr("The Little Review"),
				Abstract:      strPtr("Joyce, stream of consciousness, and the modern city."),
				Keywords:      []string{"joyce"},
				Subjects:      []string{},
				FulltextLinks: []string{},
			},
			Era:    types.EraHigh,
			Medium: types.MediumLiteraryMagazine,
		},
		{
			Record: types.Record{
				ID:            "r3",
				Title:         "Late Style",
				Authors:       []string{},
				Keywords:      []string{},
				Subjects:      []string{},
				FulltextLinks: []string{},
			},
			Era:    types.EraGeneral,
			Medium: types.MediumOther,
		},
	}
}

func TestIngestAndRetrieveAll(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	records := testRecords()

	summary, err := s.Ingest(ctx, records)
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if summary.Inserted != 3 || summary.Updated != 0 {
		t.Errorf("summary = %+v, want 3 inserted", summary)
	}

	got, err := s.Retrieve(ctx, QueryOptions{Era: types.EraEarly, MaxResults: 10})
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if !reflect.DeepEqual(got[0], records[0]) {
		t.Errorf("round trip through store mismatch:\ngot  %+v\nwant %+v", got[0], records[0])
	}
}

func TestRetrieveOrder(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	records := testRecords()

	if _, err := s.Ingest(ctx, records); err != nil {
		t.Fatalf("Ingest: %v", err)
	}

	got, err := s.Retrieve(ctx, QueryOptions{Medium: types.MediumLiteraryMagazine})
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if len(got) != 1 || got[0].ID != "r2" {
		t.Fatalf("medium filter got %d records", len(got))
	}

	// A combined era+medium filter must apply both.
	got, err = s.Retrieve(ctx, QueryOptions{Era: types.EraHigh, Medium: types.MediumAcademicJournal})
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("conflicting filters returned %d records", len(got))
	}
}

func TestRetrieveFullText(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	if _, err := s.Ingest(ctx, testRecords()); err != nil {
		t.Fatalf("Ingest: %v", err)
	}

	got, err := s.Retrieve(ctx, QueryOptions{Text: "joyce"})
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if len(got) != 1 || got[0].ID != "r2" {
		t.Errorf("FTS query got %v", got)
	}

	// Abstract text is indexed too.
	got, err = s.Retrieve(ctx, QueryOptions{Text: "decadence"})
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if len(got) != 1 || got[0].ID != "r1" {
		t.Errorf("abstract FTS query got %v", got)
	}
}

func TestReingestUpdates(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	records := testRecords()

	if _, err := s.Ingest(ctx, records); err != nil {
		t.Fatalf("Ingest: %v", err)
	}

	records[0].Title = "Wilde Reconsidered"
	summary, err := s.Ingest(ctx, records)
	if err != nil {
		t.Fatalf("re-Ingest: %v", err)
	}
	if summary.Updated != 3 || summary.Inserted != 0 {
		t.Errorf("summary = %+v, want 3 updated", summary)
	}

	got, err := s.Retrieve(ctx, QueryOptions{Era: types.EraEarly})
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Wilde Reconsidered" {
		t.Errorf("update not visible: %+v", got)
	}
}

func TestCounts(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	if _, err := s.Ingest(ctx, testRecords()); err != nil {
		t.Fatalf("Ingest: %v", err)
	}

	eras, mediums, err := s.Counts(ctx)
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	if eras[types.EraEarly] != 1 || eras[types.EraHigh] != 1 || eras[types.EraGeneral] != 1 {
		t.Errorf("era counts = %v", eras)
	}
	if mediums[types.MediumOther] != 1 || mediums[types.MediumAcademicJournal] != 1 {
		t.Errorf("medium counts = %v", mediums)
	}
}

func TestQueryOptionsIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		opts QueryOptions
		want bool
	}{
		{"empty", QueryOptions{}, true},
		{"max results only is empty", QueryOptions{MaxResults: 5}, true},
		{"era", QueryOptions{Era: types.EraHigh}, false},
		{"medium", QueryOptions{Medium: types.MediumOther}, false},
		{"text", QueryOptions{Text: "joyce"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opts.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}
