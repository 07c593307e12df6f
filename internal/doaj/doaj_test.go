// Copyright OpenLit Labs, 2026. All rights reserved.

package doaj

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResponse = `{
  "total": 84,
  "results": [
    {
      "id": "abc123",
      "bibjson": {
        "title": "Woolf and the Wireless",
        "author": [{"name": "A. Reader"}, {"name": "B. Writer"}],
        "year": "1929",
        "journal": {
          "title": "Journal of Modern Literature",
          "publisher": "Indiana University Press",
          "country": "United States"
        },
        "keywords": ["Woolf", "radio"],
        "abstract": "An abstract.\nWith a newline.",
        "identifier": [
          {"type": "pissn", "id": "1234-5678"},
          {"type": "doi", "id": "https://doi.org/10.1000/xyz"}
        ],
        "link": [
          {"type": "homepage", "url": "https://example.org"},
          {"type": "fulltext", "url": "https://example.org/article.pdf"}
        ],
        "subject": [{"term": "English literature"}, {"term": ""}]
      }
    },
    {
      "id": "def456",
      "bibjson": {
        "title": "Untitled Fragment",
        "year": "n.d."
      }
    }
  ]
}`

func TestParse(t *testing.T) {
	resp, err := Parse(strings.NewReader(sampleResponse))
	require.NoError(t, err)

	assert.Equal(t, 84, resp.Total)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, "abc123", resp.Results[0].ID)
}

func TestRecordMapping(t *testing.T) {
	resp, err := Parse(strings.NewReader(sampleResponse))
	require.NoError(t, err)

	rec := resp.Results[0].Record()

	assert.Equal(t, "abc123", rec.ID)
	assert.Equal(t, "Woolf and the Wireless", rec.Title)
	assert.Equal(t, []string{"A. Reader", "B. Writer"}, rec.Authors)

	require.NotNil(t, rec.Year)
	assert.Equal(t, 1929, *rec.Year)

	require.NotNil(t, rec.Journal)
	assert.Equal(t, "Journal of Modern Literature", *rec.Journal)
	require.NotNil(t, rec.Publisher)
	assert.Equal(t, "Indiana University Press", *rec.Publisher)
	require.NotNil(t, rec.Country)
	assert.Equal(t, "United States", *rec.Country)

	// The doi.org prefix is stripped; only identifier type "doi" counts.
	require.NotNil(t, rec.DOI)
	assert.Equal(t, "10.1000/xyz", *rec.DOI)

	// Only links of type "fulltext" survive.
	assert.Equal(t, []string{"https://example.org/article.pdf"}, rec.FulltextLinks)

	// Empty subject terms are dropped.
	assert.Equal(t, []string{"English literature"}, rec.Subjects)
}

func TestRecordMissingFields(t *testing.T) {
	resp, err := Parse(strings.NewReader(sampleResponse))
	require.NoError(t, err)

	rec := resp.Results[1].Record()

	assert.Nil(t, rec.Year, "non-numeric year degrades to nil")
	assert.Nil(t, rec.Journal)
	assert.Nil(t, rec.Publisher)
	assert.Nil(t, rec.Country)
	assert.Nil(t, rec.Abstract)
	assert.Nil(t, rec.DOI)

	// List fields are non-nil so exports serialize them as arrays.
	assert.NotNil(t, rec.Authors)
	assert.NotNil(t, rec.Keywords)
	assert.NotNil(t, rec.Subjects)
	assert.NotNil(t, rec.FulltextLinks)
	assert.Empty(t, rec.Authors)
}

func TestParseYear(t *testing.T) {
	tests := []struct {
		in   string
		want *int
	}{
		{"1922", intPtr(1922)},
		{" 1930 ", intPtr(1930)},
		{"", nil},
		{"n.d.", nil},
		{"circa 1920", nil},
	}
	for _, tt := range tests {
		got := parseYear(tt.in)
		if tt.want == nil {
			assert.Nil(t, got, "parseYear(%q)", tt.in)
		} else {
			require.NotNil(t, got, "parseYear(%q)", tt.in)
			assert.Equal(t, *tt.want, *got)
		}
	}
}

func intPtr(i int) *int { return &i }

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "response.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleResponse), 0o644))

	resp, err := ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, resp.Records(), 2)
}

func TestReadFileErrors(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
	_, err = ReadFile(bad)
	assert.Error(t, err)
}
