// Copyright OpenLit Labs, 2026. All rights reserved.

// Package store persists a labeled corpus in SQLite and answers filtered
// and full-text queries over it.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/openlit/corpus-curator/pkg/types"
)

const dbFile = "corpus.db"

// Store manages the corpus SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// Open opens or creates the corpus database at cfg.CorpusDir/corpus.db
// and creates the schema if it does not exist.
func Open(cfg types.StoreConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.CorpusDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating corpus directory: %w", err)
	}

	dbPath := filepath.Join(cfg.CorpusDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS records (
			id TEXT PRIMARY KEY,
			ordinal INTEGER NOT NULL,
			title TEXT,
			authors TEXT,
			year INTEGER,
			journal TEXT,
			publisher TEXT,
			country TEXT,
			abstract TEXT,
			keywords TEXT,
			subjects TEXT,
			doi TEXT,
			fulltext_links TEXT,
			era TEXT NOT NULL,
			medium TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_records_era ON records(era)`,
		`CREATE INDEX IF NOT EXISTS idx_records_medium ON records(medium)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='records_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE records_fts USING fts5(title, abstract, keywords, content=records, content_rowid=rowid)`,
			`CREATE TRIGGER records_ai AFTER INSERT ON records BEGIN
				INSERT INTO records_fts(rowid, title, abstract, keywords) VALUES (new.rowid, new.title, new.abstract, new.keywords);
			END`,
			`CREATE TRIGGER records_ad AFTER DELETE ON records BEGIN
				INSERT INTO records_fts(records_fts, rowid, title, abstract, keywords) VALUES('delete', old.rowid, old.title, old.abstract, old.keywords);
			END`,
			`CREATE TRIGGER records_au AFTER UPDATE ON records BEGIN
				INSERT INTO records_fts(records_fts, rowid, title, abstract, keywords) VALUES('delete', old.rowid, old.title, old.abstract, old.keywords);
				INSERT INTO records_fts(rowid, title, abstract, keywords) VALUES (new.rowid, new.title, new.abstract, new.keywords);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// IngestSummary holds counts from an ingest run.
type IngestSummary struct {
	Inserted int
	Updated  int
}

// Total returns the number of records processed.
func (s IngestSummary) Total() int {
	return s.Inserted + s.Updated
}

// Ingest upserts the labeled records into the store inside one transaction.
// The ordinal column records input position so queries can return records
// in corpus order. Re-ingesting an existing record replaces it.
func (s *Store) Ingest(ctx context.Context, records []types.LabeledRecord) (IngestSummary, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO records (id, ordinal, title, authors, year, journal, publisher, country,
			abstract, keywords, subjects, doi, fulltext_links, era, medium)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			ordinal=excluded.ordinal, title=excluded.title, authors=excluded.authors,
			year=excluded.year, journal=excluded.journal, publisher=excluded.publisher,
			country=excluded.country, abstract=excluded.abstract, keywords=excluded.keywords,
			subjects=excluded.subjects, doi=excluded.doi, fulltext_links=excluded.fulltext_links,
			era=excluded.era, medium=excluded.medium`)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	var summary IngestSummary
	for i, r := range records {
		var exists int
		if err := tx.QueryRowContext(ctx,
			`SELECT count(*) FROM records WHERE id = ?`, r.ID,
		).Scan(&exists); err != nil {
			return summary, fmt.Errorf("checking record %s: %w", r.ID, err)
		}

		authorsJSON, _ := json.Marshal(r.Authors)
		keywordsJSON, _ := json.Marshal(r.Keywords)
		subjectsJSON, _ := json.Marshal(r.Subjects)
		linksJSON, _ := json.Marshal(r.FulltextLinks)

		_, err := stmt.ExecContext(ctx,
			r.ID, i, r.Title, string(authorsJSON), nullableInt(r.Year),
			nullableString(r.Journal), nullableString(r.Publisher), nullableString(r.Country),
			nullableString(r.Abstract), string(keywordsJSON), string(subjectsJSON),
			nullableString(r.DOI), string(linksJSON), string(r.Era), string(r.Medium),
		)
		if err != nil {
			return summary, fmt.Errorf("inserting record %s: %w", r.ID, err)
		}

		if exists > 0 {
			summary.Updated++
		} else {
			summary.Inserted++
		}
	}

	if err := tx.Commit(); err != nil {
		return summary, fmt.Errorf("committing ingest: %w", err)
	}
	return summary, nil
}

// QueryOptions filters a corpus query. Zero values mean "no filter".
type QueryOptions struct {
	// Era restricts results to one era category.
	Era types.Era

	// Medium restricts results to one medium category.
	Medium types.Medium

	// Text is an FTS5 query over title, abstract, and keywords.
	Text string

	// MaxResults caps the result count; 0 uses the store default.
	MaxResults int
}

// IsEmpty reports whether the options contain no filter at all.
func (o QueryOptions) IsEmpty() bool {
	return o.Era == "" && o.Medium == "" && o.Text == ""
}

// Retrieve returns records matching the options, in corpus order.
func (s *Store) Retrieve(ctx context.Context, opts QueryOptions) ([]types.LabeledRecord, error) {
	max := opts.MaxResults
	if max <= 0 {
		max = s.maxResults
	}

	var (
		where []string
		args  []any
	)
	query := `SELECT r.id, r.title, r.authors, r.year, r.journal, r.publisher, r.country,
		r.abstract, r.keywords, r.subjects, r.doi, r.fulltext_links, r.era, r.medium
		FROM records r`

	if opts.Text != "" {
		query += ` JOIN records_fts ON records_fts.rowid = r.rowid`
		where = append(where, `records_fts MATCH ?`)
		args = append(args, opts.Text)
	}
	if opts.Era != "" {
		where = append(where, `r.era = ?`)
		args = append(args, string(opts.Era))
	}
	if opts.Medium != "" {
		where = append(where, `r.medium = ?`)
		args = append(args, string(opts.Medium))
	}
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, ` AND `)
	}
	query += ` ORDER BY r.ordinal LIMIT ?`
	args = append(args, max)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	var records []types.LabeledRecord
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Counts returns era and medium histograms computed in SQL.
func (s *Store) Counts(ctx context.Context) (map[types.Era]int, map[types.Medium]int, error) {
	eras := make(map[types.Era]int)
	rows, err := s.db.QueryContext(ctx, `SELECT era, count(*) FROM records GROUP BY era`)
	if err != nil {
		return nil, nil, fmt.Errorf("counting eras: %w", err)
	}
	for rows.Next() {
		var era string
		var n int
		if err := rows.Scan(&era, &n); err != nil {
			rows.Close()
			return nil, nil, err
		}
		eras[types.Era(era)] = n
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	mediums := make(map[types.Medium]int)
	rows, err = s.db.QueryContext(ctx, `SELECT medium, count(*) FROM records GROUP BY medium`)
	if err != nil {
		return nil, nil, fmt.Errorf("counting mediums: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var medium string
		var n int
		if err := rows.Scan(&medium, &n); err != nil {
			return nil, nil, err
		}
		mediums[types.Medium(medium)] = n
	}
	return eras, mediums, rows.Err()
}

func scanRecord(rows *sql.Rows) (types.LabeledRecord, error) {
	var (
		r                                  types.LabeledRecord
		authors, keywords, subjects, links string
		year                               sql.NullInt64
		journal, publisher, country        sql.NullString
		abstract, doi                      sql.NullString
		era, medium                        string
	)
	err := rows.Scan(&r.ID, &r.Title, &authors, &year, &journal, &publisher, &country,
		&abstract, &keywords, &subjects, &doi, &links, &era, &medium)
	if err != nil {
		return r, fmt.Errorf("scanning record: %w", err)
	}

	if err := json.Unmarshal([]byte(authors), &r.Authors); err != nil {
		return r, fmt.Errorf("parsing authors for %s: %w", r.ID, err)
	}
	if err := json.Unmarshal([]byte(keywords), &r.Keywords); err != nil {
		return r, fmt.Errorf("parsing keywords for %s: %w", r.ID, err)
	}
	if err := json.Unmarshal([]byte(subjects), &r.Subjects); err != nil {
		return r, fmt.Errorf("parsing subjects for %s: %w", r.ID, err)
	}
	if err := json.Unmarshal([]byte(links), &r.FulltextLinks); err != nil {
		return r, fmt.Errorf("parsing fulltext links for %s: %w", r.ID, err)
	}

	if year.Valid {
		y := int(year.Int64)
		r.Year = &y
	}
	r.Journal = fromNull(journal)
	r.Publisher = fromNull(publisher)
	r.Country = fromNull(country)
	r.Abstract = fromNull(abstract)
	r.DOI = fromNull(doi)
	r.Era = types.Era(era)
	r.Medium = types.Medium(medium)
	return r, nil
}

func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func nullableInt(i *int) any {
	if i == nil {
		return nil
	}
	return *i
}

func fromNull(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}
