// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists extracted paper records in a SQLite index so
// past extraction runs stay searchable. The index uses an FTS5 virtual
// table, so binaries and tests must be built with the sqlite_fts5 tag
// (mage Build and Test pass it).
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/litsift/pkg/types"
)

const (
	indexDir = "index"
	dbFile   = "records.db"
)

// Store manages the record index database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the index at analysisDir/index/records.db,
// creating the schema if it does not exist.
func NewStore(cfg types.IndexConfig) (*Store, error) {
	dbDir := filepath.Join(cfg.AnalysisDir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
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
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			section TEXT NOT NULL,
			number INTEGER NOT NULL,
			title TEXT NOT NULL,
			url TEXT,
			raw_row TEXT NOT NULL,
			core_problem TEXT,
			data_source TEXT,
			methods TEXT,
			conclusion TEXT,
			summary TEXT,
			research_entry_point TEXT,
			UNIQUE(section, number)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_records_section ON records(section)`,
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
			`CREATE VIRTUAL TABLE records_fts USING fts5(title, raw_row, content=records, content_rowid=rowid)`,
			`CREATE TRIGGER records_ai AFTER INSERT ON records BEGIN
				INSERT INTO records_fts(rowid, title, raw_row) VALUES (new.rowid, new.title, new.raw_row);
			END`,
			`CREATE TRIGGER records_ad AFTER DELETE ON records BEGIN
				INSERT INTO records_fts(records_fts, rowid, title, raw_row) VALUES('delete', old.rowid, old.title, old.raw_row);
			END`,
			`CREATE TRIGGER records_au AFTER UPDATE ON records BEGIN
				INSERT INTO records_fts(records_fts, rowid, title, raw_row) VALUES('delete', old.rowid, old.title, old.raw_row);
				INSERT INTO records_fts(rowid, title, raw_row) VALUES (new.rowid, new.title, new.raw_row);
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

// ReplaceSection transactionally replaces all indexed records of a
// section with the given list, keeping the index consistent with the
// latest extraction run.
func (s *Store) ReplaceSection(ctx context.Context, section string, records []types.PaperRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM records WHERE section = ?`, section); err != nil {
		return fmt.Errorf("deleting old records: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO records (section, number, title, url, raw_row, core_problem,
			data_source, methods, conclusion, summary, research_entry_point)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		_, err := stmt.ExecContext(ctx,
			section, rec.Number, rec.Title, rec.URL, rec.RawRow,
			rec.CoreProblem, rec.DataSource, rec.Methods,
			rec.Conclusion, rec.Summary, rec.ResearchEntryPoint,
		)
		if err != nil {
			return fmt.Errorf("inserting record %d: %w", rec.Number, err)
		}
	}

	return tx.Commit()
}

// Hit is a search result: the matched record plus its section.
type Hit struct {
	Section string
	Record  types.PaperRecord
}

// Search runs a full-text query over titles and raw rows, returning up
// to limit hits ranked by relevance. A limit of 0 uses the configured
// default.
func (s *Store) Search(ctx context.Context, query string, limit int) ([]Hit, error) {
	if limit <= 0 {
		limit = s.maxResults
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT r.section, r.number, r.title, r.url, r.raw_row,
			r.core_problem, r.data_source, r.methods, r.conclusion,
			r.summary, r.research_entry_point
		 FROM records_fts f
		 JOIN records r ON r.rowid = f.rowid
		 WHERE records_fts MATCH ?
		 ORDER BY rank
		 LIMIT ?`, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying index: %w", err)
	}
	defer rows.Close()

	var hits []Hit
	for rows.Next() {
		var h Hit
		err := rows.Scan(&h.Section, &h.Record.Number, &h.Record.Title,
			&h.Record.URL, &h.Record.RawRow, &h.Record.CoreProblem,
			&h.Record.DataSource, &h.Record.Methods, &h.Record.Conclusion,
			&h.Record.Summary, &h.Record.ResearchEntryPoint)
		if err != nil {
			return nil, fmt.Errorf("scanning hit: %w", err)
		}
		hits = append(hits, h)
	}
	return hits, rows.Err()
}

// Count returns the number of indexed records in a section.
func (s *Store) Count(ctx context.Context, section string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT count(*) FROM records WHERE section = ?`, section).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting records: %w", err)
	}
	return n, nil
}
