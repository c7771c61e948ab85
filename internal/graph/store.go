// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package graph

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/concept-engine/pkg/types"
)

const (
	dbFile    = "concepts.db"
	mapSuffix = "-concept-map.json"
)

// Store manages the SQLite index over ingested concept maps. It gives
// the synthesis side and ad-hoc callers full-text search over concepts
// without re-reading every map file.
type Store struct {
	db         *sql.DB
	mapsDir    string
	indexDir   string
	maxResults int
}

// NewStore opens or creates the index database at indexDir/concepts.db,
// creating the schema if it does not exist.
func NewStore(cfg types.GraphStoreConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.IndexDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(cfg.IndexDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{
		db:         db,
		mapsDir:    cfg.MapsDir,
		indexDir:   cfg.IndexDir,
		maxResults: maxResults,
	}

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
		`CREATE TABLE IF NOT EXISTS maps (
			id TEXT PRIMARY KEY,
			concept_count INTEGER,
			relationship_count INTEGER
		)`,
		`CREATE TABLE IF NOT EXISTS concepts (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			text TEXT NOT NULL,
			map_id TEXT NOT NULL REFERENCES maps(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_concepts_map_id ON concepts(map_id)`,
		`CREATE TABLE IF NOT EXISTS relationships (
			map_id TEXT NOT NULL REFERENCES maps(id),
			source TEXT NOT NULL,
			verb TEXT NOT NULL,
			target TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_relationships_map_id ON relationships(map_id)`,
		`CREATE TABLE IF NOT EXISTS indexing_status (
			map_id TEXT PRIMARY KEY,
			file_mod_time TEXT
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='concepts_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE concepts_fts USING fts5(text, content=concepts, content_rowid=rowid)`,
			`CREATE TRIGGER concepts_ai AFTER INSERT ON concepts BEGIN
				INSERT INTO concepts_fts(rowid, text) VALUES (new.rowid, new.text);
			END`,
			`CREATE TRIGGER concepts_ad AFTER DELETE ON concepts BEGIN
				INSERT INTO concepts_fts(concepts_fts, rowid, text) VALUES('delete', old.rowid, old.text);
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

// IngestSummary holds counts from a store ingest run.
type IngestSummary struct {
	Indexed int
	Updated int
	Skipped int
	Failed  int
}

// Total returns the number of map files processed.
func (s IngestSummary) Total() int {
	return s.Indexed + s.Updated + s.Skipped + s.Failed
}

// HasFailures reports whether any map files failed ingestion.
func (s IngestSummary) HasFailures() bool {
	return s.Failed > 0
}

// Ingest reads concept-map JSON files from the maps directory and
// populates the index. Unchanged files are skipped by modification
// time; changed files are re-ingested in place. A bad file is counted
// and reported, never fatal to the run.
func (s *Store) Ingest(ctx context.Context, w io.Writer) (IngestSummary, error) {
	entries, err := os.ReadDir(s.mapsDir)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("reading maps directory %s: %w", s.mapsDir, err)
	}

	var summary IngestSummary

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), mapSuffix) {
			continue
		}

		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		mapID := strings.TrimSuffix(entry.Name(), mapSuffix)
		filePath := filepath.Join(s.mapsDir, entry.Name())

		info, err := entry.Info()
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", mapID, err)
			summary.Failed++
			continue
		}
		modTime := info.ModTime().UTC().Format(time.RFC3339Nano)

		var storedModTime string
		err = s.db.QueryRowContext(ctx,
			`SELECT file_mod_time FROM indexing_status WHERE map_id = ?`, mapID,
		).Scan(&storedModTime)

		if err == nil && storedModTime == modTime {
			fmt.Fprintf(w, "skipped %s\n", mapID)
			summary.Skipped++
			continue
		}

		isUpdate := err == nil

		g, err := Load(filePath)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", mapID, err)
			summary.Failed++
			continue
		}

		if err := s.ingestMap(ctx, mapID, g, modTime, isUpdate); err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", mapID, err)
			summary.Failed++
			continue
		}

		if isUpdate {
			fmt.Fprintf(w, "updated %s (%d concepts, %d relationships)\n", mapID, len(g.Concepts), len(g.Relationships))
			summary.Updated++
		} else {
			fmt.Fprintf(w, "indexed %s (%d concepts, %d relationships)\n", mapID, len(g.Concepts), len(g.Relationships))
			summary.Indexed++
		}
	}

	fmt.Fprintf(w, "\nindexed: %d, updated: %d, skipped: %d, failed: %d\n",
		summary.Indexed, summary.Updated, summary.Skipped, summary.Failed)

	return summary, nil
}

func (s *Store) ingestMap(ctx context.Context, mapID string, g *types.ConceptGraph, modTime string, isUpdate bool) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if isUpdate {
		if _, err := tx.ExecContext(ctx, `DELETE FROM concepts WHERE map_id = ?`, mapID); err != nil {
			return fmt.Errorf("deleting old concepts: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM relationships WHERE map_id = ?`, mapID); err != nil {
			return fmt.Errorf("deleting old relationships: %w", err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO maps (id, concept_count, relationship_count) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			concept_count=excluded.concept_count,
			relationship_count=excluded.relationship_count`,
		mapID, len(g.Concepts), len(g.Relationships),
	)
	if err != nil {
		return fmt.Errorf("upserting map record: %w", err)
	}

	conceptStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO concepts (text, map_id) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing concept insert: %w", err)
	}
	defer conceptStmt.Close()

	for _, c := range g.Concepts {
		if _, err := conceptStmt.ExecContext(ctx, c, mapID); err != nil {
			return fmt.Errorf("inserting concept %q: %w", c, err)
		}
	}

	relStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO relationships (map_id, source, verb, target) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing relationship insert: %w", err)
	}
	defer relStmt.Close()

	for _, t := range g.Relationships {
		if _, err := relStmt.ExecContext(ctx, mapID, t.Source, t.Verb, t.Target); err != nil {
			return fmt.Errorf("inserting relationship %s-%s-%s: %w", t.Source, t.Verb, t.Target, err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO indexing_status (map_id, file_mod_time) VALUES (?, ?)
		 ON CONFLICT(map_id) DO UPDATE SET file_mod_time=excluded.file_mod_time`,
		mapID, modTime,
	)
	if err != nil {
		return fmt.Errorf("updating indexing status: %w", err)
	}

	return tx.Commit()
}
