// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/concept-engine/pkg/types"
)

// ConceptHit is one full-text search result: a concept, the map it
// came from, and the relations it participates in as a source.
type ConceptHit struct {
	Concept   string         `json:"concept" yaml:"concept"`
	MapID     string         `json:"map_id" yaml:"map_id"`
	Relations []types.Triple `json:"relations,omitempty" yaml:"relations,omitempty"`
}

// Retrieve runs an FTS5 query over indexed concepts and attaches each
// hit's outgoing relations. Results are ranked by relevance.
func (s *Store) Retrieve(ctx context.Context, query string, maxResults int) ([]ConceptHit, error) {
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT c.text, c.map_id
		 FROM concepts_fts
		 JOIN concepts c ON c.rowid = concepts_fts.rowid
		 WHERE concepts_fts MATCH ?
		 ORDER BY concepts_fts.rank
		 LIMIT ?`, query, maxResults)
	if err != nil {
		return nil, fmt.Errorf("querying concepts: %w", err)
	}
	defer rows.Close()

	var hits []ConceptHit
	for rows.Next() {
		var h ConceptHit
		if err := rows.Scan(&h.Concept, &h.MapID); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		hits = append(hits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range hits {
		rels, err := s.relationsFrom(ctx, hits[i].MapID, hits[i].Concept)
		if err != nil {
			return nil, err
		}
		hits[i].Relations = rels
	}

	return hits, nil
}

func (s *Store) relationsFrom(ctx context.Context, mapID, source string) ([]types.Triple, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT source, verb, target FROM relationships
		 WHERE map_id = ? AND source = ?
		 ORDER BY verb, target`, mapID, source)
	if err != nil {
		return nil, fmt.Errorf("querying relationships: %w", err)
	}
	defer rows.Close()

	var rels []types.Triple
	for rows.Next() {
		var t types.Triple
		if err := rows.Scan(&t.Source, &t.Verb, &t.Target); err != nil {
			return nil, fmt.Errorf("scanning relationship: %w", err)
		}
		rels = append(rels, t)
	}
	return rels, rows.Err()
}

// VerbCount is one entry of a map's verb frequency table.
type VerbCount struct {
	Verb  string `json:"verb" yaml:"verb"`
	Count int    `json:"count" yaml:"count"`
}

// MapStats summarizes one ingested concept map.
type MapStats struct {
	MapID         string      `json:"map_id" yaml:"map_id"`
	Concepts      int         `json:"concepts" yaml:"concepts"`
	Relationships int         `json:"relationships" yaml:"relationships"`
	TopVerbs      []VerbCount `json:"top_verbs,omitempty" yaml:"top_verbs,omitempty"`
}

// Stats returns summary statistics for every ingested map, or for one
// map when mapID is non-empty. Top verbs are limited to ten per map.
func (s *Store) Stats(ctx context.Context, mapID string) ([]MapStats, error) {
	q := `SELECT id, concept_count, relationship_count FROM maps`
	var args []any
	if mapID != "" {
		q += ` WHERE id = ?`
		args = append(args, mapID)
	}
	q += ` ORDER BY id`

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("querying maps: %w", err)
	}
	defer rows.Close()

	var stats []MapStats
	for rows.Next() {
		var m MapStats
		if err := rows.Scan(&m.MapID, &m.Concepts, &m.Relationships); err != nil {
			return nil, fmt.Errorf("scanning map row: %w", err)
		}
		stats = append(stats, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range stats {
		verbs, err := s.topVerbs(ctx, stats[i].MapID)
		if err != nil {
			return nil, err
		}
		stats[i].TopVerbs = verbs
	}

	return stats, nil
}

func (s *Store) topVerbs(ctx context.Context, mapID string) ([]VerbCount, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT verb, COUNT(*) AS n FROM relationships
		 WHERE map_id = ?
		 GROUP BY verb
		 ORDER BY n DESC, verb
		 LIMIT 10`, mapID)
	if err != nil {
		return nil, fmt.Errorf("querying verbs: %w", err)
	}
	defer rows.Close()

	var verbs []VerbCount
	for rows.Next() {
		var v VerbCount
		if err := rows.Scan(&v.Verb, &v.Count); err != nil {
			return nil, fmt.Errorf("scanning verb row: %w", err)
		}
		verbs = append(verbs, v)
	}
	return verbs, rows.Err()
}

// exportMap is one map's entry in an index export.
type exportMap struct {
	MapID         string         `json:"map_id" yaml:"map_id"`
	Concepts      int            `json:"concepts" yaml:"concepts"`
	TopVerbs      []VerbCount    `json:"top_verbs,omitempty" yaml:"top_verbs,omitempty"`
	Relationships []types.Triple `json:"relationships" yaml:"relationships"`
}

// ExportYAML writes every ingested map's stats and relationships to
// indexDir/export.yaml.
func (s *Store) ExportYAML(ctx context.Context) error {
	out, err := s.exportMaps(ctx)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(out)
	if err != nil {
		return fmt.Errorf("marshaling export: %w", err)
	}
	return os.WriteFile(filepath.Join(s.indexDir, "export.yaml"), data, 0o644)
}

// ExportJSON writes the same export as indented JSON to
// indexDir/export.json.
func (s *Store) ExportJSON(ctx context.Context) error {
	out, err := s.exportMaps(ctx)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling export: %w", err)
	}
	return os.WriteFile(filepath.Join(s.indexDir, "export.json"), data, 0o644)
}

func (s *Store) exportMaps(ctx context.Context) ([]exportMap, error) {
	stats, err := s.Stats(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}

	out := make([]exportMap, len(stats))
	for i, m := range stats {
		rows, err := s.db.QueryContext(ctx,
			`SELECT source, verb, target FROM relationships
			 WHERE map_id = ? ORDER BY source, verb, target`, m.MapID)
		if err != nil {
			return nil, fmt.Errorf("querying relationships for export: %w", err)
		}
		var rels []types.Triple
		for rows.Next() {
			var t types.Triple
			if err := rows.Scan(&t.Source, &t.Verb, &t.Target); err != nil {
				rows.Close()
				return nil, fmt.Errorf("scanning relationship: %w", err)
			}
			rels = append(rels, t)
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, err
		}
		rows.Close()
		out[i] = exportMap{
			MapID:         m.MapID,
			Concepts:      m.Concepts,
			TopVerbs:      m.TopVerbs,
			Relationships: rels,
		}
	}

	return out, nil
}
