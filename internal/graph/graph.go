// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package graph builds, persists, and indexes concept graphs. The JSON
// concept-map file is the sole interchange artifact between extraction
// and synthesis; any graph matching the schema may substitute.
package graph

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/pdiddy/concept-engine/pkg/types"
)

// New assembles a ConceptGraph from a concept set and triple list,
// sorting both for deterministic serialization. The triple list keeps
// duplicates; ordering is by (source, relationship, target).
func New(concepts []string, triples []types.Triple) *types.ConceptGraph {
	g := &types.ConceptGraph{
		Concepts:      append([]string(nil), concepts...),
		Relationships: append([]types.Triple(nil), triples...),
	}
	sort.Strings(g.Concepts)
	sort.Slice(g.Relationships, func(i, j int) bool {
		a, b := g.Relationships[i], g.Relationships[j]
		if a.Source != b.Source {
			return a.Source < b.Source
		}
		if a.Verb != b.Verb {
			return a.Verb < b.Verb
		}
		return a.Target < b.Target
	})
	return g
}

// Adjacency is the directed edge view of a graph: source → target →
// verb label. A repeated (source, target) pair keeps only the
// last-seen verb; this lossy overwrite is the accepted edge semantic.
type Adjacency map[string]map[string]string

// BuildAdjacency folds the relationship list into an edge map.
func BuildAdjacency(triples []types.Triple) Adjacency {
	adj := make(Adjacency)
	for _, t := range triples {
		if adj[t.Source] == nil {
			adj[t.Source] = make(map[string]string)
		}
		adj[t.Source][t.Target] = t.Verb
	}
	return adj
}

// Save writes the graph as indented JSON.
func Save(path string, g *types.ConceptGraph) error {
	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling concept map: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load reads and validates a concept-map JSON file. A missing file,
// invalid JSON, or an absent or empty relationships list is an error
// the caller reports and skips; batch runs continue with other files.
func Load(path string) (*types.ConceptGraph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading concept map %s: %w", path, err)
	}

	// Decode into a raw map first so a missing key can be told apart
	// from an empty list.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing concept map %s: invalid JSON: %w", path, err)
	}
	if _, ok := raw["relationships"]; !ok {
		return nil, fmt.Errorf("concept map %s has no relationships key", path)
	}

	var g types.ConceptGraph
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("parsing concept map %s: %w", path, err)
	}
	if len(g.Relationships) == 0 {
		return nil, fmt.Errorf("concept map %s has no relationships", path)
	}
	return &g, nil
}
