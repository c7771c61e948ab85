// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package graph

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/concept-engine/pkg/types"
)

// --- test helpers ---

func testStore(t *testing.T) (*Store, string) {
	t.Helper()
	tmpDir := t.TempDir()
	mapsDir := filepath.Join(tmpDir, "maps")
	if err := os.MkdirAll(mapsDir, 0o755); err != nil {
		t.Fatal(err)
	}

	store, err := NewStore(types.GraphStoreConfig{
		MapsDir:    mapsDir,
		IndexDir:   filepath.Join(tmpDir, "index"),
		MaxResults: 20,
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })

	return store, mapsDir
}

func writeMap(t *testing.T, mapsDir, mapID string, g *types.ConceptGraph) {
	t.Helper()
	if err := Save(filepath.Join(mapsDir, mapID+mapSuffix), g); err != nil {
		t.Fatal(err)
	}
}

func biologyGraph() *types.ConceptGraph {
	return New(
		[]string{"photosynthesis", "glucose", "oxygen", "chlorophyll"},
		[]types.Triple{
			{Source: "photosynthesis", Verb: "produces", Target: "glucose"},
			{Source: "photosynthesis", Verb: "produces", Target: "oxygen"},
			{Source: "chlorophyll", Verb: "absorbs", Target: "light"},
		},
	)
}

func TestIngest(t *testing.T) {
	store, mapsDir := testStore(t)
	ctx := context.Background()

	writeMap(t, mapsDir, "biology", biologyGraph())
	writeMap(t, mapsDir, "chemistry", New(
		[]string{"acid", "base"},
		[]types.Triple{{Source: "acid", Verb: "neutralizes", Target: "base"}},
	))
	badPath := filepath.Join(mapsDir, "broken"+mapSuffix)
	if err := os.WriteFile(badPath, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	summary, err := store.Ingest(ctx, &out)
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if summary.Indexed != 2 || summary.Failed != 1 || summary.Skipped != 0 {
		t.Errorf("summary = %+v, want 2 indexed, 1 failed", summary)
	}
	if !summary.HasFailures() {
		t.Error("HasFailures() = false, want true")
	}
	if !strings.Contains(out.String(), "failed  broken") {
		t.Errorf("output missing failure report: %q", out.String())
	}

	// Second run with unchanged files skips everything ingestable.
	out.Reset()
	summary, err = store.Ingest(ctx, &out)
	if err != nil {
		t.Fatalf("second Ingest: %v", err)
	}
	if summary.Skipped != 2 || summary.Indexed != 0 {
		t.Errorf("second summary = %+v, want 2 skipped", summary)
	}
}

func TestIngestReindexesChangedFile(t *testing.T) {
	store, mapsDir := testStore(t)
	ctx := context.Background()

	writeMap(t, mapsDir, "biology", biologyGraph())
	if _, err := store.Ingest(ctx, &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}

	// Rewrite with different content and a newer mod time.
	writeMap(t, mapsDir, "biology", New(
		[]string{"photosynthesis", "water"},
		[]types.Triple{{Source: "photosynthesis", Verb: "requires", Target: "water"}},
	))
	future := time.Now().Add(2 * time.Second)
	mapPath := filepath.Join(mapsDir, "biology"+mapSuffix)
	if err := os.Chtimes(mapPath, future, future); err != nil {
		t.Fatal(err)
	}

	summary, err := store.Ingest(ctx, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("Ingest after change: %v", err)
	}
	if summary.Updated != 1 {
		t.Fatalf("summary = %+v, want 1 updated", summary)
	}

	stats, err := store.Stats(ctx, "biology")
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if len(stats) != 1 || stats[0].Concepts != 2 || stats[0].Relationships != 1 {
		t.Errorf("stats after update = %+v, want 2 concepts, 1 relationship", stats)
	}
}

func TestRetrieve(t *testing.T) {
	store, mapsDir := testStore(t)
	ctx := context.Background()

	writeMap(t, mapsDir, "biology", biologyGraph())
	if _, err := store.Ingest(ctx, &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}

	hits, err := store.Retrieve(ctx, "photosynthesis", 0)
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if len(hits) != 1 {
		t.Fatalf("got %d hits, want 1: %+v", len(hits), hits)
	}
	if hits[0].Concept != "photosynthesis" || hits[0].MapID != "biology" {
		t.Errorf("hit = %+v", hits[0])
	}

	wantRels := []types.Triple{
		{Source: "photosynthesis", Verb: "produces", Target: "glucose"},
		{Source: "photosynthesis", Verb: "produces", Target: "oxygen"},
	}
	if !reflect.DeepEqual(hits[0].Relations, wantRels) {
		t.Errorf("relations = %v, want %v", hits[0].Relations, wantRels)
	}

	none, err := store.Retrieve(ctx, "nonexistent", 0)
	if err != nil {
		t.Fatalf("Retrieve miss: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("got %d hits for unknown concept, want 0", len(none))
	}
}

func TestStats(t *testing.T) {
	store, mapsDir := testStore(t)
	ctx := context.Background()

	writeMap(t, mapsDir, "biology", biologyGraph())
	if _, err := store.Ingest(ctx, &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}

	stats, err := store.Stats(ctx, "")
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if len(stats) != 1 {
		t.Fatalf("got %d stats entries, want 1", len(stats))
	}
	m := stats[0]
	if m.MapID != "biology" || m.Concepts != 4 || m.Relationships != 3 {
		t.Errorf("stats = %+v", m)
	}

	wantVerbs := []VerbCount{{Verb: "produces", Count: 2}, {Verb: "absorbs", Count: 1}}
	if !reflect.DeepEqual(m.TopVerbs, wantVerbs) {
		t.Errorf("top verbs = %v, want %v", m.TopVerbs, wantVerbs)
	}
}

func TestExportYAML(t *testing.T) {
	store, mapsDir := testStore(t)
	ctx := context.Background()

	writeMap(t, mapsDir, "biology", biologyGraph())
	if _, err := store.Ingest(ctx, &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}

	if err := store.ExportYAML(ctx); err != nil {
		t.Fatalf("ExportYAML: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(store.indexDir, "export.yaml"))
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}

	var out []struct {
		MapID         string         `yaml:"map_id"`
		Concepts      int            `yaml:"concepts"`
		Relationships []types.Triple `yaml:"relationships"`
	}
	if err := yaml.Unmarshal(data, &out); err != nil {
		t.Fatalf("parsing export: %v", err)
	}
	if len(out) != 1 || out[0].MapID != "biology" || len(out[0].Relationships) != 3 {
		t.Errorf("export = %+v", out)
	}
}
