// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package graph

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/pdiddy/concept-engine/pkg/types"
)

func TestNewSortsConceptsAndTriples(t *testing.T) {
	concepts := []string{"water", "glucose", "photosynthesis"}
	triples := []types.Triple{
		{Source: "water", Verb: "freezes", Target: "ice"},
		{Source: "photosynthesis", Verb: "produces", Target: "oxygen"},
		{Source: "photosynthesis", Verb: "produces", Target: "glucose"},
		{Source: "photosynthesis", Verb: "produces", Target: "glucose"},
	}

	g := New(concepts, triples)

	wantConcepts := []string{"glucose", "photosynthesis", "water"}
	if !reflect.DeepEqual(g.Concepts, wantConcepts) {
		t.Errorf("Concepts = %v, want %v", g.Concepts, wantConcepts)
	}

	want := []types.Triple{
		{Source: "photosynthesis", Verb: "produces", Target: "glucose"},
		{Source: "photosynthesis", Verb: "produces", Target: "glucose"},
		{Source: "photosynthesis", Verb: "produces", Target: "oxygen"},
		{Source: "water", Verb: "freezes", Target: "ice"},
	}
	if !reflect.DeepEqual(g.Relationships, want) {
		t.Errorf("Relationships = %v, want %v", g.Relationships, want)
	}
}

func TestBuildAdjacencyLastVerbWins(t *testing.T) {
	adj := BuildAdjacency([]types.Triple{
		{Source: "photosynthesis", Verb: "produces", Target: "glucose"},
		{Source: "photosynthesis", Verb: "yields", Target: "glucose"},
		{Source: "photosynthesis", Verb: "produces", Target: "oxygen"},
	})

	if got := adj["photosynthesis"]["glucose"]; got != "yields" {
		t.Errorf("edge label = %q, want last-seen %q", got, "yields")
	}
	if got := adj["photosynthesis"]["oxygen"]; got != "produces" {
		t.Errorf("edge label = %q, want %q", got, "produces")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bio-concept-map.json")

	g := New(
		[]string{"glucose", "photosynthesis"},
		[]types.Triple{{Source: "photosynthesis", Verb: "produces", Target: "glucose"}},
	)
	if err := Save(path, g); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(loaded, g) {
		t.Errorf("round trip mismatch: got %+v, want %+v", loaded, g)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	write := func(name, content string) string {
		t.Helper()
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"missing file", filepath.Join(dir, "nope.json"), "reading concept map"},
		{"invalid json", write("bad.json", "{not json"), "invalid JSON"},
		{"missing relationships key", write("nokey.json", `{"concepts": ["a"]}`), "no relationships key"},
		{"empty relationships", write("empty.json", `{"concepts": [], "relationships": []}`), "no relationships"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			if err == nil {
				t.Fatal("Load returned nil error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}
