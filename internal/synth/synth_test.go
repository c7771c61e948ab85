// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synth

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/concept-engine/internal/graph"
	"github.com/pdiddy/concept-engine/internal/lexicon"
	"github.com/pdiddy/concept-engine/pkg/types"
)

// --- mock generator ---

// scriptedGenerator answers every prompt with a fixed string, failing
// the call numbers listed in failCalls.
type scriptedGenerator struct {
	answer    string
	failCalls map[int]bool
	calls     int
	batches   [][]string
}

func (g *scriptedGenerator) Generate(_ context.Context, prompts []string) ([]string, error) {
	g.calls++
	g.batches = append(g.batches, prompts)
	if g.failCalls[g.calls] {
		return nil, errors.New("generation backend unavailable")
	}
	out := make([]string, len(prompts))
	for i := range prompts {
		out[i] = g.answer
	}
	return out, nil
}

// testGraph returns a graph where exactly one relationship survives
// filtering: the generic concept, blacklisted verb, non-verb relation,
// and tautology are all rejected.
func testGraph() *types.ConceptGraph {
	return &types.ConceptGraph{
		Concepts: []string{"cell", "glucose", "ice", "photosynthesis", "water"},
		Relationships: []types.Triple{
			{Source: "photosynthesis", Verb: "produces", Target: "glucose"},
			{Source: "something", Verb: "contains", Target: "water"},
			{Source: "cell", Verb: "of", Target: "nucleus"},
			{Source: "cell", Verb: "mitochondria", Target: "nucleus"},
			{Source: "ice", Verb: "contains", Target: "ice"},
		},
	}
}

// surviving questions for the photosynthesis relationship, in template
// order, with their templated answers.
var wantQuestions = []types.QuestionRecord{
	{
		Question: "What is the relationship between photosynthesis and glucose?",
		Answer:   "photosynthesis and glucose are related by produce.",
		Source:   "photosynthesis", Verb: "produce", Target: "glucose",
	},
	{
		Question: "Explain the connection between photosynthesis and glucose.",
		Answer:   "photosynthesis produce glucose.",
		Source:   "photosynthesis", Verb: "produce", Target: "glucose",
	},
	{
		Question: "How are photosynthesis and glucose related?",
		Answer:   "photosynthesis and glucose are related by produce.",
		Source:   "photosynthesis", Verb: "produce", Target: "glucose",
	},
	{
		Question: "Who or what produces glucose?",
		Answer:   "photosynthesis",
		Source:   "photosynthesis", Verb: "produce", Target: "glucose",
	},
}

func TestGenerateFiltersAndTemplates(t *testing.T) {
	e := NewEngine(lexicon.Static{}, nil)

	records, err := e.Generate(context.Background(), testGraph(), Options{}, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(records) != len(wantQuestions) {
		t.Fatalf("got %d records, want %d: %+v", len(records), len(wantQuestions), records)
	}
	for i, want := range wantQuestions {
		if records[i] != want {
			t.Errorf("records[%d] = %+v, want %+v", i, records[i], want)
		}
	}
}

func TestGenerateMaxQuestions(t *testing.T) {
	e := NewEngine(lexicon.Static{}, nil)

	records, err := e.Generate(context.Background(), testGraph(), Options{MaxQuestions: 2}, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	for i := range records {
		if records[i] != wantQuestions[i] {
			t.Errorf("records[%d] = %+v, want %+v", i, records[i], wantQuestions[i])
		}
	}
}

func TestGenerateUsesGeneratedAnswers(t *testing.T) {
	gen := &scriptedGenerator{answer: "Answer: because chlorophyll captures light"}
	e := NewEngine(lexicon.Static{}, gen)

	records, err := e.Generate(context.Background(), testGraph(), Options{}, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if gen.calls != 1 {
		t.Fatalf("generator called %d times, want 1", gen.calls)
	}
	for i, r := range records {
		if r.Answer != "because chlorophyll captures light" {
			t.Errorf("records[%d].Answer = %q, want echoed prefix stripped", i, r.Answer)
		}
	}
	if !strings.Contains(gen.batches[0][0], "Context: photosynthesis produce glucose.") {
		t.Errorf("prompt missing triple context: %q", gen.batches[0][0])
	}
}

func TestGenerateFallsBackPerBatch(t *testing.T) {
	gen := &scriptedGenerator{answer: "generated", failCalls: map[int]bool{1: true}}
	e := NewEngine(lexicon.Static{}, gen)

	var out bytes.Buffer
	records, err := e.Generate(context.Background(), testGraph(), Options{BatchSize: 2}, &out)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if gen.calls != 2 {
		t.Fatalf("generator called %d times, want 2", gen.calls)
	}
	if !strings.Contains(out.String(), "failed  answer batch 1-2") {
		t.Errorf("output missing batch failure report: %q", out.String())
	}
	// First batch failed: templated answers survive.
	for i := 0; i < 2; i++ {
		if records[i].Answer != wantQuestions[i].Answer {
			t.Errorf("records[%d].Answer = %q, want templated %q", i, records[i].Answer, wantQuestions[i].Answer)
		}
	}
	// Second batch succeeded.
	for i := 2; i < 4; i++ {
		if records[i].Answer != "generated" {
			t.Errorf("records[%d].Answer = %q, want %q", i, records[i].Answer, "generated")
		}
	}
}

func TestGenerateEmptyAnswerFallsBack(t *testing.T) {
	gen := &scriptedGenerator{answer: "   "}
	e := NewEngine(lexicon.Static{}, gen)

	records, err := e.Generate(context.Background(), testGraph(), Options{}, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for i, r := range records {
		if r.Answer == "" {
			t.Errorf("records[%d] has empty answer", i)
		}
		if r.Answer != wantQuestions[i].Answer {
			t.Errorf("records[%d].Answer = %q, want templated %q", i, r.Answer, wantQuestions[i].Answer)
		}
	}
}

func TestGenerateAll(t *testing.T) {
	mapsDir := t.TempDir()
	questionsDir := filepath.Join(t.TempDir(), "questions")

	mapPath := filepath.Join(mapsDir, "biology-concept-map.json")
	if err := graph.Save(mapPath, testGraph()); err != nil {
		t.Fatalf("saving concept map: %v", err)
	}
	badPath := filepath.Join(mapsDir, "broken-concept-map.json")
	if err := os.WriteFile(badPath, []byte("not json"), 0o644); err != nil {
		t.Fatalf("writing broken map: %v", err)
	}

	e := NewEngine(lexicon.Static{}, nil)
	cfg := types.SynthesisConfig{MapsDir: mapsDir, QuestionsDir: questionsDir}

	var out bytes.Buffer
	summary, err := e.GenerateAll(context.Background(), cfg, Options{}, &out)
	if err != nil {
		t.Fatalf("GenerateAll: %v", err)
	}

	if summary.Generated != 1 || summary.Failed != 1 {
		t.Errorf("summary = %+v, want 1 generated, 1 failed", summary)
	}
	if summary.Questions != len(wantQuestions) {
		t.Errorf("summary.Questions = %d, want %d", summary.Questions, len(wantQuestions))
	}
	if !summary.HasFailures() {
		t.Error("HasFailures() = false, want true")
	}
	if summary.Total() != 2 {
		t.Errorf("Total() = %d, want 2", summary.Total())
	}
	if !strings.Contains(out.String(), "failed  broken") {
		t.Errorf("output missing failure report: %q", out.String())
	}

	txt, err := os.ReadFile(filepath.Join(questionsDir, "biology-questions.txt"))
	if err != nil {
		t.Fatalf("reading questions txt: %v", err)
	}
	wantFirst := fmt.Sprintf("1. %s\n", wantQuestions[0].Question)
	if !strings.HasPrefix(string(txt), wantFirst) {
		t.Errorf("questions txt starts with %q, want %q", string(txt), wantFirst)
	}

	f, err := os.Open(filepath.Join(questionsDir, "biology-questions.csv"))
	if err != nil {
		t.Fatalf("opening questions csv: %v", err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("reading questions csv: %v", err)
	}
	if len(rows) != len(wantQuestions)+1 {
		t.Fatalf("csv has %d rows, want %d", len(rows), len(wantQuestions)+1)
	}
	if rows[0][0] != "Question" || rows[0][4] != "Target" {
		t.Errorf("unexpected csv header: %v", rows[0])
	}
	if rows[1][0] != wantQuestions[0].Question || rows[1][1] != wantQuestions[0].Answer {
		t.Errorf("unexpected first csv row: %v", rows[1])
	}
}
