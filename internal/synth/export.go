// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synth

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/concept-engine/internal/graph"
	"github.com/pdiddy/concept-engine/pkg/types"
)

const mapSuffix = "-concept-map.json"

// SaveQuestions writes records as a numbered plain-text question list.
func SaveQuestions(path string, records []types.QuestionRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating questions file %s: %w", path, err)
	}
	defer f.Close()

	for i, r := range records {
		if _, err := fmt.Fprintf(f, "%d. %s\n", i+1, r.Question); err != nil {
			return fmt.Errorf("writing questions file %s: %w", path, err)
		}
	}
	return nil
}

// SaveQuestionsCSV writes records as a CSV with question, answer, and
// the originating triple.
func SaveQuestionsCSV(path string, records []types.QuestionRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating CSV file %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Question", "Answer", "Source", "Verb", "Target"}); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, r := range records {
		if err := w.Write([]string{r.Question, r.Answer, r.Source, r.Verb, r.Target}); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing CSV file %s: %w", path, err)
	}
	return nil
}

// BatchSummary holds counts from a batch synthesis run.
type BatchSummary struct {
	Generated int
	Questions int
	Failed    int
}

// Total returns the number of concept maps processed.
func (s BatchSummary) Total() int {
	return s.Generated + s.Failed
}

// HasFailures reports whether any maps failed.
func (s BatchSummary) HasFailures() bool {
	return s.Failed > 0
}

// GenerateAll synthesizes questions for every concept map in
// cfg.MapsDir and writes per-map .txt and .csv files to
// cfg.QuestionsDir. A map that fails to load or synthesize is reported
// on w and skipped without aborting the batch.
func (e *Engine) GenerateAll(ctx context.Context, cfg types.SynthesisConfig, opts Options, w io.Writer) (BatchSummary, error) {
	if err := os.MkdirAll(cfg.QuestionsDir, 0o755); err != nil {
		return BatchSummary{}, fmt.Errorf("creating questions directory: %w", err)
	}

	entries, err := os.ReadDir(cfg.MapsDir)
	if err != nil {
		return BatchSummary{}, fmt.Errorf("reading maps directory %s: %w", cfg.MapsDir, err)
	}

	var summary BatchSummary

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), mapSuffix) {
			continue
		}

		mapID := strings.TrimSuffix(entry.Name(), mapSuffix)
		g, err := graph.Load(filepath.Join(cfg.MapsDir, entry.Name()))
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", mapID, err)
			summary.Failed++
			continue
		}

		fmt.Fprintf(w, "generating %s (%d relationships)\n", mapID, len(g.Relationships))

		records, err := e.Generate(ctx, g, opts, w)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", mapID, err)
			summary.Failed++
			continue
		}

		txtPath := filepath.Join(cfg.QuestionsDir, mapID+"-questions.txt")
		csvPath := filepath.Join(cfg.QuestionsDir, mapID+"-questions.csv")
		if err := SaveQuestions(txtPath, records); err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", mapID, err)
			summary.Failed++
			continue
		}
		if err := SaveQuestionsCSV(csvPath, records); err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", mapID, err)
			summary.Failed++
			continue
		}

		fmt.Fprintf(w, "generated %s (%d questions)\n", mapID, len(records))
		summary.Generated++
		summary.Questions += len(records)
	}

	return summary, nil
}
