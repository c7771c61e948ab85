// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/concept-engine/internal/graph"
	"github.com/pdiddy/concept-engine/internal/parse"
	"github.com/pdiddy/concept-engine/internal/textnorm"
	"github.com/pdiddy/concept-engine/pkg/types"
)

const mapSuffix = "-concept-map.json"

// BatchSummary holds counts from a batch extraction run.
type BatchSummary struct {
	Extracted int
	Skipped   int
	Failed    int
}

// Total returns the number of corpus files processed.
func (s BatchSummary) Total() int {
	return s.Extracted + s.Skipped + s.Failed
}

// HasFailures reports whether any corpus files failed.
func (s BatchSummary) HasFailures() bool {
	return s.Failed > 0
}

// ExtractAll processes every .txt file in cfg.CorpusDir and writes a
// concept-map JSON file per document to cfg.MapsDir. Files whose map is
// newer than the source are skipped; a failed file is reported on w and
// does not stop the batch.
func ExtractAll(ctx context.Context, analyzer parse.Analyzer, cfg types.ExtractionConfig, w io.Writer) (BatchSummary, error) {
	if err := os.MkdirAll(cfg.MapsDir, 0o755); err != nil {
		return BatchSummary{}, fmt.Errorf("creating maps directory: %w", err)
	}

	entries, err := os.ReadDir(cfg.CorpusDir)
	if err != nil {
		return BatchSummary{}, fmt.Errorf("reading corpus directory %s: %w", cfg.CorpusDir, err)
	}

	var summary BatchSummary

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}

		docID := strings.TrimSuffix(entry.Name(), ".txt")
		srcPath := filepath.Join(cfg.CorpusDir, entry.Name())
		outPath := filepath.Join(cfg.MapsDir, docID+mapSuffix)

		changed, err := hasChanged(srcPath, outPath)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", docID, err)
			summary.Failed++
			continue
		}
		if !changed {
			fmt.Fprintf(w, "skipped %s\n", docID)
			summary.Skipped++
			continue
		}

		fmt.Fprintf(w, "extracting %s\n", docID)

		g, err := ExtractDocument(ctx, analyzer, srcPath, cfg)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", docID, err)
			summary.Failed++
			continue
		}

		if err := graph.Save(outPath, g); err != nil {
			fmt.Fprintf(w, "failed  %s: write error: %v\n", docID, err)
			summary.Failed++
			continue
		}

		fmt.Fprintf(w, "extracted %s (%d concepts, %d relationships)\n",
			docID, len(g.Concepts), len(g.Relationships))
		summary.Extracted++
	}

	return summary, nil
}

// ExtractDocument cleans one corpus file, parses it chunk by chunk, and
// assembles the resulting concept graph.
func ExtractDocument(ctx context.Context, analyzer parse.Analyzer, path string, cfg types.ExtractionConfig) (*types.ConceptGraph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading corpus file %s: %w", path, err)
	}

	text := textnorm.Clean(string(data))
	session := NewSession(analyzer, cfg.MaxPhraseWords)

	for _, chunk := range textnorm.Chunks(text, cfg.ChunkSize) {
		if err := session.ProcessText(ctx, chunk); err != nil {
			return nil, err
		}
	}

	return graph.New(session.Concepts(), session.Triples()), nil
}

func hasChanged(srcPath, outPath string) (bool, error) {
	srcInfo, err := os.Stat(srcPath)
	if err != nil {
		return false, fmt.Errorf("stat corpus file %s: %w", srcPath, err)
	}

	outInfo, err := os.Stat(outPath)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, fmt.Errorf("stat concept map %s: %w", outPath, err)
	}

	return srcInfo.ModTime().After(outInfo.ModTime()), nil
}
