// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/concept-engine/internal/extract"
	"github.com/pdiddy/concept-engine/internal/graph"
	"github.com/pdiddy/concept-engine/internal/parse"
	"github.com/pdiddy/concept-engine/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract [files...]",
	Short: "Build concept maps from a text corpus",
	Long: `Extract reads cleaned .txt files from the corpus directory, runs each
through the dependency-parse service, and writes one concept-map JSON
file per document to the maps directory. Files whose map is newer than
the source are skipped on subsequent runs.

With explicit file arguments only those files are processed, skipping
the freshness check.`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().String("corpus-dir", "corpus", "directory of cleaned .txt corpus files")
	extractCmd.Flags().String("maps-dir", "maps", "output directory for concept-map JSON files")
	extractCmd.Flags().Int("chunk-size", 0, "characters per parse request (0 = default 100000)")
	extractCmd.Flags().Int("max-phrase-words", 0, "noun-phrase concept length bound (0 = default 4)")
	extractCmd.Flags().String("parse-url", "", "dependency-parse service endpoint (default localhost)")
	extractCmd.Flags().String("parse-key", "", "parse service API key (default: .secrets/parser-api-key)")
	extractCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	corpusDir, _ := cmd.Flags().GetString("corpus-dir")
	mapsDir, _ := cmd.Flags().GetString("maps-dir")
	chunkSize, _ := cmd.Flags().GetInt("chunk-size")
	maxPhraseWords, _ := cmd.Flags().GetInt("max-phrase-words")
	parseURL, _ := cmd.Flags().GetString("parse-url")
	parseKey, _ := cmd.Flags().GetString("parse-key")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = defaultTimeout
	}

	if parseURL != "" {
		parse.ServiceBase = parseURL
	}

	cfg := types.ExtractionConfig{
		ServiceConfig: types.ServiceConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   timeout,
				UserAgent: defaultUserAgent,
			},
			APIKey: secretDefault("parser-api-key", parseKey),
		},
		CorpusDir:      corpusDir,
		MapsDir:        mapsDir,
		ChunkSize:      chunkSize,
		MaxPhraseWords: maxPhraseWords,
	}

	analyzer := &parse.ServiceAnalyzer{
		Client: &http.Client{Timeout: timeout},
		Config: cfg.ServiceConfig,
	}

	start := time.Now()

	var summary extract.BatchSummary
	var err error
	if len(args) > 0 {
		summary = extractFiles(context.Background(), analyzer, cfg, args)
	} else {
		summary, err = extract.ExtractAll(context.Background(), analyzer, cfg, os.Stdout)
		if err != nil {
			return err
		}
	}

	fmt.Printf("\nextracted: %d, skipped: %d, failed: %d (%.1fs)\n",
		summary.Extracted, summary.Skipped, summary.Failed, time.Since(start).Seconds())

	if summary.HasFailures() {
		return fmt.Errorf("%d document(s) failed extraction", summary.Failed)
	}
	return nil
}

// extractFiles processes explicitly named corpus files, unconditionally.
func extractFiles(ctx context.Context, analyzer *parse.ServiceAnalyzer, cfg types.ExtractionConfig, paths []string) extract.BatchSummary {
	var summary extract.BatchSummary

	if err := os.MkdirAll(cfg.MapsDir, 0o755); err != nil {
		fmt.Fprintf(os.Stdout, "failed  %s: %v\n", cfg.MapsDir, err)
		summary.Failed = len(paths)
		return summary
	}

	for _, path := range paths {
		docID := strings.TrimSuffix(filepath.Base(path), ".txt")

		fmt.Printf("extracting %s\n", docID)

		g, err := extract.ExtractDocument(ctx, analyzer, path, cfg)
		if err != nil {
			fmt.Printf("failed  %s: %v\n", docID, err)
			summary.Failed++
			continue
		}
		outPath := filepath.Join(cfg.MapsDir, docID+"-concept-map.json")
		if err := graph.Save(outPath, g); err != nil {
			fmt.Printf("failed  %s: write error: %v\n", docID, err)
			summary.Failed++
			continue
		}

		fmt.Printf("extracted %s (%d concepts, %d relationships)\n",
			docID, len(g.Concepts), len(g.Relationships))
		summary.Extracted++
	}

	return summary
}
