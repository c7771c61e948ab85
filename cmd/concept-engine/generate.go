// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/concept-engine/internal/answer"
	"github.com/pdiddy/concept-engine/internal/graph"
	"github.com/pdiddy/concept-engine/internal/lexicon"
	"github.com/pdiddy/concept-engine/internal/synth"
	"github.com/pdiddy/concept-engine/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate [maps...]",
	Short: "Synthesize study questions from concept maps",
	Long: `Generate reads concept-map JSON files from the maps directory and writes
a numbered question listing (.txt) and a full question/answer table
(.csv) per map to the questions directory.

Answers come from the generation service in batches; when the service
is unavailable or a batch fails, the templated answer derived from the
concept relation is used instead. With --no-generation every answer is
the templated one.

With explicit map file arguments only those maps are processed.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("maps-dir", "maps", "directory of concept-map JSON files")
	generateCmd.Flags().String("questions-dir", "questions", "output directory for question listings")
	generateCmd.Flags().Int("max-questions", 0, "cap questions per map (0 = unlimited)")
	generateCmd.Flags().Int("batch-size", 0, "answer-generation batch size (0 = default 16)")
	generateCmd.Flags().Int64("seed", 0, "relationship shuffle seed (0 = time-based)")
	generateCmd.Flags().Bool("no-generation", false, "skip the generation service; use templated answers only")
	generateCmd.Flags().String("lexicon-url", "", "dictionary service endpoint (default: built-in tables)")
	generateCmd.Flags().String("lexicon-key", "", "dictionary service API key (default: .secrets/lexicon-api-key)")
	generateCmd.Flags().String("generator-url", "", "generation service endpoint (default localhost)")
	generateCmd.Flags().String("generator-key", "", "generation service API key (default: .secrets/generator-api-key)")
	generateCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	mapsDir, _ := cmd.Flags().GetString("maps-dir")
	questionsDir, _ := cmd.Flags().GetString("questions-dir")
	maxQuestions, _ := cmd.Flags().GetInt("max-questions")
	batchSize, _ := cmd.Flags().GetInt("batch-size")
	seed, _ := cmd.Flags().GetInt64("seed")
	noGeneration, _ := cmd.Flags().GetBool("no-generation")
	lexiconURL, _ := cmd.Flags().GetString("lexicon-url")
	lexiconKey, _ := cmd.Flags().GetString("lexicon-key")
	generatorURL, _ := cmd.Flags().GetString("generator-url")
	generatorKey, _ := cmd.Flags().GetString("generator-key")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = defaultTimeout
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	client := &http.Client{Timeout: timeout}
	httpCfg := types.HTTPConfig{Timeout: timeout, UserAgent: defaultUserAgent}

	// Capability selection happens once, here; the engine never branches
	// on availability.
	var lex lexicon.Lexicon = lexicon.Static{}
	if lexiconURL != "" {
		lexicon.ServiceBase = lexiconURL
		lex = &lexicon.Service{
			Client: client,
			Config: types.ServiceConfig{
				HTTPConfig: httpCfg,
				APIKey:     secretDefault("lexicon-api-key", lexiconKey),
			},
		}
	}

	var gen answer.Generator
	if !noGeneration {
		if generatorURL != "" {
			answer.ServiceBase = generatorURL
		}
		gen = &answer.ServiceGenerator{
			Client: client,
			Config: types.ServiceConfig{
				HTTPConfig: httpCfg,
				APIKey:     secretDefault("generator-api-key", generatorKey),
			},
		}
	}

	cfg := types.SynthesisConfig{
		MapsDir:      mapsDir,
		QuestionsDir: questionsDir,
		MaxQuestions: maxQuestions,
		BatchSize:    batchSize,
	}
	opts := synth.Options{
		MaxQuestions: maxQuestions,
		BatchSize:    batchSize,
		Rand:         rand.New(rand.NewSource(seed)),
	}

	engine := synth.NewEngine(lex, gen)

	var summary synth.BatchSummary
	var err error
	if len(args) > 0 {
		summary = generateFiles(context.Background(), engine, cfg, opts, args)
	} else {
		summary, err = engine.GenerateAll(context.Background(), cfg, opts, os.Stdout)
		if err != nil {
			return err
		}
	}

	fmt.Printf("\ngenerated: %d map(s), %d question(s), failed: %d\n",
		summary.Generated, summary.Questions, summary.Failed)

	if summary.HasFailures() {
		return fmt.Errorf("%d map(s) failed question generation", summary.Failed)
	}
	return nil
}

// generateFiles synthesizes questions for explicitly named map files.
func generateFiles(ctx context.Context, engine *synth.Engine, cfg types.SynthesisConfig, opts synth.Options, paths []string) synth.BatchSummary {
	var summary synth.BatchSummary

	if err := os.MkdirAll(cfg.QuestionsDir, 0o755); err != nil {
		fmt.Printf("failed  %s: %v\n", cfg.QuestionsDir, err)
		summary.Failed = len(paths)
		return summary
	}

	for _, path := range paths {
		mapID := strings.TrimSuffix(filepath.Base(path), "-concept-map.json")
		mapID = strings.TrimSuffix(mapID, ".json")

		g, err := graph.Load(path)
		if err != nil {
			fmt.Printf("failed  %s: %v\n", mapID, err)
			summary.Failed++
			continue
		}

		fmt.Printf("generating %s (%d relationships)\n", mapID, len(g.Relationships))

		records, err := engine.Generate(ctx, g, opts, os.Stdout)
		if err != nil {
			fmt.Printf("failed  %s: %v\n", mapID, err)
			summary.Failed++
			continue
		}

		txtPath := filepath.Join(cfg.QuestionsDir, mapID+"-questions.txt")
		csvPath := filepath.Join(cfg.QuestionsDir, mapID+"-questions.csv")
		if err := synth.SaveQuestions(txtPath, records); err != nil {
			fmt.Printf("failed  %s: %v\n", mapID, err)
			summary.Failed++
			continue
		}
		if err := synth.SaveQuestionsCSV(csvPath, records); err != nil {
			fmt.Printf("failed  %s: %v\n", mapID, err)
			summary.Failed++
			continue
		}

		fmt.Printf("generated %s (%d questions)\n", mapID, len(records))
		summary.Generated++
		summary.Questions += len(records)
	}

	return summary
}
