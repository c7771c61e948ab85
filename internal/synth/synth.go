// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package synth turns concept-graph relationships into question/answer
// pairs. Each relationship is sanitized, gated through concept and verb
// filters, expanded into templated candidates, and finally answered by
// a generative backend with the templated answer as fallback.
package synth

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/pdiddy/concept-engine/internal/answer"
	"github.com/pdiddy/concept-engine/internal/lexicon"
	"github.com/pdiddy/concept-engine/pkg/types"
)

// DefaultBatchSize is the number of prompts sent to the generator per
// request.
const DefaultBatchSize = 16

// Options control a synthesis run.
type Options struct {
	// MaxQuestions caps the number of candidates kept before answer
	// generation. Zero means unlimited.
	MaxQuestions int

	// BatchSize is the generation batch size. Zero means
	// DefaultBatchSize.
	BatchSize int

	// Rand shuffles relationships before the MaxQuestions cap is
	// applied, so the cap samples the graph instead of truncating it.
	// Nil means no shuffle.
	Rand *rand.Rand
}

// Engine synthesizes question/answer pairs from a concept graph.
type Engine struct {
	lex lexicon.Lexicon
	gen answer.Generator
}

// NewEngine returns an Engine using the given lexicon and generator.
// The generator may be nil, in which case every answer is the
// templated one.
func NewEngine(lex lexicon.Lexicon, gen answer.Generator) *Engine {
	return &Engine{lex: lex, gen: gen}
}

// candidate is a validated question awaiting its generated answer.
type candidate struct {
	record types.QuestionRecord
	prompt string
}

// Generate produces question/answer records for every relationship in
// the graph that survives filtering. Answers come from the generative
// backend in batches; a relationship's templated answer is used when
// generation is unavailable, fails for its batch, or returns an empty
// string. Every returned record has a non-empty answer. Batch failures
// are reported on w; a nil w discards them.
func (e *Engine) Generate(ctx context.Context, g *types.ConceptGraph, opts Options, w io.Writer) ([]types.QuestionRecord, error) {
	if w == nil {
		w = io.Discard
	}
	rels := make([]types.Triple, len(g.Relationships))
	copy(rels, g.Relationships)
	if opts.Rand != nil {
		opts.Rand.Shuffle(len(rels), func(i, j int) {
			rels[i], rels[j] = rels[j], rels[i]
		})
	}

	var cands []candidate
	for _, rel := range rels {
		if opts.MaxQuestions > 0 && len(cands) >= opts.MaxQuestions {
			break
		}
		cands = e.expand(ctx, rel, cands, opts.MaxQuestions)
	}

	return e.answerAll(ctx, cands, opts.BatchSize, w)
}

// expand filters one relationship and appends its surviving candidates.
func (e *Engine) expand(ctx context.Context, rel types.Triple, cands []candidate, maxQuestions int) []candidate {
	source := CleanConcept(rel.Source)
	target := CleanConcept(rel.Target)
	verb := e.lex.LemmatizeVerb(ctx, strings.ToLower(strings.TrimSpace(rel.Verb)))
	if source == "" || target == "" || verb == "" {
		return cands
	}
	if IsGenericConcept(source) || IsGenericConcept(target) {
		return cands
	}
	if IsBlacklistedVerb(verb) {
		return cands
	}
	if !e.lex.IsVerb(ctx, verb) {
		return cands
	}
	if IsTautology(source, target) {
		return cands
	}

	fact := fmt.Sprintf("%s %s %s.", source, verb, target)
	for _, pair := range SelectTemplates(source, verb, target) {
		if maxQuestions > 0 && len(cands) >= maxQuestions {
			break
		}
		q := RepairQuestion(ctx, pair.Question, e.lex)
		if IsIncompleteQuestion(q) {
			continue
		}
		cands = append(cands, candidate{
			record: types.QuestionRecord{
				Question: q,
				Answer:   pair.Answer,
				Source:   source,
				Verb:     verb,
				Target:   target,
			},
			prompt: fmt.Sprintf("Question: %s\nContext: %s\nAnswer:", q, fact),
		})
	}
	return cands
}

// answerAll resolves answers for all candidates, batching prompts to
// the generator. A failed batch is reported on w and falls back to
// templated answers for its members without aborting the run.
func (e *Engine) answerAll(ctx context.Context, cands []candidate, batchSize int, w io.Writer) ([]types.QuestionRecord, error) {
	records := make([]types.QuestionRecord, len(cands))
	for i, c := range cands {
		records[i] = c.record
	}
	if e.gen == nil || len(cands) == 0 {
		return records, nil
	}

	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	for start := 0; start < len(cands); start += batchSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		end := start + batchSize
		if end > len(cands) {
			end = len(cands)
		}

		prompts := make([]string, 0, end-start)
		for _, c := range cands[start:end] {
			prompts = append(prompts, c.prompt)
		}

		answers, err := e.gen.Generate(ctx, prompts)
		if err != nil {
			fmt.Fprintf(w, "failed  answer batch %d-%d: %v\n", start+1, end, err)
			continue
		}
		for i, a := range answers {
			if a = cleanAnswer(a); a != "" {
				records[start+i].Answer = a
			}
		}
	}
	return records, nil
}

// cleanAnswer strips whitespace and any echoed "answer:" prefix from a
// generated answer.
func cleanAnswer(a string) string {
	a = strings.TrimSpace(a)
	if len(a) >= 7 && strings.EqualFold(a[:7], "answer:") {
		a = strings.TrimSpace(a[7:])
	}
	return a
}
