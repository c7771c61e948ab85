// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract walks dependency-parsed sentences and emits
// (concept, verb, concept) triples over the concepts recognized by the
// concept filter.
package extract

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/concept-engine/internal/parse"
	"github.com/pdiddy/concept-engine/pkg/types"
)

// DefaultMaxPhraseWords bounds noun-phrase concepts; longer phrases are
// clause fragments, not durable concepts.
const DefaultMaxPhraseWords = 4

// Session accumulates concepts and triples over one document. It is
// owned by the caller for the lifetime of a single document pass;
// concepts and triples are append-only and never removed once a
// sentence has been processed.
type Session struct {
	analyzer       parse.Analyzer
	maxPhraseWords int
	concepts       map[string]bool
	triples        []types.Triple
}

// NewSession creates an extraction session backed by the given
// analyzer. A maxPhraseWords of zero or less uses the default.
func NewSession(analyzer parse.Analyzer, maxPhraseWords int) *Session {
	if maxPhraseWords <= 0 {
		maxPhraseWords = DefaultMaxPhraseWords
	}
	return &Session{
		analyzer:       analyzer,
		maxPhraseWords: maxPhraseWords,
		concepts:       make(map[string]bool),
	}
}

// ProcessText parses one chunk of cleaned text and extracts concepts
// and triples from every sentence, in document order.
func (s *Session) ProcessText(ctx context.Context, text string) error {
	sentences, err := s.analyzer.Parse(ctx, text)
	if err != nil {
		return fmt.Errorf("analyzing text: %w", err)
	}
	for _, sent := range sentences {
		s.processSentence(sent)
	}
	return nil
}

// Concepts returns the accumulated concept set, sorted.
func (s *Session) Concepts() []string {
	out := make([]string, 0, len(s.concepts))
	for c := range s.concepts {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Triples returns the accumulated triples in emission order. Both
// traversal passes feed this slice; duplicates are kept.
func (s *Session) Triples() []types.Triple {
	return s.triples
}

// conceptEntry maps one sentence-local concept to its span head token.
// Entries keep insertion order so resolution is deterministic.
type conceptEntry struct {
	text string // lower-cased span text
	head int    // index of the span's head token
}

// sentenceConcepts collects the sentence's noun-phrase and entity
// spans that pass the concept filter. Noun phrases are length-bounded;
// entities are not. A span already present keeps its first entry.
func (s *Session) sentenceConcepts(sent types.ParsedSentence) []conceptEntry {
	var entries []conceptEntry
	seen := make(map[string]bool)

	add := func(text string, head int) {
		if seen[text] || !IsValidConcept(text) {
			return
		}
		seen[text] = true
		entries = append(entries, conceptEntry{text: text, head: head})
		s.concepts[text] = true
	}

	for _, np := range sent.NounPhrases {
		text := strings.ToLower(strings.TrimSpace(np.Text))
		if len(strings.Fields(text)) <= s.maxPhraseWords {
			add(text, np.Head)
		}
	}
	for _, ent := range sent.Entities {
		add(strings.ToLower(strings.TrimSpace(ent.Text)), ent.Head)
	}

	return entries
}

// processSentence runs the two extraction passes over one sentence.
// The subject-first and object-first scans have different resolution
// fallbacks and both append to the session's triple list; they are
// deliberately not collapsed into one pass and their output is not
// deduplicated.
func (s *Session) processSentence(sent types.ParsedSentence) {
	entries := s.sentenceConcepts(sent)
	if len(entries) == 0 {
		return
	}

	for i, tok := range sent.Tokens {
		switch {
		case strings.Contains(tok.Dep, "subj"):
			s.subjectPass(sent, entries, i)
		case strings.Contains(tok.Dep, "obj"):
			s.objectPass(sent, entries, i)
		}
	}
}

// headOf returns the token's head index, reporting false when a
// malformed parse points it outside the sentence's token list.
func headOf(sent types.ParsedSentence, tokIdx int) (int, bool) {
	h := sent.Tokens[tokIdx].Head
	if h < 0 || h >= len(sent.Tokens) {
		return 0, false
	}
	return h, true
}

// resolve finds the first sentence-local concept whose text contains
// the token's surface text or whose head token is the token itself.
func resolve(entries []conceptEntry, sent types.ParsedSentence, tokIdx int) (conceptEntry, bool) {
	tokText := sent.Tokens[tokIdx].Text
	for _, e := range entries {
		if strings.Contains(e.text, tokText) || e.head == tokIdx {
			return e, true
		}
	}
	return conceptEntry{}, false
}

// subjectPass anchors on a subject token: its head supplies the verb,
// an object-role child of the verb supplies the target. When the verb
// has no object-role child at all, the verb's own head stands in as
// the target (predicate constructions without a direct object). A bare
// subject-verb fact with no resolvable second concept is dropped.
func (s *Session) subjectPass(sent types.ParsedSentence, entries []conceptEntry, subjIdx int) {
	verbIdx, ok := headOf(sent, subjIdx)
	if !ok {
		return
	}
	verb := strings.ToLower(sent.Tokens[verbIdx].Text)
	if verb == "" || genericVerbs[verb] {
		return
	}

	subject, ok := resolve(entries, sent, subjIdx)
	if !ok {
		return
	}

	hasObjChild := false
	for childIdx, child := range sent.Tokens {
		if childIdx == verbIdx || child.Head != verbIdx {
			continue
		}
		if !strings.Contains(child.Dep, "obj") {
			continue
		}
		hasObjChild = true
		if object, ok := resolve(entries, sent, childIdx); ok {
			s.emit(subject.text, verb, object.text)
		}
		// Only the first object-role child is considered.
		break
	}

	if !hasObjChild {
		if headIdx, ok := headOf(sent, verbIdx); ok && headIdx != verbIdx {
			if target, ok := resolve(entries, sent, headIdx); ok {
				s.emit(subject.text, verb, target.text)
			}
		}
	}
}

// objectPass anchors on an object token, catching constructions whose
// subject arc never fired above (passives, clauses with no local
// subject). The source concept resolves through a fallback chain: the
// governing clause's subject, then any sibling child of the verb, then
// the verb's own head.
func (s *Session) objectPass(sent types.ParsedSentence, entries []conceptEntry, objIdx int) {
	verbIdx, ok := headOf(sent, objIdx)
	if !ok {
		return
	}
	verb := strings.ToLower(sent.Tokens[verbIdx].Text)
	if verb == "" || genericVerbs[verb] {
		return
	}

	object, ok := resolve(entries, sent, objIdx)
	if !ok {
		return
	}

	grandIdx, grandOK := headOf(sent, verbIdx)

	var source conceptEntry
	var found bool

	// (i) Governing clause's subject, when dependency-tagged as one.
	if grandOK && strings.Contains(sent.Tokens[grandIdx].Dep, "subj") {
		subjText := strings.ToLower(sent.Tokens[grandIdx].Text)
		for _, e := range entries {
			if strings.Contains(e.text, subjText) || e.head == grandIdx {
				source, found = e, true
				break
			}
		}
	}

	// (ii) Any sibling child of the verb other than the object itself.
	if !found {
		for childIdx, child := range sent.Tokens {
			if childIdx == objIdx || childIdx == verbIdx || child.Head != verbIdx {
				continue
			}
			if e, ok := resolve(entries, sent, childIdx); ok {
				source, found = e, true
				break
			}
		}
	}

	// (iii) The verb's own head.
	if !found && grandOK && grandIdx != verbIdx {
		source, found = resolve(entries, sent, grandIdx)
	}

	if found {
		s.emit(source.text, verb, object.text)
	}
}

func (s *Session) emit(source, verb, target string) {
	if !IsValidConcept(source) || !IsValidConcept(target) {
		return
	}
	s.triples = append(s.triples, types.Triple{Source: source, Verb: verb, Target: target})
}
